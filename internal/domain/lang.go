package domain

import "strings"

// Lang identifies one of the site's supported languages.
type Lang string

const (
	// LangEN is English, the default site language.
	LangEN Lang = "en"
	// LangDA is Danish.
	LangDA Lang = "da"
)

// ParseLang resolves a language code, defaulting to English for unknown or
// empty input so public reads always render something.
func ParseLang(input string) Lang {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "da", "da-dk", "dk":
		return LangDA
	default:
		return LangEN
	}
}

// Langs returns the supported languages in priority order.
func Langs() []Lang {
	return []Lang{LangEN, LangDA}
}

// Pick returns the Danish value when lang is Danish and the value is
// non-empty, otherwise the English value. Nil pointers collapse to "".
func Pick(lang Lang, en, da *string) string {
	if lang == LangDA && da != nil && strings.TrimSpace(*da) != "" {
		return *da
	}
	if en != nil {
		return *en
	}
	return ""
}
