package quotations

import (
	"errors"
	"net/url"
	"strings"
)

// ErrWhatsAppNumberInvalid indicates the configured number has no usable digits.
var ErrWhatsAppNumberInvalid = errors.New("quotations: whatsapp number must contain at least 6 digits")

// WhatsAppLink builds a wa.me deep link for a configured contact number.
// Everything except digits is stripped from the number, so "+45 12 34 56 78"
// and "4512345678" produce the same link. A non-empty message is attached as
// the prefilled text.
func WhatsAppLink(number, message string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) < 6 {
		return "", ErrWhatsAppNumberInvalid
	}

	link := "https://wa.me/" + digits
	if message = strings.TrimSpace(message); message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, nil
}
