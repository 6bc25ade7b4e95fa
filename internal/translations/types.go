package translations

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/verdanta/cms/internal/domain"
)

// Translation is one UI string addressed by a stable key. Unlike content
// blocks these are short labels resolved inline by templates, so lookups are
// key-based and misses degrade to the key itself.
type Translation struct {
	bun.BaseModel `bun:"table:translations,alias:tr"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Key         string     `bun:"key,notnull,unique" json:"key"`
	TextEN      string     `bun:"text_en,notnull,default:''" json:"text_en"`
	TextDA      string     `bun:"text_da,notnull,default:''" json:"text_da"`
	Status      string     `bun:"status,notnull,default:'draft'" json:"status"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// IsPublished reports whether the translation is live on the public site.
func (t *Translation) IsPublished() bool {
	return t != nil && domain.Status(t.Status) == domain.StatusPublished
}

// Text resolves the translation for the requested language, falling back to
// English when the Danish variant is empty.
func (t *Translation) Text(lang domain.Lang) string {
	if t == nil {
		return ""
	}
	if lang == domain.LangDA && t.TextDA != "" {
		return t.TextDA
	}
	return t.TextEN
}

// TranslationSnapshot captures the editable state of a translation at version time.
type TranslationSnapshot struct {
	Key         string     `json:"key"`
	TextEN      string     `json:"text_en"`
	TextDA      string     `json:"text_da"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// TranslationVersion records one step in a translation's change history.
type TranslationVersion struct {
	bun.BaseModel `bun:"table:translation_versions,alias:trv"`

	ID            uuid.UUID           `bun:",pk,type:uuid" json:"id"`
	TranslationID uuid.UUID           `bun:"translation_id,notnull,type:uuid" json:"translation_id"`
	Version       int                 `bun:"version,notnull" json:"version"`
	ChangeType    string              `bun:"change_type,notnull" json:"change_type"`
	Snapshot      TranslationSnapshot `bun:"snapshot,type:jsonb" json:"snapshot"`
	ChangedBy     string              `bun:"changed_by,notnull,default:''" json:"changed_by"`
	ChangedAt     time.Time           `bun:"changed_at,nullzero,default:current_timestamp" json:"changed_at"`
}
