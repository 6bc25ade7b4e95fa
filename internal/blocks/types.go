package blocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/verdanta/cms/internal/domain"
)

// ContentBlock is the canonical record for an editable site fragment. Blocks
// are addressed by (section, block_key) and carry English and Danish copy side
// by side so public pages can resolve either language without joins.
type ContentBlock struct {
	bun.BaseModel `bun:"table:content_blocks,alias:cb"`

	ID            uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Section       string         `bun:"section,notnull" json:"section"`
	BlockKey      string         `bun:"block_key,notnull" json:"block_key"`
	TitleEN       string         `bun:"title_en,notnull,default:''" json:"title_en"`
	TitleDA       string         `bun:"title_da,notnull,default:''" json:"title_da"`
	DescriptionEN *string        `bun:"description_en" json:"description_en,omitempty"`
	DescriptionDA *string        `bun:"description_da" json:"description_da,omitempty"`
	Value         *string        `bun:"value" json:"value,omitempty"`
	Icon          *string        `bun:"icon" json:"icon,omitempty"`
	Color         *string        `bun:"color" json:"color,omitempty"`
	ImageURL      *string        `bun:"image_url" json:"image_url,omitempty"`
	Metadata      map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	SortOrder     int            `bun:"sort_order,notnull,default:0" json:"sort_order"`
	Status        string         `bun:"status,notnull,default:'draft'" json:"status"`
	PublishedAt   *time.Time     `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Versions []*ContentBlockVersion `bun:"rel:has-many,join:id=block_id" json:"versions,omitempty"`
}

// IsPublished reports whether the block is visible on the public site.
func (b *ContentBlock) IsPublished() bool {
	return b != nil && domain.Status(b.Status) == domain.StatusPublished
}

// LocalizedBlock is the language-resolved projection served to public pages.
type LocalizedBlock struct {
	ID          uuid.UUID      `json:"id"`
	Section     string         `json:"section"`
	BlockKey    string         `json:"block_key"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Value       string         `json:"value,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Color       string         `json:"color,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	SortOrder   int            `json:"sort_order"`
}

// Localized resolves the block copy for the requested language, falling back
// to English when the Danish variant is empty.
func (b *ContentBlock) Localized(lang domain.Lang) LocalizedBlock {
	if b == nil {
		return LocalizedBlock{}
	}
	title := b.TitleEN
	if lang == domain.LangDA && b.TitleDA != "" {
		title = b.TitleDA
	}
	return LocalizedBlock{
		ID:          b.ID,
		Section:     b.Section,
		BlockKey:    b.BlockKey,
		Title:       title,
		Description: domain.Pick(lang, b.DescriptionEN, b.DescriptionDA),
		Value:       derefString(b.Value),
		Icon:        derefString(b.Icon),
		Color:       derefString(b.Color),
		ImageURL:    derefString(b.ImageURL),
		Metadata:    cloneMap(b.Metadata),
		SortOrder:   b.SortOrder,
	}
}

// BlockSnapshot captures the editable state of a block at version time.
type BlockSnapshot struct {
	Section       string         `json:"section"`
	BlockKey      string         `json:"block_key"`
	TitleEN       string         `json:"title_en"`
	TitleDA       string         `json:"title_da"`
	DescriptionEN *string        `json:"description_en,omitempty"`
	DescriptionDA *string        `json:"description_da,omitempty"`
	Value         *string        `json:"value,omitempty"`
	Icon          *string        `json:"icon,omitempty"`
	Color         *string        `json:"color,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	SortOrder     int            `json:"sort_order"`
	Status        string         `json:"status"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
}

// ContentBlockVersion records one step in a block's change history.
type ContentBlockVersion struct {
	bun.BaseModel `bun:"table:content_block_versions,alias:cbv"`

	ID         uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	BlockID    uuid.UUID     `bun:"block_id,notnull,type:uuid" json:"block_id"`
	Version    int           `bun:"version,notnull" json:"version"`
	ChangeType string        `bun:"change_type,notnull" json:"change_type"`
	Snapshot   BlockSnapshot `bun:"snapshot,type:jsonb" json:"snapshot"`
	ChangedBy  string        `bun:"changed_by,notnull,default:''" json:"changed_by"`
	ChangedAt  time.Time     `bun:"changed_at,nullzero,default:current_timestamp" json:"changed_at"`
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
