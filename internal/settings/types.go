package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SiteSetting is one site-wide configuration value addressed by key. Simple
// values live in Value; structured values carry a JSON bag in ValueJSON.
type SiteSetting struct {
	bun.BaseModel `bun:"table:site_settings,alias:ss"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Key       string         `bun:"key,notnull,unique" json:"key"`
	Value     string         `bun:"value,notnull,default:''" json:"value"`
	ValueJSON map[string]any `bun:"value_json,type:jsonb" json:"value_json,omitempty"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Well-known setting keys read by the public site.
const (
	KeyWhatsAppNumber = "contact.whatsapp_number"
	KeyContactEmail   = "contact.email"
	KeySiteName       = "site.name"
)
