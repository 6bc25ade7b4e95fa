package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/verdanta/cms/internal/domain"
)

// Product is a catalog entry shown on the public products page. Copy is
// stored bilingually and prices are kept in minor units to avoid float
// arithmetic.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID            uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	NameEN        string     `bun:"name_en,notnull" json:"name_en"`
	NameDA        string     `bun:"name_da,notnull,default:''" json:"name_da"`
	DescriptionEN *string    `bun:"description_en" json:"description_en,omitempty"`
	DescriptionDA *string    `bun:"description_da" json:"description_da,omitempty"`
	PriceCents    int64      `bun:"price_cents,notnull,default:0" json:"price_cents"`
	Currency      string     `bun:"currency,notnull,default:'DKK'" json:"currency"`
	ImageURL      *string    `bun:"image_url" json:"image_url,omitempty"`
	Category      string     `bun:"category,notnull,default:''" json:"category"`
	IsActive      bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	SortOrder     int        `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// LocalizedProduct is the language-resolved projection for public readers.
type LocalizedProduct struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

// Localized resolves the product copy for the requested language, falling
// back to English when the Danish variant is empty.
func (p *Product) Localized(lang domain.Lang) LocalizedProduct {
	if p == nil {
		return LocalizedProduct{}
	}
	name := p.NameEN
	if lang == domain.LangDA && p.NameDA != "" {
		name = p.NameDA
	}
	return LocalizedProduct{
		ID:          p.ID,
		Name:        name,
		Description: domain.Pick(lang, p.DescriptionEN, p.DescriptionDA),
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		ImageURL:    derefString(p.ImageURL),
		Category:    p.Category,
		SortOrder:   p.SortOrder,
	}
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
