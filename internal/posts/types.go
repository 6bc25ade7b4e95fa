package posts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/verdanta/cms/internal/domain"
)

// BlogPost is a journal entry. The body is stored as markdown in both
// languages and rendered to HTML on demand.
type BlogPost struct {
	bun.BaseModel `bun:"table:blog_posts,alias:bp"`

	ID           uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Slug         string     `bun:"slug,notnull,unique" json:"slug"`
	TitleEN      string     `bun:"title_en,notnull" json:"title_en"`
	TitleDA      string     `bun:"title_da,notnull,default:''" json:"title_da"`
	ExcerptEN    *string    `bun:"excerpt_en" json:"excerpt_en,omitempty"`
	ExcerptDA    *string    `bun:"excerpt_da" json:"excerpt_da,omitempty"`
	BodyEN       string     `bun:"body_en,notnull,default:''" json:"body_en"`
	BodyDA       string     `bun:"body_da,notnull,default:''" json:"body_da"`
	HeroImageURL *string    `bun:"hero_image_url" json:"hero_image_url,omitempty"`
	Status       string     `bun:"status,notnull,default:'draft'" json:"status"`
	PublishedAt  *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// IsPublished reports whether the post is visible on the public journal.
func (p *BlogPost) IsPublished() bool {
	return p != nil && domain.Status(p.Status) == domain.StatusPublished
}

// LocalizedPost is the language-resolved projection for public readers. Body
// carries raw markdown; BodyHTML is filled in by the service renderer.
type LocalizedPost struct {
	ID           uuid.UUID  `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt,omitempty"`
	Body         string     `json:"body,omitempty"`
	BodyHTML     string     `json:"body_html,omitempty"`
	HeroImageURL string     `json:"hero_image_url,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// Localized resolves the post copy for the requested language, falling back
// to English when the Danish variant is empty.
func (p *BlogPost) Localized(lang domain.Lang) LocalizedPost {
	if p == nil {
		return LocalizedPost{}
	}
	title := p.TitleEN
	body := p.BodyEN
	if lang == domain.LangDA {
		if p.TitleDA != "" {
			title = p.TitleDA
		}
		if p.BodyDA != "" {
			body = p.BodyDA
		}
	}
	var published *time.Time
	if p.PublishedAt != nil {
		copied := *p.PublishedAt
		published = &copied
	}
	return LocalizedPost{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        title,
		Excerpt:      domain.Pick(lang, p.ExcerptEN, p.ExcerptDA),
		Body:         body,
		HeroImageURL: derefString(p.HeroImageURL),
		PublishedAt:  published,
	}
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
