package posts

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewBlogPostRepository creates a repository for BlogPost entities.
func NewBlogPostRepository(db *bun.DB) repository.Repository[*BlogPost] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*BlogPost]{
		NewRecord: func() *BlogPost { return &BlogPost{} },
		GetID: func(p *BlogPost) uuid.UUID {
			return p.ID
		},
		SetID: func(p *BlogPost, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *BlogPost) string {
			return p.Slug
		},
	})
}
