package blocks

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewContentBlockRepository(db *bun.DB) repository.Repository[*ContentBlock] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ContentBlock]{
		NewRecord: func() *ContentBlock { return &ContentBlock{} },
		GetID: func(b *ContentBlock) uuid.UUID {
			return b.ID
		},
		SetID: func(b *ContentBlock, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier: func() string {
			return "block_key"
		},
		GetIdentifierValue: func(b *ContentBlock) string {
			return b.BlockKey
		},
	})
}

// NewContentBlockVersionRepository creates a repository for ContentBlockVersion entities.
func NewContentBlockVersionRepository(db *bun.DB) repository.Repository[*ContentBlockVersion] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ContentBlockVersion]{
		NewRecord: func() *ContentBlockVersion { return &ContentBlockVersion{} },
		GetID: func(v *ContentBlockVersion) uuid.UUID {
			return v.ID
		},
		SetID: func(v *ContentBlockVersion, id uuid.UUID) {
			v.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(v *ContentBlockVersion) string {
			if v == nil {
				return ""
			}
			return v.ID.String()
		},
	})
}
