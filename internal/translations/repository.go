package translations

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewTranslationRepository creates a repository for Translation entities.
func NewTranslationRepository(db *bun.DB) repository.Repository[*Translation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Translation]{
		NewRecord: func() *Translation { return &Translation{} },
		GetID: func(t *Translation) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Translation, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(t *Translation) string {
			return t.Key
		},
	})
}

// NewTranslationVersionRepository creates a repository for TranslationVersion entities.
func NewTranslationVersionRepository(db *bun.DB) repository.Repository[*TranslationVersion] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*TranslationVersion]{
		NewRecord: func() *TranslationVersion { return &TranslationVersion{} },
		GetID: func(v *TranslationVersion) uuid.UUID {
			return v.ID
		},
		SetID: func(v *TranslationVersion, id uuid.UUID) {
			v.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(v *TranslationVersion) string {
			if v == nil {
				return ""
			}
			return v.ID.String()
		},
	})
}
