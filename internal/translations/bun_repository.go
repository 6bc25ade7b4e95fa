package translations

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTranslationRepository implements TranslationRepository with optional caching.
type BunTranslationRepository struct {
	translations repository.Repository[*Translation]
	versions     repository.Repository[*TranslationVersion]
}

// NewBunTranslationRepository creates a translation repository without caching.
func NewBunTranslationRepository(db *bun.DB) *BunTranslationRepository {
	return NewBunTranslationRepositoryWithCache(db, nil, nil)
}

// NewBunTranslationRepositoryWithCache creates a translation repository with caching services.
func NewBunTranslationRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTranslationRepository {
	translationsRepo := NewTranslationRepository(db)
	versionsRepo := NewTranslationVersionRepository(db)
	if cacheService != nil && serializer != nil {
		translationsRepo = repositorycache.New(translationsRepo, cacheService, serializer)
		versionsRepo = repositorycache.New(versionsRepo, cacheService, serializer)
	}
	return &BunTranslationRepository{translations: translationsRepo, versions: versionsRepo}
}

var _ TranslationRepository = (*BunTranslationRepository)(nil)

func (r *BunTranslationRepository) Create(ctx context.Context, record *Translation) (*Translation, error) {
	created, err := r.translations.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTranslationRepository) GetByID(ctx context.Context, id uuid.UUID) (*Translation, error) {
	record, err := r.translations.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "translation", id.String())
	}
	return record, nil
}

func (r *BunTranslationRepository) GetByKey(ctx context.Context, key string) (*Translation, error) {
	record, err := r.translations.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "translation", key)
	}
	return record, nil
}

func (r *BunTranslationRepository) List(ctx context.Context) ([]*Translation, error) {
	records, _, err := r.translations.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.key ASC")
	}))
	return records, err
}

func (r *BunTranslationRepository) Update(ctx context.Context, record *Translation) (*Translation, error) {
	updated, err := r.translations.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"key",
			"text_en",
			"text_da",
			"status",
			"published_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunTranslationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.translations.Delete(ctx, &Translation{ID: id})
}

func (r *BunTranslationRepository) CreateVersion(ctx context.Context, version *TranslationVersion) (*TranslationVersion, error) {
	created, err := r.versions.Create(ctx, version)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTranslationRepository) ListVersions(ctx context.Context, translationID uuid.UUID) ([]*TranslationVersion, error) {
	records, _, err := r.versions.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.translation_id = ?", translationID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.version DESC")
		}),
	)
	return records, err
}

func (r *BunTranslationRepository) GetVersion(ctx context.Context, translationID uuid.UUID, number int) (*TranslationVersion, error) {
	records, _, err := r.versions.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.translation_id = ?", translationID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.version = ?", number)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "translation_version", Key: fmt.Sprintf("%s:%d", translationID.String(), number)}
	}
	return records[0], nil
}

func (r *BunTranslationRepository) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	return r.versions.Delete(ctx, &TranslationVersion{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
