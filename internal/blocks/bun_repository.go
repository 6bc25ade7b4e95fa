package blocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunBlockRepository implements BlockRepository with optional caching.
type BunBlockRepository struct {
	blocks   repository.Repository[*ContentBlock]
	versions repository.Repository[*ContentBlockVersion]
}

// NewBunBlockRepository creates a block repository without caching.
func NewBunBlockRepository(db *bun.DB) *BunBlockRepository {
	return NewBunBlockRepositoryWithCache(db, nil, nil)
}

// NewBunBlockRepositoryWithCache creates a block repository with caching services.
func NewBunBlockRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunBlockRepository {
	blocksRepo := NewContentBlockRepository(db)
	versionsRepo := NewContentBlockVersionRepository(db)
	if cacheService != nil && serializer != nil {
		blocksRepo = repositorycache.New(blocksRepo, cacheService, serializer)
		versionsRepo = repositorycache.New(versionsRepo, cacheService, serializer)
	}
	return &BunBlockRepository{blocks: blocksRepo, versions: versionsRepo}
}

var _ BlockRepository = (*BunBlockRepository)(nil)

func (r *BunBlockRepository) Create(ctx context.Context, record *ContentBlock) (*ContentBlock, error) {
	created, err := r.blocks.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunBlockRepository) GetByID(ctx context.Context, id uuid.UUID) (*ContentBlock, error) {
	record, err := r.blocks.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "content_block", id.String())
	}
	return record, nil
}

func (r *BunBlockRepository) GetByKey(ctx context.Context, section, blockKey string) (*ContentBlock, error) {
	records, _, err := r.blocks.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.section = ?", section)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.block_key = ?", blockKey)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "content_block", blockAddress(section, blockKey))
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "content_block", Key: blockAddress(section, blockKey)}
	}
	return records[0], nil
}

func (r *BunBlockRepository) List(ctx context.Context) ([]*ContentBlock, error) {
	records, _, err := r.blocks.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.section ASC, ?TableAlias.sort_order ASC, ?TableAlias.block_key ASC")
	}))
	return records, err
}

func (r *BunBlockRepository) ListSection(ctx context.Context, section string) ([]*ContentBlock, error) {
	records, _, err := r.blocks.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.section = ?", section)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.block_key ASC")
		}),
	)
	return records, err
}

func (r *BunBlockRepository) Search(ctx context.Context, query string) ([]*ContentBlock, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	records, _, err := r.blocks.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.
					Where("LOWER(?TableAlias.section) LIKE ?", pattern).
					WhereOr("LOWER(?TableAlias.block_key) LIKE ?", pattern).
					WhereOr("LOWER(?TableAlias.title_en) LIKE ?", pattern).
					WhereOr("LOWER(?TableAlias.title_da) LIKE ?", pattern).
					WhereOr("LOWER(COALESCE(?TableAlias.description_en, '')) LIKE ?", pattern).
					WhereOr("LOWER(COALESCE(?TableAlias.description_da, '')) LIKE ?", pattern).
					WhereOr("LOWER(COALESCE(?TableAlias.value, '')) LIKE ?", pattern)
			})
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.section ASC, ?TableAlias.sort_order ASC, ?TableAlias.block_key ASC")
		}),
	)
	return records, err
}

func (r *BunBlockRepository) Update(ctx context.Context, record *ContentBlock) (*ContentBlock, error) {
	updated, err := r.blocks.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"section",
			"block_key",
			"title_en",
			"title_da",
			"description_en",
			"description_da",
			"value",
			"icon",
			"color",
			"image_url",
			"metadata",
			"sort_order",
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

func (r *BunBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.blocks.Delete(ctx, &ContentBlock{ID: id})
}

func (r *BunBlockRepository) CreateVersion(ctx context.Context, version *ContentBlockVersion) (*ContentBlockVersion, error) {
	created, err := r.versions.Create(ctx, version)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunBlockRepository) ListVersions(ctx context.Context, blockID uuid.UUID) ([]*ContentBlockVersion, error) {
	records, _, err := r.versions.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.block_id = ?", blockID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.version DESC")
		}),
	)
	return records, err
}

func (r *BunBlockRepository) GetVersion(ctx context.Context, blockID uuid.UUID, number int) (*ContentBlockVersion, error) {
	records, _, err := r.versions.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.block_id = ?", blockID)
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
		return nil, &NotFoundError{Resource: "content_block_version", Key: versionKey(blockID, number)}
	}
	return records[0], nil
}

func (r *BunBlockRepository) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	return r.versions.Delete(ctx, &ContentBlockVersion{ID: id})
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

func blockAddress(section, blockKey string) string {
	return section + "/" + blockKey
}

func versionKey(blockID uuid.UUID, version int) string {
	return fmt.Sprintf("%s:%d", blockID.String(), version)
}
