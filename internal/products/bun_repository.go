package products

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

// BunProductRepository implements ProductRepository with optional caching.
type BunProductRepository struct {
	products repository.Repository[*Product]
}

// NewBunProductRepository creates a product repository without caching.
func NewBunProductRepository(db *bun.DB) *BunProductRepository {
	return NewBunProductRepositoryWithCache(db, nil, nil)
}

// NewBunProductRepositoryWithCache creates a product repository with caching services.
func NewBunProductRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunProductRepository {
	productsRepo := NewProductRepository(db)
	if cacheService != nil && serializer != nil {
		productsRepo = repositorycache.New(productsRepo, cacheService, serializer)
	}
	return &BunProductRepository{products: productsRepo}
}

var _ ProductRepository = (*BunProductRepository)(nil)

func (r *BunProductRepository) Create(ctx context.Context, record *Product) (*Product, error) {
	created, err := r.products.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	record, err := r.products.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "product", id.String())
	}
	return record, nil
}

func (r *BunProductRepository) List(ctx context.Context) ([]*Product, error) {
	records, _, err := r.products.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.name_en ASC")
	}))
	return records, err
}

func (r *BunProductRepository) ListActive(ctx context.Context) ([]*Product, error) {
	records, _, err := r.products.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.name_en ASC")
		}),
	)
	return records, err
}

func (r *BunProductRepository) Update(ctx context.Context, record *Product) (*Product, error) {
	updated, err := r.products.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"name_en",
			"name_da",
			"description_en",
			"description_da",
			"price_cents",
			"currency",
			"image_url",
			"category",
			"is_active",
			"sort_order",
			"updated_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.products.Delete(ctx, &Product{ID: id})
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
