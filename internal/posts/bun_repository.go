package posts

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

// BunPostRepository implements PostRepository with optional caching.
type BunPostRepository struct {
	posts repository.Repository[*BlogPost]
}

// NewBunPostRepository creates a post repository without caching.
func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return NewBunPostRepositoryWithCache(db, nil, nil)
}

// NewBunPostRepositoryWithCache creates a post repository with caching services.
func NewBunPostRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPostRepository {
	postsRepo := NewBlogPostRepository(db)
	if cacheService != nil && serializer != nil {
		postsRepo = repositorycache.New(postsRepo, cacheService, serializer)
	}
	return &BunPostRepository{posts: postsRepo}
}

var _ PostRepository = (*BunPostRepository)(nil)

func (r *BunPostRepository) Create(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	created, err := r.posts.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	record, err := r.posts.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "blog_post", id.String())
	}
	return record, nil
}

func (r *BunPostRepository) GetBySlug(ctx context.Context, postSlug string) (*BlogPost, error) {
	record, err := r.posts.GetByIdentifier(ctx, postSlug)
	if err != nil {
		return nil, mapRepositoryError(err, "blog_post", postSlug)
	}
	return record, nil
}

func (r *BunPostRepository) List(ctx context.Context) ([]*BlogPost, error) {
	records, _, err := r.posts.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	return records, err
}

func (r *BunPostRepository) ListPublished(ctx context.Context) ([]*BlogPost, error) {
	records, _, err := r.posts.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.status = ?", "published")
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.published_at DESC")
		}),
	)
	return records, err
}

func (r *BunPostRepository) Update(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	updated, err := r.posts.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"slug",
			"title_en",
			"title_da",
			"excerpt_en",
			"excerpt_da",
			"body_en",
			"body_da",
			"hero_image_url",
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

func (r *BunPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.posts.Delete(ctx, &BlogPost{ID: id})
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
