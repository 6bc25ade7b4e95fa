package posts

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryPostRepository is an in-memory implementation for scaffolding and tests.
type MemoryPostRepository struct {
	mu        sync.RWMutex
	posts     map[uuid.UUID]*BlogPost
	slugIndex map[string]uuid.UUID
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:     make(map[uuid.UUID]*BlogPost),
		slugIndex: make(map[string]uuid.UUID),
	}
}

var _ PostRepository = (*MemoryPostRepository)(nil)

// Create inserts the supplied post.
func (m *MemoryPostRepository) Create(_ context.Context, record *BlogPost) (*BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePost(record)
	m.posts[copied.ID] = copied
	m.slugIndex[strings.ToLower(copied.Slug)] = copied.ID
	return clonePost(copied), nil
}

// GetByID retrieves a post by identifier.
func (m *MemoryPostRepository) GetByID(_ context.Context, id uuid.UUID) (*BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.posts[id]
	if !ok {
		return nil, &NotFoundError{Resource: "blog_post", Key: id.String()}
	}
	return clonePost(rec), nil
}

// GetBySlug retrieves a post by its slug, returning NotFoundError when absent.
func (m *MemoryPostRepository) GetBySlug(_ context.Context, postSlug string) (*BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[strings.ToLower(postSlug)]
	if !ok {
		return nil, &NotFoundError{Resource: "blog_post", Key: postSlug}
	}
	return clonePost(m.posts[id]), nil
}

// List returns all posts, newest first.
func (m *MemoryPostRepository) List(_ context.Context) ([]*BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*BlogPost, 0, len(m.posts))
	for _, rec := range m.posts {
		out = append(out, clonePost(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// ListPublished returns the published posts ordered by publish date, newest first.
func (m *MemoryPostRepository) ListPublished(_ context.Context) ([]*BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*BlogPost, 0)
	for _, rec := range m.posts {
		if rec.IsPublished() {
			out = append(out, clonePost(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		iAt, jAt := out[i].PublishedAt, out[j].PublishedAt
		if iAt == nil || jAt == nil {
			return jAt == nil && iAt != nil
		}
		if !iAt.Equal(*jAt) {
			return iAt.After(*jAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// Update replaces the stored post.
func (m *MemoryPostRepository) Update(_ context.Context, record *BlogPost) (*BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.posts[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "blog_post", Key: record.ID.String()}
	}
	delete(m.slugIndex, strings.ToLower(existing.Slug))

	copied := clonePost(record)
	m.posts[copied.ID] = copied
	m.slugIndex[strings.ToLower(copied.Slug)] = copied.ID
	return clonePost(copied), nil
}

// Delete removes a post.
func (m *MemoryPostRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.posts[id]
	if !ok {
		return &NotFoundError{Resource: "blog_post", Key: id.String()}
	}
	delete(m.slugIndex, strings.ToLower(existing.Slug))
	delete(m.posts, id)
	return nil
}
