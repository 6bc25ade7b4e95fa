package products

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation for scaffolding and tests.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*Product
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uuid.UUID]*Product),
	}
}

var _ ProductRepository = (*MemoryProductRepository)(nil)

// Create inserts the supplied product.
func (m *MemoryProductRepository) Create(_ context.Context, record *Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneProduct(record)
	m.products[copied.ID] = copied
	return cloneProduct(copied), nil
}

// GetByID retrieves a product by identifier.
func (m *MemoryProductRepository) GetByID(_ context.Context, id uuid.UUID) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.products[id]
	if !ok {
		return nil, &NotFoundError{Resource: "product", Key: id.String()}
	}
	return cloneProduct(rec), nil
}

// List returns all products ordered by sort order and name.
func (m *MemoryProductRepository) List(_ context.Context) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Product, 0, len(m.products))
	for _, rec := range m.products {
		out = append(out, cloneProduct(rec))
	}
	sortProducts(out)
	return out, nil
}

// ListActive returns the visible products ordered by sort order and name.
func (m *MemoryProductRepository) ListActive(_ context.Context) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Product, 0)
	for _, rec := range m.products {
		if rec.IsActive {
			out = append(out, cloneProduct(rec))
		}
	}
	sortProducts(out)
	return out, nil
}

// Update replaces the stored product.
func (m *MemoryProductRepository) Update(_ context.Context, record *Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "product", Key: record.ID.String()}
	}
	copied := cloneProduct(record)
	m.products[copied.ID] = copied
	return cloneProduct(copied), nil
}

// Delete removes a product.
func (m *MemoryProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return &NotFoundError{Resource: "product", Key: id.String()}
	}
	delete(m.products, id)
	return nil
}

func sortProducts(records []*Product) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].SortOrder != records[j].SortOrder {
			return records[i].SortOrder < records[j].SortOrder
		}
		return records[i].NameEN < records[j].NameEN
	})
}
