package quotations

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryQuotationRepository is an in-memory implementation for scaffolding and tests.
type MemoryQuotationRepository struct {
	mu         sync.RWMutex
	quotations map[uuid.UUID]*QuotationRequest
}

// NewMemoryQuotationRepository creates an empty in-memory quotation repository.
func NewMemoryQuotationRepository() *MemoryQuotationRepository {
	return &MemoryQuotationRepository{
		quotations: make(map[uuid.UUID]*QuotationRequest),
	}
}

var _ QuotationRepository = (*MemoryQuotationRepository)(nil)

// Create inserts the supplied inquiry.
func (m *MemoryQuotationRepository) Create(_ context.Context, record *QuotationRequest) (*QuotationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneQuotation(record)
	m.quotations[copied.ID] = copied
	return cloneQuotation(copied), nil
}

// GetByID retrieves an inquiry by identifier.
func (m *MemoryQuotationRepository) GetByID(_ context.Context, id uuid.UUID) (*QuotationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.quotations[id]
	if !ok {
		return nil, &NotFoundError{Resource: "quotation_request", Key: id.String()}
	}
	return cloneQuotation(rec), nil
}

// List returns all inquiries, newest first.
func (m *MemoryQuotationRepository) List(_ context.Context) ([]*QuotationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*QuotationRequest, 0, len(m.quotations))
	for _, rec := range m.quotations {
		out = append(out, cloneQuotation(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// Update replaces the stored inquiry.
func (m *MemoryQuotationRepository) Update(_ context.Context, record *QuotationRequest) (*QuotationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.quotations[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "quotation_request", Key: record.ID.String()}
	}
	copied := cloneQuotation(record)
	m.quotations[copied.ID] = copied
	return cloneQuotation(copied), nil
}

// Delete removes an inquiry.
func (m *MemoryQuotationRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.quotations[id]; !ok {
		return &NotFoundError{Resource: "quotation_request", Key: id.String()}
	}
	delete(m.quotations, id)
	return nil
}
