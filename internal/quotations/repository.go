package quotations

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewQuotationRepository creates a repository for QuotationRequest entities.
func NewQuotationRepository(db *bun.DB) repository.Repository[*QuotationRequest] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*QuotationRequest]{
		NewRecord: func() *QuotationRequest { return &QuotationRequest{} },
		GetID: func(q *QuotationRequest) uuid.UUID {
			return q.ID
		},
		SetID: func(q *QuotationRequest, id uuid.UUID) {
			q.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(q *QuotationRequest) string {
			if q == nil {
				return ""
			}
			return q.ID.String()
		},
	})
}
