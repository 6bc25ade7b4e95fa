package quotations

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunQuotationRepository implements QuotationRepository. Inquiries are
// short-lived operational records, so no caching layer sits in front of them.
type BunQuotationRepository struct {
	quotations repository.Repository[*QuotationRequest]
}

// NewBunQuotationRepository creates a quotation repository.
func NewBunQuotationRepository(db *bun.DB) *BunQuotationRepository {
	return &BunQuotationRepository{quotations: NewQuotationRepository(db)}
}

var _ QuotationRepository = (*BunQuotationRepository)(nil)

func (r *BunQuotationRepository) Create(ctx context.Context, record *QuotationRequest) (*QuotationRequest, error) {
	created, err := r.quotations.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunQuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*QuotationRequest, error) {
	record, err := r.quotations.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "quotation_request", id.String())
	}
	return record, nil
}

func (r *BunQuotationRepository) List(ctx context.Context) ([]*QuotationRequest, error) {
	records, _, err := r.quotations.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	return records, err
}

func (r *BunQuotationRepository) Update(ctx context.Context, record *QuotationRequest) (*QuotationRequest, error) {
	updated, err := r.quotations.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"name",
			"email",
			"phone",
			"company_name",
			"product_id",
			"quantity",
			"message",
			"status",
			"updated_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.quotations.Delete(ctx, &QuotationRequest{ID: id})
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
