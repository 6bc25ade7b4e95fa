package products

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes product catalog management use-cases.
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListActive(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, req UpdateProductRequest) (*Product, error)
	ToggleActive(ctx context.Context, req ToggleActiveRequest) (*Product, error)
	Delete(ctx context.Context, req DeleteProductRequest) error
}

// CreateProductRequest captures the information required to create a product.
type CreateProductRequest struct {
	NameEN        string
	NameDA        string
	DescriptionEN *string
	DescriptionDA *string
	PriceCents    int64
	Currency      string
	ImageURL      *string
	Category      string
	IsActive      *bool
	SortOrder     int
	ChangedBy     string
}

// UpdateProductRequest carries a partial update. Nil fields are left untouched.
type UpdateProductRequest struct {
	ID            uuid.UUID
	NameEN        *string
	NameDA        *string
	DescriptionEN *string
	DescriptionDA *string
	PriceCents    *int64
	Currency      *string
	ImageURL      *string
	Category      *string
	SortOrder     *int
	ChangedBy     string
}

// ToggleActiveRequest flips the visibility flag of a product.
type ToggleActiveRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

// DeleteProductRequest removes a product from the catalog.
type DeleteProductRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

var (
	ErrProductNameRequired = errors.New("products: product name is required")
	ErrProductIDRequired   = errors.New("products: product id required")
	ErrPriceInvalid        = errors.New("products: price must not be negative")
	ErrCurrencyInvalid     = errors.New("products: currency must be a 3-letter code")
)

// ProductRepository abstracts storage operations for products.
type ProductRepository interface {
	Create(ctx context.Context, record *Product) (*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListActive(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, record *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithAuditRecorder wires an audit sink for product mutations.
func WithAuditRecorder(recorder jobs.AuditRecorder) ServiceOption {
	return func(s *service) {
		if recorder != nil {
			s.audit = recorder
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// DefaultCurrency is applied when a create request leaves the currency empty.
const DefaultCurrency = "DKK"

// service implements Service.
type service struct {
	repo   ProductRepository
	now    func() time.Time
	id     IDGenerator
	audit  jobs.AuditRecorder
	logger interfaces.Logger
}

// NewService constructs a product service with the required dependencies.
func NewService(repo ProductRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create validates and persists a new product. New products are active unless
// the request says otherwise.
func (s *service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	nameEN := strings.TrimSpace(req.NameEN)
	if nameEN == "" {
		return nil, ErrProductNameRequired
	}
	if req.PriceCents < 0 {
		return nil, ErrPriceInvalid
	}
	currency, err := chooseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := s.now()
	record := &Product{
		ID:            s.id(),
		NameEN:        nameEN,
		NameDA:        strings.TrimSpace(req.NameDA),
		DescriptionEN: cloneStringPtr(req.DescriptionEN),
		DescriptionDA: cloneStringPtr(req.DescriptionDA),
		PriceCents:    req.PriceCents,
		Currency:      currency,
		ImageURL:      cloneStringPtr(req.ImageURL),
		Category:      strings.TrimSpace(req.Category),
		IsActive:      active,
		SortOrder:     req.SortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, created, "create", req.ChangedBy, now)

	s.logger.Debug("product created", "product_id", created.ID.String(), "name", created.NameEN)
	return cloneProduct(created), nil
}

// Get fetches a product by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	if id == uuid.Nil {
		return nil, ErrProductIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cloneProduct(record), nil
}

// List returns the full catalog ordered by sort order, for admin views.
func (s *service) List(ctx context.Context) ([]*Product, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneProducts(records), nil
}

// ListActive returns only the products visible on the public site.
func (s *service) ListActive(ctx context.Context) ([]*Product, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return cloneProducts(records), nil
}

// Update applies a partial update to a product.
func (s *service) Update(ctx context.Context, req UpdateProductRequest) (*Product, error) {
	if req.ID == uuid.Nil {
		return nil, ErrProductIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.NameEN != nil {
		nameEN := strings.TrimSpace(*req.NameEN)
		if nameEN == "" {
			return nil, ErrProductNameRequired
		}
		record.NameEN = nameEN
	}
	if req.NameDA != nil {
		record.NameDA = strings.TrimSpace(*req.NameDA)
	}
	if req.DescriptionEN != nil {
		record.DescriptionEN = cloneStringPtr(req.DescriptionEN)
	}
	if req.DescriptionDA != nil {
		record.DescriptionDA = cloneStringPtr(req.DescriptionDA)
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrPriceInvalid
		}
		record.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		currency, err := chooseCurrency(*req.Currency)
		if err != nil {
			return nil, err
		}
		record.Currency = currency
	}
	if req.ImageURL != nil {
		record.ImageURL = cloneStringPtr(req.ImageURL)
	}
	if req.Category != nil {
		record.Category = strings.TrimSpace(*req.Category)
	}
	if req.SortOrder != nil {
		record.SortOrder = *req.SortOrder
	}

	now := s.now()
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "update", req.ChangedBy, now)

	return cloneProduct(updated), nil
}

// ToggleActive flips the product's visibility flag. Toggling twice restores
// the original state.
func (s *service) ToggleActive(ctx context.Context, req ToggleActiveRequest) (*Product, error) {
	if req.ID == uuid.Nil {
		return nil, ErrProductIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record.IsActive = !record.IsActive
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	action := "deactivate"
	if updated.IsActive {
		action = "activate"
	}
	s.recordAudit(ctx, updated, action, req.ChangedBy, now)

	return cloneProduct(updated), nil
}

// Delete removes a product from the catalog.
func (s *service) Delete(ctx context.Context, req DeleteProductRequest) error {
	if req.ID == uuid.Nil {
		return ErrProductIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.recordAudit(ctx, record, "delete", req.ChangedBy, s.now())
	return nil
}

func (s *service) recordAudit(ctx context.Context, record *Product, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "product",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata:   map[string]any{"name": record.NameEN},
	})
}

func chooseCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return DefaultCurrency, nil
	}
	if len(currency) != 3 {
		return "", ErrCurrencyInvalid
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return "", ErrCurrencyInvalid
		}
	}
	return currency, nil
}
