package quotations

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes quotation inquiry use-cases. Submit serves the public form;
// the rest back the admin follow-up views.
type Service interface {
	Submit(ctx context.Context, req SubmitQuotationRequest) (*QuotationRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*QuotationRequest, error)
	List(ctx context.Context) ([]*QuotationRequest, error)
	SetStatus(ctx context.Context, req SetQuotationStatusRequest) (*QuotationRequest, error)
	Delete(ctx context.Context, req DeleteQuotationRequest) error
}

// SubmitQuotationRequest captures a public inquiry submission.
type SubmitQuotationRequest struct {
	Name        string
	Email       string
	Phone       string
	CompanyName string
	ProductID   *uuid.UUID
	Quantity    int
	Message     string
}

// SetQuotationStatusRequest moves an inquiry through the follow-up flow.
type SetQuotationStatusRequest struct {
	ID        uuid.UUID
	Status    string
	ChangedBy string
}

// DeleteQuotationRequest removes an inquiry.
type DeleteQuotationRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

var (
	ErrNameRequired           = errors.New("quotations: name is required")
	ErrEmailInvalid           = errors.New("quotations: email address is invalid")
	ErrQuantityInvalid        = errors.New("quotations: quantity must not be negative")
	ErrQuotationIDRequired    = errors.New("quotations: quotation id required")
	ErrQuotationStatusInvalid = errors.New("quotations: status is invalid")
)

// QuotationRepository abstracts storage operations for quotation requests.
type QuotationRepository interface {
	Create(ctx context.Context, record *QuotationRequest) (*QuotationRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*QuotationRequest, error)
	List(ctx context.Context) ([]*QuotationRequest, error)
	Update(ctx context.Context, record *QuotationRequest) (*QuotationRequest, error)
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

// WithAuditRecorder wires an audit sink for quotation mutations.
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

// service implements Service.
type service struct {
	repo   QuotationRepository
	now    func() time.Time
	id     IDGenerator
	audit  jobs.AuditRecorder
	logger interfaces.Logger
}

// NewService constructs a quotation service with the required dependencies.
func NewService(repo QuotationRepository, opts ...ServiceOption) Service {
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

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Submit validates and stores a public inquiry. New inquiries always start
// in the "new" status.
func (s *service) Submit(ctx context.Context, req SubmitQuotationRequest) (*QuotationRequest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if req.Quantity < 0 {
		return nil, ErrQuantityInvalid
	}

	now := s.now()
	record := &QuotationRequest{
		ID:          s.id(),
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		CompanyName: strings.TrimSpace(req.CompanyName),
		ProductID:   cloneUUIDPtr(req.ProductID),
		Quantity:    req.Quantity,
		Message:     strings.TrimSpace(req.Message),
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, created, "submit", "", now)

	s.logger.Info("quotation received", "quotation_id", created.ID.String(), "email", created.Email)
	return cloneQuotation(created), nil
}

// Get fetches an inquiry by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*QuotationRequest, error) {
	if id == uuid.Nil {
		return nil, ErrQuotationIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cloneQuotation(record), nil
}

// List returns every inquiry, newest first.
func (s *service) List(ctx context.Context) ([]*QuotationRequest, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneQuotations(records), nil
}

// SetStatus moves an inquiry to a new follow-up status.
func (s *service) SetStatus(ctx context.Context, req SetQuotationStatusRequest) (*QuotationRequest, error) {
	if req.ID == uuid.Nil {
		return nil, ErrQuotationIDRequired
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !isKnownStatus(status) {
		return nil, ErrQuotationStatusInvalid
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if record.Status == status {
		return cloneQuotation(record), nil
	}

	now := s.now()
	record.Status = status
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "status:"+status, req.ChangedBy, now)

	return cloneQuotation(updated), nil
}

// Delete removes an inquiry.
func (s *service) Delete(ctx context.Context, req DeleteQuotationRequest) error {
	if req.ID == uuid.Nil {
		return ErrQuotationIDRequired
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

func (s *service) recordAudit(ctx context.Context, record *QuotationRequest, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "quotation_request",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata:   map[string]any{"email": record.Email},
	})
}

func isKnownStatus(status string) bool {
	for _, known := range KnownStatuses() {
		if status == known {
			return true
		}
	}
	return false
}

func cloneUUIDPtr(value *uuid.UUID) *uuid.UUID {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
