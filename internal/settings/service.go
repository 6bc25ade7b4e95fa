package settings

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/identity"
	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes site setting management use-cases.
type Service interface {
	Get(ctx context.Context, key string) (*SiteSetting, error)
	List(ctx context.Context) ([]*SiteSetting, error)
	Upsert(ctx context.Context, req UpsertSettingRequest) (*SiteSetting, error)
	Delete(ctx context.Context, req DeleteSettingRequest) error
	Value(ctx context.Context, key string) string
}

// UpsertSettingRequest creates or replaces a setting under its key.
type UpsertSettingRequest struct {
	Key       string
	Value     string
	ValueJSON map[string]any
	ChangedBy string
}

// DeleteSettingRequest removes a setting.
type DeleteSettingRequest struct {
	Key       string
	ChangedBy string
}

var (
	ErrSettingKeyRequired = errors.New("settings: key is required")
	ErrSettingKeyInvalid  = errors.New("settings: key contains invalid characters")
)

// SettingRepository abstracts storage operations for site settings.
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*SiteSetting, error)
	List(ctx context.Context) ([]*SiteSetting, error)
	Upsert(ctx context.Context, record *SiteSetting) (*SiteSetting, error)
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

// WithAuditRecorder wires an audit sink for setting mutations.
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
	repo   SettingRepository
	now    func() time.Time
	audit  jobs.AuditRecorder
	logger interfaces.Logger
}

// NewService constructs a settings service with the required dependencies.
func NewService(repo SettingRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var settingKeyPattern = regexp.MustCompile(`^[a-z0-9_.]+$`)

// Get fetches a setting by key.
func (s *service) Get(ctx context.Context, key string) (*SiteSetting, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return cloneSetting(record), nil
}

// List returns every setting ordered by key.
func (s *service) List(ctx context.Context) ([]*SiteSetting, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneSettings(records), nil
}

// Upsert writes a setting under its key. The identifier is derived from the
// key so repeated provisioning runs land on the same row.
func (s *service) Upsert(ctx context.Context, req UpsertSettingRequest) (*SiteSetting, error) {
	key, err := normalizeKey(req.Key)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &SiteSetting{
		ID:        identity.SettingUUID(key),
		Key:       key,
		Value:     req.Value,
		ValueJSON: cloneMap(req.ValueJSON),
		UpdatedAt: now,
	}

	saved, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, saved, "upsert", req.ChangedBy, now)

	s.logger.Debug("setting saved", "key", saved.Key)
	return cloneSetting(saved), nil
}

// Delete removes a setting by key.
func (s *service) Delete(ctx context.Context, req DeleteSettingRequest) error {
	key, err := normalizeKey(req.Key)
	if err != nil {
		return err
	}

	record, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.recordAudit(ctx, record, "delete", req.ChangedBy, s.now())
	return nil
}

// Value returns the plain value for a key, or "" when the setting is absent.
func (s *service) Value(ctx context.Context, key string) string {
	record, err := s.Get(ctx, key)
	if err != nil {
		return ""
	}
	return record.Value
}

func (s *service) recordAudit(ctx context.Context, record *SiteSetting, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "site_setting",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata:   map[string]any{"key": record.Key},
	})
}

func normalizeKey(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", ErrSettingKeyRequired
	}
	if !settingKeyPattern.MatchString(key) {
		return "", ErrSettingKeyInvalid
	}
	return key, nil
}
