package translations

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/identity"
	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes UI translation management use-cases.
type Service interface {
	Upsert(ctx context.Context, req UpsertTranslationRequest) (*Translation, error)
	Get(ctx context.Context, id uuid.UUID) (*Translation, error)
	GetByKey(ctx context.Context, key string) (*Translation, error)
	List(ctx context.Context) ([]*Translation, error)
	SetStatus(ctx context.Context, req SetTranslationStatusRequest) (*Translation, error)
	Delete(ctx context.Context, req DeleteTranslationRequest) error
	ListVersions(ctx context.Context, translationID uuid.UUID, limit int) ([]*TranslationVersion, error)
	RestoreVersion(ctx context.Context, req RestoreTranslationVersionRequest) (*Translation, error)
	Resolve(ctx context.Context, lang domain.Lang, key string) string
}

// UpsertTranslationRequest creates a translation or updates the one already
// registered under the key. Nil text fields are left untouched on update.
type UpsertTranslationRequest struct {
	Key       string
	TextEN    *string
	TextDA    *string
	Status    string
	ChangedBy string
}

// SetTranslationStatusRequest transitions a translation between draft and published.
type SetTranslationStatusRequest struct {
	ID        uuid.UUID
	Status    domain.Status
	ChangedBy string
}

// DeleteTranslationRequest removes a translation and its history.
type DeleteTranslationRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

// RestoreTranslationVersionRequest applies a prior snapshot back onto the live record.
type RestoreTranslationVersionRequest struct {
	ID         uuid.UUID
	Version    int
	RestoredBy string
}

var (
	ErrKeyRequired                = errors.New("translations: key is required")
	ErrKeyInvalid                 = errors.New("translations: key contains invalid characters")
	ErrTranslationIDRequired      = errors.New("translations: translation id required")
	ErrTranslationStatusInvalid   = errors.New("translations: status is invalid")
	ErrTranslationVersionRequired = errors.New("translations: version identifier required")
)

// TranslationRepository abstracts storage operations for translations.
type TranslationRepository interface {
	Create(ctx context.Context, record *Translation) (*Translation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Translation, error)
	GetByKey(ctx context.Context, key string) (*Translation, error)
	List(ctx context.Context) ([]*Translation, error)
	Update(ctx context.Context, record *Translation) (*Translation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateVersion(ctx context.Context, version *TranslationVersion) (*TranslationVersion, error)
	ListVersions(ctx context.Context, translationID uuid.UUID) ([]*TranslationVersion, error)
	GetVersion(ctx context.Context, translationID uuid.UUID, number int) (*TranslationVersion, error)
	DeleteVersion(ctx context.Context, id uuid.UUID) error
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

// WithVersionRetentionLimit constrains how many versions are retained per
// translation. Older versions beyond the limit are pruned as new ones are
// recorded.
func WithVersionRetentionLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit < 0 {
			limit = 0
		}
		s.versionRetentionLimit = limit
	}
}

// WithAuditRecorder wires an audit sink for translation mutations.
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
	repo                  TranslationRepository
	now                   func() time.Time
	id                    IDGenerator
	versionRetentionLimit int
	audit                 jobs.AuditRecorder
	logger                interfaces.Logger
}

// NewService constructs a translation service with the required dependencies.
func NewService(repo TranslationRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:                  repo,
		now:                   time.Now,
		id:                    uuid.New,
		versionRetentionLimit: 50,
		logger:                logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var translationKeyPattern = regexp.MustCompile(`^[a-z0-9_.]+$`)

// Upsert creates the translation when the key is new and updates it
// otherwise. New records get a deterministic identifier derived from the key
// so seeding is idempotent across environments.
func (s *service) Upsert(ctx context.Context, req UpsertTranslationRequest) (*Translation, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, ErrKeyRequired
	}
	if !translationKeyPattern.MatchString(key) {
		return nil, ErrKeyInvalid
	}

	status, err := chooseTranslationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	now := s.now()

	existing, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}

		record := &Translation{
			ID:        identity.TranslationUUID(key),
			Key:       key,
			TextEN:    derefOr(req.TextEN, ""),
			TextDA:    derefOr(req.TextDA, ""),
			Status:    string(status),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if status == domain.StatusPublished {
			record.PublishedAt = &now
		}

		created, err := s.repo.Create(ctx, record)
		if err != nil {
			return nil, err
		}
		if err := s.recordVersion(ctx, created, domain.ChangeTypeCreate, req.ChangedBy, now); err != nil {
			return nil, err
		}
		s.recordAudit(ctx, created, "create", req.ChangedBy, now)
		s.logger.Debug("translation created", "key", created.Key)
		return cloneTranslation(created), nil
	}

	if req.TextEN != nil {
		existing.TextEN = *req.TextEN
	}
	if req.TextDA != nil {
		existing.TextDA = *req.TextDA
	}
	if req.Status != "" && domain.Status(existing.Status) != status {
		existing.Status = string(status)
		if status == domain.StatusPublished {
			existing.PublishedAt = &now
		} else {
			existing.PublishedAt = nil
		}
	}
	existing.UpdatedAt = now

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if err := s.recordVersion(ctx, updated, domain.ChangeTypeUpdate, req.ChangedBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "update", req.ChangedBy, now)
	return cloneTranslation(updated), nil
}

// Get fetches a translation by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Translation, error) {
	if id == uuid.Nil {
		return nil, ErrTranslationIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cloneTranslation(record), nil
}

// GetByKey resolves a translation by its key.
func (s *service) GetByKey(ctx context.Context, key string) (*Translation, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrKeyRequired
	}
	record, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return cloneTranslation(record), nil
}

// List returns every translation ordered by key.
func (s *service) List(ctx context.Context) ([]*Translation, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneTranslations(records), nil
}

// SetStatus publishes or unpublishes a translation. A transition to the
// current status is a no-op and records no version.
func (s *service) SetStatus(ctx context.Context, req SetTranslationStatusRequest) (*Translation, error) {
	if req.ID == uuid.Nil {
		return nil, ErrTranslationIDRequired
	}
	status, err := chooseTranslationStatus(string(req.Status))
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if domain.Status(record.Status) == status {
		return cloneTranslation(record), nil
	}

	now := s.now()
	changeType := domain.ChangeTypeUnpublish
	record.Status = string(status)
	record.UpdatedAt = now
	if status == domain.StatusPublished {
		changeType = domain.ChangeTypePublish
		record.PublishedAt = &now
	} else {
		record.PublishedAt = nil
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.recordVersion(ctx, updated, changeType, req.ChangedBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, string(changeType), req.ChangedBy, now)

	return cloneTranslation(updated), nil
}

// Delete removes a translation together with its version history.
func (s *service) Delete(ctx context.Context, req DeleteTranslationRequest) error {
	if req.ID == uuid.Nil {
		return ErrTranslationIDRequired
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

// ListVersions returns the recorded history for a translation, newest first.
// A positive limit caps the number of entries returned.
func (s *service) ListVersions(ctx context.Context, translationID uuid.UUID, limit int) ([]*TranslationVersion, error) {
	if translationID == uuid.Nil {
		return nil, ErrTranslationIDRequired
	}
	if _, err := s.repo.GetByID(ctx, translationID); err != nil {
		return nil, err
	}

	versions, err := s.repo.ListVersions(ctx, translationID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(versions) > limit {
		versions = versions[:limit]
	}
	return cloneTranslationVersions(versions), nil
}

// RestoreVersion applies a prior snapshot's text onto the live translation.
// Status and published_at stay as they are on the live record.
func (s *service) RestoreVersion(ctx context.Context, req RestoreTranslationVersionRequest) (*Translation, error) {
	if req.ID == uuid.Nil {
		return nil, ErrTranslationIDRequired
	}
	if req.Version <= 0 {
		return nil, ErrTranslationVersionRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	version, err := s.repo.GetVersion(ctx, req.ID, req.Version)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record.TextEN = version.Snapshot.TextEN
	record.TextDA = version.Snapshot.TextDA
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.recordVersion(ctx, updated, domain.ChangeTypeRollback, req.RestoredBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "rollback", req.RestoredBy, now)

	return cloneTranslation(updated), nil
}

// Resolve returns the published text for a key in the requested language.
// Unknown or unpublished keys degrade to the key itself so public templates
// render something rather than erroring.
func (s *service) Resolve(ctx context.Context, lang domain.Lang, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}
	record, err := s.repo.GetByKey(ctx, key)
	if err != nil || !record.IsPublished() {
		return key
	}
	if text := record.Text(lang); text != "" {
		return text
	}
	return key
}

func (s *service) recordVersion(ctx context.Context, record *Translation, changeType domain.ChangeType, changedBy string, now time.Time) error {
	versions, err := s.repo.ListVersions(ctx, record.ID)
	if err != nil {
		return err
	}

	maxVersion := 0
	for _, version := range versions {
		if version != nil && version.Version > maxVersion {
			maxVersion = version.Version
		}
	}

	version := &TranslationVersion{
		ID:            s.id(),
		TranslationID: record.ID,
		Version:       maxVersion + 1,
		ChangeType:    string(changeType),
		Snapshot: TranslationSnapshot{
			Key:         record.Key,
			TextEN:      record.TextEN,
			TextDA:      record.TextDA,
			Status:      record.Status,
			PublishedAt: cloneTimePtr(record.PublishedAt),
		},
		ChangedBy: strings.TrimSpace(changedBy),
		ChangedAt: now,
	}

	if _, err := s.repo.CreateVersion(ctx, version); err != nil {
		return err
	}

	if s.versionRetentionLimit > 0 && len(versions)+1 > s.versionRetentionLimit {
		excess := len(versions) + 1 - s.versionRetentionLimit
		oldest := make([]*TranslationVersion, len(versions))
		copy(oldest, versions)
		sort.Slice(oldest, func(i, j int) bool {
			return oldest[i].Version < oldest[j].Version
		})
		for i := 0; i < excess && i < len(oldest); i++ {
			if err := s.repo.DeleteVersion(ctx, oldest[i].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *service) recordAudit(ctx context.Context, record *Translation, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "translation",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata:   map[string]any{"key": record.Key},
	})
}

func chooseTranslationStatus(status string) (domain.Status, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch domain.Status(status) {
	case "":
		return domain.StatusDraft, nil
	case domain.StatusDraft, domain.StatusPublished:
		return domain.Status(status), nil
	default:
		return "", ErrTranslationStatusInvalid
	}
}

func derefOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
