package blocks

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes content-block management use-cases.
type Service interface {
	Create(ctx context.Context, req CreateBlockRequest) (*ContentBlock, error)
	Get(ctx context.Context, id uuid.UUID) (*ContentBlock, error)
	GetByKey(ctx context.Context, section, blockKey string) (*ContentBlock, error)
	List(ctx context.Context) ([]*ContentBlock, error)
	ListSection(ctx context.Context, section string, onlyPublished bool) ([]*ContentBlock, error)
	Search(ctx context.Context, query string) ([]*ContentBlock, error)
	Update(ctx context.Context, req UpdateBlockRequest) (*ContentBlock, error)
	Duplicate(ctx context.Context, req DuplicateBlockRequest) (*ContentBlock, error)
	SetStatus(ctx context.Context, req SetBlockStatusRequest) (*ContentBlock, error)
	Delete(ctx context.Context, req DeleteBlockRequest) error
	ListVersions(ctx context.Context, blockID uuid.UUID, limit int) ([]*ContentBlockVersion, error)
	RestoreVersion(ctx context.Context, req RestoreBlockVersionRequest) (*ContentBlock, error)
}

// CreateBlockRequest captures the information required to create a block.
type CreateBlockRequest struct {
	Section       string
	BlockKey      string
	TitleEN       string
	TitleDA       string
	DescriptionEN *string
	DescriptionDA *string
	Value         *string
	Icon          *string
	Color         *string
	ImageURL      *string
	Metadata      map[string]any
	SortOrder     int
	Status        string
	ChangedBy     string
}

// UpdateBlockRequest carries a partial update. Nil fields are left untouched.
type UpdateBlockRequest struct {
	ID            uuid.UUID
	Section       *string
	BlockKey      *string
	TitleEN       *string
	TitleDA       *string
	DescriptionEN *string
	DescriptionDA *string
	Value         *string
	Icon          *string
	Color         *string
	ImageURL      *string
	Metadata      map[string]any
	SortOrder     *int
	ChangedBy     string
	// BaseVersion enables optimistic concurrency: when set, the update is
	// rejected unless it matches the latest recorded version number.
	BaseVersion *int
}

// DuplicateBlockRequest clones an existing block under a derived key.
type DuplicateBlockRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

// SetBlockStatusRequest transitions a block between draft and published.
type SetBlockStatusRequest struct {
	ID        uuid.UUID
	Status    domain.Status
	ChangedBy string
}

// DeleteBlockRequest removes a block and its history.
type DeleteBlockRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

// RestoreBlockVersionRequest applies a prior snapshot back onto the live block.
type RestoreBlockVersionRequest struct {
	ID         uuid.UUID
	Version    int
	RestoredBy string
}

var (
	ErrSectionRequired      = errors.New("blocks: section is required")
	ErrBlockKeyRequired     = errors.New("blocks: block key is required")
	ErrBlockKeyInvalid      = errors.New("blocks: block key contains invalid characters")
	ErrBlockExists          = errors.New("blocks: block key already exists in section")
	ErrBlockIDRequired      = errors.New("blocks: block id required")
	ErrStatusInvalid        = errors.New("blocks: status is invalid")
	ErrMetadataInvalid      = errors.New("blocks: metadata is invalid")
	ErrVersioningDisabled   = errors.New("blocks: versioning feature disabled")
	ErrBlockVersionRequired = errors.New("blocks: version identifier required")
	ErrBlockVersionConflict = errors.New("blocks: base version mismatch")
	ErrSearchQueryRequired  = errors.New("blocks: search query is required")
)

// BlockRepository abstracts storage operations for content blocks.
type BlockRepository interface {
	Create(ctx context.Context, record *ContentBlock) (*ContentBlock, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContentBlock, error)
	GetByKey(ctx context.Context, section, blockKey string) (*ContentBlock, error)
	List(ctx context.Context) ([]*ContentBlock, error)
	ListSection(ctx context.Context, section string) ([]*ContentBlock, error)
	Search(ctx context.Context, query string) ([]*ContentBlock, error)
	Update(ctx context.Context, record *ContentBlock) (*ContentBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateVersion(ctx context.Context, version *ContentBlockVersion) (*ContentBlockVersion, error)
	ListVersions(ctx context.Context, blockID uuid.UUID) ([]*ContentBlockVersion, error)
	GetVersion(ctx context.Context, blockID uuid.UUID, number int) (*ContentBlockVersion, error)
	DeleteVersion(ctx context.Context, id uuid.UUID) error
}

// MetadataValidator checks a metadata bag against the schema registered for
// a section. Sections without a schema accept any bag.
type MetadataValidator interface {
	ValidateMetadata(section string, metadata map[string]any) error
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

// WithVersioningEnabled toggles the versioning workflow for the service.
func WithVersioningEnabled(enabled bool) ServiceOption {
	return func(s *service) {
		s.versioningEnabled = enabled
	}
}

// WithVersionRetentionLimit constrains how many versions are retained per block.
// Older versions beyond the limit are pruned as new ones are recorded.
func WithVersionRetentionLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit < 0 {
			limit = 0
		}
		s.versionRetentionLimit = limit
	}
}

// WithAuditRecorder wires an audit sink for block mutations.
func WithAuditRecorder(recorder jobs.AuditRecorder) ServiceOption {
	return func(s *service) {
		if recorder != nil {
			s.audit = recorder
		}
	}
}

// WithMetadataValidator enforces a schema over the metadata bag on writes.
func WithMetadataValidator(validator MetadataValidator) ServiceOption {
	return func(s *service) {
		if validator != nil {
			s.metadata = validator
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
	repo                  BlockRepository
	now                   func() time.Time
	id                    IDGenerator
	versioningEnabled     bool
	versionRetentionLimit int
	audit                 jobs.AuditRecorder
	metadata              MetadataValidator
	logger                interfaces.Logger
}

// NewService constructs a block service with the required dependencies.
func NewService(repo BlockRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:                  repo,
		now:                   time.Now,
		id:                    uuid.New,
		versioningEnabled:     true,
		versionRetentionLimit: 50,
		logger:                logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Keys only need to be non-empty and whitespace-free; embedded whitespace is
// rejected because keys double as stable identifiers in duplicate suffixing
// and section lookups.
var blockKeyPattern = regexp.MustCompile(`^\S+$`)

// Create validates and persists a new block, recording its first version.
func (s *service) Create(ctx context.Context, req CreateBlockRequest) (*ContentBlock, error) {
	section := strings.TrimSpace(req.Section)
	if section == "" {
		return nil, ErrSectionRequired
	}
	blockKey := strings.TrimSpace(req.BlockKey)
	if blockKey == "" {
		return nil, ErrBlockKeyRequired
	}
	if !blockKeyPattern.MatchString(blockKey) {
		return nil, ErrBlockKeyInvalid
	}

	status, err := chooseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.validateMetadata(section, req.Metadata); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByKey(ctx, section, blockKey); err == nil && existing != nil {
		return nil, ErrBlockExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	now := s.now()
	record := &ContentBlock{
		ID:            s.id(),
		Section:       section,
		BlockKey:      blockKey,
		TitleEN:       req.TitleEN,
		TitleDA:       req.TitleDA,
		DescriptionEN: cloneStringPtr(req.DescriptionEN),
		DescriptionDA: cloneStringPtr(req.DescriptionDA),
		Value:         cloneStringPtr(req.Value),
		Icon:          cloneStringPtr(req.Icon),
		Color:         cloneStringPtr(req.Color),
		ImageURL:      cloneStringPtr(req.ImageURL),
		Metadata:      cloneMap(req.Metadata),
		SortOrder:     req.SortOrder,
		Status:        string(status),
		CreatedAt:     now,
		UpdatedAt:     now,
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

	s.logger.Debug("block created", "section", created.Section, "block_key", created.BlockKey)
	return cloneBlock(created), nil
}

// Get fetches a block by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*ContentBlock, error) {
	if id == uuid.Nil {
		return nil, ErrBlockIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cloneBlock(record), nil
}

// GetByKey resolves a block by its (section, block_key) address.
func (s *service) GetByKey(ctx context.Context, section, blockKey string) (*ContentBlock, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, ErrSectionRequired
	}
	blockKey = strings.TrimSpace(blockKey)
	if blockKey == "" {
		return nil, ErrBlockKeyRequired
	}
	record, err := s.repo.GetByKey(ctx, section, blockKey)
	if err != nil {
		return nil, err
	}
	return cloneBlock(record), nil
}

// List returns every block ordered by section and sort order.
func (s *service) List(ctx context.Context) ([]*ContentBlock, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneBlocks(records), nil
}

// ListSection returns the blocks belonging to one section ordered by sort
// order. Public readers pass onlyPublished to hide drafts; a section with no
// matching blocks yields an empty slice, never an error.
func (s *service) ListSection(ctx context.Context, section string, onlyPublished bool) ([]*ContentBlock, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, ErrSectionRequired
	}
	records, err := s.repo.ListSection(ctx, section)
	if err != nil {
		return nil, err
	}
	if onlyPublished {
		published := make([]*ContentBlock, 0, len(records))
		for _, record := range records {
			if record.IsPublished() {
				published = append(published, record)
			}
		}
		records = published
	}
	return cloneBlocks(records), nil
}

// Search matches blocks by section, key, titles, descriptions, and value.
func (s *service) Search(ctx context.Context, query string) ([]*ContentBlock, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryRequired
	}
	records, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return cloneBlocks(records), nil
}

// Update applies a partial update and records an update version.
func (s *service) Update(ctx context.Context, req UpdateBlockRequest) (*ContentBlock, error) {
	if req.ID == uuid.Nil {
		return nil, ErrBlockIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.BaseVersion != nil {
		latest, err := s.latestVersionNumber(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		if *req.BaseVersion != latest {
			return nil, ErrBlockVersionConflict
		}
	}

	section := record.Section
	if req.Section != nil {
		section = strings.TrimSpace(*req.Section)
		if section == "" {
			return nil, ErrSectionRequired
		}
	}
	blockKey := record.BlockKey
	if req.BlockKey != nil {
		blockKey = strings.TrimSpace(*req.BlockKey)
		if blockKey == "" {
			return nil, ErrBlockKeyRequired
		}
		if !blockKeyPattern.MatchString(blockKey) {
			return nil, ErrBlockKeyInvalid
		}
	}
	if section != record.Section || blockKey != record.BlockKey {
		if existing, err := s.repo.GetByKey(ctx, section, blockKey); err == nil && existing != nil && existing.ID != record.ID {
			return nil, ErrBlockExists
		} else if err != nil {
			var notFound *NotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	if req.Metadata != nil {
		if err := s.validateMetadata(section, req.Metadata); err != nil {
			return nil, err
		}
	}

	record.Section = section
	record.BlockKey = blockKey
	if req.TitleEN != nil {
		record.TitleEN = *req.TitleEN
	}
	if req.TitleDA != nil {
		record.TitleDA = *req.TitleDA
	}
	if req.DescriptionEN != nil {
		record.DescriptionEN = cloneStringPtr(req.DescriptionEN)
	}
	if req.DescriptionDA != nil {
		record.DescriptionDA = cloneStringPtr(req.DescriptionDA)
	}
	if req.Value != nil {
		record.Value = cloneStringPtr(req.Value)
	}
	if req.Icon != nil {
		record.Icon = cloneStringPtr(req.Icon)
	}
	if req.Color != nil {
		record.Color = cloneStringPtr(req.Color)
	}
	if req.ImageURL != nil {
		record.ImageURL = cloneStringPtr(req.ImageURL)
	}
	if req.Metadata != nil {
		record.Metadata = cloneMap(req.Metadata)
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

	if err := s.recordVersion(ctx, updated, domain.ChangeTypeUpdate, req.ChangedBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "update", req.ChangedBy, now)

	return cloneBlock(updated), nil
}

// Duplicate clones a block into the same section under a derived key. The
// copy starts life as a draft directly after its source in sort order.
func (s *service) Duplicate(ctx context.Context, req DuplicateBlockRequest) (*ContentBlock, error) {
	if req.ID == uuid.Nil {
		return nil, ErrBlockIDRequired
	}

	source, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	copyKey := source.BlockKey + "_copy"
	if existing, err := s.repo.GetByKey(ctx, source.Section, copyKey); err == nil && existing != nil {
		return nil, ErrBlockExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	now := s.now()
	record := &ContentBlock{
		ID:            s.id(),
		Section:       source.Section,
		BlockKey:      copyKey,
		TitleEN:       source.TitleEN,
		TitleDA:       source.TitleDA,
		DescriptionEN: cloneStringPtr(source.DescriptionEN),
		DescriptionDA: cloneStringPtr(source.DescriptionDA),
		Value:         cloneStringPtr(source.Value),
		Icon:          cloneStringPtr(source.Icon),
		Color:         cloneStringPtr(source.Color),
		ImageURL:      cloneStringPtr(source.ImageURL),
		Metadata:      cloneMap(source.Metadata),
		SortOrder:     source.SortOrder + 1,
		Status:        string(domain.StatusDraft),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := s.recordVersion(ctx, created, domain.ChangeTypeCreate, req.ChangedBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, created, "duplicate", req.ChangedBy, now)

	return cloneBlock(created), nil
}

// SetStatus publishes or unpublishes a block. A transition to the current
// status is a no-op and records no version.
func (s *service) SetStatus(ctx context.Context, req SetBlockStatusRequest) (*ContentBlock, error) {
	if req.ID == uuid.Nil {
		return nil, ErrBlockIDRequired
	}
	status, err := chooseStatus(string(req.Status))
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if domain.Status(record.Status) == status {
		return cloneBlock(record), nil
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

	return cloneBlock(updated), nil
}

// Delete removes a block together with its version history.
func (s *service) Delete(ctx context.Context, req DeleteBlockRequest) error {
	if req.ID == uuid.Nil {
		return ErrBlockIDRequired
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

// ListVersions returns the recorded history for a block, newest first. A
// positive limit caps the number of entries returned.
func (s *service) ListVersions(ctx context.Context, blockID uuid.UUID, limit int) ([]*ContentBlockVersion, error) {
	if !s.versioningEnabled {
		return nil, ErrVersioningDisabled
	}
	if blockID == uuid.Nil {
		return nil, ErrBlockIDRequired
	}
	if _, err := s.repo.GetByID(ctx, blockID); err != nil {
		return nil, err
	}

	versions, err := s.repo.ListVersions(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(versions) > limit {
		versions = versions[:limit]
	}
	return cloneVersions(versions), nil
}

// RestoreVersion applies a prior snapshot onto the live block and records the
// rollback as a new version rather than rewriting history.
func (s *service) RestoreVersion(ctx context.Context, req RestoreBlockVersionRequest) (*ContentBlock, error) {
	if !s.versioningEnabled {
		return nil, ErrVersioningDisabled
	}
	if req.ID == uuid.Nil {
		return nil, ErrBlockIDRequired
	}
	if req.Version <= 0 {
		return nil, ErrBlockVersionRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	version, err := s.repo.GetVersion(ctx, req.ID, req.Version)
	if err != nil {
		return nil, err
	}

	snapshot := version.Snapshot
	now := s.now()

	// Restore copies the editable fields only; section, key, status, and
	// published_at stay as they are on the live block.
	record.TitleEN = snapshot.TitleEN
	record.TitleDA = snapshot.TitleDA
	record.DescriptionEN = cloneStringPtr(snapshot.DescriptionEN)
	record.DescriptionDA = cloneStringPtr(snapshot.DescriptionDA)
	record.Value = cloneStringPtr(snapshot.Value)
	record.Icon = cloneStringPtr(snapshot.Icon)
	record.Color = cloneStringPtr(snapshot.Color)
	record.ImageURL = cloneStringPtr(snapshot.ImageURL)
	record.Metadata = cloneMap(snapshot.Metadata)
	record.SortOrder = snapshot.SortOrder
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := s.recordVersion(ctx, updated, domain.ChangeTypeRollback, req.RestoredBy, now); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "rollback", req.RestoredBy, now)

	return cloneBlock(updated), nil
}

func (s *service) validateMetadata(section string, metadata map[string]any) error {
	if s.metadata == nil || metadata == nil {
		return nil
	}
	if err := s.metadata.ValidateMetadata(section, metadata); err != nil {
		return errors.Join(ErrMetadataInvalid, err)
	}
	return nil
}

func (s *service) latestVersionNumber(ctx context.Context, blockID uuid.UUID) (int, error) {
	versions, err := s.repo.ListVersions(ctx, blockID)
	if err != nil {
		return 0, err
	}
	return maxVersionNumber(versions), nil
}

func (s *service) recordVersion(ctx context.Context, record *ContentBlock, changeType domain.ChangeType, changedBy string, now time.Time) error {
	if !s.versioningEnabled {
		return nil
	}

	versions, err := s.repo.ListVersions(ctx, record.ID)
	if err != nil {
		return err
	}

	version := &ContentBlockVersion{
		ID:         s.id(),
		BlockID:    record.ID,
		Version:    maxVersionNumber(versions) + 1,
		ChangeType: string(changeType),
		Snapshot:   snapshotOf(record),
		ChangedBy:  strings.TrimSpace(changedBy),
		ChangedAt:  now,
	}

	if _, err := s.repo.CreateVersion(ctx, version); err != nil {
		return err
	}

	if s.versionRetentionLimit > 0 && len(versions)+1 > s.versionRetentionLimit {
		if err := s.pruneVersions(ctx, versions, len(versions)+1-s.versionRetentionLimit); err != nil {
			return err
		}
	}
	return nil
}

// pruneVersions deletes the oldest entries once retention is exceeded.
func (s *service) pruneVersions(ctx context.Context, versions []*ContentBlockVersion, excess int) error {
	oldest := make([]*ContentBlockVersion, len(versions))
	copy(oldest, versions)
	sortVersionsAscending(oldest)

	for i := 0; i < excess && i < len(oldest); i++ {
		if err := s.repo.DeleteVersion(ctx, oldest[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) recordAudit(ctx context.Context, record *ContentBlock, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "content_block",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata: map[string]any{
			"section":   record.Section,
			"block_key": record.BlockKey,
		},
	})
}

func snapshotOf(record *ContentBlock) BlockSnapshot {
	return BlockSnapshot{
		Section:       record.Section,
		BlockKey:      record.BlockKey,
		TitleEN:       record.TitleEN,
		TitleDA:       record.TitleDA,
		DescriptionEN: cloneStringPtr(record.DescriptionEN),
		DescriptionDA: cloneStringPtr(record.DescriptionDA),
		Value:         cloneStringPtr(record.Value),
		Icon:          cloneStringPtr(record.Icon),
		Color:         cloneStringPtr(record.Color),
		ImageURL:      cloneStringPtr(record.ImageURL),
		Metadata:      cloneMap(record.Metadata),
		SortOrder:     record.SortOrder,
		Status:        record.Status,
		PublishedAt:   cloneTimePtr(record.PublishedAt),
	}
}

func chooseStatus(status string) (domain.Status, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch domain.Status(status) {
	case "":
		return domain.StatusDraft, nil
	case domain.StatusDraft, domain.StatusPublished:
		return domain.Status(status), nil
	default:
		return "", ErrStatusInvalid
	}
}

func maxVersionNumber(versions []*ContentBlockVersion) int {
	max := 0
	for _, version := range versions {
		if version == nil {
			continue
		}
		if version.Version > max {
			max = version.Version
		}
	}
	return max
}

func sortVersionsAscending(versions []*ContentBlockVersion) {
	sort.Slice(versions, func(i, j int) bool {
		if versions[i] == nil || versions[j] == nil {
			return versions[j] == nil
		}
		return versions[i].Version < versions[j].Version
	})
}
