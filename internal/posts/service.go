package posts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Service exposes journal management use-cases.
type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (*BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, postSlug string, publishedOnly bool) (*BlogPost, error)
	List(ctx context.Context) ([]*BlogPost, error)
	ListPublished(ctx context.Context) ([]*BlogPost, error)
	Update(ctx context.Context, req UpdatePostRequest) (*BlogPost, error)
	SetStatus(ctx context.Context, req SetPostStatusRequest) (*BlogPost, error)
	Delete(ctx context.Context, req DeletePostRequest) error
	RenderHTML(ctx context.Context, id uuid.UUID, lang domain.Lang) (LocalizedPost, error)
}

// CreatePostRequest captures the information required to create a post. An
// empty slug is derived from the English title.
type CreatePostRequest struct {
	Slug         string
	TitleEN      string
	TitleDA      string
	ExcerptEN    *string
	ExcerptDA    *string
	BodyEN       string
	BodyDA       string
	HeroImageURL *string
	Status       string
	PublishedAt  *time.Time
	ChangedBy    string
}

// UpdatePostRequest carries a partial update. Nil fields are left untouched.
type UpdatePostRequest struct {
	ID           uuid.UUID
	Slug         *string
	TitleEN      *string
	TitleDA      *string
	ExcerptEN    *string
	ExcerptDA    *string
	BodyEN       *string
	BodyDA       *string
	HeroImageURL *string
	ChangedBy    string
}

// SetPostStatusRequest transitions a post between draft and published.
type SetPostStatusRequest struct {
	ID        uuid.UUID
	Status    domain.Status
	ChangedBy string
}

// DeletePostRequest removes a post from the journal.
type DeletePostRequest struct {
	ID        uuid.UUID
	ChangedBy string
}

var (
	ErrPostTitleRequired = errors.New("posts: post title is required")
	ErrPostIDRequired    = errors.New("posts: post id required")
	ErrSlugInvalid       = errors.New("posts: slug contains invalid characters")
	ErrSlugExists        = errors.New("posts: slug already exists")
	ErrPostStatusInvalid = errors.New("posts: status is invalid")
)

// PostRepository abstracts storage operations for journal posts.
type PostRepository interface {
	Create(ctx context.Context, record *BlogPost) (*BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, postSlug string) (*BlogPost, error)
	List(ctx context.Context) ([]*BlogPost, error)
	ListPublished(ctx context.Context) ([]*BlogPost, error)
	Update(ctx context.Context, record *BlogPost) (*BlogPost, error)
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

// WithRenderer overrides the markdown renderer used for HTML output.
func WithRenderer(renderer BodyRenderer) ServiceOption {
	return func(s *service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithAuditRecorder wires an audit sink for post mutations.
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
	repo     PostRepository
	now      func() time.Time
	id       IDGenerator
	renderer BodyRenderer
	audit    jobs.AuditRecorder
	logger   interfaces.Logger
}

// NewService constructs a journal service with the required dependencies.
func NewService(repo PostRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		now:      time.Now,
		id:       uuid.New,
		renderer: NewGoldmarkRenderer(),
		logger:   logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create validates and persists a new post.
func (s *service) Create(ctx context.Context, req CreatePostRequest) (*BlogPost, error) {
	titleEN := strings.TrimSpace(req.TitleEN)
	if titleEN == "" {
		return nil, ErrPostTitleRequired
	}

	postSlug, err := resolveSlug(req.Slug, titleEN)
	if err != nil {
		return nil, err
	}

	status, err := choosePostStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetBySlug(ctx, postSlug); err == nil && existing != nil {
		return nil, ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	now := s.now()
	record := &BlogPost{
		ID:           s.id(),
		Slug:         postSlug,
		TitleEN:      titleEN,
		TitleDA:      strings.TrimSpace(req.TitleDA),
		ExcerptEN:    cloneStringPtr(req.ExcerptEN),
		ExcerptDA:    cloneStringPtr(req.ExcerptDA),
		BodyEN:       req.BodyEN,
		BodyDA:       req.BodyDA,
		HeroImageURL: cloneStringPtr(req.HeroImageURL),
		Status:       string(status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status == domain.StatusPublished {
		publishedAt := now
		if req.PublishedAt != nil {
			publishedAt = *req.PublishedAt
		}
		record.PublishedAt = &publishedAt
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, created, "create", req.ChangedBy, now)

	s.logger.Debug("post created", "slug", created.Slug)
	return clonePost(created), nil
}

// Get fetches a post by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	if id == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clonePost(record), nil
}

// GetBySlug resolves a post by its slug. Public readers pass publishedOnly so
// drafts stay invisible even when the slug is known.
func (s *service) GetBySlug(ctx context.Context, postSlug string, publishedOnly bool) (*BlogPost, error) {
	postSlug = strings.TrimSpace(postSlug)
	if postSlug == "" {
		return nil, ErrSlugInvalid
	}
	record, err := s.repo.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !record.IsPublished() {
		return nil, &NotFoundError{Resource: "blog_post", Key: postSlug}
	}
	return clonePost(record), nil
}

// List returns every post, newest first, for admin views.
func (s *service) List(ctx context.Context) ([]*BlogPost, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return clonePosts(records), nil
}

// ListPublished returns the published posts, newest first.
func (s *service) ListPublished(ctx context.Context) ([]*BlogPost, error) {
	records, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return clonePosts(records), nil
}

// Update applies a partial update to a post.
func (s *service) Update(ctx context.Context, req UpdatePostRequest) (*BlogPost, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPostIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		postSlug, err := resolveSlug(*req.Slug, record.TitleEN)
		if err != nil {
			return nil, err
		}
		if postSlug != record.Slug {
			if existing, err := s.repo.GetBySlug(ctx, postSlug); err == nil && existing != nil && existing.ID != record.ID {
				return nil, ErrSlugExists
			} else if err != nil {
				var notFound *NotFoundError
				if !errors.As(err, &notFound) {
					return nil, err
				}
			}
		}
		record.Slug = postSlug
	}
	if req.TitleEN != nil {
		titleEN := strings.TrimSpace(*req.TitleEN)
		if titleEN == "" {
			return nil, ErrPostTitleRequired
		}
		record.TitleEN = titleEN
	}
	if req.TitleDA != nil {
		record.TitleDA = strings.TrimSpace(*req.TitleDA)
	}
	if req.ExcerptEN != nil {
		record.ExcerptEN = cloneStringPtr(req.ExcerptEN)
	}
	if req.ExcerptDA != nil {
		record.ExcerptDA = cloneStringPtr(req.ExcerptDA)
	}
	if req.BodyEN != nil {
		record.BodyEN = *req.BodyEN
	}
	if req.BodyDA != nil {
		record.BodyDA = *req.BodyDA
	}
	if req.HeroImageURL != nil {
		record.HeroImageURL = cloneStringPtr(req.HeroImageURL)
	}

	now := s.now()
	record.UpdatedAt = now

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, "update", req.ChangedBy, now)

	return clonePost(updated), nil
}

// SetStatus publishes or unpublishes a post. A transition to the current
// status is a no-op.
func (s *service) SetStatus(ctx context.Context, req SetPostStatusRequest) (*BlogPost, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	status, err := choosePostStatus(string(req.Status))
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if domain.Status(record.Status) == status {
		return clonePost(record), nil
	}

	now := s.now()
	action := "unpublish"
	record.Status = string(status)
	record.UpdatedAt = now
	if status == domain.StatusPublished {
		action = "publish"
		record.PublishedAt = &now
	} else {
		record.PublishedAt = nil
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, updated, action, req.ChangedBy, now)

	return clonePost(updated), nil
}

// Delete removes a post from the journal.
func (s *service) Delete(ctx context.Context, req DeletePostRequest) error {
	if req.ID == uuid.Nil {
		return ErrPostIDRequired
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

// RenderHTML resolves the post for a language and renders its markdown body.
func (s *service) RenderHTML(ctx context.Context, id uuid.UUID, lang domain.Lang) (LocalizedPost, error) {
	if id == uuid.Nil {
		return LocalizedPost{}, ErrPostIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return LocalizedPost{}, err
	}

	localized := record.Localized(lang)
	rendered, err := s.renderer.Render([]byte(localized.Body))
	if err != nil {
		return LocalizedPost{}, err
	}
	localized.BodyHTML = string(rendered)
	return localized, nil
}

func (s *service) recordAudit(ctx context.Context, record *BlogPost, action, changedBy string, now time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, jobs.AuditEvent{
		EntityType: "blog_post",
		EntityID:   record.ID.String(),
		Action:     action,
		Actor:      strings.TrimSpace(changedBy),
		OccurredAt: now,
		Metadata:   map[string]any{"slug": record.Slug},
	})
}

// resolveSlug validates a submitted slug or derives one from the title.
func resolveSlug(submitted, title string) (string, error) {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		derived, err := slug.Normalize(title)
		if err != nil {
			return "", ErrSlugInvalid
		}
		return derived, nil
	}
	if !slug.IsValid(submitted) {
		return "", ErrSlugInvalid
	}
	return submitted, nil
}

func choosePostStatus(status string) (domain.Status, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch domain.Status(status) {
	case "":
		return domain.StatusDraft, nil
	case domain.StatusDraft, domain.StatusPublished:
		return domain.Status(status), nil
	default:
		return "", ErrPostStatusInvalid
	}
}
