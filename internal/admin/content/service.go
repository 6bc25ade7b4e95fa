package content

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/internal/pagemap"
	"github.com/verdanta/cms/pkg/interfaces"
)

// ErrBlockServiceRequired indicates the service was constructed without the
// block service dependency.
var ErrBlockServiceRequired = errors.New("admincontent: block service is required")

// Option mutates the service configuration.
type Option func(*Service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service backs the admin content manager screens. It delegates persistence
// to the block service and adds the grouping, raw-metadata handling, and
// page rollups the admin UI renders.
type Service struct {
	blocks blocks.Service
	logger interfaces.Logger
}

// NewService constructs a content admin service.
func NewService(blockService blocks.Service, opts ...Option) *Service {
	svc := &Service{
		blocks: blockService,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// SectionGroup is one section's blocks together with the page it renders on.
type SectionGroup struct {
	Section string                 `json:"section"`
	Page    string                 `json:"page"`
	Blocks  []*blocks.ContentBlock `json:"blocks"`
}

// PageCount summarises how many blocks a public page pulls in.
type PageCount struct {
	Page     string `json:"page"`
	Sections int    `json:"sections"`
	Blocks   int    `json:"blocks"`
}

// Overview is the admin landing view: every block grouped by section, plus
// per-page rollups.
type Overview struct {
	Sections    []SectionGroup `json:"sections"`
	Pages       []PageCount    `json:"pages"`
	TotalBlocks int            `json:"total_blocks"`
}

// CreateBlockInput mirrors the admin create form. Metadata arrives as the raw
// JSON string typed into the editor.
type CreateBlockInput struct {
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
	RawMetadata   string
	SortOrder     int
	Status        string
	ChangedBy     string
}

// UpdateBlockInput mirrors the admin edit form. Nil fields are untouched; a
// non-nil RawMetadata replaces the metadata bag when it parses.
type UpdateBlockInput struct {
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
	RawMetadata   *string
	SortOrder     *int
	BaseVersion   *int
	ChangedBy     string
}

// Overview returns every block grouped by section with per-page counts.
// Blocks whose section is not declared on any page land in the "other"
// bucket.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}

	records, err := s.blocks.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*blocks.ContentBlock)
	order := []string{}
	for _, record := range records {
		if _, ok := grouped[record.Section]; !ok {
			order = append(order, record.Section)
		}
		grouped[record.Section] = append(grouped[record.Section], record)
	}

	overview := &Overview{
		Sections:    make([]SectionGroup, 0, len(order)),
		TotalBlocks: len(records),
	}
	pageBlocks := make(map[string]int)
	pageSections := make(map[string]int)
	for _, section := range order {
		page := pagemap.PageFor(section)
		overview.Sections = append(overview.Sections, SectionGroup{
			Section: section,
			Page:    page,
			Blocks:  grouped[section],
		})
		pageBlocks[page] += len(grouped[section])
		pageSections[page]++
	}

	pages := make([]string, 0, len(pageBlocks))
	for page := range pageBlocks {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	for _, page := range pages {
		overview.Pages = append(overview.Pages, PageCount{
			Page:     page,
			Sections: pageSections[page],
			Blocks:   pageBlocks[page],
		})
	}

	return overview, nil
}

// GetBlock delegates to the block service.
func (s *Service) GetBlock(ctx context.Context, id uuid.UUID) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}
	return s.blocks.Get(ctx, id)
}

// Search delegates to the block service search.
func (s *Service) Search(ctx context.Context, query string) ([]*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}
	return s.blocks.Search(ctx, query)
}

// CreateBlock parses the raw metadata and creates the block. Invalid JSON
// rejects the whole submission; nothing is written.
func (s *Service) CreateBlock(ctx context.Context, input CreateBlockInput) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}

	metadata, err := parseRawMetadata(input.RawMetadata)
	if err != nil {
		return nil, errors.Join(blocks.ErrMetadataInvalid, err)
	}

	return s.blocks.Create(ctx, blocks.CreateBlockRequest{
		Section:       input.Section,
		BlockKey:      input.BlockKey,
		TitleEN:       input.TitleEN,
		TitleDA:       input.TitleDA,
		DescriptionEN: input.DescriptionEN,
		DescriptionDA: input.DescriptionDA,
		Value:         input.Value,
		Icon:          input.Icon,
		Color:         input.Color,
		ImageURL:      input.ImageURL,
		Metadata:      metadata,
		SortOrder:     input.SortOrder,
		Status:        input.Status,
		ChangedBy:     input.ChangedBy,
	})
}

// UpdateBlock applies the edit form. Malformed raw metadata is dropped and
// the rest of the update proceeds; this mirrors how the editor behaves, where
// a half-typed JSON bag must not block a copy fix.
func (s *Service) UpdateBlock(ctx context.Context, input UpdateBlockInput) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}

	req := blocks.UpdateBlockRequest{
		ID:            input.ID,
		Section:       input.Section,
		BlockKey:      input.BlockKey,
		TitleEN:       input.TitleEN,
		TitleDA:       input.TitleDA,
		DescriptionEN: input.DescriptionEN,
		DescriptionDA: input.DescriptionDA,
		Value:         input.Value,
		Icon:          input.Icon,
		Color:         input.Color,
		ImageURL:      input.ImageURL,
		SortOrder:     input.SortOrder,
		BaseVersion:   input.BaseVersion,
		ChangedBy:     input.ChangedBy,
	}

	if input.RawMetadata != nil {
		metadata, err := parseRawMetadata(*input.RawMetadata)
		if err != nil {
			s.logger.Warn("dropping malformed metadata on update", "block_id", input.ID.String(), "error", err)
		} else {
			req.Metadata = metadata
		}
	}

	return s.blocks.Update(ctx, req)
}

// DuplicateBlock delegates to the block service.
func (s *Service) DuplicateBlock(ctx context.Context, id uuid.UUID, changedBy string) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}
	return s.blocks.Duplicate(ctx, blocks.DuplicateBlockRequest{ID: id, ChangedBy: changedBy})
}

// DeleteBlock delegates to the block service.
func (s *Service) DeleteBlock(ctx context.Context, id uuid.UUID, changedBy string) error {
	if s.blocks == nil {
		return ErrBlockServiceRequired
	}
	return s.blocks.Delete(ctx, blocks.DeleteBlockRequest{ID: id, ChangedBy: changedBy})
}

// SetStatus delegates to the block service.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status, changedBy string) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}
	return s.blocks.SetStatus(ctx, blocks.SetBlockStatusRequest{
		ID:        id,
		Status:    domain.ParseStatus(status),
		ChangedBy: changedBy,
	})
}

// parseRawMetadata decodes the editor's metadata textarea. An empty string
// means "no metadata"; whitespace-only input counts as empty too.
func parseRawMetadata(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}
