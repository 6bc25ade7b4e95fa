package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/domain"
)

// PanelLimit caps how many versions the history panel loads per block.
const PanelLimit = 50

// ErrBlockServiceRequired indicates the service was constructed without the
// block service dependency.
var ErrBlockServiceRequired = errors.New("adminhistory: block service is required")

// badgeColors maps a change type to the badge color the panel renders.
var badgeColors = map[domain.ChangeType]string{
	domain.ChangeTypeCreate:    "green",
	domain.ChangeTypeUpdate:    "blue",
	domain.ChangeTypePublish:   "emerald",
	domain.ChangeTypeUnpublish: "amber",
	domain.ChangeTypeRollback:  "purple",
}

// BadgeColor returns the badge color for a change type. Unknown change types
// render gray.
func BadgeColor(changeType string) string {
	if color, ok := badgeColors[domain.ChangeType(changeType)]; ok {
		return color
	}
	return "gray"
}

// Field is one labelled snapshot value shown in the expanded history entry.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Entry is a single row in the history panel.
type Entry struct {
	Version    int       `json:"version"`
	ChangeType string    `json:"change_type"`
	Badge      string    `json:"badge"`
	ChangedBy  string    `json:"changed_by"`
	ChangedAt  time.Time `json:"changed_at"`
	Relative   string    `json:"relative"`
	Fields     []Field   `json:"fields"`
}

// Option mutates the service configuration.
type Option func(*Service)

// WithClock overrides the clock used to compute relative timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Service builds the version history panel for a content block and forwards
// restore requests to the block service.
type Service struct {
	blocks blocks.Service
	clock  func() time.Time
}

// NewService constructs a history service.
func NewService(blockService blocks.Service, opts ...Option) *Service {
	svc := &Service{
		blocks: blockService,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// History returns the panel entries for a block, newest first, capped at
// PanelLimit rows.
func (s *Service) History(ctx context.Context, blockID uuid.UUID) ([]Entry, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}

	versions, err := s.blocks.ListVersions(ctx, blockID, PanelLimit)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	entries := make([]Entry, 0, len(versions))
	for _, version := range versions {
		entries = append(entries, Entry{
			Version:    version.Version,
			ChangeType: version.ChangeType,
			Badge:      BadgeColor(version.ChangeType),
			ChangedBy:  version.ChangedBy,
			ChangedAt:  version.ChangedAt,
			Relative:   FormatRelative(now, version.ChangedAt),
			Fields:     snapshotFields(version.Snapshot),
		})
	}
	return entries, nil
}

// Restore applies a prior version back onto the live block.
func (s *Service) Restore(ctx context.Context, blockID uuid.UUID, version int, restoredBy string) (*blocks.ContentBlock, error) {
	if s.blocks == nil {
		return nil, ErrBlockServiceRequired
	}
	return s.blocks.RestoreVersion(ctx, blocks.RestoreBlockVersionRequest{
		ID:         blockID,
		Version:    version,
		RestoredBy: restoredBy,
	})
}

// snapshotFields flattens the snapshot into the label/value pairs the panel
// shows when an entry is expanded. Empty optional fields are skipped.
func snapshotFields(snap blocks.BlockSnapshot) []Field {
	fields := []Field{
		{Label: "Title (EN)", Value: snap.TitleEN},
		{Label: "Title (DA)", Value: snap.TitleDA},
	}
	appendOptional := func(label string, value *string) {
		if value != nil && *value != "" {
			fields = append(fields, Field{Label: label, Value: *value})
		}
	}
	appendOptional("Description (EN)", snap.DescriptionEN)
	appendOptional("Description (DA)", snap.DescriptionDA)
	appendOptional("Value", snap.Value)
	appendOptional("Icon", snap.Icon)
	appendOptional("Color", snap.Color)
	appendOptional("Image", snap.ImageURL)
	return fields
}
