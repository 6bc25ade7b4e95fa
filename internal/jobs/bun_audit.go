package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AuditRecord is the persisted form of an AuditEvent.
type AuditRecord struct {
	bun.BaseModel `bun:"table:audit_events,alias:ae"`

	ID         uuid.UUID      `bun:"id,pk,type:uuid"`
	EntityType string         `bun:"entity_type,notnull"`
	EntityID   string         `bun:"entity_id,notnull"`
	Action     string         `bun:"action,notnull"`
	Actor      string         `bun:"actor"`
	OccurredAt time.Time      `bun:"occurred_at,notnull"`
	Metadata   map[string]any `bun:"metadata,type:jsonb"`
}

// BunAuditRecorder persists audit events through bun.
type BunAuditRecorder struct {
	db *bun.DB
}

// NewBunAuditRecorder constructs a recorder backed by the supplied database.
func NewBunAuditRecorder(db *bun.DB) *BunAuditRecorder {
	return &BunAuditRecorder{db: db}
}

var _ AuditRecorder = (*BunAuditRecorder)(nil)

// Record inserts the event into the audit_events table.
func (r *BunAuditRecorder) Record(ctx context.Context, event AuditEvent) error {
	record := &AuditRecord{
		ID:         uuid.New(),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     event.Action,
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt,
		Metadata:   event.Metadata,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now().UTC()
	}
	_, err := r.db.NewInsert().Model(record).Exec(ctx)
	return err
}

// List returns every recorded event ordered by occurrence.
func (r *BunAuditRecorder) List(ctx context.Context) ([]AuditEvent, error) {
	var records []AuditRecord
	if err := r.db.NewSelect().Model(&records).Order("occurred_at ASC").Scan(ctx); err != nil {
		return nil, err
	}
	events := make([]AuditEvent, 0, len(records))
	for _, record := range records {
		events = append(events, AuditEvent{
			EntityType: record.EntityType,
			EntityID:   record.EntityID,
			Action:     record.Action,
			Actor:      record.Actor,
			OccurredAt: record.OccurredAt,
			Metadata:   record.Metadata,
		})
	}
	return events, nil
}

// Clear truncates the audit log.
func (r *BunAuditRecorder) Clear(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*AuditRecord)(nil)).Where("1 = 1").Exec(ctx)
	return err
}
