package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verdanta/cms/internal/identity"
	"github.com/verdanta/cms/internal/jobs"
)

func newTestService(t *testing.T, opts ...ServiceOption) (Service, *MemorySettingRepository) {
	t.Helper()
	repo := NewMemorySettingRepository()
	base := []ServiceOption{
		WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := NewService(repo, append(base, opts...)...)
	return svc, repo
}

func TestUpsertIsIdempotentPerKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, UpsertSettingRequest{Key: "contact.whatsapp_number", Value: "+4512345678"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.ID != identity.SettingUUID("contact.whatsapp_number") {
		t.Fatalf("expected deterministic id, got %s", first.ID)
	}

	second, err := svc.Upsert(ctx, UpsertSettingRequest{Key: "Contact.WhatsApp_Number", Value: "+4587654321"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected key normalization to hit the same row")
	}
	if second.Value != "+4587654321" {
		t.Fatalf("expected value replaced, got %q", second.Value)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one setting, got %d", len(listed))
	}
}

func TestUpsertValidatesKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, UpsertSettingRequest{Key: " "}); !errors.Is(err, ErrSettingKeyRequired) {
		t.Fatalf("expected ErrSettingKeyRequired, got %v", err)
	}
	if _, err := svc.Upsert(ctx, UpsertSettingRequest{Key: "contact number"}); !errors.Is(err, ErrSettingKeyInvalid) {
		t.Fatalf("expected ErrSettingKeyInvalid, got %v", err)
	}
}

func TestStructuredSettingsKeepJSONBag(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, UpsertSettingRequest{
		Key: "site.social",
		ValueJSON: map[string]any{
			"instagram": "https://instagram.com/verdanta",
			"linkedin":  "https://linkedin.com/company/verdanta",
		},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	fetched, err := svc.Get(ctx, "site.social")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.ValueJSON["instagram"] != "https://instagram.com/verdanta" {
		t.Fatalf("expected structured value preserved, got %v", fetched.ValueJSON)
	}

	// Returned bag is a copy; mutating it must not leak into storage.
	fetched.ValueJSON["instagram"] = "mutated"
	again, err := svc.Get(ctx, "site.social")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ValueJSON["instagram"] != "https://instagram.com/verdanta" {
		t.Fatalf("expected stored bag unchanged, got %v", again.ValueJSON)
	}
	_ = saved
}

func TestValueDegradesToEmptyString(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if got := svc.Value(ctx, "contact.email"); got != "" {
		t.Fatalf("expected empty value for missing setting, got %q", got)
	}
	if _, err := svc.Upsert(ctx, UpsertSettingRequest{Key: "contact.email", Value: "hello@verdanta.dk"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got := svc.Value(ctx, "contact.email"); got != "hello@verdanta.dk" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestDeleteSettingRecordsAudit(t *testing.T) {
	recorder := jobs.NewInMemoryAuditRecorder()
	svc, _ := newTestService(t, WithAuditRecorder(recorder))
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, UpsertSettingRequest{Key: "site.name", Value: "Verdanta", ChangedBy: "admin@verdanta.dk"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.Delete(ctx, DeleteSettingRequest{Key: "site.name", ChangedBy: "admin@verdanta.dk"}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var notFound *NotFoundError
	if _, err := svc.Get(ctx, "site.name"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}

	events := recorder.Events()
	if len(events) != 2 || events[0].Action != "upsert" || events[1].Action != "delete" {
		t.Fatalf("unexpected audit trail: %+v", events)
	}
}
