package translations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/identity"
)

func newTestService(t *testing.T, opts ...ServiceOption) (Service, *MemoryTranslationRepository) {
	t.Helper()
	repo := NewMemoryTranslationRepository()
	base := []ServiceOption{
		WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := NewService(repo, append(base, opts...)...)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestUpsertCreatesWithDeterministicID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{
		Key:    "nav.products",
		TextEN: strPtr("Products"),
		TextDA: strPtr("Produkter"),
		Status: "published",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID != identity.TranslationUUID("nav.products") {
		t.Fatalf("expected deterministic id, got %s", created.ID)
	}
	if created.PublishedAt == nil {
		t.Fatalf("expected published_at stamped")
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 1 || versions[0].ChangeType != "create" {
		t.Fatalf("expected one create version, got %v", versions)
	}
}

func TestUpsertUpdatesExistingKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "nav.products", TextEN: strPtr("Products")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "nav.products", TextDA: strPtr("Produkter")})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected same record, got new id")
	}
	if updated.TextEN != "Products" || updated.TextDA != "Produkter" {
		t.Fatalf("expected merged text fields, got %q/%q", updated.TextEN, updated.TextDA)
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 2 || versions[0].ChangeType != "update" {
		t.Fatalf("expected update version on top, got %v", versions)
	}
}

func TestUpsertValidatesKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "  "}); !errors.Is(err, ErrKeyRequired) {
		t.Fatalf("expected ErrKeyRequired, got %v", err)
	}
	if _, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "Nav Products"}); !errors.Is(err, ErrKeyInvalid) {
		t.Fatalf("expected ErrKeyInvalid, got %v", err)
	}
}

func TestResolveFallsBackToEnglishAndKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{
		Key:    "nav.contact",
		TextEN: strPtr("Contact"),
		Status: "published",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if got := svc.Resolve(ctx, domain.LangDA, "nav.contact"); got != "Contact" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := svc.Resolve(ctx, domain.LangEN, "nav.missing"); got != "nav.missing" {
		t.Fatalf("expected key for missing translation, got %q", got)
	}

	if _, err := svc.SetStatus(ctx, SetTranslationStatusRequest{ID: created.ID, Status: domain.StatusDraft}); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if got := svc.Resolve(ctx, domain.LangEN, "nav.contact"); got != "nav.contact" {
		t.Fatalf("expected key for unpublished translation, got %q", got)
	}
}

func TestRestoreVersionCopiesTextOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "hero.title", TextEN: strPtr("Original")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "hero.title", TextEN: strPtr("Changed")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.SetStatus(ctx, SetTranslationStatusRequest{ID: created.ID, Status: domain.StatusPublished}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	restored, err := svc.RestoreVersion(ctx, RestoreTranslationVersionRequest{ID: created.ID, Version: 1})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.TextEN != "Original" {
		t.Fatalf("expected restored text, got %q", restored.TextEN)
	}
	if restored.Status != string(domain.StatusPublished) {
		t.Fatalf("expected status untouched by restore, got %s", restored.Status)
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if versions[0].ChangeType != "rollback" {
		t.Fatalf("expected rollback version on top, got %s", versions[0].ChangeType)
	}
}

func TestVersionRetentionPrunesOldestTranslations(t *testing.T) {
	svc, _ := newTestService(t, WithVersionRetentionLimit(3))
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "hero.title", TextEN: strPtr("v1")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	for _, text := range []string{"v2", "v3", "v4", "v5"} {
		if _, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "hero.title", TextEN: strPtr(text)}); err != nil {
			t.Fatalf("update %s: %v", text, err)
		}
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected retention to keep 3 versions, got %d", len(versions))
	}
	if versions[0].Version != 5 {
		t.Fatalf("expected version numbers to keep advancing, got %d", versions[0].Version)
	}
	if versions[len(versions)-1].Version != 3 {
		t.Fatalf("expected oldest versions pruned, got %d", versions[len(versions)-1].Version)
	}
}

func TestDeleteRemovesTranslationAndHistory(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertTranslationRequest{Key: "hero.title", TextEN: strPtr("Title")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.Delete(ctx, DeleteTranslationRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var notFound *NotFoundError
	if _, err := svc.Get(ctx, created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
	if versions, _ := repo.ListVersions(ctx, created.ID); len(versions) != 0 {
		t.Fatalf("expected versions removed with the record, got %d", len(versions))
	}
}
