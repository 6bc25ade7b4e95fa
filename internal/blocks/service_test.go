package blocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/jobs"
)

func newTestService(t *testing.T, opts ...ServiceOption) (Service, *MemoryBlockRepository) {
	t.Helper()
	repo := NewMemoryBlockRepository()
	base := []ServiceOption{
		WithClock(func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }),
	}
	return NewService(repo, append(base, opts...)...), repo
}

func strPtr(v string) *string { return &v }

func TestCreateBlockRecordsInitialVersion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{
		Section:   "hero",
		BlockKey:  "hero_title",
		TitleEN:   "Sustainable goods",
		TitleDA:   "Baeredygtige varer",
		ChangedBy: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	if created.Status != string(domain.StatusDraft) {
		t.Fatalf("expected draft status, got %s", created.Status)
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(versions))
	}
	if versions[0].ChangeType != string(domain.ChangeTypeCreate) {
		t.Fatalf("expected create change type, got %s", versions[0].ChangeType)
	}
	if versions[0].Snapshot.TitleEN != "Sustainable goods" {
		t.Fatalf("snapshot title mismatch: %s", versions[0].Snapshot.TitleEN)
	}
}

func TestCreateBlockRejectsDuplicateKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"}); err != nil {
		t.Fatalf("create block: %v", err)
	}
	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"}); !errors.Is(err, ErrBlockExists) {
		t.Fatalf("expected ErrBlockExists, got %v", err)
	}

	// Same key in another section is allowed.
	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "footer", BlockKey: "hero_title"}); err != nil {
		t.Fatalf("create block in other section: %v", err)
	}
}

func TestCreateBlockValidatesKeyFormat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "Hero Title"}); !errors.Is(err, ErrBlockKeyInvalid) {
		t.Fatalf("expected ErrBlockKeyInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero-Title.v2"}); err != nil {
		t.Fatalf("hyphenated and mixed-case keys are allowed, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero"}); !errors.Is(err, ErrBlockKeyRequired) {
		t.Fatalf("expected ErrBlockKeyRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateBlockRequest{BlockKey: "hero_title"}); !errors.Is(err, ErrSectionRequired) {
		t.Fatalf("expected ErrSectionRequired, got %v", err)
	}
}

func TestUpdateBlockAppliesPartialChanges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{
		Section:  "hero",
		BlockKey: "hero_title",
		TitleEN:  "Before",
		TitleDA:  "Foer",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	updated, err := svc.Update(ctx, UpdateBlockRequest{
		ID:      created.ID,
		TitleEN: strPtr("After"),
		Value:   strPtr("42"),
	})
	if err != nil {
		t.Fatalf("update block: %v", err)
	}
	if updated.TitleEN != "After" {
		t.Fatalf("title not updated: %s", updated.TitleEN)
	}
	if updated.TitleDA != "Foer" {
		t.Fatalf("danish title should be untouched: %s", updated.TitleDA)
	}
	if updated.Value == nil || *updated.Value != "42" {
		t.Fatalf("value not updated")
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(versions))
	}
	if versions[0].ChangeType != string(domain.ChangeTypeUpdate) {
		t.Fatalf("expected update change type first, got %s", versions[0].ChangeType)
	}
}

func TestUpdateBlockEnforcesBaseVersion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	stale := 0
	if _, err := svc.Update(ctx, UpdateBlockRequest{ID: created.ID, TitleEN: strPtr("x"), BaseVersion: &stale}); !errors.Is(err, ErrBlockVersionConflict) {
		t.Fatalf("expected ErrBlockVersionConflict, got %v", err)
	}

	current := 1
	if _, err := svc.Update(ctx, UpdateBlockRequest{ID: created.ID, TitleEN: strPtr("x"), BaseVersion: &current}); err != nil {
		t.Fatalf("update with matching base version: %v", err)
	}
}

func TestSetStatusPublishAndUnpublish(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	published, err := svc.SetStatus(ctx, SetBlockStatusRequest{ID: created.ID, Status: domain.StatusPublished})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished() {
		t.Fatalf("expected published status")
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected published_at to be stamped")
	}

	// Publishing again is a no-op and records no version.
	if _, err := svc.SetStatus(ctx, SetBlockStatusRequest{ID: created.ID, Status: domain.StatusPublished}); err != nil {
		t.Fatalf("re-publish: %v", err)
	}

	unpublished, err := svc.SetStatus(ctx, SetBlockStatusRequest{ID: created.ID, Status: domain.StatusDraft})
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.PublishedAt != nil {
		t.Fatalf("expected published_at to be cleared")
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}
	if versions[0].ChangeType != string(domain.ChangeTypeUnpublish) {
		t.Fatalf("expected unpublish latest, got %s", versions[0].ChangeType)
	}
	if versions[1].ChangeType != string(domain.ChangeTypePublish) {
		t.Fatalf("expected publish second, got %s", versions[1].ChangeType)
	}
}

func TestDuplicateBlock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{
		Section:   "values",
		BlockKey:  "value_quality",
		TitleEN:   "Quality",
		SortOrder: 3,
		Status:    "published",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	dup, err := svc.Duplicate(ctx, DuplicateBlockRequest{ID: created.ID})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.BlockKey != "value_quality_copy" {
		t.Fatalf("unexpected copy key: %s", dup.BlockKey)
	}
	if dup.SortOrder != 4 {
		t.Fatalf("expected sort order 4, got %d", dup.SortOrder)
	}
	if dup.Status != string(domain.StatusDraft) {
		t.Fatalf("copy should start as draft, got %s", dup.Status)
	}

	if _, err := svc.Duplicate(ctx, DuplicateBlockRequest{ID: created.ID}); !errors.Is(err, ErrBlockExists) {
		t.Fatalf("expected ErrBlockExists on second duplicate, got %v", err)
	}
}

func TestRestoreVersionRecordsRollback(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title", TitleEN: "Original"})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	if _, err := svc.Update(ctx, UpdateBlockRequest{ID: created.ID, TitleEN: strPtr("Changed")}); err != nil {
		t.Fatalf("update block: %v", err)
	}

	restored, err := svc.RestoreVersion(ctx, RestoreBlockVersionRequest{ID: created.ID, Version: 1, RestoredBy: "admin@example.com"})
	if err != nil {
		t.Fatalf("restore version: %v", err)
	}
	if restored.TitleEN != "Original" {
		t.Fatalf("expected restored title, got %s", restored.TitleEN)
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}
	if versions[0].ChangeType != string(domain.ChangeTypeRollback) {
		t.Fatalf("expected rollback change type, got %s", versions[0].ChangeType)
	}
	if versions[0].ChangedBy != "admin@example.com" {
		t.Fatalf("expected changed_by carried through, got %s", versions[0].ChangedBy)
	}
}

func TestVersionRetentionPrunesOldest(t *testing.T) {
	svc, _ := newTestService(t, WithVersionRetentionLimit(3))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := svc.Update(ctx, UpdateBlockRequest{ID: created.ID, TitleEN: strPtr("v")}); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected retention to cap at 3, got %d", len(versions))
	}
	// Numbering keeps advancing even after pruning.
	if versions[0].Version != 5 {
		t.Fatalf("expected latest version 5, got %d", versions[0].Version)
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title", TitleEN: "Sustainable goods"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateBlockRequest{Section: "footer", BlockKey: "footer_tagline", TitleDA: "Baeredygtighed"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := svc.Search(ctx, "SUSTAIN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].BlockKey != "hero_title" {
		t.Fatalf("unexpected search results: %+v", results)
	}

	if _, err := svc.Search(ctx, "   "); !errors.Is(err, ErrSearchQueryRequired) {
		t.Fatalf("expected ErrSearchQueryRequired, got %v", err)
	}
}

func TestDeleteRemovesBlockAndHistory(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title"})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	if err := svc.Delete(ctx, DeleteBlockRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(ctx, created.ID); err == nil {
		t.Fatalf("expected not found after delete")
	}
	if versions, _ := repo.ListVersions(ctx, created.ID); len(versions) != 0 {
		t.Fatalf("expected versions removed with block, got %d", len(versions))
	}
}

func TestMetadataValidatorRejectsInvalidBags(t *testing.T) {
	svc, _ := newTestService(t, WithMetadataValidator(metadataValidatorFunc(func(section string, metadata map[string]any) error {
		if section != "hero" {
			return nil
		}
		if _, ok := metadata["gradient"]; !ok {
			return errors.New("gradient required")
		}
		return nil
	})))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateBlockRequest{
		Section:  "hero",
		BlockKey: "hero_title",
		Metadata: map[string]any{"other": true},
	}); !errors.Is(err, ErrMetadataInvalid) {
		t.Fatalf("expected ErrMetadataInvalid, got %v", err)
	}

	if _, err := svc.Create(ctx, CreateBlockRequest{
		Section:  "hero",
		BlockKey: "hero_title",
		Metadata: map[string]any{"gradient": "from-emerald-500"},
	}); err != nil {
		t.Fatalf("expected valid metadata to pass, got %v", err)
	}
}

type metadataValidatorFunc func(string, map[string]any) error

func (f metadataValidatorFunc) ValidateMetadata(section string, metadata map[string]any) error {
	return f(section, metadata)
}

func TestAuditRecorderReceivesMutations(t *testing.T) {
	recorder := jobs.NewInMemoryAuditRecorder()
	svc, _ := newTestService(t, WithAuditRecorder(recorder))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBlockRequest{Section: "hero", BlockKey: "hero_title", ChangedBy: "admin@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetStatus(ctx, SetBlockStatusRequest{ID: created.ID, Status: domain.StatusPublished}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	events := recorder.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(events))
	}
	if events[0].Action != "create" || events[1].Action != "publish" {
		t.Fatalf("unexpected audit actions: %s, %s", events[0].Action, events[1].Action)
	}
	if events[0].EntityID != created.ID.String() {
		t.Fatalf("audit entity mismatch")
	}
}

func TestGetRequiresID(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Get(context.Background(), uuid.Nil); !errors.Is(err, ErrBlockIDRequired) {
		t.Fatalf("expected ErrBlockIDRequired, got %v", err)
	}
}
