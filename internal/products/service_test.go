package products

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/jobs"
)

func newTestService(t *testing.T, opts ...ServiceOption) (Service, *MemoryProductRepository) {
	t.Helper()
	repo := NewMemoryProductRepository()
	base := []ServiceOption{
		WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := NewService(repo, append(base, opts...)...)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestCreateProductDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{
		NameEN:     "Bamboo Bottle",
		NameDA:     "Bambusflaske",
		PriceCents: 19900,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("expected new product to be active")
	}
	if created.Currency != "DKK" {
		t.Fatalf("expected default currency DKK, got %s", created.Currency)
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Fatalf("expected matching timestamps on create")
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateProductRequest{NameEN: "  "}); !errors.Is(err, ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bottle", PriceCents: -1}); !errors.Is(err, ErrPriceInvalid) {
		t.Fatalf("expected ErrPriceInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bottle", Currency: "kroner"}); !errors.Is(err, ErrCurrencyInvalid) {
		t.Fatalf("expected ErrCurrencyInvalid, got %v", err)
	}
}

func TestUpdateProductAppliesPartialChanges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{
		NameEN:        "Bamboo Bottle",
		DescriptionEN: strPtr("Reusable bottle"),
		PriceCents:    19900,
		Category:      "drinkware",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := int64(17900)
	updated, err := svc.Update(ctx, UpdateProductRequest{
		ID:         created.ID,
		NameDA:     strPtr("Bambusflaske"),
		PriceCents: &price,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.NameDA != "Bambusflaske" {
		t.Fatalf("expected danish name updated, got %q", updated.NameDA)
	}
	if updated.PriceCents != 17900 {
		t.Fatalf("expected price updated, got %d", updated.PriceCents)
	}
	if updated.NameEN != "Bamboo Bottle" || updated.Category != "drinkware" {
		t.Fatalf("expected untouched fields preserved")
	}
}

func TestToggleActiveRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bamboo Bottle"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleActive(ctx, ToggleActiveRequest{ID: created.ID})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("expected product deactivated")
	}

	restored, err := svc.ToggleActive(ctx, ToggleActiveRequest{ID: created.ID})
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !restored.IsActive {
		t.Fatalf("expected product reactivated")
	}
}

func TestListActiveExcludesInactive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bamboo Bottle", SortOrder: 2})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(ctx, CreateProductRequest{NameEN: "Hemp Tote", SortOrder: 1}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if _, err := svc.ToggleActive(ctx, ToggleActiveRequest{ID: first.ID}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].NameEN != "Hemp Tote" {
		t.Fatalf("expected only the active product, got %d", len(active))
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin list to include inactive products, got %d", len(all))
	}
	if all[0].NameEN != "Hemp Tote" {
		t.Fatalf("expected sort order to drive listing, got %s first", all[0].NameEN)
	}
}

func TestLocalizedProductFallsBackToEnglish(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{
		NameEN:        "Bamboo Bottle",
		DescriptionEN: strPtr("Reusable bottle"),
		DescriptionDA: strPtr("Genanvendelig flaske"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	da := created.Localized(domain.LangDA)
	if da.Name != "Bamboo Bottle" {
		t.Fatalf("expected english fallback for empty danish name, got %q", da.Name)
	}
	if da.Description != "Genanvendelig flaske" {
		t.Fatalf("expected danish description, got %q", da.Description)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bamboo Bottle"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, DeleteProductRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var notFound *NotFoundError
	if _, err := svc.Get(ctx, created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestAuditRecorderReceivesProductMutations(t *testing.T) {
	recorder := jobs.NewInMemoryAuditRecorder()
	svc, _ := newTestService(t, WithAuditRecorder(recorder))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{NameEN: "Bamboo Bottle", ChangedBy: "admin@verdanta.dk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleActive(ctx, ToggleActiveRequest{ID: created.ID, ChangedBy: "admin@verdanta.dk"}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	events := recorder.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(events))
	}
	if events[0].Action != "create" || events[1].Action != "deactivate" {
		t.Fatalf("unexpected actions: %s, %s", events[0].Action, events[1].Action)
	}
	if events[0].EntityType != "product" {
		t.Fatalf("unexpected entity type %s", events[0].EntityType)
	}
}
