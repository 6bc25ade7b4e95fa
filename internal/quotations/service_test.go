package quotations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/jobs"
)

func newTestService(t *testing.T, opts ...ServiceOption) (Service, *MemoryQuotationRepository) {
	t.Helper()
	repo := NewMemoryQuotationRepository()
	base := []ServiceOption{
		WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := NewService(repo, append(base, opts...)...)
	return svc, repo
}

func TestSubmitStoresNewInquiry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	productID := uuid.New()
	created, err := svc.Submit(ctx, SubmitQuotationRequest{
		Name:        "Mette Hansen",
		Email:       "mette@example.dk",
		Phone:       "+45 12 34 56 78",
		CompanyName: "Hansen & Co",
		ProductID:   &productID,
		Quantity:    250,
		Message:     "Interested in bulk pricing.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != StatusNew {
		t.Fatalf("expected new status, got %s", created.Status)
	}
	if created.ProductID == nil || *created.ProductID != productID {
		t.Fatalf("expected product reference preserved")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitQuotationRequest{Email: "a@b.dk"}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "Mette", Email: "not-an-email"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "Mette", Email: "a@b.dk", Quantity: -1}); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryQuotationRepository()
	tick := 0
	svc := NewService(repo, WithClock(func() time.Time {
		tick++
		return now.Add(time.Duration(tick) * time.Minute)
	}))
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "First", Email: "first@example.dk"}); err != nil {
		t.Fatalf("submit first: %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "Second", Email: "second@example.dk"}); err != nil {
		t.Fatalf("submit second: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "Second" {
		t.Fatalf("expected newest first, got %v", listed)
	}
}

func TestSetStatusWalksFollowUpFlow(t *testing.T) {
	recorder := jobs.NewInMemoryAuditRecorder()
	svc, _ := newTestService(t, WithAuditRecorder(recorder))
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "Mette", Email: "mette@example.dk"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	contacted, err := svc.SetStatus(ctx, SetQuotationStatusRequest{ID: created.ID, Status: StatusContacted, ChangedBy: "admin@verdanta.dk"})
	if err != nil {
		t.Fatalf("set contacted: %v", err)
	}
	if contacted.Status != StatusContacted {
		t.Fatalf("expected contacted, got %s", contacted.Status)
	}

	if _, err := svc.SetStatus(ctx, SetQuotationStatusRequest{ID: created.ID, Status: "resolved"}); !errors.Is(err, ErrQuotationStatusInvalid) {
		t.Fatalf("expected ErrQuotationStatusInvalid, got %v", err)
	}

	events := recorder.Events()
	if len(events) != 2 || events[1].Action != "status:contacted" {
		t.Fatalf("unexpected audit trail: %+v", events)
	}
}

func TestDeleteQuotation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitQuotationRequest{Name: "Mette", Email: "mette@example.dk"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.Delete(ctx, DeleteQuotationRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var notFound *NotFoundError
	if _, err := svc.Get(ctx, created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
