package blockscmd

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
)

func strPtr(v string) *string { return &v }

func newBlockService(t *testing.T) blocks.Service {
	t.Helper()
	return blocks.NewService(blocks.NewMemoryBlockRepository(),
		blocks.WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func seedBlock(t *testing.T, svc blocks.Service) *blocks.ContentBlock {
	t.Helper()
	created, err := svc.Create(context.Background(), blocks.CreateBlockRequest{
		Section:  "hero",
		BlockKey: "headline",
		TitleEN:  "Welcome",
		TitleDA:  "Velkommen",
	})
	if err != nil {
		t.Fatalf("seed block: %v", err)
	}
	return created
}

func TestPublishBlockCommand(t *testing.T) {
	svc := newBlockService(t)
	created := seedBlock(t, svc)
	handler := NewPublishBlockHandler(svc, nil)

	if err := handler.Execute(context.Background(), PublishBlockCommand{
		BlockID:   created.ID,
		ChangedBy: "admin@verdanta.dk",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	record, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !record.IsPublished() {
		t.Fatalf("expected published block, got %s", record.Status)
	}
}

func TestPublishBlockCommandValidation(t *testing.T) {
	handler := NewPublishBlockHandler(newBlockService(t), nil)

	err := handler.Execute(context.Background(), PublishBlockCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestRestoreBlockVersionCommand(t *testing.T) {
	svc := newBlockService(t)
	created := seedBlock(t, svc)
	if _, err := svc.Update(context.Background(), blocks.UpdateBlockRequest{
		ID:      created.ID,
		TitleEN: strPtr("Edited"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	handler := NewRestoreBlockVersionHandler(svc, nil)
	if err := handler.Execute(context.Background(), RestoreBlockVersionCommand{
		BlockID:    created.ID,
		Version:    1,
		RestoredBy: "admin@verdanta.dk",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	record, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.TitleEN != "Welcome" {
		t.Fatalf("expected restored title, got %q", record.TitleEN)
	}
}

func TestRestoreBlockVersionCommandRequiresVersion(t *testing.T) {
	handler := NewRestoreBlockVersionHandler(newBlockService(t), nil)

	err := handler.Execute(context.Background(), RestoreBlockVersionCommand{BlockID: uuid.New()})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestDuplicateBlockCommand(t *testing.T) {
	svc := newBlockService(t)
	created := seedBlock(t, svc)

	handler := NewDuplicateBlockHandler(svc, nil)
	if err := handler.Execute(context.Background(), DuplicateBlockCommand{
		BlockID:   created.ID,
		ChangedBy: "admin@verdanta.dk",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	clone, err := svc.GetByKey(context.Background(), "hero", "headline_copy")
	if err != nil {
		t.Fatalf("expected duplicated block: %v", err)
	}
	if clone.Status != "draft" {
		t.Fatalf("expected draft copy, got %s", clone.Status)
	}
}

func TestDuplicateBlockCommandWrapsServiceError(t *testing.T) {
	handler := NewDuplicateBlockHandler(newBlockService(t), nil)

	err := handler.Execute(context.Background(), DuplicateBlockCommand{BlockID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for missing block")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
