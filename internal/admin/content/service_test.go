package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verdanta/cms/internal/blocks"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	blockService := blocks.NewService(blocks.NewMemoryBlockRepository(),
		blocks.WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
	return NewService(blockService)
}

func strPtr(v string) *string { return &v }

func TestCreateBlockRejectsInvalidMetadata(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBlock(ctx, CreateBlockInput{
		Section:     "hero",
		BlockKey:    "headline",
		TitleEN:     "Welcome",
		TitleDA:     "Velkommen",
		RawMetadata: `{"cta": `,
	})
	if !errors.Is(err, blocks.ErrMetadataInvalid) {
		t.Fatalf("expected ErrMetadataInvalid, got %v", err)
	}

	listed, err := svc.Search(ctx, "Welcome")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected nothing written after rejected create, got %d", len(listed))
	}
}

func TestCreateBlockParsesMetadata(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlock(ctx, CreateBlockInput{
		Section:     "hero",
		BlockKey:    "headline",
		TitleEN:     "Welcome",
		TitleDA:     "Velkommen",
		RawMetadata: `{"cta_label": "Read more", "columns": 2}`,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Metadata["cta_label"] != "Read more" {
		t.Fatalf("unexpected metadata: %+v", created.Metadata)
	}
}

func TestUpdateBlockDropsMalformedMetadata(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlock(ctx, CreateBlockInput{
		Section:     "hero",
		BlockKey:    "headline",
		TitleEN:     "Welcome",
		TitleDA:     "Velkommen",
		RawMetadata: `{"cta_label": "Read more"}`,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateBlock(ctx, UpdateBlockInput{
		ID:          created.ID,
		TitleEN:     strPtr("Welcome back"),
		RawMetadata: strPtr(`{"cta_label": `),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TitleEN != "Welcome back" {
		t.Fatalf("expected title update to proceed, got %q", updated.TitleEN)
	}
	if updated.Metadata["cta_label"] != "Read more" {
		t.Fatalf("expected metadata untouched after malformed input, got %+v", updated.Metadata)
	}
}

func TestUpdateBlockReplacesMetadataWhenValid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlock(ctx, CreateBlockInput{
		Section:     "hero",
		BlockKey:    "headline",
		TitleEN:     "Welcome",
		TitleDA:     "Velkommen",
		RawMetadata: `{"cta_label": "Read more"}`,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateBlock(ctx, UpdateBlockInput{
		ID:          created.ID,
		RawMetadata: strPtr(`{"cta_label": "Shop now"}`),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Metadata["cta_label"] != "Shop now" {
		t.Fatalf("expected metadata replaced, got %+v", updated.Metadata)
	}
}

func TestOverviewGroupsSectionsByPage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []struct {
		section string
		key     string
	}{
		{"hero", "headline"},
		{"hero", "subline"},
		{"values", "sustainability"},
		{"legacy_banner", "notice"},
	}
	for _, item := range seed {
		if _, err := svc.CreateBlock(ctx, CreateBlockInput{
			Section:  item.section,
			BlockKey: item.key,
			TitleEN:  "Title",
			TitleDA:  "Titel",
		}); err != nil {
			t.Fatalf("seed %s/%s: %v", item.section, item.key, err)
		}
	}

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalBlocks != 4 {
		t.Fatalf("expected 4 blocks, got %d", overview.TotalBlocks)
	}

	pages := map[string]PageCount{}
	for _, page := range overview.Pages {
		pages[page.Page] = page
	}
	home, ok := pages["home"]
	if !ok || home.Sections != 2 || home.Blocks != 3 {
		t.Fatalf("unexpected home rollup: %+v", pages)
	}
	other, ok := pages["other"]
	if !ok || other.Blocks != 1 {
		t.Fatalf("expected undeclared section in the other bucket: %+v", pages)
	}

	for _, group := range overview.Sections {
		if group.Section == "legacy_banner" && group.Page != "other" {
			t.Fatalf("expected legacy_banner on the other page, got %q", group.Page)
		}
	}
}

func TestSetStatusPublishes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlock(ctx, CreateBlockInput{
		Section:  "hero",
		BlockKey: "headline",
		TitleEN:  "Welcome",
		TitleDA:  "Velkommen",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published, err := svc.SetStatus(ctx, created.ID, "published", "admin@verdanta.dk")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if !published.IsPublished() {
		t.Fatalf("expected published block, got %s", published.Status)
	}
}
