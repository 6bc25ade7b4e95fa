package cms_test

import (
	"context"
	"errors"
	"testing"

	cms "github.com/verdanta/cms"
	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/di"
	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/translations"
	"github.com/verdanta/cms/pkg/testsupport"
)

func newSQLiteModule(t *testing.T) *cms.Module {
	t.Helper()

	db, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := cms.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	cfg := cms.DefaultConfig()
	cfg.Cache.Enabled = false
	module, err := cms.New(cfg, di.WithBunDB(db))
	if err != nil {
		t.Fatalf("initialize module: %v", err)
	}
	return module
}

func TestModuleBlockLifecycleOnSQLite(t *testing.T) {
	module := newSQLiteModule(t)
	ctx := context.Background()
	svc := module.Blocks()

	created, err := svc.Create(ctx, blocks.CreateBlockRequest{
		Section:   "hero",
		BlockKey:  "headline",
		TitleEN:   "Welcome",
		TitleDA:   "Velkommen",
		Metadata:  map[string]any{"cta_label": "Read more"},
		ChangedBy: "admin@verdanta.dk",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != "draft" {
		t.Fatalf("expected draft default, got %s", created.Status)
	}

	title := "Welcome back"
	if _, err := svc.Update(ctx, blocks.UpdateBlockRequest{
		ID:        created.ID,
		TitleEN:   &title,
		ChangedBy: "admin@verdanta.dk",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	published, err := svc.SetStatus(ctx, blocks.SetBlockStatusRequest{
		ID:        created.ID,
		Status:    domain.StatusPublished,
		ChangedBy: "admin@verdanta.dk",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected published timestamp")
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}

	restored, err := svc.RestoreVersion(ctx, blocks.RestoreBlockVersionRequest{
		ID:         created.ID,
		Version:    1,
		RestoredBy: "admin@verdanta.dk",
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.TitleEN != "Welcome" {
		t.Fatalf("expected restored title, got %q", restored.TitleEN)
	}
	// Restore rolls editable fields back but publication state stays put.
	if restored.Status != "published" {
		t.Fatalf("expected status untouched by restore, got %s", restored.Status)
	}

	if _, err := svc.Create(ctx, blocks.CreateBlockRequest{
		Section:  "hero",
		BlockKey: "headline",
		TitleEN:  "Duplicate",
		TitleDA:  "Dublet",
	}); !errors.Is(err, blocks.ErrBlockExists) {
		t.Fatalf("expected ErrBlockExists, got %v", err)
	}
}

func TestModuleTranslationsAndQuotationsOnSQLite(t *testing.T) {
	module := newSQLiteModule(t)
	ctx := context.Background()

	textEN := "Read more"
	textDA := "Laes mere"
	record, err := module.Translations().Upsert(ctx, translations.UpsertTranslationRequest{
		Key:    "cta.read_more",
		TextEN: &textEN,
		TextDA: &textDA,
		Status: "published",
	})
	if err != nil {
		t.Fatalf("upsert translation: %v", err)
	}
	if record.TextDA != "Laes mere" {
		t.Fatalf("unexpected translation: %+v", record)
	}

	if got := module.Translations().Resolve(ctx, domain.LangDA, "cta.read_more"); got != "Laes mere" {
		t.Fatalf("expected Danish text, got %q", got)
	}
	if got := module.Translations().Resolve(ctx, domain.LangDA, "nav.missing"); got != "nav.missing" {
		t.Fatalf("expected key echo, got %q", got)
	}

	inquiry, err := module.Quotations().Submit(ctx, quotations.SubmitQuotationRequest{
		Name:     "Mette Hansen",
		Email:    "mette@example.dk",
		Quantity: 250,
	})
	if err != nil {
		t.Fatalf("submit quotation: %v", err)
	}
	if inquiry.Status != quotations.StatusNew {
		t.Fatalf("expected new status, got %s", inquiry.Status)
	}

	listed, err := module.Quotations().List(ctx)
	if err != nil {
		t.Fatalf("list quotations: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one inquiry, got %d", len(listed))
	}
}

func TestModuleAdminHelpersWired(t *testing.T) {
	module, err := cms.New(cms.DefaultConfig())
	if err != nil {
		t.Fatalf("initialize module: %v", err)
	}
	if module.ContentAdmin() == nil || module.History() == nil {
		t.Fatalf("expected admin helpers to be wired")
	}

	ctx := context.Background()
	if _, err := module.Blocks().Create(ctx, blocks.CreateBlockRequest{
		Section:  "values",
		BlockKey: "sustainability",
		TitleEN:  "Sustainability",
		TitleDA:  "Baeredygtighed",
	}); err != nil {
		t.Fatalf("create block: %v", err)
	}

	overview, err := module.ContentAdmin().Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalBlocks != 1 {
		t.Fatalf("expected one block in overview, got %d", overview.TotalBlocks)
	}
}
