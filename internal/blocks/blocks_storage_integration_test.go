package blocks_test

import (
	"context"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/pkg/testsupport"
)

func registerBlockModels(t *testing.T, db *bun.DB) {
	t.Helper()
	ctx := context.Background()
	if _, err := db.NewCreateTable().Model((*blocks.ContentBlock)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create content_blocks table: %v", err)
	}
	if _, err := db.NewCreateTable().Model((*blocks.ContentBlockVersion)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create content_block_versions table: %v", err)
	}
}

func TestBlocksService_WithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()

	bunDB, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = bunDB.Close()
	})

	registerBlockModels(t, bunDB)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	repo := blocks.NewBunBlockRepositoryWithCache(bunDB, cacheService, keySerializer)
	svc := blocks.NewService(repo)

	created, err := svc.Create(ctx, blocks.CreateBlockRequest{
		Section:   "hero",
		BlockKey:  "hero_title",
		TitleEN:   "Sustainable goods",
		TitleDA:   "Baeredygtige varer",
		ChangedBy: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	fetched, err := svc.GetByKey(ctx, "hero", "hero_title")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected same block, got %s vs %s", fetched.ID, created.ID)
	}

	if _, err := svc.SetStatus(ctx, blocks.SetBlockStatusRequest{ID: created.ID, Status: domain.StatusPublished}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	sectionBlocks, err := svc.ListSection(ctx, "hero", false)
	if err != nil {
		t.Fatalf("list section: %v", err)
	}
	if len(sectionBlocks) != 1 || !sectionBlocks[0].IsPublished() {
		t.Fatalf("expected one published hero block, got %+v", sectionBlocks)
	}

	results, err := svc.Search(ctx, "sustainable")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one search match, got %d", len(results))
	}

	versions, err := svc.ListVersions(ctx, created.ID, 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(versions))
	}
	if versions[0].ChangeType != string(domain.ChangeTypePublish) {
		t.Fatalf("expected publish latest, got %s", versions[0].ChangeType)
	}

	restored, err := svc.RestoreVersion(ctx, blocks.RestoreBlockVersionRequest{ID: created.ID, Version: 1, RestoredBy: "admin@example.com"})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.TitleEN != "Sustainable goods" {
		t.Fatalf("unexpected restored title: %s", restored.TitleEN)
	}
}
