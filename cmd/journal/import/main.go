package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/verdanta/cms/cmd/internal/bootstrap"
	"github.com/verdanta/cms/internal/posts"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("journal import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("journal-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown journal root")
	driver := fs.String("driver", "sqlite", "Storage driver (sqlite or postgres)")
	dsn := fs.String("dsn", "", "Database DSN")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	boot, err := moduleBuilder(ctx, bootstrap.Options{
		Driver:  *driver,
		DSN:     *dsn,
		Migrate: true,
	})
	if err != nil {
		return err
	}
	defer boot.Close()

	importer := posts.NewImporter(posts.ImporterConfig{
		Posts:  boot.Module.Posts(),
		Logger: boot.Logger,
	})

	result, err := importer.ImportFS(ctx, os.DirFS(*contentDir), ".")
	if err != nil {
		return fmt.Errorf("import %s: %w", *contentDir, err)
	}

	boot.Logger.Info("journal.import.completed",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	for _, importErr := range result.Errors {
		boot.Logger.Warn("journal.import.error", "error", importErr)
	}
	return nil
}
