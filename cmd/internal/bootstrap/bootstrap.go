package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	cms "github.com/verdanta/cms"
	"github.com/verdanta/cms/internal/di"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Options captures shared configuration for the CLI entry points.
type Options struct {
	Driver         string
	DSN            string
	Migrate        bool
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the cms module together with its database binding.
type Module struct {
	Module *cms.Module
	DB     *bun.DB
	Logger interfaces.Logger
}

// BuildModule opens the configured database, optionally applies migrations,
// and constructs a CMS module bound to it.
func BuildModule(ctx context.Context, opts Options) (*Module, error) {
	cfg := cms.DefaultConfig()
	if driver := strings.TrimSpace(opts.Driver); driver != "" {
		cfg.Storage.Driver = driver
	}
	if dsn := strings.TrimSpace(opts.DSN); dsn != "" {
		cfg.Storage.DSN = dsn
	}
	cfg.Features.Logger = true
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}

	db, err := di.OpenDatabase(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if opts.Migrate {
		if err := cms.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	diOpts := []di.Option{di.WithBunDB(db)}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := cms.New(cfg, diOpts...)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialise cms module: %w", err)
	}

	return &Module{
		Module: module,
		DB:     db,
		Logger: logging.ModuleLogger(module.Container().LoggerProvider(), "cms.cli"),
	}, nil
}

// Close releases the database handle.
func (m *Module) Close() error {
	if m == nil || m.DB == nil {
		return nil
	}
	return m.DB.Close()
}
