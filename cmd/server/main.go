package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verdanta/cms/cmd/internal/bootstrap"
	cmshttp "github.com/verdanta/cms/internal/http"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "Listen address for the HTTP server")
	driver := fs.String("driver", "sqlite", "Storage driver (sqlite or postgres)")
	dsn := fs.String("dsn", "", "Database DSN (defaults to an in-memory SQLite database)")
	migrate := fs.Bool("migrate", true, "Apply schema migrations on startup")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	shutdownTimeout := fs.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	boot, err := bootstrap.BuildModule(ctx, bootstrap.Options{
		Driver:   *driver,
		DSN:      *dsn,
		Migrate:  *migrate,
		LogLevel: *logLevel,
	})
	if err != nil {
		return err
	}
	defer boot.Close()

	container := boot.Module.Container()

	mux := http.NewServeMux()
	adminAPI := cmshttp.NewAdminAPI(
		cmshttp.WithContentAdmin(container.ContentAdmin()),
		cmshttp.WithHistory(container.History()),
		cmshttp.WithProductService(container.ProductService()),
		cmshttp.WithPostService(container.PostService()),
		cmshttp.WithTranslationService(container.TranslationService()),
		cmshttp.WithSettingService(container.SettingService()),
		cmshttp.WithQuotationService(container.QuotationService()),
	)
	if err := adminAPI.Register(mux); err != nil {
		return err
	}

	publicAPI := cmshttp.NewPublicAPI(
		cmshttp.WithPublicBlockService(container.BlockService()),
		cmshttp.WithPublicPostService(container.PostService()),
		cmshttp.WithPublicProductService(container.ProductService()),
		cmshttp.WithPublicTranslationService(container.TranslationService()),
		cmshttp.WithPublicSettingService(container.SettingService()),
		cmshttp.WithPublicQuotationService(container.QuotationService()),
		cmshttp.WithPublicRoutes(container.Routes()),
	)
	if err := publicAPI.Register(mux); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    *addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		boot.Logger.Info("server.listening", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		boot.Logger.Info("server.shutdown", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
