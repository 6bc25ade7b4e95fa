package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/verdanta/cms/cmd/internal/bootstrap"
	"github.com/verdanta/cms/internal/settings"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("provision: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("provision", flag.ExitOnError)
	driver := fs.String("driver", "sqlite", "Storage driver (sqlite or postgres)")
	dsn := fs.String("dsn", "", "Database DSN")
	whatsapp := fs.String("whatsapp", "", "WhatsApp contact number to store in site settings")
	email := fs.String("email", "", "Contact email to store in site settings")
	actor := fs.String("actor", "provision", "Identifier recorded as the author of seeded changes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	boot, err := bootstrap.BuildModule(ctx, bootstrap.Options{
		Driver:  *driver,
		DSN:     *dsn,
		Migrate: true,
	})
	if err != nil {
		return err
	}
	defer boot.Close()

	boot.Logger.Info("provision.migrations.applied")

	settingSvc := boot.Module.Settings()
	seeded := 0
	if number := strings.TrimSpace(*whatsapp); number != "" {
		if _, err := settingSvc.Upsert(ctx, settings.UpsertSettingRequest{
			Key:       settings.KeyWhatsAppNumber,
			Value:     number,
			ChangedBy: *actor,
		}); err != nil {
			return fmt.Errorf("seed whatsapp number: %w", err)
		}
		seeded++
	}
	if address := strings.TrimSpace(*email); address != "" {
		if _, err := settingSvc.Upsert(ctx, settings.UpsertSettingRequest{
			Key:       settings.KeyContactEmail,
			Value:     address,
			ChangedBy: *actor,
		}); err != nil {
			return fmt.Errorf("seed contact email: %w", err)
		}
		seeded++
	}

	boot.Logger.Info("provision.completed", "settings_seeded", seeded)
	return nil
}
