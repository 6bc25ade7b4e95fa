package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateDefaultLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLanguage = "de"
	if err := cfg.Validate(); !errors.Is(err, ErrDefaultLanguageInvalid) {
		t.Fatalf("expected ErrDefaultLanguageInvalid, got %v", err)
	}

	cfg.DefaultLanguage = "da"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected danish default to validate, got %v", err)
	}
}

func TestValidateStorageDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Driver = "mysql"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Storage.Driver = "postgres"
	cfg.Storage.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestValidateAdvancedCacheRequiresCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.AdvancedCache = true
	cfg.Cache.Enabled = false
	if err := cfg.Validate(); !errors.Is(err, ErrAdvancedCacheRequiresEnabledCache) {
		t.Fatalf("expected ErrAdvancedCacheRequiresEnabledCache, got %v", err)
	}
}

func TestValidateRetention(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Retention.Blocks = -1
	if err := cfg.Validate(); !errors.Is(err, ErrVersionRetentionLimitInvalid) {
		t.Fatalf("expected ErrVersionRetentionLimitInvalid, got %v", err)
	}
}

func TestValidateWhatsAppNumber(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.WhatsAppNumber = "call-me-maybe"
	if err := cfg.Validate(); !errors.Is(err, ErrWhatsAppNumberInvalid) {
		t.Fatalf("expected ErrWhatsAppNumberInvalid, got %v", err)
	}

	cfg.Contact.WhatsAppNumber = "+4512345678"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected prefixed number to validate, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected gologger config to validate, got %v", err)
	}
}
