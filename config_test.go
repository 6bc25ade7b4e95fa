package cms_test

import (
	"errors"
	"testing"

	cms "github.com/verdanta/cms"
)

func TestConfigValidateDefaults(t *testing.T) {
	if err := cms.DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestConfigValidateAdvancedCacheRequiresCache(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Features.AdvancedCache = true
	if err := cfg.Validate(); !errors.Is(err, cms.ErrAdvancedCacheRequiresEnabledCache) {
		t.Fatalf("expected ErrAdvancedCacheRequiresEnabledCache, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownDriver(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Storage.Driver = "oracle"
	if err := cfg.Validate(); !errors.Is(err, cms.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidateRejectsBadWhatsAppNumber(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Contact.WhatsAppNumber = "call me maybe"
	if err := cfg.Validate(); !errors.Is(err, cms.ErrWhatsAppNumberInvalid) {
		t.Fatalf("expected ErrWhatsAppNumberInvalid, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, cms.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}
