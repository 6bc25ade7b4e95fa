package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrAdvancedCacheRequiresEnabledCache ensures advanced cache builds only when cache is enabled.
var ErrAdvancedCacheRequiresEnabledCache = errors.New("cms config: advanced cache feature requires cache to be enabled")

var ErrStorageDriverUnknown = errors.New("cms config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("cms config: storage dsn is required")
var ErrDefaultLanguageInvalid = errors.New("cms config: default language must be en or da")
var ErrWhatsAppNumberInvalid = errors.New("cms config: whatsapp number must be digits with optional country prefix")
var ErrLoggingProviderRequired = errors.New("cms config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("cms config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("cms config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("cms config: logging format is invalid")
var ErrVersionRetentionLimitInvalid = errors.New("cms config: version retention limit must be zero or positive")

// Config aggregates feature flags and adapter bindings for the CMS module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Storage         StorageConfig
	Cache           CacheConfig
	Navigation      NavigationConfig
	Retention       RetentionConfig
	Features        Features
	Commands        CommandsConfig
	Contact         ContactConfig
	Logging         LoggingConfig
	HTTP            HTTPConfig
	Metadata        MetadataConfig
}

// MetadataConfig registers JSON schemas applied to content block metadata,
// keyed by section. Sections without a schema accept any bag.
type MetadataConfig struct {
	Schemas map[string]map[string]any
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	Driver   string
	DSN      string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig captures routing configuration for public URL resolution.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based resolver. LangGroups
// maps a language code to the dotted route-group path carrying its localized
// paths (e.g. "da" -> "public.da"); languages without an entry resolve
// through DefaultGroup.
type URLKitResolverConfig struct {
	DefaultGroup string
	DefaultRoute string
	SlugParam    string
	LangParam    string
	LangGroups   map[string]string
}

// Features toggles module functionality.
type Features struct {
	Versioning    bool
	AdvancedCache bool
	Markdown      bool
	Logger        bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// RetentionConfig captures per-module version retention limits.
type RetentionConfig struct {
	Blocks       int
	Translations int
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// ContactConfig carries the business contact details surfaced on the site.
type ContactConfig struct {
	WhatsAppNumber string
	Email          string
}

// HTTPConfig captures the listen address for the bundled server binary.
type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Storage: StorageConfig{
			Provider: "bun",
			Driver:   "sqlite",
			DSN:      "file::memory:?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{
			URLKit: URLKitResolverConfig{
				DefaultGroup: "public",
				SlugParam:    "slug",
				LangParam:    "lang",
			},
		},
		Retention: RetentionConfig{
			Blocks:       50,
			Translations: 50,
		},
		Features: Features{
			Versioning: true,
		},
		Commands: CommandsConfig{},
		Contact:  ContactConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage)) {
	case "", "en", "da":
	default:
		return fmt.Errorf("%w: %s", ErrDefaultLanguageInvalid, cfg.DefaultLanguage)
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)); driver != "" {
		switch driver {
		case "sqlite", "postgres":
			if strings.TrimSpace(cfg.Storage.DSN) == "" {
				return ErrStorageDSNRequired
			}
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
		}
	}
	if cfg.Retention.Blocks < 0 {
		return fmt.Errorf("%w: blocks", ErrVersionRetentionLimitInvalid)
	}
	if cfg.Retention.Translations < 0 {
		return fmt.Errorf("%w: translations", ErrVersionRetentionLimitInvalid)
	}
	if number := strings.TrimSpace(cfg.Contact.WhatsAppNumber); number != "" {
		if !isPhoneNumber(number) {
			return fmt.Errorf("%w: %s", ErrWhatsAppNumberInvalid, number)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isPhoneNumber(number string) bool {
	digits := 0
	for i, r := range number {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		default:
			return false
		}
	}
	return digits >= 6
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
