package cms

import "github.com/verdanta/cms/internal/runtimeconfig"

var (
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrStorageDriverUnknown              = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired                = runtimeconfig.ErrStorageDSNRequired
	ErrDefaultLanguageInvalid            = runtimeconfig.ErrDefaultLanguageInvalid
	ErrWhatsAppNumberInvalid             = runtimeconfig.ErrWhatsAppNumberInvalid
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
	ErrVersionRetentionLimitInvalid      = runtimeconfig.ErrVersionRetentionLimitInvalid
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	NavigationConfig     = runtimeconfig.NavigationConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	RetentionConfig      = runtimeconfig.RetentionConfig
	Features             = runtimeconfig.Features
	CommandsConfig       = runtimeconfig.CommandsConfig
	ContactConfig        = runtimeconfig.ContactConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	HTTPConfig           = runtimeconfig.HTTPConfig
	MetadataConfig       = runtimeconfig.MetadataConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
