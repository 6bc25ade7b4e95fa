package logging

import (
	"context"

	"github.com/verdanta/cms/pkg/interfaces"
)

const (
	rootModule         = "cms"
	blocksModule       = "cms.blocks"
	adminModule        = "cms.admin"
	productsModule     = "cms.products"
	postsModule        = "cms.posts"
	translationsModule = "cms.translations"
	settingsModule     = "cms.settings"
	quotationsModule   = "cms.quotations"
	httpModule         = "cms.http"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// BlocksLogger returns the logger namespace reserved for the content-block services.
func BlocksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blocksModule)
}

// AdminLogger returns the logger namespace reserved for admin helper services.
func AdminLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, adminModule)
}

// ProductsLogger returns the logger namespace reserved for the product catalog.
func ProductsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, productsModule)
}

// PostsLogger returns the logger namespace reserved for the journal services.
func PostsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, postsModule)
}

// TranslationsLogger returns the logger namespace reserved for UI translations.
func TranslationsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translationsModule)
}

// SettingsLogger returns the logger namespace reserved for site settings.
func SettingsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, settingsModule)
}

// QuotationsLogger returns the logger namespace reserved for quotation intake.
func QuotationsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, quotationsModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP surfaces.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
