package http

import (
	"fmt"
	"net/http"
	"strings"

	admincontent "github.com/verdanta/cms/internal/admin/content"
	adminhistory "github.com/verdanta/cms/internal/admin/history"
	"github.com/verdanta/cms/internal/posts"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
)

// AdminAPI registers the endpoints backing the admin screens.
type AdminAPI struct {
	basePath     string
	content      *admincontent.Service
	history      *adminhistory.Service
	products     products.Service
	posts        posts.Service
	translations translations.Service
	settings     settings.Service
	quotations   quotations.Service
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentAdmin wires the admin content service.
func WithContentAdmin(service *admincontent.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.content = service
		}
	}
}

// WithHistory wires the version history service.
func WithHistory(service *adminhistory.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.history = service
		}
	}
}

// WithProductService wires the product catalog service.
func WithProductService(service products.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.products = service
		}
	}
}

// WithPostService wires the journal service.
func WithPostService(service posts.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.posts = service
		}
	}
}

// WithTranslationService wires the UI translation service.
func WithTranslationService(service translations.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.translations = service
		}
	}
}

// WithSettingService wires the site setting service.
func WithSettingService(service settings.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.settings = service
		}
	}
}

// WithQuotationService wires the quotation inquiry service.
func WithQuotationService(service quotations.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.quotations = service
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerContentBlockRoutes(mux, base)
	api.registerProductRoutes(mux, base)
	api.registerPostRoutes(mux, base)
	api.registerTranslationRoutes(mux, base)
	api.registerSettingRoutes(mux, base)
	api.registerQuotationRoutes(mux, base)

	return nil
}
