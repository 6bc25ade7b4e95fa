package cms

import (
	admincontent "github.com/verdanta/cms/internal/admin/content"
	adminhistory "github.com/verdanta/cms/internal/admin/history"
	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/di"
	"github.com/verdanta/cms/internal/posts"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
)

// BlockService exports the content block service contract.
type BlockService = blocks.Service

// ProductService exports the product catalog service contract.
type ProductService = products.Service

// PostService exports the journal service contract.
type PostService = posts.Service

// TranslationService exports the UI translation service contract.
type TranslationService = translations.Service

// SettingService exports the site setting service contract.
type SettingService = settings.Service

// QuotationService exports the quotation inquiry service contract.
type QuotationService = quotations.Service

// ContentAdminService exports the admin content manager helper contract.
type ContentAdminService = *admincontent.Service

// HistoryService exports the version history panel helper contract.
type HistoryService = *adminhistory.Service

// Module represents the top level CMS runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a CMS module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Blocks returns the configured content block service.
func (m *Module) Blocks() BlockService {
	return m.container.BlockService()
}

// Products returns the configured product catalog service.
func (m *Module) Products() ProductService {
	return m.container.ProductService()
}

// Posts returns the configured journal service.
func (m *Module) Posts() PostService {
	return m.container.PostService()
}

// Translations returns the configured UI translation service.
func (m *Module) Translations() TranslationService {
	return m.container.TranslationService()
}

// Settings returns the configured site setting service.
func (m *Module) Settings() SettingService {
	return m.container.SettingService()
}

// Quotations returns the configured quotation inquiry service.
func (m *Module) Quotations() QuotationService {
	return m.container.QuotationService()
}

// ContentAdmin returns the admin content manager helper.
func (m *Module) ContentAdmin() ContentAdminService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ContentAdmin()
}

// History returns the version history panel helper.
func (m *Module) History() HistoryService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.History()
}
