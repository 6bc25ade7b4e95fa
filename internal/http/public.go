package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/pagemap"
	"github.com/verdanta/cms/internal/posts"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
)

// PublicAPI registers the endpoints the public site renders from. All reads
// resolve one language and only see published content.
type PublicAPI struct {
	basePath     string
	blocks       blocks.Service
	translations translations.Service
	products     products.Service
	posts        posts.Service
	settings     settings.Service
	quotations   quotations.Service
	routes       *pagemap.Router
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithPublicBasePath overrides the base API path (defaults to "/api").
func WithPublicBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPublicBlockService wires the content block service.
func WithPublicBlockService(service blocks.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.blocks = service
		}
	}
}

// WithPublicTranslationService wires the UI translation service.
func WithPublicTranslationService(service translations.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.translations = service
		}
	}
}

// WithPublicProductService wires the product catalog service.
func WithPublicProductService(service products.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.products = service
		}
	}
}

// WithPublicPostService wires the journal service.
func WithPublicPostService(service posts.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.posts = service
		}
	}
}

// WithPublicSettingService wires the site setting service.
func WithPublicSettingService(service settings.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.settings = service
		}
	}
}

// WithPublicQuotationService wires the quotation inquiry service.
func WithPublicQuotationService(service quotations.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.quotations = service
		}
	}
}

// WithPublicRoutes wires the localized route resolver. Without it the routes
// endpoint reports service_unavailable and post responses omit URLs.
func WithPublicRoutes(router *pagemap.Router) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.routes = router
		}
	}
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: public api is nil")
	}

	base := joinPath(api.basePath, "")

	mux.HandleFunc("GET "+joinPath(base, "content")+"/{section}", api.handlePublicContent)
	mux.HandleFunc("GET "+joinPath(base, "translations"), api.handlePublicTranslations)
	mux.HandleFunc("GET "+joinPath(base, "products"), api.handlePublicProducts)
	mux.HandleFunc("GET "+joinPath(base, "posts"), api.handlePublicPosts)
	mux.HandleFunc("GET "+joinPath(base, "posts")+"/{slug}", api.handlePublicPost)
	mux.HandleFunc("POST "+joinPath(base, "quotations"), api.handlePublicQuotation)
	mux.HandleFunc("GET "+joinPath(base, "contact/whatsapp"), api.handleWhatsAppLink)
	mux.HandleFunc("GET "+joinPath(base, "routes"), api.handlePublicRoutes)

	return nil
}

func (api *PublicAPI) handlePublicContent(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.blocks == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	records, err := api.blocks.ListSection(r.Context(), r.PathValue("section"), true)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]blocks.LocalizedBlock, 0, len(records))
	for _, record := range records {
		out = append(out, record.Localized(lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *PublicAPI) handlePublicTranslations(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	keys := r.URL.Query()["key"]
	out := make(map[string]string, len(keys))
	if len(keys) > 0 {
		for _, key := range keys {
			out[key] = api.translations.Resolve(r.Context(), lang, key)
		}
		writeJSON(w, http.StatusOK, out)
		return
	}
	records, err := api.translations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	for _, record := range records {
		if record.IsPublished() {
			out[record.Key] = record.Text(lang)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *PublicAPI) handlePublicProducts(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	records, err := api.products.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]products.LocalizedProduct, 0, len(records))
	for _, record := range records {
		out = append(out, record.Localized(lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *PublicAPI) handlePublicPosts(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	records, err := api.posts.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]posts.LocalizedPost, 0, len(records))
	for _, record := range records {
		out = append(out, record.Localized(lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *PublicAPI) handlePublicPost(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	record, err := api.posts.GetBySlug(r.Context(), r.PathValue("slug"), true)
	if err != nil {
		writeError(w, err)
		return
	}
	rendered, err := api.posts.RenderHTML(r.Context(), record.ID, lang)
	if err != nil {
		writeError(w, err)
		return
	}
	out := publicPostResponse{LocalizedPost: rendered}
	if api.routes != nil {
		if url, err := api.routes.DetailURL(lang, "post", record.Slug); err == nil {
			out.URL = url
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type publicPostResponse struct {
	posts.LocalizedPost
	URL string `json:"url,omitempty"`
}

// handlePublicRoutes resolves the localized URL for every curated page that
// has a configured route. Pages absent from the route config are skipped so
// hosts can expose a subset of the site map.
func (api *PublicAPI) handlePublicRoutes(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.routes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := langFromRequest(r)
	out := make(map[string]string)
	for _, page := range pagemap.Pages() {
		url, err := api.routes.PageURL(lang, page.Key)
		if err != nil {
			continue
		}
		out[page.Key] = url
	}
	writeJSON(w, http.StatusOK, out)
}

type quotationSubmitPayload struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	Quantity    int        `json:"quantity,omitempty"`
	Message     string     `json:"message,omitempty"`
}

func (api *PublicAPI) handlePublicQuotation(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.quotations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload quotationSubmitPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.quotations.Submit(r.Context(), quotations.SubmitQuotationRequest{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		CompanyName: payload.CompanyName,
		ProductID:   payload.ProductID,
		Quantity:    payload.Quantity,
		Message:     payload.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type whatsAppLinkResponse struct {
	Link string `json:"link"`
}

func (api *PublicAPI) handleWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	number := api.settings.Value(r.Context(), settings.KeyWhatsAppNumber)
	link, err := quotations.WhatsAppLink(number, r.URL.Query().Get("message"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, whatsAppLinkResponse{Link: link})
}
