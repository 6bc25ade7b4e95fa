package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	admincontent "github.com/verdanta/cms/internal/admin/content"
	adminhistory "github.com/verdanta/cms/internal/admin/history"
	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newAdminMux(t *testing.T) (*http.ServeMux, blocks.Service) {
	t.Helper()

	blockService := blocks.NewService(blocks.NewMemoryBlockRepository(), blocks.WithClock(fixedClock))
	api := NewAdminAPI(
		WithContentAdmin(admincontent.NewService(blockService)),
		WithHistory(adminhistory.NewService(blockService, adminhistory.WithClock(fixedClock))),
		WithProductService(products.NewService(products.NewMemoryProductRepository(), products.WithClock(fixedClock))),
		WithTranslationService(translations.NewService(translations.NewMemoryTranslationRepository(), translations.WithClock(fixedClock))),
		WithSettingService(settings.NewService(settings.NewMemorySettingRepository(), settings.WithClock(fixedClock))),
		WithQuotationService(quotations.NewService(quotations.NewMemoryQuotationRepository(), quotations.WithClock(fixedClock))),
	)

	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register admin api: %v", err)
	}
	return mux, blockService
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Admin-User", "admin@verdanta.dk")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAdminBlockLifecycle(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks", map[string]any{
		"section":   "hero",
		"block_key": "headline",
		"title_en":  "Welcome",
		"title_da":  "Velkommen",
		"metadata":  `{"cta_label": "Read more"}`,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created blocks.ContentBlock
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Metadata["cta_label"] != "Read more" {
		t.Fatalf("unexpected metadata: %+v", created.Metadata)
	}

	rec = doJSON(t, mux, http.MethodPut, "/admin/api/content-blocks/"+created.ID.String(), map[string]any{
		"title_en": "Welcome back",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPut, "/admin/api/content-blocks/"+created.ID.String()+"/status", map[string]any{
		"status": "published",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks/"+created.ID.String()+"/duplicate", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("duplicate: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var clone blocks.ContentBlock
	if err := json.Unmarshal(rec.Body.Bytes(), &clone); err != nil {
		t.Fatalf("decode clone: %v", err)
	}
	if clone.BlockKey != "headline_copy" || clone.Status != "draft" {
		t.Fatalf("unexpected clone: key=%s status=%s", clone.BlockKey, clone.Status)
	}

	rec = doJSON(t, mux, http.MethodGet, "/admin/api/content-blocks/"+created.ID.String()+"/versions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("versions: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var entries []adminhistory.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 3 || entries[0].ChangeType != "publish" {
		t.Fatalf("unexpected history: %+v", entries)
	}

	rec = doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks/"+created.ID.String()+"/versions/1/restore", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var restored blocks.ContentBlock
	if err := json.Unmarshal(rec.Body.Bytes(), &restored); err != nil {
		t.Fatalf("decode restored: %v", err)
	}
	if restored.TitleEN != "Welcome" {
		t.Fatalf("expected restored title, got %q", restored.TitleEN)
	}
}

func TestAdminBlockCreateInvalidMetadataIs422(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks", map[string]any{
		"section":   "hero",
		"block_key": "headline",
		"title_en":  "Welcome",
		"title_da":  "Velkommen",
		"metadata":  `{"cta_label": `,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminBlockDuplicateKeyIs409(t *testing.T) {
	mux, _ := newAdminMux(t)

	payload := map[string]any{
		"section":   "hero",
		"block_key": "headline",
		"title_en":  "Welcome",
		"title_da":  "Velkommen",
	}
	if rec := doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks", payload); rec.Code != http.StatusCreated {
		t.Fatalf("seed: expected 201, got %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodPost, "/admin/api/content-blocks", payload); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminBlockGetUnknownIs404(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/admin/api/content-blocks/2f9a01f3-3a4c-4c39-9bd4-111111111111", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminProductToggle(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/admin/api/products", map[string]any{
		"name_en":     "Oak table",
		"name_da":     "Egetraesbord",
		"price_cents": 250000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created products.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Currency != "DKK" {
		t.Fatalf("expected default currency, got %q", created.Currency)
	}

	rec = doJSON(t, mux, http.MethodPost, "/admin/api/products/"+created.ID.String()+"/toggle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var toggled products.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("decode toggled: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("expected product deactivated")
	}
}

func TestAdminTranslationUpsertAndList(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodPut, "/admin/api/translations", map[string]any{
		"key":     "nav.home",
		"text_en": "Home",
		"text_da": "Hjem",
		"status":  "published",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/admin/api/translations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []translations.Translation
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Key != "nav.home" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestAdminSettingRoundTrip(t *testing.T) {
	mux, _ := newAdminMux(t)

	rec := doJSON(t, mux, http.MethodPut, "/admin/api/settings", map[string]any{
		"key":   "contact.whatsapp_number",
		"value": "+45 12 34 56 78",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/admin/api/settings/contact.whatsapp_number", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodDelete, "/admin/api/settings/contact.whatsapp_number", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminQuotationStatusFlow(t *testing.T) {
	quotationService := quotations.NewService(quotations.NewMemoryQuotationRepository(), quotations.WithClock(fixedClock))
	api := NewAdminAPI(WithQuotationService(quotationService))
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register: %v", err)
	}

	created, err := quotationService.Submit(httptest.NewRequest(http.MethodGet, "/", nil).Context(), quotations.SubmitQuotationRequest{
		Name:  "Mette",
		Email: "mette@example.dk",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec := doJSON(t, mux, http.MethodPut, "/admin/api/quotations/"+created.ID.String()+"/status", map[string]any{
		"status": "contacted",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var updated quotations.QuotationRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Status != quotations.StatusContacted {
		t.Fatalf("expected contacted, got %s", updated.Status)
	}
}
