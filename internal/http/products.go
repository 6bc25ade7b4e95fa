package http

import (
	"net/http"

	"github.com/verdanta/cms/internal/products"
)

type productCreatePayload struct {
	NameEN        string  `json:"name_en"`
	NameDA        string  `json:"name_da"`
	DescriptionEN *string `json:"description_en,omitempty"`
	DescriptionDA *string `json:"description_da,omitempty"`
	PriceCents    int64   `json:"price_cents"`
	Currency      string  `json:"currency,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Category      string  `json:"category,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	SortOrder     int     `json:"sort_order"`
}

type productUpdatePayload struct {
	NameEN        *string `json:"name_en,omitempty"`
	NameDA        *string `json:"name_da,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	DescriptionDA *string `json:"description_da,omitempty"`
	PriceCents    *int64  `json:"price_cents,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Category      *string `json:"category,omitempty"`
	SortOrder     *int    `json:"sort_order,omitempty"`
}

func (api *AdminAPI) registerProductRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "products")
	mux.HandleFunc("GET "+root, api.handleProductList)
	mux.HandleFunc("POST "+root, api.handleProductCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleProductGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleProductUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleProductDelete)
	mux.HandleFunc("POST "+root+"/{id}/toggle", api.handleProductToggle)
}

func (api *AdminAPI) handleProductList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.products.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload productCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.products.Create(r.Context(), products.CreateProductRequest{
		NameEN:        payload.NameEN,
		NameDA:        payload.NameDA,
		DescriptionEN: payload.DescriptionEN,
		DescriptionDA: payload.DescriptionDA,
		PriceCents:    payload.PriceCents,
		Currency:      payload.Currency,
		ImageURL:      payload.ImageURL,
		Category:      payload.Category,
		IsActive:      payload.IsActive,
		SortOrder:     payload.SortOrder,
		ChangedBy:     actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *AdminAPI) handleProductGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.products.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload productUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.products.Update(r.Context(), products.UpdateProductRequest{
		ID:            id,
		NameEN:        payload.NameEN,
		NameDA:        payload.NameDA,
		DescriptionEN: payload.DescriptionEN,
		DescriptionDA: payload.DescriptionDA,
		PriceCents:    payload.PriceCents,
		Currency:      payload.Currency,
		ImageURL:      payload.ImageURL,
		Category:      payload.Category,
		SortOrder:     payload.SortOrder,
		ChangedBy:     actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.products.Delete(r.Context(), products.DeleteProductRequest{
		ID:        id,
		ChangedBy: actorFromRequest(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleProductToggle(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.products == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	updated, err := api.products.ToggleActive(r.Context(), products.ToggleActiveRequest{
		ID:        id,
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
