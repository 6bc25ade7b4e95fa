package http

import (
	"net/http"

	"github.com/verdanta/cms/internal/quotations"
)

type quotationStatusPayload struct {
	Status string `json:"status"`
}

func (api *AdminAPI) registerQuotationRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "quotations")
	mux.HandleFunc("GET "+root, api.handleQuotationList)
	mux.HandleFunc("GET "+root+"/{id}", api.handleQuotationGet)
	mux.HandleFunc("PUT "+root+"/{id}/status", api.handleQuotationStatus)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleQuotationDelete)
}

func (api *AdminAPI) handleQuotationList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.quotations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.quotations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleQuotationGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.quotations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.quotations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleQuotationStatus(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.quotations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload quotationStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.quotations.SetStatus(r.Context(), quotations.SetQuotationStatusRequest{
		ID:        id,
		Status:    payload.Status,
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleQuotationDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.quotations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.quotations.Delete(r.Context(), quotations.DeleteQuotationRequest{
		ID:        id,
		ChangedBy: actorFromRequest(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
