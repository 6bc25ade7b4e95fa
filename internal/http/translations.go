package http

import (
	"net/http"
	"strconv"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/translations"
)

type translationUpsertPayload struct {
	Key    string  `json:"key"`
	TextEN *string `json:"text_en,omitempty"`
	TextDA *string `json:"text_da,omitempty"`
	Status string  `json:"status,omitempty"`
}

type translationStatusPayload struct {
	Status string `json:"status"`
}

func (api *AdminAPI) registerTranslationRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "translations")
	mux.HandleFunc("GET "+root, api.handleTranslationList)
	mux.HandleFunc("PUT "+root, api.handleTranslationUpsert)
	mux.HandleFunc("GET "+root+"/{id}", api.handleTranslationGet)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleTranslationDelete)
	mux.HandleFunc("PUT "+root+"/{id}/status", api.handleTranslationStatus)
	mux.HandleFunc("GET "+root+"/{id}/versions", api.handleTranslationVersions)
	mux.HandleFunc("POST "+root+"/{id}/versions/{version}/restore", api.handleTranslationRestore)
}

func (api *AdminAPI) handleTranslationList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.translations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleTranslationUpsert(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload translationUpsertPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.translations.Upsert(r.Context(), translations.UpsertTranslationRequest{
		Key:       payload.Key,
		TextEN:    payload.TextEN,
		TextDA:    payload.TextDA,
		Status:    payload.Status,
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleTranslationGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.translations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleTranslationDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.translations.Delete(r.Context(), translations.DeleteTranslationRequest{
		ID:        id,
		ChangedBy: actorFromRequest(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleTranslationStatus(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload translationStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.translations.SetStatus(r.Context(), translations.SetTranslationStatusRequest{
		ID:        id,
		Status:    domain.ParseStatus(payload.Status),
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleTranslationVersions(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	limit := parseIntQuery(r.URL.Query().Get("limit"), 0)
	versions, err := api.translations.ListVersions(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (api *AdminAPI) handleTranslationRestore(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translations == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	version, err := strconv.Atoi(r.PathValue("version"))
	if err != nil || version < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid version"})
		return
	}
	record, err := api.translations.RestoreVersion(r.Context(), translations.RestoreTranslationVersionRequest{
		ID:         id,
		Version:    version,
		RestoredBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
