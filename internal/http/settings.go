package http

import (
	"net/http"

	"github.com/verdanta/cms/internal/settings"
)

type settingUpsertPayload struct {
	Key       string         `json:"key"`
	Value     string         `json:"value"`
	ValueJSON map[string]any `json:"value_json,omitempty"`
}

func (api *AdminAPI) registerSettingRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "settings")
	mux.HandleFunc("GET "+root, api.handleSettingList)
	mux.HandleFunc("PUT "+root, api.handleSettingUpsert)
	mux.HandleFunc("GET "+root+"/{key}", api.handleSettingGet)
	mux.HandleFunc("DELETE "+root+"/{key}", api.handleSettingDelete)
}

func (api *AdminAPI) handleSettingList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.settings.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleSettingUpsert(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload settingUpsertPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.settings.Upsert(r.Context(), settings.UpsertSettingRequest{
		Key:       payload.Key,
		Value:     payload.Value,
		ValueJSON: payload.ValueJSON,
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleSettingGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	record, err := api.settings.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleSettingDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if err := api.settings.Delete(r.Context(), settings.DeleteSettingRequest{
		Key:       r.PathValue("key"),
		ChangedBy: actorFromRequest(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
