package http

import (
	"net/http"
	"strconv"

	admincontent "github.com/verdanta/cms/internal/admin/content"
)

type blockCreatePayload struct {
	Section       string  `json:"section"`
	BlockKey      string  `json:"block_key"`
	TitleEN       string  `json:"title_en"`
	TitleDA       string  `json:"title_da"`
	DescriptionEN *string `json:"description_en,omitempty"`
	DescriptionDA *string `json:"description_da,omitempty"`
	Value         *string `json:"value,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	Color         *string `json:"color,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Metadata      string  `json:"metadata,omitempty"`
	SortOrder     int     `json:"sort_order"`
	Status        string  `json:"status,omitempty"`
}

type blockUpdatePayload struct {
	Section       *string `json:"section,omitempty"`
	BlockKey      *string `json:"block_key,omitempty"`
	TitleEN       *string `json:"title_en,omitempty"`
	TitleDA       *string `json:"title_da,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	DescriptionDA *string `json:"description_da,omitempty"`
	Value         *string `json:"value,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	Color         *string `json:"color,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Metadata      *string `json:"metadata,omitempty"`
	SortOrder     *int    `json:"sort_order,omitempty"`
	BaseVersion   *int    `json:"base_version,omitempty"`
}

type blockStatusPayload struct {
	Status string `json:"status"`
}

func (api *AdminAPI) registerContentBlockRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "content-blocks")
	mux.HandleFunc("GET "+joinPath(base, "overview"), api.handleOverview)
	mux.HandleFunc("GET "+root, api.handleBlockList)
	mux.HandleFunc("POST "+root, api.handleBlockCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleBlockGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleBlockUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleBlockDelete)
	mux.HandleFunc("POST "+root+"/{id}/duplicate", api.handleBlockDuplicate)
	mux.HandleFunc("PUT "+root+"/{id}/status", api.handleBlockStatus)
	mux.HandleFunc("GET "+root+"/{id}/versions", api.handleBlockVersions)
	mux.HandleFunc("POST "+root+"/{id}/versions/{version}/restore", api.handleBlockRestore)
}

func (api *AdminAPI) handleOverview(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	overview, err := api.content.Overview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (api *AdminAPI) handleBlockList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if query := r.URL.Query().Get("q"); query != "" {
		list, err := api.content.Search(r.Context(), query)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}
	overview, err := api.content.Overview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview.Sections)
}

func (api *AdminAPI) handleBlockCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload blockCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.content.CreateBlock(r.Context(), admincontent.CreateBlockInput{
		Section:       payload.Section,
		BlockKey:      payload.BlockKey,
		TitleEN:       payload.TitleEN,
		TitleDA:       payload.TitleDA,
		DescriptionEN: payload.DescriptionEN,
		DescriptionDA: payload.DescriptionDA,
		Value:         payload.Value,
		Icon:          payload.Icon,
		Color:         payload.Color,
		ImageURL:      payload.ImageURL,
		RawMetadata:   payload.Metadata,
		SortOrder:     payload.SortOrder,
		Status:        payload.Status,
		ChangedBy:     actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *AdminAPI) handleBlockGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.content.GetBlock(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleBlockUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload blockUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.content.UpdateBlock(r.Context(), admincontent.UpdateBlockInput{
		ID:            id,
		Section:       payload.Section,
		BlockKey:      payload.BlockKey,
		TitleEN:       payload.TitleEN,
		TitleDA:       payload.TitleDA,
		DescriptionEN: payload.DescriptionEN,
		DescriptionDA: payload.DescriptionDA,
		Value:         payload.Value,
		Icon:          payload.Icon,
		Color:         payload.Color,
		ImageURL:      payload.ImageURL,
		RawMetadata:   payload.Metadata,
		SortOrder:     payload.SortOrder,
		BaseVersion:   payload.BaseVersion,
		ChangedBy:     actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handleBlockDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.content.DeleteBlock(r.Context(), id, actorFromRequest(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleBlockDuplicate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	clone, err := api.content.DuplicateBlock(r.Context(), id, actorFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, clone)
}

func (api *AdminAPI) handleBlockStatus(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload blockStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.content.SetStatus(r.Context(), id, payload.Status, actorFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handleBlockVersions(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	entries, err := api.history.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (api *AdminAPI) handleBlockRestore(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.history == nil {
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
	restored, err := api.history.Restore(r.Context(), id, version, actorFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restored)
}
