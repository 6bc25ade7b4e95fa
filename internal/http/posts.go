package http

import (
	"net/http"
	"time"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/posts"
)

type postCreatePayload struct {
	Slug         string     `json:"slug,omitempty"`
	TitleEN      string     `json:"title_en"`
	TitleDA      string     `json:"title_da"`
	ExcerptEN    *string    `json:"excerpt_en,omitempty"`
	ExcerptDA    *string    `json:"excerpt_da,omitempty"`
	BodyEN       string     `json:"body_en"`
	BodyDA       string     `json:"body_da"`
	HeroImageURL *string    `json:"hero_image_url,omitempty"`
	Status       string     `json:"status,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

type postUpdatePayload struct {
	Slug         *string `json:"slug,omitempty"`
	TitleEN      *string `json:"title_en,omitempty"`
	TitleDA      *string `json:"title_da,omitempty"`
	ExcerptEN    *string `json:"excerpt_en,omitempty"`
	ExcerptDA    *string `json:"excerpt_da,omitempty"`
	BodyEN       *string `json:"body_en,omitempty"`
	BodyDA       *string `json:"body_da,omitempty"`
	HeroImageURL *string `json:"hero_image_url,omitempty"`
}

type postStatusPayload struct {
	Status string `json:"status"`
}

func (api *AdminAPI) registerPostRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "posts")
	mux.HandleFunc("GET "+root, api.handlePostList)
	mux.HandleFunc("POST "+root, api.handlePostCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handlePostGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handlePostUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handlePostDelete)
	mux.HandleFunc("PUT "+root+"/{id}/status", api.handlePostStatus)
}

func (api *AdminAPI) handlePostList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.posts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handlePostCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload postCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.posts.Create(r.Context(), posts.CreatePostRequest{
		Slug:         payload.Slug,
		TitleEN:      payload.TitleEN,
		TitleDA:      payload.TitleDA,
		ExcerptEN:    payload.ExcerptEN,
		ExcerptDA:    payload.ExcerptDA,
		BodyEN:       payload.BodyEN,
		BodyDA:       payload.BodyDA,
		HeroImageURL: payload.HeroImageURL,
		Status:       payload.Status,
		PublishedAt:  payload.PublishedAt,
		ChangedBy:    actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *AdminAPI) handlePostGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handlePostUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload postUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.posts.Update(r.Context(), posts.UpdatePostRequest{
		ID:           id,
		Slug:         payload.Slug,
		TitleEN:      payload.TitleEN,
		TitleDA:      payload.TitleDA,
		ExcerptEN:    payload.ExcerptEN,
		ExcerptDA:    payload.ExcerptDA,
		BodyEN:       payload.BodyEN,
		BodyDA:       payload.BodyDA,
		HeroImageURL: payload.HeroImageURL,
		ChangedBy:    actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handlePostDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.posts.Delete(r.Context(), posts.DeletePostRequest{
		ID:        id,
		ChangedBy: actorFromRequest(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handlePostStatus(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.posts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload postStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.posts.SetStatus(r.Context(), posts.SetPostStatusRequest{
		ID:        id,
		Status:    domain.ParseStatus(payload.Status),
		ChangedBy: actorFromRequest(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
