package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/posts"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var blockNotFound *blocks.NotFoundError
	var productNotFound *products.NotFoundError
	var postNotFound *posts.NotFoundError
	var translationNotFound *translations.NotFoundError
	var settingNotFound *settings.NotFoundError
	var quotationNotFound *quotations.NotFoundError
	if errors.As(err, &blockNotFound) ||
		errors.As(err, &productNotFound) ||
		errors.As(err, &postNotFound) ||
		errors.As(err, &translationNotFound) ||
		errors.As(err, &settingNotFound) ||
		errors.As(err, &quotationNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		}
	}

	if errors.Is(err, blocks.ErrBlockExists) ||
		errors.Is(err, blocks.ErrBlockVersionConflict) ||
		errors.Is(err, posts.ErrSlugExists) {
		return http.StatusConflict, errorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	if errors.Is(err, blocks.ErrMetadataInvalid) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, blocks.ErrSectionRequired) ||
		errors.Is(err, blocks.ErrBlockKeyRequired) ||
		errors.Is(err, blocks.ErrBlockKeyInvalid) ||
		errors.Is(err, blocks.ErrBlockIDRequired) ||
		errors.Is(err, blocks.ErrStatusInvalid) ||
		errors.Is(err, blocks.ErrBlockVersionRequired) ||
		errors.Is(err, blocks.ErrSearchQueryRequired) ||
		errors.Is(err, products.ErrProductNameRequired) ||
		errors.Is(err, products.ErrProductIDRequired) ||
		errors.Is(err, products.ErrPriceInvalid) ||
		errors.Is(err, products.ErrCurrencyInvalid) ||
		errors.Is(err, posts.ErrPostTitleRequired) ||
		errors.Is(err, posts.ErrPostIDRequired) ||
		errors.Is(err, posts.ErrSlugInvalid) ||
		errors.Is(err, posts.ErrPostStatusInvalid) ||
		errors.Is(err, translations.ErrKeyRequired) ||
		errors.Is(err, translations.ErrKeyInvalid) ||
		errors.Is(err, translations.ErrTranslationIDRequired) ||
		errors.Is(err, translations.ErrTranslationStatusInvalid) ||
		errors.Is(err, translations.ErrTranslationVersionRequired) ||
		errors.Is(err, settings.ErrSettingKeyRequired) ||
		errors.Is(err, settings.ErrSettingKeyInvalid) ||
		errors.Is(err, quotations.ErrNameRequired) ||
		errors.Is(err, quotations.ErrEmailInvalid) ||
		errors.Is(err, quotations.ErrQuantityInvalid) ||
		errors.Is(err, quotations.ErrQuotationIDRequired) ||
		errors.Is(err, quotations.ErrQuotationStatusInvalid) ||
		errors.Is(err, quotations.ErrWhatsAppNumberInvalid) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseIntQuery(value string, defaultValue int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func langFromRequest(r *http.Request) domain.Lang {
	if r == nil {
		return domain.LangEN
	}
	return domain.ParseLang(r.URL.Query().Get("lang"))
}

func actorFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Header.Get("X-Admin-User"))
}
