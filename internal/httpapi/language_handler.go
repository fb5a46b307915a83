package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/manevdusko/fitbody-sub000/internal/i18n"
)

type LanguageHandler struct{}

func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

type LanguageResponse struct {
	Code      string   `json:"code"`
	Direction string   `json:"direction"`
	Supported []string `json:"supported"`
}

func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang := languageFromContext(r.Context())
	respondJSON(w, http.StatusOK, LanguageResponse{
		Code:      lang,
		Direction: i18n.Direction(lang),
		Supported: i18n.Supported,
	})
}

type SetLanguageDTO struct {
	Language string `json:"language"`
}

// Set persists the language choice in the cookie the middleware reads.
func (h *LanguageHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	lang := i18n.Normalize(req.Language)
	if lang != req.Language {
		respondError(w, http.StatusBadRequest, "unsupported_language", "language must be one of mk, en, es, sq")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     languageCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, LanguageResponse{
		Code:      lang,
		Direction: i18n.Direction(lang),
		Supported: i18n.Supported,
	})
}
