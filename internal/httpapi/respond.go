package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func respondValidationError(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Code:   "validation_failed",
		Fields: fields,
	})
}

// respondRemoteError maps a failed backend call onto an HTTP answer.
// Auth failures stay 401, other backend 4xx answers pass through as a
// bad request with the backend's message; everything else is an
// upstream failure.
func respondRemoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, wordpress.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	var apiErr *wordpress.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
			// Bad credentials and expired tokens must stay
			// distinguishable from a malformed request.
			respondError(w, http.StatusUnauthorized, "unauthorized", apiErr.Message)
			return
		case apiErr.Status >= 400 && apiErr.Status < 500:
			respondError(w, http.StatusBadRequest, "invalid_request", apiErr.Message)
			return
		}
	}

	respondError(w, http.StatusBadGateway, "upstream_error", "store backend unavailable")
}
