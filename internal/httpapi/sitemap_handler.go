package httpapi

import (
	"context"
	"net/http"
	"time"
)

type SitemapBuilder interface {
	Build(ctx context.Context) ([]byte, error)
}

type SitemapHandler struct {
	builder SitemapBuilder
	timeout time.Duration
}

func NewSitemapHandler(builder SitemapBuilder, timeout time.Duration) *SitemapHandler {
	return &SitemapHandler{builder: builder, timeout: timeout}
}

func (h *SitemapHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	body, err := h.builder.Build(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
