package httpapi

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

// Catalog is the slice of the catalog service the handler needs.
type Catalog interface {
	Products(ctx context.Context, q wordpress.ProductQuery) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug, lang string) (*domain.Product, error)
	Categories(ctx context.Context, lang string) ([]domain.Category, error)
	Featured(ctx context.Context, lang string, limit int) ([]domain.Product, error)
	HomeCategories(ctx context.Context, lang string) ([]domain.Category, error)
}

type ProductHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewProductHandler(catalog Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{catalog: catalog, timeout: timeout}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// List answers the product listing. Listing reads degrade to an empty
// result when the backend is unreachable; the storefront renders an
// empty grid instead of an error page.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := wordpress.ProductQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		OrderBy:  r.URL.Query().Get("orderby"),
		Featured: r.URL.Query().Get("featured") == "true",
		Lang:     languageFromContext(r.Context()),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if perPage, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && perPage > 0 {
		q.PerPage = perPage
	}

	products, err := h.catalog.Products(ctx, q)
	if err != nil {
		log.Printf("product listing failed, serving empty list: %v", err)
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	product, err := h.catalog.ProductBySlug(ctx, slug, languageFromContext(r.Context()))
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.Categories(ctx, languageFromContext(r.Context()))
	if err != nil {
		log.Printf("category listing failed, serving empty list: %v", err)
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

func (h *ProductHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	limit := 8
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	products, err := h.catalog.Featured(ctx, languageFromContext(r.Context()), limit)
	if err != nil {
		log.Printf("featured listing failed, serving empty list: %v", err)
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

func (h *ProductHandler) ListHomeCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.HomeCategories(ctx, languageFromContext(r.Context()))
	if err != nil {
		log.Printf("home category listing failed, serving empty list: %v", err)
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
