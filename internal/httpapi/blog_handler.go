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

type Blog interface {
	ListPosts(ctx context.Context, q wordpress.PostQuery) ([]domain.Post, error)
	GetPostBySlug(ctx context.Context, slug, lang string) (*domain.Post, error)
	ListBlogCategories(ctx context.Context, lang string) ([]domain.Category, error)
}

type BlogHandler struct {
	blog    Blog
	timeout time.Duration
}

func NewBlogHandler(blog Blog, timeout time.Duration) *BlogHandler {
	return &BlogHandler{blog: blog, timeout: timeout}
}

type PostsResponse struct {
	Posts []domain.Post `json:"posts"`
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := wordpress.PostQuery{
		Category: r.URL.Query().Get("category"),
		Lang:     languageFromContext(r.Context()),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if perPage, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && perPage > 0 {
		q.PerPage = perPage
	}

	posts, err := h.blog.ListPosts(ctx, q)
	if err != nil {
		log.Printf("post listing failed, serving empty list: %v", err)
		posts = []domain.Post{}
	}
	respondJSON(w, http.StatusOK, PostsResponse{Posts: posts})
}

func (h *BlogHandler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	post, err := h.blog.GetPostBySlug(ctx, chi.URLParam(r, "slug"), languageFromContext(r.Context()))
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.blog.ListBlogCategories(ctx, languageFromContext(r.Context()))
	if err != nil {
		log.Printf("blog category listing failed, serving empty list: %v", err)
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
