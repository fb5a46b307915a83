package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/manevdusko/fitbody-sub000/internal/cart"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Cart          *CartHandler
	Products      *ProductHandler
	Blog          *BlogHandler
	Checkout      *CheckoutHandler
	Dealer        *DealerHandler
	Notifications *NotificationHandler
	Language      *LanguageHandler
	Sitemap       *SitemapHandler
}

// NewRouter wires the storefront HTTP surface.
func NewRouter(h Handlers, sessions *cart.Store) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))
	r.Use(LanguageMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/sitemap.xml", h.Sitemap.Get)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(sessions))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Get("/featured", h.Products.ListFeatured)
			r.Get("/{slug}", h.Products.GetBySlug)
		})
		r.Get("/categories", h.Products.ListCategories)
		r.Get("/categories/home", h.Products.ListHomeCategories)

		r.Route("/blog", func(r chi.Router) {
			r.Get("/posts", h.Blog.ListPosts)
			r.Get("/posts/{slug}", h.Blog.GetPostBySlug)
			r.Get("/categories", h.Blog.ListCategories)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Delete("/", h.Cart.ClearCart)
			r.Post("/refresh", h.Cart.RefreshCart)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{key}", h.Cart.UpdateItem)
			r.Delete("/items/{key}", h.Cart.RemoveItem)
		})

		r.Post("/checkout", h.Checkout.Submit)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notifications.List)
			r.Delete("/", h.Notifications.ClearAll)
			r.Delete("/{id}", h.Notifications.Dismiss)
		})

		r.Route("/dealer", func(r chi.Router) {
			r.Post("/register", h.Dealer.Register)
			r.Post("/login", h.Dealer.Login)
			r.Post("/forgot-password", h.Dealer.ForgotPassword)
			r.Get("/profile", h.Dealer.Profile)
			r.Put("/profile", h.Dealer.UpdateProfile)
			r.Get("/orders", h.Dealer.Orders)
		})

		r.Get("/language", h.Language.Get)
		r.Put("/language", h.Language.Set)
	})

	return r
}
