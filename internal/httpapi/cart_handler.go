package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manevdusko/fitbody-sub000/internal/catalog"
	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/i18n"
	"github.com/manevdusko/fitbody-sub000/internal/notify"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

// ProductSource is the product lookup AddItem needs to resolve a
// variation selection into a variation id.
type ProductSource interface {
	ProductByID(ctx context.Context, id int64, lang string) (*domain.Product, error)
}

type CartHandler struct {
	translator *i18n.Translator
	products   ProductSource
	timeout    time.Duration
}

func NewCartHandler(translator *i18n.Translator, products ProductSource, timeout time.Duration) *CartHandler {
	return &CartHandler{translator: translator, products: products, timeout: timeout}
}

type AddItemRequestDTO struct {
	ProductID   int64             `json:"product_id"`
	Quantity    int               `json:"quantity"`
	VariationID int64             `json:"variation_id,omitempty"`
	Variation   map[string]string `json:"variation,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart plus the display total the storefront
// renders (backend total plus reconciled shipping).
type CartResponse struct {
	domain.Cart
	GrandTotal string `json:"grand_total"`
}

func cartResponse(c domain.Cart) CartResponse {
	return CartResponse{Cart: c, GrandTotal: c.GrandTotal().String()}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	cart := sess.Cart.Load(ctx, languageFromContext(r.Context()))
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	lang := languageFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// A variation selection without an explicit variation id is
	// resolved against the product before anything reaches the cart.
	if req.VariationID == 0 && len(req.Variation) > 0 {
		product, errProduct := h.products.ProductByID(ctx, req.ProductID, lang)
		if errProduct != nil {
			// Forward unresolved; the backend validates the line.
			log.Printf("product %d lookup failed, forwarding variation selection as-is: %v", req.ProductID, errProduct)
		} else {
			variation, errResolve := catalog.ResolveVariation(product, req.Variation)
			if errResolve != nil {
				if errors.Is(errResolve, catalog.ErrNoVariation) {
					respondError(w, http.StatusBadRequest, "invalid_variation", "selection matches no product variation")
					return
				}
				respondRemoteError(w, errResolve)
				return
			}
			req.VariationID = variation.ID
		}
	}

	cart, err := sess.Cart.Add(ctx, wordpress.AddItemParams{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		VariationID: req.VariationID,
		Variation:   req.Variation,
	})
	if err != nil {
		sess.Notifications.ShowError(h.translator.T(lang, "notifications.add_failed"), "")
		respondRemoteError(w, err)
		return
	}

	sess.Notifications.ShowSuccess(
		h.translator.T(lang, "notifications.added_to_cart"), "",
		&notify.Action{Label: h.translator.T(lang, "notifications.view_cart"), URL: "/cart"},
	)
	respondJSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	key := chi.URLParam(r, "key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "invalid_key", "cart line key is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	// Quantity floor: rejected here, before any backend request.
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	cart, err := sess.Cart.UpdateItem(ctx, key, req.Quantity)
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	key := chi.URLParam(r, "key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "invalid_key", "cart line key is required")
		return
	}

	cart, err := sess.Cart.Remove(ctx, key)
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

// ClearCart resets the session cart locally; the backend cart is left
// alone on purpose.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	sess.Cart.Clear()
	respondJSON(w, http.StatusOK, cartResponse(sess.Cart.Current()))
}

func (h *CartHandler) RefreshCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	cart := sess.Cart.Refresh(ctx, languageFromContext(r.Context()))
	respondJSON(w, http.StatusOK, cartResponse(cart))
}
