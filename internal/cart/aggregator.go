// Package cart maintains the single authoritative in-memory cart per
// storefront session. It reconciles three imperfect signals: the remote
// cart contents, an unreliable remote shipping quote, and the local
// deterministic shipping fallback.
package cart

import (
	"context"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

// RemoteCart is the slice of the WordPress client the aggregator needs.
type RemoteCart interface {
	FetchCart(ctx context.Context, token, lang string) (*domain.Cart, error)
	AddItem(ctx context.Context, token string, params wordpress.AddItemParams) (*domain.Cart, error)
	UpdateItem(ctx context.Context, token, key string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, token, key string) (*domain.Cart, error)
	FetchShippingQuote(ctx context.Context, token string) (*wordpress.ShippingQuote, error)
}

// Aggregator owns one session's cart. All operations go through it;
// nothing else mutates the cart. Mutating calls are serialized by the
// mutex, so two rapid updates for the same line cannot interleave.
type Aggregator struct {
	api   RemoteCart
	token string

	mu   sync.Mutex
	cart domain.Cart
}

func NewAggregator(api RemoteCart, token string) *Aggregator {
	return &Aggregator{api: api, token: token, cart: emptyCart()}
}

// emptyCart is the sentinel the UI falls back to. Shipping reflects the
// local fallback for a zero subtotal, so the cart is never undefined.
func emptyCart() domain.Cart {
	return domain.Cart{
		Items:    []domain.CartItem{},
		Totals:   domain.Totals{Subtotal: "0", Total: "0"},
		Shipping: ShippingFor(decimal.Zero),
	}
}

// Load fetches the remote cart and reconciles shipping. The remote
// quote is trusted only when it reports a positive subtotal; a
// degenerate or failed quote keeps the local fallback. On fetch failure
// the cart resets to the empty sentinel rather than erroring out.
func (a *Aggregator) Load(ctx context.Context, lang string) domain.Cart {
	a.mu.Lock()
	defer a.mu.Unlock()

	remote, err := a.api.FetchCart(ctx, a.token, lang)
	if err != nil {
		log.Printf("cart load failed, falling back to empty cart: %v", err)
		a.cart = emptyCart()
		return a.cart
	}

	cart := *remote
	cart.Shipping = ShippingFor(domain.Amount(cart.Totals.Subtotal))

	if quote, errQuote := a.api.FetchShippingQuote(ctx, a.token); errQuote == nil {
		if quote.Subtotal.IsPositive() {
			cart.Shipping = domain.Shipping{
				Cost:  quote.Cost,
				Label: quote.Label,
				Free:  quote.Cost.IsZero(),
			}
		}
	} else {
		log.Printf("shipping quote unavailable, keeping local fallback: %v", errQuote)
	}

	a.cart = cart
	return a.cart
}

// Refresh has the Load contract but never queries the remote quote.
// Used after language or context changes where the cart is presumed
// already consistent server-side.
func (a *Aggregator) Refresh(ctx context.Context, lang string) domain.Cart {
	a.mu.Lock()
	defer a.mu.Unlock()

	remote, err := a.api.FetchCart(ctx, a.token, lang)
	if err != nil {
		log.Printf("cart refresh failed, falling back to empty cart: %v", err)
		a.cart = emptyCart()
		return a.cart
	}

	cart := *remote
	cart.Shipping = ShippingFor(domain.Amount(cart.Totals.Subtotal))
	a.cart = cart
	return a.cart
}

// Add sends an add-to-cart request and recomputes the local shipping
// from the returned subtotal. The remote quote is not re-queried here.
// On failure the previous cart state stays untouched and the error is
// returned for the caller to surface.
func (a *Aggregator) Add(ctx context.Context, params wordpress.AddItemParams) (domain.Cart, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	remote, err := a.api.AddItem(ctx, a.token, params)
	if err != nil {
		return a.cart, err
	}
	a.apply(remote)
	return a.cart, nil
}

// UpdateItem changes a line's quantity. Quantities below 1 are rejected
// client-side: no request is issued and the current cart is returned.
func (a *Aggregator) UpdateItem(ctx context.Context, key string, quantity int) (domain.Cart, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity < 1 {
		return a.cart, nil
	}

	remote, err := a.api.UpdateItem(ctx, a.token, key, quantity)
	if err != nil {
		return a.cart, err
	}
	a.apply(remote)
	return a.cart, nil
}

// Remove deletes the line addressed by key.
func (a *Aggregator) Remove(ctx context.Context, key string) (domain.Cart, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	remote, err := a.api.RemoveItem(ctx, a.token, key)
	if err != nil {
		return a.cart, err
	}
	a.apply(remote)
	return a.cart, nil
}

// Clear resets to the empty sentinel locally, without calling the
// backend. Used after a placed order.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = emptyCart()
}

// Current returns the cart as last reconciled.
func (a *Aggregator) Current() domain.Cart {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart
}

// apply installs a mutation response, overwriting shipping with the
// local fallback computed from the returned subtotal.
func (a *Aggregator) apply(remote *domain.Cart) {
	cart := *remote
	cart.Shipping = ShippingFor(domain.Amount(cart.Totals.Subtotal))
	a.cart = cart
}
