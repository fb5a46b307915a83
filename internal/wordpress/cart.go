package wordpress

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// AddItemParams describes one add-to-cart request. Variation fields are
// only set for variable products.
type AddItemParams struct {
	ProductID   int64             `json:"product_id"`
	Quantity    int               `json:"quantity"`
	VariationID int64             `json:"variation_id,omitempty"`
	Variation   map[string]string `json:"variation,omitempty"`
}

// ShippingQuote is the backend's optional shipping answer. A quote with
// a zero subtotal is degenerate and must not be trusted.
type ShippingQuote struct {
	Subtotal decimal.Decimal
	Cost     decimal.Decimal
	Label    string
}

// FetchCart returns the remote cart for the session token.
func (c *Client) FetchCart(ctx context.Context, token, lang string) (*domain.Cart, error) {
	var wire wireCart
	if err := c.do(ctx, http.MethodGet, fitbodyPath+"/cart", langQuery(nil, lang), token, "", nil, &wire); err != nil {
		return nil, err
	}
	return toCart(wire), nil
}

// AddItem adds a line to the remote cart and returns the updated cart.
func (c *Client) AddItem(ctx context.Context, token string, params AddItemParams) (*domain.Cart, error) {
	var wire wireCart
	if err := c.do(ctx, http.MethodPost, fitbodyPath+"/cart/items", nil, token, "", params, &wire); err != nil {
		return nil, err
	}
	return toCart(wire), nil
}

// UpdateItem changes the quantity of the line addressed by key.
func (c *Client) UpdateItem(ctx context.Context, token, key string, quantity int) (*domain.Cart, error) {
	var wire wireCart
	body := map[string]int{"quantity": quantity}
	if err := c.do(ctx, http.MethodPut, fitbodyPath+"/cart/items/"+url.PathEscape(key), nil, token, "", body, &wire); err != nil {
		return nil, err
	}
	return toCart(wire), nil
}

// RemoveItem deletes the line addressed by key.
func (c *Client) RemoveItem(ctx context.Context, token, key string) (*domain.Cart, error) {
	var wire wireCart
	if err := c.do(ctx, http.MethodDelete, fitbodyPath+"/cart/items/"+url.PathEscape(key), nil, token, "", nil, &wire); err != nil {
		return nil, err
	}
	return toCart(wire), nil
}

// FetchShippingQuote asks the backend for a shipping quote. The caller
// decides whether the quote is valid (see ShippingQuote).
func (c *Client) FetchShippingQuote(ctx context.Context, token string) (*ShippingQuote, error) {
	var wire wireShippingQuote
	if err := c.do(ctx, http.MethodGet, fitbodyPath+"/cart/shipping", nil, token, "", nil, &wire); err != nil {
		return nil, err
	}
	return &ShippingQuote{
		Subtotal: domain.Amount(wire.Subtotal.String()),
		Cost:     domain.Amount(wire.Cost.String()),
		Label:    wire.Label,
	}, nil
}

func toCart(w wireCart) *domain.Cart {
	cart := &domain.Cart{
		Items: make([]domain.CartItem, len(w.Items)),
		Totals: domain.Totals{
			Subtotal: w.Totals.Subtotal.String(),
			Total:    w.Totals.Total.String(),
			Currency: w.Totals.Currency,
		},
	}
	for i, item := range w.Items {
		cart.Items[i] = domain.CartItem{
			Key:         item.Key,
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price.String(),
			Quantity:    item.Quantity,
			Total:       item.Total.String(),
			VariationID: item.VariationID,
			Variation:   item.Variation,
		}
		if item.Image != nil {
			cart.Items[i].Image = &domain.Image{Src: item.Image.Src, Alt: item.Image.Alt}
		}
	}
	return cart
}
