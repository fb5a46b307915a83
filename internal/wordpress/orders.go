package wordpress

import (
	"context"
	"net/http"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// OrderRequest places a checkout order through the WooCommerce orders
// endpoint. Line items reference cart lines by product/variation id;
// the backend prices them (dealer and promotional pricing included).
type OrderRequest struct {
	Billing      OrderAddress     `json:"billing"`
	Items        []OrderLineInput `json:"line_items"`
	CustomerNote string           `json:"customer_note,omitempty"`
	CartToken    string           `json:"-"`
}

type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode,omitempty"`
}

type OrderLineInput struct {
	ProductID   int64 `json:"product_id"`
	VariationID int64 `json:"variation_id,omitempty"`
	Quantity    int   `json:"quantity"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*domain.Order, error) {
	var wire wireOrder
	if err := c.do(ctx, http.MethodPost, wcPath+"/orders", nil, req.CartToken, "", req, &wire); err != nil {
		return nil, err
	}
	order := toOrder(wire)
	return &order, nil
}
