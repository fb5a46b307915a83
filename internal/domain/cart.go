package domain

import "github.com/shopspring/decimal"

// Cart is the session's view of the remote cart plus the reconciled
// shipping quote. Display order of Items follows insertion order as
// returned by the backend.
type Cart struct {
	Items    []CartItem `json:"items"`
	Totals   Totals     `json:"totals"`
	Shipping Shipping   `json:"shipping"`
}

// CartItem is one cart line. Lines are addressed by Key, not by product
// ID: two lines may share an ID with different Variation selections.
type CartItem struct {
	Key         string            `json:"key"`
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Price       string            `json:"price"`
	Quantity    int               `json:"quantity"`
	Total       string            `json:"total"`
	VariationID int64             `json:"variation_id,omitempty"`
	Variation   map[string]string `json:"variation,omitempty"`
	Image       *Image            `json:"image,omitempty"`
}

// Totals carries the backend's authoritative amounts. Amounts are
// currency-less decimal strings; the backend is known to return
// Subtotal as a numeric string.
type Totals struct {
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Shipping is the reconciled shipping quote merged into the cart. It is
// never persisted back to the backend.
type Shipping struct {
	Cost  decimal.Decimal `json:"cost"`
	Label string          `json:"label"`
	Free  bool            `json:"free"`
}

// Image is a display image reference.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// GrandTotal is the amount shown to the user: backend total plus the
// reconciled shipping cost.
func (c Cart) GrandTotal() decimal.Decimal {
	return Amount(c.Totals.Total).Add(c.Shipping.Cost)
}

// Amount parses a backend decimal string. Empty or malformed values
// degrade to zero rather than failing the whole cart.
func Amount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
