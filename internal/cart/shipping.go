package cart

import (
	"github.com/shopspring/decimal"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// Local shipping fallback. Orders under the threshold pay a flat fee,
// everything at or above it ships free. This must stay a pure function
// of the subtotal: the same subtotal always yields the same cost.
const (
	FreeShippingThreshold = 3000
	StandardShippingCost  = 150

	StandardShippingLabel = "standard shipping"
	FreeShippingLabel     = "free shipping"
)

var (
	freeShippingThreshold = decimal.NewFromInt(FreeShippingThreshold)
	standardShippingCost  = decimal.NewFromInt(StandardShippingCost)
)

// ShippingFor computes the deterministic local shipping quote for a
// subtotal. It is the fallback used whenever the backend's quote is
// absent or degenerate.
func ShippingFor(subtotal decimal.Decimal) domain.Shipping {
	if subtotal.LessThan(freeShippingThreshold) {
		return domain.Shipping{Cost: standardShippingCost, Label: StandardShippingLabel}
	}
	return domain.Shipping{Cost: decimal.Zero, Label: FreeShippingLabel, Free: true}
}
