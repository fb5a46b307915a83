package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/i18n"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

type Orders interface {
	CreateOrder(ctx context.Context, req wordpress.OrderRequest) (*domain.Order, error)
}

type CheckoutHandler struct {
	orders     Orders
	translator *i18n.Translator
	timeout    time.Duration
}

func NewCheckoutHandler(orders Orders, translator *i18n.Translator, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{orders: orders, translator: translator, timeout: timeout}
}

type CheckoutRequestDTO struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	CustomerNote string `json:"customer_note"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validate checks the form before anything touches the network.
// Failures are reported per field so the storefront can render them
// inline.
func (req CheckoutRequestDTO) validate(t *i18n.Translator, lang string) map[string]string {
	required := t.T(lang, "checkout.errors.required")
	fields := map[string]string{}

	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			fields[name] = required
		}
	}
	check("first_name", req.FirstName)
	check("last_name", req.LastName)
	check("email", req.Email)
	check("phone", req.Phone)
	check("address", req.Address)
	check("city", req.City)

	if _, bad := fields["email"]; !bad && !emailPattern.MatchString(req.Email) {
		fields["email"] = t.T(lang, "checkout.errors.invalid_email")
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := sessionFromContext(r.Context())
	lang := languageFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if fields := req.validate(h.translator, lang); fields != nil {
		respondValidationError(w, fields)
		return
	}

	current := sess.Cart.Current()
	if len(current.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cannot place an order with an empty cart")
		return
	}

	lines := make([]wordpress.OrderLineInput, len(current.Items))
	for i, item := range current.Items {
		lines[i] = wordpress.OrderLineInput{
			ProductID:   item.ID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
		}
	}

	order, err := h.orders.CreateOrder(ctx, wordpress.OrderRequest{
		Billing: wordpress.OrderAddress{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			Postcode:  req.Postcode,
		},
		Items:        lines,
		CustomerNote: req.CustomerNote,
		CartToken:    sess.Token,
	})
	if err != nil {
		sess.Notifications.ShowError(h.translator.T(lang, "notifications.order_failed"), "")
		respondRemoteError(w, err)
		return
	}

	// Order accepted: the backend owns the order now, reset locally.
	sess.Cart.Clear()
	sess.Notifications.ShowSuccess(h.translator.T(lang, "notifications.order_placed"), "", nil)

	respondJSON(w, http.StatusCreated, order)
}
