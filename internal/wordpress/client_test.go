package wordpress

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_LangParamOnlyWhenNonDefault(t *testing.T) {
	var gotLang []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = append(gotLang, r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	ctx := context.Background()

	_, err := client.ListProducts(ctx, ProductQuery{Lang: DefaultLanguage})
	require.NoError(t, err)
	_, err = client.ListProducts(ctx, ProductQuery{Lang: ""})
	require.NoError(t, err)
	_, err = client.ListProducts(ctx, ProductQuery{Lang: "en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "", "en"}, gotLang)
}

func TestFetchCart_ReshapesWirePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/fitbody/v1/cart", r.URL.Path)
		assert.Equal(t, "session-token", r.Header.Get("Cart-Token"))
		w.Header().Set("Content-Type", "application/json")
		// Subtotal arrives as a numeric string, item price as a number.
		w.Write([]byte(`{
			"items": [
				{"key": "abc123", "id": 42, "name": "Whey", "price": 1000,
				 "quantity": 2, "total": "2000",
				 "variation_id": 422,
				 "variation": {"Flavor": "Chocolate"},
				 "image": {"src": "https://cdn/whey.jpg", "alt": "Whey"}}
			],
			"totals": {"subtotal": "2000", "total": 2000, "currency": "MKD"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	cart, err := client.FetchCart(context.Background(), "session-token", "mk")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "abc123", item.Key)
	assert.EqualValues(t, 42, item.ID)
	assert.Equal(t, "1000", item.Price)
	assert.Equal(t, "2000", item.Total)
	assert.EqualValues(t, 422, item.VariationID)
	assert.Equal(t, map[string]string{"Flavor": "Chocolate"}, item.Variation)
	require.NotNil(t, item.Image)
	assert.Equal(t, "https://cdn/whey.jpg", item.Image.Src)

	assert.Equal(t, "2000", cart.Totals.Subtotal)
	assert.Equal(t, "2000", cart.Totals.Total)
	assert.Equal(t, "MKD", cart.Totals.Currency)
}

func TestFetchShippingQuote_ParsesAmounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/fitbody/v1/cart/shipping", r.URL.Path)
		w.Write([]byte(`{"subtotal": "2500", "cost": 150, "label": "standard shipping"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	quote, err := client.FetchShippingQuote(context.Background(), "tok")
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(2500)))
	assert.True(t, quote.Cost.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "standard shipping", quote.Label)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "woocommerce_rest_invalid_product", "message": "Invalid product."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.AddItem(context.Background(), "tok", AddItemParams{ProductID: 0, Quantity: 1})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "woocommerce_rest_invalid_product", apiErr.Code)
	assert.Equal(t, "Invalid product.", apiErr.Message)
}

func TestNotFoundWrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code": "not_found", "message": "No such product."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.GetProductBySlug(context.Background(), "ghost", "mk")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateItem_SendsQuantityBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/wp-json/fitbody/v1/cart/items/line-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"items": [], "totals": {"subtotal": "0", "total": "0", "currency": "MKD"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.UpdateItem(context.Background(), "tok", "line-1", 3)
	assert.NoError(t, err)
}

func TestDealerLogin_ReturnsTokenAndAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/fitbody/v1/dealer/login", r.URL.Path)
		w.Write([]byte(`{
			"token": "jwt-token",
			"user": {"id": 7, "username": "gym-skopje", "email": "gym@example.com",
			         "is_dealer": true, "dealer_status": "approved", "dealer_company": "Gym DOO"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	result, err := client.DealerLogin(context.Background(), "gym-skopje", "secret")
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", result.Token)
	assert.True(t, result.Account.CanOrder())
	assert.Equal(t, "Gym DOO", result.Account.Company)
}
