package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

func TestCartHandlerAddItem(t *testing.T) {
	h := NewCartHandler(testTranslator(), &catalogMock{}, time.Second)

	t.Run("adds item and pushes a success notification", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 2})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(42), resp.Items[0].ID)
		assert.Equal(t, 1, remote.addCalls)

		notes := sess.Notifications.List()
		require.Len(t, notes, 1)
		assert.Equal(t, "Added to cart", notes[0].Title)
		require.NotNil(t, notes[0].Action)
		assert.Equal(t, "/cart", notes[0].Action.URL)
	})

	t.Run("rejects non-positive product id without a backend call", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 0, Quantity: 1})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, remote.addCalls)
	})

	t.Run("defaults quantity to one", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 7})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Items[0].Quantity)
	})

	t.Run("backend failure surfaces an error notification", func(t *testing.T) {
		remote := &remoteCartMock{err: errors.New("backend down")}
		sess := newTestSession(remote)
		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 7, Quantity: 1})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		notes := sess.Notifications.List()
		require.Len(t, notes, 1)
		assert.Equal(t, "Could not add the product", notes[0].Title)
	})
}

func variableProduct() *domain.Product {
	return &domain.Product{
		ID:   42,
		Slug: "whey-gold",
		Type: domain.ProductVariable,
		Attributes: []domain.Attribute{
			{Name: "Flavor", Slug: "flavor", Options: []string{"Chocolate", "Vanilla"}, Variation: true},
		},
		Variations: []domain.Variation{
			{ID: 421, Attributes: map[string]string{"Flavor": "Chocolate"}, Price: "500"},
			{ID: 422, Attributes: map[string]string{"Flavor": "Vanilla"}, Price: "500"},
		},
	}
}

func TestCartHandlerAddItemVariations(t *testing.T) {
	t.Run("selection resolves to the matching variation id", func(t *testing.T) {
		h := NewCartHandler(testTranslator(), &catalogMock{product: variableProduct()}, time.Second)
		remote := &remoteCartMock{}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 1, Variation: map[string]string{"Flavor": "Vanilla"}})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(422), remote.lastAdd.VariationID)
	})

	t.Run("unknown attribute value falls back to the first option", func(t *testing.T) {
		h := NewCartHandler(testTranslator(), &catalogMock{product: variableProduct()}, time.Second)
		remote := &remoteCartMock{}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 1, Variation: map[string]string{"Flavor": "Strawberry"}})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(421), remote.lastAdd.VariationID)
	})

	t.Run("selection on a simple product is rejected before the cart call", func(t *testing.T) {
		simple := &domain.Product{ID: 42, Slug: "shaker", Type: domain.ProductSimple}
		h := NewCartHandler(testTranslator(), &catalogMock{product: simple}, time.Second)
		remote := &remoteCartMock{}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 1, Variation: map[string]string{"Flavor": "Chocolate"}})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, remote.addCalls)
	})

	t.Run("explicit variation id is forwarded untouched", func(t *testing.T) {
		h := NewCartHandler(testTranslator(), &catalogMock{}, time.Second)
		remote := &remoteCartMock{}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 1, VariationID: 999, Variation: map[string]string{"Flavor": "Vanilla"}})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(999), remote.lastAdd.VariationID)
	})

	t.Run("product lookup failure forwards the selection unresolved", func(t *testing.T) {
		h := NewCartHandler(testTranslator(), &catalogMock{err: errors.New("backend down")}, time.Second)
		remote := &remoteCartMock{}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			jsonBody(t, AddItemRequestDTO{ProductID: 42, Quantity: 1, Variation: map[string]string{"Flavor": "Vanilla"}})), sess, "en")
		w := httptest.NewRecorder()

		h.AddItem(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(0), remote.lastAdd.VariationID)
		assert.Equal(t, map[string]string{"Flavor": "Vanilla"}, remote.lastAdd.Variation)
	})
}

func TestCartHandlerUpdateItem(t *testing.T) {
	h := NewCartHandler(testTranslator(), &catalogMock{}, time.Second)

	t.Run("rejects quantity below one before any backend request", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		r := requestWithSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/line-1",
			jsonBody(t, UpdateQuantityRequestDTO{Quantity: 0})), sess, "en")
		r = withURLParam(r, "key", "line-1")
		w := httptest.NewRecorder()

		h.UpdateItem(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, remote.updCalls)
	})

	t.Run("updates line quantity", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		_, err := sess.Cart.Add(context.Background(), addParams(5, 1))
		require.NoError(t, err)

		r := requestWithSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/line-1",
			jsonBody(t, UpdateQuantityRequestDTO{Quantity: 4})), sess, "en")
		r = withURLParam(r, "key", "line-1")
		w := httptest.NewRecorder()

		h.UpdateItem(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 4, resp.Items[0].Quantity)
	})
}

func TestCartHandlerClearCart(t *testing.T) {
	h := NewCartHandler(testTranslator(), &catalogMock{}, time.Second)

	remote := &remoteCartMock{}
	sess := newTestSession(remote)
	_, err := sess.Cart.Add(context.Background(), addParams(5, 2))
	require.NoError(t, err)

	r := requestWithSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), sess, "en")
	w := httptest.NewRecorder()

	h.ClearCart(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	// Clearing is a local reset, the backend cart is untouched.
	assert.Equal(t, 0, remote.delCalls)
}

func TestCartHandlerGetCart(t *testing.T) {
	h := NewCartHandler(testTranslator(), &catalogMock{}, time.Second)

	t.Run("returns the reconciled cart with a grand total", func(t *testing.T) {
		remote := &remoteCartMock{}
		sess := newTestSession(remote)
		_, err := sess.Cart.Add(context.Background(), addParams(5, 2))
		require.NoError(t, err)

		r := requestWithSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), sess, "en")
		w := httptest.NewRecorder()

		h.GetCart(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// 2 x 500 = 1000 subtotal, below the free shipping threshold.
		assert.Equal(t, "1150", resp.GrandTotal)
	})

	t.Run("falls back to the empty cart when the backend is down", func(t *testing.T) {
		remote := &remoteCartMock{err: errors.New("backend down")}
		sess := newTestSession(remote)

		r := requestWithSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), sess, "en")
		w := httptest.NewRecorder()

		h.GetCart(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
		assert.Equal(t, "0", resp.Totals.Subtotal)
	})
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
