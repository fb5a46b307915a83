package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/manevdusko/fitbody-sub000/internal/cart"
	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/i18n"
	"github.com/manevdusko/fitbody-sub000/internal/notify"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func addParams(productID int64, quantity int) wordpress.AddItemParams {
	return wordpress.AddItemParams{ProductID: productID, Quantity: quantity}
}

func testTranslator() *i18n.Translator {
	return i18n.New(filepath.Join("..", "..", "locales"))
}

func newTestSession(api cart.RemoteCart) *cart.Session {
	return &cart.Session{
		ID:            "test-session",
		Token:         "test-token",
		Cart:          cart.NewAggregator(api, "test-token"),
		Notifications: notify.NewCenter(),
	}
}

func requestWithSession(r *http.Request, sess *cart.Session, lang string) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, sess)
	ctx = context.WithValue(ctx, languageContextKey, lang)
	return r.WithContext(ctx)
}

// remoteCartMock is a minimal backend cart double for handler tests.
type remoteCartMock struct {
	m         sync.Mutex
	items     []domain.CartItem
	err       error
	nextKey   int
	addCalls  int
	updCalls  int
	delCalls  int
	getCalls  int
	quoteHits int

	lastAdd wordpress.AddItemParams
}

func (m *remoteCartMock) snapshot() *domain.Cart {
	subtotal := decimal.Zero
	items := make([]domain.CartItem, len(m.items))
	copy(items, m.items)
	for _, item := range items {
		subtotal = subtotal.Add(domain.Amount(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return &domain.Cart{
		Items:  items,
		Totals: domain.Totals{Subtotal: subtotal.String(), Total: subtotal.String(), Currency: "MKD"},
	}
}

func (m *remoteCartMock) FetchCart(context.Context, string, string) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot(), nil
}

func (m *remoteCartMock) AddItem(_ context.Context, _ string, params wordpress.AddItemParams) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.addCalls++
	m.lastAdd = params
	if m.err != nil {
		return nil, m.err
	}
	m.nextKey++
	m.items = append(m.items, domain.CartItem{
		Key:         fmt.Sprintf("line-%d", m.nextKey),
		ID:          params.ProductID,
		Price:       "500",
		Quantity:    params.Quantity,
		VariationID: params.VariationID,
		Variation:   params.Variation,
	})
	return m.snapshot(), nil
}

func (m *remoteCartMock) UpdateItem(_ context.Context, _, key string, quantity int) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.updCalls++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].Key == key {
			m.items[i].Quantity = quantity
		}
	}
	return m.snapshot(), nil
}

func (m *remoteCartMock) RemoveItem(_ context.Context, _, key string) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.delCalls++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return m.snapshot(), nil
}

func (m *remoteCartMock) FetchShippingQuote(context.Context, string) (*wordpress.ShippingQuote, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.quoteHits++
	return &wordpress.ShippingQuote{}, nil
}
