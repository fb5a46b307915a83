package wordpress

import (
	"context"
	"net/http"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// DealerRegistration is the wholesale account application. New accounts
// start in the pending state; approval happens in the CMS admin.
type DealerRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"dealer_company"`
	Phone    string `json:"dealer_phone"`
	Address  string `json:"dealer_address"`
}

type DealerProfileUpdate struct {
	Company string `json:"dealer_company,omitempty"`
	Phone   string `json:"dealer_phone,omitempty"`
	Address string `json:"dealer_address,omitempty"`
}

// LoginResult carries the bearer token for subsequent dealer calls.
type LoginResult struct {
	Token   string               `json:"token"`
	Account domain.DealerAccount `json:"account"`
}

func (c *Client) RegisterDealer(ctx context.Context, reg DealerRegistration) (*domain.DealerAccount, error) {
	var wire wireDealer
	if err := c.do(ctx, http.MethodPost, fitbodyPath+"/dealer/register", nil, "", "", reg, &wire); err != nil {
		return nil, err
	}
	account := toDealer(wire)
	return &account, nil
}

func (c *Client) DealerLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result struct {
		Token string     `json:"token"`
		User  wireDealer `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, fitbodyPath+"/dealer/login", nil, "", "", body, &result); err != nil {
		return nil, err
	}
	return &LoginResult{Token: result.Token, Account: toDealer(result.User)}, nil
}

// DealerForgotPassword triggers the backend reset mail. The backend
// answers 200 regardless of whether the address exists.
func (c *Client) DealerForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, fitbodyPath+"/dealer/forgot-password", nil, "", "", body, nil)
}

func (c *Client) DealerProfile(ctx context.Context, authToken string) (*domain.DealerAccount, error) {
	var wire wireDealer
	if err := c.do(ctx, http.MethodGet, fitbodyPath+"/dealer/profile", nil, "", authToken, nil, &wire); err != nil {
		return nil, err
	}
	account := toDealer(wire)
	return &account, nil
}

func (c *Client) UpdateDealerProfile(ctx context.Context, authToken string, update DealerProfileUpdate) (*domain.DealerAccount, error) {
	var wire wireDealer
	if err := c.do(ctx, http.MethodPut, fitbodyPath+"/dealer/profile", nil, "", authToken, update, &wire); err != nil {
		return nil, err
	}
	account := toDealer(wire)
	return &account, nil
}

func (c *Client) DealerOrders(ctx context.Context, authToken string) ([]domain.Order, error) {
	var wire []wireOrder
	if err := c.do(ctx, http.MethodGet, fitbodyPath+"/dealer/orders", nil, "", authToken, nil, &wire); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(wire))
	for i, o := range wire {
		orders[i] = toOrder(o)
	}
	return orders, nil
}

func toDealer(w wireDealer) domain.DealerAccount {
	return domain.DealerAccount{
		ID:       w.ID,
		Username: w.Username,
		Email:    w.Email,
		IsDealer: w.IsDealer,
		Status:   domain.DealerStatus(w.Status),
		Company:  w.Company,
		Phone:    w.Phone,
		Address:  w.Address,
	}
}

func toOrder(w wireOrder) domain.Order {
	order := domain.Order{
		ID:       w.ID,
		Number:   w.Number,
		Status:   w.Status,
		Total:    w.Total.String(),
		Currency: w.Currency,
		Created:  w.Created,
	}
	for _, item := range w.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Total:     item.Total.String(),
		})
	}
	return order
}
