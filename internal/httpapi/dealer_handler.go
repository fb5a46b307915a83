package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

type DealerAPI interface {
	RegisterDealer(ctx context.Context, reg wordpress.DealerRegistration) (*domain.DealerAccount, error)
	DealerLogin(ctx context.Context, username, password string) (*wordpress.LoginResult, error)
	DealerForgotPassword(ctx context.Context, email string) error
	DealerProfile(ctx context.Context, authToken string) (*domain.DealerAccount, error)
	UpdateDealerProfile(ctx context.Context, authToken string, update wordpress.DealerProfileUpdate) (*domain.DealerAccount, error)
	DealerOrders(ctx context.Context, authToken string) ([]domain.Order, error)
}

type DealerHandler struct {
	api     DealerAPI
	timeout time.Duration
}

func NewDealerHandler(api DealerAPI, timeout time.Duration) *DealerHandler {
	return &DealerHandler{api: api, timeout: timeout}
}

type DealerRegisterDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (req DealerRegisterDTO) validate() map[string]string {
	fields := map[string]string{}
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			fields[name] = "required"
		}
	}
	check("username", req.Username)
	check("email", req.Email)
	check("password", req.Password)
	check("company", req.Company)
	check("phone", req.Phone)

	if _, bad := fields["email"]; !bad && !emailPattern.MatchString(req.Email) {
		fields["email"] = "invalid"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Register files a wholesale application. The resulting account is
// pending until an administrator approves it in the CMS.
func (h *DealerHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req DealerRegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if fields := req.validate(); fields != nil {
		respondValidationError(w, fields)
		return
	}

	account, err := h.api.RegisterDealer(ctx, wordpress.DealerRegistration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

type DealerLoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *DealerHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req DealerLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "username and password are required")
		return
	}

	result, err := h.api.DealerLogin(ctx, req.Username, req.Password)
	if err != nil {
		// Login failure is one of the few terminal errors the
		// storefront shows verbatim.
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type ForgotPasswordDTO struct {
	Email string `json:"email"`
}

func (h *DealerHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ForgotPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		respondError(w, http.StatusBadRequest, "invalid_email", "a valid email is required")
		return
	}

	if err := h.api.DealerForgotPassword(ctx, req.Email); err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DealerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	account, err := h.api.DealerProfile(ctx, token)
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

type DealerProfileUpdateDTO struct {
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *DealerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	var req DealerProfileUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, err := h.api.UpdateDealerProfile(ctx, token, wordpress.DealerProfileUpdate{
		Company: req.Company,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

func (h *DealerHandler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	orders, err := h.api.DealerOrders(ctx, token)
	if err != nil {
		respondRemoteError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, OrdersResponse{Orders: orders})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
