package domain

// DealerStatus is the backend-owned lifecycle state of a wholesale
// account. Transitions happen in the CMS admin, not here.
type DealerStatus string

const (
	DealerPending   DealerStatus = "pending"
	DealerApproved  DealerStatus = "approved"
	DealerRejected  DealerStatus = "rejected"
	DealerSuspended DealerStatus = "suspended"
)

type DealerAccount struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	IsDealer bool         `json:"is_dealer"`
	Status   DealerStatus `json:"dealer_status"`
	Company  string       `json:"dealer_company,omitempty"`
	Phone    string       `json:"dealer_phone,omitempty"`
	Address  string       `json:"dealer_address,omitempty"`
}

// CanOrder reports whether the account has wholesale purchasing rights.
func (d DealerAccount) CanOrder() bool {
	return d.IsDealer && d.Status == DealerApproved
}

type Order struct {
	ID       int64       `json:"id"`
	Number   string      `json:"number"`
	Status   string      `json:"status"`
	Total    string      `json:"total"`
	Currency string      `json:"currency"`
	Created  string      `json:"created"`
	Items    []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}
