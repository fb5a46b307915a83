package wordpress

import "encoding/json"

// Wire types for the fitbody/v1 and wc/v3 endpoints. All money fields
// are decimal strings; some arrive as JSON numbers depending on the
// backend plugin version, hence the json.Number tolerance below.

type wireCart struct {
	Items  []wireCartItem `json:"items"`
	Totals wireTotals     `json:"totals"`
}

type wireCartItem struct {
	Key         string            `json:"key"`
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Price       json.Number       `json:"price"`
	Quantity    int               `json:"quantity"`
	Total       json.Number       `json:"total"`
	VariationID int64             `json:"variation_id,omitempty"`
	Variation   map[string]string `json:"variation,omitempty"`
	Image       *wireImage        `json:"image,omitempty"`
}

type wireTotals struct {
	Subtotal json.Number `json:"subtotal"`
	Total    json.Number `json:"total"`
	Currency string      `json:"currency"`
}

type wireImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// wireShippingQuote is the optional cart/shipping answer. The endpoint
// is unreliable: a degenerate quote reports a zero subtotal.
type wireShippingQuote struct {
	Subtotal json.Number `json:"subtotal"`
	Cost     json.Number `json:"cost"`
	Label    string      `json:"label"`
}

type wireProduct struct {
	ID             int64           `json:"id"`
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	Price          json.Number     `json:"price"`
	RegularPrice   json.Number     `json:"regular_price"`
	SalePrice      json.Number     `json:"sale_price"`
	DealerPrice    json.Number     `json:"dealer_price"`
	PromotionPrice json.Number     `json:"promotion_price"`
	IsPromotion    bool            `json:"is_promotion"`
	Categories     []wireCategory  `json:"categories"`
	Images         []wireImage     `json:"images"`
	Attributes     []wireAttribute `json:"attributes"`
	Variations     []wireVariation `json:"variations"`
}

type wireCategory struct {
	ID    int64      `json:"id"`
	Slug  string     `json:"slug"`
	Name  string     `json:"name"`
	Count int        `json:"count"`
	Image *wireImage `json:"image,omitempty"`
}

type wireAttribute struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Options   []string `json:"options"`
	Variation bool     `json:"variation"`
}

type wireVariation struct {
	ID            int64             `json:"id"`
	Attributes    map[string]string `json:"attributes"`
	Price         json.Number       `json:"price"`
	DealerPrice   json.Number       `json:"dealer_price"`
	StockStatus   string            `json:"stock_status"`
	StockQuantity *int              `json:"stock_quantity"`
	Image         *wireImage        `json:"image,omitempty"`
}

type wirePost struct {
	ID         int64          `json:"id"`
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Excerpt    string         `json:"excerpt"`
	Content    string         `json:"content"`
	Image      *wireImage     `json:"image,omitempty"`
	Categories []wireCategory `json:"categories"`
	Date       string         `json:"date"`
}

type wireDealer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsDealer bool   `json:"is_dealer"`
	Status   string `json:"dealer_status"`
	Company  string `json:"dealer_company"`
	Phone    string `json:"dealer_phone"`
	Address  string `json:"dealer_address"`
}

type wireOrder struct {
	ID       int64           `json:"id"`
	Number   string          `json:"number"`
	Status   string          `json:"status"`
	Total    json.Number     `json:"total"`
	Currency string          `json:"currency"`
	Created  string          `json:"date_created"`
	Items    []wireOrderItem `json:"line_items"`
}

type wireOrderItem struct {
	ProductID int64       `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Total     json.Number `json:"total"`
}

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
