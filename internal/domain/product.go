package domain

// ProductType distinguishes simple products from configurable ones.
type ProductType string

const (
	ProductSimple   ProductType = "simple"
	ProductVariable ProductType = "variable"
)

type Product struct {
	ID             int64       `json:"id"`
	Slug           string      `json:"slug"`
	Name           string      `json:"name"`
	Type           ProductType `json:"type"`
	Description    string      `json:"description,omitempty"`
	Price          string      `json:"price"`
	RegularPrice   string      `json:"regular_price"`
	SalePrice      string      `json:"sale_price,omitempty"`
	DealerPrice    string      `json:"dealer_price,omitempty"`
	PromotionPrice string      `json:"promotion_price,omitempty"`
	IsPromotion    bool        `json:"is_promotion"`
	Categories     []Category  `json:"categories"`
	Images         []Image     `json:"images"`
	Attributes     []Attribute `json:"attributes,omitempty"`
	Variations     []Variation `json:"variations,omitempty"`
}

// PrimaryCategory is the first category, used for breadcrumbs.
func (p Product) PrimaryCategory() *Category {
	if len(p.Categories) == 0 {
		return nil
	}
	return &p.Categories[0]
}

type Category struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image *Image `json:"image,omitempty"`
}

// Attribute describes a configurable axis of a variable product. Only
// attributes with Variation=true participate in variant selection.
type Attribute struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Options   []string `json:"options"`
	Variation bool     `json:"variation"`
}

// Variation is one purchasable configuration of a variable product.
type Variation struct {
	ID            int64             `json:"id"`
	Attributes    map[string]string `json:"attributes"`
	Price         string            `json:"price"`
	DealerPrice   string            `json:"dealer_price,omitempty"`
	StockStatus   string            `json:"stock_status"`
	StockQuantity *int              `json:"stock_quantity,omitempty"`
	Image         *Image            `json:"image,omitempty"`
}

// InStock reports whether the variation is purchasable.
func (v Variation) InStock() bool {
	return v.StockStatus == "instock"
}
