package wordpress

import (
	"context"
	"net/url"
	"strconv"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// ProductQuery narrows a product listing request.
type ProductQuery struct {
	Page     int
	PerPage  int
	Category string
	Search   string
	OrderBy  string
	Featured bool
	Lang     string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.OrderBy != "" {
		v.Set("orderby", q.OrderBy)
	}
	if q.Featured {
		v.Set("featured", "true")
	}
	return langQuery(v, q.Lang)
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.get(ctx, fitbodyPath+"/products", q.values(), &wire); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(wire))
	for i, p := range wire {
		products[i] = toProduct(p)
	}
	return products, nil
}

// GetProduct fetches one product by id, e.g. to resolve a variation
// selection for a cart line.
func (c *Client) GetProduct(ctx context.Context, id int64, lang string) (*domain.Product, error) {
	var wire wireProduct
	if err := c.get(ctx, fitbodyPath+"/products/"+strconv.FormatInt(id, 10), langQuery(nil, lang), &wire); err != nil {
		return nil, err
	}
	p := toProduct(wire)
	return &p, nil
}

func (c *Client) GetProductBySlug(ctx context.Context, slug, lang string) (*domain.Product, error) {
	var wire wireProduct
	if err := c.get(ctx, fitbodyPath+"/products/"+url.PathEscape(slug), langQuery(nil, lang), &wire); err != nil {
		return nil, err
	}
	p := toProduct(wire)
	return &p, nil
}

func (c *Client) ListCategories(ctx context.Context, lang string) ([]domain.Category, error) {
	var wire []wireCategory
	if err := c.get(ctx, fitbodyPath+"/products/categories", langQuery(nil, lang), &wire); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(wire))
	for i, cat := range wire {
		categories[i] = toCategory(cat)
	}
	return categories, nil
}

func toProduct(w wireProduct) domain.Product {
	p := domain.Product{
		ID:             w.ID,
		Slug:           w.Slug,
		Name:           w.Name,
		Type:           domain.ProductType(w.Type),
		Description:    w.Description,
		Price:          w.Price.String(),
		RegularPrice:   w.RegularPrice.String(),
		SalePrice:      w.SalePrice.String(),
		DealerPrice:    w.DealerPrice.String(),
		PromotionPrice: w.PromotionPrice.String(),
		IsPromotion:    w.IsPromotion,
		Categories:     make([]domain.Category, len(w.Categories)),
		Images:         make([]domain.Image, len(w.Images)),
	}
	for i, c := range w.Categories {
		p.Categories[i] = toCategory(c)
	}
	for i, img := range w.Images {
		p.Images[i] = domain.Image{Src: img.Src, Alt: img.Alt}
	}
	for _, a := range w.Attributes {
		p.Attributes = append(p.Attributes, domain.Attribute{
			Name:      a.Name,
			Slug:      a.Slug,
			Options:   a.Options,
			Variation: a.Variation,
		})
	}
	for _, v := range w.Variations {
		p.Variations = append(p.Variations, toVariation(v))
	}
	return p
}

func toVariation(w wireVariation) domain.Variation {
	v := domain.Variation{
		ID:            w.ID,
		Attributes:    w.Attributes,
		Price:         w.Price.String(),
		DealerPrice:   w.DealerPrice.String(),
		StockStatus:   w.StockStatus,
		StockQuantity: w.StockQuantity,
	}
	if w.Image != nil {
		v.Image = &domain.Image{Src: w.Image.Src, Alt: w.Image.Alt}
	}
	return v
}

func toCategory(w wireCategory) domain.Category {
	c := domain.Category{ID: w.ID, Slug: w.Slug, Name: w.Name, Count: w.Count}
	if w.Image != nil {
		c.Image = &domain.Image{Src: w.Image.Src, Alt: w.Image.Alt}
	}
	return c
}
