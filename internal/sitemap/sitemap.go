// Package sitemap renders the sitemap.xml per the sitemap protocol,
// combining the fixed page list with live catalog entries. A sub-list
// the backend fails to deliver is silently empty: a partial sitemap
// beats a 500 to a crawler.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// staticPages are the fixed storefront routes, with their crawl hints.
var staticPages = []URL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/products", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/blog", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/dealer", ChangeFreq: "monthly", Priority: "0.5"},
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// CatalogSource delivers the live entries. Both methods may fail
// independently.
type CatalogSource interface {
	Products(ctx context.Context, q wordpress.ProductQuery) ([]domain.Product, error)
	Categories(ctx context.Context, lang string) ([]domain.Category, error)
}

type Builder struct {
	baseURL string
	catalog CatalogSource
}

func NewBuilder(baseURL string, catalog CatalogSource) *Builder {
	return &Builder{baseURL: strings.TrimSuffix(baseURL, "/"), catalog: catalog}
}

// Build renders the sitemap document. Only the XML encoding itself can
// fail; backend failures degrade to missing entries.
func (b *Builder) Build(ctx context.Context) ([]byte, error) {
	now := time.Now().Format("2006-01-02")

	set := urlSet{XMLNS: xmlns}
	for _, page := range staticPages {
		page.Loc = b.baseURL + page.Loc
		page.LastMod = now
		set.URLs = append(set.URLs, page)
	}

	products, err := b.catalog.Products(ctx, wordpress.ProductQuery{PerPage: 100})
	if err != nil {
		log.Printf("sitemap: product list unavailable, omitting: %v", err)
	}
	for _, p := range products {
		set.URLs = append(set.URLs, URL{
			Loc:        fmt.Sprintf("%s/products/%s", b.baseURL, p.Slug),
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	categories, err := b.catalog.Categories(ctx, "")
	if err != nil {
		log.Printf("sitemap: category list unavailable, omitting: %v", err)
	}
	for _, c := range categories {
		set.URLs = append(set.URLs, URL{
			Loc:        fmt.Sprintf("%s/products?category=%s", b.baseURL, c.Slug),
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
