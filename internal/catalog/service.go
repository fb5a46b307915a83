// Package catalog serves product and category reads on top of the
// WordPress API, with a Redis cache in front. The backend stays the
// source of truth; the cache only absorbs read traffic.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

// homeCategoryLimit caps the category strip on the home page.
const homeCategoryLimit = 6

// API is the slice of the WordPress client the catalog needs.
type API interface {
	ListProducts(ctx context.Context, q wordpress.ProductQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64, lang string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug, lang string) (*domain.Product, error)
	ListCategories(ctx context.Context, lang string) ([]domain.Category, error)
}

type Service struct {
	api   API
	cache Cache
	sfg   singleflight.Group // Prevents cache stampede
}

// NewService creates the catalog service. cache may be nil, in which
// case every read goes to the backend.
func NewService(api API, cache Cache) *Service {
	return &Service{api: api, cache: cache}
}

// Products lists products for the query, consulting the cache first.
// Concurrent misses for the same key are collapsed to one backend call.
func (s *Service) Products(ctx context.Context, q wordpress.ProductQuery) ([]domain.Product, error) {
	key := productsKey(q)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		var cached []domain.Product
		if errGet := s.cacheGet(ctx, key, &cached); errGet == nil {
			return cached, nil
		}

		products, errList := s.api.ListProducts(ctx, q)
		if errList != nil {
			return nil, errList
		}

		s.cacheSetAsync(key, products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// ProductBySlug returns one product. Misses of unknown slugs surface
// wordpress.ErrNotFound.
func (s *Service) ProductBySlug(ctx context.Context, slug, lang string) (*domain.Product, error) {
	key := fmt.Sprintf("product:%s:lang=%s", slug, lang)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		var cached domain.Product
		if errGet := s.cacheGet(ctx, key, &cached); errGet == nil {
			return &cached, nil
		}

		product, errFetch := s.api.GetProductBySlug(ctx, slug, lang)
		if errFetch != nil {
			return nil, errFetch
		}

		s.cacheSetAsync(key, product)
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

// ProductByID returns one product by id, e.g. to resolve a variation
// selection before an add-to-cart request.
func (s *Service) ProductByID(ctx context.Context, id int64, lang string) (*domain.Product, error) {
	key := fmt.Sprintf("product-id:%d:lang=%s", id, lang)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		var cached domain.Product
		if errGet := s.cacheGet(ctx, key, &cached); errGet == nil {
			return &cached, nil
		}

		product, errFetch := s.api.GetProduct(ctx, id, lang)
		if errFetch != nil {
			return nil, errFetch
		}

		s.cacheSetAsync(key, product)
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

// Categories lists the product categories.
func (s *Service) Categories(ctx context.Context, lang string) ([]domain.Category, error) {
	key := fmt.Sprintf("categories:lang=%s", lang)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		var cached []domain.Category
		if errGet := s.cacheGet(ctx, key, &cached); errGet == nil {
			return cached, nil
		}

		categories, errList := s.api.ListCategories(ctx, lang)
		if errList != nil {
			return nil, errList
		}

		s.cacheSetAsync(key, categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

// Featured lists the products flagged for the home page.
func (s *Service) Featured(ctx context.Context, lang string, limit int) ([]domain.Product, error) {
	return s.Products(ctx, wordpress.ProductQuery{Featured: true, PerPage: limit, Lang: lang})
}

// HomeCategories returns the non-empty categories shown on the home
// page, capped to the display limit.
func (s *Service) HomeCategories(ctx context.Context, lang string) ([]domain.Category, error) {
	categories, err := s.Categories(ctx, lang)
	if err != nil {
		return nil, err
	}

	home := make([]domain.Category, 0, homeCategoryLimit)
	for _, c := range categories {
		if c.Count == 0 {
			continue
		}
		home = append(home, c)
		if len(home) == homeCategoryLimit {
			break
		}
	}
	return home, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) error {
	if s.cache == nil {
		return ErrCacheMiss
	}
	err := s.cache.Get(ctx, key, out)
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		log.Printf("cache get error: %v", err) // log cache error but continue
	}
	return err
}

func (s *Service) cacheSetAsync(key string, v any) {
	if s.cache == nil {
		return
	}
	go func() {
		if err := s.cache.Set(context.Background(), key, v); err != nil {
			log.Printf("cache set error: %v", err)
		}
	}()
}

func productsKey(q wordpress.ProductQuery) string {
	return fmt.Sprintf("products:page=%d:per=%d:cat=%s:search=%s:order=%s:featured=%t:lang=%s",
		q.Page, q.PerPage, q.Category, q.Search, q.OrderBy, q.Featured, q.Lang)
}
