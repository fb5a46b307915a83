package catalog

import (
	"errors"
	"log"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// ErrNoVariation means no purchasable configuration could be resolved,
// even after the first-option fallback.
var ErrNoVariation = errors.New("no matching variation")

// ResolveVariation matches the selected attribute values against a
// variable product's variations. Selections missing or not present in
// an attribute's options fall back to the attribute's first option;
// the fallback is logged because it usually signals a product-data
// problem rather than intended behavior.
func ResolveVariation(p *domain.Product, selected map[string]string) (*domain.Variation, error) {
	if p.Type != domain.ProductVariable || len(p.Variations) == 0 {
		return nil, ErrNoVariation
	}

	effective := make(map[string]string)
	for _, attr := range p.Attributes {
		if !attr.Variation || len(attr.Options) == 0 {
			continue
		}
		value, ok := selected[attr.Name]
		if !ok || !contains(attr.Options, value) {
			log.Printf("variation selection %q=%q not resolvable for product %s, falling back to first option %q",
				attr.Name, value, p.Slug, attr.Options[0])
			value = attr.Options[0]
		}
		effective[attr.Name] = value
	}

	for i := range p.Variations {
		if matchesSelection(p.Variations[i].Attributes, effective) {
			return &p.Variations[i], nil
		}
	}
	return nil, ErrNoVariation
}

// matchesSelection checks that every attribute the variation pins
// agrees with the selection. Variations may leave an attribute open
// ("any"), represented by an empty value.
func matchesSelection(variation, selection map[string]string) bool {
	for name, value := range variation {
		if value == "" {
			continue
		}
		if selection[name] != value {
			return false
		}
	}
	return true
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
