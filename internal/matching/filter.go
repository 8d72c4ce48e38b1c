package matching

import (
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

const (
	// MaxResults caps every filter result.
	MaxResults = 6
	// FallbackSize is the number of leading catalog products returned when
	// nothing matches.
	FallbackSize = 5
)

// Select returns the products matching m, or matching query by name when m
// resolved nothing. It applies no fallback and no cap, so an empty result
// means the requested item is not in the catalog.
func Select(catalog []product.Product, m Match, query string) []product.Product {
	if !m.Found() {
		return byName(catalog, query)
	}

	var selected []product.Product
	for _, p := range catalog {
		if categoryMatches(p, m) {
			selected = append(selected, p)
		}
	}
	if m.SubCategory == "" {
		return selected
	}

	// Demote, never drop, products outside the sub-category.
	exact := make([]product.Product, 0, len(selected))
	var rest []product.Product
	for _, p := range selected {
		if strings.ToLower(p.SubCategory()) == m.SubCategory {
			exact = append(exact, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(exact, rest...)
}

// Filter is Select with the fallback slice and the result cap applied. It
// never returns an empty slice for a non-empty catalog.
func Filter(catalog []product.Product, m Match, query string) []product.Product {
	return Finish(catalog, Select(catalog, m, query))
}

// Finish applies the fallback and cap to a Select result.
func Finish(catalog, selected []product.Product) []product.Product {
	if len(selected) == 0 {
		selected = catalog[:min(FallbackSize, len(catalog))]
	}
	out := make([]product.Product, min(MaxResults, len(selected)))
	copy(out, selected)
	return out
}

func categoryMatches(p product.Product, m Match) bool {
	if m.Gendered() {
		return p.Category() == m.Category
	}
	return strings.Contains(strings.ToLower(p.Category()), m.Category)
}

func byName(catalog []product.Product, query string) []product.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []product.Product
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name()), q) {
			out = append(out, p)
		}
	}
	return out
}
