package product

import (
	"errors"
	"strings"
)

// Product is an immutable catalog entry.
type Product struct {
	id          string
	name        string
	price       float64
	category    string
	subCategory string
	gender      string
	url         string
}

// New creates a validated product.
func New(id, name string, price float64, category, url string, opts ...Option) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, errors.New("product id is required")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, errors.New("product name is required")
	}
	if price < 0 {
		return Product{}, errors.New("product price must be non-negative")
	}
	if strings.TrimSpace(category) == "" {
		return Product{}, errors.New("product category is required")
	}
	p := Product{id: id, name: name, price: price, category: category, url: url}
	for _, o := range opts {
		o(&p)
	}
	return p, nil
}

// MustNew calls New and panics on error. Used for the static catalog.
func MustNew(id, name string, price float64, category, url string, opts ...Option) Product {
	p, err := New(id, name, price, category, url, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Option sets optional product fields.
type Option func(*Product)

// WithSubCategory sets the product sub-category.
func WithSubCategory(sub string) Option {
	return func(p *Product) { p.subCategory = sub }
}

// WithGender sets the product gender tag.
func WithGender(gender string) Option {
	return func(p *Product) { p.gender = gender }
}

// ID returns the stable product identifier.
func (p Product) ID() string { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Price returns the price.
func (p Product) Price() float64 { return p.price }

// Category returns the catalog category, e.g. "top_women".
func (p Product) Category() string { return p.category }

// SubCategory returns the optional sub-category.
func (p Product) SubCategory() string { return p.subCategory }

// Gender returns the optional gender tag.
func (p Product) Gender() string { return p.gender }

// URL returns the canonical product page link.
func (p Product) URL() string { return p.url }

// WithName returns a copy of p carrying a different display name (localized views).
func (p Product) WithName(name string) Product {
	p.name = name
	return p
}

// IDs returns the identifiers of ps in order.
func IDs(ps []Product) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.id
	}
	return ids
}
