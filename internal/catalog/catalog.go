// Package catalog holds the process-wide, read-only product inventory.
package catalog

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

// DefaultRelated is the number of alternatives returned by Related.
const DefaultRelated = 3

// Catalog is an immutable, insertion-ordered product list. Safe for concurrent use.
type Catalog struct {
	products []product.Product
	byID     map[string]int
}

// New builds a catalog from products. Duplicate ids are rejected.
func New(products []product.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]product.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if _, dup := c.byID[p.ID()]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID())
		}
		c.byID[p.ID()] = i
	}
	return c, nil
}

// Default returns the built-in marketplace catalog.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the products in catalog order. Callers must not modify the slice.
func (c *Catalog) All() []product.Product { return c.products }

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// ByID returns a product by id.
func (c *Catalog) ByID(id string) (product.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return product.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrProductNotFound)
	}
	return c.products[i], nil
}

// Search returns products whose category equals the query, or failing that,
// products whose name or category contains it. Blank queries match nothing.
func (c *Catalog) Search(query string) []product.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var exact []product.Product
	for _, p := range c.products {
		if strings.ToLower(p.Category()) == q {
			exact = append(exact, p)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var out []product.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name()), q) || strings.Contains(strings.ToLower(p.Category()), q) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit other products sharing id's category.
func (c *Catalog) Related(id string, limit int) ([]product.Product, error) {
	p, err := c.ByID(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRelated
	}
	var out []product.Product
	for _, other := range c.products {
		if len(out) == limit {
			break
		}
		if other.ID() != id && other.Category() == p.Category() {
			out = append(out, other)
		}
	}
	return out, nil
}
