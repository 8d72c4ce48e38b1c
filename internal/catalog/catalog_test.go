package catalog

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

func ids(ps []product.Product) []string { return product.IDs(ps) }

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefault_HasTwentyOrderedProducts(t *testing.T) {
	c := Default()
	if c.Len() != 20 {
		t.Fatalf("expected 20 products, got %d", c.Len())
	}
	for i, p := range c.All() {
		want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
			"11", "12", "13", "14", "15", "16", "17", "18", "19", "20"}[i]
		if p.ID() != want {
			t.Errorf("position %d: got id %s, want %s", i, p.ID(), want)
		}
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]product.Product{
		product.MustNew("1", "a", 1, "c", ""),
		product.MustNew("1", "b", 1, "c", ""),
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestByID(t *testing.T) {
	c := Default()
	p, err := c.ByID("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category() != "jackets_men" {
		t.Errorf("category: got %q", p.Category())
	}

	_, err = c.ByID("999")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	c := Default()
	tests := []struct {
		query string
		want  []string
	}{
		{"jacket_women", []string{"15", "16", "17"}},
		{"TOP_WOMEN", []string{"18", "19", "20"}},
		{"hard drive", []string{"9", "12"}},
		{"jewellery", []string{"5", "6", "7", "8"}},
		{"bracelet", []string{"5", "6"}},
		{"", nil},
		{"   ", nil},
		{"xyzzy", nil},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := ids(c.Search(tc.query))
			if !equalIDs(got, tc.want) {
				t.Errorf("Search(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestRelated(t *testing.T) {
	c := Default()

	got, err := c.Related("15", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(got), []string{"16", "17"}) {
		t.Errorf("Related(15) = %v", ids(got))
	}

	got, err = c.Related("18", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(got), []string{"19"}) {
		t.Errorf("Related(18, 1) = %v", ids(got))
	}

	got, err = c.Related("1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("travel bag has no siblings, got %v", ids(got))
	}

	if _, err := c.Related("nope", 3); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
