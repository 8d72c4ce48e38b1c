package matching

import (
	"testing"

	"github.com/kailas-cloud/shopassist/internal/catalog"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

func equalIDs(got []product.Product, want ...string) bool {
	ids := product.IDs(got)
	if len(ids) != len(want) {
		return false
	}
	for i := range ids {
		if ids[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilter_Scenarios(t *testing.T) {
	all := catalog.Default().All()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"translated bengali", "women's T-shirt for girls", []string{"18", "19", "20"}},
		{"jackets for women", "jackets for women", []string{"15", "16", "17"}},
		{"necklace", "necklace", []string{"5", "6", "7", "8"}},
		{"no match", "xyzzy", []string{"1", "2", "3", "4", "5"}},
		{"men's jacket", "men's jacket", []string{"3"}},
		{"name match", "samsung", []string{"14"}},
		{"empty query", "", []string{"1", "2", "3", "4", "5"}},
		{"generic electronics capped", "ssd", []string{"9", "10", "11", "12", "13", "14"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := Normalize(tc.query)
			got := Filter(all, Resolve(q), q)
			if !equalIDs(got, tc.want...) {
				t.Errorf("Filter(%q) = %v, want %v", tc.query, product.IDs(got), tc.want)
			}
		})
	}
}

func TestFilter_SubCategoryFirst(t *testing.T) {
	items := []product.Product{
		product.MustNew("a", "Gold Ring", 1, "jewellery_ring", ""),
		product.MustNew("b", "Chain", 1, "jewellery_chain", "", product.WithSubCategory("chains")),
		product.MustNew("c", "Silver Ring", 1, "jewellery_ring", "", product.WithSubCategory("Rings")),
		product.MustNew("d", "Phone", 1, "electronics_phone", ""),
	}
	m := Match{Category: "jewellery", SubCategory: "rings", Key: "ring"}
	got := Filter(items, m, "ring")
	if !equalIDs(got, "c", "a", "b") {
		t.Errorf("got %v, want [c a b]", product.IDs(got))
	}
}

func TestFilter_ExactCategoryInvariant(t *testing.T) {
	all := catalog.Default().All()
	for _, s := range Synonyms() {
		m := Match{Category: s.Category, SubCategory: s.SubCategory, Key: s.Key}
		for _, p := range Select(all, m, s.Key) {
			gendered := Match{Category: p.Category()}.Gendered()
			if gendered && p.Category() != m.Category {
				t.Errorf("key %q (%s) selected %s product %s", s.Key, m.Category, p.Category(), p.ID())
			}
		}
	}
}

func TestFilter_FallbackIsFirstFive(t *testing.T) {
	all := catalog.Default().All()
	for _, q := range []string{"xyzzy", "qwerty", "   ", "t-shirt"} {
		got := Filter(all, Resolve(q), q)
		if !equalIDs(got, "1", "2", "3", "4", "5") {
			t.Errorf("Filter(%q) = %v, want first five", q, product.IDs(got))
		}
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, Resolve("necklace"), "necklace")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", product.IDs(got))
	}
}

func TestSelect_NoFallback(t *testing.T) {
	all := catalog.Default().All()
	if got := Select(all, Resolve("xyzzy"), "xyzzy"); len(got) != 0 {
		t.Errorf("Select should not fall back, got %v", product.IDs(got))
	}
}
