package matching

import "github.com/kailas-cloud/shopassist/internal/domain/product"

// Result is one offline pipeline run over English (or untranslated) text.
type Result struct {
	FinalQuery string
	Match      Match
	// Products is the capped list, fallback applied.
	Products []product.Product
	// Found reports whether the requested item exists in the catalog,
	// i.e. whether Products came from a match rather than the fallback.
	Found bool
}

// Run normalizes query, resolves its category and filters catalog. The
// existence check and the product list come from the same Select call.
func Run(catalog []product.Product, query string) Result {
	final := Normalize(query)
	m := Resolve(final)
	selected := Select(catalog, m, final)
	return Result{
		FinalQuery: final,
		Match:      m,
		Products:   Finish(catalog, selected),
		Found:      len(selected) > 0,
	}
}
