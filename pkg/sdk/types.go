package shopassist

import (
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/matching"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
)

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	URL         string  `json:"url"`
}

// MatchResult is the outcome of the offline matching pipeline.
type MatchResult struct {
	Query       string    `json:"query"`
	FinalQuery  string    `json:"finalQuery"`
	Category    string    `json:"category,omitempty"`
	SubCategory string    `json:"subCategory,omitempty"`
	MatchedKey  string    `json:"matchedKey,omitempty"`
	Found       bool      `json:"found"`
	Products    []Product `json:"products"`
}

// Recommendation is the outcome of a full pipeline run, translation included.
type Recommendation struct {
	Response           string    `json:"response"`
	TranslatedResponse string    `json:"translatedResponse"`
	FinalQuery         string    `json:"finalQuery"`
	Category           string    `json:"category,omitempty"`
	Found              bool      `json:"found"`
	Products           []Product `json:"products"`
}

func toProduct(p product.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Category:    p.Category(),
		SubCategory: p.SubCategory(),
		Gender:      p.Gender(),
		URL:         p.URL(),
	}
}

func toProducts(ps []product.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out
}

func toMatchResult(text string, r matching.Result) MatchResult {
	return MatchResult{
		Query:       text,
		FinalQuery:  r.FinalQuery,
		Category:    r.Match.Category,
		SubCategory: r.Match.SubCategory,
		MatchedKey:  r.Match.Key,
		Found:       r.Found,
		Products:    toProducts(r.Products),
	}
}

func toRecommendation(r recommend.Recommendation) Recommendation {
	return Recommendation{
		Response:           r.Response,
		TranslatedResponse: r.TranslatedResponse,
		FinalQuery:         r.FinalQuery,
		Category:           r.Match.Category,
		Found:              r.Found,
		Products:           toProducts(r.Products),
	}
}
