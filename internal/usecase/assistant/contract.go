package assistant

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
	"github.com/kailas-cloud/shopassist/internal/matching"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
)

// ChatModel produces a raw JSON reply for a prompt.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recommender runs the recommendation pipeline and owns message translation.
type Recommender interface {
	Recommend(ctx context.Context, q query.Query) (recommend.Recommendation, error)
	Lookup(ctx context.Context, text, lang string) matching.Result
	Localize(ctx context.Context, msg, lang string) string
	ToEnglish(ctx context.Context, text, lang string) string
}

// Searcher finds catalog products by category or name substring.
type Searcher interface {
	Search(text string) []product.Product
}
