package recommend

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain/event"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

// Catalog provides the fixed product list.
type Catalog interface {
	All() []product.Product
}

// Translator converts text between languages.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// EventPublisher emits analytics events. Failures never affect the response.
type EventPublisher interface {
	PublishRecommendation(ctx context.Context, ev event.RecommendationServed) error
}
