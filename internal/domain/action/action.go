package action

import (
	"fmt"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

// Type is a suggested assistant action.
type Type string

const (
	// AddToCart adds a product to the shopper's cart.
	AddToCart Type = "ADD_TO_CART"
	// ViewProduct opens a product page.
	ViewProduct Type = "VIEW_PRODUCT"
	// SearchProducts runs a catalog search.
	SearchProducts Type = "SEARCH_PRODUCTS"
	// GetRecommendations runs the recommendation pipeline.
	GetRecommendations Type = "GET_RECOMMENDATIONS"
)

// IsValid reports whether t is a known action type.
func (t Type) IsValid() bool {
	switch t {
	case AddToCart, ViewProduct, SearchProducts, GetRecommendations:
		return true
	}
	return false
}

// Action is a typed action with a free-form payload.
type Action struct {
	Type    Type           `json:"type"`
	Payload map[string]any `json:"payload"`
}

// New creates a validated action.
func New(t Type, payload map[string]any) (Action, error) {
	if !t.IsValid() {
		return Action{}, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidAction, t)
	}
	if payload == nil {
		return Action{}, fmt.Errorf("%w: payload is required", domain.ErrInvalidAction)
	}
	return Action{Type: t, Payload: payload}, nil
}

// Recommend builds the default GET_RECOMMENDATIONS action for a query.
func Recommend(query string) Action {
	return Action{Type: GetRecommendations, Payload: map[string]any{"query": query}}
}

// String returns payload[key] when it is a string.
func (a Action) String(key string) string {
	if a.Payload == nil {
		return ""
	}
	s, _ := a.Payload[key].(string)
	return s
}
