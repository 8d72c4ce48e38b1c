package chi

import (
	"github.com/kailas-cloud/shopassist/internal/domain/action"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest             ErrorCode = "bad_request"
	CodeValidationFailed       ErrorCode = "validation_failed"
	CodeUnauthorized           ErrorCode = "unauthorized"
	CodeInvalidQuery           ErrorCode = "invalid_query"
	CodeInvalidAction          ErrorCode = "invalid_action"
	CodeUnsupportedLanguage    ErrorCode = "unsupported_language"
	CodeProductNotFound        ErrorCode = "product_not_found"
	CodeTranslationFailed      ErrorCode = "translation_failed"
	CodeAssistantProviderError ErrorCode = "assistant_provider_error"
	CodeAssistantUnavailable   ErrorCode = "assistant_unavailable"
	CodeInternalError          ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendationRequest is the body of POST /api/recommendations.
type RecommendationRequest struct {
	Query    string         `json:"query" validate:"max=1000"`
	Language string         `json:"language" validate:"omitempty,max=35"`
	UserID   string         `json:"userId,omitempty" validate:"max=128"`
	Context  *query.Context `json:"context,omitempty"`
}

// RecommendationResponse is the orchestrator result.
type RecommendationResponse struct {
	Response               string    `json:"response"`
	TranslatedResponse     string    `json:"translatedResponse,omitempty"`
	ProductRecommendations []Product `json:"productRecommendations"`
}

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	Text string `json:"text" validate:"max=5000"`
	From string `json:"from" validate:"omitempty,max=35"`
	To   string `json:"to" validate:"omitempty,max=35"`
}

// TranslateResponse carries a translation.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message  string `json:"message" validate:"required,max=1000"`
	Language string `json:"language" validate:"omitempty,max=35"`
	UserID   string `json:"userId,omitempty" validate:"max=128"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response             string          `json:"response"`
	TranslatedResponse   string          `json:"translatedResponse"`
	NeedsRecommendations bool            `json:"needsRecommendations"`
	Actions              []action.Action `json:"actions"`
}

// ActionRequest is the body of POST /api/action.
type ActionRequest struct {
	Action  ActionBody            `json:"action" validate:"required"`
	Context RecommendationRequest `json:"context"`
}

// ActionBody is a suggested action echoed back by the client.
type ActionBody struct {
	Type    string         `json:"type" validate:"required,max=64"`
	Payload map[string]any `json:"payload"`
}

// ActionResponse is the outcome of an action.
type ActionResponse struct {
	Response               string    `json:"response"`
	TranslatedResponse     string    `json:"translatedResponse"`
	ProductRecommendations []Product `json:"productRecommendations,omitempty"`
	SearchResults          []Product `json:"searchResults,omitempty"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query    string `json:"query" validate:"required,max=1000"`
	Language string `json:"language" validate:"omitempty,max=35"`
}

// ProductsResponse wraps a product list.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// LanguagesResponse lists UI languages.
type LanguagesResponse struct {
	Languages []language.Language `json:"languages"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

// Product is the wire form of a catalog product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	URL         string  `json:"url"`
}

func productToDTO(p product.Product) Product {
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

func productsToDTO(ps []product.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = productToDTO(p)
	}
	return out
}
