// Package event defines analytics events emitted by the service.
package event

import "time"

// TypeRecommendationServed is the event type for a served recommendation.
const TypeRecommendationServed = "recommendation.served"

// RecommendationServed records one recommendation outcome.
type RecommendationServed struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	UserID     string    `json:"userId,omitempty"`
	Language   string    `json:"language"`
	Query      string    `json:"query"`
	FinalQuery string    `json:"finalQuery"`
	Category   string    `json:"category,omitempty"`
	ProductIDs []string  `json:"productIds"`
	Found      bool      `json:"found"`
}
