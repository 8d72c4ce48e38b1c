package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "shopassist"

// Recommendation outcomes.
const (
	OutcomeMatched   = "matched"
	OutcomeNameMatch = "name_match"
	OutcomeFallback  = "fallback"
)

// RecommendationsTotal counts served recommendations by outcome.
var RecommendationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total recommendations served, by match outcome",
	},
	[]string{"outcome"},
)

var recMetricsRegistered bool

// RegisterRecommendationMetrics registers recommendation metrics. Must be called once from main.
func RegisterRecommendationMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendationsTotal)
	recMetricsRegistered = true
}
