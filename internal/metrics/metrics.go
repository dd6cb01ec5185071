// Package metrics exposes Prometheus collectors for the Roomatch API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecommendationRequests counts recommendation computations.
	RecommendationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roomatch",
		Name:      "recommendation_requests_total",
		Help:      "Total number of recommendation requests served.",
	})

	// EmptyRecommendations counts requests that produced no listings.
	EmptyRecommendations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roomatch",
		Name:      "recommendation_empty_total",
		Help:      "Total number of recommendation requests with an empty result.",
	})

	// ScoringDuration observes the wall time of the compatibility scoring
	// pass over all candidate owners.
	ScoringDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "roomatch",
		Name:      "recommendation_scoring_duration_seconds",
		Help:      "Duration of the compatibility scoring pass.",
		Buckets:   prometheus.DefBuckets,
	})

	// HTTPRequests counts HTTP requests by method, path pattern, and status.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roomatch",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(
		RecommendationRequests,
		EmptyRecommendations,
		ScoringDuration,
		HTTPRequests,
	)
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
