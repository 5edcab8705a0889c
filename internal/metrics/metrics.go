// Package metrics holds the prometheus collectors of the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffee_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coffee_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coffee_sessions_active",
			Help: "Wizard sessions currently held in memory",
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coffee_sessions_expired_total",
			Help: "Sessions evicted after their TTL",
		},
	)

	SessionActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffee_session_actions_total",
			Help: "Wizard actions applied, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffee_recommendations_total",
			Help: "Recommendation runs, labelled by whether the score filter fell back",
		},
		[]string{"fallback"},
	)

	Summaries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coffee_summaries_total",
			Help: "Pricing summaries computed",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(route, method, status).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordAction counts one wizard action; outcome is "ok" or "rejected".
func RecordAction(action string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "rejected"
	}
	SessionActions.WithLabelValues(action, outcome).Inc()
}

func RecordRecommendation(fallback bool) {
	label := "false"
	if fallback {
		label = "true"
	}
	Recommendations.WithLabelValues(label).Inc()
}
