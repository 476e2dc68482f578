// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// InvocationsTotal tracks admin endpoint invocations by outcome.
	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_invocations_total",
			Help: "Total admin endpoint invocations",
		},
		[]string{"endpoint", "outcome"},
	)

	// InvocationDuration tracks admin endpoint invocation duration.
	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_invocation_duration_seconds",
			Help:    "Admin endpoint invocation duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// SensitiveArmsTotal tracks sensitive invocations intercepted by the gate.
	SensitiveArmsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admin_sensitive_arms_total",
			Help: "Sensitive invocations intercepted into the armed state",
		},
	)

	// ConversationsAggregated tracks the size of the last aggregation.
	ConversationsAggregated = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "conversations_aggregated",
			Help: "Conversations in the last aggregation by origin",
		},
		[]string{"origin"},
	)

	// CacheRequestsTotal tracks conversation cache hits and misses.
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_cache_requests_total",
			Help: "Conversation cache lookups",
		},
		[]string{"result"},
	)

	// AuditPublishFailures tracks failed audit stream publishes.
	AuditPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_publish_failures_total",
			Help: "Failed audit record publishes",
		},
	)

	// InsightRequestsTotal tracks insight generations by outcome.
	InsightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Conversation insight generations",
		},
		[]string{"provider", "outcome"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordInvocation records metrics for one admin endpoint invocation.
func RecordInvocation(endpoint, outcome string, duration float64) {
	InvocationsTotal.WithLabelValues(endpoint, outcome).Inc()
	InvocationDuration.WithLabelValues(endpoint).Observe(duration)
}
