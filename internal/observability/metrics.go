// Package observability provides Prometheus metrics and HTTP middleware
// for the foundation site backend.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts HTTP requests by method, route pattern and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foundation_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foundation_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ChatRepliesTotal counts bot replies by the rule that produced them.
	ChatRepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foundation_chat_replies_total",
			Help: "Chat replies by rule",
		},
		[]string{"rule"},
	)

	// ChatConnections tracks open chat widget websockets.
	ChatConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "foundation_chat_connections_active",
			Help: "Active chat websocket connections",
		},
	)

	// AnalyticsEventsTotal counts analytics events emitted by the worker.
	AnalyticsEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foundation_analytics_events_total",
			Help: "Analytics events",
		},
		[]string{"category", "action"},
	)

	// AnalyticsDroppedTotal counts events dropped because the queue was full.
	AnalyticsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "foundation_analytics_dropped_total",
			Help: "Analytics events dropped",
		},
	)

	// RateLimitRejectedTotal counts requests rejected by the ingestion limiter.
	RateLimitRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "foundation_ratelimit_rejected_total",
			Help: "Rate limit rejections",
		},
	)

	// FormValidationsTotal counts form validations by outcome.
	FormValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foundation_form_validations_total",
			Help: "Form validations",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ChatRepliesTotal,
		ChatConnections,
		AnalyticsEventsTotal,
		AnalyticsDroppedTotal,
		RateLimitRejectedTotal,
		FormValidationsTotal,
	)
}
