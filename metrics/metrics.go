// Package metrics holds the Prometheus collectors of the IRIS service.
//
// Collectors are registered on the default registry at init and served on
// GET /metrics by the main router.
//
//	metrics.StoreMutationsTotal.WithLabelValues("CREATE", "water").Inc()
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics, labelled by route pattern rather than raw URL.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iris_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Store metrics.
var (
	// StoreMutationsTotal counts committed mutations, one per audit entry.
	StoreMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_store_mutations_total",
			Help: "Resource store mutations by audit action and resource type.",
		},
		[]string{"action", "type"},
	)

	// PersistenceFailuresTotal counts slot writes that failed after the in-memory update.
	PersistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_persistence_failures_total",
			Help: "Failed durable slot writes by slot key.",
		},
		[]string{"slot"},
	)

	// ResourcesCurrent is the number of live records per resource type.
	ResourcesCurrent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "iris_resources_current",
			Help: "Current number of resource records by type.",
		},
		[]string{"type"},
	)

	// LoginAttemptsTotal counts login attempts by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_login_attempts_total",
			Help: "Login attempts by result (success|failure).",
		},
		[]string{"result"},
	)
)
