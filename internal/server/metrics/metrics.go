// Package metrics содержит Prometheus-метрики сервера.
//
// Метрики регистрируются в глобальном реестре через promauto
// и отдаются на observability.metrics.path (по умолчанию /metrics).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlists_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlists_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlists_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Storage metrics
var (
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlists_storage_operations_total",
			Help: "Total number of JSON document reads and writes",
		},
		[]string{"document", "op", "status"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlists_storage_operation_duration_seconds",
			Help:    "JSON document read/write duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"document", "op"},
	)
)

// Account metrics
var (
	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlists_signups_total",
			Help: "Total number of successful signups",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlists_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	UserIDCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlists_user_id_collisions_total",
			Help: "Total number of regenerated user ids after a collision",
		},
	)
)
