// Package metrics exposes Prometheus collectors for the HTTP surface,
// identity verification and store access.
//
// Usage:
//
//	metrics.RecordIdentityVerification("verified")
//	metrics.RecordStoreOperation("events.insert", err)
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventboard_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// IdentityVerificationsTotal counts identity resolutions by outcome.
	IdentityVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventboard_identity_verifications_total",
			Help: "Total number of identity resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// StoreOperationsTotal counts persistence calls by operation and result.
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventboard_store_operations_total",
			Help: "Total number of store operations by result",
		},
		[]string{"op", "result"},
	)
)

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordIdentityVerification records an identity resolution outcome
// (dev, verified, invalid_format, rejected, parse_error, subject_missing).
func RecordIdentityVerification(outcome string) {
	IdentityVerificationsTotal.WithLabelValues(outcome).Inc()
}

// RecordStoreOperation records a store call; a nil err counts as success.
func RecordStoreOperation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(op, result).Inc()
}
