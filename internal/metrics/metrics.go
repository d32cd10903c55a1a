// Package metrics defines the Prometheus metrics of the admin API.
//
// Usage:
//
//	metrics.RecordRequest(http.MethodGet, "/api/admin/requests", 200, 15*time.Millisecond)
//	metrics.RecordAuthzDenied(metrics.DenyAnonymous)
//	metrics.RecordLogin(metrics.LoginSuccess)
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Authorization denial reasons
const (
	DenyAnonymous = "anonymous"
	DenyNotAdmin  = "not_admin"
)

// Login outcomes
const (
	LoginSuccess = "success"
	LoginInvalid = "invalid_credentials"
	LoginError   = "error"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "Total number of HTTP requests handled by the admin API",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the admin API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthzDeniedTotal counts requests rejected by the admin gate.
	AuthzDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_authz_denied_total",
			Help: "Total number of protected requests rejected by the admin gate",
		},
		[]string{"reason"},
	)

	// LoginAttemptsTotal counts admin login attempts by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records a handled HTTP request
func RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthzDenied records a request rejected by the admin gate
func RecordAuthzDenied(reason string) {
	AuthzDeniedTotal.WithLabelValues(reason).Inc()
}

// RecordLogin records a login attempt
func RecordLogin(outcome string) {
	LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}
