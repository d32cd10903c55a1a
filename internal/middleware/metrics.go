package middleware

import (
	"net/http"
	"time"

	"github.com/civictrack/admin/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// MetricsMiddleware records request count and latency per chi route pattern.
// Unmatched requests are labelled "unmatched".
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := wrapResponseWriter(w)
		next.ServeHTTP(ww, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.RecordRequest(r.Method, route, ww.statusCode, time.Since(start))
	})
}
