package middleware

import (
	"net/http"

	"github.com/civictrack/admin/internal/metrics"
)

// RequireAdmin lets the request through only for a session user with the admin role.
// Anyone else gets 403 before any handler runs.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			metrics.RecordAuthzDenied(metrics.DenyAnonymous)
			writeJSONError(w, http.StatusForbidden, "Admin only")
			return
		}
		if !user.IsAdmin() {
			metrics.RecordAuthzDenied(metrics.DenyNotAdmin)
			writeJSONError(w, http.StatusForbidden, "Admin only")
			return
		}

		next.ServeHTTP(w, r)
	})
}
