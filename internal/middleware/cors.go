package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware creates a CORS middleware for the admin dashboard.
// Credentials are allowed for the session cookie.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           3600,
	})
}
