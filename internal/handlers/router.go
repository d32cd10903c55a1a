package handlers

import (
	"github.com/civictrack/admin/internal/middleware"
	"github.com/civictrack/admin/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// RouterConfig holds the collaborators of the HTTP router
type RouterConfig struct {
	AuthService    AuthService
	UserResolver   middleware.UserResolver
	AdminService   AdminService
	DB             Pinger
	Cookies        *session.CookieCodec
	AllowedOrigins []string
	// SwaggerURL is the doc.json location; the Swagger UI is not mounted when empty
	SwaggerURL string
	Logger     *zap.Logger
}

// NewRouter builds the admin API router with the shared middleware chain
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(cfg.Logger))
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.RecoveryMiddleware(cfg.Logger))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	NewHealthHandler(cfg.DB, cfg.Logger).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(cfg.UserResolver, cfg.Cookies, cfg.Logger))

		NewAuthHandler(cfg.AuthService, cfg.Cookies, cfg.Logger).RegisterRoutes(r)
		NewAdminHandler(cfg.AdminService, cfg.Logger).RegisterRoutes(r)
	})

	return r
}
