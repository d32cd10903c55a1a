package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/civictrack/admin/docs"
	"github.com/civictrack/admin/internal/config"
	"github.com/civictrack/admin/internal/handlers"
	"github.com/civictrack/admin/internal/logger"
	"github.com/civictrack/admin/internal/repositories"
	"github.com/civictrack/admin/internal/services"
	"github.com/civictrack/admin/internal/session"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// @title CivicTrack Admin API
// @version 1.0
// @description Administrative API for moderating citizen issues and municipality officials

// @host localhost:4000
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CivicTrack Admin API")

	// Connect to database
	db, err := connectDB(cfg.DSN(), cfg.Database.MaxOpenConns)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize session store
	store, err := newSessionStore(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer store.Close()
	cookies := session.NewCookieCodec(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.CookieSecure)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	issueRepo := repositories.NewIssueRepository(db, logger.Logger)
	applicationRepo := repositories.NewApplicationRepository(db, logger.Logger)
	officialRepo := repositories.NewOfficialRepository(db, logger.Logger)

	detectCtx, cancelDetect := context.WithTimeout(context.Background(), 5*time.Second)
	if available, err := issueRepo.DetectHistory(detectCtx); err != nil {
		logger.Logger.Warn("Failed to detect request history table", zap.Error(err))
	} else if !available {
		logger.Logger.Info("Request history table not found, issue timelines will be empty")
	}
	cancelDetect()

	// Initialize services
	authService := services.NewAuthService(userRepo, store, logger.Logger)
	adminService := services.NewAdminService(issueRepo, applicationRepo, officialRepo, logger.Logger, cfg.UploadsBaseURL)

	// Setup router
	r := handlers.NewRouter(handlers.RouterConfig{
		AuthService:    authService,
		UserResolver:   authService,
		AdminService:   adminService,
		DB:             db,
		Cookies:        cookies,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		SwaggerURL:     fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port),
		Logger:         logger.Logger,
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// newSessionStore creates the configured session backend
func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}

		logger.Logger.Info("Using Redis session store", zap.String("addr", cfg.RedisAddr()))
		return session.NewRedisStore(client, cfg.Session.TTL), nil
	default:
		store := session.NewMemoryStore(cfg.Session.TTL, logger.Logger)
		if err := store.StartSweeper(session.DefaultSweepSchedule); err != nil {
			return nil, fmt.Errorf("failed to start session sweeper: %w", err)
		}

		logger.Logger.Info("Using in-memory session store")
		return store, nil
	}
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "admin_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
