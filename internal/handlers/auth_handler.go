package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/civictrack/admin/internal/metrics"
	"github.com/civictrack/admin/internal/middleware"
	"github.com/civictrack/admin/internal/models"
	"github.com/civictrack/admin/internal/services"
	"github.com/civictrack/admin/internal/session"
	"github.com/civictrack/admin/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for admin authentication business logic.
type AuthService interface {
	// Method Login verifies admin credentials and opens a new session.
	//
	// Returns the admin identity and the opaque session token.
	// If no admin matches the credentials, services.ErrInvalidCredentials will be returned together with "nil" identity and empty token.
	Login(ctx context.Context, username, password string) (*models.AdminIdentity, string, error)
	// Method Logout destroys the session bound to "token".
	//
	// Destroying an unknown or empty token is not an error.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles admin session HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
	cookies     *session.CookieCodec
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, cookies *session.CookieCodec, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
		cookies:     cookies,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/admin
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Authenticate an admin by username and password. Sets the admin_sid session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		h.Logger.Debug("login request rejected", zap.String("reason", err.Error()))
		metrics.RecordLogin(metrics.LoginInvalid)
		h.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	admin, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		metrics.RecordLogin(metrics.LoginInvalid)
		h.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		h.Logger.Error("failed to login admin",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		metrics.RecordLogin(metrics.LoginError)
		h.RespondError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	// Rotate: the previous session of this client must not outlive the login
	if old := middleware.GetSessionToken(r.Context()); old != "" {
		if err := h.authService.Logout(r.Context(), old); err != nil {
			h.Logger.Warn("failed to destroy previous session", zap.Error(err))
		}
	}

	if err := h.cookies.Write(w, token); err != nil {
		h.Logger.Error("failed to write session cookie", zap.Error(err))
		metrics.RecordLogin(metrics.LoginError)
		h.RespondError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	metrics.RecordLogin(metrics.LoginSuccess)
	h.RespondJSON(w, http.StatusOK, models.LoginResponse{Admin: admin})
}

// Logout handles POST /api/admin/logout
// @Summary Admin logout
// @Description Destroy the current session, if any. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.GetSessionToken(r.Context())); err != nil {
		h.Logger.Warn("failed to destroy session on logout",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
	}

	h.cookies.Clear(w)
	h.RespondSuccess(w)
}

// Me handles GET /api/admin/me
// @Summary Current admin
// @Description Return the admin bound to the session, or null when the caller is not an admin.
// @Tags auth
// @Produce json
// @Success 200 {object} models.LoginResponse
// @Router /api/admin/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if !user.IsAdmin() {
		h.RespondJSON(w, http.StatusOK, models.LoginResponse{Admin: nil})
		return
	}

	h.RespondJSON(w, http.StatusOK, models.LoginResponse{Admin: &models.AdminIdentity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}})
}
