package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/civictrack/admin/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Error messages shared by handlers
const (
	msgServerError        = "Server error"
	msgInvalidCredentials = "Invalid credentials"
	msgIssueNotFound      = "Issue not found"
	msgInvalidBody        = "invalid request body"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondSuccess sends {"success": true}
func (h *BaseHandler) RespondSuccess(w http.ResponseWriter) {
	h.RespondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// idParam parses the numeric {id} URL parameter.
// ok is false when the parameter cannot name any stored row.
func idParam(r *http.Request) (id int, ok bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
