package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/civictrack/admin/internal/middleware"
	"github.com/civictrack/admin/internal/models"
	"github.com/civictrack/admin/internal/repositories"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for admin moderation business logic.
type AdminService interface {
	// Method ListIssues retrieves every citizen issue, newest first, with servable image URLs.
	ListIssues(ctx context.Context) ([]models.Issue, error)
	// Method GetIssueDetail retrieves an issue with its status timeline.
	//
	// If the issue does not exist, repositories.ErrIssueNotFound will be returned together with "nil" value.
	GetIssueDetail(ctx context.Context, id int) (*models.IssueDetail, error)
	// Method ListPendingApplications retrieves official applications awaiting review.
	ListPendingApplications(ctx context.Context) ([]models.OfficialApplication, error)
	// Method ReviewApplication sets an application to approved or rejected on behalf of "reviewerID".
	//
	// Returns the number of affected rows; zero means no such application.
	ReviewApplication(ctx context.Context, id int, status models.ApplicationStatus, reviewerID int) (int64, error)
	// Method ListOfficials retrieves municipality officials with completed issue counts.
	ListOfficials(ctx context.Context) ([]models.Official, error)
	// Method SetOfficialStatus blocks or unblocks an official.
	//
	// Returns the number of affected rows; zero means no such official.
	SetOfficialStatus(ctx context.Context, id int, status models.AccountStatus) (int64, error)
	// Method DeleteOfficial removes an official.
	//
	// Returns the number of affected rows; zero means no such official.
	DeleteOfficial(ctx context.Context, id int) (int64, error)
}

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin routes behind the admin gate
// Note: This assumes the router is already scoped to /api/admin and carries the session middleware
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/requests", h.ListIssues)
		r.Get("/issues/{id}", h.GetIssue)

		r.Route("/official-applications", func(r chi.Router) {
			r.Get("/", h.ListApplications)
			r.Post("/{id}/approve", h.ApproveApplication)
			r.Post("/{id}/reject", h.RejectApplication)
		})

		r.Route("/officials", func(r chi.Router) {
			r.Get("/", h.ListOfficials)
			r.Post("/{id}/block", h.BlockOfficial)
			r.Post("/{id}/unblock", h.UnblockOfficial)
			r.Delete("/{id}", h.DeleteOfficial)
		})
	})
}

// ListIssues handles GET /api/admin/requests
// @Summary List issues
// @Description List every citizen issue with citizen and municipality names, newest first
// @Tags issues
// @Produce json
// @Success 200 {array} models.Issue
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/requests [get]
func (h *AdminHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.adminService.ListIssues(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list issues", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, issues)
}

// GetIssue handles GET /api/admin/issues/{id}
// @Summary Get issue
// @Description Get an issue with its status timeline
// @Tags issues
// @Produce json
// @Param id path int true "Issue ID"
// @Success 200 {object} models.IssueDetail
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 404 {object} map[string]string "Issue not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/issues/{id} [get]
func (h *AdminHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.RespondError(w, http.StatusNotFound, msgIssueNotFound)
		return
	}

	detail, err := h.adminService.GetIssueDetail(r.Context(), id)
	if errors.Is(err, repositories.ErrIssueNotFound) {
		h.RespondError(w, http.StatusNotFound, msgIssueNotFound)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to get issue", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// ListApplications handles GET /api/admin/official-applications
// @Summary List pending official applications
// @Description List applications awaiting review with municipality and reviewer names, newest first
// @Tags official-applications
// @Produce json
// @Success 200 {array} models.OfficialApplication
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/official-applications [get]
func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.adminService.ListPendingApplications(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list official applications", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, applications)
}

// ApproveApplication handles POST /api/admin/official-applications/{id}/approve
// @Summary Approve official application
// @Tags official-applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/official-applications/{id}/approve [post]
func (h *AdminHandler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	h.reviewApplication(w, r, models.ApplicationStatusApproved)
}

// RejectApplication handles POST /api/admin/official-applications/{id}/reject
// @Summary Reject official application
// @Tags official-applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/official-applications/{id}/reject [post]
func (h *AdminHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	h.reviewApplication(w, r, models.ApplicationStatusRejected)
}

func (h *AdminHandler) reviewApplication(w http.ResponseWriter, r *http.Request, status models.ApplicationStatus) {
	id, ok := idParam(r)
	if !ok {
		h.RespondSuccess(w)
		return
	}

	reviewer := middleware.GetUser(r.Context())
	if _, err := h.adminService.ReviewApplication(r.Context(), id, status, reviewer.ID); err != nil {
		h.serverError(w, r, "failed to review official application", err)
		return
	}

	h.RespondSuccess(w)
}

// ListOfficials handles GET /api/admin/officials
// @Summary List officials
// @Description List municipality officials with municipality name and completed issue count, ordered by username
// @Tags officials
// @Produce json
// @Success 200 {array} models.Official
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/officials [get]
func (h *AdminHandler) ListOfficials(w http.ResponseWriter, r *http.Request) {
	officials, err := h.adminService.ListOfficials(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list officials", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, officials)
}

// BlockOfficial handles POST /api/admin/officials/{id}/block
// @Summary Block official
// @Tags officials
// @Produce json
// @Param id path int true "Official ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/officials/{id}/block [post]
func (h *AdminHandler) BlockOfficial(w http.ResponseWriter, r *http.Request) {
	h.setOfficialStatus(w, r, models.AccountStatusBlocked)
}

// UnblockOfficial handles POST /api/admin/officials/{id}/unblock
// @Summary Unblock official
// @Tags officials
// @Produce json
// @Param id path int true "Official ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/officials/{id}/unblock [post]
func (h *AdminHandler) UnblockOfficial(w http.ResponseWriter, r *http.Request) {
	h.setOfficialStatus(w, r, models.AccountStatusActive)
}

func (h *AdminHandler) setOfficialStatus(w http.ResponseWriter, r *http.Request, status models.AccountStatus) {
	id, ok := idParam(r)
	if !ok {
		h.RespondSuccess(w)
		return
	}

	if _, err := h.adminService.SetOfficialStatus(r.Context(), id, status); err != nil {
		h.serverError(w, r, "failed to set official status", err)
		return
	}

	h.RespondSuccess(w)
}

// DeleteOfficial handles DELETE /api/admin/officials/{id}
// @Summary Delete official
// @Tags officials
// @Produce json
// @Param id path int true "Official ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/officials/{id} [delete]
func (h *AdminHandler) DeleteOfficial(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.RespondSuccess(w)
		return
	}

	if _, err := h.adminService.DeleteOfficial(r.Context(), id); err != nil {
		h.serverError(w, r, "failed to delete official", err)
		return
	}

	h.RespondSuccess(w)
}

// serverError logs err and answers with the generic 500 body
func (h *AdminHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Logger.Error(msg,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err),
	)
	h.RespondError(w, http.StatusInternalServerError, msgServerError)
}
