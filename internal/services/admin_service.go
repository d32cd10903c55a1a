package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/civictrack/admin/internal/models"
	"go.uber.org/zap"
)

// IssueRepository is the interface that wraps methods for requests table data access
type IssueRepository interface {
	// Method List retrieves all issues joined with citizen and municipality names, newest first.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	List(ctx context.Context) ([]models.Issue, error)
	// Method GetByID retrieves an issue joined with citizen and municipality names.
	//
	// If the issue does not exist, repositories.ErrIssueNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Issue, error)
	// Method GetHistory retrieves the status timeline of an issue, oldest first.
	//
	// If the history table is unavailable, an empty timeline will be returned without error.
	GetHistory(ctx context.Context, id int) ([]models.HistoryEntry, error)
}

// ApplicationRepository is the interface that wraps methods for official_applications table data access
type ApplicationRepository interface {
	// Method ListPending retrieves pending applications with municipality and reviewer names.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListPending(ctx context.Context) ([]models.OfficialApplication, error)
	// Method SetStatus overwrites status, reviewer and review time of an application.
	//
	// Returns the number of affected rows.
	SetStatus(ctx context.Context, id int, status models.ApplicationStatus, reviewerID int) (int64, error)
}

// OfficialRepository is the interface that wraps methods for municipality officials data access
type OfficialRepository interface {
	// Method ListWithIssueCounts retrieves officials with municipality name and completed issue count, ordered by username.
	ListWithIssueCounts(ctx context.Context) ([]models.Official, error)
	// Method SetAccountStatus sets the account status of an official.
	//
	// Returns the number of affected rows.
	SetAccountStatus(ctx context.Context, id int, status models.AccountStatus) (int64, error)
	// Method Delete removes an official.
	//
	// Returns the number of affected rows.
	Delete(ctx context.Context, id int) (int64, error)
}

// adminService implements AdminService
type adminService struct {
	issueRepo       IssueRepository
	applicationRepo ApplicationRepository
	officialRepo    OfficialRepository
	logger          *zap.Logger
	uploadsBaseURL  string
}

// NewAdminService creates a new admin service
func NewAdminService(
	issueRepo IssueRepository,
	applicationRepo ApplicationRepository,
	officialRepo OfficialRepository,
	logger *zap.Logger,
	uploadsBaseURL string,
) *adminService {
	return &adminService{
		issueRepo:       issueRepo,
		applicationRepo: applicationRepo,
		officialRepo:    officialRepo,
		logger:          logger,
		uploadsBaseURL:  strings.TrimRight(uploadsBaseURL, "/"),
	}
}

// ListIssues retrieves all issues with image paths rewritten to servable URLs
func (s *adminService) ListIssues(ctx context.Context) ([]models.Issue, error) {
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	shaped := make([]models.Issue, len(issues))
	for i := range issues {
		shaped[i] = s.shapeIssue(issues[i])
	}

	return shaped, nil
}

// GetIssueDetail retrieves an issue and its timeline
func (s *adminService) GetIssueDetail(ctx context.Context, id int) (*models.IssueDetail, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	timeline, err := s.issueRepo.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.IssueDetail{
		Issue:    s.shapeIssue(*issue),
		Timeline: timeline,
	}, nil
}

// ListPendingApplications retrieves applications awaiting review
func (s *adminService) ListPendingApplications(ctx context.Context) ([]models.OfficialApplication, error) {
	return s.applicationRepo.ListPending(ctx)
}

// ReviewApplication marks an application approved or rejected by the reviewer.
// A previous decision is overwritten.
func (s *adminService) ReviewApplication(ctx context.Context, id int, status models.ApplicationStatus, reviewerID int) (int64, error) {
	if status != models.ApplicationStatusApproved && status != models.ApplicationStatusRejected {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	affected, err := s.applicationRepo.SetStatus(ctx, id, status, reviewerID)
	if err != nil {
		return 0, err
	}

	s.logAffected("official application reviewed", affected,
		zap.Int("applicationID", id),
		zap.String("status", string(status)),
		zap.Int("reviewerID", reviewerID),
	)
	return affected, nil
}

// ListOfficials retrieves municipality officials with their completed issue counts
func (s *adminService) ListOfficials(ctx context.Context) ([]models.Official, error) {
	return s.officialRepo.ListWithIssueCounts(ctx)
}

// SetOfficialStatus blocks or unblocks an official
func (s *adminService) SetOfficialStatus(ctx context.Context, id int, status models.AccountStatus) (int64, error) {
	if status != models.AccountStatusActive && status != models.AccountStatusBlocked {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	affected, err := s.officialRepo.SetAccountStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}

	s.logAffected("official account status changed", affected,
		zap.Int("officialID", id),
		zap.String("status", string(status)),
	)
	return affected, nil
}

// DeleteOfficial permanently removes an official
func (s *adminService) DeleteOfficial(ctx context.Context, id int) (int64, error) {
	affected, err := s.officialRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logAffected("official deleted", affected, zap.Int("officialID", id))
	return affected, nil
}

// logAffected logs a mutation. Mutations matching no row still succeed and are logged at debug.
func (s *adminService) logAffected(msg string, affected int64, fields ...zap.Field) {
	fields = append(fields, zap.Int64("affected", affected))
	if affected == 0 {
		s.logger.Debug(msg+": no rows affected", fields...)
		return
	}
	s.logger.Info(msg, fields...)
}

// shapeIssue returns a copy of the issue with image paths prefixed by the uploads base
func (s *adminService) shapeIssue(issue models.Issue) models.Issue {
	issue.ImagePath = s.uploadURL(issue.ImagePath)
	issue.AfterImagePath = s.uploadURL(issue.AfterImagePath)
	return issue
}

// uploadURL prefixes a stored relative path with the uploads base.
// The stored value is never modified; a new string is returned.
func (s *adminService) uploadURL(path *string) *string {
	if path == nil || *path == "" {
		return path
	}
	url := s.uploadsBaseURL + "/" + strings.TrimLeft(*path, "/")
	return &url
}
