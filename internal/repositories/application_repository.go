package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civictrack/admin/internal/models"
	"go.uber.org/zap"
)

// applicationRepository implements ApplicationRepository
type applicationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewApplicationRepository creates a new official application repository
func NewApplicationRepository(db *sql.DB, logger *zap.Logger) *applicationRepository {
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// ListPending retrieves pending applications with municipality name and reviewer username, newest first
func (r *applicationRepository) ListPending(ctx context.Context) ([]models.OfficialApplication, error) {
	query := `
		SELECT oa.id, oa.municipality_id, oa.user_id, oa.full_name, oa.email, oa.status,
			oa.created_at, oa.reviewed_at, oa.reviewed_by_admin_id,
			m.name AS municipalityName, u.username AS reviewedBy
		FROM official_applications oa
		LEFT JOIN municipalities m ON oa.municipality_id = m.id
		LEFT JOIN users u ON oa.reviewed_by_admin_id = u.id
		WHERE oa.status = ?
		ORDER BY oa.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, models.ApplicationStatusPending)
	if err != nil {
		r.logger.Error("failed to list pending applications", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}
	defer rows.Close()

	applications := make([]models.OfficialApplication, 0)
	for rows.Next() {
		var (
			app              models.OfficialApplication
			municipalityID   sql.NullInt64
			userID           sql.NullInt64
			fullName         sql.NullString
			email            sql.NullString
			reviewedAt       sql.NullTime
			reviewedByID     sql.NullInt64
			municipalityName sql.NullString
			reviewedBy       sql.NullString
		)
		err := rows.Scan(
			&app.ID,
			&municipalityID,
			&userID,
			&fullName,
			&email,
			&app.Status,
			&app.CreatedAt,
			&reviewedAt,
			&reviewedByID,
			&municipalityName,
			&reviewedBy,
		)
		if err != nil {
			r.logger.Error("failed to scan application", zap.Error(err))
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}

		app.MunicipalityID = nullIntPtr(municipalityID)
		app.UserID = nullIntPtr(userID)
		app.FullName = nullStringPtr(fullName)
		app.Email = nullStringPtr(email)
		app.ReviewedAt = nullTimePtr(reviewedAt)
		app.ReviewedByAdminID = nullIntPtr(reviewedByID)
		app.MunicipalityName = nullStringPtr(municipalityName)
		app.ReviewedBy = nullStringPtr(reviewedBy)

		applications = append(applications, app)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating applications", zap.Error(err))
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}

// SetStatus sets the review status of an application, stamping the reviewer and review time.
// Returns the number of affected rows.
func (r *applicationRepository) SetStatus(ctx context.Context, id int, status models.ApplicationStatus, reviewerID int) (int64, error) {
	query := `
		UPDATE official_applications
		SET status = ?, reviewed_at = NOW(), reviewed_by_admin_id = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, reviewerID, id)
	if err != nil {
		r.logger.Error("failed to set application status", zap.Error(err), zap.Int("applicationID", id), zap.String("status", string(status)))
		return 0, fmt.Errorf("failed to set application status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
