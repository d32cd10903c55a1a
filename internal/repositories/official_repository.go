package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civictrack/admin/internal/models"
	"go.uber.org/zap"
)

// officialRepository implements OfficialRepository
type officialRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOfficialRepository creates a new municipality official repository
func NewOfficialRepository(db *sql.DB, logger *zap.Logger) *officialRepository {
	return &officialRepository{
		db:     db,
		logger: logger,
	}
}

// ListWithIssueCounts retrieves all officials with their municipality and number of completed issues,
// ordered by username
func (r *officialRepository) ListWithIssueCounts(ctx context.Context) ([]models.Official, error) {
	query := `
		SELECT u.id, u.username, u.email, u.accountStatus,
			m.name AS municipalityName,
			COUNT(DISTINCT oic.id) AS totalIssuesHandled
		FROM users u
		LEFT JOIN municipalities m ON u.municipalityId = m.id
		LEFT JOIN official_issue_completions oic ON oic.officialId = u.id
		WHERE u.role = ?
		GROUP BY u.id, u.username, u.email, u.accountStatus, m.name
		ORDER BY u.username ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.RoleMunicipality)
	if err != nil {
		r.logger.Error("failed to list officials", zap.Error(err))
		return nil, fmt.Errorf("failed to list officials: %w", err)
	}
	defer rows.Close()

	officials := make([]models.Official, 0)
	for rows.Next() {
		var (
			official         models.Official
			email            sql.NullString
			municipalityName sql.NullString
		)
		err := rows.Scan(
			&official.ID,
			&official.Username,
			&email,
			&official.AccountStatus,
			&municipalityName,
			&official.TotalIssuesHandled,
		)
		if err != nil {
			r.logger.Error("failed to scan official", zap.Error(err))
			return nil, fmt.Errorf("failed to scan official: %w", err)
		}

		official.Email = nullStringPtr(email)
		official.MunicipalityName = nullStringPtr(municipalityName)
		officials = append(officials, official)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating officials", zap.Error(err))
		return nil, fmt.Errorf("error iterating officials: %w", err)
	}

	return officials, nil
}

// SetAccountStatus sets the account status of an official. Non-official users are never touched.
// Returns the number of affected rows.
func (r *officialRepository) SetAccountStatus(ctx context.Context, id int, status models.AccountStatus) (int64, error) {
	query := `
		UPDATE users
		SET accountStatus = ?
		WHERE id = ? AND role = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, id, models.RoleMunicipality)
	if err != nil {
		r.logger.Error("failed to set official account status", zap.Error(err), zap.Int("officialID", id), zap.String("status", string(status)))
		return 0, fmt.Errorf("failed to set official account status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

// Delete removes an official. Non-official users are never touched.
// Returns the number of affected rows; ErrOfficialReferenced is wrapped when
// the official is still referenced by requests or completions.
func (r *officialRepository) Delete(ctx context.Context, id int) (int64, error) {
	query := `
		DELETE FROM users
		WHERE id = ? AND role = ?
	`

	result, err := r.db.ExecContext(ctx, query, id, models.RoleMunicipality)
	if isMySQLError(err, mysqlErrRowIsReferenced) {
		r.logger.Error("official is still referenced", zap.Error(err), zap.Int("officialID", id))
		return 0, fmt.Errorf("failed to delete official: %w: %v", ErrOfficialReferenced, err)
	}
	if err != nil {
		r.logger.Error("failed to delete official", zap.Error(err), zap.Int("officialID", id))
		return 0, fmt.Errorf("failed to delete official: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
