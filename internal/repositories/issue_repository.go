package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/civictrack/admin/internal/models"
	"go.uber.org/zap"
)

const issueSelect = `
	SELECT r.id, r.userId, r.municipalityId, r.title, r.description, r.location,
		r.status, r.createdAt, r.imagePath, r.afterImagePath,
		u.username AS citizenName, m.name AS municipalityName
	FROM requests r
	JOIN users u ON r.userId = u.id
	JOIN municipalities m ON r.municipalityId = m.id
`

// issueRepository implements IssueRepository
type issueRepository struct {
	db     *sql.DB
	logger *zap.Logger
	// historyAvailable is false once request_history is known to be missing
	historyAvailable atomic.Bool
}

// NewIssueRepository creates a new issue repository.
// History lookups are attempted until DetectHistory reports the table missing.
func NewIssueRepository(db *sql.DB, logger *zap.Logger) *issueRepository {
	repo := &issueRepository{
		db:     db,
		logger: logger,
	}
	repo.historyAvailable.Store(true)
	return repo
}

// DetectHistory checks whether the request_history table exists in the current schema
// and records the result as the history capability flag.
func (r *issueRepository) DetectHistory(ctx context.Context) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = 'request_history'
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		r.logger.Error("failed to detect request_history table", zap.Error(err))
		return false, fmt.Errorf("failed to detect request_history table: %w", err)
	}

	available := count > 0
	r.historyAvailable.Store(available)
	return available, nil
}

// HistoryAvailable reports the history capability flag
func (r *issueRepository) HistoryAvailable() bool {
	return r.historyAvailable.Load()
}

// List retrieves all issues with citizen and municipality names, newest first
func (r *issueRepository) List(ctx context.Context) ([]models.Issue, error) {
	query := issueSelect + ` ORDER BY r.createdAt DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list issues", zap.Error(err))
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	issues := make([]models.Issue, 0)
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			r.logger.Error("failed to scan issue", zap.Error(err))
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, *issue)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating issues", zap.Error(err))
		return nil, fmt.Errorf("error iterating issues: %w", err)
	}

	return issues, nil
}

// GetByID retrieves a single issue with citizen and municipality names
func (r *issueRepository) GetByID(ctx context.Context, id int) (*models.Issue, error) {
	query := issueSelect + ` WHERE r.id = ?`

	issue, err := scanIssue(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIssueNotFound
	}
	if err != nil {
		r.logger.Error("failed to get issue by id", zap.Error(err), zap.Int("issueID", id))
		return nil, fmt.Errorf("failed to get issue by id: %w", err)
	}

	return issue, nil
}

// GetHistory retrieves the status timeline of an issue, oldest first.
// An empty timeline is returned when the history table is unavailable.
func (r *issueRepository) GetHistory(ctx context.Context, id int) ([]models.HistoryEntry, error) {
	history := make([]models.HistoryEntry, 0)
	if !r.historyAvailable.Load() {
		return history, nil
	}

	query := `
		SELECT status, changed_at, changed_by
		FROM request_history
		WHERE request_id = ?
		ORDER BY changed_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if isMySQLError(err, mysqlErrNoSuchTable) {
		r.logger.Warn("request_history table is missing, returning empty timeline", zap.Int("issueID", id))
		return history, nil
	}
	if err != nil {
		r.logger.Error("failed to get issue history", zap.Error(err), zap.Int("issueID", id))
		return nil, fmt.Errorf("failed to get issue history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     models.HistoryEntry
			changedBy sql.NullInt64
		)
		if err := rows.Scan(&entry.Status, &entry.ChangedAt, &changedBy); err != nil {
			r.logger.Error("failed to scan history entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.ChangedBy = nullIntPtr(changedBy)
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating history", zap.Error(err))
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return history, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssue(row rowScanner) (*models.Issue, error) {
	var (
		issue          models.Issue
		title          sql.NullString
		description    sql.NullString
		location       sql.NullString
		imagePath      sql.NullString
		afterImagePath sql.NullString
	)

	err := row.Scan(
		&issue.ID,
		&issue.UserID,
		&issue.MunicipalityID,
		&title,
		&description,
		&location,
		&issue.Status,
		&issue.CreatedAt,
		&imagePath,
		&afterImagePath,
		&issue.CitizenName,
		&issue.MunicipalityName,
	)
	if err != nil {
		return nil, err
	}

	issue.Title = nullStringPtr(title)
	issue.Description = nullStringPtr(description)
	issue.Location = nullStringPtr(location)
	issue.ImagePath = nullStringPtr(imagePath)
	issue.AfterImagePath = nullStringPtr(afterImagePath)

	return &issue, nil
}
