package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/civictrack/admin/internal/models"
	"go.uber.org/zap"
)

// userRepository implements UserRepository
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUsernameAndRole retrieves a user with the given username and role
func (r *userRepository) GetByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.User, error) {
	query := `
		SELECT id, username, email, password, role, accountStatus, municipalityId
		FROM users
		WHERE username = ? AND role = ?
		LIMIT 1
	`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, username, role))
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		r.logger.Error("failed to get user by username and role", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username and role: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, username, email, password, role, accountStatus, municipalityId
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("userID", id))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var (
		user           models.User
		email          sql.NullString
		municipalityID sql.NullInt64
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.PasswordHash,
		&user.Role,
		&user.AccountStatus,
		&municipalityID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.Email = nullStringPtr(email)
	user.MunicipalityID = nullIntPtr(municipalityID)

	return &user, nil
}
