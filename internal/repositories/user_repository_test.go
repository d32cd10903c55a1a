package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/civictrack/admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var userColumns = []string{"id", "username", "email", "password", "role", "accountStatus", "municipalityId"}

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db, zaptest.NewLogger(t))

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	logger := zaptest.NewLogger(t)
	db := &sql.DB{}

	repo := NewUserRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestUserRepository_GetByUsernameAndRole(t *testing.T) {
	email := "root@example.com"

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns).
					AddRow(1, "root_admin", email, "hash", "admin", "active", nil)
				mock.ExpectQuery(`SELECT id, username, email, password, role, accountStatus, municipalityId FROM users WHERE username = \? AND role = \? LIMIT 1`).
					WithArgs("root_admin", "admin").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:            1,
				Username:      "root_admin",
				Email:         &email,
				PasswordHash:  "hash",
				Role:          models.RoleAdmin,
				AccountStatus: models.AccountStatusActive,
			},
		},
		{
			name: "account status is taken as stored",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns).
					AddRow(1, "root_admin", nil, "hash", "admin", "blocked", nil)
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \? AND role = \?`).
					WithArgs("root_admin", "admin").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:            1,
				Username:      "root_admin",
				PasswordHash:  "hash",
				Role:          models.RoleAdmin,
				AccountStatus: models.AccountStatusBlocked,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \? AND role = \?`).
					WithArgs("root_admin", "admin").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \? AND role = \?`).
					WithArgs("root_admin", "admin").
					WillReturnError(errors.New("connection refused"))
			},
			expectedError: errors.New("failed to get user by username and role: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByUsernameAndRole(context.Background(), "root_admin", models.RoleAdmin)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	municipalityID := 4

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns).
					AddRow(9, "official", nil, "hash", "municipality", "blocked", 4)
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \? LIMIT 1`).
					WithArgs(9).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:             9,
				Username:       "official",
				PasswordHash:   "hash",
				Role:           models.RoleMunicipality,
				AccountStatus:  models.AccountStatusBlocked,
				MunicipalityID: &municipalityID,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \?`).
					WithArgs(9).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \?`).
					WithArgs(9).
					WillReturnError(errors.New("timeout"))
			},
			expectedError: errors.New("failed to get user by id: timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByID(context.Background(), 9)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_NotFoundIsSentinel(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
