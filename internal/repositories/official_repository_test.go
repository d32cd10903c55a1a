package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/civictrack/admin/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var officialColumns = []string{"id", "username", "email", "accountStatus", "municipalityName", "totalIssuesHandled"}

// setupOfficialTestRepository creates an official repository with a mock database
func setupOfficialTestRepository(t *testing.T) (*officialRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewOfficialRepository(db, zaptest.NewLogger(t))

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestOfficialRepository_ListWithIssueCounts(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      []models.Official
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(officialColumns).
					AddRow(4, "alpha", "alpha@example.com", "active", "Springfield", 12).
					AddRow(5, "beta", nil, "blocked", nil, 0)
				mock.ExpectQuery(`SELECT (.+) COUNT\(DISTINCT oic.id\) AS totalIssuesHandled FROM users u LEFT JOIN municipalities m ON u.municipalityId = m.id LEFT JOIN official_issue_completions oic ON oic.officialId = u.id WHERE u.role = \? GROUP BY (.+) ORDER BY u.username ASC`).
					WithArgs("municipality").
					WillReturnRows(rows)
			},
			expected: []models.Official{
				{ID: 4, Username: "alpha", Email: strPtr("alpha@example.com"), AccountStatus: models.AccountStatusActive, MunicipalityName: strPtr("Springfield"), TotalIssuesHandled: 12},
				{ID: 5, Username: "beta", AccountStatus: models.AccountStatusBlocked, TotalIssuesHandled: 0},
			},
		},
		{
			name: "empty",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users u`).
					WithArgs("municipality").
					WillReturnRows(sqlmock.NewRows(officialColumns))
			},
			expected: []models.Official{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users u`).
					WithArgs("municipality").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupOfficialTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			officials, err := repo.ListWithIssueCounts(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, officials)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, officials)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfficialRepository_SetAccountStatus(t *testing.T) {
	tests := []struct {
		name             string
		status           models.AccountStatus
		setupMock        func(sqlmock.Sqlmock)
		expectedError    bool
		expectedAffected int64
	}{
		{
			name:   "block",
			status: models.AccountStatusBlocked,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users SET accountStatus = \? WHERE id = \? AND role = \?`).
					WithArgs("blocked", 4, "municipality").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedAffected: 1,
		},
		{
			name:   "unblock non-official",
			status: models.AccountStatusActive,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users SET accountStatus = \?`).
					WithArgs("active", 4, "municipality").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedAffected: 0,
		},
		{
			name:   "database error",
			status: models.AccountStatusBlocked,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users SET accountStatus = \?`).
					WithArgs("blocked", 4, "municipality").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupOfficialTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			affected, err := repo.SetAccountStatus(context.Background(), 4, tt.status)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAffected, affected)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfficialRepository_Delete(t *testing.T) {
	tests := []struct {
		name             string
		setupMock        func(sqlmock.Sqlmock)
		expectedError    error
		expectedAffected int64
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \? AND role = \?`).
					WithArgs(4, "municipality").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedAffected: 1,
		},
		{
			name: "nonexistent id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(4, "municipality").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedAffected: 0,
		},
		{
			name: "still referenced",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(4, "municipality").
					WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})
			},
			expectedError: ErrOfficialReferenced,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(4, "municipality").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupOfficialTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			affected, err := repo.Delete(context.Background(), 4)

			switch {
			case errors.Is(tt.expectedError, ErrOfficialReferenced):
				assert.ErrorIs(t, err, ErrOfficialReferenced)
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrOfficialReferenced)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAffected, affected)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
