package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors returned by repositories
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrOfficialReferenced = errors.New("official is still referenced")
)

// MySQL server error numbers handled explicitly
const (
	mysqlErrNoSuchTable     = 1146
	mysqlErrRowIsReferenced = 1451
)

// isMySQLError reports whether err is a MySQL server error with the given number
func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullIntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func nullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
