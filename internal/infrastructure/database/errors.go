package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	mysqlDuplicateEntry   = 1062
	mysqlNoReferencedRow  = 1452
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsDuplicateKeyError reports whether err is a unique constraint violation on
// a constraint whose name contains constraintName. An empty constraintName
// matches any unique violation.
func IsDuplicateKeyError(err error, constraintName string) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry && containsFold(myErr.Message, constraintName)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && containsFold(pgErr.ConstraintName, constraintName)
	}
	return false
}

// IsForeignKeyError reports whether err is a foreign key violation on a
// constraint whose name contains constraintName.
func IsForeignKeyError(err error, constraintName string) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow && containsFold(myErr.Message, constraintName)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation && containsFold(pgErr.ConstraintName, constraintName)
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
