package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
)

// AsPgError extracts the driver error, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports any unique violation.
func IsUniqueViolation(err error) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == CodeUniqueViolation
}

// IsForeignKeyViolation reports any foreign key violation.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == CodeForeignKeyViolation
}

// CheckViolationColumn returns the column guarded by a violated CHECK constraint.
// Column-level checks are named "<table>_<column>_check" by PostgreSQL; the
// migrations keep that convention for table-level checks too.
func CheckViolationColumn(err error) (string, bool) {
	pgErr, ok := AsPgError(err)
	if !ok || pgErr.Code != CodeCheckViolation {
		return "", false
	}
	name := strings.TrimSuffix(pgErr.ConstraintName, "_check")
	if table := pgErr.TableName; table != "" {
		name = strings.TrimPrefix(name, table+"_")
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// NotNullViolationColumn returns the column that rejected a NULL.
func NotNullViolationColumn(err error) (string, bool) {
	pgErr, ok := AsPgError(err)
	if !ok || pgErr.Code != CodeNotNullViolation || pgErr.ColumnName == "" {
		return "", false
	}
	return pgErr.ColumnName, true
}
