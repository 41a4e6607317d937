package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a unique index rejecting a row.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsUniqueViolationOn is IsUniqueViolation narrowed to the index on column.
// gorm names unique indexes idx_<table>_<column>.
func IsUniqueViolationOn(err error, column string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, column)
}

// likePattern wraps a user search term for ILIKE matching.
func likePattern(q string) string {
	return "%" + q + "%"
}

// foreignKeyViolation is the Postgres SQLSTATE for foreign_key_violation
const foreignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err came from a row still being
// referenced (or referencing a missing row).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
