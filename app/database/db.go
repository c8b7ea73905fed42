package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrDuplicate is returned when an insert hits a uniqueness constraint,
// e.g. a second enrollment for the same (student, class) pair.
var ErrDuplicate = errors.New("record already exists")

const uniqueViolation = "23505"

// isUniqueViolation recognizes unique-constraint errors from both
// registered drivers (lib/pq and pgx stdlib).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
