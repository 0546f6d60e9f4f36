package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row has the requested identifier.
	ErrNotFound = errors.New("record not found")
	// ErrConcurrencyConflict is returned by Commit when a row was modified or
	// deleted after it was read.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	// ErrReferenceNotFound is returned when a written row points at a
	// missing parent, e.g. a book whose author does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrReferenced is returned when a removed row still has dependents.
	ErrReferenced = errors.New("record is still referenced")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
)

type operation string

const (
	opInsert operation = "insert"
	opUpdate operation = "update"
	opDelete operation = "delete"
)

// translate maps Postgres constraint failures onto the store sentinels and
// wraps anything else with the failing operation.
func translate(op operation, table string, err error) error {
	if errors.Is(err, ErrConcurrencyConflict) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			if op == opDelete {
				return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
			}
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pgErr.ConstraintName)
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
