package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrNoColumns                = errors.New("record has no attribute data to persist")
	ErrNotKeyed                 = errors.New("record does not expose a primary key")
	ErrRecordNotFound           = errors.New("record not found")
	ErrExecFailed               = errors.New("statement execution failed")
)

// IsNotFoundError detects pgx.ErrNoRows and the store's own not-found
// sentinel for consistent handling across queries.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrRecordNotFound)
}

// IsDuplicateKeyError detects PostgreSQL unique constraint violations
// (SQLSTATE 23505). A database constraint can still fire after the Unique
// directive passed, when a concurrent writer wins the race.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
