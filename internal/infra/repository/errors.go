package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// StorageError é qualquer falha de persistência que não seja regra de negócio.
type StorageError struct {
	Op       string
	SQLState string
	Err      error
}

func (e *StorageError) Error() string {
	if e.SQLState != "" {
		return fmt.Sprintf("%s: sqlstate %s: %v", e.Op, e.SQLState, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	se := &StorageError{Op: op, Err: err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.SQLState = pgErr.Code
	}
	return se
}
