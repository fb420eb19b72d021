package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventboard/internal/domain"
	"eventboard/internal/metrics"
)

// storeError wraps a driver error as a domain.StoreError, keeping the server's message and SQLSTATE code.
func storeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &domain.StoreError{Op: op, Code: string(pqErr.Code), Message: pqErr.Message, Err: err}
	}
	return &domain.StoreError{Op: op, Message: err.Error(), Err: err}
}

// observe records the outcome of op and converts a failure into a store error.
// sql.ErrNoRows becomes domain.ErrNotFound.
func observe(op string, err error) error {
	metrics.RecordStoreOperation(op, err)
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return storeError(op, err)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
