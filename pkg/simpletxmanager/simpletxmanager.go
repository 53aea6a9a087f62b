// Package simpletxmanager is the txmanager counterpart for a plain *sql.DB,
// used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
)

const maxAttempts = 3

var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager executes functions in SERIALIZABLE transactions.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over db.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying bounded
// times on serialization failures. See txmanager.DoSerializable.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
		}

		if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
			_ = tx.Rollback()
			if isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
		}

		return nil
	}

	return fmt.Errorf("%w: gave up after %d attempts: %v", ErrTransaction, maxAttempts, lastErr)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
