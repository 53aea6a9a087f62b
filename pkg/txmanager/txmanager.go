// Package txmanager runs functions inside serializable transactions against a
// metrics-wrapped database handle.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
)

// maxAttempts bounds retries after serialization failures.
const maxAttempts = 3

var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner opens transactions returning the shared executor interface.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager executes functions in SERIALIZABLE transactions.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager over db.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The transaction is
// injected into the context passed to fn, so repository calls made with it are
// executed on the transaction. Serialization failures (SQLSTATE 40001/40P01)
// are retried up to maxAttempts times; any other error from fn rolls back and
// is returned as-is.
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

// isSerializationFailure matches PostgreSQL serialization_failure and
// deadlock_detected, both safe to retry.
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
