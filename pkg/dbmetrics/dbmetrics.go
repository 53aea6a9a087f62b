// Package dbmetrics wraps database/sql with query metrics and carries the
// active transaction through context so repositories stay transaction-agnostic.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and *DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txCtxKey struct{}

// WithTx returns a context carrying an open transaction executor.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// GetExecutor returns the transaction from ctx when present, else fallback.
// Repositories call this on every query so the same method works inside and
// outside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(TxExecutor)
	return ok
}

// DB wraps *sql.DB and records per-query latency.
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// WrapWithDefault wraps db with metrics and starts a goroutine publishing
// connection pool stats until stopCh closes.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, m: m}

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				m.SetDBPoolStats(db.Stats())
			}
		}
	}()

	return wrapped
}

// operation extracts the metric label from a query: its first keyword.
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.m.ObserveDBQuery(operation(query), time.Since(start))
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.m.ObserveDBQuery(operation(query), time.Since(start))
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.m.ObserveDBQuery(operation(query), time.Since(start))
	return row
}

// BeginTx opens a transaction whose statements are also measured.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, m: d.m}, nil
}

type measuredTx struct {
	tx *sql.Tx
	m  *metrics.Metrics
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.m.ObserveDBQuery(operation(query), time.Since(start))
	return res, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.m.ObserveDBQuery(operation(query), time.Since(start))
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.m.ObserveDBQuery(operation(query), time.Since(start))
	return row
}

func (t *measuredTx) Commit() error   { return t.tx.Commit() }
func (t *measuredTx) Rollback() error { return t.tx.Rollback() }
