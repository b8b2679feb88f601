package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	txMaxRetries   = 3
	txRetryBackoff = 50 * time.Millisecond
)

// ErrTxConflict is returned once the serialization-conflict retry budget is
// exhausted. Callers may retry the whole operation idempotently.
var ErrTxConflict = errors.New("transaction serialization conflict")

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn inside a serializable transaction. Serialization failures
// (SQLSTATE 40001/40P01) are retried with jittered backoff up to
// txMaxRetries before surfacing ErrTxConflict. Nested calls reuse the
// transaction already carried by the context, so composed service
// operations commit atomically.
func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(txMaxRetries, retry.WithJitter(txRetryBackoff/2, retry.NewExponential(txRetryBackoff)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := m.runTx(ctx, fn); err != nil {
			if isSerializationFailure(err) {
				zap.L().Warn("transaction conflict, retrying", zap.Error(err))
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil && isSerializationFailure(err) {
		return ErrTxConflict
	}
	return err
}

func (m *Manager) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("transaction rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
