package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/smmpanel/backend/internal/store"
)

const txMaxRetries = 3

type txCtxKey struct{}

// TxBeginner is satisfied by pgxpool.Pool and by pgxmock in tests.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TXManager runs callbacks inside serializable transactions. Serialization
// failures are retried a bounded number of times before surfacing as
// store.ErrConflict.
type TXManager struct {
	pool TxBeginner
}

func NewTXManager(pool TxBeginner) *TXManager {
	return &TXManager{pool: pool}
}

func (m *TXManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(txMaxRetries, retry.NewExponential(10*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
		if err != nil {
			return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}

		if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
			}
			if isSerializationFailure(err) {
				return retry.RetryableError(err)
			}
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			if isSerializationFailure(err) {
				return retry.RetryableError(err)
			}
			return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}
		return nil
	})

	if err != nil && isSerializationFailure(err) {
		zap.L().Warn("transaction retries exhausted", zap.Error(err))
		return store.ErrConflict
	}
	return err
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
