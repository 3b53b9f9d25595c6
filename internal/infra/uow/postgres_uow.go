package uow

import (
	"context"
	"errors"
	"log/slog"

	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// txBeginner is the slice of the pool the coordinator needs. Tests
// substitute it to drive the retry loop without a live database.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ txBeginner = (*pgxpool.Pool)(nil)

type PostgresUoW struct {
	db          txBeginner
	maxAttempts int
}

// NewPostgresUoW builds the engine's unit of work. maxAttempts is the
// total attempt budget for a serializable unit of work, first try
// included.
func NewPostgresUoW(db txBeginner, maxAttempts int) shared.UnitOfWork {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &PostgresUoW{
		db:          db,
		maxAttempts: maxAttempts,
	}
}

// WithinSerializable runs fn at serializable isolation. Serialization
// conflicts and deadlocks restart the whole unit of work; any other
// error propagates immediately. On the final failed attempt the
// original error is returned marked with ErrConcurrencyExhausted.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	options := pgx.TxOptions{IsoLevel: pgx.Serializable}

	var err error
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		err = u.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxAttempts {
			break
		}

		slog.Warn("retrying serializable transaction",
			"attempt", attempt,
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	slog.Error("transaction failed after max attempts",
		"attempts", u.maxAttempts,
		"error", err.Error())
	return errs.Mark(err, errs.ErrConcurrencyExhausted)
}

// Avoids defer accumulation in the retry loop to prevent connection
// leaks.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.db.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{dbtx: pgxTx}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo   shared.BookingRepository
	conflictReads shared.ConflictReads
}

// AcquireLocks takes transaction-scoped advisory locks for the
// normalized key set, in order. pg_advisory_xact_lock blocks until the
// lock is granted and releases it with the transaction.
func (t *pgTx) AcquireLocks(ctx context.Context, keys []string) error {
	for _, key := range NormalizeLockKeys(keys) {
		if _, err := t.dbtx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
			return errs.Wrap(err, "failed to acquire advisory lock "+key)
		}
	}
	return nil
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Conflicts() shared.ConflictReads {
	if t.conflictReads == nil {
		t.conflictReads = repository.NewConflictReads(t.dbtx)
	}
	return t.conflictReads
}
