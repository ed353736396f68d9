package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gearshare/internal/infra/repository"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) commands.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writers;
// per-item serialization comes from the schedule lock, not the isolation
// level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * base
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", waitTime.Milliseconds())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func isRetryable(err error) bool {
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
	dbtx pgx.Tx
}

func (t *pgTx) Bookings() commands.BookingRepository {
	return repository.NewBookingRepository(t.dbtx)
}

func (t *pgTx) Items() commands.ItemRepository {
	return repository.NewItemRepository(t.dbtx)
}

func (t *pgTx) Users() commands.UserRepository {
	return repository.NewUserRepository(t.dbtx)
}

func (t *pgTx) Comments() commands.CommentRepository {
	return repository.NewCommentRepository(t.dbtx)
}

func (t *pgTx) Requests() commands.RequestRepository {
	return repository.NewRequestRepository(t.dbtx)
}

func (t *pgTx) Schedule() commands.ScheduleReader {
	return repository.NewScheduleReader(t.dbtx)
}
