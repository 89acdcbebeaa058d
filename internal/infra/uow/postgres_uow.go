package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"couponbid/internal/infra/db"
	"couponbid/internal/infra/writerepo"
	"couponbid/internal/pkg/errs"
	"couponbid/internal/usecase/shared"

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
	pool          *pgxpool.Pool
	users         shared.UserRepository
	coupons       shared.CouponRepository
	bids          shared.BidRepository
	ledger        shared.LedgerRepository
	notifications shared.NotificationRepository
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:          pool,
		users:         writerepo.NewUserRepository(),
		coupons:       writerepo.NewCouponRepository(),
		bids:          writerepo.NewBidRepository(),
		ledger:        writerepo.NewLedgerRepository(),
		notifications: writerepo.NewNotificationRepository(),
	}
}

// ReadCommitted plus explicit row locks: placeBid locks user before coupon,
// winner selection locks coupon before users. The inversion between the two
// is resolved by Postgres deadlock detection and the retry loop below.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; ; attempt++ {
		err := u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) || attempt == maxRetries {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err)
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := backoffWithJitter(base, attempt)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1, "wait_time", wait, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Transaction body kept out of the retry loop so deferred rollbacks do not
// accumulate across attempts.
func (u *PostgresUoW) runInTx(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(ctx, &pgTx{uow: u, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	uow *PostgresUoW
	tx  pgx.Tx
}

func (t *pgTx) Users() shared.UserRepository                 { return t.uow.users }
func (t *pgTx) Coupons() shared.CouponRepository             { return t.uow.coupons }
func (t *pgTx) Bids() shared.BidRepository                   { return t.uow.bids }
func (t *pgTx) Ledger() shared.LedgerRepository              { return t.uow.ledger }
func (t *pgTx) Notifications() shared.NotificationRepository { return t.uow.notifications }
func (t *pgTx) DB() db.DBTX                                  { return t.tx }

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

func backoffWithJitter(base time.Duration, attempt int) time.Duration {
	wait := base * time.Duration(1<<attempt)

	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		jitter := time.Duration(binary.LittleEndian.Uint64(b[:]) % uint64(base))
		wait += jitter
	}
	return wait
}
