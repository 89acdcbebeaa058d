package commands

import (
	"context"
	"time"

	"couponbid/internal/domain/ledger"
	"couponbid/internal/pkg/errs"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance     = errs.New("insufficient balance")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// creditUser locks the user row, appends the credit transaction and applies
// it to the cached balance. Both writes share the caller's transaction.
func creditUser(
	ctx context.Context,
	tx shared.Tx,
	now time.Time,
	userID uuid.UUID,
	amount int64,
	kind ledger.Kind,
	description string,
) error {
	if _, err := tx.Users().LockByID(ctx, tx.DB(), userID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	t, err := ledger.NewCredit(userID, amount, kind, description, now)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	return applyTransaction(ctx, tx, t)
}

// lockedDebit appends a debit for a user whose row lock the caller already
// holds. The balance check uses the locked snapshot, so no concurrent debit
// can slip between check and write.
func lockedDebit(
	ctx context.Context,
	tx shared.Tx,
	now time.Time,
	snap *shared.UserSnapshot,
	amount int64,
	kind ledger.Kind,
	description string,
) error {
	if snap.Balance < amount {
		return ErrInsufficientBalance
	}
	t, err := ledger.NewDebit(snap.ID, amount, kind, description, now)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	return applyTransaction(ctx, tx, t)
}

func applyTransaction(ctx context.Context, tx shared.Tx, t *ledger.Transaction) error {
	if err := tx.Ledger().Append(ctx, tx.DB(), t); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Users().AddBalance(ctx, tx.DB(), t.UserID(), t.Amount()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
