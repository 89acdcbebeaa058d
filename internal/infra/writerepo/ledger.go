package writerepo

import (
	"context"

	"couponbid/internal/domain/ledger"
	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"
)

type LedgerRepository struct{}

func NewLedgerRepository() shared.LedgerRepository {
	return &LedgerRepository{}
}

// Append is insert-only. Transactions are never updated or deleted; the
// table is the system of record for every balance.
func (r *LedgerRepository) Append(ctx context.Context, dbtx db.DBTX, t *ledger.Transaction) error {
	const q = `
		INSERT INTO transactions (id, user_id, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := dbtx.Exec(ctx, q,
		t.ID(), t.UserID(), t.Kind().String(), t.Amount(), t.Description(), t.CreatedAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("user does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}
