package readstore

import (
	"context"
	"errors"

	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WalletReadStore struct {
	db db.DBTX
}

func NewWalletReadStore(dbtx db.DBTX) *WalletReadStore {
	return &WalletReadStore{db: dbtx}
}

func (s *WalletReadStore) FindBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	const q = `SELECT balance FROM users WHERE id = $1`

	var balance int64
	err := s.db.QueryRow(ctx, q, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find balance", err)
	}
	return balance, nil
}

func (s *WalletReadStore) FindTransactions(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	const q = `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var views []*queries.TransactionView
	for rows.Next() {
		var v queries.TransactionView
		err := rows.Scan(&v.ID, &v.UserID, &v.Kind, &v.Amount, &v.Description, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read transaction rows", err)
	}
	return views, nil
}
