package queries

import (
	"context"

	"couponbid/internal/infra"
	"couponbid/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWalletNotFound = errs.New("wallet not found")

type WalletQueries interface {
	// Wallet returns the cached balance with the transaction history,
	// newest first.
	Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type WalletReadStore interface {
	FindBalance(ctx context.Context, userID uuid.UUID) (int64, error)
	FindTransactions(ctx context.Context, userID uuid.UUID, limit int32) ([]*TransactionView, error)
}

type walletQueriesImpl struct {
	readStore WalletReadStore
}

func NewWalletQueries(readStore WalletReadStore) WalletQueries {
	return &walletQueriesImpl{readStore: readStore}
}

func (q *walletQueriesImpl) Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	balance, err := q.readStore.FindBalance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}

	txs, err := q.readStore.FindTransactions(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	return &WalletView{
		UserID:       userID,
		Balance:      balance,
		Transactions: txs,
	}, nil
}
