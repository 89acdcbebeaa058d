package response

import (
	"time"

	"couponbid/internal/domain/exchange"
	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type WalletResponse struct {
	Balance      int64                  `json:"balance"`
	Transactions []*TransactionResponse `json:"transactions"`
	Packages     []PackageResponse      `json:"packages"`
}

type PackageResponse struct {
	ID      int   `json:"id"`
	Price   int64 `json:"price"`
	Points  int64 `json:"points"`
	Popular bool  `json:"popular"`
}

type PurchasePointsResponse struct {
	Points int64 `json:"points"`
	Price  int64 `json:"price"`
}

type RedeemPointsResponse struct {
	Points int64 `json:"points"`
	Payout int64 `json:"payout"`
}

type DailyRewardResponse struct {
	Points int64 `json:"points"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	txs := make([]*TransactionResponse, 0, len(v.Transactions))
	for _, t := range v.Transactions {
		var resp TransactionResponse
		_ = copier.Copy(&resp, t)
		txs = append(txs, &resp)
	}

	pkgs := make([]PackageResponse, 0)
	for _, p := range exchange.Catalog() {
		pkgs = append(pkgs, PackageResponse{ID: p.ID, Price: p.Price, Points: p.Points, Popular: p.Popular})
	}

	return &WalletResponse{
		Balance:      v.Balance,
		Transactions: txs,
		Packages:     pkgs,
	}
}
