package commands

import (
	"context"
	"fmt"

	"couponbid/internal/domain/exchange"
	"couponbid/internal/domain/ledger"
	"couponbid/internal/domain/user"
	"couponbid/internal/pkg/clock"
	"couponbid/internal/pkg/errs"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownPackage       = errs.New("unknown points package")
	ErrInvalidRedemption    = errs.New("invalid redemption amount")
	ErrRewardAlreadyClaimed = errs.New("daily reward already claimed")
)

type PurchaseResult struct {
	Points int64
	Price  int64
}

type RedeemResult struct {
	Points int64
	Payout int64
}

type ExchangeCommands interface {
	// PurchasePoints credits the catalog package's points. Payment itself is
	// outside the system; the ledger records the grant.
	PurchasePoints(ctx context.Context, userID uuid.UUID, packageID int) (*PurchaseResult, error)
	RedeemPoints(ctx context.Context, userID uuid.UUID, points int64) (*RedeemResult, error)
	ClaimDailyReward(ctx context.Context, userID uuid.UUID) (int64, error)
}

type exchangeUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	rewardPoints int64
}

func NewExchangeUseCase(uow shared.UnitOfWork, clk clock.Clock, rewardPoints int64) ExchangeCommands {
	if rewardPoints <= 0 {
		rewardPoints = exchange.DefaultDailyReward
	}
	return &exchangeUseCaseImpl{uow: uow, clock: clk, rewardPoints: rewardPoints}
}

func (uc *exchangeUseCaseImpl) PurchasePoints(ctx context.Context, userID uuid.UUID, packageID int) (*PurchaseResult, error) {
	pkg, err := exchange.PackageByID(packageID)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownPackage)
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return creditUser(ctx, tx, now, userID, pkg.Points,
			ledger.KindPurchase, fmt.Sprintf("Purchased %d points package", pkg.Points))
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{Points: pkg.Points, Price: pkg.Price}, nil
}

func (uc *exchangeUseCaseImpl) RedeemPoints(ctx context.Context, userID uuid.UUID, points int64) (*RedeemResult, error) {
	payout, err := exchange.RedemptionPayout(points)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRedemption)
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Users().LockByID(ctx, tx.DB(), userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return lockedDebit(ctx, tx, now, snap, points,
			ledger.KindRedemption, fmt.Sprintf("Redeemed %d points for %d", points, payout))
	})
	if err != nil {
		return nil, err
	}
	return &RedeemResult{Points: points, Payout: payout}, nil
}

// ClaimDailyReward grants the daily bonus at most once per UTC calendar day.
// The date check and the grant happen under the user's row lock, so two
// concurrent claims cannot both pass the check.
func (uc *exchangeUseCaseImpl) ClaimDailyReward(ctx context.Context, userID uuid.UUID) (int64, error) {
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Users().LockByID(ctx, tx.DB(), userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if user.RewardClaimedOn(snap.LastDailyReward, now) {
			return ErrRewardAlreadyClaimed
		}
		if err := tx.Users().SetLastDailyReward(ctx, tx.DB(), userID, now.UTC()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return creditUser(ctx, tx, now, userID, uc.rewardPoints,
			ledger.KindReward, "Daily reward")
	})
	if err != nil {
		return 0, err
	}
	return uc.rewardPoints, nil
}
