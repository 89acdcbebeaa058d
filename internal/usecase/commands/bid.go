package commands

import (
	"context"
	"fmt"
	"time"

	"couponbid/internal/domain/bid"
	"couponbid/internal/domain/coupon"
	"couponbid/internal/domain/ledger"
	"couponbid/internal/infra"
	"couponbid/internal/pkg/clock"
	"couponbid/internal/pkg/errs"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound  = errs.New("coupon not found")
	ErrCouponNotActive = errs.New("coupon is not open for bidding")
	ErrSellerCannotBid = errs.New("seller cannot bid on own coupon")
	ErrBidTooLow       = errs.New("bid amount too low")
)

type PlaceBidResult struct {
	BidID uuid.UUID
}

type BidCommands interface {
	PlaceBid(ctx context.Context, couponID, bidderID uuid.UUID, amount int64) (*PlaceBidResult, error)
}

type bidUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBidUseCase(uow shared.UnitOfWork, clk clock.Clock) BidCommands {
	return &bidUseCaseImpl{uow: uow, clock: clk}
}

// PlaceBid admits a bid and holds the bidder's points in the same
// transaction. Lock order is bidder row first, then coupon row; winner
// selection takes them in the opposite order, and the unit of work retries
// the losing side when the database detects the cycle.
func (uc *bidUseCaseImpl) PlaceBid(ctx context.Context, couponID, bidderID uuid.UUID, amount int64) (*PlaceBidResult, error) {
	if amount <= 0 {
		return nil, ErrBidTooLow
	}
	now := uc.clock.Now()

	var bidID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bidder, err := tx.Users().LockByID(ctx, tx.DB(), bidderID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cp, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := validateBid(cp, bidderID, amount, now); err != nil {
			return err
		}

		newBid, err := bid.NewBid(couponID, bidderID, amount, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := lockedDebit(ctx, tx, now, bidder, amount,
			ledger.KindBidHold, fmt.Sprintf("Bid hold: %s", cp.Title)); err != nil {
			return err
		}
		id, err := tx.Bids().Create(ctx, tx.DB(), newBid)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bidID = id

		if err := tx.Coupons().RaiseHighestBid(ctx, tx.DB(), couponID, amount, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		msg := fmt.Sprintf("New bid of %d points on %q", amount, cp.Title)
		if err := tx.Notifications().Create(ctx, tx.DB(), cp.SellerID, msg, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &PlaceBidResult{BidID: bidID}, nil
}

// validateBid applies the admission rules in a fixed order so a request
// failing several rules always reports the same one.
func validateBid(cp *shared.CouponSnapshot, bidderID uuid.UUID, amount int64, now time.Time) error {
	if cp.Status != coupon.StatusActive || !cp.ExpiryDate.After(now) {
		return ErrCouponNotActive
	}
	if cp.SellerID == bidderID {
		return ErrSellerCannotBid
	}
	if amount < cp.BasePrice {
		return ErrBidTooLow
	}
	return nil
}
