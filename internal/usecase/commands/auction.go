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
	ErrNotCouponSeller = errs.New("only the seller can resolve the auction")
	ErrBidNotFound     = errs.New("no pending bid from that bidder")
)

type CreateCouponRequest struct {
	Title       string
	Description string
	Category    string
	BasePrice   int64
	ExpiryDate  time.Time
	SecretCode  string
}

type CreateCouponResult struct {
	CouponID uuid.UUID
}

type SelectWinnerResult struct {
	WinnerID      uuid.UUID
	WinningAmount int64
}

type AuctionCommands interface {
	CreateCoupon(ctx context.Context, req CreateCouponRequest, sellerID uuid.UUID) (*CreateCouponResult, error)
	// SelectWinner settles the auction: the chosen bidder's highest pending
	// bid wins, every other pending hold is refunded, the seller is credited.
	SelectWinner(ctx context.Context, couponID, bidderID, callerID uuid.UUID) (*SelectWinnerResult, error)
	// ExpireSweep transitions overdue active coupons to expired and refunds
	// all their pending holds. Returns the number of coupons expired.
	ExpireSweep(ctx context.Context, limit int) (int, error)
}

type auctionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAuctionUseCase(uow shared.UnitOfWork, clk clock.Clock) AuctionCommands {
	return &auctionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *auctionUseCaseImpl) CreateCoupon(ctx context.Context, req CreateCouponRequest, sellerID uuid.UUID) (*CreateCouponResult, error) {
	now := uc.clock.Now()

	cp, err := coupon.NewCoupon(
		sellerID,
		req.Title, req.Description, req.Category,
		req.BasePrice,
		req.ExpiryDate,
		req.SecretCode,
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var couponID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Coupons().Create(ctx, tx.DB(), cp)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		couponID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateCouponResult{CouponID: couponID}, nil
}

func (uc *auctionUseCaseImpl) SelectWinner(ctx context.Context, couponID, bidderID, callerID uuid.UUID) (*SelectWinnerResult, error) {
	now := uc.clock.Now()

	var result SelectWinnerResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if cp.SellerID != callerID {
			return ErrNotCouponSeller
		}
		if cp.Status != coupon.StatusActive {
			return ErrCouponNotActive
		}

		pending, err := tx.Bids().PendingByCoupon(ctx, tx.DB(), couponID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Rows come back highest first, so the first match is the bidder's
		// best pending bid.
		var winning *shared.BidSnapshot
		for _, b := range pending {
			if b.BidderID == bidderID {
				winning = b
				break
			}
		}
		if winning == nil {
			return ErrBidNotFound
		}

		if err := tx.Bids().UpdateStatus(ctx, tx.DB(), winning.ID, bid.StatusWon); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, b := range pending {
			if b.ID == winning.ID {
				continue
			}
			if err := uc.refundBid(ctx, tx, now, b, cp.Title); err != nil {
				return err
			}
		}

		if err := creditUser(ctx, tx, now, cp.SellerID, winning.Amount,
			ledger.KindSaleCredit, fmt.Sprintf("Sale: %s", cp.Title)); err != nil {
			return err
		}

		if err := tx.Coupons().MarkSold(ctx, tx.DB(), couponID, bidderID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		winMsg := fmt.Sprintf("You won the auction for %q with %d points. The code is now visible to you.", cp.Title, winning.Amount)
		if err := tx.Notifications().Create(ctx, tx.DB(), bidderID, winMsg, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		soldMsg := fmt.Sprintf("Your coupon %q sold for %d points", cp.Title, winning.Amount)
		if err := tx.Notifications().Create(ctx, tx.DB(), cp.SellerID, soldMsg, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = SelectWinnerResult{WinnerID: bidderID, WinningAmount: winning.Amount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *auctionUseCaseImpl) ExpireSweep(ctx context.Context, limit int) (int, error) {
	now := uc.clock.Now()

	var expired int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = 0
		overdue, err := tx.Coupons().LockExpiredActive(ctx, tx.DB(), now, limit)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, cp := range overdue {
			pending, err := tx.Bids().PendingByCoupon(ctx, tx.DB(), cp.ID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			for _, b := range pending {
				if err := uc.refundBid(ctx, tx, now, b, cp.Title); err != nil {
					return err
				}
			}
			if err := tx.Coupons().MarkExpired(ctx, tx.DB(), cp.ID, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			msg := fmt.Sprintf("Your coupon %q expired without a winner", cp.Title)
			if err := tx.Notifications().Create(ctx, tx.DB(), cp.SellerID, msg, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

// refundBid releases one pending hold: the bid goes to lost and the held
// points flow back through the ledger.
func (uc *auctionUseCaseImpl) refundBid(ctx context.Context, tx shared.Tx, now time.Time, b *shared.BidSnapshot, couponTitle string) error {
	if err := tx.Bids().UpdateStatus(ctx, tx.DB(), b.ID, bid.StatusLost); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := creditUser(ctx, tx, now, b.BidderID, b.Amount,
		ledger.KindBidRefund, fmt.Sprintf("Bid refund: %s", couponTitle)); err != nil {
		return err
	}
	msg := fmt.Sprintf("Your bid of %d points on %q was refunded", b.Amount, couponTitle)
	if err := tx.Notifications().Create(ctx, tx.DB(), b.BidderID, msg, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
