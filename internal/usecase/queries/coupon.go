package queries

import (
	"context"

	"couponbid/internal/infra"
	"couponbid/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponFilter struct {
	Status   string
	Category string
}

type CouponQueries interface {
	List(ctx context.Context, filter CouponFilter) ([]*CouponListItem, error)
	// GetByID returns the coupon with its secret code stripped unless the
	// viewer is the winner or the seller.
	GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*CouponView, error)
	ListBids(ctx context.Context, couponID uuid.UUID) ([]*BidView, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindAll(ctx context.Context, filter CouponFilter) ([]*CouponListItem, error)
	FindBidsByCoupon(ctx context.Context, couponID uuid.UUID) ([]*BidView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) List(ctx context.Context, filter CouponFilter) ([]*CouponListItem, error) {
	return q.readStore.FindAll(ctx, filter)
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*CouponView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if !secretVisibleTo(view, viewerID) {
		view.SecretCode = nil
	}
	return view, nil
}

func (q *couponQueriesImpl) ListBids(ctx context.Context, couponID uuid.UUID) ([]*BidView, error) {
	return q.readStore.FindBidsByCoupon(ctx, couponID)
}

func secretVisibleTo(view *CouponView, viewerID *uuid.UUID) bool {
	if viewerID == nil {
		return false
	}
	if view.SellerID == *viewerID {
		return true
	}
	return view.WinnerID != nil && *view.WinnerID == *viewerID
}
