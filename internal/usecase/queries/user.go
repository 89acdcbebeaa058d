package queries

import (
	"context"

	"couponbid/internal/infra"
	"couponbid/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	// Profile aggregates a user's bids, won coupons (codes revealed) and
	// own listings.
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindBidsByUser(ctx context.Context, userID uuid.UUID) ([]*BidView, error)
	FindWonCoupons(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)
	FindCouponsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*CouponListItem, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	userView, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bids, err := q.readStore.FindBidsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	won, err := q.readStore.FindWonCoupons(ctx, userID)
	if err != nil {
		return nil, err
	}
	mine, err := q.readStore.FindCouponsBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		User:       userView,
		Bids:       bids,
		WonCoupons: won,
		MyCoupons:  mine,
	}, nil
}
