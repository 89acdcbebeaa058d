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

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	const q = `
		SELECT c.id, c.seller_id, u.name, c.title, c.description, c.category, c.base_price,
			c.expiry_date, c.status, c.winner_id, c.current_highest_bid, c.secret_code,
			c.created_at, c.updated_at
		FROM coupons c
		JOIN users u ON u.id = c.seller_id
		WHERE c.id = $1`

	var view queries.CouponView
	var secret string
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.SellerID, &view.SellerName, &view.Title, &view.Description,
		&view.Category, &view.BasePrice, &view.ExpiryDate, &view.Status,
		&view.WinnerID, &view.CurrentHighestBid, &secret,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	view.SecretCode = &secret
	return &view, nil
}

func (s *CouponReadStore) FindAll(ctx context.Context, filter queries.CouponFilter) ([]*queries.CouponListItem, error) {
	const q = `
		SELECT c.id, c.seller_id, c.title, c.category, c.base_price, c.expiry_date,
			c.status, c.current_highest_bid, COUNT(b.id)
		FROM coupons c
		LEFT JOIN bids b ON b.coupon_id = c.id
		WHERE ($1 = '' OR c.status = $1)
		  AND ($2 = '' OR c.category = $2)
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, q, filter.Status, filter.Category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var items []*queries.CouponListItem
	for rows.Next() {
		var it queries.CouponListItem
		err := rows.Scan(
			&it.ID, &it.SellerID, &it.Title, &it.Category, &it.BasePrice,
			&it.ExpiryDate, &it.Status, &it.CurrentHighestBid, &it.BidCount,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return items, nil
}

// Ordered for winner-candidate display: highest amount first, earliest bid
// breaking ties.
func (s *CouponReadStore) FindBidsByCoupon(ctx context.Context, couponID uuid.UUID) ([]*queries.BidView, error) {
	const q = `
		SELECT b.id, b.coupon_id, b.bidder_id, u.name, b.amount, b.status, b.created_at
		FROM bids b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.coupon_id = $1
		ORDER BY b.amount DESC, b.created_at ASC`

	rows, err := s.db.Query(ctx, q, couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	defer rows.Close()

	var views []*queries.BidView
	for rows.Next() {
		var v queries.BidView
		err := rows.Scan(&v.ID, &v.CouponID, &v.BidderID, &v.BidderName, &v.Amount, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bid rows", err)
	}
	return views, nil
}
