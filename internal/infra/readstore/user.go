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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, name, role, balance, last_daily_reward
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.Balance, &view.LastDailyReward,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const q = `
		SELECT id, email, name, role, balance, last_daily_reward, password_hash
		FROM users
		WHERE email = $1`

	var view queries.AuthorizedUserView
	var passwordHash string
	err := s.db.QueryRow(ctx, q, email).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.Balance, &view.LastDailyReward, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}

func (s *UserReadStore) FindBidsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BidView, error) {
	const q = `
		SELECT b.id, b.coupon_id, b.bidder_id, u.name, b.amount, b.status, b.created_at
		FROM bids b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.bidder_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bids", err)
	}
	defer rows.Close()

	var views []*queries.BidView
	for rows.Next() {
		var v queries.BidView
		if err := rows.Scan(&v.ID, &v.CouponID, &v.BidderID, &v.BidderName, &v.Amount, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user bid row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user bid rows", err)
	}
	return views, nil
}

// Won coupons include the secret code: the winner is entitled to it.
func (s *UserReadStore) FindWonCoupons(ctx context.Context, userID uuid.UUID) ([]*queries.CouponView, error) {
	const q = `
		SELECT c.id, c.seller_id, u.name, c.title, c.description, c.category, c.base_price,
			c.expiry_date, c.status, c.winner_id, c.current_highest_bid, c.secret_code,
			c.created_at, c.updated_at
		FROM coupons c
		JOIN users u ON u.id = c.seller_id
		WHERE c.winner_id = $1
		ORDER BY c.updated_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list won coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		var v queries.CouponView
		var secret string
		err := rows.Scan(
			&v.ID, &v.SellerID, &v.SellerName, &v.Title, &v.Description, &v.Category,
			&v.BasePrice, &v.ExpiryDate, &v.Status, &v.WinnerID, &v.CurrentHighestBid,
			&secret, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan won coupon row", err)
		}
		v.SecretCode = &secret
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read won coupon rows", err)
	}
	return views, nil
}

func (s *UserReadStore) FindCouponsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.CouponListItem, error) {
	const q = `
		SELECT c.id, c.seller_id, c.title, c.category, c.base_price, c.expiry_date,
			c.status, c.current_highest_bid, COUNT(b.id)
		FROM coupons c
		LEFT JOIN bids b ON b.coupon_id = c.id
		WHERE c.seller_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, q, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seller coupons", err)
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
			return nil, infra.WrapRepoErr("failed to scan seller coupon row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seller coupon rows", err)
	}
	return items, nil
}
