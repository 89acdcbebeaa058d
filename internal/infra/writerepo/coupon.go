package writerepo

import (
	"context"
	"errors"
	"time"

	"couponbid/internal/domain/coupon"
	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct{}

func NewCouponRepository() shared.CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, dbtx db.DBTX, c *coupon.Coupon) (uuid.UUID, error) {
	const q = `
		INSERT INTO coupons (id, seller_id, title, description, category, base_price,
			expiry_date, secret_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		c.ID(), c.SellerID(), c.Title(), c.Description(), c.Category(), c.BasePrice(),
		c.ExpiryDate(), c.SecretCode(), c.Status().String(), c.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("seller does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

// LockByID serializes bid admission and status transitions for the coupon.
func (r *CouponRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.CouponSnapshot, error) {
	const q = `
		SELECT id, seller_id, title, base_price, expiry_date, status, winner_id, current_highest_bid
		FROM coupons
		WHERE id = $1
		FOR UPDATE`

	snap, err := scanCouponSnapshot(dbtx.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	return snap, nil
}

// SKIP LOCKED keeps the sweep from blocking behind an in-flight winner
// selection; the skipped coupon is picked up on the next tick.
func (r *CouponRepository) LockExpiredActive(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]*shared.CouponSnapshot, error) {
	const q = `
		SELECT id, seller_id, title, base_price, expiry_date, status, winner_id, current_highest_bid
		FROM coupons
		WHERE status = 'active' AND expiry_date < $1
		ORDER BY expiry_date
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := dbtx.Query(ctx, q, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock expired coupons", err)
	}
	defer rows.Close()

	var snaps []*shared.CouponSnapshot
	for rows.Next() {
		snap, err := scanCouponSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired coupon", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired coupons", err)
	}
	return snaps, nil
}

func (r *CouponRepository) RaiseHighestBid(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amount int64, now time.Time) error {
	const q = `
		UPDATE coupons
		SET current_highest_bid = GREATEST(COALESCE(current_highest_bid, 0), $2), updated_at = $3
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, q, id, amount, now); err != nil {
		return infra.WrapRepoErr("failed to raise highest bid", err)
	}
	return nil
}

func (r *CouponRepository) MarkSold(ctx context.Context, dbtx db.DBTX, id, winnerID uuid.UUID, now time.Time) error {
	const q = `
		UPDATE coupons
		SET status = 'sold', winner_id = $2, updated_at = $3
		WHERE id = $1 AND status = 'active' AND winner_id IS NULL`

	tag, err := dbtx.Exec(ctx, q, id, winnerID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon sold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not active", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) MarkExpired(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error {
	const q = `
		UPDATE coupons
		SET status = 'expired', updated_at = $2
		WHERE id = $1 AND status = 'active'`

	tag, err := dbtx.Exec(ctx, q, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon expired", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not active", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponSnapshot(row rowScanner) (*shared.CouponSnapshot, error) {
	var snap shared.CouponSnapshot
	var status string
	err := row.Scan(
		&snap.ID, &snap.SellerID, &snap.Title, &snap.BasePrice, &snap.ExpiryDate,
		&status, &snap.WinnerID, &snap.CurrentHighestBid,
	)
	if err != nil {
		return nil, err
	}
	snap.Status = coupon.Status(status)
	return &snap, nil
}
