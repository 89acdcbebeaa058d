package writerepo

import (
	"context"

	"couponbid/internal/domain/bid"
	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

type BidRepository struct{}

func NewBidRepository() shared.BidRepository {
	return &BidRepository{}
}

func (r *BidRepository) Create(ctx context.Context, dbtx db.DBTX, b *bid.Bid) (uuid.UUID, error) {
	const q = `
		INSERT INTO bids (id, coupon_id, bidder_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		b.ID(), b.CouponID(), b.BidderID(), b.Amount(), b.Status().String(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon or bidder does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create bid", err)
	}
	return id, nil
}

func (r *BidRepository) PendingByCoupon(ctx context.Context, dbtx db.DBTX, couponID uuid.UUID) ([]*shared.BidSnapshot, error) {
	const q = `
		SELECT id, coupon_id, bidder_id, amount, status, created_at
		FROM bids
		WHERE coupon_id = $1 AND status = 'pending'
		ORDER BY amount DESC, created_at ASC`

	rows, err := dbtx.Query(ctx, q, couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending bids", err)
	}
	defer rows.Close()

	var snaps []*shared.BidSnapshot
	for rows.Next() {
		var snap shared.BidSnapshot
		var status string
		if err := rows.Scan(&snap.ID, &snap.CouponID, &snap.BidderID, &snap.Amount, &status, &snap.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid", err)
		}
		snap.Status = bid.Status(status)
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending bids", err)
	}
	return snaps, nil
}

func (r *BidRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, bidID uuid.UUID, status bid.Status) error {
	const q = `
		UPDATE bids
		SET status = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, q, bidID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update bid status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bid not pending", nil, infra.KindNotFound)
	}
	return nil
}
