package shared

import (
	"context"
	"time"

	"couponbid/internal/domain/bid"
	"couponbid/internal/domain/coupon"
	"couponbid/internal/domain/ledger"
	"couponbid/internal/domain/user"
	"couponbid/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the single transaction boundary for all core mutations.
// Every multi-step update (debit + bid insert, winner settlement, reward
// claim) runs inside Within so it commits or rolls back as one.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Coupons() CouponRepository
	Bids() BidRepository
	Ledger() LedgerRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

// Write-side snapshots keep command code off the read-side query types.
type UserSnapshot struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Role            string
	Balance         int64
	LastDailyReward *time.Time
}

type CouponSnapshot struct {
	ID                uuid.UUID
	SellerID          uuid.UUID
	Title             string
	BasePrice         int64
	ExpiryDate        time.Time
	Status            coupon.Status
	WinnerID          *uuid.UUID
	CurrentHighestBid *int64
}

type BidSnapshot struct {
	ID        uuid.UUID
	CouponID  uuid.UUID
	BidderID  uuid.UUID
	Amount    int64
	Status    bid.Status
	CreatedAt time.Time
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	// LockByID takes the per-user row lock; all balance mutations and the
	// daily-reward date check happen under it.
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*UserSnapshot, error)
	AddBalance(ctx context.Context, db db.DBTX, id uuid.UUID, delta int64) error
	SetLastDailyReward(ctx context.Context, db db.DBTX, id uuid.UUID, day time.Time) error
}

type CouponRepository interface {
	Create(ctx context.Context, db db.DBTX, c *coupon.Coupon) (uuid.UUID, error)
	// LockByID takes the per-coupon row lock serializing bid admission,
	// highest-bid updates and status transitions.
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*CouponSnapshot, error)
	// LockExpiredActive locks active coupons past expiry, skipping rows a
	// concurrent winner selection already holds.
	LockExpiredActive(ctx context.Context, db db.DBTX, now time.Time, limit int) ([]*CouponSnapshot, error)
	RaiseHighestBid(ctx context.Context, db db.DBTX, id uuid.UUID, amount int64, now time.Time) error
	MarkSold(ctx context.Context, db db.DBTX, id, winnerID uuid.UUID, now time.Time) error
	MarkExpired(ctx context.Context, db db.DBTX, id uuid.UUID, now time.Time) error
}

type BidRepository interface {
	Create(ctx context.Context, db db.DBTX, b *bid.Bid) (uuid.UUID, error)
	PendingByCoupon(ctx context.Context, db db.DBTX, couponID uuid.UUID) ([]*BidSnapshot, error)
	UpdateStatus(ctx context.Context, db db.DBTX, bidID uuid.UUID, status bid.Status) error
}

type LedgerRepository interface {
	// Append inserts the immutable transaction row; never updates in place.
	Append(ctx context.Context, db db.DBTX, t *ledger.Transaction) error
}

type NotificationRepository interface {
	Create(ctx context.Context, db db.DBTX, userID uuid.UUID, message string, now time.Time) error
}
