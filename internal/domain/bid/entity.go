package bid

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("bid amount must be positive")
	ErrInvalidStatus = errors.New("invalid bid status")
	ErrNotPending    = errors.New("bid already resolved")
)

// Bid is immutable once placed, except for the pending→won/lost transition
// at auction resolution.
type Bid struct {
	id        uuid.UUID
	couponID  uuid.UUID
	bidderID  uuid.UUID
	amount    int64
	status    Status
	createdAt time.Time
}

func NewBid(couponID, bidderID uuid.UUID, amount int64, now time.Time) (*Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Bid{
		id:        uuid.New(),
		couponID:  couponID,
		bidderID:  bidderID,
		amount:    amount,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructBid(
	id, couponID, bidderID uuid.UUID,
	amount int64,
	status Status,
	createdAt time.Time,
) *Bid {
	return &Bid{
		id:        id,
		couponID:  couponID,
		bidderID:  bidderID,
		amount:    amount,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Bid) MarkWon() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusWon
	return nil
}

func (b *Bid) MarkLost() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusLost
	return nil
}

func (b *Bid) IsPending() bool {
	return b.status == StatusPending
}

func (b *Bid) ID() uuid.UUID        { return b.id }
func (b *Bid) CouponID() uuid.UUID  { return b.couponID }
func (b *Bid) BidderID() uuid.UUID  { return b.bidderID }
func (b *Bid) Amount() int64        { return b.amount }
func (b *Bid) Status() Status       { return b.status }
func (b *Bid) CreatedAt() time.Time { return b.createdAt }
