package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice   = errors.New("base price must be positive")
	ErrInvalidExpiry  = errors.New("expiry date must be in the future")
	ErrMissingField   = errors.New("title, description, category and code are required")
	ErrInvalidStatus  = errors.New("invalid coupon status")
	ErrNotActive      = errors.New("coupon is not active")
	ErrWinnerAlreadySet = errors.New("coupon winner already set")
)

// Coupon is the auctioned listing. Only transition methods mutate it: a
// coupon moves active→sold exactly once (winner selection) or active→expired
// (time sweep), never out of a terminal status.
type Coupon struct {
	id                uuid.UUID
	sellerID          uuid.UUID
	title             string
	description       string
	category          string
	basePrice         int64
	expiryDate        time.Time
	secretCode        string
	status            Status
	winnerID          *uuid.UUID
	currentHighestBid *int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCoupon(
	sellerID uuid.UUID,
	title, description, category string,
	basePrice int64,
	expiryDate time.Time,
	secretCode string,
	now time.Time,
) (*Coupon, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	secretCode = strings.TrimSpace(secretCode)

	if title == "" || description == "" || category == "" || secretCode == "" {
		return nil, ErrMissingField
	}
	if basePrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if !expiryDate.After(now) {
		return nil, ErrInvalidExpiry
	}

	return &Coupon{
		id:          uuid.New(),
		sellerID:    sellerID,
		title:       title,
		description: description,
		category:    category,
		basePrice:   basePrice,
		expiryDate:  expiryDate,
		secretCode:  secretCode,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCoupon(
	id, sellerID uuid.UUID,
	title, description, category string,
	basePrice int64,
	expiryDate time.Time,
	secretCode string,
	status Status,
	winnerID *uuid.UUID,
	currentHighestBid *int64,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:                id,
		sellerID:          sellerID,
		title:             title,
		description:       description,
		category:          category,
		basePrice:         basePrice,
		expiryDate:        expiryDate,
		secretCode:        secretCode,
		status:            status,
		winnerID:          winnerID,
		currentHighestBid: currentHighestBid,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// IsBiddable reports whether bids are admissible at the given instant.
// An active coupon past its expiry is no longer biddable even if the sweep
// has not transitioned it yet.
func (c *Coupon) IsBiddable(now time.Time) bool {
	return c.status == StatusActive && c.expiryDate.After(now)
}

func (c *Coupon) IsOwnedBy(userID uuid.UUID) bool {
	return c.sellerID == userID
}

// Sell transitions active→sold and sets the winner exactly once.
func (c *Coupon) Sell(winnerID uuid.UUID, now time.Time) error {
	if c.status != StatusActive {
		return ErrNotActive
	}
	if c.winnerID != nil {
		return ErrWinnerAlreadySet
	}
	c.status = StatusSold
	c.winnerID = &winnerID
	c.updatedAt = now
	return nil
}

// Expire transitions active→expired. No winner is set.
func (c *Coupon) Expire(now time.Time) error {
	if c.status != StatusActive {
		return ErrNotActive
	}
	c.status = StatusExpired
	c.updatedAt = now
	return nil
}

// RecordBid raises the cached highest bid. Returns true when the cache moved.
func (c *Coupon) RecordBid(amount int64, now time.Time) bool {
	if c.currentHighestBid == nil || amount > *c.currentHighestBid {
		c.currentHighestBid = &amount
		c.updatedAt = now
		return true
	}
	return false
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) SellerID() uuid.UUID       { return c.sellerID }
func (c *Coupon) Title() string             { return c.title }
func (c *Coupon) Description() string       { return c.description }
func (c *Coupon) Category() string          { return c.category }
func (c *Coupon) BasePrice() int64          { return c.basePrice }
func (c *Coupon) ExpiryDate() time.Time     { return c.expiryDate }
func (c *Coupon) SecretCode() string        { return c.secretCode }
func (c *Coupon) Status() Status            { return c.status }
func (c *Coupon) WinnerID() *uuid.UUID      { return c.winnerID }
func (c *Coupon) CurrentHighestBid() *int64 { return c.currentHighestBid }
func (c *Coupon) CreatedAt() time.Time      { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time      { return c.updatedAt }
