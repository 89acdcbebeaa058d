package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CouponView struct {
	ID                uuid.UUID  `json:"id"`
	SellerID          uuid.UUID  `json:"seller_id"`
	SellerName        string     `json:"seller_name"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	BasePrice         int64      `json:"base_price"`
	ExpiryDate        time.Time  `json:"expiry_date"`
	Status            string     `json:"status"`
	WinnerID          *uuid.UUID `json:"winner_id,omitempty"`
	CurrentHighestBid *int64     `json:"current_highest_bid,omitempty"`
	// SecretCode is populated only for the winner or the seller.
	SecretCode *string   `json:"secret_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CouponListItem struct {
	ID                uuid.UUID `json:"id"`
	SellerID          uuid.UUID `json:"seller_id"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	BasePrice         int64     `json:"base_price"`
	ExpiryDate        time.Time `json:"expiry_date"`
	Status            string    `json:"status"`
	CurrentHighestBid *int64    `json:"current_highest_bid,omitempty"`
	BidCount          int32     `json:"bid_count"`
}

type BidView struct {
	ID         uuid.UUID `json:"id"`
	CouponID   uuid.UUID `json:"coupon_id"`
	BidderID   uuid.UUID `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type WalletView struct {
	UserID       uuid.UUID          `json:"user_id"`
	Balance      int64              `json:"balance"`
	Transactions []*TransactionView `json:"transactions"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Balance         int64      `json:"balance"`
	LastDailyReward *time.Time `json:"last_daily_reward,omitempty"`
}

type ProfileView struct {
	User       *AuthorizedUserView `json:"user"`
	Bids       []*BidView          `json:"bids"`
	WonCoupons []*CouponView       `json:"won_coupons"`
	MyCoupons  []*CouponListItem   `json:"my_coupons"`
}
