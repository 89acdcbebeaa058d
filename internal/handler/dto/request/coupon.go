package request

import (
	"time"

	"couponbid/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	BasePrice   int64     `json:"base_price" binding:"required,gt=0"`
	ExpiryDate  time.Time `json:"expiry_date" binding:"required"`
	SecretCode  string    `json:"secret_code" binding:"required"`
}

func (r CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		BasePrice:   r.BasePrice,
		ExpiryDate:  r.ExpiryDate,
		SecretCode:  r.SecretCode,
	}
}

type PlaceBidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type SelectWinnerRequest struct {
	BidderID uuid.UUID `json:"bidder_id" binding:"required"`
}
