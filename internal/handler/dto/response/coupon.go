package response

import (
	"time"

	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID                uuid.UUID  `json:"id"`
	SellerID          uuid.UUID  `json:"sellerId"`
	SellerName        string     `json:"sellerName"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	BasePrice         int64      `json:"basePrice"`
	ExpiryDate        time.Time  `json:"expiryDate"`
	Status            string     `json:"status"`
	WinnerID          *uuid.UUID `json:"winnerId,omitempty"`
	CurrentHighestBid *int64     `json:"currentHighestBid,omitempty"`
	SecretCode        *string    `json:"secretCode,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CouponListResponse struct {
	ID                uuid.UUID `json:"id"`
	SellerID          uuid.UUID `json:"sellerId"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	BasePrice         int64     `json:"basePrice"`
	ExpiryDate        time.Time `json:"expiryDate"`
	Status            string    `json:"status"`
	CurrentHighestBid *int64    `json:"currentHighestBid,omitempty"`
	BidCount          int32     `json:"bidCount"`
}

type BidResponse struct {
	ID         uuid.UUID `json:"id"`
	CouponID   uuid.UUID `json:"couponId"`
	BidderID   uuid.UUID `json:"bidderId"`
	BidderName string    `json:"bidderName"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateCouponResponse struct {
	CouponID uuid.UUID `json:"couponId"`
}

type PlaceBidResponse struct {
	BidID uuid.UUID `json:"bidId"`
}

type SelectWinnerResponse struct {
	WinnerID      uuid.UUID `json:"winnerId"`
	WinningAmount int64     `json:"winningAmount"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponListItems(items []*queries.CouponListItem) []*CouponListResponse {
	out := make([]*CouponListResponse, 0, len(items))
	for _, item := range items {
		var resp CouponListResponse
		_ = copier.Copy(&resp, item)
		out = append(out, &resp)
	}
	return out
}

func FromBidViews(views []*queries.BidView) []*BidResponse {
	out := make([]*BidResponse, 0, len(views))
	for _, v := range views {
		var resp BidResponse
		_ = copier.Copy(&resp, v)
		out = append(out, &resp)
	}
	return out
}
