//go:build unit || e2e

package builder

import (
	"time"

	"couponbid/internal/domain/coupon"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Category    string
	BasePrice   int64
	ExpiryDate  time.Time
	SecretCode  string
	Now         time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		SellerID:    uuid.New(),
		Title:       "50% off pizza",
		Description: "Half price on any large pizza",
		Category:    "food",
		BasePrice:   100,
		ExpiryDate:  now.Add(72 * time.Hour),
		SecretCode:  "PIZZA-50",
		Now:         now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(
		b.SellerID,
		b.Title, b.Description, b.Category,
		b.BasePrice,
		b.ExpiryDate,
		b.SecretCode,
		b.Now,
	)
}
