//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"couponbid/internal/domain/coupon"
	"couponbid/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, coupon.StatusActive, actual.Status())
		assert.Nil(t, actual.WinnerID())
		assert.Nil(t, actual.CurrentHighestBid())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.CouponBuilder) { b.Title = "  " },
				errIs:  coupon.ErrMissingField,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.CouponBuilder) { b.Description = "" },
				errIs:  coupon.ErrMissingField,
			},
			{
				name:   "empty secret code",
				mutate: func(b *builder.CouponBuilder) { b.SecretCode = "" },
				errIs:  coupon.ErrMissingField,
			},
			{
				name:   "zero base price",
				mutate: func(b *builder.CouponBuilder) { b.BasePrice = 0 },
				errIs:  coupon.ErrInvalidPrice,
			},
			{
				name:   "negative base price",
				mutate: func(b *builder.CouponBuilder) { b.BasePrice = -10 },
				errIs:  coupon.ErrInvalidPrice,
			},
			{
				name:   "expiry in the past",
				mutate: func(b *builder.CouponBuilder) { b.ExpiryDate = b.Now.Add(-time.Hour) },
				errIs:  coupon.ErrInvalidExpiry,
			},
			{
				name:   "expiry exactly now",
				mutate: func(b *builder.CouponBuilder) { b.ExpiryDate = b.Now },
				errIs:  coupon.ErrInvalidExpiry,
			},
			{
				name:   "minimum valid price",
				mutate: func(b *builder.CouponBuilder) { b.BasePrice = 1 },
			},
		})
	})
}

func TestCouponTransitions(t *testing.T) {
	newActive := func(t *testing.T) *coupon.Coupon {
		t.Helper()
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		return c
	}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("sell sets winner and sold status", func(t *testing.T) {
		c := newActive(t)
		winnerID := uuid.New()

		require.NoError(t, c.Sell(winnerID, now))
		assert.Equal(t, coupon.StatusSold, c.Status())
		require.NotNil(t, c.WinnerID())
		assert.Equal(t, winnerID, *c.WinnerID())
	})

	t.Run("sell twice fails", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Sell(uuid.New(), now))

		err := c.Sell(uuid.New(), now)
		assert.ErrorIs(t, err, coupon.ErrNotActive)
	})

	t.Run("expire an active coupon", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Expire(now))
		assert.Equal(t, coupon.StatusExpired, c.Status())
		assert.Nil(t, c.WinnerID())
	})

	t.Run("expire a sold coupon fails", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Sell(uuid.New(), now))
		assert.ErrorIs(t, c.Expire(now), coupon.ErrNotActive)
	})

	t.Run("sell an expired coupon fails", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Expire(now))
		assert.ErrorIs(t, c.Sell(uuid.New(), now), coupon.ErrNotActive)
	})
}

func TestCouponIsBiddable(t *testing.T) {
	b := builder.NewCouponBuilder()
	c, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, c.IsBiddable(b.Now))
	assert.True(t, c.IsBiddable(c.ExpiryDate().Add(-time.Second)))
	// At the expiry instant the coupon is no longer biddable.
	assert.False(t, c.IsBiddable(c.ExpiryDate()))
	assert.False(t, c.IsBiddable(c.ExpiryDate().Add(time.Hour)))

	require.NoError(t, c.Expire(b.Now))
	assert.False(t, c.IsBiddable(b.Now))
}

func TestCouponRecordBid(t *testing.T) {
	b := builder.NewCouponBuilder()
	c, err := b.BuildDomain()
	require.NoError(t, err)
	now := b.Now

	assert.True(t, c.RecordBid(150, now))
	require.NotNil(t, c.CurrentHighestBid())
	assert.Equal(t, int64(150), *c.CurrentHighestBid())

	// Lower or equal bids do not move the cache.
	assert.False(t, c.RecordBid(150, now))
	assert.False(t, c.RecordBid(120, now))
	assert.Equal(t, int64(150), *c.CurrentHighestBid())

	assert.True(t, c.RecordBid(200, now))
	assert.Equal(t, int64(200), *c.CurrentHighestBid())
}
