//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"couponbid/internal/domain/bid"
	"couponbid/internal/pkg/clock"
	"couponbid/internal/usecase/commands"
	"couponbid/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newBidFixture(t *testing.T) (*fake.Store, commands.BidCommands, *clock.MockClock) {
	t.Helper()
	store := fake.NewStore()
	clk := clock.NewMockClock(testNow)
	return store, commands.NewBidUseCase(fake.NewUoW(store), clk), clk
}

func TestPlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("holds the bid amount and raises the highest bid", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 500)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		result, err := uc.PlaceBid(ctx, couponID, bidder, 150)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(350), store.Balance(bidder))
		assert.Equal(t, int64(-150), store.LedgerSum(bidder))

		placed := store.Bids[result.BidID]
		require.NotNil(t, placed)
		assert.Equal(t, bid.StatusPending, placed.Status)
		assert.Equal(t, int64(150), placed.Amount)

		cp := store.Coupons[couponID]
		require.NotNil(t, cp.CurrentHighestBid)
		assert.Equal(t, int64(150), *cp.CurrentHighestBid)

		assert.Len(t, store.NotificationsFor(seller), 1)
	})

	t.Run("cached balance tracks the ledger", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 1000)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		_, err := uc.PlaceBid(ctx, couponID, bidder, 100)
		require.NoError(t, err)
		_, err = uc.PlaceBid(ctx, couponID, bidder, 200)
		require.NoError(t, err)

		assert.Equal(t, int64(1000)+store.LedgerSum(bidder), store.Balance(bidder))
	})

	t.Run("unknown coupon", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		bidder := store.SeedUser("bidder", 500)

		_, err := uc.PlaceBid(ctx, uuid.New(), bidder, 100)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("expired coupon reports not active before other checks", func(t *testing.T) {
		store, uc, clk := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))
		clk.Set(testNow.Add(2 * time.Hour))

		// The seller bidding below price on an expired coupon still sees the
		// not-active error first.
		_, err := uc.PlaceBid(ctx, couponID, seller, 1)
		assert.ErrorIs(t, err, commands.ErrCouponNotActive)
	})

	t.Run("seller cannot bid on own coupon", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 500)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		// Reported before the too-low check.
		_, err := uc.PlaceBid(ctx, couponID, seller, 1)
		assert.ErrorIs(t, err, commands.ErrSellerCannotBid)
	})

	t.Run("bid below base price", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 500)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		_, err := uc.PlaceBid(ctx, couponID, bidder, 99)
		assert.ErrorIs(t, err, commands.ErrBidTooLow)
	})

	t.Run("bid at base price is accepted", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 500)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		_, err := uc.PlaceBid(ctx, couponID, bidder, 100)
		assert.NoError(t, err)
	})

	t.Run("bid below the current highest is still admitted", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		first := store.SeedUser("first", 500)
		second := store.SeedUser("second", 500)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		_, err := uc.PlaceBid(ctx, couponID, first, 200)
		require.NoError(t, err)

		// The base price is the only floor. The seller picks the winner, so
		// an offer under the running highest stays on the table.
		_, err = uc.PlaceBid(ctx, couponID, second, 150)
		assert.NoError(t, err)

		require.NotNil(t, store.Coupons[couponID].CurrentHighestBid)
		assert.Equal(t, int64(200), *store.Coupons[couponID].CurrentHighestBid)
		assert.Equal(t, int64(300), store.Balance(first))
		assert.Equal(t, int64(350), store.Balance(second))
		assert.Len(t, store.Bids, 2)
	})

	t.Run("insufficient balance leaves no trace", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 100)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		_, err := uc.PlaceBid(ctx, couponID, bidder, 150)
		assert.ErrorIs(t, err, commands.ErrInsufficientBalance)

		assert.Equal(t, int64(100), store.Balance(bidder))
		assert.Empty(t, store.Transactions)
		assert.Empty(t, store.Bids)
		assert.Nil(t, store.Coupons[couponID].CurrentHighestBid)
		assert.Empty(t, store.Notifications)
	})

	t.Run("concurrent bids never overdraw the bidder", func(t *testing.T) {
		store, uc, _ := newBidFixture(t)
		seller := store.SeedUser("seller", 0)
		bidder := store.SeedUser("bidder", 1000)
		couponID := store.SeedCoupon(seller, "pizza", 100, testNow.Add(time.Hour))

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			amount := int64(100 + i*50)
			go func() {
				defer wg.Done()
				_, _ = uc.PlaceBid(ctx, couponID, bidder, amount)
			}()
		}
		wg.Wait()

		assert.GreaterOrEqual(t, store.Balance(bidder), int64(0))
		assert.Equal(t, int64(1000)+store.LedgerSum(bidder), store.Balance(bidder))

		var held int64
		for _, b := range store.Bids {
			held += b.Amount
		}
		assert.Equal(t, -held, store.LedgerSum(bidder))
	})
}
