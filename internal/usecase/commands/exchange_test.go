//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"couponbid/internal/domain/exchange"
	"couponbid/internal/domain/ledger"
	"couponbid/internal/pkg/clock"
	"couponbid/internal/usecase/commands"
	"couponbid/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeFixture(t *testing.T) (*fake.Store, commands.ExchangeCommands, *clock.MockClock) {
	t.Helper()
	store := fake.NewStore()
	clk := clock.NewMockClock(testNow)
	return store, commands.NewExchangeUseCase(fake.NewUoW(store), clk, 0), clk
}

func TestPurchasePoints(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the package points", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 100)

		result, err := uc.PurchasePoints(ctx, alice, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1100), result.Points)
		assert.Equal(t, int64(30), result.Price)

		assert.Equal(t, int64(1200), store.Balance(alice))
		assert.Equal(t, int64(1100), store.LedgerSum(alice))
		require.Len(t, store.Transactions, 1)
		assert.Equal(t, ledger.KindPurchase, store.Transactions[0].Kind)
	})

	t.Run("unknown package", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 100)

		_, err := uc.PurchasePoints(ctx, alice, 9)
		assert.ErrorIs(t, err, commands.ErrUnknownPackage)
		assert.Equal(t, int64(100), store.Balance(alice))
	})
}

func TestRedeemPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("debits points and reports the payout", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 300)

		result, err := uc.RedeemPoints(ctx, alice, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(250), result.Points)
		assert.Equal(t, int64(5), result.Payout)

		assert.Equal(t, int64(50), store.Balance(alice))
		require.Len(t, store.Transactions, 1)
		assert.Equal(t, ledger.KindRedemption, store.Transactions[0].Kind)
		assert.Equal(t, int64(-250), store.Transactions[0].Amount)
	})

	t.Run("below the minimum", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 300)

		_, err := uc.RedeemPoints(ctx, alice, 49)
		assert.ErrorIs(t, err, commands.ErrInvalidRedemption)
		assert.ErrorIs(t, err, exchange.ErrBelowMinimum)
		assert.Equal(t, int64(300), store.Balance(alice))
	})

	t.Run("not a multiple of the unit", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 300)

		_, err := uc.RedeemPoints(ctx, alice, 75)
		assert.ErrorIs(t, err, commands.ErrInvalidRedemption)
		assert.ErrorIs(t, err, exchange.ErrNotMultiple)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 49)

		_, err := uc.RedeemPoints(ctx, alice, 50)
		assert.ErrorIs(t, err, commands.ErrInsufficientBalance)
		assert.Equal(t, int64(49), store.Balance(alice))
		assert.Empty(t, store.Transactions)
	})
}

func TestClaimDailyReward(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim of the day", func(t *testing.T) {
		store, uc, _ := newExchangeFixture(t)
		alice := store.SeedUser("alice", 0)

		granted, err := uc.ClaimDailyReward(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, exchange.DefaultDailyReward, granted)
		assert.Equal(t, exchange.DefaultDailyReward, store.Balance(alice))

		row := store.Users[alice]
		require.NotNil(t, row.LastDailyReward)
		assert.Equal(t, testNow.UTC(), row.LastDailyReward.UTC())
	})

	t.Run("second claim the same day is rejected", func(t *testing.T) {
		store, uc, clk := newExchangeFixture(t)
		alice := store.SeedUser("alice", 0)

		_, err := uc.ClaimDailyReward(ctx, alice)
		require.NoError(t, err)

		// Still the same UTC calendar day, just before midnight.
		clk.Set(time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC))
		_, err = uc.ClaimDailyReward(ctx, alice)
		assert.ErrorIs(t, err, commands.ErrRewardAlreadyClaimed)
		assert.Equal(t, exchange.DefaultDailyReward, store.Balance(alice))
	})

	t.Run("next calendar day succeeds", func(t *testing.T) {
		store, uc, clk := newExchangeFixture(t)
		alice := store.SeedUser("alice", 0)

		_, err := uc.ClaimDailyReward(ctx, alice)
		require.NoError(t, err)

		clk.Set(time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC))
		_, err = uc.ClaimDailyReward(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 2*exchange.DefaultDailyReward, store.Balance(alice))
	})

	t.Run("configured reward amount", func(t *testing.T) {
		store := fake.NewStore()
		uc := commands.NewExchangeUseCase(fake.NewUoW(store), clock.NewMockClock(testNow), 25)
		alice := store.SeedUser("alice", 0)

		granted, err := uc.ClaimDailyReward(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(25), granted)
		assert.Equal(t, int64(25), store.Balance(alice))
	})
}
