//go:build unit

package exchange_test

import (
	"testing"

	"couponbid/internal/domain/exchange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageByID(t *testing.T) {
	pkg, err := exchange.PackageByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(15), pkg.Price)
	assert.Equal(t, int64(500), pkg.Points)
	assert.True(t, pkg.Popular)

	pkg, err = exchange.PackageByID(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), pkg.Points)

	_, err = exchange.PackageByID(0)
	assert.ErrorIs(t, err, exchange.ErrUnknownPackage)
	_, err = exchange.PackageByID(5)
	assert.ErrorIs(t, err, exchange.ErrUnknownPackage)
}

func TestCatalogIsACopy(t *testing.T) {
	first := exchange.Catalog()
	first[0].Points = 999999

	fresh := exchange.Catalog()
	assert.Equal(t, int64(500), fresh[0].Points)
}

func TestRedemptionPayout(t *testing.T) {
	cases := []struct {
		name   string
		points int64
		payout int64
		errIs  error
	}{
		{name: "minimum redemption", points: 50, payout: 1},
		{name: "exact multiple", points: 250, payout: 5},
		{name: "large multiple", points: 10000, payout: 200},
		{name: "below minimum", points: 49, errIs: exchange.ErrBelowMinimum},
		{name: "zero", points: 0, errIs: exchange.ErrBelowMinimum},
		{name: "negative", points: -50, errIs: exchange.ErrBelowMinimum},
		{name: "not a multiple", points: 75, errIs: exchange.ErrNotMultiple},
		{name: "just over a multiple", points: 101, errIs: exchange.ErrNotMultiple},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payout, err := exchange.RedemptionPayout(tc.points)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.payout, payout)
		})
	}
}
