package exchange

import "errors"

var (
	ErrUnknownPackage = errors.New("unknown points package")
	ErrBelowMinimum   = errors.New("redemption below minimum")
	ErrNotMultiple    = errors.New("redemption must be a multiple of the conversion unit")
)

// RedemptionUnit is the fixed conversion rate: 50 points = 1 currency unit.
// Payouts are exact integer divisions; the rate never drifts with rounding.
const (
	RedemptionUnit       int64 = 50
	MinRedemptionPoints  int64 = 50
	DefaultDailyReward   int64 = 100
)

// Package maps a currency price to the points it grants. The catalog is
// fixed; purchases reference packages by id.
type Package struct {
	ID      int
	Price   int64 // external currency units
	Points  int64
	Popular bool
}

var catalog = []Package{
	{ID: 1, Price: 15, Points: 500, Popular: true},
	{ID: 2, Price: 30, Points: 1100},
	{ID: 3, Price: 50, Points: 2000},
	{ID: 4, Price: 100, Points: 4500},
}

func Catalog() []Package {
	out := make([]Package, len(catalog))
	copy(out, catalog)
	return out
}

func PackageByID(id int) (Package, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Package{}, ErrUnknownPackage
}

// RedemptionPayout validates the quantization rules and returns the currency
// payout for the given points. The balance check belongs to the caller.
func RedemptionPayout(points int64) (int64, error) {
	if points < MinRedemptionPoints {
		return 0, ErrBelowMinimum
	}
	if points%RedemptionUnit != 0 {
		return 0, ErrNotMultiple
	}
	return points / RedemptionUnit, nil
}
