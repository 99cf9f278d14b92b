package services

import (
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/pkg/errs"
)

const (
	minGuests          = 5
	maxGuests          = 200
	minHours           = 2
	maxHours           = 12
	minDrinkersPercent = 10
	maxDrinkersPercent = 100

	// guests × pct/100 × hours × 0.5 L == guests × pct × hours / 200
	litersDivisor  = 200
	smallKegLiters = 30
)

// KegEstimate is the calculator result.
type KegEstimate struct {
	Liters   int
	Category catalog.Category
}

// EstimateKeg computes how much draft an event needs and which keg size fits:
// ceil(guests × drinkersPercent/100 × hours × 0.5) liters, a 30 L keg up to
// 30 liters and a 50 L keg above.
func EstimateKeg(guests, hours, drinkersPercent int) (KegEstimate, error) {
	if guests < minGuests || guests > maxGuests {
		return KegEstimate{}, errs.NewValueIsOutOfRangeError("guests", guests, minGuests, maxGuests)
	}
	if hours < minHours || hours > maxHours {
		return KegEstimate{}, errs.NewValueIsOutOfRangeError("hours", hours, minHours, maxHours)
	}
	if drinkersPercent < minDrinkersPercent || drinkersPercent > maxDrinkersPercent {
		return KegEstimate{}, errs.NewValueIsOutOfRangeError("drinkersPercent", drinkersPercent,
			minDrinkersPercent, maxDrinkersPercent)
	}

	product := guests * drinkersPercent * hours
	liters := (product + litersDivisor - 1) / litersDivisor

	category := catalog.Keg50
	if liters <= smallKegLiters {
		category = catalog.Keg30
	}
	return KegEstimate{Liters: liters, Category: category}, nil
}
