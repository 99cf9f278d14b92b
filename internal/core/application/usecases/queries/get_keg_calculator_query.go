package queries

import (
	"errors"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var (
	ErrGetKegCalculatorQueryIsNotConstructed = errors.New(
		"GetKegCalculatorQuery must be created via NewGetKegCalculatorQuery constructor",
	)
)

// GetKegCalculatorQuery estimates the draft volume of an event and suggests
// the kegs of the fitting size. Ranges are enforced by the calculator.
type GetKegCalculatorQuery struct { //nolint:recvcheck //using for validation
	guests          int
	hours           int
	drinkersPercent int
	location        kernel.Location

	guard guard.ConstructorGuard
}

func NewGetKegCalculatorQuery(guests, hours, drinkersPercent int, location kernel.Location) (GetKegCalculatorQuery, error) {
	q := GetKegCalculatorQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setGuests(guests),
		q.setHours(hours),
		q.setDrinkersPercent(drinkersPercent),
		location.Validate(),
	); err != nil {
		return GetKegCalculatorQuery{}, err
	}
	q.location = location
	return q, nil
}

func (q GetKegCalculatorQuery) Validate() error {
	return q.guard.Validate(ErrGetKegCalculatorQueryIsNotConstructed)
}

func (q GetKegCalculatorQuery) Guests() int          { return q.guests }
func (q GetKegCalculatorQuery) Hours() int           { return q.hours }
func (q GetKegCalculatorQuery) DrinkersPercent() int { return q.drinkersPercent }

func (q GetKegCalculatorQuery) Location() kernel.Location {
	return q.location
}

func (q *GetKegCalculatorQuery) setGuests(guests int) error {
	if guests <= 0 {
		return errs.NewValueIsRequiredError("guests")
	}
	q.guests = guests
	return nil
}

func (q *GetKegCalculatorQuery) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsRequiredError("hours")
	}
	q.hours = hours
	return nil
}

func (q *GetKegCalculatorQuery) setDrinkersPercent(percent int) error {
	if percent <= 0 {
		return errs.NewValueIsRequiredError("drinkersPercent")
	}
	q.drinkersPercent = percent
	return nil
}

// GetKegCalculatorQueryResponse carries the estimate and the kegs of the
// recommended size priced for the query's store.
type GetKegCalculatorQueryResponse struct {
	Liters   int
	Category catalog.Category
	Kegs     []catalog.PricedProduct
}
