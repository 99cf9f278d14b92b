package kernel

import (
	"fmt"

	"taproom/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when a negative amount is supplied to a Money constructor.
var ErrMoneyIsNegative = errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("amount must not be negative"))

// Money is a non-negative amount in reais backed by an exact decimal.
//
// The zero value is R$ 0,00 and is valid. Prices, extras surcharges, freight
// and totals are all Money so that sums never accumulate floating point error.
//
// Example:
//
//	unit := kernel.Reais(16).Add(kernel.Reais(30)) // growler plus tonel
//	line := unit.Mul(2)
//	fmt.Println(line) // 92.00
type Money struct {
	amount decimal.Decimal
}

// Reais builds a whole-real amount. It cannot fail, which keeps catalog literals readable.
func Reais(units uint32) Money {
	return Money{amount: decimal.NewFromInt(int64(units))}
}

// NewMoney wraps a decimal amount, rejecting negatives.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// ParseMoney parses a decimal string such as "16" or "17.50".
func ParseMoney(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies by a quantity. Non-positive quantities yield zero.
func (m Money) Mul(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares by value, so 16 and 16.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places, e.g. "16.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
