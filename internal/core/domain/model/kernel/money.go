package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
)

// Money represents an amount in whole currency units. Prices in the catalog
// and computed order totals never carry fractional units; any fractional
// intermediate result (style multipliers, loyalty discounts) is rounded
// half-up before it becomes a Money value.
type Money int64

// NewMoney creates a non-negative Money amount.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, errs.NewValueIsOutOfRangeError("money amount", amount, 0, int64(math.MaxInt64))
	}
	return Money(amount), nil
}

// RoundHalfUp converts a fractional amount to Money, rounding .5 away from
// zero toward positive infinity (commercial rounding).
func RoundHalfUp(amount float64) Money {
	return Money(math.Floor(amount + 0.5))
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return m * Money(quantity)
}

// Float64 returns the amount as a float for multiplier arithmetic.
func (m Money) Float64() float64 {
	return float64(m)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount as a plain integer.
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
