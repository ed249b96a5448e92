package kernel

import (
	"fmt"

	"restobot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for non-negative monetary amounts. It wraps
// shopspring/decimal so that totals are computed with exact decimal
// arithmetic instead of floats.
//
// The zero value is a valid zero amount, which makes Money safe to use as a
// running total:
//
//	var total kernel.Money
//	for _, item := range items {
//	    total = total.Add(item.LineTotal())
//	}
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount. Negative amounts are
// rejected because neither menu prices nor order totals may go below zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates a Money from a float64, e.g. a seed price like
// 12.99. Returns an error for negative values.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromString parses a Money from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "12.99".
// This method implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
