package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money represents a monetary amount kept in integer cents.
// It is a value object used for writer pay components (base pay, bonus, penalty)
// and earnings totals. Keeping amounts in cents avoids floating point rounding
// in ledger arithmetic.
//
// The zero value is a valid amount of zero cents, so Money does not carry a
// constructor guard. Negative amounts are rejected by NewMoney: penalties are
// modelled as positive amounts subtracted explicitly by callers.
//
// Example usage:
//
//	base, _ := kernel.NewMoney(1500)
//	bonus, _ := kernel.NewMoney(250)
//	total := base.Add(bonus)
//	fmt.Println(total.String()) // "17.50"
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts, floored at zero.
// Ledger amounts never go negative; a penalty larger than the remaining pay
// zeroes the amount instead.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// A negative factor is treated as zero.
func (m Money) MulInt(factor int) Money {
	if factor <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(factor)}
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted as a decimal with two fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
