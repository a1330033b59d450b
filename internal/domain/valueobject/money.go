// Package valueobject defines immutable value types shared by the domain layer.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount as integer minor units (cents).
// The zero value is a valid amount of zero. All operations return new
// values; a Money is never mutated in place.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromDecimal creates a Money from a decimal amount, rounding
// half away from zero to the nearest cent.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Shift(2).Round(0).IntPart()}
}

// NewMoneyFromFloat creates a Money from a float amount, rounding half
// away from zero to the nearest cent.
func NewMoneyFromFloat(f float64) Money {
	return NewMoneyFromDecimal(decimal.NewFromFloat(f))
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as an exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m.cents < 0 {
		return Money{cents: -m.cents}
	}
	return m
}

// MulInt returns m multiplied by an integer factor.
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// Div splits the amount into n equal parts and returns the per-part
// amount, rounded half away from zero to the nearest cent. The rounding
// remainder is not redistributed: n parts of the result may differ from
// the original amount by up to n/2 cents. Callers that need an exact
// split must account for the drift themselves.
func (m Money) Div(n int64) Money {
	part := decimal.NewFromInt(m.cents).DivRound(decimal.NewFromInt(n), 0)
	return Money{cents: part.IntPart()}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	switch {
	case m.cents < other.cents:
		return -1
	case m.cents > other.cents:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a decimal string, e.g. "150.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal().StringFixed(2) + `"`), nil
}

// UnmarshalJSON decodes a decimal string or bare number into a Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = NewMoneyFromDecimal(d)
	return nil
}
