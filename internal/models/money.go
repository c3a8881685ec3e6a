package models

import (
	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount with cent precision.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{d: decimal.Zero}

// MustParseMoney parses a decimal literal such as "1.20" and panics on failure.
// It is meant for package-level tables and seed data.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return Money{d: d}
}

// ParseMoney parses a decimal literal such as "1.20".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d: d}, nil
}

// MoneyFromDecimal wraps a decimal read back from storage.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// Cents builds an amount from integer minor units.
func Cents(c int64) Money {
	return Money{d: decimal.New(c, -2)}
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

func (m Money) LessThan(o Money) bool { return m.d.LessThan(o.d) }
func (m Money) Equal(o Money) bool    { return m.d.Equal(o.d) }
func (m Money) IsZero() bool          { return m.d.IsZero() }
func (m Money) IsPositive() bool      { return m.d.IsPositive() }
func (m Money) IsNegative() bool      { return m.d.IsNegative() }

// Decimal exposes the underlying value for storage drivers.
func (m Money) Decimal() decimal.Decimal { return m.d }

// String formats the amount with exactly two decimals.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// MarshalJSON encodes the amount as a fixed two-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal values.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.d.UnmarshalJSON(b)
}
