package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places kept for every monetary value.
const AmountPrecision = 2

// Amount is a monetary value rounded to cents. The zero value is 0.00.
type Amount struct {
	d decimal.Decimal
}

func newAmount(d decimal.Decimal) Amount {
	return Amount{d: d.Round(AmountPrecision)}
}

// NewAmount builds an Amount from a float literal. The float is rounded to
// cents once, here, and never used for arithmetic afterwards.
func NewAmount(v float64) Amount {
	return newAmount(decimal.NewFromFloat(v))
}

// AmountFromCents builds an Amount from an integer number of cents.
func AmountFromCents(cents int64) Amount {
	return newAmount(decimal.New(cents, -AmountPrecision))
}

// ParseAmount parses a decimal string such as "5.82".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	return newAmount(d), nil
}

// MustParseAmount is ParseAmount for constants and fixtures.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Times(n int) Amount {
	return newAmount(a.d.Mul(decimal.NewFromInt(int64(n))))
}

func (a Amount) Add(b Amount) Amount {
	return newAmount(a.d.Add(b.d))
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Cents returns the amount as an integer number of cents.
func (a Amount) Cents() int64 {
	return a.d.Shift(AmountPrecision).IntPart()
}

// Float64 is for display and metrics only.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// String always renders two decimals, e.g. "29.10".
func (a Amount) String() string {
	return a.d.StringFixed(AmountPrecision)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: invalid amount %s", ErrValidation, string(b))
	}
	*a = newAmount(d)
	return nil
}
