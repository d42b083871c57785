// Package money defines the exact-decimal amount type used across the
// teller core. Amounts are always held at 2-decimal precision; parsing
// rounds half-up (decimal.Round, half away from zero — inputs are
// positive at every call site, so the two coincide).
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFormat = fmt.Errorf("invalid amount format")
	ErrNonPositive   = fmt.Errorf("amount must be positive")
)

var hundred = decimal.NewFromInt(100)

// Amount is an exact monetary value at 2-decimal precision.
// The zero value is a valid 0.00 amount.
type Amount struct {
	d decimal.Decimal
}

// Parse validates and normalizes a raw amount string.
// Fails with ErrInvalidFormat when the input is not a decimal number and
// with ErrNonPositive when it parses to a value <= 0.
func Parse(raw string) (Amount, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	if d.Cmp(decimal.Zero) <= 0 {
		return Amount{}, ErrNonPositive
	}
	return Amount{d: d.Round(2)}, nil
}

// FromString converts an already-trusted decimal string (persisted state,
// constants) without the positivity check. Signed values are allowed.
func FromString(raw string) (Amount, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return Amount{d: d.Round(2)}, nil
}

// MustParse is FromString for package-level constants; panics on bad input.
func MustParse(raw string) Amount {
	a, err := FromString(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func Zero() Amount {
	return Amount{}
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Cmp returns -1, 0 or 1 comparing a against b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

func (a Amount) GreaterThan(b Amount) bool {
	return a.d.Cmp(b.d) > 0
}

func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsNoteMultiple reports whether the amount is an exact multiple of 100,
// the smallest note the cash dispenser holds.
func (a Amount) IsNoteMultiple() bool {
	return a.d.Mod(hundred).IsZero()
}

// String renders the amount with exactly two decimal places, e.g. "1234.50".
func (a Amount) String() string {
	return a.d.StringFixed(2)
}

// Equal reports exact equality at 2-decimal precision.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
