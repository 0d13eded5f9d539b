// Package money provides the fixed-point monetary type used by the ledger.
//
// It is a value object representing a signed amount with four fractional
// decimal digits.
// Invariants:
//   - Amounts are stored as int64 counts of the minimal unit (1/10,000).
//   - Every amount is an exact multiple of the minimal unit; no floating-point
//     representation is used anywhere.
//   - Arithmetic never overflows silently.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional decimal digits an Amount carries.
const Scale = 4

// Amount is a signed fixed-point monetary value with Scale fractional digits.
// The zero value is zero money and ready to use.
type Amount struct {
	units int64
}

var maxUnits = decimal.NewFromInt(math.MaxInt64)

// Zero returns the zero Amount.
func Zero() Amount {
	return Amount{}
}

// FromUnits builds an Amount from a count of minimal (1/10,000) units.
// This is the hydration path for stores and tests; Parse is the boundary path.
func FromUnits(units int64) Amount {
	return Amount{units: units}
}

// Parse decodes decimal text such as "1.5" or "-0.0001" into an Amount.
//
// Text carrying more than Scale fractional digits is rejected with
// ErrPrecision, trailing zeros included: the ledger never rounds, so "1.00000"
// is refused rather than silently normalized. Values outside the representable
// range are rejected with ErrOverflow.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	if d.Exponent() < -Scale {
		return Amount{}, fmt.Errorf("%w: %q", ErrPrecision, s)
	}
	shifted := d.Shift(Scale)
	if shifted.Abs().GreaterThan(maxUnits) {
		return Amount{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Amount{units: shifted.IntPart()}, nil
}

// Units returns the amount as a count of minimal units.
func (a Amount) Units() int64 {
	return a.units
}

// Decimal returns the amount as an exact decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.units, -Scale)
}

// Add returns the sum of the two amounts.
// Invariants enforced:
//   - The result must fit the representable range; overflow returns ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a.units + b.units
	if (b.units > 0 && sum < a.units) || (b.units < 0 && sum > a.units) {
		return Amount{}, ErrOverflow
	}
	return Amount{units: sum}, nil
}

// Sub returns the difference of the two amounts. A negative result is not an
// error at this level; callers check sufficiency before subtracting.
// Invariants enforced:
//   - The result must fit the representable range; overflow returns ErrOverflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a.units - b.units
	if (b.units < 0 && diff < a.units) || (b.units > 0 && diff > a.units) {
		return Amount{}, ErrOverflow
	}
	return Amount{units: diff}, nil
}

// Cmp compares two amounts, returning -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether a is strictly smaller than b.
func (a Amount) LessThan(b Amount) bool {
	return a.units < b.units
}

// GreaterThan reports whether a is strictly larger than b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.units > b.units
}

// Equals reports whether the two amounts are equal.
func (a Amount) Equals(b Amount) bool {
	return a.units == b.units
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a.units > 0
}

// IsNegative reports whether the amount is less than zero.
func (a Amount) IsNegative() bool {
	return a.units < 0
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// String renders the amount with exactly Scale fractional digits, the form
// the balance report requires.
func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}
