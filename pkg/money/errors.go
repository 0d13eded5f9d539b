package money

import "errors"

// Common money package errors
var (
	// ErrPrecision is returned when decimal text carries more than Scale
	// fractional digits.
	ErrPrecision = errors.New("amount exceeds 4 fractional digits")

	// ErrOverflow is returned when a value or arithmetic result does not fit
	// the representable amount range.
	ErrOverflow = errors.New("amount overflows the representable range")
)
