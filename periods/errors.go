package periods

import "errors"

var (
	// ErrInvalidPeriods indicates a run list that violates a PLC structural
	// invariant: empty list, value outside [0,1000), repeat < 1, adjacent
	// runs with equal values, or a non-canonical leading zero run.
	ErrInvalidPeriods = errors.New("periods: invalid period list")

	// ErrInvalidNotation indicates text that does not scan as "[vvv]{r}"
	// period-list notation.
	ErrInvalidNotation = errors.New("periods: invalid period-list notation")

	// ErrDigitRange indicates a digit outside [0, base) supplied to a
	// digit-occurrence counter.
	ErrDigitRange = errors.New("periods: digit out of range")

	// ErrBadBase indicates a base below 2 supplied to CountDigit.
	ErrBadBase = errors.New("periods: base must be at least 2")

	// ErrTooLarge indicates a Number too large to materialize densely.
	ErrTooLarge = errors.New("periods: number too large to materialize")
)
