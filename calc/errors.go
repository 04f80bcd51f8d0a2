package calc

import "errors"

var (
	// ErrSymbolic is returned when a symbolic coefficient is used where a number is required
	// (sparse matrix conversion, float export).
	ErrSymbolic = errors.New("calc: symbolic value cannot be converted to a number")

	// ErrDivisionByZero is returned by Div for a numeric zero divisor.
	ErrDivisionByZero = errors.New("calc: division by zero")
)
