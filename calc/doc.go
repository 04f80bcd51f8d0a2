// Package calc provides the coefficient types used by every operator in this module.
//
// A coefficient is either a plain number or a free-form symbolic expression
// (a parameter name such as "theta" or an expression built from one). The
// package treats symbolic values as opaque text: arithmetic on them only
// builds a larger parenthesised expression, folding the identities that keep
// operator containers exact:
//
//   - 0 + x = x, x - 0 = x, x - x = 0, x + (-x) = 0
//   - 1 * x = x, 0 * x = 0, -1 * x = -x
//
// IsZero reports true only for the numeric zero. Symbolic expressions are never
// zero unless one of the folding rules above turned them into the number 0.
//
// Types:
//
//	Float   – real number or symbol.
//	Complex – pair of Float values (real, imaginary).
//
// Errors:
//
//	ErrSymbolic       – a numeric value was requested from a symbolic coefficient.
//	ErrDivisionByZero – Div was called with a numeric zero divisor.
package calc
