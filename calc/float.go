package calc

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float is a real coefficient: either a float64 or a symbolic expression.
// The zero value is the number 0.
type Float struct {
	value  float64 // used when symbol == ""
	symbol string  // non-empty ⇒ symbolic
}

// NewFloat returns the numeric Float v.
func NewFloat(v float64) Float {
	return number(v)
}

// number builds a numeric Float, folding -0 into +0 so formatting stays stable.
func number(v float64) Float {
	if v == 0 {
		return Float{}
	}

	return Float{value: v}
}

// Symbol returns a symbolic Float. A finite decimal literal yields the numeric
// Float instead, so "0.5" and NewFloat(0.5) compare equal. Names such as "inf" or
// "nan" stay symbolic.
func Symbol(expr string) Float {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Float{}
	}
	if decimal(expr) {
		if v, err := strconv.ParseFloat(expr, 64); err == nil && !math.IsInf(v, 0) {
			return number(v)
		}
	}

	return Float{symbol: expr}
}

// decimal reports whether s only uses the characters of a decimal float literal.
func decimal(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '+' && r != '-' && r != 'e' && r != 'E'
	}) < 0
}

// IsSymbolic reports whether f holds a symbolic expression.
func (f Float) IsSymbolic() bool { return f.symbol != "" }

// IsZero reports whether f is exactly the numeric zero.
func (f Float) IsZero() bool { return f.symbol == "" && f.value == 0 }

// isNumber reports whether f is the numeric value v.
func (f Float) isNumber(v float64) bool { return f.symbol == "" && f.value == v }

// Float64 returns the numeric value or ErrSymbolic.
func (f Float) Float64() (float64, error) {
	if f.IsSymbolic() {
		return 0, ErrSymbolic
	}

	return f.value, nil
}

// Expr returns the symbolic text, or "" for numeric values.
func (f Float) Expr() string { return f.symbol }

// Add returns f + g.
func (f Float) Add(g Float) Float {
	switch {
	case !f.IsSymbolic() && !g.IsSymbolic():
		return number(f.value + g.value)
	case f.IsZero():
		return g
	case g.IsZero():
		return f
	case cancels(f, g):
		return Float{}
	}

	return Symbol("(" + f.String() + " + " + g.String() + ")")
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float {
	switch {
	case !f.IsSymbolic() && !g.IsSymbolic():
		return number(f.value - g.value)
	case g.IsZero():
		return f
	case f.IsZero():
		return g.Neg()
	case f.symbol == g.symbol:
		return Float{}
	}

	return Symbol("(" + f.String() + " - " + g.String() + ")")
}

// Mul returns f * g.
func (f Float) Mul(g Float) Float {
	switch {
	case !f.IsSymbolic() && !g.IsSymbolic():
		return number(f.value * g.value)
	case f.IsZero() || g.IsZero():
		return Float{}
	case f.isNumber(1):
		return g
	case g.isNumber(1):
		return f
	case f.isNumber(-1):
		return g.Neg()
	case g.isNumber(-1):
		return f.Neg()
	}

	return Symbol("(" + f.String() + " * " + g.String() + ")")
}

// Div returns f / g. A numeric zero divisor fails with ErrDivisionByZero.
func (f Float) Div(g Float) (Float, error) {
	switch {
	case g.IsZero():
		return Float{}, ErrDivisionByZero
	case !f.IsSymbolic() && !g.IsSymbolic():
		return number(f.value / g.value), nil
	case f.IsZero():
		return Float{}, nil
	case g.isNumber(1):
		return f, nil
	}

	return Symbol("(" + f.String() + " / " + g.String() + ")"), nil
}

// Neg returns -f. Negating a negation unwraps it.
func (f Float) Neg() Float {
	if !f.IsSymbolic() {
		return number(-f.value)
	}
	if inner, ok := negated(f.symbol); ok {
		return Symbol(inner)
	}

	return Float{symbol: "(-" + wrap(f.symbol) + ")"}
}

// Abs returns |f| for numbers; symbolic values are returned as "abs(expr)".
func (f Float) Abs() Float {
	if !f.IsSymbolic() {
		return Float{value: math.Abs(f.value)}
	}

	return Float{symbol: "abs(" + f.symbol + ")"}
}

// Equal reports exact equality: same number or identical symbolic text.
func (f Float) Equal(g Float) bool {
	if f.IsSymbolic() || g.IsSymbolic() {
		return f.symbol == g.symbol
	}

	return f.value == g.value
}

// ApproxEqual compares numeric values within an absolute or relative tolerance.
// Symbolic values fall back to Equal.
func (f Float) ApproxEqual(g Float, tol float64) bool {
	if f.IsSymbolic() || g.IsSymbolic() {
		return f.Equal(g)
	}

	return scalar.EqualWithinAbsOrRel(f.value, g.value, tol, tol)
}

// String formats numbers in shortest scientific notation ("5e-1", "1e0", "0e0")
// and returns symbolic text verbatim.
func (f Float) String() string {
	if f.IsSymbolic() {
		return f.symbol
	}

	return formatScientific(f.value)
}

// cancels reports whether f and g are a symbolic expression and its negation.
func cancels(f, g Float) bool {
	if !f.IsSymbolic() || !g.IsSymbolic() {
		return false
	}
	if inner, ok := negated(f.symbol); ok && inner == g.symbol {
		return true
	}
	if inner, ok := negated(g.symbol); ok && inner == f.symbol {
		return true
	}

	return false
}

// negated returns x when s has the form "(-x)" produced by Neg.
func negated(s string) (string, bool) {
	if !strings.HasPrefix(s, "(-") || !enclosed(s) {
		return "", false
	}
	inner := s[2 : len(s)-1]
	if !atomic(inner) && !enclosed(inner) {
		return "", false
	}

	return inner, true
}

// wrap parenthesises s unless it already binds tighter than any operator.
func wrap(s string) string {
	if atomic(s) || enclosed(s) {
		return s
	}

	return "(" + s + ")"
}

// atomic reports whether s is a bare identifier such as "theta" or "J_1".
func atomic(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '.' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// enclosed reports whether the first '(' of s is closed by its last byte.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}

	return depth == 0
}
