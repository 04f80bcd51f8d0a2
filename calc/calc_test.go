// Package calc_test covers numeric and symbolic coefficient arithmetic.
package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/calc"
)

// TestFloat_String verifies the shortest scientific formatting.
func TestFloat_String(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "5e-1"},
		{0, "0e0"},
		{1, "1e0"},
		{-2.25, "-2.25e0"},
		{125, "1.25e2"},
		{1e-10, "1e-10"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, calc.NewFloat(tc.in).String())
	}
}

// TestFloat_NegativeZeroFolds checks -0 never leaks into formatting.
func TestFloat_NegativeZeroFolds(t *testing.T) {
	z := calc.NewFloat(0).Neg()
	require.True(t, z.IsZero())
	require.Equal(t, "0e0", z.String())
	require.Equal(t, "(5e-1 + i * 0e0)", calc.NewComplex(0.5, 0).Conj().String())
}

// TestFloat_SymbolicIdentities checks the folding rules that keep cancellation exact.
func TestFloat_SymbolicIdentities(t *testing.T) {
	theta := calc.Symbol("theta")
	zero := calc.NewFloat(0)
	one := calc.NewFloat(1)

	require.True(t, theta.IsSymbolic())
	require.False(t, theta.IsZero())
	require.True(t, zero.Add(theta).Equal(theta))
	require.True(t, theta.Sub(zero).Equal(theta))
	require.True(t, theta.Sub(theta).IsZero())
	require.True(t, theta.Add(theta.Neg()).IsZero())
	require.True(t, theta.Neg().Add(theta).IsZero())
	require.True(t, one.Mul(theta).Equal(theta))
	require.True(t, theta.Mul(zero).IsZero())
	require.True(t, theta.Neg().Neg().Equal(theta))
	require.Equal(t, "(-theta)", theta.Neg().String())
	require.Equal(t, "(theta + 2e0)", theta.Add(calc.NewFloat(2)).String())
	require.Equal(t, "(theta * 5e-1)", theta.Mul(calc.NewFloat(0.5)).String())

	sum := calc.Symbol("a + b")
	require.Equal(t, "(-(a + b))", sum.Neg().String())
	require.False(t, calc.Symbol("-a + b").Add(calc.Symbol("a + b")).IsZero())

	_, err := theta.Float64()
	require.ErrorIs(t, err, calc.ErrSymbolic)
}

// TestFloat_SymbolParsesNumbers checks numeric text becomes a number.
func TestFloat_SymbolParsesNumbers(t *testing.T) {
	require.True(t, calc.Symbol("0.5").Equal(calc.NewFloat(0.5)))
	require.False(t, calc.Symbol("0.5").IsSymbolic())
	require.True(t, calc.Symbol("  ").IsZero())
	require.True(t, calc.Symbol("-2.5e-3").Equal(calc.NewFloat(-2.5e-3)))

	for _, name := range []string{"inf", "Inf", "+Inf", "nan", "NaN", "Infinity", "0x1p-2", "1e999"} {
		f := calc.Symbol(name)
		require.True(t, f.IsSymbolic(), name)
		require.Equal(t, name, f.Expr())
	}
}

// TestFloat_Div checks division and the zero-divisor sentinel.
func TestFloat_Div(t *testing.T) {
	q, err := calc.NewFloat(1).Div(calc.NewFloat(4))
	require.NoError(t, err)
	require.True(t, q.Equal(calc.NewFloat(0.25)))

	_, err = calc.Symbol("x").Div(calc.NewFloat(0))
	require.ErrorIs(t, err, calc.ErrDivisionByZero)

	s, err := calc.Symbol("x").Div(calc.NewFloat(2))
	require.NoError(t, err)
	require.Equal(t, "(x / 2e0)", s.String())
}

// TestComplex_Arithmetic checks the complex product and conjugation.
func TestComplex_Arithmetic(t *testing.T) {
	a := calc.NewComplex(1, 2)
	b := calc.NewComplex(3, -1)

	require.True(t, a.Mul(b).Equal(calc.NewComplex(5, 5)))
	require.True(t, a.Add(b).Equal(calc.NewComplex(4, 1)))
	require.True(t, a.Sub(b).Equal(calc.NewComplex(-2, 3)))
	require.True(t, a.Conj().Equal(calc.NewComplex(1, -2)))
	require.True(t, a.Add(a.Neg()).IsZero())

	z, err := a.Complex128()
	require.NoError(t, err)
	require.Equal(t, complex(1, 2), z)

	require.Equal(t, "(5e-1 + i * 0e0)", calc.NewComplex(0.5, 0).String())
}

// TestComplex_Symbolic checks symbolic parts survive multiplication by phases.
func TestComplex_Symbolic(t *testing.T) {
	c := calc.FromFloat(calc.Symbol("g"))
	i := calc.NewComplex(0, 1)

	got := c.Mul(i)
	require.True(t, got.Real().IsZero())
	require.Equal(t, "g", got.Imag().String())
	require.True(t, c.IsSymbolic())

	_, err := c.Complex128()
	require.ErrorIs(t, err, calc.ErrSymbolic)
	require.True(t, c.Add(c.Neg()).IsZero())
}

// TestComplex_ApproxEqual checks the tolerant comparison.
func TestComplex_ApproxEqual(t *testing.T) {
	a := calc.NewComplex(0.1+0.2, 0)
	b := calc.NewComplex(0.3, 0)

	require.False(t, a.Equal(b))
	require.True(t, a.ApproxEqual(b, 1e-12))
}
