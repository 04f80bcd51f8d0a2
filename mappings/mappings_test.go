// Package mappings_test checks the Jordan-Wigner transform against matrices: a spin
// operator and its fermionic image must act identically on the shared basis.
package mappings_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/fermions"
	"github.com/katalvlaran/qop/mappings"
	"github.com/katalvlaran/qop/matrix"
	"github.com/katalvlaran/qop/spins"
)

const (
	modes = 3
	tol   = 1e-12
)

func pauliOperator(t *testing.T, terms map[string]complex128) *spins.PauliOperator {
	t.Helper()
	op := spins.NewPauliOperator()
	for token, c := range terms {
		p, err := spins.ParsePauliProduct(token)
		require.NoError(t, err)
		require.NoError(t, op.AddTerm(p, calc.FromComplex128(c)))
	}

	return op
}

var spinCases = []map[string]complex128{
	{"0Z": 1},
	{"1X": 1},
	{"2Y": 1},
	{"0X1X": 0.5, "0Y1Y": 0.5},
	{"0X2Y": 1i, "1Z": -2, "I": 0.25},
	{"0Y1Z2X": 1 + 1i},
}

// TestJordanWigner_MatrixEquivalence compares the matrix of P with that of JW(P).
func TestJordanWigner_MatrixEquivalence(t *testing.T) {
	for _, terms := range spinCases {
		op := pauliOperator(t, terms)
		want, err := matrix.SparseOperator(op, modes)
		require.NoError(t, err)

		f := mappings.SpinOperatorToFermion(op)
		got, err := matrix.SparseOperator(f, modes)
		require.NoError(t, err)
		require.True(t, got.ApproxEqual(want, tol), "%v\n%s", terms, f)

		_, bounded := f.Bound()
		require.False(t, bounded)
	}
}

// TestJordanWigner_KeepsBound carries a declared mode count through both directions.
func TestJordanWigner_KeepsBound(t *testing.T) {
	op := spins.NewPauliOperator(core.WithBound(4))
	require.NoError(t, op.Set(spins.NewPauliProduct().X(0).Y(2), calc.NewComplex(0.5, 0)))

	f := mappings.SpinOperatorToFermion(op)
	n, bounded := f.Bound()
	require.True(t, bounded)
	require.Equal(t, 4, n)
	require.Equal(t, 4, f.NumberModes())

	back := mappings.FermionOperatorToSpin(f)
	n, bounded = back.Bound()
	require.True(t, bounded)
	require.Equal(t, 4, n)
	require.True(t, back.ApproxEqual(op, tol))

	h := spins.NewPauliHamiltonian(core.WithBound(3))
	require.NoError(t, h.Set(spins.NewPauliProduct().Z(1), calc.NewComplex(1, 0)))
	fh, err := mappings.SpinHamiltonianToFermion(h)
	require.NoError(t, err)
	n, bounded = fh.Bound()
	require.True(t, bounded)
	require.Equal(t, 3, n)

	noise := spins.NewPauliNoiseOperator(core.WithBound(2))
	x, err := spins.ParseDecoherenceProduct("1X")
	require.NoError(t, err)
	require.NoError(t, noise.Set(x, x, calc.NewComplex(0.1, 0)))
	mapped, coherent := mappings.SpinNoiseToFermion(noise)
	n, bounded = mapped.Bound()
	require.True(t, bounded)
	require.Equal(t, 2, n)
	_, bounded = coherent.Bound()
	require.True(t, bounded)
}

// TestJordanWigner_RoundTrip maps spins → fermions → spins.
func TestJordanWigner_RoundTrip(t *testing.T) {
	for _, terms := range spinCases {
		op := pauliOperator(t, terms)
		back := mappings.FermionOperatorToSpin(mappings.SpinOperatorToFermion(op))
		require.True(t, back.ApproxEqual(op, tol), "%v\n%s", terms, back)
	}
}

// TestJordanWigner_Images pins the single-site images.
func TestJordanWigner_Images(t *testing.T) {
	z := mappings.PauliProductToFermion(spins.NewPauliProduct().Z(0))
	require.Equal(t, 2, z.Len())
	require.True(t, z.Get(fermions.NewFermionProduct()).Equal(calc.NewComplex(1, 0)))
	require.True(t, z.Get(fermions.NewFermionProduct().N(0)).Equal(calc.NewComplex(-2, 0)))

	x := mappings.PauliProductToFermion(spins.NewPauliProduct().X(1))
	require.Equal(t, 4, x.Len())
	require.True(t, x.Get(fermions.NewFermionProduct().C(1)).Equal(calc.NewComplex(1, 0)))
	require.True(t, x.Get(fermions.NewFermionProduct().N(0).A(1)).Equal(calc.NewComplex(-2, 0)))

	iy := mappings.DecoherenceProductToFermion(spins.NewDecoherenceProduct().IY(0))
	require.True(t, iy.Get(fermions.NewFermionProduct().C(0)).Equal(calc.NewComplex(-1, 0)))
	require.True(t, iy.Get(fermions.NewFermionProduct().A(0)).Equal(calc.NewComplex(1, 0)))

	n := mappings.FermionProductToSpin(fermions.NewFermionProduct().N(2))
	require.True(t, n.Get(spins.NewPauliProduct()).Equal(calc.NewComplex(0.5, 0)))
	require.True(t, n.Get(spins.NewPauliProduct().Z(2)).Equal(calc.NewComplex(-0.5, 0)))
}

// TestFermionToSpin_MatrixEquivalence checks the inverse direction on hopping terms.
func TestFermionToSpin_MatrixEquivalence(t *testing.T) {
	f := fermions.NewFermionOperator()
	for _, p := range []fermions.FermionProduct{
		fermions.NewFermionProduct().C(0).A(2),
		fermions.NewFermionProduct().A(0).C(2),
		fermions.NewFermionProduct().C(0).C(1).A(2),
		fermions.NewFermionProduct().N(1),
	} {
		require.NoError(t, f.AddTerm(p, calc.NewComplex(0.5, -0.25)))
	}
	want, err := matrix.SparseOperator(f, modes)
	require.NoError(t, err)
	got, err := matrix.SparseOperator(mappings.FermionOperatorToSpin(f), modes)
	require.NoError(t, err)
	require.True(t, got.ApproxEqual(want, tol))
}

// TestHamiltonians checks the Hermitian containers survive both directions.
func TestHamiltonians(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	for token, c := range map[string]float64{"0X1X": 0.5, "0Y1Y": 0.5, "1Z": -1, "0Z2Z": 0.25} {
		p, err := spins.ParsePauliProduct(token)
		require.NoError(t, err)
		require.NoError(t, h.Set(p, calc.NewComplex(c, 0)))
	}

	fh, err := mappings.SpinHamiltonianToFermion(h)
	require.NoError(t, err)
	expanded := fermions.HamiltonianToOperator(fh)
	direct := mappings.SpinOperatorToFermion(spins.HamiltonianToOperator(h))
	require.True(t, expanded.ApproxEqual(direct, tol), "%s\n%s", expanded, direct)

	hop, err := fermions.ParseHermitianFermionProduct("0C1A")
	require.NoError(t, err)
	require.True(t, fh.Get(hop).ApproxEqual(calc.NewComplex(1, 0), tol), "XX+YY hopping")

	back, err := mappings.FermionHamiltonianToSpin(fh)
	require.NoError(t, err)
	require.True(t, back.ApproxEqual(h, tol), "%s", back)
}

// TestSpinNoiseToFermion checks mapped noise plus the coherent part reproduces the
// spin generator.
func TestSpinNoiseToFermion(t *testing.T) {
	cases := [][][2]string{
		{{"0Z", "0Z"}},
		{{"1X", "1X"}},
		{{"0X", "0iY"}, {"1iY", "1iY"}},
		{{"0Z1X", "2iY"}, {"2X", "0Z"}},
	}
	for _, pairs := range cases {
		spinNoise := spins.NewPauliNoiseOperator()
		for k, pr := range pairs {
			l, err := spins.ParseDecoherenceProduct(pr[0])
			require.NoError(t, err)
			r, err := spins.ParseDecoherenceProduct(pr[1])
			require.NoError(t, err)
			require.NoError(t, spinNoise.Set(l, r, calc.NewComplex(0.1*float64(k+1), 0.05)))
		}
		want, err := matrix.SparseSuperOperator(spinNoise, modes)
		require.NoError(t, err)

		mapped, coherent := mappings.SpinNoiseToFermion(spinNoise)
		got, err := matrix.SparseLindbladian(coherent, mapped, modes)
		require.NoError(t, err)
		require.True(t, got.ApproxEqual(want, 1e-10), "%v", pairs)
	}
}
