// SPDX-License-Identifier: MIT
// Package matrix_test verifies operator and noise conversion against hand-built matrices,
// the documented error priority and trace preservation of the Lindblad generator.

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/fermions"
	"github.com/katalvlaran/qop/matrix"
	"github.com/katalvlaran/qop/spins"
)

const tol = 1e-12

func pauliOperator(t *testing.T, terms map[string]complex128, opts ...core.Option) *spins.PauliOperator {
	t.Helper()
	op := spins.NewPauliOperator(opts...)
	for token, c := range terms {
		p, err := spins.ParsePauliProduct(token)
		require.NoError(t, err)
		require.NoError(t, op.Set(p, calc.FromComplex128(c)))
	}

	return op
}

func noise(t *testing.T, rates map[[2]string]complex128) *spins.PauliNoiseOperator {
	t.Helper()
	n := spins.NewPauliNoiseOperator()
	for pair, g := range rates {
		l, err := spins.ParseDecoherenceProduct(pair[0])
		require.NoError(t, err)
		r, err := spins.ParseDecoherenceProduct(pair[1])
		require.NoError(t, err)
		require.NoError(t, n.Set(l, r, calc.FromComplex128(g)))
	}

	return n
}

// TestProductMatrix_SingleSpin checks the 2×2 Pauli matrices.
func TestProductMatrix_SingleSpin(t *testing.T) {
	cases := map[string]map[[2]int]complex128{
		"0X": {{0, 1}: 1, {1, 0}: 1},
		"0Y": {{0, 1}: -1i, {1, 0}: 1i},
		"0Z": {{0, 0}: 1, {1, 1}: -1},
	}
	for token, want := range cases {
		p, err := spins.ParsePauliProduct(token)
		require.NoError(t, err)
		m, err := matrix.ProductMatrix(p, 1)
		require.NoError(t, err)
		require.True(t, m.ApproxEqual(mustCOO(t, 2, 2, want), 0), token)
	}

	_, err := matrix.ProductMatrix(spins.NewPauliProduct().X(1), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ProductMatrix(spins.NewPauliProduct(), matrix.MaxSupportedModes+1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSparseOperator_KroneckerOrder checks spin j is bit j: Z0 on two spins is I ⊗ Z.
func TestSparseOperator_KroneckerOrder(t *testing.T) {
	op := pauliOperator(t, map[string]complex128{"0Z": 0.5, "1X": 2})
	m, err := matrix.SparseOperator(op, 2)
	require.NoError(t, err)

	z := mustCOO(t, 2, 2, map[[2]int]complex128{{0, 0}: 1, {1, 1}: -1})
	x := mustCOO(t, 2, 2, map[[2]int]complex128{{0, 1}: 1, {1, 0}: 1})
	want, err := matrix.Kron(matrix.Identity(2), z).Scale(0.5).Plus(matrix.Kron(x, matrix.Identity(2)).Scale(2))
	require.NoError(t, err)
	require.True(t, m.ApproxEqual(want, tol))
	require.True(t, m.Adjoint().ApproxEqual(m, tol), "Hermitian input gives a Hermitian matrix")
}

// TestSparseOperator_ProductOfMatrices checks matrix(A·B) = matrix(A)·matrix(B).
func TestSparseOperator_ProductOfMatrices(t *testing.T) {
	a := pauliOperator(t, map[string]complex128{"0X1Y": 1, "2Z": 0.5i})
	b := pauliOperator(t, map[string]complex128{"0Y": 2, "1Y2X": -1})

	ma, err := matrix.SparseOperator(a, 3)
	require.NoError(t, err)
	mb, err := matrix.SparseOperator(b, 3)
	require.NoError(t, err)
	mab, err := matrix.SparseOperator(core.Mul(a, b), 3)
	require.NoError(t, err)
	prod, err := ma.Mul(mb)
	require.NoError(t, err)
	require.True(t, mab.ApproxEqual(prod, tol))
}

// TestSparseOperator_Fermions checks c†c = n and the Jordan-Wigner sign on mode 1.
func TestSparseOperator_Fermions(t *testing.T) {
	op := fermions.NewFermionOperator()
	require.NoError(t, op.Set(fermions.NewFermionProduct().C(1), calc.NewComplex(1, 0)))
	m, err := matrix.SparseOperator(op, 2)
	require.NoError(t, err)
	v, err := m.At(0b11, 0b01)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), v)
	v, err = m.At(0b10, 0b00)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)
	require.Equal(t, 2, m.NNZ())
}

// TestSparseOperator_ErrorPriority follows: mode count -> bound -> product range -> symbols.
func TestSparseOperator_ErrorPriority(t *testing.T) {
	symbolic := pauliOperator(t, map[string]complex128{"3X": 1}, core.WithBound(5))
	require.NoError(t, symbolic.Set(spins.NewPauliProduct().Z(0), calc.FromFloat(calc.Symbol("g"))))

	_, err := matrix.SparseOperator(symbolic, 6, matrix.WithMaxModes(4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SparseOperator(symbolic, -1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SparseOperator(symbolic, 3)
	require.ErrorIs(t, err, core.ErrIncompatibleOperands)

	free := pauliOperator(t, map[string]complex128{"3X": 1})
	require.NoError(t, free.Set(spins.NewPauliProduct().Z(0), calc.FromFloat(calc.Symbol("g"))))
	_, err = matrix.SparseOperator(free, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SparseOperator(free, 4)
	require.ErrorIs(t, err, calc.ErrSymbolic)
}

// TestSparseSuperOperator_Dephasing checks γ(ZρZ − ρ) damps coherences at rate 2γ.
func TestSparseSuperOperator_Dephasing(t *testing.T) {
	const gamma = 0.3
	g, err := matrix.SparseSuperOperator(noise(t, map[[2]string]complex128{{"0Z", "0Z"}: gamma}), 1)
	require.NoError(t, err)
	require.Equal(t, 4, g.Rows())

	// vec(ρ) = (ρ00, ρ01, ρ10, ρ11)
	for i, want := range []complex128{0, -2 * gamma, -2 * gamma, 0} {
		v, err := g.At(i, i)
		require.NoError(t, err)
		require.InDelta(t, real(want), real(v), tol)
	}
	require.Equal(t, 2, g.NNZ())
}

// TestSparseSuperOperator_TracePreserving checks Σ_k G[(k,k), c] = 0 for every column c,
// i.e. d/dt tr ρ = 0, for arbitrary (also non-Hermitian) pairs and complex rates.
func TestSparseSuperOperator_TracePreserving(t *testing.T) {
	n := noise(t, map[[2]string]complex128{
		{"0X", "0X"}:     0.1,
		{"0X", "1iY"}:    0.2 + 0.05i,
		{"0Z1X", "1Z"}:   0.3,
		{"1iY", "0iY1X"}: -0.4i,
	})
	h := pauliOperator(t, map[string]complex128{"0Z1Z": 1, "0X": 0.7})

	for name, build := range map[string]func() (*matrix.COO, error){
		"noise":       func() (*matrix.COO, error) { return matrix.SparseSuperOperator(n, 2) },
		"commutator":  func() (*matrix.COO, error) { return matrix.SparseCommutatorSuperOperator(h, 2) },
		"lindbladian": func() (*matrix.COO, error) { return matrix.SparseLindbladian(h, n, 2) },
	} {
		g, err := build()
		require.NoError(t, err, name)
		d := 4
		for col := 0; col < d*d; col++ {
			var sum complex128
			for k := 0; k < d; k++ {
				v, err := g.At(k*d+k, col)
				require.NoError(t, err)
				sum += v
			}
			require.Less(t, cmplx.Abs(sum), 1e-12, "%s column %d", name, col)
		}
	}
}

// TestSparseCommutator_Identity checks [I, ρ] = 0 and the −i(H⊗I − I⊗Hᵀ) layout.
func TestSparseCommutator_Identity(t *testing.T) {
	id := pauliOperator(t, map[string]complex128{"I": 3})
	g, err := matrix.SparseCommutatorSuperOperator(id, 2)
	require.NoError(t, err)
	require.Equal(t, 0, g.NNZ())

	x := pauliOperator(t, map[string]complex128{"0X": 1})
	g, err = matrix.SparseCommutatorSuperOperator(x, 1)
	require.NoError(t, err)
	// d(ρ01)/dt = −i(ρ11 − ρ00)
	v, err := g.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, complex128(-1i), v)
	v, err = g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1i), v)
}

// TestSparseSuperOperator_Errors keeps the operator checks for noise operators.
func TestSparseSuperOperator_Errors(t *testing.T) {
	n := noise(t, map[[2]string]complex128{{"2X", "2X"}: 1})
	_, err := matrix.SparseSuperOperator(n, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sym := spins.NewPauliNoiseOperator()
	x, err := spins.ParseDecoherenceProduct("0X")
	require.NoError(t, err)
	require.NoError(t, sym.Set(x, x, calc.FromFloat(calc.Symbol("gamma"))))
	_, err = matrix.SparseSuperOperator(sym, 1)
	require.ErrorIs(t, err, calc.ErrSymbolic)
}

// TestSparseOperator_ExtremeIndex keeps the dimension check for the largest mode index.
func TestSparseOperator_ExtremeIndex(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(core.MaxIndex), calc.NewComplex(1, 0)))
	require.Equal(t, core.MaxIndex+1, op.CurrentNumberModes())

	_, err := matrix.SparseOperator(op, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSparseOperator_OverlappingTerms converts many terms sharing the same cells
// without allocating per term and basis state.
func TestSparseOperator_OverlappingTerms(t *testing.T) {
	const spinCount = 10
	op := spins.NewPauliOperator()
	for mask := 1; mask < 1<<spinCount; mask++ {
		p := spins.NewPauliProduct()
		for j := 0; j < spinCount; j++ {
			if mask&(1<<j) != 0 {
				p = p.Z(j)
			}
		}
		require.NoError(t, op.Set(p, calc.NewComplex(1, 0)))
	}

	var m *matrix.COO
	allocs := testing.AllocsPerRun(1, func() {
		var err error
		m, err = matrix.SparseOperator(op, spinCount)
		require.NoError(t, err)
	})
	// Σ over all non-empty Z strings is 2^n|0⟩⟨0| − I on the diagonal.
	require.Equal(t, 1<<spinCount, m.NNZ())
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex(float64(1<<spinCount-1), 0), v)
	require.Less(t, allocs, float64(op.Len()))
}
