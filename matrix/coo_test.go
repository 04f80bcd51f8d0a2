// SPDX-License-Identifier: MIT
// Package matrix_test covers the COO container: accumulation, exports and algebra.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/matrix"
)

func mustCOO(t *testing.T, rows, cols int, cells map[[2]int]complex128) *matrix.COO {
	t.Helper()
	m, err := matrix.NewCOO(rows, cols)
	require.NoError(t, err)
	for rc, v := range cells {
		require.NoError(t, m.Add(rc[0], rc[1], v))
	}

	return m
}

// TestCOO_AddAccumulates checks duplicate summation and zero removal.
func TestCOO_AddAccumulates(t *testing.T) {
	m := mustCOO(t, 2, 3, nil)
	require.NoError(t, m.Add(1, 2, 1+1i))
	require.NoError(t, m.Add(1, 2, 2))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3+1i, v)

	require.NoError(t, m.Add(1, 2, -3-1i))
	require.Equal(t, 0, m.NNZ())

	require.ErrorIs(t, m.Add(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, complex(0, math.Inf(1))), matrix.ErrNaNInf)
	_, err = m.At(5, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewCOO(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestCOO_EntriesRowMajor checks deterministic export order.
func TestCOO_EntriesRowMajor(t *testing.T) {
	m := mustCOO(t, 3, 3, map[[2]int]complex128{{2, 0}: 1, {0, 2}: 2, {0, 1}: 3, {1, 1}: 4})
	rows, cols, vals := m.Triplets()
	require.Equal(t, []int{0, 0, 1, 2}, rows)
	require.Equal(t, []int{1, 2, 1, 0}, cols)
	require.Equal(t, []complex128{3, 2, 4, 1}, vals)
	require.Equal(t, matrix.Entry{Row: 2, Col: 0, Value: 1}, m.Entries()[3])
}

// TestCOO_Algebra covers Mul, Kron, Transpose, Adjoint, Plus and Trace.
func TestCOO_Algebra(t *testing.T) {
	// σ⁺ = [[0, 1], [0, 0]]
	sp := mustCOO(t, 2, 2, map[[2]int]complex128{{0, 1}: 1})
	sm := sp.Transpose()

	n, err := sm.Mul(sp)
	require.NoError(t, err)
	require.True(t, n.ApproxEqual(mustCOO(t, 2, 2, map[[2]int]complex128{{1, 1}: 1}), 0))

	comm, err := sp.Mul(sm)
	require.NoError(t, err)
	comm, err = comm.Plus(n)
	require.NoError(t, err)
	require.True(t, comm.ApproxEqual(matrix.Identity(2), 0), "σ⁺σ⁻ + σ⁻σ⁺ = I")

	y := mustCOO(t, 2, 2, map[[2]int]complex128{{0, 1}: -1i, {1, 0}: 1i})
	require.True(t, y.Adjoint().ApproxEqual(y, 0), "Y is Hermitian")
	require.False(t, y.Transpose().ApproxEqual(y, 0))

	k := matrix.Kron(matrix.Identity(2), y)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())
	v, err := k.At(3, 2)
	require.NoError(t, err)
	require.Equal(t, 1i, v)
	require.Equal(t, complex128(4), matrix.Kron(matrix.Identity(2), matrix.Identity(2)).Trace())

	_, err = sp.Mul(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = sp.Plus(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCOO_PruneScaleDense covers the finishing helpers and the gonum export.
func TestCOO_PruneScaleDense(t *testing.T) {
	m := mustCOO(t, 2, 2, map[[2]int]complex128{{0, 0}: 1e-12, {1, 0}: 2})
	require.Equal(t, 1, m.Prune(1e-9).NNZ())
	require.Equal(t, 0, m.Scale(0).NNZ())

	v, err := m.Scale(1i).At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2i, v)

	d := m.ToCDense()
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, complex128(2), d.At(1, 0))
	require.Equal(t, m.Conj().ToCDense().At(1, 0), d.At(1, 0))
}
