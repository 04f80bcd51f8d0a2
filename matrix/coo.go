// SPDX-License-Identifier: MIT
// Package matrix: COO, a sparse complex matrix in coordinate form.
//
// Design:
//   - Cells are accumulated in a map keyed by the row-major offset, so repeated
//     (row, col) writes sum up (duplicate summation).
//   - Exports (Entries, Triplets, ToCDense) are row-major and deterministic.
//   - Operations return fresh matrices; receivers are never mutated except by Add
//     and the internal accumulate used by the converters.

package matrix

import (
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Entry is one stored cell.
type Entry struct {
	Row, Col int
	Value    complex128
}

// COO is a rows×cols sparse complex matrix.
type COO struct {
	rows, cols int
	cells      map[int64]complex128
}

// NewCOO allocates an empty rows×cols matrix.
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewCOO", ErrBadShape)
	}

	return newCOO(rows, cols, 0), nil
}

func newCOO(rows, cols, hint int) *COO {
	return &COO{rows: rows, cols: cols, cells: make(map[int64]complex128, hint)}
}

// Identity returns the n×n identity.
func Identity(n int) *COO {
	m := newCOO(n, n, n)
	for i := 0; i < n; i++ {
		m.cells[int64(i)*int64(n)+int64(i)] = 1
	}

	return m
}

func (m *COO) Rows() int { return m.rows }
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero cells.
func (m *COO) NNZ() int { return len(m.cells) }

func (m *COO) key(r, c int) int64 { return int64(r)*int64(m.cols) + int64(c) }

func (m *COO) split(k int64) (int, int) { return int(k / int64(m.cols)), int(k % int64(m.cols)) }

// Add accumulates v into cell (r, c); a sum of exactly zero removes the cell.
func (m *COO) Add(r, c int, v complex128) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return matrixErrorf("COO.Add", ErrOutOfRange)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return matrixErrorf("COO.Add", ErrNaNInf)
	}
	m.add(m.key(r, c), v)

	return nil
}

func (m *COO) add(k int64, v complex128) {
	if v == 0 {
		return
	}
	s := m.cells[k] + v
	if s == 0 {
		delete(m.cells, k)

		return
	}
	m.cells[k] = s
}

// At returns cell (r, c), zero when absent.
func (m *COO) At(r, c int) (complex128, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, matrixErrorf("COO.At", ErrOutOfRange)
	}

	return m.cells[m.key(r, c)], nil
}

// Entries returns the stored cells in row-major order.
func (m *COO) Entries() []Entry {
	keys := make([]int64, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]Entry, len(keys))
	for i, k := range keys {
		r, c := m.split(k)
		out[i] = Entry{Row: r, Col: c, Value: m.cells[k]}
	}

	return out
}

// Triplets returns parallel (row, col, value) slices in row-major order.
func (m *COO) Triplets() (rows, cols []int, vals []complex128) {
	es := m.Entries()
	rows, cols, vals = make([]int, len(es)), make([]int, len(es)), make([]complex128, len(es))
	for i, e := range es {
		rows[i], cols[i], vals[i] = e.Row, e.Col, e.Value
	}

	return rows, cols, vals
}

// ToCDense materializes m as a gonum dense complex matrix. Use for small sizes only.
func (m *COO) ToCDense() *mat.CDense {
	d := mat.NewCDense(max(m.rows, 1), max(m.cols, 1), nil)
	for k, v := range m.cells {
		r, c := m.split(k)
		d.Set(r, c, v)
	}

	return d
}

// Prune returns a copy without cells whose magnitude is ≤ eps.
func (m *COO) Prune(eps float64) *COO {
	out := newCOO(m.rows, m.cols, len(m.cells))
	for k, v := range m.cells {
		if cmplx.Abs(v) > eps {
			out.cells[k] = v
		}
	}

	return out
}

// Scale returns a·m.
func (m *COO) Scale(a complex128) *COO {
	out := newCOO(m.rows, m.cols, len(m.cells))
	if a == 0 {
		return out
	}
	for k, v := range m.cells {
		out.cells[k] = a * v
	}

	return out
}

// Plus returns m + n.
func (m *COO) Plus(n *COO) (*COO, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, matrixErrorf("COO.Plus", ErrDimensionMismatch)
	}
	out := newCOO(m.rows, m.cols, len(m.cells)+len(n.cells))
	for k, v := range m.cells {
		out.cells[k] = v
	}
	out.accumulate(n)

	return out, nil
}

// accumulate adds n into m in place; shapes must match.
func (m *COO) accumulate(n *COO) {
	for k, v := range n.cells {
		m.add(k, v)
	}
}

// Transpose returns mᵀ.
func (m *COO) Transpose() *COO {
	out := newCOO(m.cols, m.rows, len(m.cells))
	for k, v := range m.cells {
		r, c := m.split(k)
		out.cells[out.key(c, r)] = v
	}

	return out
}

// Conj returns the element-wise complex conjugate.
func (m *COO) Conj() *COO {
	out := newCOO(m.rows, m.cols, len(m.cells))
	for k, v := range m.cells {
		out.cells[k] = cmplx.Conj(v)
	}

	return out
}

// Adjoint returns m†.
func (m *COO) Adjoint() *COO { return m.Transpose().Conj() }

// Mul returns the matrix product m·n.
//
// Complexity: O(nnz(m) · average row fill of n).
func (m *COO) Mul(n *COO) (*COO, error) {
	if m.cols != n.rows {
		return nil, matrixErrorf("COO.Mul", ErrDimensionMismatch)
	}
	byRow := n.rowIndex()
	out := newCOO(m.rows, n.cols, len(m.cells))
	for k, a := range m.cells {
		r, mid := m.split(k)
		for _, e := range byRow[mid] {
			out.add(out.key(r, e.Col), a*e.Value)
		}
	}

	return out, nil
}

// rowIndex groups the cells of m by row.
func (m *COO) rowIndex() map[int][]Entry {
	idx := make(map[int][]Entry)
	for k, v := range m.cells {
		r, c := m.split(k)
		idx[r] = append(idx[r], Entry{Row: r, Col: c, Value: v})
	}

	return idx
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *COO) *COO {
	out := newCOO(a.rows*b.rows, a.cols*b.cols, len(a.cells)*len(b.cells))
	for ka, va := range a.cells {
		ra, ca := a.split(ka)
		for kb, vb := range b.cells {
			rb, cb := b.split(kb)
			out.add(out.key(ra*b.rows+rb, ca*b.cols+cb), va*vb)
		}
	}

	return out
}

// Trace returns Σ m[i,i] over the square part of m.
func (m *COO) Trace() complex128 {
	var t complex128
	for i := 0; i < min(m.rows, m.cols); i++ {
		t += m.cells[m.key(i, i)]
	}

	return t
}

// ApproxEqual reports whether m and n agree within tol in every cell.
func (m *COO) ApproxEqual(n *COO, tol float64) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for k, v := range m.cells {
		if cmplx.Abs(v-n.cells[k]) > tol {
			return false
		}
	}
	for k, v := range n.cells {
		if _, ok := m.cells[k]; !ok && cmplx.Abs(v) > tol {
			return false
		}
	}

	return true
}
