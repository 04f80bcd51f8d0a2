// SPDX-License-Identifier: MIT
// Package matrix: operator → sparse matrix and noise → sparse super-operator conversion.
//
// Conventions:
//   - Basis state s ∈ [0, 2^n) is the column index; spin/mode j is bit 1<<j of s.
//   - Entry (out, s) of a product matrix is the amplitude of ApplyToBasis(s).
//   - Density matrices ρ (d×d, d = 2^n) are vectorized row-major: vec(ρ)[i·d+j] = ρ[i,j],
//     so vec(AρB) = (A ⊗ Bᵀ)·vec(ρ).
//
// ERROR PRIORITY: n outside [0, maxModes] -> bound > n -> product beyond n -> symbolic coefficient.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/logger"
)

// BasisActor is a product with a finite computational-basis action.
type BasisActor interface {
	ApplyToBasis(state uint64) (out uint64, amplitude complex128, ok bool)
	CurrentNumberModes() int
}

// capacityHintCap limits the preallocation of accumulated matrices.
const capacityHintCap = 1 << 16

// ActingProduct is a canonical product that can be turned into a matrix.
type ActingProduct[P any] interface {
	core.Product[P]
	BasisActor
}

// bounded is the part of the operator containers the checks need.
type bounded interface {
	Bound() (int, bool)
	CurrentNumberModes() int
}

// checkModes validates n against the limit and the operator.
func checkModes(tag string, op bounded, n int, o Options) error {
	if n < 0 || n > o.maxModes {
		return matrixErrorf(tag, fmt.Errorf("%w: %d modes, limit %d", ErrDimensionMismatch, n, o.maxModes))
	}
	if b, ok := op.Bound(); ok && b > n {
		return matrixErrorf(tag, fmt.Errorf("%w: operator bound %d exceeds %d modes", core.ErrIncompatibleOperands, b, n))
	}
	if m := op.CurrentNumberModes(); m > n {
		return matrixErrorf(tag, fmt.Errorf("%w: operator acts on %d modes, matrix has %d", ErrDimensionMismatch, m, n))
	}

	return nil
}

// numeric converts a coefficient, rejecting symbols.
func numeric(tag string, c calc.Complex) (complex128, error) {
	z, err := c.Complex128()
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}

	return z, nil
}

// ProductMatrix returns the 2^n×2^n matrix of a single product.
//
// Errors: ErrDimensionMismatch when n is outside [0, MaxSupportedModes] or p acts beyond n.
func ProductMatrix(p BasisActor, n int) (*COO, error) {
	const tag = "ProductMatrix"
	if n < 0 || n > MaxSupportedModes {
		return nil, matrixErrorf(tag, fmt.Errorf("%w: %d modes, limit %d", ErrDimensionMismatch, n, MaxSupportedModes))
	}
	if m := p.CurrentNumberModes(); m > n {
		return nil, matrixErrorf(tag, fmt.Errorf("%w: product acts on %d modes, matrix has %d", ErrDimensionMismatch, m, n))
	}

	return productMatrix(p, n), nil
}

// productMatrix assumes n was validated against p.
func productMatrix(p BasisActor, n int) *COO {
	dim := 1 << uint(n)
	m := newCOO(dim, dim, dim)
	for s := 0; s < dim; s++ {
		if out, amp, ok := p.ApplyToBasis(uint64(s)); ok && amp != 0 {
			m.add(m.key(int(out), s), amp)
		}
	}

	return m
}

// SparseOperator converts op into its 2^n×2^n matrix on n spins or modes.
//
// Errors: ErrDimensionMismatch, core.ErrIncompatibleOperands, calc.ErrSymbolic.
func SparseOperator[P ActingProduct[P]](op *core.Operator[P], n int, opts ...Option) (*COO, error) {
	const tag = "SparseOperator"
	o := gatherOptions(opts...)
	if err := checkModes(tag, op, n, o); err != nil {
		return nil, err
	}
	dim := 1 << uint(n)
	out := newCOO(dim, dim, min(op.Len()*dim, dim*dim, capacityHintCap))
	for p, c := range op.All() {
		z, err := numeric(tag, c)
		if err != nil {
			return nil, err
		}
		for s := 0; s < dim; s++ {
			if to, amp, ok := p.ApplyToBasis(uint64(s)); ok {
				out.add(out.key(int(to), s), z*amp)
			}
		}
	}
	out = out.Prune(o.eps)
	logger.Get().Debug().Int("modes", n).Int("terms", op.Len()).Int("nnz", out.NNZ()).Msg("sparse operator")

	return out, nil
}

// SparseSuperOperator converts a Lindblad noise operator into its 4^n×4^n generator
//
//	Σ γ · ( L ⊗ conj(R) − ½ (R†L ⊗ I) − ½ (I ⊗ (R†L)ᵀ) )
//
// acting on row-major vectorized density matrices.
func SparseSuperOperator[P ActingProduct[P]](noise *core.NoiseOperator[P], n int, opts ...Option) (*COO, error) {
	const tag = "SparseSuperOperator"
	o := gatherOptions(opts...)
	if err := checkModes(tag, noise, n, o); err != nil {
		return nil, err
	}
	dim := 1 << uint(n)
	id := Identity(dim)
	acc := newCOO(dim*dim, dim*dim, 0)
	for pair, c := range noise.All() {
		gamma, err := numeric(tag, c)
		if err != nil {
			return nil, err
		}
		l := productMatrix(pair.Left, n)
		r := productMatrix(pair.Right, n)
		rl, err := r.Adjoint().Mul(l)
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
		acc.accumulate(Kron(l, r.Conj()).Scale(gamma))
		acc.accumulate(Kron(rl, id).Scale(-gamma / 2))
		acc.accumulate(Kron(id, rl.Transpose()).Scale(-gamma / 2))
	}
	acc = acc.Prune(o.eps)
	logger.Get().Debug().Int("modes", n).Int("terms", noise.Len()).Int("nnz", acc.NNZ()).Msg("sparse super-operator")

	return acc, nil
}

// SparseCommutatorSuperOperator returns −i(H ⊗ I − I ⊗ Hᵀ), the generator of
// dρ/dt = −i[H, ρ] on row-major vectorized density matrices.
func SparseCommutatorSuperOperator[P ActingProduct[P]](op *core.Operator[P], n int, opts ...Option) (*COO, error) {
	const tag = "SparseCommutatorSuperOperator"
	h, err := SparseOperator(op, n, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	id := Identity(h.Rows())
	out, err := Kron(h, id).Plus(Kron(id, h.Transpose()).Scale(-1))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out.Scale(-1i), nil
}

// SparseLindbladian returns the full generator −i[H, ·] + D of an open system.
func SparseLindbladian[P ActingProduct[P], Q ActingProduct[Q]](h *core.Operator[P], noise *core.NoiseOperator[Q], n int, opts ...Option) (*COO, error) {
	const tag = "SparseLindbladian"
	coherent, err := SparseCommutatorSuperOperator(h, n, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	dissipative, err := SparseSuperOperator(noise, n, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := coherent.Plus(dissipative)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}
