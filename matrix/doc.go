// Package matrix converts operators into sparse complex matrices.
//
// The matrix package provides:
//
//   - COO, a sparse coordinate-format complex matrix with duplicate summation,
//     deterministic row-major export (Entries, Triplets) and the sparse algebra the
//     conversions need (Plus, Mul, Kron, Transpose, Conj, Adjoint, Scale).
//   - SparseOperator: 2^n×2^n matrix of a spin or fermion operator on n spins/modes.
//   - SparseSuperOperator: 4^n×4^n Lindblad generator of a noise operator.
//   - SparseCommutatorSuperOperator and SparseLindbladian for the coherent part.
//   - COO.ToCDense: gonum mat.CDense export for small systems and tests.
//
// Conversions never truncate: a mode count above the configured limit or below the
// modes an operator acts on fails with ErrDimensionMismatch, a bounded operator whose
// bound exceeds n fails with core.ErrIncompatibleOperands, and symbolic coefficients
// fail with calc.ErrSymbolic.
package matrix
