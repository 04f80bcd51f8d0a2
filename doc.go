// Package qop is an algebra engine for sparse quantum operators on spins, fermions
// and bosons: build operators from readable product tokens, combine them, map them
// between particle kinds and turn them into sparse matrices or Lindblad generators.
//
// What is inside?
//
//	calc/      — Float / Complex coefficients that are either numbers or symbolic expressions
//	core/      — generic containers: Operator[P], HermitianOperator[P], NoiseOperator[P],
//	             token grammar, Z4 phases, shared error set and options
//	spins/     — Pauli (X, Y, Z) and decoherence (X, iY, Z) products and operators
//	fermions/  — normal-ordered fermionic products with the CAR and Jordan-Wigner signs
//	bosons/    — normal-ordered bosonic products with the CCR
//	mappings/  — Jordan-Wigner transform in both directions, Hamiltonians and noise
//	matrix/    — sparse COO matrices, operator and super-operator conversion
//	serialize/ — versioned readable (JSON, YAML) and compact (msgpack) documents
//	config/    — viper-backed process configuration (schema version, limits, logging)
//	logger/    — zerolog setup
//
// Conventions:
//
//   - Mode j of a product acts on bit 1<<j of a basis state.
//   - Products apply their rightmost factor first.
//   - Matrices vectorize density matrices row-major: vec(AρB) = (A ⊗ Bᵀ)·vec(ρ).
//
// Quick example:
//
//	op := spins.NewPauliOperator()
//	_ = op.Set(spins.NewPauliProduct().X(0).Z(1), calc.NewComplex(0.5, 0))
//	m, _ := matrix.SparseOperator(op, 2) // 4×4, four stored entries
//
//	go get github.com/katalvlaran/qop
package qop
