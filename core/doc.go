// Package core provides the generic sparse operator containers shared by every
// particle kind (spins, fermions, bosons) and the arithmetic defined over them.
//
// An operator is a sparse sum of terms c·P where P is a canonical product key and
// c a calc.Complex coefficient. The containers are parameterized over the product
// type, so the combination rules live in one place:
//
//   - Operator[P]          – map product → coefficient.
//   - HermitianOperator[P] – Hamiltonian-class operator; every non-self-adjoint key
//     implicitly carries its Hermitian conjugate, self-adjoint keys need real coefficients.
//   - NoiseOperator[P]     – map (left, right) product pair → coefficient, one entry per
//     Lindblad dissipator L_left · ρ · L_right†.
//
// Invariants (enforced by every mutating call):
//
//   - No entry stores a coefficient that is exactly zero; merging two entries whose
//     sum is zero removes the key.
//   - A bounded container (WithBound, the "System" variant) rejects any product whose
//     CurrentNumberModes exceeds the bound with ErrCapacityViolation and is left unchanged.
//   - Iteration (Keys, Values, All, Items, String) follows the products' total order.
//
// Arithmetic is functional: Neg, Add, Sub, Scale, Mul, HermitianConjugate and
// SeparateIntoNTerms never modify their operands and always return fresh containers.
// Values carry no locks; independent operators may be combined from separate
// goroutines freely, while a single container must not be mutated concurrently.
//
// Options:
//
//	– WithCapacity(n) pre-sizes the term map.
//	– WithBound(n)    turns the container into a bounded System with n modes/spins.
//	– WithName(name)  sets the wrapper name used by String.
//
// Errors:
//
//	ErrCapacityViolation    – product index ≥ declared bound.
//	ErrIncompatibleOperands – operands or conversion targets do not fit together.
//	ErrMalformedToken       – readable product token could not be parsed.
//	ErrNonHermitian         – complex coefficient on a self-adjoint Hamiltonian key.
//	ErrInvalidLindbladTerm  – identity product used as a Lindblad operator.
package core
