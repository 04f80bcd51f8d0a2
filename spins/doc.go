// Package spins implements the spin-½ product kinds and their operator containers.
//
// Two single-spin alphabets exist:
//
//   - SinglePauliOperator {I, X, Y, Z}: Hermitian. X·Y = iZ, Y·Z = iX, Z·X = iY, the
//     reversed orders give −i, every square is I.
//   - SingleDecoherenceOperator {I, X, iY, Z}: real. Products carry only a sign,
//     e.g. X·iY = −Z and iY·iY = −I.
//
// PauliProduct and DecoherenceProduct are immutable, sorted tensor products over
// distinct spin indices; the identity is never stored, so "0I1X" parses as "1X" and
// the empty product prints as "I". The two are related by the phase extraction
// DecoherenceProduct.ToPauli / PauliProduct.ToDecoherence (one i per Y).
//
// The containers are instantiations of the generic core types:
//
//	PauliOperator       = core.Operator[PauliProduct]
//	DecoherenceOperator = core.Operator[DecoherenceProduct]
//	PauliHamiltonian    = core.HermitianOperator[PauliProduct]
//	PauliNoiseOperator  = core.NoiseOperator[DecoherenceProduct]
//
// Example:
//
//	a := spins.NewDecoherenceOperator()
//	_ = a.Set(spins.NewDecoherenceProduct().Z(0), calc.NewComplex(2, 0))
//	b := spins.NewDecoherenceOperator()
//	_ = b.Set(spins.NewDecoherenceProduct().X(0), calc.NewComplex(0.5, 0))
//	core.Mul(a, b) // {0iY: 1}
//
// Both product kinds implement ApplyToBasis on the computational basis, spin i being
// bit 1<<i, for the sparse matrix conversion.
package spins
