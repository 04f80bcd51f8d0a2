package spins

import "github.com/katalvlaran/qop/core"

// Display names of the spin containers.
const (
	PauliOperatorName    = "PauliOperator"
	DecoherenceName      = "DecoherenceOperator"
	PauliHamiltonianName = "PauliHamiltonian"
	PauliNoiseName       = "PauliLindbladNoiseOperator"
)

type (
	// PauliOperator is a sum of Pauli products with complex coefficients.
	PauliOperator = core.Operator[PauliProduct]
	// DecoherenceOperator is a sum of decoherence products with complex coefficients.
	DecoherenceOperator = core.Operator[DecoherenceProduct]
	// PauliHamiltonian is a Hermitian spin operator; every coefficient is real.
	PauliHamiltonian = core.HermitianOperator[PauliProduct]
	// PauliNoiseOperator is a Lindblad noise operator over decoherence products.
	PauliNoiseOperator = core.NoiseOperator[DecoherenceProduct]
)

// NewPauliOperator returns an empty PauliOperator; pass core.WithBound for a spin system.
func NewPauliOperator(opts ...core.Option) *PauliOperator {
	return core.New[PauliProduct](append([]core.Option{core.WithName(PauliOperatorName)}, opts...)...)
}

// NewDecoherenceOperator returns an empty DecoherenceOperator.
func NewDecoherenceOperator(opts ...core.Option) *DecoherenceOperator {
	return core.New[DecoherenceProduct](append([]core.Option{core.WithName(DecoherenceName)}, opts...)...)
}

// NewPauliHamiltonian returns an empty PauliHamiltonian.
func NewPauliHamiltonian(opts ...core.Option) *PauliHamiltonian {
	return core.NewHermitian[PauliProduct](append([]core.Option{core.WithName(PauliHamiltonianName)}, opts...)...)
}

// NewPauliNoiseOperator returns an empty PauliNoiseOperator.
func NewPauliNoiseOperator(opts ...core.Option) *PauliNoiseOperator {
	return core.NewNoise[DecoherenceProduct](append([]core.Option{core.WithName(PauliNoiseName)}, opts...)...)
}

// HamiltonianToOperator writes h out as a PauliOperator. Pauli products are
// self-adjoint, so every key maps onto itself.
func HamiltonianToOperator(h *PauliHamiltonian) *PauliOperator {
	return core.Expand(h, func(p PauliProduct) PauliProduct { return p }, core.WithName(PauliOperatorName))
}

// ToDecoherenceOperator rewrites a PauliOperator over decoherence products.
func ToDecoherenceOperator(op *PauliOperator) *DecoherenceOperator {
	bound, bounded := op.Bound()
	opts := []core.Option{core.WithCapacity(op.Len())}
	if bounded {
		opts = append(opts, core.WithBound(bound))
	}
	out := NewDecoherenceOperator(opts...)
	for p, c := range op.All() {
		d, phase := p.ToDecoherence()
		// cannot fail: same indices, same bound
		_ = out.AddTerm(d, c.Mul(phase.Coefficient()))
	}

	return out
}

// ToPauliOperator rewrites a DecoherenceOperator over Pauli products.
func ToPauliOperator(op *DecoherenceOperator) *PauliOperator {
	bound, bounded := op.Bound()
	opts := []core.Option{core.WithCapacity(op.Len())}
	if bounded {
		opts = append(opts, core.WithBound(bound))
	}
	out := NewPauliOperator(opts...)
	for d, c := range op.All() {
		p, phase := d.ToPauli()
		_ = out.AddTerm(p, c.Mul(phase.Coefficient()))
	}

	return out
}
