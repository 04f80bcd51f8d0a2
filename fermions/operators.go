package fermions

import (
	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
)

// Display names of the fermion containers.
const (
	FermionOperatorName    = "FermionOperator"
	FermionHamiltonianName = "FermionHamiltonian"
	FermionNoiseName       = "FermionLindbladNoiseOperator"
)

type (
	// FermionOperator is a sum of fermion products with complex coefficients.
	FermionOperator = core.Operator[FermionProduct]
	// FermionHamiltonian is a Hermitian fermion operator keyed by canonical products.
	FermionHamiltonian = core.HermitianOperator[HermitianFermionProduct]
	// FermionNoiseOperator is a Lindblad noise operator over fermion products.
	FermionNoiseOperator = core.NoiseOperator[FermionProduct]
)

// NewFermionOperator returns an empty FermionOperator; pass core.WithBound for a system.
func NewFermionOperator(opts ...core.Option) *FermionOperator {
	return core.New[FermionProduct](append([]core.Option{core.WithName(FermionOperatorName)}, opts...)...)
}

// NewFermionHamiltonian returns an empty FermionHamiltonian.
func NewFermionHamiltonian(opts ...core.Option) *FermionHamiltonian {
	return core.NewHermitian[HermitianFermionProduct](append([]core.Option{core.WithName(FermionHamiltonianName)}, opts...)...)
}

// NewFermionNoiseOperator returns an empty FermionNoiseOperator.
func NewFermionNoiseOperator(opts ...core.Option) *FermionNoiseOperator {
	return core.NewNoise[FermionProduct](append([]core.Option{core.WithName(FermionNoiseName)}, opts...)...)
}

// HamiltonianToOperator writes h out with its Hermitian conjugate terms.
func HamiltonianToOperator(h *FermionHamiltonian) *FermionOperator {
	return core.Expand(h, HermitianFermionProduct.Product, core.WithName(FermionOperatorName))
}

// AddHermitianTerm adds c·p + h.c. to h for an arbitrary product p, storing it under the
// canonical key. For a self-adjoint p only the real part of c survives, doubled.
func AddHermitianTerm(h *FermionHamiltonian, p FermionProduct, c calc.Complex) error {
	key, conjugated, phase := NewHermitianFermionProduct(p)
	if key.IsSelfAdjoint() {
		return h.AddTerm(key, calc.FromFloat(c.Real().Add(c.Real())))
	}
	if conjugated {
		c = c.Conj().Mul(phase.Coefficient())
	}

	return h.AddTerm(key, c)
}
