package bosons

import "github.com/katalvlaran/qop/core"

// Display names of the boson containers.
const (
	BosonOperatorName    = "BosonOperator"
	BosonHamiltonianName = "BosonHamiltonian"
	BosonNoiseName       = "BosonLindbladNoiseOperator"
)

type (
	// BosonOperator is a sum of boson products with complex coefficients.
	BosonOperator = core.Operator[BosonProduct]
	// BosonHamiltonian is a Hermitian boson operator keyed by canonical products.
	BosonHamiltonian = core.HermitianOperator[HermitianBosonProduct]
	// BosonNoiseOperator is a Lindblad noise operator over boson products.
	BosonNoiseOperator = core.NoiseOperator[BosonProduct]
)

// NewBosonOperator returns an empty BosonOperator; pass core.WithBound for a system.
func NewBosonOperator(opts ...core.Option) *BosonOperator {
	return core.New[BosonProduct](append([]core.Option{core.WithName(BosonOperatorName)}, opts...)...)
}

// NewBosonHamiltonian returns an empty BosonHamiltonian.
func NewBosonHamiltonian(opts ...core.Option) *BosonHamiltonian {
	return core.NewHermitian[HermitianBosonProduct](append([]core.Option{core.WithName(BosonHamiltonianName)}, opts...)...)
}

// NewBosonNoiseOperator returns an empty BosonNoiseOperator.
func NewBosonNoiseOperator(opts ...core.Option) *BosonNoiseOperator {
	return core.NewNoise[BosonProduct](append([]core.Option{core.WithName(BosonNoiseName)}, opts...)...)
}

// HamiltonianToOperator writes h out with its Hermitian conjugate terms.
func HamiltonianToOperator(h *BosonHamiltonian) *BosonOperator {
	return core.Expand(h, HermitianBosonProduct.Product, core.WithName(BosonOperatorName))
}
