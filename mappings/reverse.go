package mappings

import (
	"fmt"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/fermions"
	"github.com/katalvlaran/qop/logger"
	"github.com/katalvlaran/qop/spins"
)

func pauliSum(terms ...core.Scaled[spins.PauliProduct]) *spins.PauliOperator {
	op := spins.NewPauliOperator(core.WithCapacity(len(terms)))
	for _, t := range terms {
		_ = op.AddTerm(t.Product, calc.FromComplex128(t.Factor))
	}

	return op
}

// zString returns Π_{k<j} Z_k as a single Pauli product.
func zString(j int) spins.PauliProduct {
	p := spins.NewPauliProduct()
	for k := 0; k < j; k++ {
		p = p.Z(k)
	}

	return p
}

// fermionSiteImage maps one symbol on mode j to spins.
func fermionSiteImage(j int, sym fermions.FermionSymbol) *spins.PauliOperator {
	switch sym {
	case fermions.FermionC, fermions.FermionA:
		// C_j ↦ S_j (X_j − iY_j)/2, A_j ↦ S_j (X_j + iY_j)/2
		y := complex(0, -0.5)
		if sym == fermions.FermionA {
			y = complex(0, 0.5)
		}
		s := zString(j)

		return pauliSum(
			core.Scaled[spins.PauliProduct]{Product: s.X(j), Factor: 0.5},
			core.Scaled[spins.PauliProduct]{Product: s.Y(j), Factor: y},
		)
	case fermions.FermionN:
		// N_j ↦ (I − Z_j)/2
		return pauliSum(
			core.Scaled[spins.PauliProduct]{Product: spins.NewPauliProduct(), Factor: 0.5},
			core.Scaled[spins.PauliProduct]{Product: spins.NewPauliProduct().Z(j), Factor: -0.5},
		)
	default:
		return pauliSum(core.Scaled[spins.PauliProduct]{Product: spins.NewPauliProduct(), Factor: 1})
	}
}

// FermionProductToSpin maps a fermion product to spins with the inverse
// Jordan-Wigner transform.
func FermionProductToSpin(p fermions.FermionProduct) *spins.PauliOperator {
	out := pauliSum(core.Scaled[spins.PauliProduct]{Product: spins.NewPauliProduct(), Factor: 1})
	for _, j := range p.Indices() {
		sym, _ := p.Get(j)
		out = core.Mul(out, fermionSiteImage(j, sym))
	}

	return out
}

// FermionOperatorToSpin maps a FermionOperator term by term.
func FermionOperatorToSpin(op *fermions.FermionOperator) *spins.PauliOperator {
	out := spins.NewPauliOperator(sameBound(op)...)
	for p, c := range op.All() {
		_ = out.Extend(FermionProductToSpin(p).Scale(c))
	}
	logger.Get().Debug().Int("fermion_terms", op.Len()).Int("spin_terms", out.Len()).Msg("jordan-wigner fermion to spin")

	return out
}

// FermionHamiltonianToSpin maps a FermionHamiltonian, including its h.c. terms, to a
// PauliHamiltonian. It fails with core.ErrNonHermitian if a Pauli coefficient keeps a
// non-zero imaginary part, which only symbolic coefficients can cause.
func FermionHamiltonianToSpin(h *fermions.FermionHamiltonian) (*spins.PauliHamiltonian, error) {
	op := FermionOperatorToSpin(fermions.HamiltonianToOperator(h))
	out := spins.NewPauliHamiltonian(append(sameBound(op), core.WithCapacity(op.Len()))...)
	for p, c := range op.All() {
		if err := out.AddTerm(p, c); err != nil {
			return nil, fmt.Errorf("FermionHamiltonianToSpin: %w", err)
		}
	}

	return out, nil
}
