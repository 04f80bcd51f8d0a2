package mappings

import (
	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/fermions"
	"github.com/katalvlaran/qop/logger"
	"github.com/katalvlaran/qop/spins"
)

// fermionTerm builds a single-term fermion operator c·p.
func fermionTerm(p fermions.FermionProduct, c complex128) *fermions.FermionOperator {
	op := fermions.NewFermionOperator(core.WithCapacity(1))
	_ = op.AddTerm(p, calc.FromComplex128(c))

	return op
}

// fermionSum builds Σ c_k·p_k.
func fermionSum(terms ...core.Scaled[fermions.FermionProduct]) *fermions.FermionOperator {
	op := fermions.NewFermionOperator(core.WithCapacity(len(terms)))
	for _, t := range terms {
		_ = op.AddTerm(t.Product, calc.FromComplex128(t.Factor))
	}

	return op
}

// parityString returns S_j = Π_{k<j} (I − 2N_k).
func parityString(j int) *fermions.FermionOperator {
	s := fermionTerm(fermions.NewFermionProduct(), 1)
	for k := 0; k < j; k++ {
		s = core.Mul(s, zImage(k))
	}

	return s
}

// zImage is Z_k ↦ I − 2N_k.
func zImage(k int) *fermions.FermionOperator {
	return fermionSum(
		core.Scaled[fermions.FermionProduct]{Product: fermions.NewFermionProduct(), Factor: 1},
		core.Scaled[fermions.FermionProduct]{Product: fermions.NewFermionProduct().N(k), Factor: -2},
	)
}

// ladderImage is S_j·(a·C_j + b·A_j).
func ladderImage(j int, a, b complex128) *fermions.FermionOperator {
	local := fermionSum(
		core.Scaled[fermions.FermionProduct]{Product: fermions.NewFermionProduct().C(j), Factor: a},
		core.Scaled[fermions.FermionProduct]{Product: fermions.NewFermionProduct().A(j), Factor: b},
	)

	return core.Mul(parityString(j), local)
}

func pauliImage(j int, op spins.SinglePauliOperator) *fermions.FermionOperator {
	switch op {
	case spins.PauliX:
		return ladderImage(j, 1, 1)
	case spins.PauliY:
		return ladderImage(j, 1i, -1i)
	case spins.PauliZ:
		return zImage(j)
	default:
		return fermionTerm(fermions.NewFermionProduct(), 1)
	}
}

func decoherenceImage(j int, op spins.SingleDecoherenceOperator) *fermions.FermionOperator {
	switch op {
	case spins.DecoherenceX:
		return ladderImage(j, 1, 1)
	case spins.DecoherenceIY:
		return ladderImage(j, -1, 1)
	case spins.DecoherenceZ:
		return zImage(j)
	default:
		return fermionTerm(fermions.NewFermionProduct(), 1)
	}
}

// PauliProductToFermion maps a Pauli product to fermions with the Jordan-Wigner
// transform: Z_j ↦ I − 2N_j, X_j ↦ S_j(C_j + A_j), Y_j ↦ i·S_j(C_j − A_j),
// S_j = Π_{k<j}(I − 2N_k). The result is unbounded.
func PauliProductToFermion(p spins.PauliProduct) *fermions.FermionOperator {
	out := fermionTerm(fermions.NewFermionProduct(), 1)
	for _, j := range p.Indices() {
		op, _ := p.Get(j)
		out = core.Mul(out, pauliImage(j, op))
	}

	return out
}

// DecoherenceProductToFermion maps a decoherence product; iY_j ↦ S_j(A_j − C_j).
func DecoherenceProductToFermion(d spins.DecoherenceProduct) *fermions.FermionOperator {
	out := fermionTerm(fermions.NewFermionProduct(), 1)
	for _, j := range d.Indices() {
		op, _ := d.Get(j)
		out = core.Mul(out, decoherenceImage(j, op))
	}

	return out
}

// sameBound carries the declared mode count of a bounded input to its image.
// Jordan-Wigner images never act beyond the highest mode of their source.
func sameBound(op interface{ Bound() (int, bool) }) []core.Option {
	if n, ok := op.Bound(); ok {
		return []core.Option{core.WithBound(n)}
	}

	return nil
}

// mapOperator accumulates Σ c·image(p).
func mapOperator[P core.Product[P]](op *core.Operator[P], image func(P) *fermions.FermionOperator) *fermions.FermionOperator {
	out := fermions.NewFermionOperator(sameBound(op)...)
	for p, c := range op.All() {
		// images stay within the bound: Extend cannot fail
		_ = out.Extend(image(p).Scale(c))
	}
	logger.Get().Debug().Int("spin_terms", op.Len()).Int("fermion_terms", out.Len()).Msg("jordan-wigner spin to fermion")

	return out
}

// SpinOperatorToFermion maps a PauliOperator term by term.
func SpinOperatorToFermion(op *spins.PauliOperator) *fermions.FermionOperator {
	return mapOperator(op, PauliProductToFermion)
}

// DecoherenceOperatorToFermion maps a DecoherenceOperator term by term.
func DecoherenceOperatorToFermion(op *spins.DecoherenceOperator) *fermions.FermionOperator {
	return mapOperator(op, DecoherenceProductToFermion)
}

// SpinHamiltonianToFermion maps a PauliHamiltonian to a FermionHamiltonian.
func SpinHamiltonianToFermion(h *spins.PauliHamiltonian) (*fermions.FermionHamiltonian, error) {
	return operatorToHamiltonian(SpinOperatorToFermion(spins.HamiltonianToOperator(h)))
}

// operatorToHamiltonian keeps the canonical half of a Hermitian fermion operator.
// Terms stored under a non-canonical product are the h.c. partners and are skipped.
func operatorToHamiltonian(op *fermions.FermionOperator) (*fermions.FermionHamiltonian, error) {
	h := fermions.NewFermionHamiltonian(sameBound(op)...)
	for p, c := range op.All() {
		key, conjugated, _ := fermions.NewHermitianFermionProduct(p)
		if conjugated {
			continue
		}
		if err := h.AddTerm(key, c); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// SpinNoiseToFermion maps a spin Lindblad noise operator. Dissipators are bilinear,
// so (L, R, γ) with images L = Σ a_k P_k and R = Σ b_l Q_l expands into entries
// (P_k, Q_l, γ·a_k·conj(b_l)).
//
// Images may contain the identity, which a noise operator cannot hold. Those parts
// are exactly a commutator and are returned as coherent, a fermion operator H such
// that the spin generator equals −i[H, ·] plus the returned noise.
func SpinNoiseToFermion(noise *spins.PauliNoiseOperator) (mapped *fermions.FermionNoiseOperator, coherent *fermions.FermionOperator) {
	mapped = fermions.NewFermionNoiseOperator(sameBound(noise)...)
	coherent = fermions.NewFermionOperator(sameBound(noise)...)
	half := calc.NewComplex(0, 0.5) // i/2
	for pair, gamma := range noise.All() {
		left := DecoherenceProductToFermion(pair.Left)
		right := DecoherenceProductToFermion(pair.Right)
		for p, a := range left.All() {
			for q, b := range right.All() {
				w := gamma.Mul(a).Mul(b.Conj())
				switch {
				case p.IsEmpty() && q.IsEmpty():
					// D[I, I] = 0
				case p.IsEmpty():
					// D[I, Q](ρ) = −½[Q†, ρ] ⇒ H −= (i/2)·w·Q†
					adj, phase := q.Conjugate()
					_ = coherent.AddTerm(adj, w.Mul(phase.Coefficient()).Mul(half).Neg())
				case q.IsEmpty():
					// D[P, I](ρ) = ½[P, ρ] ⇒ H += (i/2)·w·P
					_ = coherent.AddTerm(p, w.Mul(half))
				default:
					_ = mapped.AddTerm(p, q, w)
				}
			}
		}
	}
	logger.Get().Debug().Int("spin_terms", noise.Len()).Int("fermion_terms", mapped.Len()).
		Int("coherent_terms", coherent.Len()).Msg("jordan-wigner noise to fermion")

	return mapped, coherent
}
