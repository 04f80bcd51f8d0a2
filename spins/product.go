package spins

import (
	"fmt"

	"github.com/katalvlaran/qop/core"
)

// PauliProduct is a tensor product of Pauli operators on distinct spins, e.g. X₀Z₂.
// It is Hermitian by construction. The zero value is the identity.
type PauliProduct struct {
	s sites[SinglePauliOperator]
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// ParsePauliProduct parses a readable token such as "0X1Y3Z".
func ParsePauliProduct(token string) (PauliProduct, error) {
	s, err := parse(token, ParsePauli)
	if err != nil {
		return PauliProduct{}, fmt.Errorf("ParsePauliProduct: %w", err)
	}

	return PauliProduct{s: s}, nil
}

// Set returns a copy with op on spin index; PauliI removes the index.
// Panics on an index outside [0, core.MaxIndex].
func (p PauliProduct) Set(index int, op SinglePauliOperator) PauliProduct {
	return PauliProduct{s: p.s.with(index, op)}
}

func (p PauliProduct) X(index int) PauliProduct { return p.Set(index, PauliX) }
func (p PauliProduct) Y(index int) PauliProduct { return p.Set(index, PauliY) }
func (p PauliProduct) Z(index int) PauliProduct { return p.Set(index, PauliZ) }

// Get returns the operator on spin index, or (PauliI, false).
func (p PauliProduct) Get(index int) (SinglePauliOperator, bool) { return p.s.get(index) }

// Remove returns a copy without spin index.
func (p PauliProduct) Remove(index int) PauliProduct { return p.Set(index, PauliI) }

// Indices returns the spins acted on, ascending.
func (p PauliProduct) Indices() []int { return p.s.indices() }

func (p PauliProduct) Len() int                              { return len(p.s) }
func (p PauliProduct) IsEmpty() bool                         { return len(p.s) == 0 }
func (p PauliProduct) String() string                        { return p.s.String() }
func (p PauliProduct) Compare(other PauliProduct) int        { return p.s.compare(other.s) }
func (p PauliProduct) CurrentNumberModes() int               { return p.s.modes() }
func (p PauliProduct) NumberIndices() int                    { return len(p.s) }
func (p PauliProduct) Symbols() []core.IndexedSymbol         { return p.s.symbols() }
func (p PauliProduct) IsSelfAdjoint() bool                   { return true }
func (p PauliProduct) Conjugate() (PauliProduct, core.Phase) { return p, core.PhaseOne }

// Multiply returns the canonical product p·q and the accumulated phase.
func (p PauliProduct) Multiply(q PauliProduct) (PauliProduct, core.Phase) {
	s, phase := multiply(p.s, q.s, SinglePauliOperator.Multiply)

	return PauliProduct{s: s}, phase
}

// MulTerms implements core.Multiplicative; a Pauli product never vanishes.
func (p PauliProduct) MulTerms(q PauliProduct) []core.Scaled[PauliProduct] {
	r, phase := p.Multiply(q)

	return []core.Scaled[PauliProduct]{{Product: r, Factor: phase.Complex128()}}
}

// ToDecoherence rewrites p in the real basis: p = phase · d, one factor −i per Y.
func (p PauliProduct) ToDecoherence() (DecoherenceProduct, core.Phase) {
	out := make(sites[SingleDecoherenceOperator], len(p.s))
	phase := core.PhaseOne
	for i, e := range p.s {
		op, ph := e.op.toDecoherence()
		out[i] = site[SingleDecoherenceOperator]{index: e.index, op: op}
		phase = phase.Mul(ph)
	}

	return DecoherenceProduct{s: out}, phase
}

// DecoherenceProduct is a tensor product of the real operators X, iY, Z on distinct
// spins, the building block of Lindblad noise. The zero value is the identity.
type DecoherenceProduct struct {
	s sites[SingleDecoherenceOperator]
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// ParseDecoherenceProduct parses a readable token such as "0X1iY".
func ParseDecoherenceProduct(token string) (DecoherenceProduct, error) {
	s, err := parse(token, ParseDecoherence)
	if err != nil {
		return DecoherenceProduct{}, fmt.Errorf("ParseDecoherenceProduct: %w", err)
	}

	return DecoherenceProduct{s: s}, nil
}

// Set returns a copy with op on spin index; DecoherenceI removes the index.
func (d DecoherenceProduct) Set(index int, op SingleDecoherenceOperator) DecoherenceProduct {
	return DecoherenceProduct{s: d.s.with(index, op)}
}

func (d DecoherenceProduct) X(index int) DecoherenceProduct  { return d.Set(index, DecoherenceX) }
func (d DecoherenceProduct) IY(index int) DecoherenceProduct { return d.Set(index, DecoherenceIY) }
func (d DecoherenceProduct) Z(index int) DecoherenceProduct  { return d.Set(index, DecoherenceZ) }

// Get returns the operator on spin index, or (DecoherenceI, false).
func (d DecoherenceProduct) Get(index int) (SingleDecoherenceOperator, bool) { return d.s.get(index) }

// Remove returns a copy without spin index.
func (d DecoherenceProduct) Remove(index int) DecoherenceProduct { return d.Set(index, DecoherenceI) }

// Indices returns the spins acted on, ascending.
func (d DecoherenceProduct) Indices() []int { return d.s.indices() }

func (d DecoherenceProduct) Len() int                             { return len(d.s) }
func (d DecoherenceProduct) IsEmpty() bool                        { return len(d.s) == 0 }
func (d DecoherenceProduct) String() string                       { return d.s.String() }
func (d DecoherenceProduct) Compare(other DecoherenceProduct) int { return d.s.compare(other.s) }
func (d DecoherenceProduct) CurrentNumberModes() int              { return d.s.modes() }
func (d DecoherenceProduct) NumberIndices() int                   { return len(d.s) }
func (d DecoherenceProduct) Symbols() []core.IndexedSymbol        { return d.s.symbols() }

// Conjugate returns d itself with sign (−1)^k, k = number of iY factors.
func (d DecoherenceProduct) Conjugate() (DecoherenceProduct, core.Phase) {
	phase := core.PhaseOne
	for _, e := range d.s {
		phase = phase.Mul(e.op.conjugatePhase())
	}

	return d, phase
}

// Multiply returns the canonical product d·e and its real sign.
func (d DecoherenceProduct) Multiply(e DecoherenceProduct) (DecoherenceProduct, core.Phase) {
	s, phase := multiply(d.s, e.s, SingleDecoherenceOperator.Multiply)

	return DecoherenceProduct{s: s}, phase
}

// MulTerms implements core.Multiplicative.
func (d DecoherenceProduct) MulTerms(e DecoherenceProduct) []core.Scaled[DecoherenceProduct] {
	r, phase := d.Multiply(e)

	return []core.Scaled[DecoherenceProduct]{{Product: r, Factor: phase.Complex128()}}
}

// ToPauli rewrites d in the Hermitian basis: d = phase · p, one factor i per iY.
func (d DecoherenceProduct) ToPauli() (PauliProduct, core.Phase) {
	out := make(sites[SinglePauliOperator], len(d.s))
	phase := core.PhaseOne
	for i, e := range d.s {
		op, ph := e.op.toPauli()
		out[i] = site[SinglePauliOperator]{index: e.index, op: op}
		phase = phase.Mul(ph)
	}

	return PauliProduct{s: out}, phase
}
