package fermions

import (
	"fmt"

	"github.com/katalvlaran/qop/core"
)

// HermitianFermionProduct is the Hamiltonian key of a fermion product P: the smaller of
// P and P† under Compare. It stands for c·P + conj(c)·P† unless P is self-adjoint
// (number operators only).
type HermitianFermionProduct struct {
	p FermionProduct
}

// NewHermitianFermionProduct returns the canonical key of {p, p†}. When the key is the
// conjugate, conjugated is true and phase satisfies p† = phase·key.Product().
func NewHermitianFermionProduct(p FermionProduct) (key HermitianFermionProduct, conjugated bool, phase core.Phase) {
	adj, ph := p.Conjugate()
	if adj.Compare(p) < 0 {
		return HermitianFermionProduct{p: adj}, true, ph
	}

	return HermitianFermionProduct{p: p}, false, core.PhaseOne
}

// ParseHermitianFermionProduct parses a token and rejects non-canonical keys.
func ParseHermitianFermionProduct(token string) (HermitianFermionProduct, error) {
	p, err := ParseFermionProduct(token)
	if err != nil {
		return HermitianFermionProduct{}, fmt.Errorf("ParseHermitianFermionProduct: %w", err)
	}
	h, conjugated, _ := NewHermitianFermionProduct(p)
	if conjugated {
		return HermitianFermionProduct{}, fmt.Errorf("ParseHermitianFermionProduct: %w: %q is not canonical, use %q",
			core.ErrMalformedToken, token, h.String())
	}

	return h, nil
}

// Product returns the stored fermion product.
func (h HermitianFermionProduct) Product() FermionProduct { return h.p }

func (h HermitianFermionProduct) String() string                { return h.p.String() }
func (h HermitianFermionProduct) CurrentNumberModes() int       { return h.p.CurrentNumberModes() }
func (h HermitianFermionProduct) NumberIndices() int            { return h.p.NumberIndices() }
func (h HermitianFermionProduct) Symbols() []core.IndexedSymbol { return h.p.Symbols() }

// Compare orders keys like their fermion products.
func (h HermitianFermionProduct) Compare(other HermitianFermionProduct) int {
	return h.p.Compare(other.p)
}

// Conjugate returns h itself: the key already denotes P + P†.
func (h HermitianFermionProduct) Conjugate() (HermitianFermionProduct, core.Phase) {
	return h, core.PhaseOne
}

// IsSelfAdjoint reports whether P = P†, i.e. P holds number operators only.
func (h HermitianFermionProduct) IsSelfAdjoint() bool { return h.p.oddCount() == 0 }
