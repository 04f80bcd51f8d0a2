package bosons

import (
	"fmt"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
)

// HermitianBosonProduct is the Hamiltonian key of P: the smaller of P and P†.
type HermitianBosonProduct struct {
	p BosonProduct
}

// NewHermitianBosonProduct returns the canonical key of {p, p†} and whether the key is p†.
func NewHermitianBosonProduct(p BosonProduct) (key HermitianBosonProduct, conjugated bool) {
	adj, _ := p.Conjugate()
	if adj.Compare(p) < 0 {
		return HermitianBosonProduct{p: adj}, true
	}

	return HermitianBosonProduct{p: p}, false
}

// ParseHermitianBosonProduct parses a token and rejects non-canonical keys.
func ParseHermitianBosonProduct(token string) (HermitianBosonProduct, error) {
	p, err := ParseBosonProduct(token)
	if err != nil {
		return HermitianBosonProduct{}, fmt.Errorf("ParseHermitianBosonProduct: %w", err)
	}
	h, conjugated := NewHermitianBosonProduct(p)
	if conjugated {
		return HermitianBosonProduct{}, fmt.Errorf("ParseHermitianBosonProduct: %w: %q is not canonical, use %q",
			core.ErrMalformedToken, token, h.String())
	}

	return h, nil
}

// Product returns the stored boson product.
func (h HermitianBosonProduct) Product() BosonProduct { return h.p }

func (h HermitianBosonProduct) String() string                { return h.p.String() }
func (h HermitianBosonProduct) CurrentNumberModes() int       { return h.p.CurrentNumberModes() }
func (h HermitianBosonProduct) NumberIndices() int            { return h.p.NumberIndices() }
func (h HermitianBosonProduct) Symbols() []core.IndexedSymbol { return h.p.Symbols() }

// Compare orders keys like their boson products.
func (h HermitianBosonProduct) Compare(other HermitianBosonProduct) int { return h.p.Compare(other.p) }

// Conjugate returns h itself.
func (h HermitianBosonProduct) Conjugate() (HermitianBosonProduct, core.Phase) {
	return h, core.PhaseOne
}

// IsSelfAdjoint reports whether every mode carries as many creators as annihilators.
func (h HermitianBosonProduct) IsSelfAdjoint() bool {
	for _, e := range h.p.s {
		if e.mode.Creators != e.mode.Annihilators {
			return false
		}
	}

	return true
}

// AddHermitianTerm adds c·p + h.c. to h under the canonical key of p.
func AddHermitianTerm(h *BosonHamiltonian, p BosonProduct, c calc.Complex) error {
	key, conjugated := NewHermitianBosonProduct(p)
	if key.IsSelfAdjoint() {
		return h.AddTerm(key, calc.FromFloat(c.Real().Add(c.Real())))
	}
	if conjugated {
		c = c.Conj()
	}

	return h.AddTerm(key, c)
}
