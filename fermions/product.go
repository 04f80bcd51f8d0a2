package fermions

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qop/core"
)

// site is one non-identity symbol acting on mode index.
type site struct {
	index int
	sym   FermionSymbol
}

// FermionProduct is the ordered product op₀·op₁·… of single-mode symbols on distinct
// modes in ascending index order, e.g. "0C2A3N" = c†₀ c₂ n₃. The zero value is the identity.
type FermionProduct struct {
	s []site
}

// NewFermionProduct returns the identity product.
func NewFermionProduct() FermionProduct { return FermionProduct{} }

// ParseFermionProduct parses a readable token such as "0C1A2N".
func ParseFermionProduct(token string) (FermionProduct, error) {
	pairs, err := core.SplitToken(token)
	if err != nil {
		return FermionProduct{}, fmt.Errorf("ParseFermionProduct: %w", err)
	}
	out := make([]site, 0, len(pairs))
	for _, p := range pairs {
		sym, ok := ParseSymbol(p.Tag)
		if !ok {
			return FermionProduct{}, fmt.Errorf("ParseFermionProduct: %w: %q: unknown symbol %q",
				core.ErrMalformedToken, token, p.Tag)
		}
		if sym != FermionI {
			out = append(out, site{index: p.Index, sym: sym})
		}
	}

	return FermionProduct{s: out}, nil
}

// FromLadder builds the normal-ordered expansion of c†_{i₁}…c†_{iₖ} c_{j₁}…c_{jₗ}
// in canonical products. Repeated creators or annihilators make the result empty.
func FromLadder(creators, annihilators []int) []core.Scaled[FermionProduct] {
	acc := []core.Scaled[FermionProduct]{{Product: FermionProduct{}, Factor: 1}}
	step := func(p FermionProduct) {
		var next []core.Scaled[FermionProduct]
		for _, a := range acc {
			for _, t := range a.Product.MulTerms(p) {
				next = append(next, core.Scaled[FermionProduct]{Product: t.Product, Factor: a.Factor * t.Factor})
			}
		}
		acc = next
	}
	for _, i := range creators {
		step(NewFermionProduct().C(i))
	}
	for _, j := range annihilators {
		step(NewFermionProduct().A(j))
	}

	return acc
}

// Set returns a copy with sym on mode index; FermionI removes the index.
// Panics on an index outside [0, core.MaxIndex].
func (p FermionProduct) Set(index int, sym FermionSymbol) FermionProduct {
	if !core.ValidIndex(index) {
		panic("fermions: mode index out of range " + strconv.Itoa(index))
	}
	i, found := p.find(index)
	out := make([]site, 0, len(p.s)+1)
	out = append(out, p.s[:i]...)
	if sym != FermionI {
		out = append(out, site{index: index, sym: sym})
	}
	if found {
		i++
	}

	return FermionProduct{s: append(out, p.s[i:]...)}
}

func (p FermionProduct) C(index int) FermionProduct { return p.Set(index, FermionC) }
func (p FermionProduct) A(index int) FermionProduct { return p.Set(index, FermionA) }
func (p FermionProduct) N(index int) FermionProduct { return p.Set(index, FermionN) }

func (p FermionProduct) find(index int) (int, bool) {
	return slices.BinarySearchFunc(p.s, index, func(e site, t int) int { return cmp.Compare(e.index, t) })
}

// Get returns the symbol on mode index, or (FermionI, false).
func (p FermionProduct) Get(index int) (FermionSymbol, bool) {
	if i, ok := p.find(index); ok {
		return p.s[i].sym, true
	}

	return FermionI, false
}

// Remove returns a copy without mode index.
func (p FermionProduct) Remove(index int) FermionProduct { return p.Set(index, FermionI) }

// Indices returns the modes acted on, ascending.
func (p FermionProduct) Indices() []int {
	out := make([]int, len(p.s))
	for i, e := range p.s {
		out[i] = e.index
	}

	return out
}

// Creators returns the modes carrying c†, ascending.
func (p FermionProduct) Creators() []int { return p.withSymbol(FermionC) }

// Annihilators returns the modes carrying c, ascending.
func (p FermionProduct) Annihilators() []int { return p.withSymbol(FermionA) }

func (p FermionProduct) withSymbol(sym FermionSymbol) []int {
	var out []int
	for _, e := range p.s {
		if e.sym == sym {
			out = append(out, e.index)
		}
	}

	return out
}

func (p FermionProduct) Len() int           { return len(p.s) }
func (p FermionProduct) IsEmpty() bool      { return len(p.s) == 0 }
func (p FermionProduct) NumberIndices() int { return len(p.s) }

// CurrentNumberModes returns max index + 1, 0 for the identity.
func (p FermionProduct) CurrentNumberModes() int {
	if len(p.s) == 0 {
		return 0
	}

	return p.s[len(p.s)-1].index + 1
}

// String returns the readable token, "I" for the identity.
func (p FermionProduct) String() string {
	if len(p.s) == 0 {
		return core.IdentityToken
	}
	var b strings.Builder
	for _, e := range p.s {
		b.WriteString(strconv.Itoa(e.index))
		b.WriteString(e.sym.String())
	}

	return b.String()
}

// Symbols returns the (index, tag) pairs.
func (p FermionProduct) Symbols() []core.IndexedSymbol {
	out := make([]core.IndexedSymbol, len(p.s))
	for i, e := range p.s {
		out[i] = core.IndexedSymbol{Index: e.index, Tag: e.sym.String()}
	}

	return out
}

// Compare is lexicographic on (index, symbol); a proper prefix sorts first.
func (p FermionProduct) Compare(other FermionProduct) int {
	for i := 0; i < len(p.s) && i < len(other.s); i++ {
		if c := cmp.Compare(p.s[i].index, other.s[i].index); c != 0 {
			return c
		}
		if c := cmp.Compare(p.s[i].sym, other.s[i].sym); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(p.s), len(other.s))
}

// oddCount returns the number of creators and annihilators.
func (p FermionProduct) oddCount() int {
	m := 0
	for _, e := range p.s {
		if e.sym.odd() {
			m++
		}
	}

	return m
}

// Conjugate reverses the product and swaps c ↔ c†. Restoring ascending order moves
// m odd symbols past each other, which contributes (−1)^(m(m−1)/2).
func (p FermionProduct) Conjugate() (FermionProduct, core.Phase) {
	out := make([]site, len(p.s))
	for i, e := range p.s {
		out[i] = site{index: e.index, sym: e.sym.adjoint()}
	}
	m := p.oddCount()

	return FermionProduct{s: out}, core.Sign((m*(m-1)/2)%2 == 1)
}

// IsNumberConserving reports whether p has as many creators as annihilators.
func (p FermionProduct) IsNumberConserving() bool {
	return len(p.Creators()) == len(p.Annihilators())
}

// exchangeSign is (−1)^k with k the number of (odd left, odd right) pairs whose left
// index exceeds the right index, the transpositions needed to interleave p and q.
func exchangeSign(p, q FermionProduct) float64 {
	k, oddRight := 0, 0
	j := 0
	for _, l := range p.s {
		for j < len(q.s) && q.s[j].index < l.index {
			if q.s[j].sym.odd() {
				oddRight++
			}
			j++
		}
		if l.sym.odd() {
			k += oddRight
		}
	}
	if k%2 == 1 {
		return -1
	}

	return 1
}

// partial is one branch of a product expansion under construction.
type partial struct {
	s      []site
	factor float64
}

// MulTerms returns p·q as a sum of canonical products. Same-mode products that vanish
// drop the whole term; cc† = 1 − c†c doubles the branches.
func (p FermionProduct) MulTerms(q FermionProduct) []core.Scaled[FermionProduct] {
	branches := []partial{{s: make([]site, 0, len(p.s)+len(q.s)), factor: exchangeSign(p, q)}}
	appendAll := func(e site) {
		for i := range branches {
			branches[i].s = append(branches[i].s, e)
		}
	}
	i, j := 0, 0
	for i < len(p.s) || j < len(q.s) {
		switch {
		case j == len(q.s) || (i < len(p.s) && p.s[i].index < q.s[j].index):
			appendAll(p.s[i])
			i++
		case i == len(p.s) || q.s[j].index < p.s[i].index:
			appendAll(q.s[j])
			j++
		default:
			index := p.s[i].index
			terms := sameMode(p.s[i].sym, q.s[j].sym)
			if len(terms) == 0 {
				return nil
			}
			next := make([]partial, 0, len(branches)*len(terms))
			for _, b := range branches {
				for _, t := range terms {
					s := slices.Clone(b.s)
					if t.sym != FermionI {
						s = append(s, site{index: index, sym: t.sym})
					}
					next = append(next, partial{s: s, factor: b.factor * t.coeff})
				}
			}
			branches = next
			i++
			j++
		}
	}
	out := make([]core.Scaled[FermionProduct], len(branches))
	for k, b := range branches {
		out[k] = core.Scaled[FermionProduct]{Product: FermionProduct{s: b.s}, Factor: complex(b.factor, 0)}
	}

	return out
}
