package bosons

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qop/core"
)

// BosonMode is the normal-ordered monomial b†^Creators b^Annihilators on one mode.
// The zero value is the identity.
type BosonMode struct {
	Creators     int
	Annihilators int
}

// IsIdentity reports whether m is b†⁰b⁰.
func (m BosonMode) IsIdentity() bool { return m.Creators == 0 && m.Annihilators == 0 }

// Adjoint returns b†^n b^m for b†^m b^n.
func (m BosonMode) Adjoint() BosonMode {
	return BosonMode{Creators: m.Annihilators, Annihilators: m.Creators}
}

// String returns the tag, "C" repeated Creators times then "A" repeated Annihilators
// times; "I" for the identity.
func (m BosonMode) String() string {
	if m.IsIdentity() {
		return core.IdentityToken
	}

	return strings.Repeat("C", m.Creators) + strings.Repeat("A", m.Annihilators)
}

// Compare orders by creators, then annihilators.
func (m BosonMode) Compare(o BosonMode) int {
	if c := cmp.Compare(m.Creators, o.Creators); c != 0 {
		return c
	}

	return cmp.Compare(m.Annihilators, o.Annihilators)
}

// ParseMode parses a tag of the form C*A* (or "I").
func ParseMode(tag string) (BosonMode, bool) {
	if tag == core.IdentityToken {
		return BosonMode{}, true
	}
	c := len(tag) - len(strings.TrimLeft(tag, "C"))
	rest := tag[c:]
	if strings.Trim(rest, "A") != "" || tag == "" {
		return BosonMode{}, false
	}

	return BosonMode{Creators: c, Annihilators: len(rest)}, true
}

// modeTerm is one summand of a same-mode product.
type modeTerm struct {
	mode  BosonMode
	coeff float64
}

// multiplyModes normal-orders b†^a b^b · b†^c b^d on one mode:
// Σ_k C(b,k)·C(c,k)·k! · b†^(a+c−k) b^(b+d−k).
func multiplyModes(l, r BosonMode) []modeTerm {
	kmax := min(l.Annihilators, r.Creators)
	out := make([]modeTerm, 0, kmax+1)
	for k := 0; k <= kmax; k++ {
		w := binomial(l.Annihilators, k) * binomial(r.Creators, k) * factorial(k)
		out = append(out, modeTerm{
			mode: BosonMode{
				Creators:     l.Creators + r.Creators - k,
				Annihilators: l.Annihilators + r.Annihilators - k,
			},
			coeff: w,
		})
	}

	return out
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}

	return r
}

func factorial(n int) float64 {
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}

	return r
}

type site struct {
	index int
	mode  BosonMode
}

// BosonProduct is a product of normal-ordered monomials on distinct modes, e.g.
// "0CCA2A" = b†₀² b₀ b₂. Modes commute with each other. The zero value is the identity.
type BosonProduct struct {
	s []site
}

// NewBosonProduct returns the identity product.
func NewBosonProduct() BosonProduct { return BosonProduct{} }

// ParseBosonProduct parses a readable token such as "0CA1AA".
func ParseBosonProduct(token string) (BosonProduct, error) {
	pairs, err := core.SplitToken(token)
	if err != nil {
		return BosonProduct{}, fmt.Errorf("ParseBosonProduct: %w", err)
	}
	out := make([]site, 0, len(pairs))
	for _, p := range pairs {
		m, ok := ParseMode(p.Tag)
		if !ok {
			return BosonProduct{}, fmt.Errorf("ParseBosonProduct: %w: %q: bad mode %q",
				core.ErrMalformedToken, token, p.Tag)
		}
		if !m.IsIdentity() {
			out = append(out, site{index: p.Index, mode: m})
		}
	}

	return BosonProduct{s: out}, nil
}

// FromLadder builds b†_{i₁}…b†_{iₖ} b_{j₁}…b_{jₗ} in normal-ordered canonical products.
func FromLadder(creators, annihilators []int) []core.Scaled[BosonProduct] {
	acc := []core.Scaled[BosonProduct]{{Product: BosonProduct{}, Factor: 1}}
	step := func(p BosonProduct) {
		var next []core.Scaled[BosonProduct]
		for _, a := range acc {
			for _, t := range a.Product.MulTerms(p) {
				next = append(next, core.Scaled[BosonProduct]{Product: t.Product, Factor: a.Factor * t.Factor})
			}
		}
		acc = next
	}
	for _, i := range creators {
		step(NewBosonProduct().Set(i, BosonMode{Creators: 1}))
	}
	for _, j := range annihilators {
		step(NewBosonProduct().Set(j, BosonMode{Annihilators: 1}))
	}

	return acc
}

func (p BosonProduct) find(index int) (int, bool) {
	return slices.BinarySearchFunc(p.s, index, func(e site, t int) int { return cmp.Compare(e.index, t) })
}

// Set returns a copy with m on mode index; the identity mode removes the index.
// Panics on an index outside [0, core.MaxIndex] or negative powers.
func (p BosonProduct) Set(index int, m BosonMode) BosonProduct {
	if !core.ValidIndex(index) || m.Creators < 0 || m.Annihilators < 0 {
		panic(fmt.Sprintf("bosons: invalid mode %d%s", index, m))
	}
	i, found := p.find(index)
	out := make([]site, 0, len(p.s)+1)
	out = append(out, p.s[:i]...)
	if !m.IsIdentity() {
		out = append(out, site{index: index, mode: m})
	}
	if found {
		i++
	}

	return BosonProduct{s: append(out, p.s[i:]...)}
}

// Get returns the monomial on mode index, or the identity and false.
func (p BosonProduct) Get(index int) (BosonMode, bool) {
	if i, ok := p.find(index); ok {
		return p.s[i].mode, true
	}

	return BosonMode{}, false
}

// Remove returns a copy without mode index.
func (p BosonProduct) Remove(index int) BosonProduct { return p.Set(index, BosonMode{}) }

// Indices returns the modes acted on, ascending.
func (p BosonProduct) Indices() []int {
	out := make([]int, len(p.s))
	for i, e := range p.s {
		out[i] = e.index
	}

	return out
}

func (p BosonProduct) Len() int           { return len(p.s) }
func (p BosonProduct) IsEmpty() bool      { return len(p.s) == 0 }
func (p BosonProduct) NumberIndices() int { return len(p.s) }

// CurrentNumberModes returns max index + 1, 0 for the identity.
func (p BosonProduct) CurrentNumberModes() int {
	if len(p.s) == 0 {
		return 0
	}

	return p.s[len(p.s)-1].index + 1
}

// String returns the readable token, "I" for the identity.
func (p BosonProduct) String() string {
	if len(p.s) == 0 {
		return core.IdentityToken
	}
	var b strings.Builder
	for _, e := range p.s {
		b.WriteString(strconv.Itoa(e.index))
		b.WriteString(e.mode.String())
	}

	return b.String()
}

// Symbols returns the (index, tag) pairs.
func (p BosonProduct) Symbols() []core.IndexedSymbol {
	out := make([]core.IndexedSymbol, len(p.s))
	for i, e := range p.s {
		out[i] = core.IndexedSymbol{Index: e.index, Tag: e.mode.String()}
	}

	return out
}

// Compare is lexicographic on (index, mode); a proper prefix sorts first.
func (p BosonProduct) Compare(other BosonProduct) int {
	for i := 0; i < len(p.s) && i < len(other.s); i++ {
		if c := cmp.Compare(p.s[i].index, other.s[i].index); c != 0 {
			return c
		}
		if c := p.s[i].mode.Compare(other.s[i].mode); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(p.s), len(other.s))
}

// Conjugate swaps creators and annihilators on every mode; no sign arises.
func (p BosonProduct) Conjugate() (BosonProduct, core.Phase) {
	out := make([]site, len(p.s))
	for i, e := range p.s {
		out[i] = site{index: e.index, mode: e.mode.Adjoint()}
	}

	return BosonProduct{s: out}, core.PhaseOne
}

type partial struct {
	s      []site
	factor float64
}

// MulTerms returns p·q as a sum of normal-ordered canonical products.
func (p BosonProduct) MulTerms(q BosonProduct) []core.Scaled[BosonProduct] {
	branches := []partial{{s: make([]site, 0, len(p.s)+len(q.s)), factor: 1}}
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
			terms := multiplyModes(p.s[i].mode, q.s[j].mode)
			next := make([]partial, 0, len(branches)*len(terms))
			for _, b := range branches {
				for _, t := range terms {
					s := slices.Clone(b.s)
					if !t.mode.IsIdentity() {
						s = append(s, site{index: index, mode: t.mode})
					}
					next = append(next, partial{s: s, factor: b.factor * t.coeff})
				}
			}
			branches = next
			i++
			j++
		}
	}
	out := make([]core.Scaled[BosonProduct], len(branches))
	for k, b := range branches {
		out[k] = core.Scaled[BosonProduct]{Product: BosonProduct{s: b.s}, Factor: complex(b.factor, 0)}
	}

	return out
}
