package spins

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qop/core"
)

// symbol is the single-spin operator kind of a product; the zero value is the identity.
type symbol interface {
	~uint8
	String() string
}

// site is one non-identity operator acting on spin index.
type site[S symbol] struct {
	index int
	op    S
}

// sites is a product body: strictly ascending indices, no identity entries.
// Values are never modified in place; every update copies.
type sites[S symbol] []site[S]

func (s sites[S]) find(index int) (int, bool) {
	return slices.BinarySearchFunc(s, index, func(e site[S], t int) int { return cmp.Compare(e.index, t) })
}

// with returns a copy with op at index; the identity removes the index.
func (s sites[S]) with(index int, op S) sites[S] {
	if !core.ValidIndex(index) {
		panic("spins: spin index out of range " + strconv.Itoa(index))
	}
	i, found := s.find(index)
	out := make(sites[S], 0, len(s)+1)
	out = append(out, s[:i]...)
	if op != 0 {
		out = append(out, site[S]{index: index, op: op})
	}
	if found {
		i++
	}

	return append(out, s[i:]...)
}

func (s sites[S]) get(index int) (S, bool) {
	if i, ok := s.find(index); ok {
		return s[i].op, true
	}

	return 0, false
}

func (s sites[S]) indices() []int {
	out := make([]int, len(s))
	for i, e := range s {
		out[i] = e.index
	}

	return out
}

func (s sites[S]) modes() int {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1].index + 1
}

func (s sites[S]) String() string {
	if len(s) == 0 {
		return core.IdentityToken
	}
	var b strings.Builder
	for _, e := range s {
		b.WriteString(strconv.Itoa(e.index))
		b.WriteString(e.op.String())
	}

	return b.String()
}

func (s sites[S]) symbols() []core.IndexedSymbol {
	out := make([]core.IndexedSymbol, len(s))
	for i, e := range s {
		out[i] = core.IndexedSymbol{Index: e.index, Tag: e.op.String()}
	}

	return out
}

// compare is lexicographic on (index, op); a proper prefix sorts first.
func (s sites[S]) compare(t sites[S]) int {
	for i := 0; i < len(s) && i < len(t); i++ {
		if c := cmp.Compare(s[i].index, t[i].index); c != 0 {
			return c
		}
		if c := cmp.Compare(s[i].op, t[i].op); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(s), len(t))
}

// multiply merges two bodies, combining shared indices through table.
func multiply[S symbol](a, b sites[S], table func(S, S) (S, core.Phase)) (sites[S], core.Phase) {
	out := make(sites[S], 0, len(a)+len(b))
	phase := core.PhaseOne
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index < b[j].index:
			out = append(out, a[i])
			i++
		case a[i].index > b[j].index:
			out = append(out, b[j])
			j++
		default:
			op, p := table(a[i].op, b[j].op)
			phase = phase.Mul(p)
			if op != 0 {
				out = append(out, site[S]{index: a[i].index, op: op})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...), phase
}

// parse builds a body from a readable token; identity tags are dropped.
func parse[S symbol](token string, lookup func(string) (S, bool)) (sites[S], error) {
	pairs, err := core.SplitToken(token)
	if err != nil {
		return nil, err
	}
	out := make(sites[S], 0, len(pairs))
	for _, p := range pairs {
		op, ok := lookup(p.Tag)
		if !ok {
			return nil, fmt.Errorf("%w: %q: unknown symbol %q", core.ErrMalformedToken, token, p.Tag)
		}
		if op != 0 {
			out = append(out, site[S]{index: p.Index, op: op})
		}
	}

	return out, nil
}
