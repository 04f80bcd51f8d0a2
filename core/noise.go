// File: noise.go
// Role: Lindblad noise container: (left, right) product pair → rate γ, one entry per
//       dissipator γ · (L ρ R† − ½ {R† L, ρ}).
// Determinism:
//   - Pairs iterate ordered by left product, then right product.
// AI-HINT (file):
//   - The identity product is rejected on either side with ErrInvalidLindbladTerm.
//   - The capacity bound applies to both sides.

package core

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/qop/calc"
)

// Pair is a (left, right) Lindblad operator pair.
type Pair[P any] struct {
	Left  P
	Right P
}

// NoiseItem is one (pair, rate) entry of an ordered export.
type NoiseItem[P any] struct {
	Left  P
	Right P
	Value calc.Complex
}

type pairKey struct{ left, right string }

type noiseEntry[P any] struct {
	left, right P
	value       calc.Complex
}

// NoiseOperator is a sparse sum of Lindblad dissipators indexed by product pairs.
type NoiseOperator[P Product[P]] struct {
	name    string
	bound   int
	bounded bool
	terms   map[pairKey]noiseEntry[P]
}

// NewNoise returns an empty noise operator configured by opts.
func NewNoise[P Product[P]](opts ...Option) *NoiseOperator[P] {
	s := gatherOptions(opts...)

	return &NoiseOperator[P]{
		name:    s.name,
		bound:   s.bound,
		bounded: s.bounded,
		terms:   make(map[pairKey]noiseEntry[P], s.capacity),
	}
}

// NoiseFromItems builds a noise operator by AddTerm-ing items in order.
func NoiseFromItems[P Product[P]](items []NoiseItem[P], opts ...Option) (*NoiseOperator[P], error) {
	n := NewNoise[P](append([]Option{WithCapacity(len(items))}, opts...)...)
	for _, it := range items {
		if err := n.AddTerm(it.Left, it.Right, it.Value); err != nil {
			return nil, fmt.Errorf("NoiseFromItems: %w", err)
		}
	}

	return n, nil
}

// validate rejects identity operators and products beyond the bound.
func (n *NoiseOperator[P]) validate(left, right P) error {
	if left.NumberIndices() == 0 || right.NumberIndices() == 0 {
		return fmt.Errorf("%w: (%s, %s)", ErrInvalidLindbladTerm, left.String(), right.String())
	}
	if need := maxModes(left, right); n.bounded && need > n.bound {
		return fmt.Errorf("%w: (%s, %s) needs %d modes, bound is %d",
			ErrCapacityViolation, left.String(), right.String(), need, n.bound)
	}

	return nil
}

// Set overwrites the rate of (left, right); zero removes the entry.
func (n *NoiseOperator[P]) Set(left, right P, c calc.Complex) error {
	if err := n.validate(left, right); err != nil {
		return fmt.Errorf("NoiseOperator.Set: %w", err)
	}
	key := pairKey{left.String(), right.String()}
	if c.IsZero() {
		delete(n.terms, key)

		return nil
	}
	n.terms[key] = noiseEntry[P]{left: left, right: right, value: c}

	return nil
}

// Get returns the rate of (left, right), zero if absent.
func (n *NoiseOperator[P]) Get(left, right P) calc.Complex {
	return n.terms[pairKey{left.String(), right.String()}].value
}

// AddTerm merge-adds c to the rate of (left, right).
func (n *NoiseOperator[P]) AddTerm(left, right P, c calc.Complex) error {
	if err := n.validate(left, right); err != nil {
		return fmt.Errorf("NoiseOperator.AddTerm: %w", err)
	}
	n.add(left, right, c)

	return nil
}

func (n *NoiseOperator[P]) add(left, right P, c calc.Complex) {
	key := pairKey{left.String(), right.String()}
	sum := n.terms[key].value.Add(c)
	if sum.IsZero() {
		delete(n.terms, key)

		return
	}
	n.terms[key] = noiseEntry[P]{left: left, right: right, value: sum}
}

// Remove deletes (left, right) and returns its previous rate.
func (n *NoiseOperator[P]) Remove(left, right P) calc.Complex {
	key := pairKey{left.String(), right.String()}
	old := n.terms[key].value
	delete(n.terms, key)

	return old
}

// Extend merge-adds every entry of other; validation runs before the first write.
func (n *NoiseOperator[P]) Extend(other *NoiseOperator[P]) error {
	for _, e := range other.terms {
		if err := n.validate(e.left, e.right); err != nil {
			return fmt.Errorf("NoiseOperator.Extend: %w", err)
		}
	}
	for _, e := range other.sorted() {
		n.add(e.left, e.right, e.value)
	}

	return nil
}

func (n *NoiseOperator[P]) sorted() []noiseEntry[P] {
	out := make([]noiseEntry[P], 0, len(n.terms))
	for _, e := range n.terms {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b noiseEntry[P]) int {
		if c := a.left.Compare(b.left); c != 0 {
			return c
		}

		return a.right.Compare(b.right)
	})

	return out
}

// Keys yields the (left, right) pairs in order.
func (n *NoiseOperator[P]) Keys() iter.Seq[Pair[P]] {
	return func(yield func(Pair[P]) bool) {
		for _, e := range n.sorted() {
			if !yield(Pair[P]{Left: e.left, Right: e.right}) {
				return
			}
		}
	}
}

// Values yields the rates in pair order.
func (n *NoiseOperator[P]) Values() iter.Seq[calc.Complex] {
	return func(yield func(calc.Complex) bool) {
		for _, e := range n.sorted() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// All yields (pair, rate) in pair order.
func (n *NoiseOperator[P]) All() iter.Seq2[Pair[P], calc.Complex] {
	return func(yield func(Pair[P], calc.Complex) bool) {
		for _, e := range n.sorted() {
			if !yield(Pair[P]{Left: e.left, Right: e.right}, e.value) {
				return
			}
		}
	}
}

// Items exports the entries as an ordered slice.
func (n *NoiseOperator[P]) Items() []NoiseItem[P] {
	es := n.sorted()
	out := make([]NoiseItem[P], len(es))
	for i, e := range es {
		out[i] = NoiseItem[P]{Left: e.left, Right: e.right, Value: e.value}
	}

	return out
}

func (n *NoiseOperator[P]) Len() int           { return len(n.terms) }
func (n *NoiseOperator[P]) IsEmpty() bool      { return len(n.terms) == 0 }
func (n *NoiseOperator[P]) Name() string       { return n.name }
func (n *NoiseOperator[P]) Bound() (int, bool) { return n.bound, n.bounded }

// CurrentNumberModes covers both sides of every entry.
func (n *NoiseOperator[P]) CurrentNumberModes() int {
	m := 0
	for _, e := range n.terms {
		if k := maxModes(e.left, e.right); k > m {
			m = k
		}
	}

	return m
}

// NumberModes returns the bound of a System, otherwise CurrentNumberModes.
func (n *NoiseOperator[P]) NumberModes() int {
	if n.bounded {
		return n.bound
	}

	return n.CurrentNumberModes()
}

func (n *NoiseOperator[P]) options(capacity int) []Option {
	return []Option{WithName(n.name), withBoundOf(n.bound, n.bounded), WithCapacity(capacity)}
}

// EmptyClone returns a noise operator with the same configuration and no entries.
func (n *NoiseOperator[P]) EmptyClone() *NoiseOperator[P] { return NewNoise[P](n.options(0)...) }

// Clone returns an independent copy.
func (n *NoiseOperator[P]) Clone() *NoiseOperator[P] {
	c := NewNoise[P](n.options(len(n.terms))...)
	for k, e := range n.terms {
		c.terms[k] = e
	}

	return c
}

// Equal compares entries exactly; name and bound are ignored.
func (n *NoiseOperator[P]) Equal(other *NoiseOperator[P]) bool {
	if len(n.terms) != len(other.terms) {
		return false
	}
	for k, e := range n.terms {
		f, ok := other.terms[k]
		if !ok || !e.value.Equal(f.value) {
			return false
		}
	}

	return true
}

// ApproxEqual compares entries within tol; a missing entry counts as zero.
func (n *NoiseOperator[P]) ApproxEqual(other *NoiseOperator[P], tol float64) bool {
	for k, e := range n.terms {
		if !e.value.ApproxEqual(other.terms[k].value, tol) {
			return false
		}
	}
	for k, f := range other.terms {
		if _, ok := n.terms[k]; !ok && !f.value.ApproxEqual(calc.Complex{}, tol) {
			return false
		}
	}

	return true
}

// Neg returns the operator with every rate negated.
func (n *NoiseOperator[P]) Neg() *NoiseOperator[P] {
	out := NewNoise[P](n.options(len(n.terms))...)
	for k, e := range n.terms {
		e.value = e.value.Neg()
		out.terms[k] = e
	}

	return out
}

// Add returns n + other; bound rule as Operator.Add.
func (n *NoiseOperator[P]) Add(other *NoiseOperator[P]) *NoiseOperator[P] {
	return n.combine(other, false)
}

// Sub returns n − other.
func (n *NoiseOperator[P]) Sub(other *NoiseOperator[P]) *NoiseOperator[P] {
	return n.combine(other, true)
}

func (n *NoiseOperator[P]) combine(other *NoiseOperator[P], negate bool) *NoiseOperator[P] {
	bound, bounded := combineBounds(n.bound, n.bounded, other.bound, other.bounded)
	out := NewNoise[P](WithName(n.name), withBoundOf(bound, bounded), WithCapacity(len(n.terms)+len(other.terms)))
	for k, e := range n.terms {
		out.terms[k] = e
	}
	for _, e := range other.sorted() {
		v := e.value
		if negate {
			v = v.Neg()
		}
		out.add(e.left, e.right, v)
	}

	return out
}

// Scale returns c·n; a zero scalar yields an empty operator.
func (n *NoiseOperator[P]) Scale(c calc.Complex) *NoiseOperator[P] {
	out := NewNoise[P](n.options(len(n.terms))...)
	if c.IsZero() {
		return out
	}
	for _, e := range n.sorted() {
		out.add(e.left, e.right, e.value.Mul(c))
	}

	return out
}

// HermitianConjugate maps every entry (L, R, γ) to (R, L, conj(γ)).
func (n *NoiseOperator[P]) HermitianConjugate() *NoiseOperator[P] {
	out := NewNoise[P](n.options(len(n.terms))...)
	for _, e := range n.sorted() {
		out.add(e.right, e.left, e.value.Conj())
	}

	return out
}

// SeparateIntoNTerms splits off the entries whose left product touches exactly nLeft
// indices and whose right product touches exactly nRight indices.
func (n *NoiseOperator[P]) SeparateIntoNTerms(nLeft, nRight int) (matching, remainder *NoiseOperator[P]) {
	matching, remainder = n.EmptyClone(), n.EmptyClone()
	for k, e := range n.terms {
		if e.left.NumberIndices() == nLeft && e.right.NumberIndices() == nRight {
			matching.terms[k] = e
		} else {
			remainder.terms[k] = e
		}
	}

	return matching, remainder
}

// Truncate drops numeric entries whose parts are both below threshold in magnitude.
func (n *NoiseOperator[P]) Truncate(threshold float64) *NoiseOperator[P] {
	out := n.EmptyClone()
	for k, e := range n.terms {
		if z, err := e.value.Complex128(); err == nil && abs(real(z)) < threshold && abs(imag(z)) < threshold {
			continue
		}
		out.terms[k] = e
	}

	return out
}

// String renders "Name{\n(<left>, <right>): (<re> + i * <im>),\n}".
func (n *NoiseOperator[P]) String() string {
	var b strings.Builder
	b.WriteString(n.name)
	b.WriteString("{\n")
	for _, e := range n.sorted() {
		fmt.Fprintf(&b, "(%s, %s): %s,\n", e.left.String(), e.right.String(), e.value.String())
	}
	b.WriteString("}")

	return b.String()
}
