// File: operator.go
// Role: Generic sparse operator container: product key → calc.Complex coefficient.
// Determinism:
//   - Keys/Values/All/Items/String iterate in the products' total order (Compare).
// Concurrency:
//   - No locks. Each mutating call computes the new coefficient first and performs a
//     single map write (or delete), so the zero-cancellation invariant holds between calls.

package core

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/qop/calc"
)

// entry keeps the typed product next to its coefficient; the map is keyed by String().
type entry[P any] struct {
	product P
	value   calc.Complex
}

// Item is one (product, coefficient) pair of an ordered export.
type Item[P any] struct {
	Product P
	Value   calc.Complex
}

// Operator is a sparse sum Σ c_P · P over canonical products P.
//
// The zero value is not usable; construct with New.
type Operator[P Product[P]] struct {
	name    string
	bound   int
	bounded bool
	terms   map[string]entry[P]
}

// New returns an empty operator configured by opts.
func New[P Product[P]](opts ...Option) *Operator[P] {
	s := gatherOptions(opts...)

	return &Operator[P]{
		name:    s.name,
		bound:   s.bound,
		bounded: s.bounded,
		terms:   make(map[string]entry[P], s.capacity),
	}
}

// FromItems builds an operator by AddTerm-ing every item in order.
// Duplicate products are merged; the first capacity violation aborts the build.
func FromItems[P Product[P]](items []Item[P], opts ...Option) (*Operator[P], error) {
	o := New[P](append([]Option{WithCapacity(len(items))}, opts...)...)
	for _, it := range items {
		if err := o.AddTerm(it.Product, it.Value); err != nil {
			return nil, fmt.Errorf("FromItems: %w", err)
		}
	}

	return o, nil
}

// checkBound enforces the System capacity for p.
func (o *Operator[P]) checkBound(p P) error {
	if o.bounded && p.CurrentNumberModes() > o.bound {
		return fmt.Errorf("%w: %s needs %d modes, bound is %d",
			ErrCapacityViolation, p.String(), p.CurrentNumberModes(), o.bound)
	}

	return nil
}

// Set overwrites the coefficient of p. A zero coefficient removes the entry.
func (o *Operator[P]) Set(p P, c calc.Complex) error {
	if err := o.checkBound(p); err != nil {
		return fmt.Errorf("Operator.Set: %w", err)
	}
	key := p.String()
	if c.IsZero() {
		delete(o.terms, key)

		return nil
	}
	o.terms[key] = entry[P]{product: p, value: c}

	return nil
}

// Get returns the coefficient of p, or zero when p is absent. It never fails.
func (o *Operator[P]) Get(p P) calc.Complex {
	return o.terms[p.String()].value
}

// AddTerm merge-adds c to the coefficient of p and removes the key if the sum is zero.
func (o *Operator[P]) AddTerm(p P, c calc.Complex) error {
	if err := o.checkBound(p); err != nil {
		return fmt.Errorf("Operator.AddTerm: %w", err)
	}
	o.add(p, c)

	return nil
}

// add is AddTerm without the capacity check, for callers that validated already.
func (o *Operator[P]) add(p P, c calc.Complex) {
	key := p.String()
	sum := o.terms[key].value.Add(c)
	if sum.IsZero() {
		delete(o.terms, key)

		return
	}
	o.terms[key] = entry[P]{product: p, value: sum}
}

// Remove deletes p and returns its previous coefficient (zero if absent).
func (o *Operator[P]) Remove(p P) calc.Complex {
	key := p.String()
	old := o.terms[key].value
	delete(o.terms, key)

	return old
}

// Extend merge-adds every term of other. All products are validated against the bound
// before the first write, so a failing Extend leaves o unchanged.
func (o *Operator[P]) Extend(other *Operator[P]) error {
	if o.bounded {
		for _, e := range other.terms {
			if err := o.checkBound(e.product); err != nil {
				return fmt.Errorf("Operator.Extend: %w", err)
			}
		}
	}
	for _, e := range other.sorted() {
		o.add(e.product, e.value)
	}

	return nil
}

// sorted returns the entries in canonical product order.
func (o *Operator[P]) sorted() []entry[P] {
	out := make([]entry[P], 0, len(o.terms))
	for _, e := range o.terms {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry[P]) int { return a.product.Compare(b.product) })

	return out
}

// Keys yields the products in canonical order. The sequence is restartable; each
// iteration snapshots the current terms.
func (o *Operator[P]) Keys() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, e := range o.sorted() {
			if !yield(e.product) {
				return
			}
		}
	}
}

// Values yields the coefficients in canonical product order.
func (o *Operator[P]) Values() iter.Seq[calc.Complex] {
	return func(yield func(calc.Complex) bool) {
		for _, e := range o.sorted() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// All yields (product, coefficient) pairs in canonical product order.
func (o *Operator[P]) All() iter.Seq2[P, calc.Complex] {
	return func(yield func(P, calc.Complex) bool) {
		for _, e := range o.sorted() {
			if !yield(e.product, e.value) {
				return
			}
		}
	}
}

// Items exports the terms as an ordered slice.
func (o *Operator[P]) Items() []Item[P] {
	es := o.sorted()
	out := make([]Item[P], len(es))
	for i, e := range es {
		out[i] = Item[P]{Product: e.product, Value: e.value}
	}

	return out
}

// Len returns the number of stored terms.
func (o *Operator[P]) Len() int { return len(o.terms) }

// IsEmpty reports whether no term is stored.
func (o *Operator[P]) IsEmpty() bool { return len(o.terms) == 0 }

// Name returns the display wrapper name.
func (o *Operator[P]) Name() string { return o.name }

// Bound returns the System bound and whether the operator is bounded.
func (o *Operator[P]) Bound() (int, bool) { return o.bound, o.bounded }

// CurrentNumberModes returns the smallest mode count that covers every stored product.
func (o *Operator[P]) CurrentNumberModes() int {
	n := 0
	for _, e := range o.terms {
		if m := e.product.CurrentNumberModes(); m > n {
			n = m
		}
	}

	return n
}

// NumberModes returns the bound of a System, otherwise CurrentNumberModes.
func (o *Operator[P]) NumberModes() int {
	if o.bounded {
		return o.bound
	}

	return o.CurrentNumberModes()
}

// options reproduces the configuration of o, with a capacity hint.
func (o *Operator[P]) options(capacity int) []Option {
	return []Option{WithName(o.name), withBoundOf(o.bound, o.bounded), WithCapacity(capacity)}
}

// EmptyClone returns an operator with the same configuration and no terms.
func (o *Operator[P]) EmptyClone() *Operator[P] {
	return New[P](o.options(0)...)
}

// Clone returns an independent copy.
func (o *Operator[P]) Clone() *Operator[P] {
	c := New[P](o.options(len(o.terms))...)
	for k, e := range o.terms {
		c.terms[k] = e
	}

	return c
}

// Equal compares terms exactly; name and bound are ignored.
func (o *Operator[P]) Equal(other *Operator[P]) bool {
	if len(o.terms) != len(other.terms) {
		return false
	}
	for k, e := range o.terms {
		f, ok := other.terms[k]
		if !ok || !e.value.Equal(f.value) {
			return false
		}
	}

	return true
}

// ApproxEqual compares terms within tol; a key missing on one side counts as zero.
func (o *Operator[P]) ApproxEqual(other *Operator[P], tol float64) bool {
	for k, e := range o.terms {
		if !e.value.ApproxEqual(other.terms[k].value, tol) {
			return false
		}
	}
	for k, f := range other.terms {
		if _, ok := o.terms[k]; !ok && !f.value.ApproxEqual(calc.Complex{}, tol) {
			return false
		}
	}

	return true
}

// SeparateIntoNTerms partitions o into the terms whose product touches exactly n
// indices and the remainder. Both results inherit the configuration of o.
func (o *Operator[P]) SeparateIntoNTerms(n int) (matching, remainder *Operator[P]) {
	matching, remainder = o.EmptyClone(), o.EmptyClone()
	for k, e := range o.terms {
		if e.product.NumberIndices() == n {
			matching.terms[k] = e
		} else {
			remainder.terms[k] = e
		}
	}

	return matching, remainder
}

// Truncate returns a copy without the numeric terms whose real and imaginary parts are
// both below threshold in magnitude. Symbolic terms are always kept.
func (o *Operator[P]) Truncate(threshold float64) *Operator[P] {
	out := o.EmptyClone()
	for k, e := range o.terms {
		if z, err := e.value.Complex128(); err == nil && abs(real(z)) < threshold && abs(imag(z)) < threshold {
			continue
		}
		out.terms[k] = e
	}

	return out
}

// String renders "Name{\n<token>: (<re> + i * <im>),\n}" in canonical order.
func (o *Operator[P]) String() string {
	var b strings.Builder
	b.WriteString(o.name)
	b.WriteString("{\n")
	for _, e := range o.sorted() {
		b.WriteString(e.product.String())
		b.WriteString(": ")
		b.WriteString(e.value.String())
		b.WriteString(",\n")
	}
	b.WriteString("}")

	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
