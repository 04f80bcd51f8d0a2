// File: hermitian.go
// Role: Hamiltonian-class container. Composition over Operator: a key that is not
//       self-adjoint stands for c·P + conj(c)·P†, a self-adjoint key needs a real c.
// Determinism:
//   - Same ordering guarantees as Operator.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/qop/calc"
)

// HermitianOperator is a Hermitian operator H = Σ (c_P·P + h.c.) stored by canonical
// Hermitian keys only.
type HermitianOperator[P HermitianProduct[P]] struct {
	op *Operator[P]
}

// NewHermitian returns an empty Hermitian operator configured by opts.
func NewHermitian[P HermitianProduct[P]](opts ...Option) *HermitianOperator[P] {
	return &HermitianOperator[P]{op: New[P](opts...)}
}

// HermitianFromItems builds a Hermitian operator by AddTerm-ing items in order.
func HermitianFromItems[P HermitianProduct[P]](items []Item[P], opts ...Option) (*HermitianOperator[P], error) {
	h := NewHermitian[P](append([]Option{WithCapacity(len(items))}, opts...)...)
	for _, it := range items {
		if err := h.AddTerm(it.Product, it.Value); err != nil {
			return nil, fmt.Errorf("HermitianFromItems: %w", err)
		}
	}

	return h, nil
}

func checkHermitian[P HermitianProduct[P]](p P, c calc.Complex) error {
	if p.IsSelfAdjoint() && !c.IsReal() {
		return fmt.Errorf("%w: %s has coefficient %s", ErrNonHermitian, p.String(), c.String())
	}

	return nil
}

// Set overwrites the coefficient of p; zero removes the entry.
func (h *HermitianOperator[P]) Set(p P, c calc.Complex) error {
	if err := checkHermitian(p, c); err != nil {
		return fmt.Errorf("HermitianOperator.Set: %w", err)
	}

	return h.op.Set(p, c)
}

// AddTerm merge-adds c to the coefficient of p.
func (h *HermitianOperator[P]) AddTerm(p P, c calc.Complex) error {
	if err := checkHermitian(p, c); err != nil {
		return fmt.Errorf("HermitianOperator.AddTerm: %w", err)
	}

	return h.op.AddTerm(p, c)
}

// Get returns the coefficient of p, zero if absent.
func (h *HermitianOperator[P]) Get(p P) calc.Complex { return h.op.Get(p) }

// Remove deletes p and returns its previous coefficient.
func (h *HermitianOperator[P]) Remove(p P) calc.Complex { return h.op.Remove(p) }

// Extend merge-adds every term of other.
func (h *HermitianOperator[P]) Extend(other *HermitianOperator[P]) error {
	return h.op.Extend(other.op)
}

// Read-only views delegate to the stored operator.
func (h *HermitianOperator[P]) Keys() iter.Seq[P]                      { return h.op.Keys() }
func (h *HermitianOperator[P]) Values() iter.Seq[calc.Complex]         { return h.op.Values() }
func (h *HermitianOperator[P]) All() iter.Seq2[P, calc.Complex]        { return h.op.All() }
func (h *HermitianOperator[P]) Items() []Item[P]                       { return h.op.Items() }
func (h *HermitianOperator[P]) Len() int                               { return h.op.Len() }
func (h *HermitianOperator[P]) IsEmpty() bool                          { return h.op.IsEmpty() }
func (h *HermitianOperator[P]) Bound() (int, bool)                     { return h.op.Bound() }
func (h *HermitianOperator[P]) CurrentNumberModes() int                { return h.op.CurrentNumberModes() }
func (h *HermitianOperator[P]) NumberModes() int                       { return h.op.NumberModes() }
func (h *HermitianOperator[P]) Equal(other *HermitianOperator[P]) bool { return h.op.Equal(other.op) }
func (h *HermitianOperator[P]) String() string                         { return h.op.String() }

// ApproxEqual compares terms within tol.
func (h *HermitianOperator[P]) ApproxEqual(other *HermitianOperator[P], tol float64) bool {
	return h.op.ApproxEqual(other.op, tol)
}

// Operator exposes the stored keys as a plain operator copy (no h.c. expansion).
func (h *HermitianOperator[P]) Operator() *Operator[P] { return h.op.Clone() }

// Clone returns an independent copy.
func (h *HermitianOperator[P]) Clone() *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Clone()}
}

// Neg returns −H.
func (h *HermitianOperator[P]) Neg() *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Neg()}
}

// Add returns H + other; bound rule as Operator.Add.
func (h *HermitianOperator[P]) Add(other *HermitianOperator[P]) *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Add(other.op)}
}

// Sub returns H − other.
func (h *HermitianOperator[P]) Sub(other *HermitianOperator[P]) *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Sub(other.op)}
}

// ScaleReal returns f·H. Only real factors keep H Hermitian.
func (h *HermitianOperator[P]) ScaleReal(f calc.Float) *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Scale(calc.FromFloat(f))}
}

// HermitianConjugate returns a copy of H, which is its own adjoint.
func (h *HermitianOperator[P]) HermitianConjugate() *HermitianOperator[P] { return h.Clone() }

// SeparateIntoNTerms partitions H by the number of indices each key touches.
func (h *HermitianOperator[P]) SeparateIntoNTerms(n int) (matching, remainder *HermitianOperator[P]) {
	m, r := h.op.SeparateIntoNTerms(n)

	return &HermitianOperator[P]{op: m}, &HermitianOperator[P]{op: r}
}

// Truncate drops numeric terms below threshold.
func (h *HermitianOperator[P]) Truncate(threshold float64) *HermitianOperator[P] {
	return &HermitianOperator[P]{op: h.op.Truncate(threshold)}
}

// Expand writes H out as a plain operator over Q: each key P with coefficient c becomes
// c·lift(P), and a key that is not self-adjoint also adds conj(c)·lift(P)†.
// The result keeps the bound of H; opts are applied on top.
func Expand[P HermitianProduct[P], Q Product[Q]](h *HermitianOperator[P], lift func(P) Q, opts ...Option) *Operator[Q] {
	base := []Option{withBoundOf(h.op.bound, h.op.bounded), WithCapacity(2 * h.op.Len())}
	out := New[Q](append(base, opts...)...)
	for _, e := range h.op.sorted() {
		q := lift(e.product)
		out.add(q, e.value)
		if e.product.IsSelfAdjoint() {
			continue
		}
		adj, phase := q.Conjugate()
		out.add(adj, e.value.Conj().Mul(phase.Coefficient()))
	}

	return out
}
