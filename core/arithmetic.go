// File: arithmetic.go
// Role: Functional arithmetic over Operator: Neg, Add, Sub, Scale, Mul, HermitianConjugate.
// Determinism:
//   - Operands are consumed in canonical order so symbolic coefficient text is reproducible.
// Concurrency:
//   - Operands are only read; every call returns a fresh Operator.

package core

import (
	"github.com/katalvlaran/qop/calc"
)

// mulCapacityCap limits the |a|·|b| preallocation of Mul.
const mulCapacityCap = 1 << 16

// Neg returns −o.
func (o *Operator[P]) Neg() *Operator[P] {
	out := New[P](o.options(len(o.terms))...)
	for k, e := range o.terms {
		out.terms[k] = entry[P]{product: e.product, value: e.value.Neg()}
	}

	return out
}

// Add returns o + other. The result is bounded by the larger bound when both operands
// are bounded and unbounded otherwise, so it cannot violate capacity.
func (o *Operator[P]) Add(other *Operator[P]) *Operator[P] {
	return o.combine(other, false)
}

// Sub returns o − other with the bound rule of Add.
func (o *Operator[P]) Sub(other *Operator[P]) *Operator[P] {
	return o.combine(other, true)
}

func (o *Operator[P]) combine(other *Operator[P], negate bool) *Operator[P] {
	bound, bounded := combineBounds(o.bound, o.bounded, other.bound, other.bounded)
	out := New[P](WithName(o.name), withBoundOf(bound, bounded), WithCapacity(len(o.terms)+len(other.terms)))
	for k, e := range o.terms {
		out.terms[k] = e
	}
	for _, e := range other.sorted() {
		v := e.value
		if negate {
			v = v.Neg()
		}
		out.add(e.product, v)
	}

	return out
}

// Scale returns c·o. A zero scalar yields an empty operator.
func (o *Operator[P]) Scale(c calc.Complex) *Operator[P] {
	out := New[P](o.options(len(o.terms))...)
	if c.IsZero() {
		return out
	}
	for _, e := range o.sorted() {
		out.add(e.product, e.value.Mul(c))
	}

	return out
}

// HermitianConjugate returns o† = Σ conj(c_P) · phase_P · P†.
func (o *Operator[P]) HermitianConjugate() *Operator[P] {
	out := New[P](o.options(len(o.terms))...)
	for _, e := range o.sorted() {
		adj, phase := e.product.Conjugate()
		out.add(adj, e.value.Conj().Mul(phase.Coefficient()))
	}

	return out
}

// Mul returns the operator product a·b: every pair of terms (p, c), (q, d) contributes
// c·d·f to each term f·r of p·q. Vanishing products contribute nothing. The bound
// follows Add.
//
// Complexity: O(|a|·|b|·k), k = number of terms a single product multiplication yields.
func Mul[P Multiplicative[P]](a, b *Operator[P]) *Operator[P] {
	bound, bounded := combineBounds(a.bound, a.bounded, b.bound, b.bounded)
	hint := len(a.terms) * len(b.terms)
	if hint > mulCapacityCap {
		hint = mulCapacityCap
	}
	out := New[P](WithName(a.name), withBoundOf(bound, bounded), WithCapacity(hint))
	left, right := a.sorted(), b.sorted()
	for _, l := range left {
		for _, r := range right {
			coeff := l.value.Mul(r.value)
			for _, s := range l.product.MulTerms(r.product) {
				out.add(s.Product, coeff.Mul(calc.FromComplex128(s.Factor)))
			}
		}
	}

	return out
}
