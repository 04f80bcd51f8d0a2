package core

import "github.com/katalvlaran/qop/calc"

// Phase is an element of {1, i, −1, −i}, stored as the exponent k of i^k.
// Single-mode multiplication tables and product conjugation report their phase as a
// Phase so that accumulation stays exact and every case is enumerable.
type Phase uint8

const (
	PhaseOne      Phase = iota // +1
	PhaseI                     // +i
	PhaseMinusOne              // −1
	PhaseMinusI                // −i
)

// Sign returns PhaseMinusOne when negative is true, PhaseOne otherwise.
func Sign(negative bool) Phase {
	if negative {
		return PhaseMinusOne
	}

	return PhaseOne
}

// Mul returns p·q.
func (p Phase) Mul(q Phase) Phase { return (p + q) & 3 }

// Conj returns the complex conjugate of p.
func (p Phase) Conj() Phase { return (4 - p) & 3 }

// Neg returns −p.
func (p Phase) Neg() Phase { return (p + 2) & 3 }

// Complex128 returns p as a Go complex number.
func (p Phase) Complex128() complex128 {
	switch p & 3 {
	case PhaseI:
		return 1i
	case PhaseMinusOne:
		return -1
	case PhaseMinusI:
		return -1i
	default:
		return 1
	}
}

// Coefficient returns p as an exact calc.Complex.
func (p Phase) Coefficient() calc.Complex {
	return calc.FromComplex128(p.Complex128())
}

// String returns "1", "i", "-1" or "-i".
func (p Phase) String() string {
	switch p & 3 {
	case PhaseI:
		return "i"
	case PhaseMinusOne:
		return "-1"
	case PhaseMinusI:
		return "-i"
	default:
		return "1"
	}
}
