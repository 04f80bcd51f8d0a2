package fermions

// FermionSymbol is the operator acting on one fermionic mode.
type FermionSymbol uint8

const (
	FermionI FermionSymbol = iota // identity, never stored
	FermionC                      // creator c†
	FermionA                      // annihilator c
	FermionN                      // number operator c†c
)

var symbolNames = [...]string{"I", "C", "A", "N"}

// String returns the token letter.
func (s FermionSymbol) String() string { return symbolNames[s&3] }

// ParseSymbol maps a token letter to its symbol.
func ParseSymbol(tag string) (FermionSymbol, bool) {
	for i, n := range symbolNames {
		if n == tag {
			return FermionSymbol(i), true
		}
	}

	return FermionI, false
}

// odd reports whether s changes the particle number, i.e. anticommutes across modes.
func (s FermionSymbol) odd() bool { return s == FermionC || s == FermionA }

// adjoint swaps creator and annihilator.
func (s FermionSymbol) adjoint() FermionSymbol {
	switch s {
	case FermionC:
		return FermionA
	case FermionA:
		return FermionC
	default:
		return s
	}
}

// term is one summand of a same-mode product: coefficient · symbol.
type term struct {
	sym   FermionSymbol
	coeff float64
}

var (
	vanishes = []term(nil)
	idMinusN = []term{{FermionI, 1}, {FermionN, -1}}
)

// sameMode returns a·b for two symbols on the same mode as a sum of terms.
// An empty result means the product is zero (c†c† = cc = 0).
func sameMode(a, b FermionSymbol) []term {
	switch {
	case a == FermionI:
		return []term{{b, 1}}
	case b == FermionI:
		return []term{{a, 1}}
	}
	switch a {
	case FermionC:
		if b == FermionA {
			return []term{{FermionN, 1}}
		}

		return vanishes // c†c†, c†c†c
	case FermionA:
		switch b {
		case FermionC:
			return idMinusN // cc† = 1 − c†c
		case FermionN:
			return []term{{FermionA, 1}}
		default:
			return vanishes
		}
	default: // FermionN
		switch b {
		case FermionC:
			return []term{{FermionC, 1}}
		case FermionN:
			return []term{{FermionN, 1}}
		default:
			return vanishes
		}
	}
}
