package fermions

import "math/bits"

// ApplyToBasis maps occupation state |state⟩ (mode j occupied iff bit 1<<j is set) to
// amplitude·|out⟩. ok is false when p annihilates the state. Creators and annihilators
// on mode j pick up (−1)^(occupied modes below j), the Jordan-Wigner ordering.
func (p FermionProduct) ApplyToBasis(state uint64) (out uint64, amplitude complex128, ok bool) {
	out, amplitude = state, 1
	for k := len(p.s) - 1; k >= 0; k-- {
		e := p.s[k]
		bit := uint64(1) << uint(e.index)
		occupied := out&bit != 0
		switch e.sym {
		case FermionN:
			if !occupied {
				return 0, 0, false
			}
			continue
		case FermionC:
			if occupied {
				return 0, 0, false
			}
		case FermionA:
			if !occupied {
				return 0, 0, false
			}
		}
		if bits.OnesCount64(out&(bit-1))%2 == 1 {
			amplitude = -amplitude
		}
		out ^= bit
	}

	return out, amplitude, true
}
