package spins

// Computational basis: spin i is bit 1<<i of the state, 0 = |↑⟩ = |0⟩.

// ApplyToBasis maps basis state |state⟩ to amplitude·|out⟩. Spin products never
// annihilate a basis state, so ok is always true.
func (p PauliProduct) ApplyToBasis(state uint64) (out uint64, amplitude complex128, ok bool) {
	out, amplitude = state, 1
	for _, e := range p.s {
		bit := uint64(1) << uint(e.index)
		up := state&bit == 0
		switch e.op {
		case PauliX:
			out ^= bit
		case PauliY:
			out ^= bit
			if up {
				amplitude *= 1i
			} else {
				amplitude *= -1i
			}
		case PauliZ:
			if !up {
				amplitude = -amplitude
			}
		}
	}

	return out, amplitude, true
}

// ApplyToBasis maps basis state |state⟩ to amplitude·|out⟩; amplitudes are ±1.
func (d DecoherenceProduct) ApplyToBasis(state uint64) (out uint64, amplitude complex128, ok bool) {
	out, amplitude = state, 1
	for _, e := range d.s {
		bit := uint64(1) << uint(e.index)
		up := state&bit == 0
		switch e.op {
		case DecoherenceX:
			out ^= bit
		case DecoherenceIY:
			out ^= bit
			if up {
				amplitude = -amplitude
			}
		case DecoherenceZ:
			if !up {
				amplitude = -amplitude
			}
		}
	}

	return out, amplitude, true
}
