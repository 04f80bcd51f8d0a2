package spins

import "github.com/katalvlaran/qop/core"

// SinglePauliOperator is one of the Hermitian single-spin operators I, X, Y, Z.
type SinglePauliOperator uint8

const (
	PauliI SinglePauliOperator = iota
	PauliX
	PauliY
	PauliZ
)

var pauliNames = [...]string{"I", "X", "Y", "Z"}

// String returns the token letter.
func (s SinglePauliOperator) String() string { return pauliNames[s&3] }

// ParsePauli maps a token letter to its operator.
func ParsePauli(tag string) (SinglePauliOperator, bool) {
	for i, n := range pauliNames {
		if n == tag {
			return SinglePauliOperator(i), true
		}
	}

	return PauliI, false
}

// pauliTable[a][b] = (a·b, phase), e.g. X·Y = iZ.
var pauliTable = [4][4]struct {
	op    SinglePauliOperator
	phase core.Phase
}{
	PauliI: {{PauliI, core.PhaseOne}, {PauliX, core.PhaseOne}, {PauliY, core.PhaseOne}, {PauliZ, core.PhaseOne}},
	PauliX: {{PauliX, core.PhaseOne}, {PauliI, core.PhaseOne}, {PauliZ, core.PhaseI}, {PauliY, core.PhaseMinusI}},
	PauliY: {{PauliY, core.PhaseOne}, {PauliZ, core.PhaseMinusI}, {PauliI, core.PhaseOne}, {PauliX, core.PhaseI}},
	PauliZ: {{PauliZ, core.PhaseOne}, {PauliY, core.PhaseI}, {PauliX, core.PhaseMinusI}, {PauliI, core.PhaseOne}},
}

// Multiply returns a·b as a single operator and the phase factored out.
func (s SinglePauliOperator) Multiply(other SinglePauliOperator) (SinglePauliOperator, core.Phase) {
	r := pauliTable[s&3][other&3]

	return r.op, r.phase
}

// SingleDecoherenceOperator is one of the real single-spin operators I, X, iY, Z.
type SingleDecoherenceOperator uint8

const (
	DecoherenceI SingleDecoherenceOperator = iota
	DecoherenceX
	DecoherenceIY
	DecoherenceZ
)

var decoherenceNames = [...]string{"I", "X", "iY", "Z"}

// String returns the token letters.
func (s SingleDecoherenceOperator) String() string { return decoherenceNames[s&3] }

// ParseDecoherence maps token letters to their operator.
func ParseDecoherence(tag string) (SingleDecoherenceOperator, bool) {
	for i, n := range decoherenceNames {
		if n == tag {
			return SingleDecoherenceOperator(i), true
		}
	}

	return DecoherenceI, false
}

// decoherenceTable[a][b] = (a·b, ±1); all entries are real.
var decoherenceTable = [4][4]struct {
	op    SingleDecoherenceOperator
	phase core.Phase
}{
	DecoherenceI:  {{DecoherenceI, core.PhaseOne}, {DecoherenceX, core.PhaseOne}, {DecoherenceIY, core.PhaseOne}, {DecoherenceZ, core.PhaseOne}},
	DecoherenceX:  {{DecoherenceX, core.PhaseOne}, {DecoherenceI, core.PhaseOne}, {DecoherenceZ, core.PhaseMinusOne}, {DecoherenceIY, core.PhaseMinusOne}},
	DecoherenceIY: {{DecoherenceIY, core.PhaseOne}, {DecoherenceZ, core.PhaseOne}, {DecoherenceI, core.PhaseMinusOne}, {DecoherenceX, core.PhaseMinusOne}},
	DecoherenceZ:  {{DecoherenceZ, core.PhaseOne}, {DecoherenceIY, core.PhaseOne}, {DecoherenceX, core.PhaseOne}, {DecoherenceI, core.PhaseOne}},
}

// Multiply returns a·b as a single operator and its real sign.
func (s SingleDecoherenceOperator) Multiply(other SingleDecoherenceOperator) (SingleDecoherenceOperator, core.Phase) {
	r := decoherenceTable[s&3][other&3]

	return r.op, r.phase
}

// conjugatePhase is −1 for iY, whose adjoint is −iY, and 1 otherwise.
func (s SingleDecoherenceOperator) conjugatePhase() core.Phase {
	return core.Sign(s == DecoherenceIY)
}

// toPauli returns the Pauli operator and the phase with s = phase·pauli.
func (s SingleDecoherenceOperator) toPauli() (SinglePauliOperator, core.Phase) {
	switch s {
	case DecoherenceX:
		return PauliX, core.PhaseOne
	case DecoherenceIY:
		return PauliY, core.PhaseI
	case DecoherenceZ:
		return PauliZ, core.PhaseOne
	default:
		return PauliI, core.PhaseOne
	}
}

// toDecoherence returns the decoherence operator and the phase with s = phase·op.
func (s SinglePauliOperator) toDecoherence() (SingleDecoherenceOperator, core.Phase) {
	switch s {
	case PauliX:
		return DecoherenceX, core.PhaseOne
	case PauliY:
		return DecoherenceIY, core.PhaseMinusI
	case PauliZ:
		return DecoherenceZ, core.PhaseOne
	default:
		return DecoherenceI, core.PhaseOne
	}
}
