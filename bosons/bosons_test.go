package bosons_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/bosons"
	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
)

func mode(t *testing.T, token string) *bosons.BosonOperator {
	t.Helper()
	p, err := bosons.ParseBosonProduct(token)
	require.NoError(t, err)
	op := bosons.NewBosonOperator()
	require.NoError(t, op.Set(p, calc.NewComplex(1, 0)))

	return op
}

// TestCCR checks [b_i, b†_j] = δ_ij.
func TestCCR(t *testing.T) {
	tokens := []string{"0", "1", "2"}
	for i, ti := range tokens {
		for j, tj := range tokens {
			b := mode(t, ti+"A")
			bd := mode(t, tj+"C")
			comm := core.Mul(b, bd).Sub(core.Mul(bd, b))
			if i == j {
				require.True(t, comm.Equal(mode(t, "I")), "[b_%d, b†_%d] = 1: %s", i, j, comm)
			} else {
				require.True(t, comm.IsEmpty(), "[b_%d, b†_%d] = 0: %s", i, j, comm)
			}
		}
	}
}

// TestNormalOrdering checks b·b†² = b†²·b + 2b† and b²·b†² = b†²b² + 4b†b + 2.
func TestNormalOrdering(t *testing.T) {
	got := core.Mul(mode(t, "0A"), mode(t, "0CC"))
	require.Equal(t, 2, got.Len())
	require.True(t, got.Get(mustParse(t, "0CCA")).Equal(calc.NewComplex(1, 0)))
	require.True(t, got.Get(mustParse(t, "0C")).Equal(calc.NewComplex(2, 0)))

	got = core.Mul(mode(t, "0AA"), mode(t, "0CC"))
	require.Equal(t, 3, got.Len())
	require.True(t, got.Get(mustParse(t, "0CCAA")).Equal(calc.NewComplex(1, 0)))
	require.True(t, got.Get(mustParse(t, "0CA")).Equal(calc.NewComplex(4, 0)))
	require.True(t, got.Get(mustParse(t, "I")).Equal(calc.NewComplex(2, 0)))

	other := core.Mul(mode(t, "0A"), mode(t, "1C"))
	require.Equal(t, 1, other.Len(), "distinct modes commute")
	require.True(t, other.Get(mustParse(t, "0A1C")).Equal(calc.NewComplex(1, 0)))
}

func mustParse(t *testing.T, token string) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.ParseBosonProduct(token)
	require.NoError(t, err)

	return p
}

// TestParseMode covers the C*A* tag grammar.
func TestParseMode(t *testing.T) {
	m, ok := bosons.ParseMode("CCA")
	require.True(t, ok)
	require.Equal(t, bosons.BosonMode{Creators: 2, Annihilators: 1}, m)
	require.Equal(t, "CCA", m.String())
	require.Equal(t, "CAA", m.Adjoint().String())

	for _, bad := range []string{"AC", "CXA", ""} {
		_, ok := bosons.ParseMode(bad)
		require.False(t, ok, bad)
	}
	_, err := bosons.ParseBosonProduct("0AC")
	require.ErrorIs(t, err, core.ErrMalformedToken)
	require.Panics(t, func() { bosons.NewBosonProduct().Set(-1, bosons.BosonMode{Creators: 1}) })
	require.Panics(t, func() { bosons.NewBosonProduct().Set(core.MaxIndex+1, bosons.BosonMode{Creators: 1}) })
	_, err = bosons.ParseBosonProduct("9223372036854775807A")
	require.ErrorIs(t, err, core.ErrMalformedToken)
}

// TestFromLadder normal-orders b_0 b†_0 on the fly.
func TestFromLadder(t *testing.T) {
	terms := bosons.FromLadder([]int{0, 0}, []int{0})
	require.Len(t, terms, 1)
	require.Equal(t, "0CCA", terms[0].Product.String())

	terms = bosons.FromLadder(nil, []int{1, 0})
	require.Len(t, terms, 1)
	require.Equal(t, "0A1A", terms[0].Product.String())
}

// TestHermitian covers canonical keys, self-adjointness and expansion.
func TestHermitian(t *testing.T) {
	key, conjugated := bosons.NewHermitianBosonProduct(mustParse(t, "0C"))
	require.True(t, conjugated)
	require.Equal(t, "0A", key.String())
	require.False(t, key.IsSelfAdjoint())

	_, err := bosons.ParseHermitianBosonProduct("0C")
	require.ErrorIs(t, err, core.ErrMalformedToken)

	n, err := bosons.ParseHermitianBosonProduct("0CA1CCAA")
	require.NoError(t, err)
	require.True(t, n.IsSelfAdjoint())

	h := bosons.NewBosonHamiltonian()
	require.NoError(t, bosons.AddHermitianTerm(h, mustParse(t, "0C"), calc.NewComplex(1, 2)))
	require.True(t, h.Get(key).Equal(calc.NewComplex(1, -2)))

	op := bosons.HamiltonianToOperator(h)
	require.Equal(t, 2, op.Len())
	require.True(t, op.Get(mustParse(t, "0C")).Equal(calc.NewComplex(1, 2)))
	require.True(t, op.HermitianConjugate().Equal(op))
}

// TestConjugate swaps powers without a sign.
func TestConjugate(t *testing.T) {
	adj, phase := mustParse(t, "0CCA2A").Conjugate()
	require.Equal(t, "0CAA2C", adj.String())
	require.Equal(t, core.PhaseOne, phase)
}
