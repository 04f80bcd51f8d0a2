// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/matrix"
)

// TestOptions_PanicOnInvalid verifies WithX constructors reject nonsensical values.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithMaxModes(-1) })
	require.Panics(t, func() { matrix.WithMaxModes(matrix.MaxSupportedModes + 1) })

	require.NotPanics(t, func() { matrix.WithEpsilon(matrix.DefaultEpsilon) })
	require.NotPanics(t, func() { matrix.WithMaxModes(matrix.MaxSupportedModes) })
}
