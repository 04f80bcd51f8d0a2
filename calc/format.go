package calc

import (
	"math"
	"strconv"
	"strings"
)

// formatScientific renders v as the shortest round-tripping mantissa followed by an
// unpadded exponent: 0.5 → "5e-1", 1 → "1e0", 125 → "1.25e2", 0 → "0e0".
func formatScientific(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64) // e.g. "1.25e+02"
	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mantissa + "e" + strconv.Itoa(n)
}
