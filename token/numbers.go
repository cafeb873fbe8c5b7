package token

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the canonical YAML spelling of f: .nan, .inf and
// -.inf for the special values, otherwise the shortest decimal which parses
// back to f, in exponent form only for very large or small magnitudes,
// always carrying a fraction so it does not read as an integer.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	fmat := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmat = 'e'
	}
	v := strconv.FormatFloat(f, fmat, -1, 64)
	if strings.Contains(v, ".") {
		return v
	}
	if i := strings.IndexByte(v, 'e'); i != -1 {
		return v[:i] + ".0" + v[i:]
	}
	return v + ".0"
}
