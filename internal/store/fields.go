// store/fields.go - Input coercion for field editors. Numeric fields never
// reject input: anything unparseable becomes 0, so the editing surface never
// has to surface a validation error.
package store

import (
	"math"
	"strconv"
	"strings"
)

// asNumber coerces a decoded JSON value to a float64, mapping anything that
// does not parse (and NaN/Inf) to 0.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// asNonNegative is asNumber clamped to a minimum of 0.
func asNonNegative(v any) float64 {
	return math.Max(0, asNumber(v))
}

// asInt truncates asNumber to an integer.
func asInt(v any) int {
	return int(asNumber(v))
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
