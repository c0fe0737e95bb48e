// Package numeric holds small floating-point predicates shared by the
// inventory validators.
package numeric

import "math"

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x float64) bool {
	return math.IsNaN(x)
}

// Finite reports whether x is neither NaN nor an infinity.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
