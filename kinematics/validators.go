package kinematics

import "math"

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// anyNonFinite reports whether any of xs is NaN or ±Inf.
func anyNonFinite(xs ...float64) bool {
	for _, x := range xs {
		if isNonFinite(x) {
			return true
		}
	}

	return false
}
