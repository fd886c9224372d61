package math

import "golang.org/x/exp/constraints"

// Max calculates the maximum of two values.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min calculates the minimum of two values.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Ratio returns n/d as a float64.
// Returns +Inf, -Inf or NaN if d is zero.
func Ratio[T constraints.Integer](n, d T) float64 {
	return float64(n) / float64(d)
}
