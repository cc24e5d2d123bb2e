// Package rank: shared dense-vector helpers for the solver.
// All operations are O(n) single-pass; none allocate.
package rank

import "math"

// fill sets every element of v to c.
func fill(v []float64, c float64) {
	for i := range v {
		v[i] = c
	}
}

// norm1 returns the L1 norm Σ|v[i]|.
func norm1(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += math.Abs(x)
	}

	return sum
}

// l1Distance returns ‖a − b‖₁. Slices must have equal length.
func l1Distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// scaleInPlace multiplies every element of v by c.
func scaleInPlace(v []float64, c float64) {
	for i := range v {
		v[i] *= c
	}
}
