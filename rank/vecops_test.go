package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// White-box checks for the dense-vector kernels the solver builds on.

func TestNorm1(t *testing.T) {
	assert.Zero(t, norm1(nil), "empty vector has zero norm")
	assert.InDelta(t, 6.0, norm1([]float64{1, -2, 3}), 1e-15, "norm sums absolute values")
}

func TestL1Distance(t *testing.T) {
	a := []float64{0.5, 0.25, 0.25}
	assert.Zero(t, l1Distance(a, a), "distance to self is zero")
	assert.InDelta(t, 0.5, l1Distance(a, []float64{0.25, 0.5, 0.25}), 1e-15)
}

func TestFillAndScale(t *testing.T) {
	v := make([]float64, 4)
	fill(v, 0.25)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, v)

	scaleInPlace(v, 2)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, v)
}
