package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 32.0, Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Zero(t, Dot(nil, nil))
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Norm([]float64{3, 4}), 1e-12)
	assert.Zero(t, Norm([]float64{0, 0}))
}

func TestAcos(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Acos(0), 1e-12)
	assert.Zero(t, Acos(1))
	assert.InDelta(t, math.Pi, Acos(-1), 1e-12)

	// Out-of-domain values from floating point drift clamp to the boundary.
	assert.Zero(t, Acos(1.0000000000000002))
	assert.InDelta(t, math.Pi, Acos(-1.0000000000000002), 1e-12)
	assert.False(t, math.IsNaN(Acos(1.5)))
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, 180.0, Degrees(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
	assert.InDelta(t, 45.0, Degrees(Radians(45)), 1e-12)
}
