package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthEndpoints(t *testing.T) {
	assert.Equal(t, 100.0, Strength(5, 5, 150))
	assert.Equal(t, 0.0, Strength(150, 5, 150))
}

func TestStrengthMidpoint(t *testing.T) {
	assert.InDelta(t, 50.0, Strength(77.5, 5, 150), 1e-9)
}

func TestStrengthClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 100.0, Strength(1, 5, 150))
	assert.Equal(t, 0.0, Strength(500, 5, 150))
}

func TestStrengthDegenerateRange(t *testing.T) {
	// Zero-width range has no falloff: fixed 100%.
	assert.Equal(t, 100.0, Strength(10, 10, 10))
	assert.Equal(t, 100.0, Strength(999, 10, 10))
}

func TestStrengthNeverNaN(t *testing.T) {
	inputs := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5, 0}
	for _, d := range inputs {
		s := Strength(d, 5, 150)
		assert.False(t, math.IsNaN(s), "distance %v produced NaN", d)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}
