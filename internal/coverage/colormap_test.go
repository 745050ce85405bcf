package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForExtremes(t *testing.T) {
	assert.Equal(t, RGB{R: 1, G: 0, B: 0}, ColorFor(0))
	assert.Equal(t, RGB{R: 0, G: 1, B: 0}, ColorFor(100))
}

func TestColorForBreakpointYellow(t *testing.T) {
	// Both gradient segments must meet at exactly pure yellow.
	assert.Equal(t, RGB{R: 1, G: 1, B: 0}, ColorFor(50))

	just := ColorFor(50.0000001)
	assert.InDelta(t, 1.0, just.R, 1e-6)
	assert.Equal(t, 1.0, just.G)
}

func TestColorForClampsInput(t *testing.T) {
	assert.Equal(t, ColorFor(0), ColorFor(-10))
	assert.Equal(t, ColorFor(100), ColorFor(250))
}

func TestColorChannelsInRange(t *testing.T) {
	for s := 0.0; s <= 100; s += 0.5 {
		c := ColorFor(s)
		assert.GreaterOrEqual(t, c.R, 0.0)
		assert.LessOrEqual(t, c.R, 1.0)
		assert.GreaterOrEqual(t, c.G, 0.0)
		assert.LessOrEqual(t, c.G, 1.0)
		assert.Equal(t, 0.0, c.B)
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		strength float64
		want     Band
	}{
		{0, BandWeak},
		{32.9, BandWeak},
		{33, BandMedium},
		{65.9, BandMedium},
		{66, BandStrong},
		{100, BandStrong},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFor(tc.strength), "strength %v", tc.strength)
	}
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "weak", BandWeak.String())
	assert.Equal(t, "medium", BandMedium.String())
	assert.Equal(t, "strong", BandStrong.String())
}
