package coverage

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRingsCount(t *testing.T) {
	p := DefaultParams()
	samples := SampleRings(r3.Vector{}, p)

	// 400 / 20 rings = 20 per ring, no remainder.
	assert.Len(t, samples, 400)
}

func TestSampleRingsRemainderDropped(t *testing.T) {
	p := DefaultParams()
	p.PointsPerEmitter = 410 // 410 / 20 = 20 per ring; 10 dropped

	samples := SampleRings(r3.Vector{}, p)
	assert.Len(t, samples, 400)
}

func TestSampleRingsDistancesInRange(t *testing.T) {
	p := DefaultParams()
	samples := SampleRings(r3.Vector{X: 10, Y: -20, Z: 5}, p)
	require.NotEmpty(t, samples)

	for _, s := range samples {
		assert.GreaterOrEqual(t, s.Distance, p.MinRange)
		assert.LessOrEqual(t, s.Distance, p.MaxRange)
	}
}

func TestRingDistanceEndpoints(t *testing.T) {
	assert.Equal(t, 5.0, RingDistance(0, 5, 150))
	assert.Equal(t, 150.0, RingDistance(NumRings-1, 5, 150))
}

func TestSampleRingsPositionsMatchDistance(t *testing.T) {
	center := r3.Vector{X: 100, Y: 50, Z: 12}
	p := DefaultParams()

	for _, s := range SampleRings(center, p) {
		dx := s.Position.X - center.X
		dy := s.Position.Y - center.Y
		assert.InDelta(t, s.Distance, math.Hypot(dx, dy), 1e-9)
		assert.Equal(t, center.Z, s.Position.Z)
	}
}

func TestSampleRingsFirstPointDueEast(t *testing.T) {
	p := DefaultParams()
	samples := SampleRings(r3.Vector{}, p)
	require.NotEmpty(t, samples)

	// Angle 0 lies along +X.
	assert.InDelta(t, p.MinRange, samples[0].Position.X, 1e-9)
	assert.InDelta(t, 0, samples[0].Position.Y, 1e-9)
}

func TestSampleRingsDeterministic(t *testing.T) {
	center := r3.Vector{X: -3, Y: 7, Z: 1}
	p := DefaultParams()

	a := SampleRings(center, p)
	b := SampleRings(center, p)
	assert.Empty(t, cmp.Diff(a, b))
}

func TestSampleRingsDegenerateRange(t *testing.T) {
	p := Params{MaxRange: 10, MinRange: 10, PointsPerEmitter: 40, PointSize: 1}

	for _, s := range SampleRings(r3.Vector{}, p) {
		assert.Equal(t, 10.0, s.Distance)
	}
}
