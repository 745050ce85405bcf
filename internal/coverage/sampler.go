package coverage

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sample is one candidate coverage point before scoring: a world position
// and its horizontal distance from the emitter.
type Sample struct {
	Position r3.Vector
	Distance float64
}

// RingDistance returns the sampling distance of ring i, linearly
// interpolated over [minRange, maxRange]. With a single ring the distance
// is minRange.
func RingDistance(ring int, minRange, maxRange float64) float64 {
	if NumRings <= 1 {
		return minRange
	}
	progress := float64(ring) / float64(NumRings-1)
	return minRange + (maxRange-minRange)*progress
}

// SampleRings produces the deterministic point set for one emitter:
// NumRings concentric rings between MinRange and MaxRange, with
// PointsPerEmitter/NumRings points per ring at equally spaced angles in
// the horizontal plane at the emitter's height.
//
// The division remainder is dropped, so the returned count can be slightly
// below PointsPerEmitter. Two calls with the same center and params return
// identical samples.
func SampleRings(center r3.Vector, p Params) []Sample {
	pointsPerRing := p.PointsPerEmitter / NumRings
	if pointsPerRing < 1 {
		return nil
	}

	samples := make([]Sample, 0, NumRings*pointsPerRing)
	for ring := 0; ring < NumRings; ring++ {
		dist := RingDistance(ring, p.MinRange, p.MaxRange)
		for j := 0; j < pointsPerRing; j++ {
			angle := 2 * math.Pi * float64(j) / float64(pointsPerRing)
			samples = append(samples, Sample{
				Position: r3.Vector{
					X: center.X + dist*math.Cos(angle),
					Y: center.Y + dist*math.Sin(angle),
					Z: center.Z,
				},
				Distance: dist,
			})
		}
	}
	return samples
}
