package coverage

import "math"

// Strength maps a distance to a signal strength in [0, 100] using a linear
// falloff: 100 at minRange, 0 at maxRange. Distances outside the range are
// clamped. A zero-width range (minRange == maxRange) has no meaningful
// falloff and scores a constant 100. The result is never NaN.
func Strength(distance, minRange, maxRange float64) float64 {
	if math.IsNaN(distance) {
		return 0
	}
	if minRange == maxRange {
		return 100
	}

	if distance < minRange {
		distance = minRange
	}
	if distance > maxRange {
		distance = maxRange
	}

	strength := 100 * (maxRange - distance) / (maxRange - minRange)
	if strength < 0 {
		return 0
	}
	if strength > 100 {
		return 100
	}
	return strength
}
