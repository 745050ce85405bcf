package coverage

// RGB is a color with channels in [0, 1], the shape point-cloud renderers
// consume directly.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Band classifies a strength value for statistics and display.
type Band int

const (
	BandWeak   Band = iota // [0, 33)
	BandMedium             // [33, 66)
	BandStrong             // [66, 100]
)

func (b Band) String() string {
	switch b {
	case BandMedium:
		return "medium"
	case BandStrong:
		return "strong"
	default:
		return "weak"
	}
}

// Band strength thresholds.
const (
	bandMediumMin = 33.0
	bandStrongMin = 66.0
)

// ColorFor maps a strength to the red→yellow→green gradient. Both
// segments meet at exactly (1, 1, 0) for strength 50. Out-of-range
// strengths are clamped first.
func ColorFor(strength float64) RGB {
	if strength < 0 {
		strength = 0
	}
	if strength > 100 {
		strength = 100
	}

	if strength > 50 {
		// Yellow → green: fade red out.
		return RGB{R: 1 - (strength-50)/50, G: 1, B: 0}
	}
	// Red → yellow: fade green in.
	return RGB{R: 1, G: strength / 50, B: 0}
}

// BandFor buckets a strength value. The same comparisons drive the
// statistics counts, so band totals always sum to the point total.
func BandFor(strength float64) Band {
	switch {
	case strength < bandMediumMin:
		return BandWeak
	case strength < bandStrongMin:
		return BandMedium
	default:
		return BandStrong
	}
}
