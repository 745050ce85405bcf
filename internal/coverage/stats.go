package coverage

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EmitterCount is the number of points generated for one emitter.
type EmitterCount struct {
	Emitter string `json:"emitter"`
	Points  int    `json:"points"`
}

// Statistics summarizes one coverage run. All values derive from the
// run's point set alone and are recomputed wholesale every run.
type Statistics struct {
	TotalPoints int            `json:"total_points"`
	PerEmitter  []EmitterCount `json:"per_emitter"`

	MinStrength float64 `json:"min_strength"`
	MaxStrength float64 `json:"max_strength"`
	AvgStrength float64 `json:"avg_strength"`

	WeakCount   int `json:"weak_count"`
	MediumCount int `json:"medium_count"`
	StrongCount int `json:"strong_count"`

	WeakPct   float64 `json:"weak_pct"`
	MediumPct float64 `json:"medium_pct"`
	StrongPct float64 `json:"strong_pct"`
}

// computeStats aggregates the point set. With zero points every field is
// zero; percentages never divide by zero. Min/max are the values actually
// achieved, not clamped to the theoretical 0/100 extremes.
func computeStats(points []Point, perEmitter []EmitterCount) Statistics {
	s := Statistics{
		TotalPoints: len(points),
		PerEmitter:  perEmitter,
	}
	if len(points) == 0 {
		return s
	}

	strengths := make([]float64, len(points))
	for i, pt := range points {
		strengths[i] = pt.Strength
		switch BandFor(pt.Strength) {
		case BandWeak:
			s.WeakCount++
		case BandMedium:
			s.MediumCount++
		case BandStrong:
			s.StrongCount++
		}
	}

	s.MinStrength = floats.Min(strengths)
	s.MaxStrength = floats.Max(strengths)
	s.AvgStrength = stat.Mean(strengths, nil)

	total := float64(s.TotalPoints)
	s.WeakPct = float64(s.WeakCount) / total * 100
	s.MediumPct = float64(s.MediumCount) / total * 100
	s.StrongPct = float64(s.StrongCount) / total * 100
	return s
}
