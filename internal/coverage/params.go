// Package coverage implements the RF coverage sampling and scoring engine:
// deterministic ring sampling around each emitter, a linear signal falloff
// model, gradient coloring and aggregate statistics.
package coverage

import (
	"errors"
	"fmt"
)

// NumRings is the number of concentric distance rings sampled per emitter.
// Fixed rings (rather than random draws) guarantee that every strength band
// is represented at every density and keep runs reproducible.
const NumRings = 20

// Default sample parameters.
const (
	DefaultMaxRange         = 150.0
	DefaultMinRange         = 5.0
	DefaultPointsPerEmitter = 400
	DefaultPointSize        = 4.0
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid sample parameters")

// Params are the tunables for one coverage run. PointSize is a
// presentation hint passed through to consumers; the sampling and scoring
// math never reads it.
type Params struct {
	MaxRange         float64 `json:"max_range"`
	MinRange         float64 `json:"min_range"`
	PointsPerEmitter int     `json:"points_per_emitter"`
	PointSize        float64 `json:"point_size"`
}

// DefaultParams returns the stock parameter set.
func DefaultParams() Params {
	return Params{
		MaxRange:         DefaultMaxRange,
		MinRange:         DefaultMinRange,
		PointsPerEmitter: DefaultPointsPerEmitter,
		PointSize:        DefaultPointSize,
	}
}

// Validate checks the parameter invariants. MinRange == MaxRange is the
// documented degenerate case (constant 100% strength) and passes; an
// inverted range does not. Validation never corrects values silently.
func (p Params) Validate() error {
	if p.MinRange <= 0 || p.MaxRange <= 0 {
		return fmt.Errorf("%w: range bounds must be positive (min=%g max=%g)", ErrInvalidParams, p.MinRange, p.MaxRange)
	}
	if p.MinRange > p.MaxRange {
		return fmt.Errorf("%w: min range %g exceeds max range %g", ErrInvalidParams, p.MinRange, p.MaxRange)
	}
	if p.PointsPerEmitter < NumRings {
		return fmt.Errorf("%w: points per emitter %d is below the ring count %d", ErrInvalidParams, p.PointsPerEmitter, NumRings)
	}
	return nil
}
