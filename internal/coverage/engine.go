package coverage

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"rf-heatmap.klederson.com/internal/emitter"
)

// Point is one scored coverage sample. Points are immutable once created
// and live for exactly one run.
type Point struct {
	Emitter  string    `json:"emitter"`
	Position r3.Vector `json:"position"`
	Distance float64   `json:"distance"`
	Strength float64   `json:"strength"`
	Color    RGB       `json:"color"`
}

// Result is the complete output of one coverage run. The engine hands
// ownership to the caller; the next run builds a fresh Result rather than
// updating this one.
type Result struct {
	Params   Params            `json:"params"`
	Emitters []emitter.Emitter `json:"emitters"`
	Points   []Point           `json:"points"`
	Stats    Statistics        `json:"stats"`
}

// Engine orchestrates discovery, sampling, scoring and coloring. It holds
// no state between runs beyond the directory it queries.
type Engine struct {
	directory *emitter.Directory
}

// NewEngine creates an engine over the given emitter directory.
func NewEngine(directory *emitter.Directory) *Engine {
	return &Engine{directory: directory}
}

// Emitters returns the current emitter snapshot without sampling.
func (e *Engine) Emitters() ([]emitter.Emitter, error) {
	return e.directory.Discover()
}

// Run executes one synchronous coverage pass. It fails fast on invalid
// params and on scene query errors; everything else, including an empty
// emitter set, produces a (possibly empty) Result.
//
// Points are ordered emitter-major, ring-major, angle-major. Consumers
// that index points by position rely on this ordering.
func (e *Engine) Run(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	emitters, err := e.directory.Discover()
	if err != nil {
		return nil, fmt.Errorf("emitter discovery failed: %w", err)
	}

	pointsPerRing := p.PointsPerEmitter / NumRings
	points := make([]Point, 0, len(emitters)*NumRings*pointsPerRing)
	perEmitter := make([]EmitterCount, 0, len(emitters))

	for _, em := range emitters {
		count := 0
		for _, s := range SampleRings(em.Position, p) {
			if !validSample(s) {
				// A malformed scene position must not poison the
				// aggregate stats; drop the sample and move on.
				continue
			}
			strength := Strength(s.Distance, p.MinRange, p.MaxRange)
			points = append(points, Point{
				Emitter:  em.Name,
				Position: s.Position,
				Distance: s.Distance,
				Strength: strength,
				Color:    ColorFor(strength),
			})
			count++
		}
		perEmitter = append(perEmitter, EmitterCount{Emitter: em.Name, Points: count})
	}

	return &Result{
		Params:   p,
		Emitters: emitters,
		Points:   points,
		Stats:    computeStats(points, perEmitter),
	}, nil
}

func validSample(s Sample) bool {
	if s.Distance < 0 || math.IsNaN(s.Distance) || math.IsInf(s.Distance, 0) {
		return false
	}
	for _, v := range []float64{s.Position.X, s.Position.Y, s.Position.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
