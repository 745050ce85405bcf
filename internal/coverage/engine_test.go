package coverage

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rf-heatmap.klederson.com/internal/emitter"
	"rf-heatmap.klederson.com/internal/scene"
)

// stubSource is a fixed in-memory scene.
type stubSource struct {
	objects []scene.Object
	err     error
}

func (s *stubSource) Objects() ([]scene.Object, error) {
	return s.objects, s.err
}

func newEngine(objects ...scene.Object) *Engine {
	dir := emitter.NewDirectory(&stubSource{objects: objects}, "")
	return NewEngine(dir)
}

func towerAt(name string, x, y, z float64) scene.Object {
	return scene.Object{ID: name, Name: name, Position: r3.Vector{X: x, Y: y, Z: z}, Visible: true}
}

func TestRunSingleEmitterAtOrigin(t *testing.T) {
	eng := newEngine(towerAt("Tower_A", 0, 0, 0))

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	// 20 rings x 20 points per ring.
	require.Len(t, res.Points, 400)
	require.Len(t, res.Emitters, 1)

	first := res.Points[0]
	assert.Equal(t, 5.0, first.Distance)
	assert.Equal(t, 100.0, first.Strength)
	assert.Equal(t, RGB{R: 0, G: 1, B: 0}, first.Color)

	last := res.Points[len(res.Points)-1]
	assert.Equal(t, 150.0, last.Distance)
	assert.Equal(t, 0.0, last.Strength)
	assert.Equal(t, RGB{R: 1, G: 0, B: 0}, last.Color)

	assert.Equal(t, 400, res.Stats.TotalPoints)
	assert.Equal(t, 100.0, res.Stats.MaxStrength)
	assert.Equal(t, 0.0, res.Stats.MinStrength)
}

func TestRunDegenerateRangeAllStrong(t *testing.T) {
	eng := newEngine(towerAt("Tower_A", 0, 0, 0))

	p := Params{MaxRange: 10, MinRange: 10, PointsPerEmitter: 100, PointSize: 2}
	res, err := eng.Run(p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Points)

	for _, pt := range res.Points {
		assert.Equal(t, 100.0, pt.Strength)
		assert.Equal(t, RGB{R: 0, G: 1, B: 0}, pt.Color)
	}
	assert.Equal(t, res.Stats.TotalPoints, res.Stats.StrongCount)
	assert.Equal(t, 100.0, res.Stats.StrongPct)
	assert.Zero(t, res.Stats.WeakCount)
	assert.Zero(t, res.Stats.MediumCount)
}

func TestRunNoEmittersIsNotAnError(t *testing.T) {
	eng := newEngine(
		scene.Object{ID: "b", Name: "Building_A", Visible: true},
		scene.Object{ID: "t", Name: "Tower_Hidden", Visible: false},
	)

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	assert.Empty(t, res.Points)
	assert.Empty(t, res.Emitters)
	assert.Zero(t, res.Stats.TotalPoints)
	assert.Zero(t, res.Stats.AvgStrength)
	assert.Zero(t, res.Stats.WeakPct)
	assert.Zero(t, res.Stats.MediumPct)
	assert.Zero(t, res.Stats.StrongPct)
}

func TestRunInvertedRangeFailsFast(t *testing.T) {
	eng := newEngine(towerAt("Tower_A", 0, 0, 0))

	p := Params{MaxRange: 10, MinRange: 50, PointsPerEmitter: 400, PointSize: 4}
	res, err := eng.Run(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParams))
	assert.Nil(t, res)
}

func TestRunInvalidParamsVariants(t *testing.T) {
	eng := newEngine(towerAt("Tower_A", 0, 0, 0))

	cases := []Params{
		{MaxRange: 150, MinRange: 0, PointsPerEmitter: 400},
		{MaxRange: 150, MinRange: -5, PointsPerEmitter: 400},
		{MaxRange: -1, MinRange: 5, PointsPerEmitter: 400},
		{MaxRange: 150, MinRange: 5, PointsPerEmitter: NumRings - 1},
	}
	for _, p := range cases {
		p.PointSize = 4
		_, err := eng.Run(p)
		assert.ErrorIs(t, err, ErrInvalidParams, "params %+v", p)
	}
}

func TestRunDeterministic(t *testing.T) {
	eng := newEngine(
		towerAt("Tower_B", 40, -10, 8),
		towerAt("Tower_A", -25, 60, 12),
	)

	a, err := eng.Run(DefaultParams())
	require.NoError(t, err)
	b, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(a, b))
}

func TestRunEmitterMajorOrdering(t *testing.T) {
	eng := newEngine(
		towerAt("Tower_B", 100, 0, 0),
		towerAt("Tower_A", 0, 0, 0),
	)

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)
	require.Len(t, res.Points, 800)

	// Emitters are sorted by name; all of Tower_A's points come first.
	for i, pt := range res.Points {
		want := "Tower_A"
		if i >= 400 {
			want = "Tower_B"
		}
		require.Equal(t, want, pt.Emitter, "point %d", i)
	}

	// Ring-major within one emitter: distances never decrease.
	for i := 1; i < 400; i++ {
		require.GreaterOrEqual(t, res.Points[i].Distance, res.Points[i-1].Distance)
	}
}

func TestRunBandCountsSumToTotal(t *testing.T) {
	eng := newEngine(
		towerAt("Tower_A", 0, 0, 0),
		towerAt("Tower_B", 300, 300, 5),
	)

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	sum := res.Stats.WeakCount + res.Stats.MediumCount + res.Stats.StrongCount
	assert.Equal(t, res.Stats.TotalPoints, sum)
	assert.InDelta(t, 100.0, res.Stats.WeakPct+res.Stats.MediumPct+res.Stats.StrongPct, 1e-9)
}

func TestRunRejectsMalformedPositions(t *testing.T) {
	eng := newEngine(
		scene.Object{
			ID:       "bad",
			Name:     "Tower_Bad",
			Position: r3.Vector{X: math.NaN(), Y: 0, Z: 0},
			Visible:  true,
		},
		towerAt("Tower_Good", 0, 0, 0),
	)

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	// The malformed emitter contributes nothing; stats stay clean.
	assert.Equal(t, 400, res.Stats.TotalPoints)
	require.Len(t, res.Stats.PerEmitter, 2)
	assert.Equal(t, 0, res.Stats.PerEmitter[0].Points) // Tower_Bad sorts first
	assert.Equal(t, 400, res.Stats.PerEmitter[1].Points)
	assert.False(t, math.IsNaN(res.Stats.AvgStrength))
}

func TestRunSceneErrorPropagates(t *testing.T) {
	dir := emitter.NewDirectory(&stubSource{err: errors.New("backend down")}, "")
	eng := NewEngine(dir)

	_, err := eng.Run(DefaultParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}

func TestRunPerEmitterCounts(t *testing.T) {
	eng := newEngine(
		towerAt("Tower_A", 0, 0, 0),
		towerAt("Tower_B", 500, 0, 0),
		towerAt("Tower_C", 0, 500, 0),
	)

	res, err := eng.Run(DefaultParams())
	require.NoError(t, err)

	require.Len(t, res.Stats.PerEmitter, 3)
	for _, ec := range res.Stats.PerEmitter {
		assert.Equal(t, 400, ec.Points)
	}
	assert.Equal(t, 1200, res.Stats.TotalPoints)
}
