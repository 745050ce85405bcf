package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rf-heatmap.klederson.com/internal/coverage"
)

func TestStrengthRingChronologicalOrder(t *testing.T) {
	r := NewStrengthRing(3)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []float64{1, 2}, r.Values())
	assert.Equal(t, 2.0, r.Last())
}

func TestStrengthRingWrapsOldestFirst(t *testing.T) {
	r := NewStrengthRing(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{3, 4, 5}, r.Values())
	assert.Equal(t, 5.0, r.Last())
}

func TestAdjustParamClampsRange(t *testing.T) {
	p := coverage.Params{MaxRange: 20, MinRange: 15, PointsPerEmitter: 400, PointSize: 4}

	// Max range never drops below min range.
	p = adjustParam(p, 0, -1)
	assert.Equal(t, 15.0, p.MaxRange)
	p = adjustParam(p, 0, -1)
	assert.Equal(t, 15.0, p.MaxRange)

	// Min range never rises above max range.
	p = adjustParam(p, 1, 1)
	assert.Equal(t, 15.0, p.MinRange)

	// Min range never drops below one step.
	p.MinRange = 1
	p = adjustParam(p, 1, -1)
	assert.Equal(t, 1.0, p.MinRange)
}

func TestAdjustParamClampsPointsAndSize(t *testing.T) {
	p := coverage.DefaultParams()

	p.PointsPerEmitter = coverage.NumRings
	p = adjustParam(p, 2, -1)
	assert.Equal(t, coverage.NumRings, p.PointsPerEmitter)
	p = adjustParam(p, 2, 1)
	assert.Greater(t, p.PointsPerEmitter, coverage.NumRings)

	p.PointSize = 0.5
	p = adjustParam(p, 3, -1)
	assert.Equal(t, 0.5, p.PointSize)
}

func TestAdjustedParamsStayValid(t *testing.T) {
	p := coverage.DefaultParams()
	for selected := 0; selected < 4; selected++ {
		for i := 0; i < 100; i++ {
			p = adjustParam(p, selected, -1)
			require.NoError(t, p.Validate())
		}
	}
}

func TestUpdateRunCompletedRecordsHistory(t *testing.T) {
	m := New(nil, coverage.DefaultParams(), "demo")

	res := &coverage.Result{
		Params: coverage.DefaultParams(),
		Stats:  coverage.Statistics{TotalPoints: 400, AvgStrength: 52.5},
	}
	updated, _ := m.Update(RunCompletedMsg{Result: res})
	model := updated.(AppModel)

	assert.False(t, model.busy)
	assert.Equal(t, res, model.result)
	assert.Equal(t, []float64{52.5}, model.shared.history.Values())

	// Empty runs do not pollute the trend.
	empty := &coverage.Result{Params: coverage.DefaultParams()}
	updated, _ = model.Update(RunCompletedMsg{Result: empty})
	model = updated.(AppModel)
	assert.Equal(t, []float64{52.5}, model.shared.history.Values())
}

func TestUpdateRunFailedShowsError(t *testing.T) {
	m := New(nil, coverage.DefaultParams(), "demo")

	updated, _ := m.Update(RunFailedMsg{Err: errors.New("scene unavailable")})
	model := updated.(AppModel)
	assert.False(t, model.busy)
	assert.Equal(t, "scene unavailable", model.errMsg)
}

func TestKeyQuit(t *testing.T) {
	m := New(nil, coverage.DefaultParams(), "demo")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestKeyTabCyclesSelection(t *testing.T) {
	m := New(nil, coverage.DefaultParams(), "demo")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	model := updated.(AppModel)
	assert.Equal(t, 1, model.selected)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model = updated.(AppModel)
	assert.Equal(t, 0, model.selected)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model = updated.(AppModel)
	assert.Equal(t, 3, model.selected)
}

func TestWindowResizeStored(t *testing.T) {
	m := New(nil, coverage.DefaultParams(), "demo")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(AppModel)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}
