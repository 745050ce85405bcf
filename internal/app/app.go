package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"rf-heatmap.klederson.com/internal/config"
	"rf-heatmap.klederson.com/internal/coverage"
	"rf-heatmap.klederson.com/internal/heatmap"
	"rf-heatmap.klederson.com/internal/ui"
)

// historyCapacity bounds the avg-strength trend buffer.
const historyCapacity = 64

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	engine  *coverage.Engine
	history *StrengthRing
}

// AppModel is the root Bubble Tea model for the coverage heatmap.
type AppModel struct {
	width  int
	height int

	params     coverage.Params
	selected   int // index into ui.ParamNames
	busy       bool
	errMsg     string
	sourceName string

	shared *shared

	// Result of the most recent completed run
	result *coverage.Result
}

// New creates a new AppModel over the given engine.
func New(engine *coverage.Engine, params coverage.Params, sourceName string) AppModel {
	return AppModel{
		params:     params,
		sourceName: sourceName,
		busy:       true,
		shared: &shared{
			engine:  engine,
			history: NewStrengthRing(historyCapacity),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return runCmd(m.shared.engine, m.params)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RunCompletedMsg:
		m.busy = false
		m.errMsg = ""
		m.result = msg.Result
		if msg.Result.Stats.TotalPoints > 0 {
			m.shared.history.Push(msg.Result.Stats.AvgStrength)
		}
		return m, nil

	case RunFailedMsg:
		m.busy = false
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "r", "R":
		if !m.busy {
			m.busy = true
			return m, runCmd(m.shared.engine, m.params)
		}

	case "tab", "down", "j":
		m.selected = (m.selected + 1) % len(ui.ParamNames)

	case "shift+tab", "up", "k":
		m.selected = (m.selected + len(ui.ParamNames) - 1) % len(ui.ParamNames)

	case "+", "=", "right", "l":
		m.params = adjustParam(m.params, m.selected, 1)

	case "-", "left", "h":
		m.params = adjustParam(m.params, m.selected, -1)
	}

	return m, nil
}

// adjustParam steps one parameter and clamps it to a valid value so the
// next refresh never trips validation.
func adjustParam(p coverage.Params, selected, direction int) coverage.Params {
	d := float64(direction)
	switch selected {
	case 0:
		p.MaxRange += d * config.MaxRangeStep
		if p.MaxRange < p.MinRange {
			p.MaxRange = p.MinRange
		}
	case 1:
		p.MinRange += d * config.MinRangeStep
		if p.MinRange < config.MinRangeStep {
			p.MinRange = config.MinRangeStep
		}
		if p.MinRange > p.MaxRange {
			p.MinRange = p.MaxRange
		}
	case 2:
		p.PointsPerEmitter += direction * config.PointsStep
		if p.PointsPerEmitter < coverage.NumRings {
			p.PointsPerEmitter = coverage.NumRings
		}
	case 3:
		p.PointSize += d * config.PointSizeStep
		if p.PointSize < config.PointSizeStep {
			p.PointSize = config.PointSizeStep
		}
	}
	return p
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing RF heatmap..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	mapW := m.width * 3 / 4
	if mapW < 30 {
		mapW = 30
	}
	sideW := m.width - mapW
	if sideW < 20 {
		sideW = 20
		mapW = m.width - sideW
	}

	menuBar := ui.RenderMenuBar(m.width, m.sourceName, m.busy)

	innerW := mapW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}

	var mapContent string
	if m.result == nil || m.result.Stats.TotalPoints == 0 {
		mapContent = heatmap.RenderEmpty(innerW, innerH)
	} else {
		mapContent = heatmap.Render(innerW, innerH, m.result)
	}
	legend := heatmap.RenderLegend(innerW)
	mapPanel := ui.RenderMapPanel(mapW, bodyH, mapContent, legend)

	paramsH := 11
	if paramsH > bodyH/2 {
		paramsH = bodyH / 2
	}
	paramsPanel := ui.RenderParamsPanel(m.params, m.selected, sideW, paramsH)
	statsPanel := ui.RenderStatsPanel(m.stats(), m.shared.history.Values(), sideW, bodyH-paramsH)
	sideColumn := ui.ComposeSideColumn(paramsPanel, statsPanel)

	emitters, points := 0, 0
	avg := 0.0
	if m.result != nil {
		emitters = len(m.result.Emitters)
		points = m.result.Stats.TotalPoints
		avg = m.result.Stats.AvgStrength
	}
	statusBar := ui.RenderStatusBar(m.width, m.busy, m.errMsg,
		emitters, points, m.params.MinRange, m.params.MaxRange, avg)

	return ui.ComposeLayout(menuBar, mapPanel, sideColumn, statusBar)
}

func (m AppModel) stats() coverage.Statistics {
	if m.result == nil {
		return coverage.Statistics{}
	}
	return m.result.Stats
}

// runCmd executes one coverage run off the UI goroutine.
func runCmd(engine *coverage.Engine, params coverage.Params) tea.Cmd {
	return func() tea.Msg {
		res, err := engine.Run(params)
		if err != nil {
			return RunFailedMsg{Err: err}
		}
		return RunCompletedMsg{Result: res}
	}
}
