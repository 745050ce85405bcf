package heatmap

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"rf-heatmap.klederson.com/internal/config"
	"rf-heatmap.klederson.com/internal/coverage"
)

var (
	colorWeak    = lipgloss.Color("#FF3B30")
	colorMedium  = lipgloss.Color("#FFD60A")
	colorStrong  = lipgloss.Color("#34C759")
	colorEmitter = lipgloss.Color("#FFFFFF")
	colorFrame   = lipgloss.Color("#5A5A5A")

	styleWeak    = lipgloss.NewStyle().Foreground(colorWeak)
	styleMedium  = lipgloss.NewStyle().Foreground(colorMedium)
	styleStrong  = lipgloss.NewStyle().Foreground(colorStrong)
	styleEmitter = lipgloss.NewStyle().Foreground(colorEmitter).Bold(true)
	styleLegend  = lipgloss.NewStyle().Foreground(colorFrame)
	styleGuide   = lipgloss.NewStyle().Foreground(colorFrame)
)

// cell values; higher wins when points overlap.
const (
	cellEmpty = iota
	cellGuide
	cellWeak
	cellMedium
	cellStrong
	cellEmitter
)

// Render produces the colored top-down coverage map as a styled string.
// Each sample point paints its cell with its band color; overlapping
// points resolve to the stronger band, and emitter markers always win.
func Render(width, height int, res *coverage.Result) string {
	if width < 10 || height < 5 || res == nil {
		return ""
	}

	bounds := ResultBounds(res)

	grid := make([][]int, height)
	for i := range grid {
		grid[i] = make([]int, width)
	}

	drawGuideRings(grid, bounds, res, width, height)

	for _, pt := range res.Points {
		col, row, ok := Project(pt.Position.X, pt.Position.Y, bounds, width, height)
		if !ok {
			continue
		}
		v := cellWeak
		switch coverage.BandFor(pt.Strength) {
		case coverage.BandMedium:
			v = cellMedium
		case coverage.BandStrong:
			v = cellStrong
		}
		if v > grid[row][col] {
			grid[row][col] = v
		}
	}

	for _, em := range res.Emitters {
		if col, row, ok := Project(em.Position.X, em.Position.Y, bounds, width, height); ok {
			grid[row][col] = cellEmitter
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sb.WriteString(renderCell(grid[row][col]))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// drawGuideRings traces faint range circles around each emitter, evenly
// spaced out to the maximum range. Sample points paint over them.
func drawGuideRings(grid [][]int, b Bounds, res *coverage.Result, width, height int) {
	const steps = 180
	for _, em := range res.Emitters {
		for i := 1; i <= config.RingMarks; i++ {
			radius := res.Params.MaxRange * float64(i) / float64(config.RingMarks)
			for s := 0; s < steps; s++ {
				angle := 2 * math.Pi * float64(s) / steps
				x := em.Position.X + radius*math.Cos(angle)
				y := em.Position.Y + radius*math.Sin(angle)
				if col, row, ok := Project(x, y, b, width, height); ok && grid[row][col] < cellGuide {
					grid[row][col] = cellGuide
				}
			}
		}
	}
}

func renderCell(v int) string {
	switch v {
	case cellEmitter:
		return styleEmitter.Render("T")
	case cellStrong:
		return styleStrong.Render("*")
	case cellMedium:
		return styleMedium.Render("*")
	case cellWeak:
		return styleWeak.Render("*")
	case cellGuide:
		return styleGuide.Render("·")
	default:
		return " "
	}
}

// RenderLegend produces the map legend line.
func RenderLegend(width int) string {
	legend := styleWeak.Render("* weak") +
		"  " + styleMedium.Render("* medium") +
		"  " + styleStrong.Render("* strong") +
		"  " + styleEmitter.Render("T emitter")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}

// RenderEmpty produces the placeholder shown when no emitters are visible.
func RenderEmpty(width, height int) string {
	msg := styleLegend.Render("No visible emitters in scene")
	lines := make([]string, height)
	mid := height / 2
	pad := (width - lipgloss.Width(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	for i := range lines {
		if i == mid {
			lines[i] = strings.Repeat(" ", pad) + msg
		}
	}
	return strings.Join(lines, "\n")
}
