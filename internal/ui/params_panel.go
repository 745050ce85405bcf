package ui

import (
	"fmt"
	"strings"

	"rf-heatmap.klederson.com/internal/coverage"
)

// Names of the adjustable parameters, in panel order. The selected index
// in the app model refers into this list.
var ParamNames = []string{"Max range", "Min range", "Points/emitter", "Point size"}

// RenderParamsPanel renders the parameter control panel with the selected
// row highlighted. It replaces the slider window of a desktop UI: keys
// select and step the values, R re-runs the engine.
func RenderParamsPanel(params coverage.Params, selected, width, height int) string {
	innerW := width - 4
	if innerW < 16 {
		innerW = 16
	}

	title := StylePanelTitle.Render("PARAMETERS")
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))

	values := []string{
		fmt.Sprintf("%.0f m", params.MaxRange),
		fmt.Sprintf("%.0f m", params.MinRange),
		fmt.Sprintf("%d", params.PointsPerEmitter),
		fmt.Sprintf("%.1f", params.PointSize),
	}

	lines := []string{title, separator}
	for i, name := range ParamNames {
		row := fmt.Sprintf(" %-16s %10s ", name, values[i])
		if len(row) > innerW {
			row = row[:innerW]
		}
		if i == selected {
			lines = append(lines, StyleCursorLine.Render(row))
		} else {
			lines = append(lines, StyleLabel.Render(fmt.Sprintf(" %-16s", name))+StyleValue.Render(fmt.Sprintf("%10s ", values[i])))
		}
	}
	lines = append(lines, "")
	lines = append(lines, StyleHelp.Render(" tab select  +/- adjust"))
	lines = append(lines, StyleHelp.Render(" r refresh"))

	innerH := height - 2
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelActive.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}
