package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"rf-heatmap.klederson.com/internal/coverage"
)

// RenderStatsPanel renders the statistics side panel: per-emitter point
// counts, strength summary, band distribution bars and the average
// strength trend across refreshes.
func RenderStatsPanel(stats coverage.Statistics, history []float64, width, height int) string {
	innerW := width - 4
	if innerW < 16 {
		innerW = 16
	}

	title := StylePanelTitle.Render(fmt.Sprintf("COVERAGE [%d pts]", stats.TotalPoints))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))

	lines := []string{title, separator}

	if stats.TotalPoints == 0 {
		lines = append(lines, "")
		lines = append(lines, StyleHelp.Render(" No coverage points"))
		lines = append(lines, StyleHelp.Render(" Press r to refresh"))
	} else {
		for _, ec := range stats.PerEmitter {
			name := ec.Emitter
			nameMax := innerW - 8
			if nameMax < 4 {
				nameMax = 4
			}
			if len(name) > nameMax {
				name = name[:nameMax]
			}
			lines = append(lines, StyleValue.Render(fmt.Sprintf(" %-*s", nameMax, name))+
				StyleLabel.Render(fmt.Sprintf("%6d", ec.Points)))
		}

		lines = append(lines, "")
		lines = append(lines, StyleLabel.Render(" Signal strength"))
		lines = append(lines, fmt.Sprintf("  min %s  max %s",
			StyleValue.Render(fmt.Sprintf("%.1f%%", stats.MinStrength)),
			StyleValue.Render(fmt.Sprintf("%.1f%%", stats.MaxStrength))))
		lines = append(lines, "  avg "+StyleValue.Render(fmt.Sprintf("%.1f%%", stats.AvgStrength)))

		lines = append(lines, "")
		lines = append(lines, StyleLabel.Render(" Band distribution"))
		barW := innerW - 16
		if barW < 6 {
			barW = 6
		}
		lines = append(lines, bandLine(StyleBandWeak, "weak", stats.WeakPct, barW))
		lines = append(lines, bandLine(StyleBandMedium, "med", stats.MediumPct, barW))
		lines = append(lines, bandLine(StyleBandStrong, "strong", stats.StrongPct, barW))

		if len(history) > 1 {
			lines = append(lines, "")
			lines = append(lines, StyleLabel.Render(" Avg trend"))
			sparkW := innerW - 4
			if sparkW < 10 {
				sparkW = 10
			}
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorAccent).Render(renderSparkline(history, sparkW)))
		}
	}

	innerH := height - 2
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; clamp overflow ourselves.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func bandLine(style lipgloss.Style, label string, pct float64, barW int) string {
	filled := int(pct/100*float64(barW) + 0.5)
	if filled > barW {
		filled = barW
	}
	bar := style.Render(strings.Repeat("|", filled)) + StyleLabel.Render(strings.Repeat("-", barW-filled))
	return fmt.Sprintf(" %s %s %s", style.Render(fmt.Sprintf("%-6s", label)), bar,
		StyleValue.Render(fmt.Sprintf("%5.1f%%", pct)))
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
