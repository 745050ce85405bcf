package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, busy bool, errMsg string, emitters, points int, minRange, maxRange, avgStrength float64) string {
	status := ""
	switch {
	case errMsg != "":
		status = StyleStatusError.Render("[ERROR] " + errMsg)
	case busy:
		status = StyleStatusBusy.Render("[COMPUTING]")
	default:
		status = StyleStatusReady.Render("[READY]")
	}

	info := fmt.Sprintf(" Emitters: %d  Points: %d  Range: %g-%gm  Avg signal: %.1f%%",
		emitters, points, minRange, maxRange, avgStrength)

	content := status + StyleStatusBar.Foreground(ColorText).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
