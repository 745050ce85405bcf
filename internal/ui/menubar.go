package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"rf-heatmap.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, busy bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"R", "efresh"},
		{"Tab", " param"},
		{"+/-", " adjust"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if busy {
		status = StyleStatusBusy.Render("COMPUTING")
	} else {
		status = StyleStatusReady.Render("READY")
	}

	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Scene: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sourceInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
