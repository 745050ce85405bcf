package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the map panel and the side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, mapPanel, sideColumn, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, sideColumn)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// ComposeSideColumn stacks the parameter panel above the stats panel.
func ComposeSideColumn(paramsPanel, statsPanel string) string {
	return lipgloss.JoinVertical(lipgloss.Left, paramsPanel, statsPanel)
}
