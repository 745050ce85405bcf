package ui

// RenderMapPanel wraps the heatmap content with a styled border.
// The actual map rendering is done externally to avoid import cycles.
func RenderMapPanel(width, height int, mapContent, legend string) string {
	content := mapContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
