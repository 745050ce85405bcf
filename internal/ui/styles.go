package ui

import "github.com/charmbracelet/lipgloss"

// Signal palette: red (weak) through amber (medium) to green (strong),
// with neutral chrome.
var (
	ColorWeak    = lipgloss.Color("#FF3B30")
	ColorMedium  = lipgloss.Color("#FFD60A")
	ColorStrong  = lipgloss.Color("#34C759")
	ColorAccent  = lipgloss.Color("#4DA6FF")
	ColorBright  = lipgloss.Color("#FFFFFF")
	ColorText    = lipgloss.Color("#C8C8C8")
	ColorDim     = lipgloss.Color("#5A5A5A")
	ColorError   = lipgloss.Color("#FF3300")
	ColorWarning = lipgloss.Color("#FFAA00")
	ColorBarBg   = lipgloss.Color("#1A1A2E")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusReady = lipgloss.NewStyle().
				Foreground(ColorStrong).
				Bold(true)

	StyleStatusBusy = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDim)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleCursorLine = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAccent).
			Bold(true)

	StyleBandWeak = lipgloss.NewStyle().
			Foreground(ColorWeak)

	StyleBandMedium = lipgloss.NewStyle().
			Foreground(ColorMedium)

	StyleBandStrong = lipgloss.NewStyle().
			Foreground(ColorStrong)
)
