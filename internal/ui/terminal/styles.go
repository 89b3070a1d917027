package terminal

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")

	gridStyle   = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(baseDimFg)
)
