package render

import "github.com/charmbracelet/lipgloss"

// Color palette (256-color codes).
const (
	ColorRed      = "196" // path nodes
	ColorWhite    = "255" // headers
	ColorGray     = "245" // secondary text
	ColorDarkGray = "238" // off-path nodes
	ColorYellow   = "220" // warnings
)

// Styles holds the lipgloss styles used by Terminal.
type Styles struct {
	Header  lipgloss.Style
	Path    lipgloss.Style
	Node    lipgloss.Style
	Cost    lipgloss.Style
	Warning lipgloss.Style
	Label   lipgloss.Style
}

// DefaultStyles returns colored styles for interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Path:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Node:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Cost:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns unstyled components for plain output.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Path:    lipgloss.NewStyle(),
		Node:    lipgloss.NewStyle(),
		Cost:    lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
