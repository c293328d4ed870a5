package ui

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette used for check output.
const (
	colorGreen  = "40"  // pass lines
	colorYellow = "220" // warnings
	colorRed    = "196" // failures
	colorWhite  = "255" // banner text
	colorGray   = "245" // rules and secondary detail
)

// Styles holds the lipgloss styles applied to report lines.
type Styles struct {
	Banner  lipgloss.Style
	Rule    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Detail  lipgloss.Style
}

// DefaultStyles returns colored styles for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWhite)),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}

// PlainStyles returns unstyled output for non-terminal writers and --no-color.
func PlainStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle(),
		Rule:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Detail:  lipgloss.NewStyle(),
	}
}
