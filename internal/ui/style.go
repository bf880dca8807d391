package ui

import "github.com/charmbracelet/lipgloss"

// Colors use lipgloss's adaptive palette so the REPL reads cleanly in
// both light and dark terminals.
var (
	Yellow = lipgloss.AdaptiveColor{Light: "3", Dark: "11"}
	Green  = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	Gray   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	Red    = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
)

var (
	promptStyle      = lipgloss.NewStyle().Foreground(Green).Bold(true)
	candidateStyle   = lipgloss.NewStyle().Foreground(Yellow)
	descriptionStyle = lipgloss.NewStyle().Foreground(Gray).Faint(true)
	errorStyle       = lipgloss.NewStyle().Foreground(Red)
	cursorStyle      = lipgloss.NewStyle().Foreground(Yellow).SetString("▶")
)
