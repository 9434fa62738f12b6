package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	lockedBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	streakBigStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusLineStyle = lipgloss.NewStyle().Faint(true)
)
