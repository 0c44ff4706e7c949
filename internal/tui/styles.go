package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	badgeOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badgeWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badgeErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
