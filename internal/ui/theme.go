package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across the views.
type Styles struct {
	Title     lipgloss.Style
	Current   lipgloss.Style
	Paused    lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Skipped   lipgloss.Style
	Scheduled lipgloss.Style
	Selected  lipgloss.Style
	Online    lipgloss.Style
	Offline   lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Current:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Paused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Skipped:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		Scheduled: lipgloss.NewStyle().Italic(true),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Online:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Offline:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
