package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Accent    lipgloss.Style
	Help      lipgloss.Style
	Card      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	LineNo    lipgloss.Style
}

func DefaultTheme() Theme {
	green := lipgloss.Color("42")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(green),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(green),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Faint(true),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(green).Underline(true),
		LineNo:    lipgloss.NewStyle().Faint(true).Width(3).Align(lipgloss.Right).MarginRight(1),
	}
}
