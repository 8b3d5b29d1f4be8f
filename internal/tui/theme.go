package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by prompts and notifications.
type Theme struct {
	AccentColor  string
	ErrorColor   string
	SuccessColor string
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:  "63",
		ErrorColor:   "196",
		SuccessColor: "34",
	}
}

// Title renders a prompt heading.
func (t Theme) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// Cursor renders the list cursor in the accent color.
func (t Theme) Cursor(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentColor)).Render(s)
}

// Faint renders hints and summaries.
func (t Theme) Faint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// ErrorText renders validation and failure messages.
func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

// SuccessText renders the success marker.
func (t Theme) SuccessText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.SuccessColor)).Render(s)
}
