package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorGray   = "#353b52"
	colorWhite  = "#ffffff"
	colorGreen  = "#acfab4"
	colorRed    = "#e61f44"
	colorPurple = "#b9a3eb"
	colorBlue   = "#89ddff"
	colorMuted  = "#7f849c"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorPurple))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
)

// swatch paints text in an emotion's chart color.
func swatch(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
