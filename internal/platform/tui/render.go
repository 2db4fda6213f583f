package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the emulated LCD look.
type Styles struct {
	Panel  lipgloss.Style
	Screen lipgloss.Style
	Title  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns a green-backlit character LCD.
func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Screen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0f380f")).
			Background(lipgloss.Color("#9bbc0f")).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginBottom(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
	}
}

// RenderLCD draws rows as a backlit character display.
func RenderLCD(rows []string, st Styles) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = st.Screen.Render(r)
	}
	return st.Panel.Render(strings.Join(lines, "\n"))
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
