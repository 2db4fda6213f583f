// Package tui hosts the console in a terminal with Bubble Tea.
// It emulates the character LCD, maps keys onto a virtual joystick and runs
// the console loop beside the Bubble Tea event loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshInterval is how often the emulated LCD is redrawn.
const RefreshInterval = time.Second / 30

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
