// Package console runs the arcade: the game selection menu, the frame
// scheduler that drives a game session, and high-score bookkeeping.
package console

import (
	"strconv"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// MenuHeader is the fixed first row of the selection screen.
const MenuHeader = "Select Game:"

// Menu is the cyclic game selection.
type Menu struct {
	entries  []registry.GameInfo
	selected int
}

// NewMenu creates a menu over entries with the first one selected.
func NewMenu(entries []registry.GameInfo) *Menu {
	return &Menu{entries: entries}
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// Index returns the selected position.
func (m *Menu) Index() int {
	return m.selected
}

// Selected returns the selected entry.
func (m *Menu) Selected() registry.GameInfo {
	return m.entries[m.selected]
}

// Next moves the selection forward, wrapping to the first entry.
func (m *Menu) Next() {
	if len(m.entries) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.entries)
}

// Previous moves the selection back, wrapping to the last entry.
func (m *Menu) Previous() {
	if len(m.entries) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.entries)) % len(m.entries)
}

// Apply moves the selection for a vertical stick intent. Pushing the stick
// low selects the next game, high the previous one. It reports whether the
// selection changed.
func (m *Menu) Apply(intent core.Intent) bool {
	switch intent {
	case core.IntentNegative:
		m.Next()
	case core.IntentPositive:
		m.Previous()
	default:
		return false
	}
	return len(m.entries) > 1
}

// Render draws the menu on a display width columns wide. best is the
// stored high score of the selected game and is right-aligned on the title
// row when it fits.
func (m *Menu) Render(d core.Display, width int, best byte) {
	d.Clear()
	d.SetCursor(0, 0)
	d.Print(MenuHeader)

	if len(m.entries) == 0 {
		return
	}

	line := "> " + m.Selected().Title
	d.SetCursor(0, 1)
	d.Print(line)

	score := strconv.Itoa(int(best))
	if len(line)+1+len(score) <= width {
		d.SetCursor(width-len(score), 1)
		d.Print(score)
	}
}
