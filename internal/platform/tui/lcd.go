package tui

import (
	"sync"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// LCD is a character display shared between the console goroutine, which
// draws on it, and the Bubble Tea loop, which shows it.
type LCD struct {
	mu     sync.Mutex
	screen *core.Screen
}

// NewLCD creates a blank display of the given size.
func NewLCD(width, height int) *LCD {
	return &LCD{screen: core.NewScreen(width, height)}
}

// Clear implements core.Display.
func (l *LCD) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen.Clear()
}

// SetCursor implements core.Display.
func (l *LCD) SetCursor(col, row int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen.SetCursor(col, row)
}

// Print implements core.Display.
func (l *LCD) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen.Print(text)
}

// Write implements core.Display.
func (l *LCD) Write(g core.Glyph) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen.Write(g)
}

// CreateChar implements core.Display.
func (l *LCD) CreateChar(g core.Glyph, bitmap core.GlyphBitmap) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen.CreateChar(g, bitmap)
}

// Frame implements core.Framer. draw runs with the display locked, so the
// Bubble Tea loop only ever shows complete frames.
func (l *LCD) Frame(draw func(core.Display)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	draw(l.screen)
}

// Rows returns a copy of every row.
func (l *LCD) Rows() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([]string, l.screen.Height())
	for y := range rows {
		rows[y] = l.screen.Row(y)
	}
	return rows
}

// Width returns the display width in characters.
func (l *LCD) Width() int {
	return l.screen.Width()
}
