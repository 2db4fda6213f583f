package core

import (
	"strings"
)

// Screen is an in-memory character display. It implements Display so games
// can draw exactly as they would on an LCD, while hosts and tests read the
// resulting cells back.
type Screen struct {
	width   int
	height  int
	cells   [][]rune
	col     int
	row     int
	glyphs  [GlyphCount]GlyphBitmap
	defined [GlyphCount]bool
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces and homes the cursor.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
	s.col, s.row = 0, 0
}

// SetCursor moves the write position. Off-screen positions are accepted;
// writes there are dropped.
func (s *Screen) SetCursor(col, row int) {
	s.col, s.row = col, row
}

// Cursor returns the current write position.
func (s *Screen) Cursor() (col, row int) {
	return s.col, s.row
}

// Print writes text at the cursor. Characters past the right edge are clipped.
func (s *Screen) Print(text string) {
	for _, r := range text {
		s.put(r)
	}
}

// Write draws a custom glyph at the cursor.
// Glyphs that were never defined show as '?'.
func (s *Screen) Write(g Glyph) {
	if int(g) >= GlyphCount || !s.defined[g] {
		s.put('?')
		return
	}
	s.put(g.Rune())
}

// CreateChar stores the bitmap for a glyph slot.
func (s *Screen) CreateChar(g Glyph, bitmap GlyphBitmap) {
	if int(g) >= GlyphCount {
		return
	}
	s.glyphs[g] = bitmap
	s.defined[g] = true
}

// Bitmap returns the stored bitmap for a glyph slot and whether it is defined.
func (s *Screen) Bitmap(g Glyph) (GlyphBitmap, bool) {
	if int(g) >= GlyphCount {
		return GlyphBitmap{}, false
	}
	return s.glyphs[g], s.defined[g]
}

// put stores r at the cursor and advances it.
func (s *Screen) put(r rune) {
	s.Set(s.col, s.row, r)
	s.col++
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}

// Count returns how many cells hold r.
func (s *Screen) Count(r rune) int {
	n := 0
	for y := range s.cells {
		for _, c := range s.cells[y] {
			if c == r {
				n++
			}
		}
	}
	return n
}
