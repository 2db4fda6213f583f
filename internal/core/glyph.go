package core

// Glyph is a custom character slot on the display.
type Glyph uint8

// Custom glyph slots, uploaded once at boot.
const (
	GlyphBird Glyph = iota
	GlyphWall
	GlyphSnake
	GlyphBall

	GlyphCount = 4
)

// GlyphBitmap is an 8-row character cell; the low 5 bits of each row are pixels.
type GlyphBitmap [8]uint8

// Bitmaps holds the pixel data for every custom glyph.
var Bitmaps = [GlyphCount]GlyphBitmap{
	GlyphBird:  {0b00100, 0b01110, 0b11111, 0b10101, 0b11111, 0b01110, 0b00100, 0b00000},
	GlyphWall:  {0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111},
	GlyphSnake: {0b00100, 0b01110, 0b11111, 0b11111, 0b11111, 0b01110, 0b00100, 0b00000},
	GlyphBall:  {0b00000, 0b00110, 0b01111, 0b01111, 0b01111, 0b00110, 0b00000, 0b00000},
}

// glyphRunes approximates each glyph with a single terminal rune.
var glyphRunes = [GlyphCount]rune{
	GlyphBird:  '▶',
	GlyphWall:  '█',
	GlyphSnake: '■',
	GlyphBall:  '●',
}

// Rune returns the terminal stand-in for the glyph, or '?' for an unknown slot.
func (g Glyph) Rune() rune {
	if int(g) >= GlyphCount {
		return '?'
	}
	return glyphRunes[g]
}

// String returns a human-readable name for the glyph.
func (g Glyph) String() string {
	switch g {
	case GlyphBird:
		return "bird"
	case GlyphWall:
		return "wall"
	case GlyphSnake:
		return "snake"
	case GlyphBall:
		return "ball"
	default:
		return "unknown"
	}
}

// LoadGlyphs uploads every custom glyph to the display.
func LoadGlyphs(d Display) {
	for i, bm := range Bitmaps {
		d.CreateChar(Glyph(i), bm)
	}
}
