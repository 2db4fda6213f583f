package core

import "time"

// Display is a character-grid output device such as a 16x2 LCD.
type Display interface {
	// Clear blanks every cell and homes the cursor.
	Clear()
	// SetCursor moves the write position to (col, row).
	SetCursor(col, row int)
	// Print writes text at the cursor, advancing it.
	Print(text string)
	// Write draws a custom glyph at the cursor, advancing it.
	Write(g Glyph)
	// CreateChar defines the bitmap for a custom glyph slot.
	CreateChar(g Glyph, bitmap GlyphBitmap)
}

// InputSource samples the joystick and its button.
type InputSource interface {
	// ReadAxis returns the raw axis value in [AxisMin, AxisMax].
	ReadAxis(a Axis) int
	// ReadButton reports whether the button is held down.
	ReadButton() bool
}

// Buzzer emits short tones. Tone must not block for the tone's duration.
type Buzzer interface {
	Tone(freqHz int, d time.Duration)
}

// ByteStore is byte-addressable non-volatile storage, one byte per slot.
// An unwritten slot reads as zero.
type ByteStore interface {
	ReadSlot(slot int) (byte, error)
	WriteSlot(slot int, v byte) error
}

// NopBuzzer discards every tone.
type NopBuzzer struct{}

// Tone implements Buzzer.
func (NopBuzzer) Tone(int, time.Duration) {}

// Framer is a Display that can apply a whole redraw at once, so nothing
// reading the display sees a half-drawn frame.
type Framer interface {
	Frame(draw func(Display))
}

// Redraw runs draw against d, as a single frame when d is a Framer.
func Redraw(d Display, draw func(Display)) {
	if f, ok := d.(Framer); ok {
		f.Frame(draw)
		return
	}
	draw(d)
}
