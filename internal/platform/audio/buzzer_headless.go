//go:build headless

package audio

import "time"

// Buzzer is a placeholder; headless builds cannot construct one.
type Buzzer struct{}

// NewBuzzer always fails in headless builds.
func NewBuzzer(int) (*Buzzer, error) {
	return nil, ErrUnavailable
}

// Tone implements core.Buzzer.
func (*Buzzer) Tone(int, time.Duration) {}

// Close implements io.Closer.
func (*Buzzer) Close() error { return nil }
