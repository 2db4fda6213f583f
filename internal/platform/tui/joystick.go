package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Joystick turns key presses into an analog stick and a button.
// Terminals report key presses, not key releases, so each press is latched
// until the console reads it once and then springs back to centre. A press
// nobody reads within the hold time is dropped.
type Joystick struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time

	axes   [2]latch
	button latch
}

type latch struct {
	value   int
	pending bool
	until   time.Time
}

// take returns the latched value and clears it, or reports false when
// nothing is pending.
func (l *latch) take(now time.Time) (int, bool) {
	if !l.pending {
		return 0, false
	}
	l.pending = false
	if !now.Before(l.until) {
		return 0, false
	}
	return l.value, true
}

// NewJoystick creates a centred stick whose unread presses expire after hold.
func NewJoystick(hold time.Duration) *Joystick {
	return &Joystick{hold: hold, now: time.Now}
}

// Push deflects axis a to v. A later push on the same axis replaces it.
func (j *Joystick) Push(a core.Axis, v int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.axes[a] = latch{value: v, pending: true, until: j.now().Add(j.hold)}
}

// Press pushes the button down for one read.
func (j *Joystick) Press() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.button = latch{value: 1, pending: true, until: j.now().Add(j.hold)}
}

// ReadAxis implements core.InputSource.
func (j *Joystick) ReadAxis(a core.Axis) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	if a < 0 || int(a) >= len(j.axes) {
		return core.AxisCenter
	}
	v, ok := j.axes[a].take(j.now())
	if !ok {
		return core.AxisCenter
	}
	return v
}

// ReadButton implements core.InputSource.
func (j *Joystick) ReadButton() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.button.take(j.now())
	return ok
}
