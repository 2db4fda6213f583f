package core

import "time"

// Clock is the monotonic time source the scheduler paces frames against.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep implements Clock.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FramePacer gates fixed-interval frames. It remembers when the last frame
// began; a new frame is due once at least one interval has elapsed.
type FramePacer struct {
	clock     Clock
	lastFrame time.Time
}

// NewFramePacer creates a pacer whose first frame is due immediately.
func NewFramePacer(clock Clock) *FramePacer {
	return &FramePacer{clock: clock}
}

// Ready reports whether a frame is due at now.
func (p *FramePacer) Ready(now time.Time, interval time.Duration) bool {
	return now.Sub(p.lastFrame) >= interval
}

// Wait blocks until the next frame is due, then marks it as started.
// It returns the frame's start time.
func (p *FramePacer) Wait(interval time.Duration) time.Time {
	for {
		now := p.clock.Now()
		if p.Ready(now, interval) {
			p.lastFrame = now
			return now
		}
		p.clock.Sleep(interval - now.Sub(p.lastFrame))
	}
}

// LastFrame returns the start time of the most recent frame.
func (p *FramePacer) LastFrame() time.Time {
	return p.lastFrame
}
