package config

import "time"

// FrameRamp is a frame interval that tightens by a fixed step each time the
// game asks for more pressure, never dropping below its floor and never
// growing back within a session.
type FrameRamp struct {
	cfg     RampConfig
	current time.Duration
}

// NewFrameRamp creates a ramp at its starting interval.
func NewFrameRamp(cfg RampConfig) *FrameRamp {
	r := &FrameRamp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns the ramp to its starting interval.
func (r *FrameRamp) Reset() {
	r.current = ms(r.cfg.StartMs)
}

// Current returns the interval for the next frame.
func (r *FrameRamp) Current() time.Duration {
	return r.current
}

// Floor returns the smallest interval the ramp will reach.
func (r *FrameRamp) Floor() time.Duration {
	return ms(r.cfg.FloorMs)
}

// Tighten shortens the interval by one step, clamped at the floor.
func (r *FrameRamp) Tighten() {
	next := r.current - ms(r.cfg.StepMs)
	if floor := r.Floor(); next < floor {
		next = floor
	}
	if next < r.current {
		r.current = next
	}
}
