package core

import (
	"testing"
	"time"
)

// fakeClock advances only when slept on.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func TestFramePacerReady(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := &fakeClock{now: start}
	p := NewFramePacer(clock)
	p.Wait(0)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected bool
	}{
		{"just started", 0, false},
		{"short of interval", 149 * time.Millisecond, false},
		{"exactly interval", 150 * time.Millisecond, true},
		{"past interval", 400 * time.Millisecond, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Ready(start.Add(tc.elapsed), 150*time.Millisecond); got != tc.expected {
				t.Errorf("Ready(+%v) = %v, expected %v", tc.elapsed, got, tc.expected)
			}
		})
	}
}

func TestFramePacerWait(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := &fakeClock{now: start}
	p := NewFramePacer(clock)

	first := p.Wait(400 * time.Millisecond)
	if !first.Equal(start) {
		t.Fatalf("First frame should start immediately, started at %v", first)
	}

	clock.now = clock.now.Add(100 * time.Millisecond)
	second := p.Wait(400 * time.Millisecond)

	if got := second.Sub(first); got != 400*time.Millisecond {
		t.Errorf("Frames should be 400ms apart, got %v", got)
	}
	if len(clock.sleeps) != 1 || clock.sleeps[0] != 300*time.Millisecond {
		t.Errorf("Expected a single 300ms sleep, got %v", clock.sleeps)
	}
	if !p.LastFrame().Equal(second) {
		t.Errorf("LastFrame() = %v, expected %v", p.LastFrame(), second)
	}
}

func TestFramePacerShrinkingInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	p := NewFramePacer(clock)

	prev := p.Wait(400 * time.Millisecond)
	for _, interval := range []time.Duration{390, 380, 150} {
		next := p.Wait(interval * time.Millisecond)
		if got := next.Sub(prev); got != interval*time.Millisecond {
			t.Errorf("Frame gap = %v, expected %v", got, interval*time.Millisecond)
		}
		prev = next
	}
}
