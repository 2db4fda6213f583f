package console

import (
	"errors"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// Test games: each ends after a fixed number of frames with a fixed score.
func init() {
	registry.Register(0, "alpha", countdownFactory("alpha", "Alpha", 3, 7))
	registry.Register(1, "beta", countdownFactory("beta", "Beta", 2, 4))
	registry.Register(2, "gamma", countdownFactory("gamma", "Gamma", 1, 300))
}

func countdownFactory(id, title string, frames, score int) registry.Factory {
	return func(config.Config) registry.Game {
		return &countdownGame{id: id, title: title, frames: frames, score: score}
	}
}

type countdownGame struct {
	id     string
	title  string
	frames int
	score  int

	steps  int
	inputs []core.InputFrame
}

func (g *countdownGame) ID() string { return g.id }

func (g *countdownGame) Title() string { return g.title }

func (g *countdownGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.inputs = nil
}

func (g *countdownGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.State()}
}

func (g *countdownGame) Render(dst core.Display) {
	dst.SetCursor(0, 0)
	dst.Print("#")
}

func (g *countdownGame) State() core.GameState {
	over := g.steps >= g.frames
	score := 0
	if over {
		score = g.score
	}
	return core.GameState{Score: score, GameOver: over}
}

func (g *countdownGame) FrameInterval() time.Duration { return 100 * time.Millisecond }

// fakeClock advances only when slept on.
type fakeClock struct {
	now     time.Time
	sleeps  []time.Duration
	onSleep func(d time.Duration)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	if c.onSleep != nil {
		c.onSleep(d)
	}
}

// fakeInput reports whatever the test last set.
type fakeInput struct {
	x, y   int
	button bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{x: core.AxisCenter, y: core.AxisCenter}
}

func (in *fakeInput) ReadAxis(a core.Axis) int {
	if a == core.AxisX {
		return in.x
	}
	return in.y
}

func (in *fakeInput) ReadButton() bool { return in.button }

type slotWrite struct {
	slot int
	v    byte
}

// fakeStore is an in-memory ByteStore that records writes.
type fakeStore struct {
	slots    map[int]byte
	writes   []slotWrite
	writeErr error
	readErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{slots: make(map[int]byte)}
}

func (s *fakeStore) ReadSlot(slot int) (byte, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return s.slots[slot], nil
}

func (s *fakeStore) WriteSlot(slot int, v byte) error {
	s.writes = append(s.writes, slotWrite{slot, v})
	if s.writeErr != nil {
		return s.writeErr
	}
	s.slots[slot] = v
	return nil
}

type tone struct {
	hz int
	d  time.Duration
}

type fakeBuzzer struct {
	tones []tone
}

func (b *fakeBuzzer) Tone(hz int, d time.Duration) {
	b.tones = append(b.tones, tone{hz, d})
}

type session struct {
	gameID string
	score  int
}

type fakeHistory struct {
	sessions []session
	err      error
}

func (h *fakeHistory) RecordSession(gameID string, score int, _ time.Time) error {
	h.sessions = append(h.sessions, session{gameID, score})
	return h.err
}

var errDisk = errors.New("disk full")

// framedScreen counts frames and flags any drawing done outside one.
type framedScreen struct {
	*core.Screen
	frames   int
	inFrame  bool
	unframed int
}

func (f *framedScreen) Frame(draw func(core.Display)) {
	f.frames++
	f.inFrame = true
	draw(f.Screen)
	f.inFrame = false
}

func (f *framedScreen) Clear() {
	if !f.inFrame {
		f.unframed++
	}
	f.Screen.Clear()
}
