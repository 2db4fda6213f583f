package console

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

type harness struct {
	sched   *Scheduler
	screen  *core.Screen
	clock   *fakeClock
	input   *fakeInput
	store   *fakeStore
	buzzer  *fakeBuzzer
	history *fakeHistory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		screen:  core.NewScreen(16, 2),
		clock:   newFakeClock(),
		input:   newFakeInput(),
		store:   newFakeStore(),
		buzzer:  &fakeBuzzer{},
		history: &fakeHistory{},
	}
	h.sched = New(Options{
		Display: h.screen,
		Input:   h.input,
		Buzzer:  h.buzzer,
		Store:   h.store,
		Clock:   h.clock,
		History: h.history,
		Config:  config.Default(),
		Seed:    1,
	})
	return h
}

func (h *harness) play(t *testing.T, id string) Result {
	t.Helper()
	res, err := h.sched.Play(id)
	if err != nil {
		t.Fatalf("Play(%q): %v", id, err)
	}
	return res
}

func TestRecordHighScore(t *testing.T) {
	tests := []struct {
		name      string
		best      byte
		score     int
		wantWrite bool
		wantValue byte
	}{
		{"lower score", 5, 3, false, 0},
		{"equal score", 5, 5, false, 0},
		{"higher score", 5, 6, true, 6},
		{"first score", 0, 1, true, 1},
		{"zero score", 0, 0, false, 0},
		{"clamped to a byte", 0, 300, true, 255},
		{"clamped over a full slot", 255, 300, true, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			saved := h.sched.recordHighScore(1, tt.best, tt.score)

			if saved != tt.wantWrite {
				t.Errorf("recordHighScore = %v, want %v", saved, tt.wantWrite)
			}
			if !tt.wantWrite {
				if len(h.store.writes) != 0 {
					t.Errorf("Expected no writes, got %v", h.store.writes)
				}
				return
			}
			if len(h.store.writes) != 1 {
				t.Fatalf("Expected exactly one write, got %v", h.store.writes)
			}
			if w := h.store.writes[0]; w.slot != 1 || w.v != tt.wantValue {
				t.Errorf("Expected write {1 %d}, got %+v", tt.wantValue, w)
			}
		})
	}
}

func TestRecordHighScoreWriteFailure(t *testing.T) {
	h := newHarness(t)
	h.store.writeErr = errDisk

	if h.sched.recordHighScore(0, 0, 10) {
		t.Error("A failed write should not count as a new best")
	}
	if len(h.store.writes) != 1 {
		t.Errorf("Expected a single write attempt, got %d", len(h.store.writes))
	}
}

func TestPlaySessionPersistsOnce(t *testing.T) {
	h := newHarness(t)
	h.store.slots[0] = 2

	res := h.play(t, "alpha")

	if res.Score != 7 || res.Best != 2 || !res.NewBest {
		t.Errorf("Unexpected result %+v", res)
	}
	if len(h.store.writes) != 1 || h.store.writes[0] != (slotWrite{0, 7}) {
		t.Errorf("Expected one write of 7 to slot 0, got %v", h.store.writes)
	}
	if len(h.history.sessions) != 1 || h.history.sessions[0] != (session{"alpha", 7}) {
		t.Errorf("Expected session history {alpha 7}, got %v", h.history.sessions)
	}

	// Same score again does not beat the stored best.
	res = h.play(t, "alpha")
	if res.NewBest {
		t.Error("Equal score should not be a new best")
	}
	if len(h.store.writes) != 1 {
		t.Errorf("Expected no further writes, got %v", h.store.writes)
	}
}

func TestPlaySessionGameOverScreen(t *testing.T) {
	h := newHarness(t)

	h.play(t, "beta")

	if got := strings.TrimRight(h.screen.Row(0), " "); got != "Game Over" {
		t.Errorf("Row 0 = %q, want Game Over", got)
	}
	if got := strings.TrimRight(h.screen.Row(1), " "); got != "Score:4" {
		t.Errorf("Row 1 = %q, want Score:4", got)
	}
	last := h.clock.sleeps[len(h.clock.sleeps)-1]
	if last != 1500*time.Millisecond {
		t.Errorf("Expected the Game Over dwell of 1.5s, got %v", last)
	}
}

func TestPlaySessionPacesFrames(t *testing.T) {
	h := newHarness(t)

	h.play(t, "alpha")

	// First frame is due at once; the next two wait a full interval each.
	want := []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 1500 * time.Millisecond}
	if len(h.clock.sleeps) != len(want) {
		t.Fatalf("Expected sleeps %v, got %v", want, h.clock.sleeps)
	}
	for i := range want {
		if h.clock.sleeps[i] != want[i] {
			t.Errorf("Sleep %d: expected %v, got %v", i, want[i], h.clock.sleeps[i])
		}
	}
}

func TestPlaySessionSamplesInputEachFrame(t *testing.T) {
	h := newHarness(t)
	h.input.y = 100
	h.input.button = true

	g, err := registry.Create("alpha", config.Default())
	if err != nil {
		t.Fatal(err)
	}
	h.sched.PlaySession(g)

	cg := g.(*countdownGame)
	if len(cg.inputs) != 3 {
		t.Fatalf("Expected one input frame per step, got %d", len(cg.inputs))
	}
	for i, in := range cg.inputs {
		if in.Y != 100 || !in.Button {
			t.Errorf("Frame %d: unexpected input %+v", i, in)
		}
	}
}

func TestPlaySessionStoreErrors(t *testing.T) {
	h := newHarness(t)
	h.store.readErr = errDisk
	h.store.writeErr = errDisk
	h.history.err = errDisk

	res := h.play(t, "beta")

	if res.Score != 4 {
		t.Errorf("Session should finish despite store errors, score %d", res.Score)
	}
	if res.NewBest {
		t.Error("Failed write should not report a new best")
	}
}

func TestPlayUnknownGame(t *testing.T) {
	h := newHarness(t)
	if _, err := h.sched.Play("nope"); err == nil {
		t.Error("Expected an error for an unknown game")
	}
}

func TestGameOverTone(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.GameOverHz = 220

	h := newHarness(t)
	h.sched = New(Options{
		Display: h.screen,
		Input:   h.input,
		Buzzer:  h.buzzer,
		Store:   h.store,
		Clock:   h.clock,
		Config:  cfg,
	})

	h.play(t, "gamma")

	if len(h.buzzer.tones) != 1 || h.buzzer.tones[0] != (tone{220, 300 * time.Millisecond}) {
		t.Errorf("Expected one 220Hz tone, got %v", h.buzzer.tones)
	}
	if h.store.slots[2] != 255 {
		t.Errorf("Expected slot 2 clamped to 255, got %d", h.store.slots[2])
	}
}

func TestRunMenuFlow(t *testing.T) {
	h := newHarness(t)
	h.store.slots[1] = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polls := 0
	h.clock.onSleep = func(d time.Duration) {
		if d != config.Default().Timing.MenuPoll() {
			return
		}
		polls++
		switch polls {
		case 1:
			h.input.y = 100 // next: beta
		case 2:
			h.input.y = core.AxisCenter
		case 3:
			h.input.button = true
		case 4:
			h.input.button = false
			cancel()
		}
	}

	if err := h.sched.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if h.sched.Menu().Selected().ID != "beta" {
		t.Errorf("Expected beta selected, got %s", h.sched.Menu().Selected().ID)
	}
	if len(h.buzzer.tones) != 1 || h.buzzer.tones[0] != (tone{1000, 50 * time.Millisecond}) {
		t.Errorf("Expected one confirm tone, got %v", h.buzzer.tones)
	}
	if len(h.history.sessions) != 1 || h.history.sessions[0].gameID != "beta" {
		t.Errorf("Expected one beta session, got %v", h.history.sessions)
	}
	if h.store.slots[1] != 4 {
		t.Errorf("Expected beta's best to become 4, got %d", h.store.slots[1])
	}

	var debounced bool
	for _, d := range h.clock.sleeps {
		if d == 300*time.Millisecond {
			debounced = true
		}
	}
	if !debounced {
		t.Error("Expected the button debounce wait")
	}

	if got := h.screen.Row(1); got != "> Beta         4" {
		t.Errorf("Menu should be redrawn with the new best, got %q", got)
	}
	if _, ok := h.screen.Bitmap(core.GlyphBall); !ok {
		t.Error("Run should upload the custom glyphs")
	}
}

func TestRunWithoutGames(t *testing.T) {
	h := newHarness(t)
	h.sched.menu = NewMenu(nil)

	if err := h.sched.Run(context.Background()); err == nil {
		t.Error("Expected an error when no games are registered")
	}
}

func TestPlaySessionDrawsWholeFrames(t *testing.T) {
	h := newHarness(t)
	screen := &framedScreen{Screen: h.screen}
	h.sched.display = screen

	h.play(t, "alpha")

	// Initial draw, three game frames and the Game Over screen.
	if screen.frames != 5 {
		t.Errorf("Expected 5 frames, got %d", screen.frames)
	}
	if screen.unframed != 0 {
		t.Errorf("Display cleared outside a frame %d times", screen.unframed)
	}
}
