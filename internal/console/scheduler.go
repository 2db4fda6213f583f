package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// MaxStoredScore is the largest score a byte slot can hold.
const MaxStoredScore = 255

// SessionRecorder keeps a history of finished sessions.
type SessionRecorder interface {
	RecordSession(gameID string, score int, at time.Time) error
}

// Options wires a Scheduler to its devices.
type Options struct {
	Display core.Display
	Input   core.InputSource
	Buzzer  core.Buzzer     // nil disables sound
	Store   core.ByteStore  // High score slots
	Clock   core.Clock      // nil uses the system clock
	Logger  *log.Logger     // nil discards logs
	History SessionRecorder // Optional
	Config  config.Config
	Seed    int64 // 0 seeds each session from the clock
}

// Scheduler owns the console loop: it shows the menu, runs one game session
// at a time on fixed frame boundaries and persists new high scores.
type Scheduler struct {
	display core.Display
	input   core.InputSource
	buzzer  core.Buzzer
	store   core.ByteStore
	clock   core.Clock
	log     *log.Logger
	history SessionRecorder
	cfg     config.Config
	seed    int64

	menu  *Menu
	pacer *core.FramePacer
}

// Result summarizes a finished session.
type Result struct {
	GameID  string
	Score   int
	Best    int  // High score before the session
	NewBest bool // Whether Score replaced Best in the store
}

// New creates a scheduler over every registered game.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		display: opts.Display,
		input:   opts.Input,
		buzzer:  opts.Buzzer,
		store:   opts.Store,
		clock:   opts.Clock,
		log:     opts.Logger,
		history: opts.History,
		cfg:     opts.Config,
		seed:    opts.Seed,
		menu:    NewMenu(registry.List()),
	}
	if s.buzzer == nil || !s.cfg.Audio.Enabled {
		s.buzzer = core.NopBuzzer{}
	}
	if s.clock == nil {
		s.clock = core.SystemClock{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	s.pacer = core.NewFramePacer(s.clock)
	return s
}

// Menu returns the selection state.
func (s *Scheduler) Menu() *Menu {
	return s.menu
}

// Boot uploads the custom glyphs. Run calls it; hosts that only play a
// single session call it themselves.
func (s *Scheduler) Boot() {
	core.LoadGlyphs(s.display)
}

// Run shows the menu and plays the selected game whenever the button is
// pressed. It returns when ctx is cancelled; a running session always
// finishes first.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.menu.Len() == 0 {
		return fmt.Errorf("console: no games registered")
	}

	s.Boot()
	s.drawMenu()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s.clock.Sleep(s.cfg.Timing.MenuPoll())

		if s.input.ReadButton() {
			s.buzzer.Tone(s.cfg.Audio.ConfirmHz, s.cfg.Audio.Confirm())
			s.clock.Sleep(s.cfg.Timing.Debounce())

			if _, err := s.Play(s.menu.Selected().ID); err != nil {
				s.log.Error("session failed", "game", s.menu.Selected().ID, "err", err)
			}
			s.drawMenu()
			continue
		}

		intent := s.cfg.Input.Thresholds().Intent(s.input.ReadAxis(core.AxisY))
		if s.menu.Apply(intent) {
			s.log.Debug("menu selection", "game", s.menu.Selected().ID)
			s.drawMenu()
		}
	}
}

// Play creates the game registered under id and runs one session of it.
func (s *Scheduler) Play(id string) (Result, error) {
	g, err := registry.Create(id, s.cfg)
	if err != nil {
		return Result{}, err
	}
	return s.PlaySession(g), nil
}

// PlaySession runs g from reset until game over, then records the score and
// shows the Game Over screen for the configured dwell.
func (s *Scheduler) PlaySession(g registry.Game) Result {
	info, registered := registry.Lookup(g.ID())
	if !registered {
		s.log.Warn("game has no score slot, high score will not be kept", "game", g.ID())
	}

	g.Reset(s.cfg.Runtime(s.sessionSeed()))
	var best byte
	if registered {
		best = s.readBest(info.Slot)
	}
	s.log.Info("session start", "game", g.ID(), "best", best)

	s.drawGame(g)

	var state core.GameState
	for !state.GameOver {
		s.pacer.Wait(g.FrameInterval())
		frame := core.Sample(s.input)
		state = g.Step(frame).State
		s.drawGame(g)
	}

	res := Result{
		GameID: g.ID(),
		Score:  state.Score,
		Best:   int(best),
	}
	if registered {
		res.NewBest = s.recordHighScore(info.Slot, best, state.Score)
	}
	s.log.Info("session over", "game", g.ID(), "score", state.Score, "new_best", res.NewBest)

	if s.history != nil {
		if err := s.history.RecordSession(g.ID(), state.Score, s.clock.Now()); err != nil {
			s.log.Warn("session history not saved", "game", g.ID(), "err", err)
		}
	}

	if s.cfg.Audio.GameOverHz > 0 {
		s.buzzer.Tone(s.cfg.Audio.GameOverHz, s.cfg.Audio.GameOver())
	}
	s.showGameOver(state.Score)

	return res
}

// recordHighScore writes score to slot when it beats best. The stored
// value is clamped to a byte. Write errors are logged and the score is lost.
func (s *Scheduler) recordHighScore(slot int, best byte, score int) bool {
	if score <= int(best) {
		return false
	}

	v := byte(min(score, MaxStoredScore))
	if err := s.store.WriteSlot(slot, v); err != nil {
		s.log.Error("high score not saved", "slot", slot, "score", score, "err", err)
		return false
	}
	s.log.Info("new high score", "slot", slot, "score", v)
	return true
}

// readBest returns the stored high score for slot, 0 if it cannot be read.
func (s *Scheduler) readBest(slot int) byte {
	v, err := s.store.ReadSlot(slot)
	if err != nil {
		s.log.Warn("high score unreadable", "slot", slot, "err", err)
		return 0
	}
	return v
}

func (s *Scheduler) drawGame(g registry.Game) {
	core.Redraw(s.display, func(d core.Display) {
		d.Clear()
		g.Render(d)
	})
}

func (s *Scheduler) showGameOver(score int) {
	core.Redraw(s.display, func(d core.Display) {
		d.Clear()
		d.SetCursor(0, 0)
		d.Print("Game Over")
		d.SetCursor(0, 1)
		d.Print(fmt.Sprintf("Score:%d", score))
	})
	s.clock.Sleep(s.cfg.Timing.GameOverDwell())
}

func (s *Scheduler) drawMenu() {
	best := s.readBest(s.menu.Selected().Slot)
	core.Redraw(s.display, func(d core.Display) {
		s.menu.Render(d, s.cfg.Display.Width, best)
	})
}

func (s *Scheduler) sessionSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return s.clock.Now().UnixNano()
}
