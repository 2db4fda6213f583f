// Package flappy implements the obstacle-avoidance flyer.
// The player holds column 0 on the top or bottom row while walls with a
// one-row gap scroll in from the right; the game speeds up with every wall
// that scrolls past.
package flappy

import (
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// PlayerCol is the fixed column of the player.
const PlayerCol = 0

// Game implements the flyer logic.
type Game struct {
	cfg       config.FlappyConfig
	runtime   core.RuntimeConfig
	field     *ObstacleField
	ramp      *config.FrameRamp
	playerRow int
	score     int
	gameOver  bool
}

// New creates a new flyer instance.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:  cfg,
		ramp: config.NewFrameRamp(cfg.Ramp),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.playerRow = 0
	g.score = 0
	g.gameOver = false
	g.ramp.Reset()
	g.field = NewObstacleField(cfg.Seed, cfg.Width, cfg.Height, g.cfg)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	crashed, recycled := g.field.Advance(g.playerRow)
	for i := 0; i < recycled; i++ {
		g.score++
		g.ramp.Tighten()
	}
	if crashed {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	switch in.Vertical(g.runtime.Thresholds) {
	case core.IntentNegative:
		g.playerRow = 0
	case core.IntentPositive:
		g.playerRow = g.bottomRow()
	}

	return core.StepResult{State: g.State()}
}

// bottomRow is the lower of the two rows the player can hold.
func (g *Game) bottomRow() int {
	return core.Clamp(1, 0, g.runtime.Height-1)
}

// Render draws the player and every on-screen wall.
func (g *Game) Render(dst core.Display) {
	dst.SetCursor(PlayerCol, g.playerRow)
	dst.Write(core.GlyphBird)

	for _, o := range g.field.Obstacles() {
		if !g.field.Visible(o) {
			continue
		}
		for row := 0; row < g.runtime.Height; row++ {
			if row == o.GapRow {
				continue
			}
			dst.SetCursor(o.Column, row)
			dst.Write(core.GlyphWall)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// FrameInterval returns the current, ever-shrinking frame interval.
func (g *Game) FrameInterval() time.Duration {
	return g.ramp.Current()
}

// Register the game with the registry
func init() {
	registry.Register(0, "flappy", func(cfg config.Config) registry.Game {
		return New(cfg.Flappy)
	})
}
