// Package pong implements single-player Paddle-Ball.
// The player defends column 0 with a one-cell paddle; the far wall always
// returns the ball.
package pong

import (
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// Visual elements.
const (
	PaddleText = "|"
	BallGlyph  = core.GlyphBall
)

// DefendColumn is the column where the paddle can return the ball.
const DefendColumn = 1

// Game implements the Paddle-Ball game logic.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig

	ball       core.Point
	velX, velY int
	paddleRow  int

	score    int
	gameOver bool
}

// New creates a new Paddle-Ball game instance.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(2, "pong", func(cfg config.Config) registry.Game {
		return New(cfg.Pong)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes the game with the given configuration.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.ball = core.Point{X: g.cfg.BallX, Y: g.cfg.BallY}
	g.velX, g.velY = 1, 1
	g.paddleRow = core.Clamp(g.cfg.PaddleRow, 0, cfg.Height-1)
	g.score = 0
	g.gameOver = false
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.ball = g.ball.Add(g.velX, g.velY)
	g.bounceRows()

	if g.ball.X == DefendColumn && g.ball.Y == g.paddleRow {
		g.velX = -g.velX
		g.score++
	}

	if g.ball.X <= 0 {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if g.ball.X >= g.runtime.Width-1 {
		g.velX = -g.velX
	}

	switch input.Vertical(g.runtime.Thresholds) {
	case core.IntentNegative:
		g.paddleRow = 0
	case core.IntentPositive:
		g.paddleRow = g.bottomRow()
	}

	return core.StepResult{State: g.State()}
}

// bounceRows reflects a ball that left the top or bottom row back into
// range and inverts its vertical velocity.
func (g *Game) bounceRows() {
	h := g.runtime.Height
	switch {
	case g.ball.Y < 0:
		g.ball.Y = -g.ball.Y
	case g.ball.Y >= h:
		g.ball.Y = 2*(h-1) - g.ball.Y
	default:
		return
	}
	g.velY = -g.velY
	g.ball.Y = core.Clamp(g.ball.Y, 0, h-1)
}

// bottomRow is the row a "down" stick moves the paddle to.
func (g *Game) bottomRow() int {
	return core.Clamp(1, 0, g.runtime.Height-1)
}

// Render draws the paddle and the ball.
func (g *Game) Render(dst core.Display) {
	dst.SetCursor(0, g.paddleRow)
	dst.Print(PaddleText)

	if g.ball.In(g.runtime.Width, g.runtime.Height) {
		dst.SetCursor(g.ball.X, g.ball.Y)
		dst.Write(BallGlyph)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// FrameInterval returns the fixed Paddle-Ball frame interval.
func (g *Game) FrameInterval() time.Duration {
	return g.cfg.Interval()
}

// Ball returns the ball's cell and velocity.
func (g *Game) Ball() (pos core.Point, velX, velY int) {
	return g.ball, g.velX, g.velY
}

// PaddleRow returns the paddle's row.
func (g *Game) PaddleRow() int {
	return g.paddleRow
}
