// Package snake implements the grid snake game.
// The snake moves one cell per frame, grows by eating food and dies on the
// display edge or its own body.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Glyphs used for drawing.
const (
	BodyGlyph = core.GlyphSnake
	FoodGlyph = core.GlyphBall
)

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	score   int

	// Snake state. body is a fixed-capacity arena; only body[:length] is live.
	body      []core.Point // Head at index 0
	length    int
	direction Direction

	food     core.Point
	gameOver bool
}

// New creates a new Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:  cfg,
		body: make([]core.Point, cfg.MaxLength),
	}
}

func init() {
	registry.Register(1, "snake", func(cfg config.Config) registry.Game {
		return New(cfg.Snake)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.score = 0
	g.gameOver = false

	// Lay the body out behind the head, trailing to the left.
	g.length = min(g.cfg.StartLength, len(g.body))
	head := core.Point{X: g.cfg.StartX, Y: g.cfg.StartY}
	for i := 0; i < g.length; i++ {
		g.body[i] = head.Add(-i, 0)
	}
	g.direction = DirRight

	g.placeFood()
}

// placeFood puts food on a uniformly random cell. The snake's own cells are
// not excluded.
func (g *Game) placeFood() {
	g.food = core.Point{
		X: g.rng.Intn(g.runtime.Width),
		Y: g.rng.Intn(g.runtime.Height),
	}
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	tail := g.move()

	if g.collided() {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if g.body[0] == g.food {
		g.grow(tail)
		g.placeFood()
		g.score++
	}

	g.processInput(input)

	return core.StepResult{State: g.State()}
}

// move shifts every segment into the cell ahead of it and steps the head.
// It returns the cell the tail vacated.
func (g *Game) move() core.Point {
	tail := g.body[g.length-1]
	for i := g.length - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
	}
	dx, dy := g.direction.Delta()
	g.body[0] = g.body[0].Add(dx, dy)
	return tail
}

// collided reports a wall or self hit for the current head.
func (g *Game) collided() bool {
	head := g.body[0]
	if !head.In(g.runtime.Width, g.runtime.Height) {
		return true
	}
	for i := 1; i < g.length; i++ {
		if g.body[i] == head {
			return true
		}
	}
	return false
}

// grow extends the body into the vacated tail cell, up to capacity.
func (g *Game) grow(tail core.Point) {
	if g.length >= len(g.body) {
		return
	}
	g.body[g.length] = tail
	g.length++
}

// processInput applies the stick to the direction. Horizontal is read before
// vertical, so a diagonal stick turns vertically. Both requests are checked
// against the heading the frame started with, so no frame reverses the snake.
func (g *Game) processInput(input core.InputFrame) {
	th := g.runtime.Thresholds
	back := g.direction.Opposite()

	switch input.Horizontal(th) {
	case core.IntentNegative:
		g.turn(DirLeft, back)
	case core.IntentPositive:
		g.turn(DirRight, back)
	}

	switch input.Vertical(th) {
	case core.IntentNegative:
		g.turn(DirUp, back)
	case core.IntentPositive:
		g.turn(DirDown, back)
	}
}

// turn heads the snake towards d unless d is the blocked reversal.
func (g *Game) turn(d, blocked Direction) {
	if d == blocked {
		return
	}
	g.direction = d
}

// Render draws the food, then every segment head first.
func (g *Game) Render(dst core.Display) {
	dst.SetCursor(g.food.X, g.food.Y)
	dst.Write(FoodGlyph)

	for _, seg := range g.body[:g.length] {
		dst.SetCursor(seg.X, seg.Y)
		dst.Write(BodyGlyph)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// FrameInterval returns the fixed snake frame interval.
func (g *Game) FrameInterval() time.Duration {
	return g.cfg.Interval()
}

// Body returns a copy of the live segments, head first.
func (g *Game) Body() []core.Point {
	out := make([]core.Point, g.length)
	copy(out, g.body[:g.length])
	return out
}

// --- Direction helpers ---

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
