package flappy

import (
	"math/rand"

	"github.com/vovakirdan/lcd-arcade/internal/config"
)

// Obstacle is a one-column wall with a single open row.
type Obstacle struct {
	Column int // May exceed the display width while off-screen
	GapRow int // The row the player can pass through
}

// ObstacleField owns a fixed number of obstacle slots. Every slot is always
// live: once an obstacle passes the left edge it is recycled off-screen to
// the right with a fresh gap.
type ObstacleField struct {
	slots  []Obstacle
	rng    *rand.Rand
	width  int
	height int
	cfg    config.FlappyConfig
}

// NewObstacleField creates a field for a width×height display.
func NewObstacleField(seed int64, width, height int, cfg config.FlappyConfig) *ObstacleField {
	f := &ObstacleField{
		slots:  make([]Obstacle, cfg.MaxObstacles),
		width:  width,
		height: height,
		cfg:    cfg,
	}
	f.Reset(seed)
	return f
}

// Reset lines the obstacles up just past the right edge, Spacing columns
// apart, and reseeds the RNG.
func (f *ObstacleField) Reset(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
	for i := range f.slots {
		f.slots[i] = Obstacle{
			Column: f.width + i*f.cfg.Spacing,
			GapRow: f.randomGap(),
		}
	}
}

// Advance runs one frame of obstacle movement against a player at column 0.
//
// Slots are processed in order. A slot sitting at column 0 whose gap is not
// the player's row is a crash: processing stops there and that slot does not
// move. Otherwise the slot shifts left; a slot leaving the display is
// recycled and counted.
func (f *ObstacleField) Advance(playerRow int) (crashed bool, recycled int) {
	for i := range f.slots {
		o := &f.slots[i]
		if o.Column == 0 && o.GapRow != playerRow {
			return true, recycled
		}

		o.Column--
		if o.Column < 0 {
			f.recycle(o)
			recycled++
		}
	}
	return false, recycled
}

// recycle respawns an obstacle off-screen to the right.
func (f *ObstacleField) recycle(o *Obstacle) {
	span := f.cfg.RespawnMax - f.cfg.RespawnMin
	o.Column = f.width + f.cfg.RespawnMin + f.rng.Intn(span)
	o.GapRow = f.randomGap()
}

func (f *ObstacleField) randomGap() int {
	return f.rng.Intn(f.height)
}

// Visible reports whether the obstacle is on the display.
func (f *ObstacleField) Visible(o Obstacle) bool {
	return o.Column >= 0 && o.Column < f.width
}

// Obstacles returns the slots in order.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.slots
}

// Place overwrites a slot. Out-of-range slots are ignored.
func (f *ObstacleField) Place(slot int, o Obstacle) {
	if slot < 0 || slot >= len(f.slots) {
		return
	}
	f.slots[slot] = o
}
