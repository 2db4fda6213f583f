package core

// RuntimeConfig contains configuration passed to games at reset.
// Games use this to adapt to the display size and for deterministic simulation.
type RuntimeConfig struct {
	Width      int        // Display width in characters
	Height     int        // Display height in characters
	Seed       int64      // RNG seed for deterministic gameplay
	Thresholds Thresholds // Axis cutoffs for two-level input
}

// DefaultConfig returns a RuntimeConfig for a 16x2 display.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:      16,
		Height:     2,
		Seed:       0, // 0 means use current time in the host
		Thresholds: DefaultThresholds(),
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
