// Package config provides YAML-based console configuration loading and the
// frame-interval ramp used for difficulty progression.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Config contains all configuration for the console and its games.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Flappy  FlappyConfig  `yaml:"flappy"`
	Snake   SnakeConfig   `yaml:"snake"`
	Pong    PongConfig    `yaml:"pong"`
}

// DisplayConfig defines the character grid.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig defines how raw axis readings become intents.
type InputConfig struct {
	LowThreshold  int `yaml:"low_threshold"`
	HighThreshold int `yaml:"high_threshold"`
	HoldMs        int `yaml:"hold_ms"` // How long an unread key press stays latched on the virtual stick
}

// TimingConfig defines the menu and session pacing outside game frames.
type TimingConfig struct {
	MenuPollMs      int `yaml:"menu_poll_ms"`
	DebounceMs      int `yaml:"debounce_ms"`
	GameOverDwellMs int `yaml:"game_over_dwell_ms"`
}

// AudioConfig defines the buzzer feedback.
type AudioConfig struct {
	Enabled   bool `yaml:"enabled"`
	ConfirmHz int  `yaml:"confirm_hz"`
	ConfirmMs int  `yaml:"confirm_ms"`
	// Tone played when a session ends; 0 Hz keeps the console silent.
	GameOverHz int `yaml:"game_over_hz"`
	GameOverMs int `yaml:"game_over_ms"`
}

// FlappyConfig defines the obstacle-avoidance game.
type FlappyConfig struct {
	MaxObstacles int        `yaml:"max_obstacles"`
	Spacing      int        `yaml:"spacing"`     // Column gap between initial obstacles
	RespawnMin   int        `yaml:"respawn_min"` // Inclusive offset past the right edge
	RespawnMax   int        `yaml:"respawn_max"` // Exclusive offset past the right edge
	Ramp         RampConfig `yaml:"ramp"`
}

// RampConfig defines a frame interval that shrinks toward a floor.
type RampConfig struct {
	StartMs int `yaml:"start_ms"`
	FloorMs int `yaml:"floor_ms"`
	StepMs  int `yaml:"step_ms"`
}

// SnakeConfig defines the grid-snake game.
type SnakeConfig struct {
	IntervalMs  int `yaml:"interval_ms"`
	MaxLength   int `yaml:"max_length"`
	StartLength int `yaml:"start_length"`
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
}

// PongConfig defines the paddle-ball game.
type PongConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	BallX      int `yaml:"ball_x"`
	BallY      int `yaml:"ball_y"`
	PaddleRow  int `yaml:"paddle_row"`
}

// Thresholds returns the input cutoffs as core thresholds.
func (c InputConfig) Thresholds() core.Thresholds {
	return core.Thresholds{Low: c.LowThreshold, High: c.HighThreshold}
}

// Hold returns the virtual stick hold time.
func (c InputConfig) Hold() time.Duration {
	return ms(c.HoldMs)
}

// MenuPoll returns the menu polling interval.
func (c TimingConfig) MenuPoll() time.Duration {
	return ms(c.MenuPollMs)
}

// Debounce returns the pause after a button press.
func (c TimingConfig) Debounce() time.Duration {
	return ms(c.DebounceMs)
}

// GameOverDwell returns how long the Game Over screen stays up.
func (c TimingConfig) GameOverDwell() time.Duration {
	return ms(c.GameOverDwellMs)
}

// Confirm returns the confirm tone duration.
func (c AudioConfig) Confirm() time.Duration {
	return ms(c.ConfirmMs)
}

// GameOver returns the game-over tone duration.
func (c AudioConfig) GameOver() time.Duration {
	return ms(c.GameOverMs)
}

// Interval returns the snake frame interval.
func (c SnakeConfig) Interval() time.Duration {
	return ms(c.IntervalMs)
}

// Interval returns the paddle-ball frame interval.
func (c PongConfig) Interval() time.Duration {
	return ms(c.IntervalMs)
}

// Runtime builds the per-session runtime config for the given seed.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:      c.Display.Width,
		Height:     c.Display.Height,
		Seed:       seed,
		Thresholds: c.Input.Thresholds(),
	}
}

// Validate rejects configurations the games cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width < 2 || c.Display.Height < 1 {
		errs = append(errs, fmt.Errorf("display must be at least 2x1, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Input.LowThreshold > c.Input.HighThreshold {
		errs = append(errs, fmt.Errorf("input low_threshold %d exceeds high_threshold %d", c.Input.LowThreshold, c.Input.HighThreshold))
	}
	if c.Input.LowThreshold < core.AxisMin || c.Input.HighThreshold > core.AxisMax {
		errs = append(errs, fmt.Errorf("input thresholds must lie within [%d, %d]", core.AxisMin, core.AxisMax))
	}
	if slowest := c.slowestRead(); c.Input.HoldMs < slowest {
		errs = append(errs, fmt.Errorf("input hold_ms %d is shorter than the slowest input read (%d ms)", c.Input.HoldMs, slowest))
	}
	if c.Flappy.MaxObstacles < 1 {
		errs = append(errs, errors.New("flappy max_obstacles must be positive"))
	}
	if c.Flappy.RespawnMin < 0 || c.Flappy.RespawnMax <= c.Flappy.RespawnMin {
		errs = append(errs, fmt.Errorf("flappy respawn range [%d, %d) is empty", c.Flappy.RespawnMin, c.Flappy.RespawnMax))
	}
	if c.Flappy.Ramp.FloorMs <= 0 || c.Flappy.Ramp.FloorMs > c.Flappy.Ramp.StartMs || c.Flappy.Ramp.StepMs < 0 {
		errs = append(errs, fmt.Errorf("flappy ramp must satisfy 0 < floor <= start and step >= 0"))
	}
	if c.Snake.StartLength < 1 || c.Snake.StartLength > c.Snake.MaxLength {
		errs = append(errs, fmt.Errorf("snake start_length %d must be within [1, %d]", c.Snake.StartLength, c.Snake.MaxLength))
	}
	if !(core.Point{X: c.Snake.StartX, Y: c.Snake.StartY}).In(c.Display.Width, c.Display.Height) {
		errs = append(errs, fmt.Errorf("snake start (%d, %d) is off the display", c.Snake.StartX, c.Snake.StartY))
	}
	if !(core.Point{X: c.Pong.BallX, Y: c.Pong.BallY}).In(c.Display.Width, c.Display.Height) {
		errs = append(errs, fmt.Errorf("pong ball start (%d, %d) is off the display", c.Pong.BallX, c.Pong.BallY))
	}
	if c.Pong.PaddleRow < 0 || c.Pong.PaddleRow >= c.Display.Height {
		errs = append(errs, fmt.Errorf("pong paddle_row %d is off the display", c.Pong.PaddleRow))
	}
	if c.Snake.IntervalMs <= 0 || c.Pong.IntervalMs <= 0 {
		errs = append(errs, errors.New("frame intervals must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// slowestRead is the longest gap between two reads of the stick.
func (c Config) slowestRead() int {
	return max(c.Timing.MenuPollMs, c.Flappy.Ramp.StartMs, c.Snake.IntervalMs, c.Pong.IntervalMs)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
