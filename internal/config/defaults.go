package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// Default returns the stock console configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  16,
			Height: 2,
		},
		Input: InputConfig{
			LowThreshold:  400,
			HighThreshold: 600,
			HoldMs:        1000,
		},
		Timing: TimingConfig{
			MenuPollMs:      200,
			DebounceMs:      300,
			GameOverDwellMs: 1500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			ConfirmHz:  1000,
			ConfirmMs:  50,
			GameOverMs: 300,
		},
		Flappy: FlappyConfig{
			MaxObstacles: 5,
			Spacing:      4,
			RespawnMin:   3,
			RespawnMax:   8,
			Ramp: RampConfig{
				StartMs: 400,
				FloorMs: 150,
				StepMs:  10,
			},
		},
		Snake: SnakeConfig{
			IntervalMs:  150,
			MaxLength:   16,
			StartLength: 3,
			StartX:      5,
			StartY:      0,
		},
		Pong: PongConfig{
			IntervalMs: 150,
			BallX:      7,
			BallY:      0,
			PaddleRow:  0,
		},
	}
}
