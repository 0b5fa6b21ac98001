package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 30x20 grid of 25px cells, 60 frames
// and 10 updates per second, and a 1 in 10 chance of a 7 second bonus food worth 5.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Display: DisplayConfig{
			CellSize:  25,
			FrameRate: 60,
		},
		Timing: TimingConfig{
			UpdatesPerSecond: 10,
		},
		Food: FoodConfig{
			BonusProbability: 0.1,
			BonusDuration:    7.0,
			BonusScore:       5,
			NormalScore:      1,
		},
	}
}
