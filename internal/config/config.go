// Package config provides YAML-based configuration for the snake game.
// Values are read once at startup and stay fixed for the lifetime of the process.
package config

import (
	"errors"
	"fmt"
)

// Config contains all startup constants.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Food    FoodConfig    `yaml:"food"`
}

// GridConfig defines the playing field in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig defines presentation parameters. The game core never reads these.
type DisplayConfig struct {
	CellSize  int `yaml:"cell_size"`
	FrameRate int `yaml:"frame_rate"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	UpdatesPerSecond float64 `yaml:"updates_per_second"`
}

// FoodConfig defines food spawning and scoring.
type FoodConfig struct {
	BonusProbability float64 `yaml:"bonus_probability"`
	BonusDuration    float64 `yaml:"bonus_duration"`
	BonusScore       uint    `yaml:"bonus_score"`
	NormalScore      uint    `yaml:"normal_score"`
}

// MinGridSide is the smallest grid width or height Validate accepts.
const MinGridSide = 3

// Rules is the part of the configuration the game core consumes.
type Rules struct {
	Grid GridConfig `yaml:"grid"`
	Food FoodConfig `yaml:"food"`
}

// Rules extracts the game rules.
func (c Config) Rules() Rules {
	return Rules{Grid: c.Grid, Food: c.Food}
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if err := c.Rules().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("display.cell_size must be positive, got %d", c.Display.CellSize))
	}
	if c.Display.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("display.frame_rate must be positive, got %d", c.Display.FrameRate))
	}
	if c.Timing.UpdatesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("timing.updates_per_second must be positive, got %g", c.Timing.UpdatesPerSecond))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks the rules on their own, for runs loaded from storage.
func (r Rules) Validate() error {
	var errs []error

	// Narrower grids let the first meal fill the board.
	if r.Grid.Width < MinGridSide || r.Grid.Height < MinGridSide {
		errs = append(errs, fmt.Errorf("grid must be at least %dx%d, got %dx%d",
			MinGridSide, MinGridSide, r.Grid.Width, r.Grid.Height))
	}
	if r.Food.BonusProbability < 0 || r.Food.BonusProbability > 1 {
		errs = append(errs, fmt.Errorf("food.bonus_probability must be within [0, 1], got %g", r.Food.BonusProbability))
	}
	if r.Food.BonusDuration < 0 {
		errs = append(errs, fmt.Errorf("food.bonus_duration must not be negative, got %g", r.Food.BonusDuration))
	}

	return errors.Join(errs...)
}
