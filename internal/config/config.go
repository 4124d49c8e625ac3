// Package config provides YAML-based configuration loading for the snake
// game, with embedded defaults and environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  BodyConfig   `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`

	// Source records where the configuration was read from.
	Source string `yaml:"-"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	ScreenLength int `yaml:"screen_length"`
	CellCount    int `yaml:"cell_count"`
}

// BodyConfig defines the snake at spawn.
type BodyConfig struct {
	InitialSegments int    `yaml:"initial_segments"`
	Color           string `yaml:"color"`
}

// FoodConfig defines the food cell.
type FoodConfig struct {
	Color string `yaml:"color"`
}

// TimingConfig defines the update timer.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// Validate checks the configuration. Every failure wraps core.ErrInvalidArgument.
func (c SnakeConfig) Validate() error {
	if c.Grid.CellCount <= 0 {
		return fmt.Errorf("config: %w: grid.cell_count must be positive, got %d",
			core.ErrInvalidArgument, c.Grid.CellCount)
	}
	if c.Grid.ScreenLength < c.Grid.CellCount {
		return fmt.Errorf("config: %w: grid.screen_length %d is smaller than cell_count %d",
			core.ErrInvalidArgument, c.Grid.ScreenLength, c.Grid.CellCount)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("config: %w: timing.tick_interval must be positive, got %s",
			core.ErrInvalidArgument, c.Timing.TickInterval)
	}
	if _, err := core.ParseColor(c.Snake.Color); err != nil {
		return fmt.Errorf("config: snake.color: %w", err)
	}
	if _, err := core.ParseColor(c.Food.Color); err != nil {
		return fmt.Errorf("config: food.color: %w", err)
	}
	return nil
}

// Runtime converts the configuration into the settings handed to a game.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:            core.NewGrid(c.Grid.ScreenLength, c.Grid.CellCount),
		TickInterval:    c.Timing.TickInterval,
		Seed:            seed,
		InitialSegments: c.Snake.InitialSegments,
		SnakeColor:      core.Color(c.Snake.Color),
		FoodColor:       core.Color(c.Food.Color),
	}
}
