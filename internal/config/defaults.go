package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			ScreenLength: 480,
			CellCount:    48, // 10px cells
		},
		Snake: BodyConfig{
			InitialSegments: 20,
			Color:           "#ff0000",
		},
		Food: FoodConfig{
			Color: "#00ff00",
		},
		Timing: TimingConfig{
			TickInterval: 100 * time.Millisecond,
		},
		Source: "builtin",
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
