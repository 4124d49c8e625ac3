package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// It is built once at startup and treated as immutable afterwards.
type RuntimeConfig struct {
	Grid            Grid          // Playfield geometry
	TickInterval    time.Duration // Time between update ticks
	Seed            int64         // RNG seed for deterministic gameplay
	InitialSegments int           // Requested snake segments at spawn
	SnakeColor      Color         // Snake segment fill
	FoodColor       Color         // Food cell fill
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:            NewGrid(480, 48),
		TickInterval:    100 * time.Millisecond,
		Seed:            0, // 0 means use current time in platform layer
		InitialSegments: 20,
		SnakeColor:      ColorRed,
		FoodColor:       ColorGreen,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick   uint64 // Ticks simulated since Reset
	Length int    // Current snake length in segments
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventFoodEaten EventKind = iota + 1
)

// String returns the event name used in logs and traces.
func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence during a tick.
type Event struct {
	Kind EventKind
	At   Vec2 // Where it happened
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
