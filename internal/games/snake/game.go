// Package snake implements the grid snake: a segmented body steered with
// WASD that grows when its head lands on the food cell. There is no wall or
// self collision; the snake can wander off screen indefinitely.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Mode represents the game variant.
type Mode string

const (
	ModeFood    Mode = "food"    // Food spawns and feeds the snake
	ModeClassic Mode = "classic" // No food, the snake only roams
)

// Game implements the Snake game.
type Game struct {
	mode      Mode
	rng       *rand.Rand
	tick      uint64
	grid      core.Grid
	foodColor core.Color

	snake *Snake
	apple *Cell // nil when the mode has no food
}

// New creates a Snake game with food.
func New() *Game {
	return &Game{
		mode: ModeFood,
	}
}

// NewClassic creates a Snake game without food.
func NewClassic() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
// Invalid grid geometry or colors fail with core.ErrInvalidArgument.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	grid := cfg.Grid
	if grid.CellCount <= 0 || grid.ScreenLength < grid.CellCount {
		return fmt.Errorf("snake: %w: grid %dpx/%d cells",
			core.ErrInvalidArgument, grid.ScreenLength, grid.CellCount)
	}

	foodColor := cfg.FoodColor
	if foodColor == core.ColorNone {
		foodColor = core.ColorGreen
	}
	foodColor, err := core.ParseColor(string(foodColor))
	if err != nil {
		return fmt.Errorf("snake: food: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	body, err := NewSnake(grid, cfg.InitialSegments, cfg.SnakeColor, rng)
	if err != nil {
		return err
	}

	g.rng = rng
	g.tick = 0
	g.grid = grid
	g.foodColor = foodColor
	g.snake = body
	g.apple = nil

	if g.mode == ModeFood {
		g.newApple()
	}
	return nil
}

// newApple replaces the food with a cell at a random grid-aligned position.
func (g *Game) newApple() {
	apple := Cell{
		Pos:   g.grid.RandomAligned(g.rng),
		Color: g.foodColor,
		grid:  g.grid,
	}
	g.apple = &apple
}

// manageCollisions feeds the snake when its head sits on the food.
// Returns true when food was eaten.
func (g *Game) manageCollisions() bool {
	if g.apple == nil || !g.apple.Intersects(g.snake.Head()) {
		return false
	}
	g.newApple()
	g.snake.Grow()
	return true
}

// HandleAction steers the snake. Reversals are dropped by the snake itself;
// anything that is not a steering action is ignored.
func (g *Game) HandleAction(a core.Action) {
	if g.snake == nil {
		return
	}
	if d, ok := directionForAction(a); ok {
		g.snake.SetDirection(d)
	}
}

// Step advances the game by one tick: food collisions first, then movement.
func (g *Game) Step() core.StepResult {
	if g.snake == nil {
		return core.StepResult{}
	}
	g.tick++

	var events []core.Event
	head := g.snake.Head().Pos
	if g.manageCollisions() {
		events = append(events, core.Event{Kind: core.EventFoodEaten, At: head})
	}

	g.snake.Move()

	return core.StepResult{State: g.State(), Events: events}
}

// Render clears the surface and draws the food, then the snake on top.
func (g *Game) Render(dst core.Surface) {
	dst.ClearRect(0, 0, dst.Width(), dst.Height())
	if g.snake == nil {
		return
	}

	if g.apple != nil {
		g.apple.Draw(dst)
	}
	g.snake.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	return core.GameState{
		Tick:   g.tick,
		Length: length,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Mode: %s\n", snap.Tick, snap.Mode))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", snap.SnakeLen, snap.Dir))
	b.WriteString(fmt.Sprintf("Head: (%s)", snap.Head))
	if snap.HasFood {
		b.WriteString(fmt.Sprintf(", Food: (%s)", snap.Food))
	}
	b.WriteString("\n")
	return b.String()
}
