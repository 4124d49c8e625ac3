package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Snapshot captures the game state for determinism testing and debug logs.
type Snapshot struct {
	Tick     uint64
	Mode     string
	SnakeLen int
	Head     core.Vec2
	Dir      Direction
	HasFood  bool
	Food     core.Vec2
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: g.tick,
		Mode: string(g.mode),
	}
	if g.snake != nil {
		snap.SnakeLen = g.snake.Len()
		snap.Head = g.snake.Head().Pos
		snap.Dir = g.snake.Direction()
	}
	if g.apple != nil {
		snap.HasFood = true
		snap.Food = g.apple.Pos
	}
	return snap
}
