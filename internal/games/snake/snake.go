package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// MinSegments is the smallest segment count a snake can be built with.
const MinSegments = 2

// Snake is an ordered body of cells, head at index 0, tail at the end.
type Snake struct {
	grid      core.Grid
	body      []Cell
	direction Direction
	color     core.Color
	rng       *rand.Rand
}

// NewSnake builds a snake heading up. The head lands on a random grid-aligned
// column at mid-screen, and one cell per requested segment is stacked
// directly below it, so the body holds segments+1 cells. Requests below
// MinSegments are raised to MinSegments.
func NewSnake(grid core.Grid, segments int, color core.Color, rng *rand.Rand) (*Snake, error) {
	if segments < MinSegments {
		segments = MinSegments
	}

	head, err := NewCell(core.V(grid.RandomCoord(rng), grid.Mid()), color, grid)
	if err != nil {
		return nil, fmt.Errorf("snake: new snake: %w", err)
	}

	s := &Snake{
		grid:      grid,
		body:      make([]Cell, 0, segments+1),
		direction: DirUp,
		color:     head.Color,
		rng:       rng,
	}
	s.body = append(s.body, head)

	edge := grid.EdgeLength()
	for i := 1; i <= segments; i++ {
		s.body = append(s.body, s.cellAt(core.V(head.Pos.X, head.Pos.Y+i*edge)))
	}

	return s, nil
}

// cellAt creates a body cell. The color was validated at construction.
func (s *Snake) cellAt(pos core.Vec2) Cell {
	return Cell{Pos: pos, Color: s.color, grid: s.grid}
}

// Head returns the leading segment.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection changes the heading unless d is the exact opposite of the
// current one. Re-setting the current heading or turning perpendicular is
// accepted. Unknown values and reversals are ignored silently; the return
// value tells whether the heading was applied.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Grow appends one tail cell.
//
// The new cell goes one edge below the current tail. If that would push it
// past the bottom of the screen, it stays on the tail's row and shifts one
// edge away from the nearer side wall instead. That keeps it visible but may
// leave it detached from the chain; nothing depends on the body being
// contiguous.
func (s *Snake) Grow() {
	if len(s.body) == 0 {
		s.body = append(s.body, s.cellAt(core.V(s.grid.RandomCoord(s.rng), s.grid.Mid())))
		return
	}

	edge := s.grid.EdgeLength()
	last := s.body[len(s.body)-1].Pos
	next := core.V(last.X, last.Y+edge)

	if next.Y+edge > s.grid.ScreenLength {
		next = last
		if last.X < s.grid.ScreenLength/2 {
			next.X += edge
		} else {
			next.X -= edge
		}
	}

	s.body = append(s.body, s.cellAt(next))
}

// Move advances the snake one edge length in its heading. Each segment takes
// the previous position of the one ahead of it, the old tail position is
// dropped, and a fresh head cell is placed in front.
func (s *Snake) Move() {
	if len(s.body) == 0 {
		return
	}

	next := s.body[0].Pos.Add(s.direction.Step(s.grid.EdgeLength()))

	body := make([]Cell, len(s.body))
	body[0] = s.cellAt(next)
	copy(body[1:], s.body[:len(s.body)-1])
	s.body = body
}

// Draw paints every segment.
func (s *Snake) Draw(dst core.Surface) {
	for _, seg := range s.body {
		seg.Draw(dst)
	}
}
