package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// DefaultCellColor is used when a cell is created without a color.
const DefaultCellColor = core.ColorRed

// Cell is one grid-aligned square: a position, a fill color, and the grid it
// belongs to. Its edge length always comes from the grid, so every cell of a
// game shares one size.
type Cell struct {
	Pos   core.Vec2
	Color core.Color
	grid  core.Grid
}

// NewCell creates a cell at pos. An empty color falls back to
// DefaultCellColor; a color that is not a valid hex string fails with
// core.ErrInvalidArgument, as does a grid without cells.
func NewCell(pos core.Vec2, color core.Color, grid core.Grid) (Cell, error) {
	if grid.EdgeLength() <= 0 {
		return Cell{}, fmt.Errorf("snake: cell: %w: grid %dpx/%d cells has no edge length",
			core.ErrInvalidArgument, grid.ScreenLength, grid.CellCount)
	}
	if color == core.ColorNone {
		color = DefaultCellColor
	}
	parsed, err := core.ParseColor(string(color))
	if err != nil {
		return Cell{}, fmt.Errorf("snake: cell: %w", err)
	}
	return Cell{Pos: pos, Color: parsed, grid: grid}, nil
}

// EdgeLength returns the side of the cell in pixels.
func (c Cell) EdgeLength() int {
	return c.grid.EdgeLength()
}

// Draw paints the cell as a filled square.
func (c Cell) Draw(dst core.Surface) {
	edge := c.EdgeLength()
	dst.FillRect(c.Pos.X, c.Pos.Y, edge, edge, c.Color)
}

// Intersects reports whether both cells sit on exactly the same grid position.
// This is cell identity, not bounding-box overlap: cells one pixel apart do
// not intersect.
func (c Cell) Intersects(other Cell) bool {
	return c.Pos.Equal(other.Pos)
}

// String returns the cell position for debugging.
func (c Cell) String() string {
	return fmt.Sprintf("Cell(%s)", c.Pos)
}
