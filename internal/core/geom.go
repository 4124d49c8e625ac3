// Package core provides fundamental types and utilities shared by games and
// the platform layer. It contains no Bubble Tea code so game logic stays pure
// and testable.
package core

import (
	"fmt"
	"math/rand"
)

// Vec2 is a grid coordinate pair in pixel units.
// It is a value type: assigning a Vec2 copies it, so two segments never share
// one position.
type Vec2 struct {
	X, Y int
}

// V creates a new Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// SetPos overwrites both axes.
func (v *Vec2) SetPos(x, y int) {
	v.X = x
	v.Y = y
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Equal reports whether both axes match exactly.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// String renders the vector as "x, y".
func (v Vec2) String() string {
	return fmt.Sprintf("%d, %d", v.X, v.Y)
}

// Grid describes the square playfield: a screen of ScreenLength pixels per
// side split into CellCount cells per row.
// A Grid is set once at startup and never mutated afterwards.
type Grid struct {
	ScreenLength int // Width (and height) of the square surface in pixels
	CellCount    int // Cells per row
}

// NewGrid creates a grid for the given screen length and cell count.
func NewGrid(screenLength, cellCount int) Grid {
	return Grid{ScreenLength: screenLength, CellCount: cellCount}
}

// EdgeLength returns the pixel size of one cell.
// It is derived on every call so all cells built from the same grid agree.
func (g Grid) EdgeLength() int {
	if g.CellCount <= 0 {
		return 0
	}
	return g.ScreenLength / g.CellCount
}

// Snap rounds a pixel coordinate down to the nearest multiple of the edge length.
func (g Grid) Snap(px int) int {
	edge := g.EdgeLength()
	if edge == 0 {
		return px
	}
	return (px / edge) * edge
}

// Aligned reports whether both axes of p are multiples of the edge length.
func (g Grid) Aligned(p Vec2) bool {
	edge := g.EdgeLength()
	if edge == 0 {
		return false
	}
	return p.X%edge == 0 && p.Y%edge == 0
}

// Mid returns the grid-aligned pixel coordinate closest to the screen middle.
func (g Grid) Mid() int {
	return g.Snap(g.ScreenLength / 2)
}

// RandomCoord returns a random grid-aligned coordinate on one axis.
func (g Grid) RandomCoord(rng *rand.Rand) int {
	if g.CellCount <= 0 {
		return 0
	}
	return rng.Intn(g.CellCount) * g.EdgeLength()
}

// RandomAligned returns a random grid-aligned position on both axes.
func (g Grid) RandomAligned(rng *rand.Rand) Vec2 {
	x := g.RandomCoord(rng)
	y := g.RandomCoord(rng)
	return Vec2{X: x, Y: y}
}

// Rect represents an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlap of two rectangles.
// The result has zero width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := Max(r.X, other.X)
	y0 := Max(r.Y, other.Y)
	x1 := Min(r.Right(), other.Right())
	y1 := Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
