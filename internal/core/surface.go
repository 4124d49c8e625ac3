package core

import (
	"strings"
)

// Surface is an immediate-mode 2D drawing target addressed in pixels.
// Games draw into a Surface without knowing how the platform displays it.
type Surface interface {
	// FillRect paints a w×h rectangle at (x, y) with the given color.
	FillRect(x, y, w, h int, c Color)

	// ClearRect resets a w×h rectangle at (x, y) to the cleared state.
	ClearRect(x, y, w, h int)

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int
}

// Canvas is an in-memory pixel framebuffer implementing Surface.
// Drawing outside the canvas is clipped silently, the way a browser canvas
// behaves, so entities may leave the visible area without errors.
type Canvas struct {
	width  int
	height int
	pixels [][]Color
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	c.pixels = make([][]Color, c.height)
	for y := range c.pixels {
		c.pixels[y] = make([]Color, c.width)
	}
	return c
}

// NewSquareCanvas creates a canvas covering the whole grid.
func NewSquareCanvas(g Grid) *Canvas {
	return NewCanvas(g.ScreenLength, g.ScreenLength)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// bounds returns the canvas rectangle.
func (c *Canvas) bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// FillRect paints the visible part of the rectangle.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	r := NewRect(x, y, w, h).Intersect(c.bounds())
	if r.Empty() {
		return
	}
	for py := r.Y; py < r.Bottom(); py++ {
		row := c.pixels[py]
		for px := r.X; px < r.Right(); px++ {
			row[px] = col
		}
	}
}

// ClearRect resets the visible part of the rectangle.
func (c *Canvas) ClearRect(x, y, w, h int) {
	c.FillRect(x, y, w, h, ColorNone)
}

// Clear resets the whole canvas.
func (c *Canvas) Clear() {
	c.ClearRect(0, 0, c.width, c.height)
}

// At returns the color at the given pixel.
// Returns ColorNone for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorNone
	}
	return c.pixels[y][x]
}

// Dump renders the canvas sampled at the grid's cell corners, one rune per
// cell: '.' for cleared cells and '#' for painted ones. Used for debugging
// and tests.
func (c *Canvas) Dump(g Grid) string {
	edge := g.EdgeLength()
	if edge <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.CellCount*g.CellCount + g.CellCount)

	for row := 0; row < g.CellCount; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < g.CellCount; col++ {
			if c.At(col*edge, row*edge) == ColorNone {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
