package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestNewCellDefaults(t *testing.T) {
	grid := core.NewGrid(480, 48)

	c, err := NewCell(core.V(10, 20), "", grid)
	if err != nil {
		t.Fatalf("NewCell() failed: %v", err)
	}
	if c.Color != core.ColorRed {
		t.Errorf("default color = %q, expected %q", c.Color, core.ColorRed)
	}
	if c.EdgeLength() != 10 {
		t.Errorf("EdgeLength() = %d, expected 10", c.EdgeLength())
	}
	if c.Pos != core.V(10, 20) {
		t.Errorf("Pos = %v, expected 10, 20", c.Pos)
	}
}

func TestNewCellInvalidArgument(t *testing.T) {
	tests := []struct {
		name  string
		color core.Color
		grid  core.Grid
	}{
		{"named color", "green", core.NewGrid(480, 48)},
		{"garbage hex", "#12345z", core.NewGrid(480, 48)},
		{"no cells", core.ColorRed, core.NewGrid(480, 0)},
		{"screen smaller than cells", core.ColorRed, core.NewGrid(10, 48)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCell(core.V(0, 0), tc.color, tc.grid)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("NewCell() error = %v, expected ErrInvalidArgument", err)
			}
		})
	}
}

func TestCellIntersects(t *testing.T) {
	grid := core.NewGrid(480, 48)
	mk := func(x, y int) Cell {
		c, err := NewCell(core.V(x, y), core.ColorRed, grid)
		if err != nil {
			t.Fatalf("NewCell() failed: %v", err)
		}
		return c
	}

	tests := []struct {
		name     string
		a, b     Cell
		expected bool
	}{
		{"same position", mk(0, 0), mk(0, 0), true},
		{"one cell apart", mk(0, 0), mk(10, 0), false},
		{"one cell below", mk(0, 0), mk(0, 10), false},
		{"sub-edge difference", mk(0, 0), mk(1, 0), false},
		{"sub-edge vertical difference", mk(30, 30), mk(30, 39), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCellIntersectsIgnoresColor(t *testing.T) {
	grid := core.NewGrid(480, 48)
	a, _ := NewCell(core.V(50, 50), core.ColorRed, grid)
	b, _ := NewCell(core.V(50, 50), core.ColorGreen, grid)

	if !a.Intersects(b) {
		t.Error("cells at the same position should intersect regardless of color")
	}
}

func TestCellDraw(t *testing.T) {
	grid := core.NewGrid(100, 10)
	canvas := core.NewSquareCanvas(grid)
	c, _ := NewCell(core.V(20, 30), core.ColorGreen, grid)

	c.Draw(canvas)

	if canvas.At(20, 30) != core.ColorGreen || canvas.At(29, 39) != core.ColorGreen {
		t.Error("Draw should fill the whole square")
	}
	if canvas.At(30, 30) != core.ColorNone || canvas.At(20, 40) != core.ColorNone {
		t.Error("Draw should not paint past the edge length")
	}
}
