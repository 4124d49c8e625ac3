package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const (
	// cellRunes is how one grid cell is drawn; two columns keep cells roughly square.
	cellRunes  = "██"
	emptyRunes = "  "
	cellWidth  = 2
)

// Renderer converts a canvas to a styled string for display.
// It caches one Lip Gloss style per color.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{
		styles: make(map[core.Color]lipgloss.Style),
	}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != core.ColorNone {
		s = s.Foreground(lipgloss.Color(string(c)))
	}
	r.styles[c] = s
	return s
}

// Render samples the canvas once per grid cell, at the cell's top-left pixel,
// and draws each cell as two terminal columns. The output is cropped to
// cols×rows terminal cells; zero or negative limits mean no cropping.
// Adjacent cells with the same color are grouped to minimize escape sequences.
func (r *Renderer) Render(c *core.Canvas, g core.Grid, cols, rows int) string {
	edge := g.EdgeLength()
	if edge <= 0 {
		return ""
	}

	gridCols := g.CellCount
	if cols > 0 {
		gridCols = core.Min(gridCols, cols/cellWidth)
	}
	gridRows := g.CellCount
	if rows > 0 {
		gridRows = core.Min(gridRows, rows)
	}

	var sb strings.Builder
	sb.Grow(gridRows * (gridCols*len(cellRunes) + 1))

	for row := 0; row < gridRows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < gridCols {
			start := c.At(col*edge, row*edge)

			// Collect consecutive cells with same color
			var run strings.Builder
			for col < gridCols && c.At(col*edge, row*edge) == start {
				if start == core.ColorNone {
					run.WriteString(emptyRunes)
				} else {
					run.WriteString(cellRunes)
				}
				col++
			}

			if start == core.ColorNone {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderCanvas renders c with a fresh Renderer.
func RenderCanvas(c *core.Canvas, g core.Grid, cols, rows int) string {
	return NewRenderer().Render(c, g, cols, rows)
}
