package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Dot is a filled circle in pixel space.
type Dot struct {
	X, Y  float64
	R     float64
	Color colorful.Color
	Alpha float64
}

// Canvas rasterizes dots onto terminal cells. Each cell stands for a
// CellW x CellH pixel block; later dots overwrite earlier ones, so callers
// pass them far-to-near.
type Canvas struct {
	CellW, CellH int
	Background   colorful.Color
}

var dotGlyphs = []string{"·", "•", "●"}

type cell struct {
	glyph string
	color colorful.Color
}

// Render draws dots on a square surface of surfacePx pixels. An empty
// surface renders nothing.
func (c Canvas) Render(surfacePx int, dots []Dot) string {
	if surfacePx <= 0 || c.CellW <= 0 || c.CellH <= 0 {
		return ""
	}
	cols, rows := surfacePx/c.CellW, surfacePx/c.CellH
	if cols == 0 || rows == 0 {
		return ""
	}
	grid := make([][]*cell, rows)
	for i := range grid {
		grid[i] = make([]*cell, cols)
	}
	for _, d := range dots {
		col, row := int(d.X)/c.CellW, int(d.Y)/c.CellH
		if d.X < 0 || d.Y < 0 || col >= cols || row >= rows {
			continue
		}
		grid[row][col] = &cell{
			glyph: glyphFor(d.R),
			color: c.Background.BlendRgb(d.Color, max(0, min(1, d.Alpha))).Clamped(),
		}
	}

	var sb strings.Builder
	for r, line := range grid {
		for _, cl := range line {
			if cl == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cl.color.Hex())).Render(cl.glyph))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func glyphFor(radius float64) string {
	switch {
	case radius >= 1.6:
		return dotGlyphs[2]
	case radius >= 1.1:
		return dotGlyphs[1]
	default:
		return dotGlyphs[0]
	}
}
