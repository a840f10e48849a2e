package virtual

import (
	"strings"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// Cell classifies one raster cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellTitleBar
	CellContent
)

// Raster samples the surface onto a cols×rows grid covering screen.
// Each cell is sampled at its center.
func Raster(state State, screen entity.Screen, titleBarHeight, cols, rows int) [][]Cell {
	grid := make([][]Cell, rows)
	if cols <= 0 || rows <= 0 {
		return grid
	}
	cellW := float64(screen.Width) / float64(cols)
	cellH := float64(screen.Height) / float64(rows)
	g := state.Geometry

	for row := range grid {
		grid[row] = make([]Cell, cols)
		if !state.Open {
			continue
		}
		y := (float64(row) + 0.5) * cellH
		for col := range grid[row] {
			x := (float64(col) + 0.5) * cellW
			if !state.Shape.Covers(g, x, y) {
				continue
			}
			if y < float64(g.Y+titleBarHeight) {
				grid[row][col] = CellTitleBar
			} else {
				grid[row][col] = CellContent
			}
		}
	}
	return grid
}

// String renders a raster with one rune per cell.
func String(grid [][]Cell) string {
	var sb strings.Builder
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			switch c {
			case CellTitleBar:
				sb.WriteRune('▀')
			case CellContent:
				sb.WriteRune('█')
			default:
				sb.WriteRune('·')
			}
		}
	}
	return sb.String()
}
