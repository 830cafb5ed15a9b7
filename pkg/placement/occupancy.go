package placement

import "github.com/matzehuels/gridplace/pkg/grid"

// buildOccupancy marks every cell covered by a widget other than ignore.
// Footprints are clipped to the map.
func (e *Engine) buildOccupancy(ignore string) [][]bool {
	cols := e.Columns()
	occ := make([][]bool, e.rows)
	for r := range occ {
		occ[r] = make([]bool, cols)
	}

	for _, id := range e.ids {
		if id == ignore {
			continue
		}
		b := e.widgets[id].Position.Bounds()
		for r := max(b.MinRow, 0); r <= min(b.MaxRow, e.rows-1); r++ {
			for c := max(b.MinCol, 0); c <= min(b.MaxCol, cols-1); c++ {
				occ[r][c] = true
			}
		}
	}
	return occ
}

// canPlace reports whether a size footprint anchored at a fits inside occ
// without touching an occupied cell.
func canPlace(occ [][]bool, a grid.Cell, size Size) bool {
	if a.Row < 0 || a.Col < 0 || size.Width < 1 || size.Height < 1 {
		return false
	}
	if len(occ) == 0 || a.Row+size.Height > len(occ) || a.Col+size.Width > len(occ[0]) {
		return false
	}
	for r := a.Row; r < a.Row+size.Height; r++ {
		for c := a.Col; c < a.Col+size.Width; c++ {
			if occ[r][c] {
				return false
			}
		}
	}
	return true
}
