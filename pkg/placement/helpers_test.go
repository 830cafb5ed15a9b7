package placement

import "github.com/matzehuels/gridplace/pkg/grid"

// widgetAt builds a widget anchored at the zero-based (col, row).
func widgetAt(id, typ string, col, row, width, height int) Widget {
	return Widget{
		ID:       id,
		Type:     typ,
		Position: PositionAt(grid.Cell{Col: col, Row: row}, Size{Width: width, Height: height}),
	}
}

func widgetMap(ws ...Widget) map[string]Widget {
	m := make(map[string]Widget, len(ws))
	for _, w := range ws {
		m[w.ID] = w
	}
	return m
}

func overlapsAny(e *Engine, pos Position) bool {
	for _, w := range e.Widgets() {
		if grid.BoundsOverlap(pos.Bounds(), w.Position.Bounds()) {
			return true
		}
	}
	return false
}
