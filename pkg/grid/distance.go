package grid

import "math"

// ManhattanDistance returns |Δcol| + |Δrow|.
func ManhattanDistance(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// EuclideanDistance returns the straight-line distance between two cells,
// measured in cells.
func EuclideanDistance(a, b Cell) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// WidgetBounds returns the inclusive span of a widget anchored at topLeft
// that is width columns wide and height rows tall.
func WidgetBounds(topLeft Cell, width, height int) Bounds {
	return Bounds{
		MinCol: topLeft.Col,
		MaxCol: topLeft.Col + width - 1,
		MinRow: topLeft.Row,
		MaxRow: topLeft.Row + height - 1,
	}
}

// BoundsOverlap reports whether a and b share at least one cell.
func BoundsOverlap(a, b Bounds) bool {
	return !(a.MaxCol < b.MinCol || b.MaxCol < a.MinCol ||
		a.MaxRow < b.MinRow || b.MaxRow < a.MinRow)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
