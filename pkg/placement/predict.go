package placement

import (
	"math"

	"github.com/matzehuels/gridplace/pkg/grid"
)

// affectedDistance is the anchor distance within which existing widgets are
// reported as affected by a drop.
const affectedDistance = 2.0

type dropOptions struct {
	ignore string
}

// DropOption configures PredictDrop.
type DropOption func(*dropOptions)

// IgnoreWidget leaves the widget being dragged out of the occupancy check
// and the affected list, so it can be dropped over its own old footprint.
func IgnoreWidget(id string) DropOption {
	return func(o *dropOptions) { o.ignore = id }
}

// PredictDrop resolves a drag target to the nearest anchor where a widget of
// the given size fits.
//
// The target is rounded and clamped to row/column 1. A widget wider than the
// grid is scaled down first. If the target is infeasible, a spiral search
// over Manhattan rings of radius 0 to SearchRadius picks the feasible anchor
// with the smallest Euclidean distance; the first ring with any feasible
// anchor wins, and ties keep ring order (rows, then columns, ascending).
func (e *Engine) PredictDrop(drag DragPoint, size Size, opts ...DropOption) DropPrediction {
	var o dropOptions
	for _, opt := range opts {
		opt(&o)
	}

	occ := e.occupancy
	if _, ok := e.widgets[o.ignore]; ok {
		occ = e.buildOccupancy(o.ignore)
	}

	requested := size.orUnit()
	resolved := requested
	var adjustments []Adjustment
	if requested.Width > e.Columns() {
		avail := Size{Width: e.Columns(), Height: e.rows}
		if s, ok := SuggestSizeAdjustment(PositionAt(grid.Cell{}, requested), avail); ok {
			resolved = s
			adjustments = append(adjustments, Adjustment{
				Kind:   AdjustSize,
				From:   requested,
				To:     resolved,
				Reason: "widget is wider than the grid",
			})
		}
	}

	target := grid.Cell{Col: dragIndex(drag.Col) - 1, Row: dragIndex(drag.Row) - 1}
	best, dist, found := target, 0.0, canPlace(occ, target, resolved)
	if !found {
		best, dist, found = spiralSearch(occ, target, resolved)
	}

	pred := DropPrediction{
		Position: PositionAt(best, resolved),
		Feasible: found,
	}
	if found {
		pred.Confidence = math.Max(0, 1-dist/SearchRadius)
	}
	if best != target {
		adjustments = append(adjustments, Adjustment{
			Kind:     AdjustPosition,
			DeltaRow: best.Row - target.Row,
			DeltaCol: best.Col - target.Col,
			Reason:   "target is occupied or out of bounds",
		})
	}
	pred.AutoAdjustments = adjustments

	for _, id := range e.ids {
		if id == o.ignore {
			continue
		}
		if grid.EuclideanDistance(e.widgets[id].Position.Anchor(), best) <= affectedDistance {
			pred.AffectedWidgets = append(pred.AffectedWidgets, id)
		}
	}
	return pred
}

// dragIndex rounds a one-based drag coordinate, clamping to at least 1.
func dragIndex(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return int(math.Min(math.Round(v), math.MaxInt32))
}

// spiralSearch looks for the feasible anchor nearest to target. It returns
// target and false when every ring up to SearchRadius is infeasible.
func spiralSearch(occ [][]bool, target grid.Cell, size Size) (grid.Cell, float64, bool) {
	for r := 0; r <= SearchRadius; r++ {
		best, bestDist := target, math.Inf(1)
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if abs(dr)+abs(dc) != r {
					continue
				}
				c := grid.Cell{Col: target.Col + dc, Row: target.Row + dr}
				if !canPlace(occ, c, size) {
					continue
				}
				if d := grid.EuclideanDistance(target, c); d < bestDist {
					best, bestDist = c, d
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			return best, bestDist, true
		}
	}
	return target, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
