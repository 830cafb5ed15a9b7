package placement

import (
	"cmp"
	"slices"

	"github.com/matzehuels/gridplace/pkg/grid"
)

const maxAlternatives = 3

// neighbours lists the 8-neighbour offsets in row-major order.
var neighbours = [...]grid.Cell{
	{Col: -1, Row: -1}, {Col: 0, Row: -1}, {Col: 1, Row: -1},
	{Col: -1, Row: 0}, {Col: 1, Row: 0},
	{Col: -1, Row: 1}, {Col: 0, Row: 1}, {Col: 1, Row: 1},
}

// GenerateSuggestions returns up to maxSuggestions placements for a new widget
// described by ctx, best first. Every returned position satisfies CanPlace.
// The result is empty when the footprint fits nowhere.
//
// The search is exhaustive over the engine's maps; call it on drag start or
// drop rather than on every pointer move.
func (e *Engine) GenerateSuggestions(ctx Context, maxSuggestions int) []Suggestion {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	size := ctx.PreferredSize.orUnit()

	var out []Suggestion
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.Columns(); col++ {
			a := grid.Cell{Col: col, Row: row}
			if !canPlace(e.occupancy, a, size) {
				continue
			}
			ev := e.evaluate(a, size, ctx, "")
			out = append(out, Suggestion{
				Position:     PositionAt(a, size),
				Score:        ev.score,
				Reasons:      ev.reasons,
				Conflicts:    ev.conflicts,
				Alternatives: e.alternatives(a, size),
			})
		}
	}

	slices.SortStableFunc(out, func(x, y Suggestion) int {
		return cmp.Compare(y.Score, x.Score)
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// alternatives returns up to three feasible anchors adjacent to a.
func (e *Engine) alternatives(a grid.Cell, size Size) []Position {
	var out []Position
	for _, off := range neighbours {
		n := grid.Cell{Col: a.Col + off.Col, Row: a.Row + off.Row}
		if canPlace(e.occupancy, n, size) {
			out = append(out, PositionAt(n, size))
			if len(out) == maxAlternatives {
				break
			}
		}
	}
	return out
}
