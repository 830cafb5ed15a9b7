package placement

import "slices"

// AddToPlacementHistory records pos as a past position of the widget id and
// rebuilds the heat map. Only the MaxHistory most recent entries are kept.
func (e *Engine) AddToPlacementHistory(id string, pos Position) {
	h := append(e.history[id], pos)
	if n := len(h); n > MaxHistory {
		h = slices.Clone(h[n-MaxHistory:])
	}
	e.history[id] = h
	e.heat = e.buildHeatMap()
}

// History returns the recorded positions of id, oldest first.
func (e *Engine) History(id string) []Position {
	return slices.Clone(e.history[id])
}
