package placement

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/gridplace/pkg/grid"
)

// Heat map layer parameters.
const (
	heatBase         = 40.0
	heatTopBonus     = 20.0
	heatLeftBonus    = 10.0
	heatScrollCost   = 10.0
	heatRightCost    = 5.0
	historyBonus     = 15.0
	historyRadius    = 3.0
	typeBonus        = 10.0
	typeRadius       = 4.0
	minTypeClustered = 2
)

// buildHeatMap recomputes every cell from the positional, historical and
// type-affinity layers.
func (e *Engine) buildHeatMap() [][]float64 {
	cols := e.Columns()
	heat := make([][]float64, e.rows)
	for r := range heat {
		heat[r] = make([]float64, cols)
		for c := range heat[r] {
			heat[r][c] = positionalHeat(r, c, cols)
		}
	}

	for _, id := range slices.Sorted(maps.Keys(e.history)) {
		for _, pos := range e.history[id] {
			a := pos.Anchor()
			e.addRadial(heat, float64(a.Col), float64(a.Row), historyRadius, historyBonus)
		}
	}

	for _, c := range e.typeCentroids() {
		e.addRadial(heat, c[0], c[1], typeRadius, typeBonus)
	}

	for r := range heat {
		for c := range heat[r] {
			heat[r][c] = clampScore(heat[r][c])
		}
	}
	return heat
}

// positionalHeat favours the top-left and penalizes the scroll region and
// the rightmost column.
func positionalHeat(row, col, cols int) float64 {
	h := heatBase
	h += heatTopBonus * math.Max(0, 1-float64(row)/ScrollRegionRow)
	if cols > 1 {
		h += heatLeftBonus * (1 - float64(col)/float64(cols-1))
	} else {
		h += heatLeftBonus
	}
	if row > ScrollRegionRow {
		h -= heatScrollCost
	}
	if col == cols-1 && cols > 1 {
		h -= heatRightCost
	}
	return h
}

// addRadial adds bonus*(1-d/radius) to every cell closer than radius to
// (col, row).
func (e *Engine) addRadial(heat [][]float64, col, row, radius, bonus float64) {
	cols := e.Columns()
	r0 := max(0, int(math.Floor(row-radius)))
	r1 := min(e.rows-1, int(math.Ceil(row+radius)))
	c0 := max(0, int(math.Floor(col-radius)))
	c1 := min(cols-1, int(math.Ceil(col+radius)))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if d := math.Hypot(float64(c)-col, float64(r)-row); d < radius {
				heat[r][c] += bonus * (1 - d/radius)
			}
		}
	}
}

// typeCentroids returns the footprint-centre centroid of every widget type
// shared by at least two widgets, in first-seen order.
func (e *Engine) typeCentroids() [][2]float64 {
	type acc struct {
		col, row float64
		n        int
	}
	var order []string
	sums := make(map[string]*acc)
	for _, id := range e.ids {
		w := e.widgets[id]
		if w.Type == "" {
			continue
		}
		a, ok := sums[w.Type]
		if !ok {
			a = &acc{}
			sums[w.Type] = a
			order = append(order, w.Type)
		}
		col, row := center(w.Position.Bounds())
		a.col += col
		a.row += row
		a.n++
	}

	var out [][2]float64
	for _, t := range order {
		if a := sums[t]; a.n >= minTypeClustered {
			out = append(out, [2]float64{a.col / float64(a.n), a.row / float64(a.n)})
		}
	}
	return out
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// footprintHeat returns the heat of every in-map cell under b.
func (e *Engine) footprintHeat(b grid.Bounds) []float64 {
	var vals []float64
	for r := max(b.MinRow, 0); r <= min(b.MaxRow, e.rows-1); r++ {
		for c := max(b.MinCol, 0); c <= min(b.MaxCol, e.Columns()-1); c++ {
			vals = append(vals, e.heat[r][c])
		}
	}
	return vals
}
