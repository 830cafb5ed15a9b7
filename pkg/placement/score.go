package placement

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/gridplace/pkg/grid"
)

// Scoring weights. They sum to 1.
const (
	WeightHeat          = 0.30
	WeightPreference    = 0.20
	WeightAccessibility = 0.15
	WeightProximity     = 0.20
	WeightBalance       = 0.15
)

// ConflictPenalty is subtracted from a score for every detected conflict.
const ConflictPenalty = 10.0

const (
	crowdingDistance = 2.0
	sameTypeDistance = 3.0
	proximityNear    = 3.0
	proximityFar     = 10.0
	neutralScore     = 50.0
	strongFactor     = 70.0
	largeFootprint   = 4
)

// evaluation is the scored outcome for one candidate footprint.
type evaluation struct {
	score     float64
	reasons   []string
	conflicts []string
}

// evaluate scores a size footprint anchored at a. The widget named self, if
// any, is left out of the crowding, proximity and balance factors so a
// widget can be scored in place.
func (e *Engine) evaluate(a grid.Cell, size Size, ctx Context, self string) evaluation {
	b := grid.WidgetBounds(a, size.Width, size.Height)

	heat := 0.0
	if vals := e.footprintHeat(b); len(vals) > 0 {
		heat = stat.Mean(vals, nil)
	}
	pref := e.preferenceScore(a, size, ctx.Preference)
	access := e.accessibilityScore(a, size, ctx.Accessibility)
	prox, hasRelated := e.proximityScore(a, ctx.RelatedWidgets, self)
	bal := e.balanceScore(b, self)

	var ev evaluation
	if heat >= strongFactor {
		ev.reasons = append(ev.reasons, "high placement desirability")
	}
	if ctx.Preference != DirectionNone && pref >= strongFactor {
		ev.reasons = append(ev.reasons, fmt.Sprintf("matches %s preference", ctx.Preference))
	}
	if access >= strongFactor {
		ev.reasons = append(ev.reasons, "accessible position")
	}
	if hasRelated && prox >= strongFactor {
		ev.reasons = append(ev.reasons, "close to related widgets")
	}
	if bal >= strongFactor {
		ev.reasons = append(ev.reasons, "keeps layout balanced")
	}

	ev.conflicts = e.conflicts(a, size, ctx.WidgetType, self)

	weighted := WeightHeat*heat +
		WeightPreference*pref +
		WeightAccessibility*access +
		WeightProximity*prox +
		WeightBalance*bal
	ev.score = clampScore(weighted - ConflictPenalty*float64(len(ev.conflicts)))
	return ev
}

// topFactor is 1 on the first row and falls to 0 at the scroll region.
func topFactor(row int) float64 {
	return 1 - float64(min(max(row, 0), ScrollRegionRow))/ScrollRegionRow
}

// colFraction is 0 for the leftmost anchor a footprint can take and 1 for the
// rightmost. ok is false when the footprint spans every column.
func (e *Engine) colFraction(col, width int) (frac float64, ok bool) {
	span := e.Columns() - width
	if span <= 0 {
		return 0, false
	}
	return math.Min(1, float64(col)/float64(span)), true
}

func (e *Engine) preferenceScore(a grid.Cell, size Size, dir Direction) float64 {
	switch dir {
	case DirectionTop:
		return 100 * topFactor(a.Row)
	case DirectionBottom:
		return 100 * (1 - topFactor(a.Row))
	case DirectionLeft:
		if f, ok := e.colFraction(a.Col, size.Width); ok {
			return 100 * (1 - f)
		}
		return 100
	case DirectionRight:
		if f, ok := e.colFraction(a.Col, size.Width); ok {
			return 100 * f
		}
		return 100
	case DirectionCenter:
		gridMid := float64(e.Columns()-1) / 2
		mid := float64(a.Col) + float64(size.Width-1)/2
		return 100 * math.Max(0, 1-math.Abs(mid-gridMid)/math.Max(gridMid, 0.5))
	default:
		return neutralScore
	}
}

func (e *Engine) accessibilityScore(a grid.Cell, size Size, requested bool) float64 {
	if !requested {
		return 0
	}
	left := 1.0
	if f, ok := e.colFraction(a.Col, size.Width); ok {
		left = 1 - f
	}
	s := 50*topFactor(a.Row) + 25*left
	if size.Area() >= largeFootprint {
		s += 25
	}
	return s
}

// proximityScore rates how close a is to the related widgets that exist.
// hasRelated is false when none of them do, and the score is then neutral.
func (e *Engine) proximityScore(a grid.Cell, related []string, self string) (score float64, hasRelated bool) {
	var dists []float64
	for _, id := range related {
		w, ok := e.widgets[id]
		if !ok || id == self {
			continue
		}
		dists = append(dists, grid.EuclideanDistance(a, w.Position.Anchor()))
	}
	if len(dists) == 0 {
		return neutralScore, false
	}

	d := stat.Mean(dists, nil)
	switch {
	case d <= proximityNear:
		return 100, true
	case d >= proximityFar:
		return 0, true
	default:
		return 100 * (proximityFar - d) / (proximityFar - proximityNear), true
	}
}

// balanceScore rates how close the centroid of every widget plus the
// candidate sits to the centre of the occupied extent.
func (e *Engine) balanceScore(b grid.Bounds, self string) float64 {
	cols, rows := []float64{}, []float64{}
	extent := b.MaxRow + 1

	add := func(fb grid.Bounds) {
		c, r := center(fb)
		cols = append(cols, c)
		rows = append(rows, r)
	}
	add(b)
	for _, id := range e.ids {
		if id == self {
			continue
		}
		wb := e.widgets[id].Position.Bounds()
		add(wb)
		extent = max(extent, wb.MaxRow+1)
	}

	midCol := float64(e.Columns()-1) / 2
	midRow := float64(extent-1) / 2
	maxDist := math.Hypot(midCol, midRow)
	if maxDist == 0 {
		return 100
	}
	dist := math.Hypot(stat.Mean(cols, nil)-midCol, stat.Mean(rows, nil)-midRow)
	return clampScore(100 * (1 - dist/maxDist))
}

func (e *Engine) conflicts(a grid.Cell, size Size, widgetType, self string) []string {
	var out []string
	for _, id := range e.ids {
		if id == self {
			continue
		}
		w := e.widgets[id]
		d := grid.EuclideanDistance(a, w.Position.Anchor())
		if d < crowdingDistance {
			out = append(out, fmt.Sprintf("too close to widget %s", id))
		}
		if widgetType != "" && w.Type == widgetType && d < sameTypeDistance {
			out = append(out, fmt.Sprintf("same-type widget %s nearby", id))
		}
	}
	if a.Row > ScrollRegionRow {
		out = append(out, "placed in scroll region")
	}
	if a.Col+size.Width >= e.Columns() {
		out = append(out, "touches right edge")
	}
	return out
}
