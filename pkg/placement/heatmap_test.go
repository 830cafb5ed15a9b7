package placement

import (
	"testing"

	"github.com/matzehuels/gridplace/pkg/grid"
)

func TestHeatMapRange(t *testing.T) {
	e := New(grid.DefaultConfig(), widgetMap(
		widgetAt("a", "chart", 0, 0, 1, 1),
		widgetAt("b", "chart", 1, 0, 1, 1),
	))
	for i := 0; i < 20; i++ {
		e.AddToPlacementHistory("a", PositionAt(grid.Cell{}, Size{1, 1}))
	}

	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Columns(); c++ {
			if h := e.Heat(grid.Cell{Col: c, Row: r}); h < 0 || h > 100 {
				t.Fatalf("Heat(%d,%d) = %v, outside [0,100]", c, r, h)
			}
		}
	}
}

func TestHeatMapPositionalBias(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)

	topLeft := e.Heat(grid.Cell{Col: 0, Row: 0})
	topRight := e.Heat(grid.Cell{Col: 2, Row: 0})
	bottom := e.Heat(grid.Cell{Col: 0, Row: 40})

	if topLeft != 70 {
		t.Errorf("Heat(top-left) = %v, want 70", topLeft)
	}
	if topRight >= topLeft {
		t.Errorf("right column (%v) should score below left (%v)", topRight, topLeft)
	}
	if bottom >= topLeft {
		t.Errorf("scroll region (%v) should score below top (%v)", bottom, topLeft)
	}
	if got := e.Heat(grid.Cell{Col: 0, Row: 500}); got != 0 {
		t.Errorf("Heat outside map = %v, want 0", got)
	}
}

func TestHeatMapHistoryLayer(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	c := grid.Cell{Col: 1, Row: 30}
	before := e.Heat(c)

	e.AddToPlacementHistory("a", PositionAt(c, Size{1, 1}))

	if after := e.Heat(c); after != before+historyBonus {
		t.Errorf("Heat after history = %v, want %v", after, before+historyBonus)
	}
	far := grid.Cell{Col: 1, Row: 40}
	if e.Heat(far) != New(grid.DefaultConfig(), nil).Heat(far) {
		t.Error("history should not affect distant cells")
	}
}

func TestHeatMapTypeAffinity(t *testing.T) {
	plain := New(grid.DefaultConfig(), widgetMap(
		widgetAt("a", "chart", 0, 20, 1, 1),
		widgetAt("b", "table", 2, 20, 1, 1),
	))
	paired := New(grid.DefaultConfig(), widgetMap(
		widgetAt("a", "chart", 0, 20, 1, 1),
		widgetAt("b", "chart", 2, 20, 1, 1),
	))

	centroid := grid.Cell{Col: 1, Row: 20}
	if got, want := paired.Heat(centroid), plain.Heat(centroid)+typeBonus; got != want {
		t.Errorf("Heat(centroid) = %v, want %v", got, want)
	}
}
