package placement

import (
	"testing"

	"github.com/matzehuels/gridplace/pkg/grid"
)

func TestPlacementHistoryBound(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	for i := 0; i < 15; i++ {
		e.AddToPlacementHistory("w", PositionAt(grid.Cell{Col: 0, Row: i}, Size{1, 1}))
	}

	h := e.History("w")
	if len(h) != MaxHistory {
		t.Fatalf("len(History) = %d, want %d", len(h), MaxHistory)
	}
	for i, pos := range h {
		if want := i + 5 + 1; pos.RowStart != want {
			t.Errorf("History[%d].RowStart = %d, want %d", i, pos.RowStart, want)
		}
	}
}

func TestHistoryIsCopy(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	e.AddToPlacementHistory("w", PositionAt(grid.Cell{}, Size{1, 1}))

	h := e.History("w")
	h[0].RowStart = 99

	if e.History("w")[0].RowStart != 1 {
		t.Error("History() returned internal storage")
	}
	if got := e.History("missing"); len(got) != 0 {
		t.Errorf("History(missing) = %v, want empty", got)
	}
}

func TestHistoryDoesNotChangeOccupancy(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	e.AddToPlacementHistory("w", PositionAt(grid.Cell{Col: 1, Row: 1}, Size{2, 2}))

	if e.Occupied(grid.Cell{Col: 1, Row: 1}) {
		t.Error("history must only bias the heat map")
	}
}
