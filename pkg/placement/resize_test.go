package placement

import (
	"testing"

	"github.com/matzehuels/gridplace/pkg/grid"
)

func TestSuggestSizeAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		size      Size
		available Size
		want      Size
		wantOK    bool
	}{
		{"fits", Size{2, 2}, Size{3, 3}, Size{}, false},
		{"exact fit", Size{3, 1}, Size{3, 1}, Size{}, false},
		{"too wide", Size{4, 2}, Size{2, 2}, Size{2, 1}, true},
		{"too tall", Size{3, 3}, Size{1, 10}, Size{1, 1}, true},
		{"aspect preserved", Size{4, 4}, Size{2, 3}, Size{2, 2}, true},
		{"no room", Size{5, 1}, Size{2, 0}, Size{1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := PositionAt(grid.Cell{}, tt.size)
			got, ok := SuggestSizeAdjustment(pos, tt.available)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SuggestSizeAdjustment(%v, %v) = %v, %v; want %v, %v",
					tt.size, tt.available, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
