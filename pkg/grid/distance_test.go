package grid

import "testing"

func TestDistances(t *testing.T) {
	if got := ManhattanDistance(Cell{0, 0}, Cell{1, 1}); got != 2 {
		t.Errorf("ManhattanDistance = %d, want 2", got)
	}
	if got := ManhattanDistance(Cell{4, 1}, Cell{1, 3}); got != 5 {
		t.Errorf("ManhattanDistance = %d, want 5", got)
	}
	if got := EuclideanDistance(Cell{0, 0}, Cell{3, 4}); got != 5 {
		t.Errorf("EuclideanDistance = %v, want 5", got)
	}
	if got := EuclideanDistance(Cell{2, 2}, Cell{2, 2}); got != 0 {
		t.Errorf("EuclideanDistance = %v, want 0", got)
	}
}

func TestWidgetBounds(t *testing.T) {
	b := WidgetBounds(Cell{Col: 1, Row: 2}, 2, 3)
	want := Bounds{MinCol: 1, MaxCol: 2, MinRow: 2, MaxRow: 4}
	if b != want {
		t.Errorf("WidgetBounds = %+v, want %+v", b, want)
	}
	if b.Width() != 2 || b.Height() != 3 {
		t.Errorf("Width/Height = %d/%d, want 2/3", b.Width(), b.Height())
	}
	if !b.Contains(Cell{Col: 2, Row: 4}) || b.Contains(Cell{Col: 3, Row: 4}) {
		t.Error("Contains() disagrees with inclusive bounds")
	}
}

func TestBoundsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Bounds
		want bool
	}{
		{"shared corner", Bounds{0, 1, 0, 1}, Bounds{1, 2, 1, 2}, true},
		{"disjoint", Bounds{0, 1, 0, 1}, Bounds{2, 3, 2, 3}, false},
		{"side by side", Bounds{0, 0, 0, 3}, Bounds{1, 1, 0, 3}, false},
		{"contained", Bounds{0, 4, 0, 4}, Bounds{2, 2, 2, 2}, true},
		{"stacked", Bounds{0, 2, 0, 0}, Bounds{0, 2, 1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("BoundsOverlap(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := BoundsOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("BoundsOverlap is not symmetric for %s", tt.name)
			}
		})
	}
}
