package placement

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridplace/pkg/grid"
)

func TestGenerateSuggestionsFeasible(t *testing.T) {
	layouts := map[string]map[string]Widget{
		"empty": nil,
		"one widget": widgetMap(widgetAt("a", "chart", 0, 0, 2, 2)),
		"crowded": widgetMap(
			widgetAt("a", "chart", 0, 0, 3, 1),
			widgetAt("b", "table", 0, 1, 1, 2),
			widgetAt("c", "chart", 2, 1, 1, 3),
			widgetAt("d", "notes", 1, 4, 2, 2),
		),
	}
	sizes := []Size{{1, 1}, {2, 1}, {2, 2}, {3, 2}}

	for name, widgets := range layouts {
		for _, size := range sizes {
			e := New(grid.DefaultConfig(), widgets)
			got := e.GenerateSuggestions(Context{WidgetType: "chart", PreferredSize: size}, 10)
			if len(got) == 0 {
				t.Fatalf("%s/%v: no suggestions", name, size)
			}
			for _, s := range got {
				if !e.CanPlace(s.Position) || overlapsAny(e, s.Position) {
					t.Errorf("%s/%v: infeasible suggestion %+v", name, size, s.Position)
				}
				if s.Position.Size() != size {
					t.Errorf("%s/%v: suggestion size %v", name, size, s.Position.Size())
				}
				if s.Score < 0 || s.Score > 100 {
					t.Errorf("%s/%v: score %v outside [0,100]", name, size, s.Score)
				}
				if len(s.Alternatives) > maxAlternatives {
					t.Errorf("%s/%v: %d alternatives", name, size, len(s.Alternatives))
				}
				for _, alt := range s.Alternatives {
					if !e.CanPlace(alt) {
						t.Errorf("%s/%v: infeasible alternative %+v", name, size, alt)
					}
					if d := grid.ManhattanDistance(alt.Anchor(), s.Position.Anchor()); d < 1 || d > 2 {
						t.Errorf("%s/%v: alternative %+v is not adjacent", name, size, alt)
					}
				}
			}
			if !slices.IsSortedFunc(got, func(a, b Suggestion) int {
				switch {
				case a.Score > b.Score:
					return -1
				case a.Score < b.Score:
					return 1
				}
				return 0
			}) {
				t.Errorf("%s/%v: suggestions not sorted by descending score", name, size)
			}
		}
	}
}

func TestGenerateSuggestionsLimit(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	ctx := Context{PreferredSize: Size{1, 1}}

	if got := len(e.GenerateSuggestions(ctx, 0)); got != DefaultMaxSuggestions {
		t.Errorf("len = %d, want default %d", got, DefaultMaxSuggestions)
	}
	if got := len(e.GenerateSuggestions(ctx, 2)); got != 2 {
		t.Errorf("len = %d, want 2", got)
	}
}

func TestGenerateSuggestionsNoFit(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	if got := e.GenerateSuggestions(Context{PreferredSize: Size{4, 1}}, 5); len(got) != 0 {
		t.Errorf("4-wide widget on 3x3 grid: got %d suggestions, want 0", len(got))
	}

	full := New(grid.DefaultConfig(), widgetMap(widgetAt("a", "chart", 0, 0, 3, 2)), WithRows(2))
	if got := full.GenerateSuggestions(Context{PreferredSize: Size{1, 1}}, 5); len(got) != 0 {
		t.Errorf("full grid: got %d suggestions, want 0", len(got))
	}
}

func TestGenerateSuggestionsTopPreference(t *testing.T) {
	e := New(grid.DefaultConfig(), nil)
	got := e.GenerateSuggestions(Context{PreferredSize: Size{1, 1}, Preference: DirectionTop}, 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	want := PositionAt(grid.Cell{Col: 1, Row: 0}, Size{1, 1})
	if diff := cmp.Diff(want, got[0].Position); diff != "" {
		t.Errorf("best position mismatch (-want +got):\n%s", diff)
	}
	if !slices.Contains(got[0].Reasons, "matches top preference") {
		t.Errorf("Reasons = %v, want top preference", got[0].Reasons)
	}
}

func TestConflicts(t *testing.T) {
	e := New(grid.DefaultConfig(), widgetMap(widgetAt("a", "chart", 0, 0, 1, 1)))

	tests := []struct {
		name string
		a    grid.Cell
		typ  string
		want []string
	}{
		{
			name: "crowded same type",
			a:    grid.Cell{Col: 1, Row: 0},
			typ:  "chart",
			want: []string{"too close to widget a", "same-type widget a nearby"},
		},
		{
			name: "same type at distance two",
			a:    grid.Cell{Col: 0, Row: 2},
			typ:  "chart",
			want: []string{"same-type widget a nearby"},
		},
		{
			name: "other type at distance two",
			a:    grid.Cell{Col: 0, Row: 2},
			typ:  "table",
		},
		{
			name: "scroll region and right edge",
			a:    grid.Cell{Col: 2, Row: 16},
			typ:  "chart",
			want: []string{"placed in scroll region", "touches right edge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.conflicts(tt.a, Size{1, 1}, tt.typ, "")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := e.conflicts(grid.Cell{}, Size{1, 1}, "chart", "a"); len(got) != 0 {
		t.Errorf("a widget should not conflict with itself: %v", got)
	}
}

func TestProximityScore(t *testing.T) {
	e := New(grid.DefaultConfig(), widgetMap(widgetAt("a", "chart", 0, 0, 1, 1)))

	tests := []struct {
		name        string
		a           grid.Cell
		related     []string
		want        float64
		wantRelated bool
	}{
		{"no related", grid.Cell{Col: 0, Row: 5}, nil, neutralScore, false},
		{"unknown related", grid.Cell{Col: 0, Row: 5}, []string{"ghost"}, neutralScore, false},
		{"near", grid.Cell{Col: 0, Row: 3}, []string{"a"}, 100, true},
		{"mid falloff", grid.Cell{Col: 0, Row: 6}, []string{"a"}, 400.0 / 7, true},
		{"far", grid.Cell{Col: 0, Row: 12}, []string{"a"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, related := e.proximityScore(tt.a, tt.related, "")
			if got != tt.want || related != tt.wantRelated {
				t.Errorf("proximityScore() = %v, %v; want %v, %v", got, related, tt.want, tt.wantRelated)
			}
		})
	}
}

func TestConflictPenaltyLowersScore(t *testing.T) {
	e := New(grid.DefaultConfig(), widgetMap(widgetAt("a", "chart", 0, 0, 1, 1)))
	a := grid.Cell{Col: 1, Row: 0}
	size := Size{1, 1}

	same := e.evaluate(a, size, Context{WidgetType: "chart"}, "")
	other := e.evaluate(a, size, Context{WidgetType: "table"}, "")

	if len(same.conflicts) != len(other.conflicts)+1 {
		t.Fatalf("conflicts = %v vs %v", same.conflicts, other.conflicts)
	}
	if diff := other.score - same.score; diff != ConflictPenalty {
		t.Errorf("score difference = %v, want %v", diff, ConflictPenalty)
	}
}
