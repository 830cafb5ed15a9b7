package placement_test

import (
	"fmt"

	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/placement"
)

func ExampleEngine_PredictDrop() {
	// A 3x3 widget covers the first three rows
	widgets := map[string]placement.Widget{
		"revenue": {
			ID:   "revenue",
			Type: "chart",
			Position: placement.Position{
				RowStart: 1, RowEnd: 4, ColStart: 1, ColEnd: 4, Width: 3, Height: 3,
			},
		},
	}
	e := placement.New(grid.DefaultConfig(), widgets)

	// Dropping a 1x1 widget on top of it snaps below
	pred := e.PredictDrop(placement.DragPoint{Row: 2, Col: 2}, placement.Size{Width: 1, Height: 1})
	fmt.Println("Row:", pred.Position.RowStart, "Col:", pred.Position.ColStart)
	fmt.Println("Confidence:", pred.Confidence)
	// Output:
	// Row: 4 Col: 2
	// Confidence: 0.8
}

func ExampleEngine_GenerateSuggestions() {
	e := placement.New(grid.DefaultConfig(), nil)

	ctx := placement.Context{
		WidgetType:    "calendar",
		PreferredSize: placement.Size{Width: 1, Height: 1},
		Preference:    placement.DirectionTop,
	}
	best := e.GenerateSuggestions(ctx, 1)[0]
	fmt.Println("Row:", best.Position.RowStart, "Col:", best.Position.ColStart)
	// Output:
	// Row: 1 Col: 2
}
