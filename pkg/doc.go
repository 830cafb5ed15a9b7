// Package pkg provides the core libraries for gridplace, a coordinate and
// placement toolkit for dashboard grids.
//
// # Overview
//
// A dashboard is a uniform square grid (2x2 through 5x5 visible cells) that
// scrolls vertically. Widgets occupy rectangular spans of cells. The pkg
// directory is organized as:
//
//  1. [grid] - Pixel/cell conversion, snapping and cell distances
//  2. [placement] - Heat map, suggestion scoring, drop prediction, stability
//  3. [layout] - TOML/JSON layout documents feeding an engine
//  4. [api] - HTTP surface over one engine
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Coordinates
//
// Two conventions meet in this module:
//
//   - grid.Cell and grid.Bounds are zero-based and inclusive. All transforms
//     and the engine's internal maps use them.
//   - placement.Position is one-based and half-open (CSS grid lines), the
//     form widgets are stored and exchanged in.
//
// placement.PositionAt, Position.Anchor and Position.Bounds convert between
// them.
//
// # Quick Start
//
//	doc, _ := layout.Load("dashboard.toml")
//	engine := doc.Engine()
//
//	suggestions := engine.GenerateSuggestions(placement.Context{
//	    WidgetType:    "chart",
//	    PreferredSize: placement.Size{Width: 2, Height: 1},
//	    Preference:    placement.DirectionTop,
//	}, 3)
//
//	drop := engine.PredictDrop(placement.DragPoint{Row: 2, Col: 1}, placement.Size{Width: 2, Height: 1})
//	fmt.Println(drop.Position, drop.Confidence)
//
// # Concurrency
//
// The grid functions are pure and safe for concurrent use. A
// placement.Engine is not; callers serialize access, as the [api] server does.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/grid
// [placement]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/placement
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/layout
// [api]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridplace/pkg/buildinfo
package pkg
