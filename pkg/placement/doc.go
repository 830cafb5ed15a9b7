// Package placement ranks and predicts widget positions on a dashboard grid.
//
// An [Engine] holds the current widget set for one grid and keeps three
// pieces of derived state:
//
//   - an occupancy map marking which cells are covered by some widget
//   - a heat map scoring every cell 0-100 for placement desirability
//   - a bounded per-widget history of past positions
//
// The maps are rebuilt from scratch whenever their inputs change (widgets,
// grid config, or history). There is no incremental patching, so there are no
// partial-update invariants to maintain.
//
// # Coordinates
//
// Widgets use [Position]: one-based, half-open row/column spans
// (RowEnd - RowStart == Height). The engine computes internally in the grid
// package's zero-based inclusive convention ([grid.Cell] anchors and
// [grid.Bounds] footprints). [Position.Anchor], [Position.Bounds] and
// [PositionAt] are the only crossings between the two.
//
// # Suggestions
//
// [Engine.GenerateSuggestions] enumerates every free anchor for a footprint
// and scores it as a weighted sum of five factors:
//
//	heat map average         30%
//	directional preference   20%
//	accessibility bonus      15%
//	related-widget proximity 20%
//	layout balance           15%
//
// Each detected conflict (crowding, same-type clustering, scroll region,
// right edge) costs ConflictPenalty points.
//
// # Drop Prediction
//
// [Engine.PredictDrop] snaps an in-progress drag to the nearest feasible
// anchor using a spiral search over expanding Manhattan rings, and reports a
// confidence, the adjustments it made, and which widgets are nearby.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package placement
