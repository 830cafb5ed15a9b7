// Package grid converts between pixel space and cell space on a uniform
// square widget grid.
//
// A grid is described by a [Config]: a fixed cell edge length, a fixed gap
// between adjacent cells, outer padding before the first cell, and a [Size]
// that determines the column count (rows equal columns). The distance from
// the start of one cell to the start of the next is the pitch,
// CellSize + Gap.
//
// # Coordinate Spaces
//
//   - [Pixel]: a point in the rendered container, in logical pixels
//   - [Cell]: zero-based column/row indices into the grid
//   - [Bounds]: an inclusive rectangular span of cells
//
// # Transforms
//
// Every transform returns a [Result] carrying its best-effort answer, a
// validity flag, and human-readable messages. Nothing in this package panics
// or returns an error value; questionable input is clamped and flagged:
//
//	cfg := grid.DefaultConfig()
//	res := grid.PixelToGrid(grid.Pixel{X: 182, Y: 16}, cfg)
//	if !res.Valid {
//	    // res.Errors explains why
//	}
//	fmt.Println(res.Coordinates) // {1 0}
//
// For every in-bounds cell the transforms round-trip exactly:
//
//	grid.PixelToGrid(grid.GridToPixel(c, cfg).Coordinates, cfg).Coordinates == c
//
// # Snapping
//
// [SnapPoints] enumerates every cell origin, and [NearestSnapPoint] finds the
// closest one within a pixel threshold. [NearestCell] rounds to the cell
// whose centre is nearest without any threshold.
package grid
