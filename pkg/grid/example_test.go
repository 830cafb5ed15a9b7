package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridplace/pkg/grid"
)

func ExamplePixelToGrid() {
	cfg := grid.DefaultConfig() // 150px cells, 16px gap and padding, 3x3

	res := grid.PixelToGrid(grid.Pixel{X: 182, Y: 16}, cfg)
	fmt.Println("Cell:", res.Coordinates, "valid:", res.Valid)

	// Pointers far outside the grid are clamped, not rejected
	res = grid.PixelToGrid(grid.Pixel{X: 10000, Y: 10000}, cfg)
	fmt.Println("Clamped:", res.Coordinates, "valid:", res.Valid)
	// Output:
	// Cell: col 1, row 0 valid: true
	// Clamped: col 2, row 2 valid: true
}

func ExampleGridToPixel() {
	cfg := grid.DefaultConfig()

	res := grid.GridToPixel(grid.Cell{Col: 1, Row: 0}, cfg)
	fmt.Println("Origin:", res.Coordinates)

	res = grid.GridToPixel(grid.Cell{Col: 5, Row: 5}, cfg)
	fmt.Println("Fallback:", res.Coordinates, "valid:", res.Valid)
	// Output:
	// Origin: (182, 16)
	// Fallback: (348, 348) valid: false
}

func ExampleNearestSnapPoint() {
	cfg := grid.DefaultConfig()
	points := grid.SnapPoints(cfg)

	p, ok := grid.NearestSnapPoint(grid.Pixel{X: 190, Y: 25}, points, grid.DefaultSnapThreshold)
	fmt.Println(p, ok)
	// Output:
	// (182, 16) true
}
