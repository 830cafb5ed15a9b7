package grid

import "fmt"

// Pixel is a point in container space, in logical pixels.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Pixel) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Cell is a zero-based column/row index into the grid.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Cell) String() string { return fmt.Sprintf("col %d, row %d", c.Col, c.Row) }

// Bounds is an inclusive rectangular span of cells.
type Bounds struct {
	MinCol int `json:"minCol"`
	MaxCol int `json:"maxCol"`
	MinRow int `json:"minRow"`
	MaxRow int `json:"maxRow"`
}

// Width returns the number of columns spanned.
func (b Bounds) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the number of rows spanned.
func (b Bounds) Height() int { return b.MaxRow - b.MinRow + 1 }

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Cell) bool {
	return c.Col >= b.MinCol && c.Col <= b.MaxCol && c.Row >= b.MinRow && c.Row <= b.MaxRow
}

// Result is the outcome of a transform: the best-effort coordinates, whether
// the input was valid, and messages describing any problems.
// Callers must check Valid rather than assume success.
type Result[T any] struct {
	Coordinates T        `json:"coordinates"`
	Valid       bool     `json:"isValid"`
	Errors      []string `json:"errors,omitempty"`
}

func valid[T any](c T) Result[T] {
	return Result[T]{Coordinates: c, Valid: true}
}

func invalid[T any](c T, msgs ...string) Result[T] {
	return Result[T]{Coordinates: c, Valid: false, Errors: msgs}
}
