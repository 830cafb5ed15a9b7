package grid

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Messages reported in Result.Errors.
const (
	ErrPixelNaN         = "Pixel coordinates contain NaN values"
	ErrPixelInfinite    = "Pixel coordinates contain infinite values"
	ErrGridNotIntegers  = "Grid coordinates must be integers"
	errGridOutOfBoundsF = "Grid coordinates out of bounds: col %d, row %d (grid is %s, valid range 0-%d)"
)

// eps absorbs floating-point drift when dividing by the pitch.
const eps = 1e-9

// ValidatePixel reports whether p is finite, non-negative, and no larger
// than the container on either axis.
func ValidatePixel(p Pixel, containerWidth, containerHeight float64) bool {
	if !finite(p.X) || !finite(p.Y) {
		return false
	}
	return p.X >= 0 && p.Y >= 0 && p.X <= containerWidth && p.Y <= containerHeight
}

// ValidateCell reports whether c lies inside a grid of the given size.
func ValidateCell(c Cell, size Size) bool {
	n := Columns(size)
	return c.Col >= 0 && c.Col < n && c.Row >= 0 && c.Row < n
}

// PixelToGrid returns the cell under p.
//
// NaN and infinite components are rejected. Points inside the outer padding
// band map to the origin cell. Points inside a gap snap to whichever
// neighbouring cell is nearer. Everything else is clamped into the grid and
// reported valid, however far outside the container it lies.
func PixelToGrid(p Pixel, cfg Config) Result[Cell] {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return invalid(Cell{}, ErrPixelNaN)
	}
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return invalid(Cell{}, ErrPixelInfinite)
	}

	x, y := p.X-cfg.Padding, p.Y-cfg.Padding
	if x < 0 || y < 0 {
		return valid(Cell{})
	}

	n := cfg.Columns()
	return valid(Cell{
		Col: clamp(axisIndex(x, cfg), 0, n-1),
		Row: clamp(axisIndex(y, cfg), 0, n-1),
	})
}

// axisIndex maps a padding-adjusted offset to a cell index along one axis.
func axisIndex(offset float64, cfg Config) int {
	pitch := cfg.Pitch()
	if pitch <= 0 {
		return 0
	}
	idx := math.Floor(offset/pitch + eps)
	if rem := offset - idx*pitch; rem > cfg.CellSize {
		// Inside the gap: take the neighbour on the pointer's side of the midpoint.
		if rem > cfg.CellSize+cfg.Gap/2 {
			idx++
		}
	}
	return int(math.Min(idx, math.MaxInt32))
}

// GridToPixel returns the top-left pixel of c.
//
// Out-of-bounds cells are reported invalid but still yield the position of
// the nearest in-bounds cell.
func GridToPixel(c Cell, cfg Config) Result[Pixel] {
	if ValidateCell(c, cfg.Size) {
		return valid(origin(c, cfg))
	}
	n := cfg.Columns()
	clamped := Cell{Col: clamp(c.Col, 0, n-1), Row: clamp(c.Row, 0, n-1)}
	msg := fmt.Sprintf(errGridOutOfBoundsF, c.Col, c.Row, sizeLabel(n), n-1)
	return invalid(origin(clamped, cfg), msg)
}

// GridToPixelFloat is GridToPixel for callers holding untyped numbers, such
// as decoded JSON. Non-integer components are rejected with coordinates
// {0, 0}.
func GridToPixelFloat(col, row float64, cfg Config) Result[Pixel] {
	if !isInteger(col) || !isInteger(row) {
		return invalid(Pixel{}, ErrGridNotIntegers)
	}
	return GridToPixel(Cell{Col: int(col), Row: int(row)}, cfg)
}

// NearestCell returns the cell whose centre is closest to p. It has no
// error channel: the result is always inside the grid.
func NearestCell(p Pixel, cfg Config) Cell {
	x := math.Max(0, p.X-cfg.Padding)
	y := math.Max(0, p.Y-cfg.Padding)
	n := cfg.Columns()
	return Cell{
		Col: clamp(nearestIndex(x, cfg), 0, n-1),
		Row: clamp(nearestIndex(y, cfg), 0, n-1),
	}
}

func nearestIndex(offset float64, cfg Config) int {
	pitch := cfg.Pitch()
	if pitch <= 0 || math.IsNaN(offset) {
		return 0
	}
	return int(math.Min(math.Round((offset-cfg.CellSize/2)/pitch), math.MaxInt32))
}

// CellCenter returns the centre pixel of c. The cell is not validated.
func CellCenter(c Cell, cfg Config) Pixel {
	o := origin(c, cfg)
	return Pixel{X: o.X + cfg.CellSize/2, Y: o.Y + cfg.CellSize/2}
}

// CellRect returns the pixel rectangle covered by c, excluding gaps.
func CellRect(c Cell, cfg Config) r2.Rect {
	o := origin(c, cfg)
	return r2.Rect{
		X: r1.Interval{Lo: o.X, Hi: o.X + cfg.CellSize},
		Y: r1.Interval{Lo: o.Y, Hi: o.Y + cfg.CellSize},
	}
}

// PixelInCell reports whether p lies inside c, edges included. It is false
// for cells outside the grid.
func PixelInCell(p Pixel, c Cell, cfg Config) bool {
	if !GridToPixel(c, cfg).Valid {
		return false
	}
	return CellRect(c, cfg).ContainsPoint(r2.Point{X: p.X, Y: p.Y})
}

func origin(c Cell, cfg Config) Pixel {
	pitch := cfg.Pitch()
	return Pixel{
		X: cfg.Padding + float64(c.Col)*pitch,
		Y: cfg.Padding + float64(c.Row)*pitch,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isInteger(v float64) bool {
	return finite(v) && v == math.Trunc(v)
}

func sizeLabel(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}
