package placement

import "github.com/matzehuels/gridplace/pkg/grid"

// PositionAt converts a zero-based anchor and a size to a Position.
func PositionAt(anchor grid.Cell, size Size) Position {
	return Position{
		RowStart: anchor.Row + 1,
		RowEnd:   anchor.Row + 1 + size.Height,
		ColStart: anchor.Col + 1,
		ColEnd:   anchor.Col + 1 + size.Width,
		Width:    size.Width,
		Height:   size.Height,
	}
}

// Anchor returns the zero-based top-left cell.
func (p Position) Anchor() grid.Cell {
	return grid.Cell{Col: p.ColStart - 1, Row: p.RowStart - 1}
}

// Bounds returns the zero-based inclusive footprint.
func (p Position) Bounds() grid.Bounds {
	return grid.Bounds{
		MinCol: p.ColStart - 1,
		MaxCol: p.ColEnd - 2,
		MinRow: p.RowStart - 1,
		MaxRow: p.RowEnd - 2,
	}
}

// Size returns the span measured from the start/end fields.
func (p Position) Size() Size {
	return Size{Width: p.ColEnd - p.ColStart, Height: p.RowEnd - p.RowStart}
}

// Normalize makes the start/end fields and Width/Height agree. Ends win when
// present; otherwise they are derived from Width/Height.
func (p Position) Normalize() Position {
	if p.ColEnd <= p.ColStart && p.Width > 0 {
		p.ColEnd = p.ColStart + p.Width
	}
	if p.RowEnd <= p.RowStart && p.Height > 0 {
		p.RowEnd = p.RowStart + p.Height
	}
	p.Width = p.ColEnd - p.ColStart
	p.Height = p.RowEnd - p.RowStart
	return p
}

// center returns the zero-based centre of b in fractional cells.
func center(b grid.Bounds) (col, row float64) {
	return float64(b.MinCol+b.MaxCol) / 2, float64(b.MinRow+b.MaxRow) / 2
}
