package grid

import (
	"fmt"
	"math"

	errs "github.com/matzehuels/gridplace/pkg/errors"
)

// Size selects one of the supported square grid dimensions.
type Size string

// Supported grid sizes.
const (
	Size2x2 Size = "2x2"
	Size3x3 Size = "3x3"
	Size4x4 Size = "4x4"
	Size5x5 Size = "5x5"
)

// defaultColumns is used for unrecognized sizes.
const defaultColumns = 3

var columnsBySize = map[Size]int{
	Size2x2: 2,
	Size3x3: 3,
	Size4x4: 4,
	Size5x5: 5,
}

// Columns returns the column count for size. Unknown sizes fall back to 3.
// Grids are square, so this is also the row count.
func Columns(size Size) int {
	if n, ok := columnsBySize[size]; ok {
		return n
	}
	return defaultColumns
}

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	_, ok := columnsBySize[s]
	return ok
}

// Sizes returns the supported sizes in ascending order.
func Sizes() []Size {
	return []Size{Size2x2, Size3x3, Size4x4, Size5x5}
}

// Config describes a uniform square grid. The zero value is not useful;
// start from [DefaultConfig].
type Config struct {
	CellSize float64 `json:"cellSize" toml:"cell_size"`
	Gap      float64 `json:"gap" toml:"gap"`
	Padding  float64 `json:"padding" toml:"padding"`
	Size     Size    `json:"gridSize" toml:"grid_size"`
}

// DefaultConfig returns the dashboard's stock grid: 150px cells with 16px
// gaps and padding on a 3x3 grid.
func DefaultConfig() Config {
	return Config{CellSize: 150, Gap: 16, Padding: 16, Size: Size3x3}
}

// Pitch returns CellSize + Gap.
func (c Config) Pitch() float64 { return c.CellSize + c.Gap }

// Columns returns the column (and row) count for the configured size.
func (c Config) Columns() int { return Columns(c.Size) }

// Validate checks that the configuration describes a drawable grid.
// The transform functions do not require a validated config.
func (c Config) Validate() error {
	var msgs []string
	if !finite(c.CellSize) || c.CellSize <= 0 {
		msgs = append(msgs, "cell size must be a positive number")
	}
	if !finite(c.Gap) || c.Gap < 0 {
		msgs = append(msgs, "gap must be a non-negative number")
	}
	if !finite(c.Padding) || c.Padding < 0 {
		msgs = append(msgs, "padding must be a non-negative number")
	}
	if !c.Size.Valid() {
		msgs = append(msgs, fmt.Sprintf("grid size must be one of 2x2, 3x3, 4x4, 5x5, got %q", c.Size))
	}
	return errs.Join(errs.ErrCodeInvalidConfig, msgs)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
