package placement

import (
	"maps"
	"slices"

	"github.com/matzehuels/gridplace/pkg/grid"
)

const (
	// DefaultRows is the default row capacity of the occupancy and heat maps.
	DefaultRows = 100

	// MaxHistory is the number of past positions kept per widget.
	MaxHistory = 10

	// DefaultMaxSuggestions is used when GenerateSuggestions is asked for
	// zero or fewer results.
	DefaultMaxSuggestions = 5

	// ScrollRegionRow is the last zero-based row considered above the fold.
	ScrollRegionRow = 15

	// SearchRadius bounds the spiral search in PredictDrop.
	SearchRadius = 10
)

// Engine scores and predicts placements for one grid. It is not safe for
// concurrent use.
type Engine struct {
	cfg     grid.Config
	rows    int
	widgets map[string]Widget
	ids     []string

	occupancy [][]bool
	heat      [][]float64
	history   map[string][]Position
}

// Option configures an Engine.
type Option func(*Engine)

// WithRows sets the row capacity of the engine's maps. Values below 1 are
// ignored.
func WithRows(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rows = n
		}
	}
}

// New creates an engine for cfg seeded with widgets. The map is copied.
func New(cfg grid.Config, widgets map[string]Widget, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		rows:    DefaultRows,
		history: make(map[string][]Position),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.setWidgets(widgets)
	e.rebuild()
	return e
}

// UpdateGridConfig replaces the grid configuration and rebuilds all maps.
func (e *Engine) UpdateGridConfig(cfg grid.Config) {
	e.cfg = cfg
	e.rebuild()
}

// UpdateWidgets replaces the widget set and rebuilds all maps.
func (e *Engine) UpdateWidgets(widgets map[string]Widget) {
	e.setWidgets(widgets)
	e.rebuild()
}

// Config returns the current grid configuration.
func (e *Engine) Config() grid.Config { return e.cfg }

// Rows returns the row capacity.
func (e *Engine) Rows() int { return e.rows }

// Columns returns the column count of the configured grid.
func (e *Engine) Columns() int { return e.cfg.Columns() }

// Widgets returns a copy of the current widget set.
func (e *Engine) Widgets() map[string]Widget { return maps.Clone(e.widgets) }

// Widget looks up a widget by id.
func (e *Engine) Widget(id string) (Widget, bool) {
	w, ok := e.widgets[id]
	return w, ok
}

// Occupied reports whether c is covered by a widget. Cells outside the maps
// are reported unoccupied.
func (e *Engine) Occupied(c grid.Cell) bool {
	if !e.inMap(c) {
		return false
	}
	return e.occupancy[c.Row][c.Col]
}

// Heat returns the desirability score of c, or 0 outside the maps.
func (e *Engine) Heat(c grid.Cell) float64 {
	if !e.inMap(c) {
		return 0
	}
	return e.heat[c.Row][c.Col]
}

// CanPlace reports whether pos lies inside the maps without covering an
// occupied cell.
func (e *Engine) CanPlace(pos Position) bool {
	return canPlace(e.occupancy, pos.Anchor(), pos.Size())
}

func (e *Engine) setWidgets(widgets map[string]Widget) {
	e.widgets = maps.Clone(widgets)
	if e.widgets == nil {
		e.widgets = make(map[string]Widget)
	}
	e.ids = slices.Sorted(maps.Keys(e.widgets))
}

func (e *Engine) rebuild() {
	e.occupancy = e.buildOccupancy("")
	e.heat = e.buildHeatMap()
}

func (e *Engine) inMap(c grid.Cell) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.Columns()
}
