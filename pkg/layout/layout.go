// Package layout reads and writes layout documents: a grid configuration,
// the widgets placed on it, and optional placement history.
//
// Documents are TOML or JSON, chosen by file extension:
//
//	[grid]
//	cell_size = 150
//	gap = 16
//	padding = 16
//	grid_size = "3x3"
//
//	[[widgets]]
//	id = "revenue"
//	type = "chart"
//	position = { row_start = 1, row_end = 3, col_start = 1, col_end = 3 }
//
// Fields missing from a document keep their defaults, and widgets without an
// id are assigned a random UUID when the document is parsed.
package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// Supported document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Document is a serialized layout.
type Document struct {
	Grid    GridSection        `json:"grid" toml:"grid"`
	Widgets []placement.Widget `json:"widgets" toml:"widgets"`
	History []HistoryEntry     `json:"history,omitempty" toml:"history,omitempty"`
}

// GridSection mirrors grid.Config plus the engine's row capacity.
// Rows of zero means placement.DefaultRows.
type GridSection struct {
	CellSize float64   `json:"cellSize" toml:"cell_size"`
	Gap      float64   `json:"gap" toml:"gap"`
	Padding  float64   `json:"padding" toml:"padding"`
	Size     grid.Size `json:"gridSize" toml:"grid_size"`
	Rows     int       `json:"rows,omitempty" toml:"rows,omitempty"`
}

// HistoryEntry is one recorded past position of a widget.
type HistoryEntry struct {
	Widget   string             `json:"widget" toml:"widget"`
	Position placement.Position `json:"position" toml:"position"`
}

// New returns an empty document with the default grid.
func New() *Document {
	cfg := grid.DefaultConfig()
	return &Document{Grid: GridSection{
		CellSize: cfg.CellSize,
		Gap:      cfg.Gap,
		Padding:  cfg.Padding,
		Size:     cfg.Size,
	}}
}

// FormatFromPath returns the document format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported layout extension %q (want .toml or .json)", ext)
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "layout %s not found", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read layout %s", path)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format, normalizes widget positions,
// assigns missing ids, and validates the result.
func Parse(data []byte, format string) (*Document, error) {
	doc := New()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidLayout, err, "decode toml layout")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidLayout, err, "decode json layout")
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported layout format %q", format)
	}

	NormalizeWidgets(doc.Widgets)
	for i := range doc.History {
		doc.History[i].Position = doc.History[i].Position.Normalize()
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Marshal encodes doc in the given format.
func Marshal(doc *Document, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode toml layout")
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode json layout")
		}
		return append(data, '\n'), nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported layout format %q", format)
	}
}

// Write encodes doc to path, choosing the format from the extension.
func Write(doc *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write layout %s", path)
	}
	return nil
}

// Config returns the grid configuration described by the document.
func (d *Document) Config() grid.Config {
	return grid.Config{
		CellSize: d.Grid.CellSize,
		Gap:      d.Grid.Gap,
		Padding:  d.Grid.Padding,
		Size:     d.Grid.Size,
	}
}

// SetConfig replaces the grid section, keeping the row capacity.
func (d *Document) SetConfig(cfg grid.Config) {
	d.Grid.CellSize, d.Grid.Gap, d.Grid.Padding, d.Grid.Size = cfg.CellSize, cfg.Gap, cfg.Padding, cfg.Size
}

// WidgetMap returns the widgets keyed by id.
func (d *Document) WidgetMap() map[string]placement.Widget {
	m := make(map[string]placement.Widget, len(d.Widgets))
	for _, w := range d.Widgets {
		m[w.ID] = w
	}
	return m
}

// Engine builds a placement engine from the document and replays its
// history in order.
func (d *Document) Engine(opts ...placement.Option) *placement.Engine {
	if d.Grid.Rows > 0 {
		opts = append([]placement.Option{placement.WithRows(d.Grid.Rows)}, opts...)
	}
	e := placement.New(d.Config(), d.WidgetMap(), opts...)
	for _, h := range d.History {
		e.AddToPlacementHistory(h.Widget, h.Position)
	}
	return e
}

// Validate checks the grid section and every widget and history position.
func (d *Document) Validate() error {
	if err := d.Config().Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidLayout, err, "grid section")
	}

	var msgs []string
	if d.Grid.Rows < 0 {
		msgs = append(msgs, fmt.Sprintf("rows must not be negative, got %d", d.Grid.Rows))
	}
	msgs = append(msgs, widgetProblems(d.Widgets)...)
	for i, h := range d.History {
		if h.Widget == "" {
			msgs = append(msgs, fmt.Sprintf("history entry %d: missing widget id", i))
		}
		if err := ValidatePosition(h.Position); err != nil {
			msgs = append(msgs, fmt.Sprintf("history entry %d: %s", i, errs.UserMessage(err)))
		}
	}
	return errs.Join(errs.ErrCodeInvalidLayout, msgs)
}

// NormalizeWidgets assigns a UUID to every widget without an id and makes
// each position's Width/Height agree with its start/end fields.
func NormalizeWidgets(widgets []placement.Widget) {
	for i := range widgets {
		w := &widgets[i]
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		w.Position = w.Position.Normalize()
	}
}

// ValidateWidgets checks widget positions and rejects duplicate ids.
func ValidateWidgets(widgets []placement.Widget) error {
	return errs.Join(errs.ErrCodeInvalidLayout, widgetProblems(widgets))
}

func widgetProblems(widgets []placement.Widget) []string {
	var msgs []string
	seen := make(map[string]bool, len(widgets))
	for _, w := range widgets {
		if seen[w.ID] {
			msgs = append(msgs, fmt.Sprintf("duplicate widget id %q", w.ID))
		}
		seen[w.ID] = true
		if err := ValidatePosition(w.Position); err != nil {
			msgs = append(msgs, fmt.Sprintf("widget %q: %s", w.ID, errs.UserMessage(err)))
		}
	}
	return msgs
}

// ValidatePosition checks that pos is a non-empty one-based half-open span
// whose Width and Height agree with its ends.
func ValidatePosition(pos placement.Position) error {
	switch {
	case pos.RowStart < 1 || pos.ColStart < 1:
		return errs.New(errs.ErrCodeInvalidCoordinates, "position starts must be at least 1, got row %d col %d", pos.RowStart, pos.ColStart)
	case pos.RowEnd <= pos.RowStart || pos.ColEnd <= pos.ColStart:
		return errs.New(errs.ErrCodeInvalidCoordinates, "position ends must be greater than starts")
	case pos.Width != pos.ColEnd-pos.ColStart || pos.Height != pos.RowEnd-pos.RowStart:
		return errs.New(errs.ErrCodeInvalidCoordinates, "width/height disagree with start/end")
	}
	return nil
}

// FromEngine captures the engine's widgets and history as a document.
// Widgets are written in id order.
func FromEngine(e *placement.Engine) *Document {
	doc := New()
	doc.SetConfig(e.Config())
	if e.Rows() != placement.DefaultRows {
		doc.Grid.Rows = e.Rows()
	}
	widgets := e.Widgets()
	for _, id := range slices.Sorted(maps.Keys(widgets)) {
		doc.Widgets = append(doc.Widgets, widgets[id])
		for _, pos := range e.History(id) {
			doc.History = append(doc.History, HistoryEntry{Widget: id, Position: pos})
		}
	}
	return doc
}
