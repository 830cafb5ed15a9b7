package placement

// Size is a widget footprint in cells.
type Size struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// Area returns Width * Height.
func (s Size) Area() int { return s.Width * s.Height }

// orUnit replaces non-positive dimensions with 1.
func (s Size) orUnit() Size {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s
}

// Position is a widget's placement using one-based, half-open spans.
type Position struct {
	RowStart int `json:"gridRowStart" toml:"row_start"`
	RowEnd   int `json:"gridRowEnd" toml:"row_end"`
	ColStart int `json:"gridColumnStart" toml:"col_start"`
	ColEnd   int `json:"gridColumnEnd" toml:"col_end"`
	Width    int `json:"width" toml:"width"`
	Height   int `json:"height" toml:"height"`
}

// Widget is a placed dashboard widget. The engine reads widgets but never
// modifies them.
type Widget struct {
	ID       string   `json:"id" toml:"id"`
	Type     string   `json:"type" toml:"type"`
	Position Position `json:"position" toml:"position"`
}

// Direction is a placement preference.
type Direction string

// Supported directions. The empty direction expresses no preference.
const (
	DirectionNone   Direction = ""
	DirectionTop    Direction = "top"
	DirectionCenter Direction = "center"
	DirectionBottom Direction = "bottom"
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionNone, DirectionTop, DirectionCenter, DirectionBottom, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Importance tags how prominent a new widget should be.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Context describes the widget a caller wants to place.
type Context struct {
	WidgetType     string     `json:"widgetType"`
	PreferredSize  Size       `json:"preferredSize"`
	Preference     Direction  `json:"userPreference,omitempty"`
	RelatedWidgets []string   `json:"relatedWidgets,omitempty"`
	Importance     Importance `json:"importance,omitempty"`
	Accessibility  bool       `json:"accessibility,omitempty"`
}

// Suggestion is one ranked candidate placement.
type Suggestion struct {
	Position     Position   `json:"position"`
	Score        float64    `json:"score"`
	Reasons      []string   `json:"reasons,omitempty"`
	Conflicts    []string   `json:"conflicts,omitempty"`
	Alternatives []Position `json:"alternatives,omitempty"`
}

// DragPoint is a raw drag target in one-based grid units. Fractional values
// are rounded.
type DragPoint struct {
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// AdjustmentKind identifies what a drop prediction changed.
type AdjustmentKind string

const (
	AdjustSize     AdjustmentKind = "size"
	AdjustPosition AdjustmentKind = "position"
)

// Adjustment records a change made while resolving a drop. From and To are
// set for size adjustments, DeltaRow and DeltaCol for position adjustments.
type Adjustment struct {
	Kind     AdjustmentKind `json:"type"`
	From     Size           `json:"from,omitzero"`
	To       Size           `json:"to,omitzero"`
	DeltaRow int            `json:"deltaRow,omitempty"`
	DeltaCol int            `json:"deltaCol,omitempty"`
	Reason   string         `json:"reason"`
}

// DropPrediction is the resolved target of a drag.
//
// Feasible is false when the search found no free anchor; Position is then
// the unresolved target and Confidence is zero.
type DropPrediction struct {
	Position        Position     `json:"position"`
	Confidence      float64      `json:"confidence"`
	Feasible        bool         `json:"feasible"`
	AutoAdjustments []Adjustment `json:"autoAdjustments,omitempty"`
	AffectedWidgets []string     `json:"affectedWidgets,omitempty"`
}

// StabilityReport summarizes how well the current layout scores.
type StabilityReport struct {
	OverallStability   float64  `json:"overallStability"`
	ProblematicWidgets []string `json:"problematicWidgets"`
	Recommendations    []string `json:"recommendations"`
}
