package api

import (
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridplace/pkg/buildinfo"
	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/layout"
	"github.com/matzehuels/gridplace/pkg/observability"
	"github.com/matzehuels/gridplace/pkg/placement"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// =============================================================================
// Coordinates
// =============================================================================

type gridPoint struct {
	Col float64 `json:"col"`
	Row float64 `json:"row"`
}

type snapRequest struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Threshold *float64 `json:"threshold,omitempty"`
}

type snapResponse struct {
	Point grid.Pixel `json:"point"`
	Found bool       `json:"found"`
}

func (s *Server) handlePixelToGrid(w http.ResponseWriter, r *http.Request) {
	var p grid.Pixel
	if err := decode(w, r, &p); err != nil {
		s.writeError(w, err)
		return
	}
	var res grid.Result[grid.Cell]
	s.locked(func(e *placement.Engine) { res = grid.PixelToGrid(p, e.Config()) })
	observability.Engine().OnTransform(r.Context(), "pixel", res.Valid)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGridToPixel(w http.ResponseWriter, r *http.Request) {
	var gp gridPoint
	if err := decode(w, r, &gp); err != nil {
		s.writeError(w, err)
		return
	}
	var res grid.Result[grid.Pixel]
	s.locked(func(e *placement.Engine) { res = grid.GridToPixelFloat(gp.Col, gp.Row, e.Config()) })
	observability.Engine().OnTransform(r.Context(), "grid", res.Valid)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSnap(w http.ResponseWriter, r *http.Request) {
	var req snapRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	threshold := grid.DefaultSnapThreshold
	if req.Threshold != nil {
		if *req.Threshold < 0 {
			s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "threshold must not be negative"))
			return
		}
		threshold = *req.Threshold
	}
	var cfg grid.Config
	s.locked(func(e *placement.Engine) { cfg = e.Config() })

	pt, ok := grid.NearestSnapPoint(grid.Pixel{X: req.X, Y: req.Y}, grid.SnapPoints(cfg), threshold)
	s.writeJSON(w, http.StatusOK, snapResponse{Point: pt, Found: ok})
}

// =============================================================================
// Engine state
// =============================================================================

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	var cfg grid.Config
	s.locked(func(e *placement.Engine) { cfg = e.Config() })
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg grid.Config
	if err := decode(w, r, &cfg); err != nil {
		s.writeError(w, err)
		return
	}
	if err := cfg.Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	s.locked(func(e *placement.Engine) { e.UpdateGridConfig(cfg) })
	s.logger.Info("grid config updated", "size", cfg.Size, "cell", cfg.CellSize)
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleGetWidgets(w http.ResponseWriter, r *http.Request) {
	var widgets map[string]placement.Widget
	s.locked(func(e *placement.Engine) { widgets = e.Widgets() })
	s.writeJSON(w, http.StatusOK, sortedWidgets(widgets))
}

func (s *Server) handlePutWidgets(w http.ResponseWriter, r *http.Request) {
	var list []placement.Widget
	if err := decode(w, r, &list); err != nil {
		s.writeError(w, err)
		return
	}
	layout.NormalizeWidgets(list)
	if err := layout.ValidateWidgets(list); err != nil {
		s.writeError(w, err)
		return
	}
	widgets := make(map[string]placement.Widget, len(list))
	for _, wd := range list {
		widgets[wd.ID] = wd
	}
	s.locked(func(e *placement.Engine) { e.UpdateWidgets(widgets) })
	s.logger.Info("widgets replaced", "count", len(widgets))
	s.writeJSON(w, http.StatusOK, sortedWidgets(widgets))
}

func sortedWidgets(m map[string]placement.Widget) []placement.Widget {
	out := make([]placement.Widget, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}
	return out
}

// =============================================================================
// Placement
// =============================================================================

type suggestRequest struct {
	Context placement.Context `json:"context"`
	Max     int               `json:"max,omitempty"`
}

type suggestResponse struct {
	Suggestions []placement.Suggestion `json:"suggestions"`
}

type predictRequest struct {
	Drag   placement.DragPoint `json:"drag"`
	Size   placement.Size      `json:"size"`
	Ignore string              `json:"ignore,omitempty"`
}

type historyRequest struct {
	ID       string             `json:"id"`
	Position placement.Position `json:"position"`
}

type historyResponse struct {
	ID        string               `json:"id"`
	Positions []placement.Position `json:"positions"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if !req.Context.Preference.Valid() {
		s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "unknown preference %q", req.Context.Preference))
		return
	}
	if req.Max < 0 {
		s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "max must not be negative"))
		return
	}

	start := time.Now()
	var out []placement.Suggestion
	s.locked(func(e *placement.Engine) { out = e.GenerateSuggestions(req.Context, req.Max) })
	observability.Engine().OnSuggest(r.Context(), req.Context.WidgetType, len(out), time.Since(start))

	if out == nil {
		out = []placement.Suggestion{}
	}
	s.writeJSON(w, http.StatusOK, suggestResponse{Suggestions: out})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	var opts []placement.DropOption
	if req.Ignore != "" {
		opts = append(opts, placement.IgnoreWidget(req.Ignore))
	}

	start := time.Now()
	var pred placement.DropPrediction
	s.locked(func(e *placement.Engine) { pred = e.PredictDrop(req.Drag, req.Size, opts...) })
	observability.Engine().OnPredict(r.Context(), pred.Feasible, pred.Confidence, time.Since(start))
	s.writeJSON(w, http.StatusOK, pred)
}

func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.ID == "" {
		s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "widget id is required"))
		return
	}
	pos := req.Position.Normalize()
	if err := layout.ValidatePosition(pos); err != nil {
		s.writeError(w, err)
		return
	}

	var positions []placement.Position
	s.locked(func(e *placement.Engine) {
		e.AddToPlacementHistory(req.ID, pos)
		positions = e.History(req.ID)
	})
	s.writeJSON(w, http.StatusOK, historyResponse{ID: req.ID, Positions: positions})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		positions []placement.Position
		known     bool
	)
	s.locked(func(e *placement.Engine) {
		positions = e.History(id)
		_, known = e.Widget(id)
	})
	if !known && len(positions) == 0 {
		s.writeError(w, errs.New(errs.ErrCodeWidgetNotFound, "no widget or history for %q", id))
		return
	}
	if positions == nil {
		positions = []placement.Position{}
	}
	s.writeJSON(w, http.StatusOK, historyResponse{ID: id, Positions: positions})
}

func (s *Server) handleStability(w http.ResponseWriter, r *http.Request) {
	var report placement.StabilityReport
	s.locked(func(e *placement.Engine) { report = e.AnalyzeStability() })
	s.writeJSON(w, http.StatusOK, report)
}
