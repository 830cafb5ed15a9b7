package placement

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

const (
	problematicScore = 50.0
	lowStability     = 60.0
	problematicShare = 0.3
	perfectlyStable  = 100.0
)

// AnalyzeStability re-scores every widget at its current position, as if it
// were a fresh medium-importance placement, and flags the weak ones.
func (e *Engine) AnalyzeStability() StabilityReport {
	report := StabilityReport{
		ProblematicWidgets: []string{},
		Recommendations:    []string{},
	}
	if len(e.ids) == 0 {
		report.OverallStability = perfectlyStable
		return report
	}

	scores := make([]float64, 0, len(e.ids))
	for _, id := range e.ids {
		w := e.widgets[id]
		size := w.Position.Size().orUnit()
		ctx := Context{WidgetType: w.Type, PreferredSize: size, Importance: ImportanceMedium}
		ev := e.evaluate(w.Position.Anchor(), size, ctx, id)
		scores = append(scores, ev.score)
		if ev.score < problematicScore {
			report.ProblematicWidgets = append(report.ProblematicWidgets, id)
		}
	}
	report.OverallStability = stat.Mean(scores, nil)

	if report.OverallStability < lowStability {
		report.Recommendations = append(report.Recommendations, fmt.Sprintf(
			"overall stability is %.0f; move widgets toward the top-left and out of the scroll region",
			report.OverallStability))
	}
	flagged := len(report.ProblematicWidgets)
	if float64(flagged) > problematicShare*float64(len(e.ids)) {
		report.Recommendations = append(report.Recommendations, fmt.Sprintf(
			"%d of %d widgets are poorly placed (%s); consider repositioning them",
			flagged, len(e.ids), strings.Join(report.ProblematicWidgets, ", ")))
	}
	return report
}
