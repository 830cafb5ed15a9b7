package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/layout"
	"github.com/matzehuels/gridplace/pkg/observability"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// contextFlags holds the flags that describe a widget to place.
type contextFlags struct {
	widgetType string
	width      int
	height     int
	prefer     string
	related    []string
	importance string
	accessible bool
}

func (f *contextFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.widgetType, "type", "t", "", "widget type (e.g. chart, metric, table)")
	cmd.Flags().IntVar(&f.width, "width", 1, "widget width in cells")
	cmd.Flags().IntVar(&f.height, "height", 1, "widget height in cells")
	cmd.Flags().StringVar(&f.prefer, "prefer", "", "preferred region: top, bottom, left, right, center")
	cmd.Flags().StringSliceVar(&f.related, "related", nil, "ids of widgets to stay close to")
	cmd.Flags().StringVar(&f.importance, "importance", string(placement.ImportanceMedium), "importance: low, medium, high")
	cmd.Flags().BoolVar(&f.accessible, "accessible", false, "favour easy-to-reach positions")
}

func (f *contextFlags) context() (placement.Context, error) {
	dir := placement.Direction(strings.ToLower(f.prefer))
	if !dir.Valid() {
		return placement.Context{}, errs.New(errs.ErrCodeInvalidInput, "unknown --prefer %q", f.prefer)
	}
	imp := placement.Importance(strings.ToLower(f.importance))
	switch imp {
	case placement.ImportanceLow, placement.ImportanceMedium, placement.ImportanceHigh:
	default:
		return placement.Context{}, errs.New(errs.ErrCodeInvalidInput, "unknown --importance %q", f.importance)
	}
	if f.width < 1 || f.height < 1 {
		return placement.Context{}, errs.New(errs.ErrCodeInvalidInput, "--width and --height must be at least 1")
	}
	return placement.Context{
		WidgetType:     f.widgetType,
		PreferredSize:  placement.Size{Width: f.width, Height: f.height},
		Preference:     dir,
		RelatedWidgets: f.related,
		Importance:     imp,
		Accessibility:  f.accessible,
	}, nil
}

// =============================================================================
// suggest
// =============================================================================

func (c *CLI) suggestCommand() *cobra.Command {
	var (
		flags contextFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank the best positions for a new widget",
		Long: `Rank the best positions for a new widget.

Every free position on the grid is scored on desirability, preference match,
accessibility, proximity to related widgets and overall balance. Scores are
0-100; conflicts such as crowding or landing in the scroll region cost points.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pctx, err := flags.context()
			if err != nil {
				return err
			}
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			suggestions := e.GenerateSuggestions(pctx, limit)
			prog.done("Scored positions", "returned", len(suggestions))
			observability.Engine().OnSuggest(cmd.Context(), pctx.WidgetType, len(suggestions), prog.elapsed())

			if c.opts.json {
				if suggestions == nil {
					suggestions = []placement.Suggestion{}
				}
				return c.printJSON(suggestions)
			}
			if len(suggestions) == 0 {
				c.printWarning("No room for a %dx%d widget", pctx.PreferredSize.Width, pctx.PreferredSize.Height)
				return nil
			}
			for i, s := range suggestions {
				c.printSuggestion(i+1, s)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&limit, "max", "n", placement.DefaultMaxSuggestions, "maximum number of suggestions")
	return cmd
}

func (c *CLI) printSuggestion(rank int, s placement.Suggestion) {
	c.printInfo("%d. %s  score %s", rank, formatPosition(s.Position), StyleNumber.Render(formatScore(s.Score)))
	for _, r := range s.Reasons {
		c.printDetail("+ %s", r)
	}
	for _, cf := range s.Conflicts {
		c.printDetail("- %s", cf)
	}
	if len(s.Alternatives) > 0 {
		alts := make([]string, len(s.Alternatives))
		for i, a := range s.Alternatives {
			alts[i] = formatCell(a)
		}
		c.printDetail("alternatives: %s", strings.Join(alts, ", "))
	}
}

// =============================================================================
// predict
// =============================================================================

func (c *CLI) predictCommand() *cobra.Command {
	var (
		width, height int
		ignore        string
	)

	cmd := &cobra.Command{
		Use:   "predict ROW COL",
		Short: "Predict where a widget dropped at ROW, COL will land",
		Long: `Predict where a widget dropped at ROW, COL will land.

ROW and COL are one-based and may be fractional; they are rounded to the
nearest cell. If the target is blocked the nearest free position is chosen
and confidence drops with the distance moved.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parsePair(args)
			if err != nil {
				return err
			}
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}

			var opts []placement.DropOption
			if ignore != "" {
				opts = append(opts, placement.IgnoreWidget(ignore))
			}

			prog := newProgress(c.Logger)
			pred := e.PredictDrop(placement.DragPoint{Row: row, Col: col}, placement.Size{Width: width, Height: height}, opts...)
			prog.done("Predicted drop", "feasible", pred.Feasible)
			observability.Engine().OnPredict(cmd.Context(), pred.Feasible, pred.Confidence, prog.elapsed())

			if c.opts.json {
				return c.printJSON(pred)
			}
			c.printPrediction(pred)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1, "widget width in cells")
	cmd.Flags().IntVar(&height, "height", 1, "widget height in cells")
	cmd.Flags().StringVar(&ignore, "ignore", "", "id of the widget being dragged (ignored for collisions)")
	return cmd
}

func (c *CLI) printPrediction(pred placement.DropPrediction) {
	if pred.Feasible {
		c.printSuccess("Lands at %s", formatPosition(pred.Position))
	} else {
		c.printError("No free position near %s", formatPosition(pred.Position))
	}
	c.printKeyValue("confidence", fmt.Sprintf("%.2f", pred.Confidence))
	for _, a := range pred.AutoAdjustments {
		switch a.Kind {
		case placement.AdjustSize:
			c.printDetail("resized %dx%d to %dx%d: %s", a.From.Width, a.From.Height, a.To.Width, a.To.Height, a.Reason)
		default:
			c.printDetail("moved by %+d rows, %+d cols: %s", a.DeltaRow, a.DeltaCol, a.Reason)
		}
	}
	if len(pred.AffectedWidgets) > 0 {
		c.printKeyValue("affected", strings.Join(pred.AffectedWidgets, ", "))
	}
}

// =============================================================================
// place
// =============================================================================

func (c *CLI) placeCommand() *cobra.Command {
	var (
		flags contextFlags
		id    string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Add a widget at its best suggested position",
		Long: `Add a widget at its best suggested position.

The placement is recorded in the widget's history so later suggestions favour
the area. With --write the updated layout is saved back to --layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pctx, err := flags.context()
			if err != nil {
				return err
			}
			if write && c.opts.layoutPath == "" {
				return errs.New(errs.ErrCodeInvalidInput, "--write requires --layout")
			}
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}

			best := e.GenerateSuggestions(pctx, 1)
			if len(best) == 0 {
				return errs.New(errs.ErrCodeInvalidLayout, "no room for a %dx%d widget", pctx.PreferredSize.Width, pctx.PreferredSize.Height)
			}

			entry := []placement.Widget{{ID: id, Type: pctx.WidgetType, Position: best[0].Position}}
			layout.NormalizeWidgets(entry)
			w := entry[0]
			if _, exists := e.Widget(w.ID); exists {
				return errs.New(errs.ErrCodeInvalidInput, "widget %q already exists", w.ID)
			}

			widgets := e.Widgets()
			widgets[w.ID] = w
			e.UpdateWidgets(widgets)
			e.AddToPlacementHistory(w.ID, w.Position)
			c.Logger.Debug("placed widget", "id", w.ID, "score", best[0].Score)

			if c.opts.json && !write {
				return c.printJSON(w)
			}
			c.printSuccess("Placed %s at %s", StyleValue.Render(w.ID), formatPosition(w.Position))
			c.printKeyValue("score", formatScore(best[0].Score))

			if !write {
				return nil
			}
			if err := layout.Write(layout.FromEngine(e), c.opts.layoutPath); err != nil {
				return err
			}
			c.printFile(c.opts.layoutPath)
			c.printNewline()
			c.printNextStep("Check balance", "gridplace stability --layout "+c.opts.layoutPath)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&id, "id", "", "widget id (default: random UUID)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the updated layout to --layout")
	return cmd
}

// =============================================================================
// stability
// =============================================================================

func (c *CLI) stabilityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stability",
		Short: "Score how well the current widgets are placed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}
			report := e.AnalyzeStability()
			if c.opts.json {
				return c.printJSON(report)
			}

			score := formatScore(report.OverallStability)
			if len(report.ProblematicWidgets) == 0 {
				c.printSuccess("Layout stability %s", StyleNumber.Render(score))
			} else {
				c.printWarning("Layout stability %s", score)
				c.printKeyValue("problematic", strings.Join(report.ProblematicWidgets, ", "))
			}
			for _, r := range report.Recommendations {
				c.printDetail("%s", r)
			}
			return nil
		},
	}
}

// formatPosition renders a one-based position as "row R, col C (WxH)".
func formatPosition(p placement.Position) string {
	return fmt.Sprintf("row %d, col %d (%dx%d)", p.RowStart, p.ColStart, p.Width, p.Height)
}

func formatCell(p placement.Position) string {
	return fmt.Sprintf("%d:%d", p.RowStart, p.ColStart)
}
