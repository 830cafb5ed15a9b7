// Package cli implements the gridplace command-line interface.
//
// Commands operate on a layout document (--layout, TOML or JSON) or, when
// none is given, on an empty default grid. Grid flags override whatever the
// document specifies.
//
// # Commands
//
//   - transform, snap: coordinate conversion between pixels and cells
//   - suggest, predict, place: placement suggestions and drop prediction
//   - stability, heatmap: layout diagnostics
//   - drag: interactive drop preview in the terminal
//   - serve: the HTTP API over the loaded layout
package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplace/pkg/buildinfo"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/layout"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out  io.Writer
	opts globalOptions
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	layoutPath string
	cellSize   float64
	gap        float64
	padding    float64
	size       string
	rows       int
	json       bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	def := grid.DefaultConfig()
	root := &cobra.Command{
		Use:          "gridplace",
		Short:        "Gridplace converts grid coordinates and places dashboard widgets",
		Long:         `Gridplace is a CLI for a uniform dashboard grid: it converts between pixel and cell coordinates, suggests where new widgets should go, and predicts where a dragged widget will land.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.opts.layoutPath, "layout", "l", "", "layout document (.toml or .json)")
	pf.Float64Var(&c.opts.cellSize, "cell-size", def.CellSize, "cell size in pixels")
	pf.Float64Var(&c.opts.gap, "gap", def.Gap, "gap between cells in pixels")
	pf.Float64Var(&c.opts.padding, "padding", def.Padding, "container padding in pixels")
	pf.StringVar(&c.opts.size, "grid-size", string(def.Size), "grid size: 2x2, 3x3, 4x4, 5x5")
	pf.IntVar(&c.opts.rows, "rows", 0, "placement rows (default: layout value or 100)")
	pf.BoolVar(&c.opts.json, "json", false, "print results as JSON")

	root.AddCommand(c.transformCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.predictCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.stabilityCommand())
	root.AddCommand(c.heatmapCommand())
	root.AddCommand(c.dragCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Layout Loading
// =============================================================================

// loadLayout reads the --layout document, or starts an empty one, and applies
// any grid flags the user set explicitly.
func (c *CLI) loadLayout(cmd *cobra.Command) (*layout.Document, error) {
	doc := layout.New()
	if c.opts.layoutPath != "" {
		var err error
		if doc, err = layout.Load(c.opts.layoutPath); err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded layout", "path", c.opts.layoutPath, "widgets", len(doc.Widgets), "history", len(doc.History))
	}

	flags := cmd.Flags()
	if flags.Changed("cell-size") {
		doc.Grid.CellSize = c.opts.cellSize
	}
	if flags.Changed("gap") {
		doc.Grid.Gap = c.opts.gap
	}
	if flags.Changed("padding") {
		doc.Grid.Padding = c.opts.padding
	}
	if flags.Changed("grid-size") {
		doc.Grid.Size = grid.Size(c.opts.size)
	}
	if flags.Changed("rows") {
		doc.Grid.Rows = c.opts.rows
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// loadEngine is loadLayout followed by building the engine.
func (c *CLI) loadEngine(cmd *cobra.Command) (*placement.Engine, *layout.Document, error) {
	doc, err := c.loadLayout(cmd)
	if err != nil {
		return nil, nil, err
	}
	return doc.Engine(), doc, nil
}

// =============================================================================
// Output Helpers
// =============================================================================

// printJSON writes v as indented JSON to the CLI's output.
func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
