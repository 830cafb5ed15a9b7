package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/observability"
)

// transformCommand groups the pixel/grid conversions.
func (c *CLI) transformCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Convert between pixel and grid coordinates",
	}
	cmd.AddCommand(c.transformPixelCommand())
	cmd.AddCommand(c.transformGridCommand())
	return cmd
}

func (c *CLI) transformPixelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pixel X Y",
		Short: "Map a pixel position to the grid cell containing it",
		Long: `Map a pixel position to the grid cell containing it.

Points in the padding map to the first cell, points in a gap snap to the
nearer neighbouring cell, and points past the grid are clamped to the last
cell.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			doc, err := c.loadLayout(cmd)
			if err != nil {
				return err
			}
			res := grid.PixelToGrid(grid.Pixel{X: x, Y: y}, doc.Config())
			observability.Engine().OnTransform(cmd.Context(), "pixel", res.Valid)
			return printResult(c, res)
		},
	}
}

func (c *CLI) transformGridCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grid COL ROW",
		Short: "Map a zero-based grid cell to its top-left pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, row, err := parsePair(args)
			if err != nil {
				return err
			}
			doc, err := c.loadLayout(cmd)
			if err != nil {
				return err
			}
			res := grid.GridToPixelFloat(col, row, doc.Config())
			observability.Engine().OnTransform(cmd.Context(), "grid", res.Valid)
			return printResult(c, res)
		},
	}
}

func (c *CLI) snapCommand() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "snap X Y",
		Short: "Find the cell origin a pixel position snaps to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			if threshold < 0 {
				return errs.New(errs.ErrCodeInvalidInput, "threshold must not be negative")
			}
			doc, err := c.loadLayout(cmd)
			if err != nil {
				return err
			}

			pt, ok := grid.NearestSnapPoint(grid.Pixel{X: x, Y: y}, grid.SnapPoints(doc.Config()), threshold)
			if c.opts.json {
				return c.printJSON(struct {
					Point grid.Pixel `json:"point"`
					Found bool       `json:"found"`
				}{pt, ok})
			}
			if !ok {
				c.printWarning("No snap point within %gpx", threshold)
				return nil
			}
			c.printSuccess("Snaps to %s", StyleNumber.Render(pt.String()))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", grid.DefaultSnapThreshold, "snap radius in pixels")
	return cmd
}

// printResult prints a transform result, listing any validation messages.
func printResult[T fmt.Stringer](c *CLI, res grid.Result[T]) error {
	if c.opts.json {
		return c.printJSON(res)
	}
	coords := res.Coordinates.String()
	if res.Valid {
		c.printSuccess("%s", StyleNumber.Render(coords))
		return nil
	}
	c.printError("Invalid coordinates")
	for _, m := range res.Errors {
		c.printDetail("%s", m)
	}
	c.printKeyValue("best effort", coords)
	return nil
}

// parsePair parses two numeric positional arguments.
func parsePair(args []string) (float64, float64, error) {
	var out [2]float64
	for i, a := range args[:2] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, 0, errs.New(errs.ErrCodeInvalidInput, "%q is not a number", a)
		}
		out[i] = v
	}
	return out[0], out[1], nil
}

// formatScore renders a 0-100 score with one decimal.
func formatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
