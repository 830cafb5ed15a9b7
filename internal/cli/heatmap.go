package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// occupiedMark is shown instead of a score for covered cells.
const occupiedMark = "##"

// Heat styles, hottest first.
var (
	styleHeatHigh = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleHeatMid  = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeatLow  = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeatCold = lipgloss.NewStyle().Foreground(colorDim)
	styleOccupied = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

func (c *CLI) heatmapCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show placement desirability for the top of the grid",
		Long: `Show placement desirability for the top of the grid.

Each free cell shows its 0-100 heat score; occupied cells show ` + occupiedMark + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 1 {
				return errs.New(errs.ErrCodeInvalidInput, "--show must be at least 1")
			}
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}
			if c.opts.json {
				return c.printJSON(heatRows(e, rows))
			}
			fmt.Fprintln(c.out, renderHeatMap(e, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "show", 20, "number of rows to display")
	return cmd
}

// heatRows returns the heat of the first n rows, with -1 for occupied cells.
func heatRows(e *placement.Engine, n int) [][]float64 {
	n = min(n, e.Rows())
	out := make([][]float64, n)
	for row := range n {
		out[row] = make([]float64, e.Columns())
		for col := range e.Columns() {
			cell := grid.Cell{Col: col, Row: row}
			if e.Occupied(cell) {
				out[row][col] = -1
				continue
			}
			out[row][col] = e.Heat(cell)
		}
	}
	return out
}

// renderHeatMap draws the first n rows of the engine's heat map as a table.
func renderHeatMap(e *placement.Engine, n int) string {
	heat := heatRows(e, n)

	headers := []string{""}
	for col := range e.Columns() {
		headers = append(headers, strconv.Itoa(col+1))
	}

	data := make([][]string, len(heat))
	for row, values := range heat {
		line := []string{strconv.Itoa(row + 1)}
		for _, v := range values {
			if v < 0 {
				line = append(line, occupiedMark)
				continue
			}
			line = append(line, fmt.Sprintf("%.0f", v))
		}
		data[row] = line
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if row == table.HeaderRow || col == 0 {
				return base.Inherit(styleHeader)
			}
			return base.Inherit(heatStyle(heat[row][col-1]))
		})
	return t.Render()
}

func heatStyle(v float64) lipgloss.Style {
	switch {
	case v < 0:
		return styleOccupied
	case v >= 70:
		return styleHeatHigh
	case v >= 50:
		return styleHeatMid
	case v >= 30:
		return styleHeatLow
	default:
		return styleHeatCold
	}
}
