package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridplace/pkg/errors"
	"github.com/matzehuels/gridplace/pkg/grid"
	"github.com/matzehuels/gridplace/pkg/placement"
)

// Drag preview styles
var (
	dragCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	dragLandStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	dragBlockedStyle = lipgloss.NewStyle().Foreground(colorRed)
	dragWidgetStyle  = lipgloss.NewStyle().Foreground(colorGray)
	dragEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Cell glyphs, two columns wide.
const (
	glyphEmpty  = "· "
	glyphWidget = "▓▓"
	glyphLand   = "░░"
	glyphCursor = "++"
)

func (c *CLI) dragCommand() *cobra.Command {
	var (
		width, height int
		ignore        string
	)

	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Interactively preview where a dragged widget will land",
		Long: `Interactively preview where a dragged widget will land.

Move the pointer with the arrow keys (or h/j/k/l). The shaded footprint is
the predicted landing position; enter accepts it, q cancels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 || height < 1 {
				return errs.New(errs.ErrCodeInvalidInput, "--width and --height must be at least 1")
			}
			e, _, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{tea.WithContext(cmd.Context()), tea.WithOutput(c.out)}
			final, err := tea.NewProgram(NewDragModel(e, placement.Size{Width: width, Height: height}, ignore), opts...).Run()
			if err != nil {
				return err
			}
			m := final.(DragModel)
			if !m.Accepted {
				c.printInfo("Cancelled")
				return nil
			}
			if c.opts.json {
				return c.printJSON(m.Prediction)
			}
			c.printPrediction(m.Prediction)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1, "widget width in cells")
	cmd.Flags().IntVar(&height, "height", 1, "widget height in cells")
	cmd.Flags().StringVar(&ignore, "ignore", "", "id of the widget being dragged (ignored for collisions)")
	return cmd
}

// =============================================================================
// DragModel - Interactive drop preview
// =============================================================================

// DragModel is the bubbletea model for the drag preview. Row and Col are the
// one-based pointer position.
type DragModel struct {
	Engine     *placement.Engine
	Size       placement.Size
	Ignore     string
	Row, Col   int
	Prediction placement.DropPrediction
	Accepted   bool
	Height     int
	Offset     int
}

// NewDragModel creates a drag model with the pointer at the top-left cell.
func NewDragModel(e *placement.Engine, size placement.Size, ignore string) DragModel {
	m := DragModel{Engine: e, Size: size, Ignore: ignore, Row: 1, Col: 1, Height: 12}
	m.predict()
	return m
}

func (m *DragModel) predict() {
	var opts []placement.DropOption
	if m.Ignore != "" {
		opts = append(opts, placement.IgnoreWidget(m.Ignore))
	}
	m.Prediction = m.Engine.PredictDrop(placement.DragPoint{Row: float64(m.Row), Col: float64(m.Col)}, m.Size, opts...)
}

func (m DragModel) Init() tea.Cmd {
	return nil
}

func (m DragModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		case "up", "k":
			if m.Row > 1 {
				m.Row--
			}
		case "down", "j":
			if m.Row < m.Engine.Rows() {
				m.Row++
			}
		case "left", "h":
			if m.Col > 1 {
				m.Col--
			}
		case "right", "l":
			if m.Col < m.Engine.Columns() {
				m.Col++
			}
		default:
			return m, nil
		}
		m.scroll()
		m.predict()
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.scroll()
	}
	return m, nil
}

// scroll keeps the pointer row inside the visible window.
func (m *DragModel) scroll() {
	if m.Row-1 < m.Offset {
		m.Offset = m.Row - 1
	}
	if m.Row-1 >= m.Offset+m.Height {
		m.Offset = m.Row - m.Height
	}
}

func (m DragModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Drag %dx%d widget", m.Size.Width, m.Size.Height)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ move  ⏎ drop  q quit"))
	b.WriteString("\n\n")

	land := m.Prediction.Position.Bounds()
	landStyle := dragLandStyle
	if !m.Prediction.Feasible {
		landStyle = dragBlockedStyle
	}

	end := min(m.Offset+m.Height, m.Engine.Rows())
	for row := m.Offset; row < end; row++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%3d ", row+1)))
		for col := range m.Engine.Columns() {
			cell := grid.Cell{Col: col, Row: row}
			switch {
			case row == m.Row-1 && col == m.Col-1:
				b.WriteString(dragCursorStyle.Render(glyphCursor))
			case land.Contains(cell):
				b.WriteString(landStyle.Render(glyphLand))
			case m.Engine.Occupied(cell):
				b.WriteString(dragWidgetStyle.Render(glyphWidget))
			default:
				b.WriteString(dragEmptyStyle.Render(glyphEmpty))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	p := m.Prediction
	status := fmt.Sprintf("pointer %d:%d  lands %s  confidence %.2f", m.Row, m.Col, formatCell(p.Position), p.Confidence)
	if !p.Feasible {
		status += "  " + StyleWarning.Render("blocked")
	}
	b.WriteString(StyleDim.Render(status))
	if len(p.AffectedWidgets) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("near: " + strings.Join(p.AffectedWidgets, ", ")))
	}
	return b.String()
}
