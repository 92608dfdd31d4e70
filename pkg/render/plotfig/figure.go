package plotfig

import (
	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// Default figure size in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// Default subplot parameters in figure fractions.
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88
	subplotWSpace = 0.2
	subplotHSpace = 0.2
)

// Figure is a rows×cols grid of panels sharing one canvas.
type Figure struct {
	cfg           *style.Config
	width, height float64
	rows, cols    int
	panels        [][]*Panel
}

// NewFigure creates a figure with rows×cols panels in the default subplot
// arrangement. A nil cfg uses [style.Defaults].
func NewFigure(rows, cols int, cfg *style.Config) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure needs at least one row and column, got %d×%d", rows, cols)
	}
	if cfg == nil {
		cfg = style.Defaults()
	}
	f := &Figure{
		cfg:    cfg,
		width:  DefaultWidth,
		height: DefaultHeight,
		rows:   rows,
		cols:   cols,
		panels: make([][]*Panel, rows),
	}
	boxes := subplotBoxes(rows, cols)
	for i := range rows {
		f.panels[i] = make([]*Panel, cols)
		for j := range cols {
			f.panels[i][j] = newPanel(f, boxes[i][j])
		}
	}
	return f, nil
}

func subplotBoxes(rows, cols int) [][]surface.Box {
	cellW := (subplotRight - subplotLeft) / (float64(cols) + subplotWSpace*float64(cols-1))
	cellH := (subplotTop - subplotBottom) / (float64(rows) + subplotHSpace*float64(rows-1))
	out := make([][]surface.Box, rows)
	for i := range rows {
		out[i] = make([]surface.Box, cols)
		y0 := subplotTop - float64(i+1)*cellH - float64(i)*subplotHSpace*cellH
		for j := range cols {
			x0 := subplotLeft + float64(j)*(1+subplotWSpace)*cellW
			out[i][j] = surface.Box{X0: x0, Y0: y0, W: cellW, H: cellH}
		}
	}
	return out
}

// Config returns the style the figure was created with.
func (f *Figure) Config() *style.Config { return f.cfg }

// SetWidth sets the figure width in inches.
func (f *Figure) SetWidth(inches float64) { f.width = inches }

// SetHeight sets the figure height in inches.
func (f *Figure) SetHeight(inches float64) { f.height = inches }

// Size returns the figure size in inches.
func (f *Figure) Size() (width, height float64) { return f.width, f.height }

// Shape returns the number of panel rows and columns.
func (f *Figure) Shape() (rows, cols int) { return f.rows, f.cols }

// Panel returns the panel at row i, column j.
func (f *Figure) Panel(i, j int) *Panel { return f.panels[i][j] }

// Panels returns all panels in row-major order.
func (f *Figure) Panels() []*Panel {
	out := make([]*Panel, 0, f.rows*f.cols)
	for _, row := range f.panels {
		out = append(out, row...)
	}
	return out
}

// Axes returns the panels as a collection shaped like the figure: a single
// surface for 1×1, a sequence for one row or column, a grid otherwise.
func (f *Figure) Axes() surface.Collection {
	switch {
	case f.rows == 1 && f.cols == 1:
		return surface.Single(f.panels[0][0])
	case f.rows == 1 || f.cols == 1:
		seq := make([]surface.Surface, 0, f.rows*f.cols)
		for _, p := range f.Panels() {
			seq = append(seq, p)
		}
		return surface.Sequence(seq...)
	default:
		grid := make([][]surface.Surface, f.rows)
		for i, row := range f.panels {
			grid[i] = make([]surface.Surface, len(row))
			for j, p := range row {
				grid[i][j] = p
			}
		}
		return surface.Grid(grid)
	}
}
