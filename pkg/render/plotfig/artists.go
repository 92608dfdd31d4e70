package plotfig

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

type artist struct {
	z       int
	plotter plot.Plotter
}

// sortedArtists returns the artists in drawing order: ascending z, ties in
// insertion order.
func (p *Panel) sortedArtists() []artist {
	arts := slices.Clone(p.artists)
	slices.SortStableFunc(arts, func(a, b artist) int { return cmp.Compare(a.z, b.z) })
	return arts
}

// formattedTicks relabels the major ticks of another ticker.
type formattedTicks struct {
	plot.Ticker
	format surface.TickFormatter
}

func (t formattedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		if !ticks[i].IsMinor() {
			ticks[i].Label = t.format(ticks[i].Value)
		}
	}
	return ticks
}

// ticker returns the tick marker for the axis; log selects log ticks.
func (s axisState) ticker(log bool) plot.Ticker {
	if s.cleared {
		return plot.ConstantTicks{}
	}
	var t plot.Ticker = plot.DefaultTicks{}
	if log {
		t = plot.LogTicks{Prec: -1}
	}
	if s.formatter != nil {
		t = formattedTicks{Ticker: t, format: s.formatter}
	}
	return t
}

// gridArtist draws lines across the data area at the ticks of one axis.
type gridArtist struct {
	lines surface.GridLines
}

func (g gridArtist) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := draw.LineStyle{Color: g.lines.Color, Width: vg.Points(g.lines.Width)}
	minor := g.lines.Which == surface.Minor
	a := plt.X
	if g.lines.Axis == surface.Y {
		a = plt.Y
	}
	for _, t := range a.Tick.Marker.Ticks(a.Min, a.Max) {
		if t.IsMinor() != minor {
			continue
		}
		if g.lines.Axis == surface.X {
			x := c.X(a.Norm(t.Value))
			if c.ContainsX(x) {
				c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
			}
			continue
		}
		y := c.Y(a.Norm(t.Value))
		if c.ContainsY(y) {
			c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
		}
	}
}

// lineArtist is a line, a set of markers, or both.
type lineArtist struct {
	line   *plotter.Line
	points *plotter.Scatter
}

func newLineArtist(l surface.Line, cfg *style.Config) (lineArtist, error) {
	stroke, glyph, err := strokeStyles(l.Color, l.Width, l.Style, l.Marker, l.MarkerSize, cfg)
	if err != nil {
		return lineArtist{}, err
	}
	xys := make(plotter.XYs, len(l.X))
	for i := range l.X {
		xys[i] = plotter.XY{X: l.X[i], Y: l.Y[i]}
	}
	var a lineArtist
	if stroke != nil {
		if a.line, err = plotter.NewLine(xys); err != nil {
			return lineArtist{}, err
		}
		a.line.LineStyle = *stroke
	}
	if glyph != nil {
		if a.points, err = plotter.NewScatter(xys); err != nil {
			return lineArtist{}, err
		}
		a.points.GlyphStyle = *glyph
	}
	if a.line == nil && a.points == nil {
		// Neither line nor marker: keep the data range, draw nothing.
		if a.line, err = plotter.NewLine(xys); err != nil {
			return lineArtist{}, err
		}
		a.line.LineStyle.Width = 0
	}
	return a, nil
}

// newHandleArtist builds a legend sample without data.
func newHandleArtist(h surface.LegendHandle, cfg *style.Config) (lineArtist, error) {
	col := h.Color
	if col == nil {
		col = color.Black
	}
	stroke, glyph, err := strokeStyles(col, h.Width, h.Style, h.Marker, h.MarkerSize, cfg)
	if err != nil {
		return lineArtist{}, err
	}
	var a lineArtist
	if stroke != nil {
		a.line = &plotter.Line{LineStyle: *stroke}
	}
	if glyph != nil {
		a.points = &plotter.Scatter{GlyphStyle: *glyph}
	}
	return a, nil
}

func (a lineArtist) Plot(c draw.Canvas, plt *plot.Plot) {
	if a.line != nil && a.line.LineStyle.Width > 0 {
		a.line.Plot(c, plt)
	}
	if a.points != nil {
		a.points.Plot(c, plt)
	}
}

func (a lineArtist) DataRange() (xmin, xmax, ymin, ymax float64) {
	if a.line != nil {
		return a.line.DataRange()
	}
	return a.points.DataRange()
}

func (a lineArtist) Thumbnail(c *draw.Canvas) {
	if a.line != nil {
		a.line.Thumbnail(c)
	}
	if a.points != nil {
		a.points.Thumbnail(c)
	}
}

// strokeStyles converts line and marker codes into gonum styles. A nil
// style means nothing is drawn for that part.
func strokeStyles(col color.Color, width float64, ls surface.LineStyle, m surface.Marker, ms float64, cfg *style.Config) (*draw.LineStyle, *draw.GlyphStyle, error) {
	if width <= 0 {
		width = cfg.Lines.Width
	}
	if ms <= 0 {
		ms = cfg.Lines.MarkerSize
	}

	var stroke *draw.LineStyle
	if ls != surface.NoLine {
		dashes, err := dashPattern(ls, width)
		if err != nil {
			return nil, nil, err
		}
		stroke = &draw.LineStyle{Color: col, Width: vg.Points(width), Dashes: dashes}
	}

	var glyph *draw.GlyphStyle
	if m != surface.NoMarker {
		shape, radius, err := glyphShape(m, ms)
		if err != nil {
			return nil, nil, err
		}
		glyph = &draw.GlyphStyle{Color: col, Radius: radius, Shape: shape}
	}
	return stroke, glyph, nil
}

// dashPattern scales the usual dash patterns by the line width.
func dashPattern(ls surface.LineStyle, width float64) ([]vg.Length, error) {
	scale := func(ds ...float64) []vg.Length {
		out := make([]vg.Length, len(ds))
		for i, d := range ds {
			out[i] = vg.Points(d * width)
		}
		return out
	}
	switch ls {
	case "", surface.Solid:
		return nil, nil
	case surface.Dashed:
		return scale(3.7, 1.6), nil
	case surface.Dotted:
		return scale(1, 1.65), nil
	case surface.DashDot:
		return scale(6.4, 1.6, 1, 1.6), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "line style %q not supported", string(ls))
}

func glyphShape(m surface.Marker, size float64) (draw.GlyphDrawer, vg.Length, error) {
	r := vg.Points(size / 2)
	switch m {
	case surface.Circle:
		return draw.CircleGlyph{}, r, nil
	case surface.Point:
		return draw.CircleGlyph{}, r / 2, nil
	case surface.Cross:
		return draw.CrossGlyph{}, r, nil
	case surface.Plus:
		return draw.PlusGlyph{}, r, nil
	case surface.Square:
		return draw.BoxGlyph{}, r, nil
	case surface.Triangle:
		return draw.PyramidGlyph{}, r, nil
	}
	return nil, 0, errors.New(errors.ErrCodeUnsupported, "marker %q not supported", string(m))
}

// textArtist draws a label in data coordinates.
type textArtist struct {
	t   surface.Text
	sty text.Style
}

func (a textArtist) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.FillText(a.sty, vg.Point{X: trX(a.t.X), Y: trY(a.t.Y)}, a.t.Text)
}

const ellipseSegments = 128

// ellipseArtist draws an ellipse approximated by a closed polygon in data
// coordinates.
type ellipseArtist struct {
	e       surface.Ellipse
	outline plotter.XYs
	sty     draw.LineStyle
}

func newEllipseArtist(e surface.Ellipse, cfg *style.Config) ellipseArtist {
	if e.Color == nil {
		e.Color = color.Black
	}
	width := e.LineWidth
	if width <= 0 {
		width = cfg.Lines.Width
	}
	theta := e.Angle * math.Pi / 180
	a, b := e.Width/2, e.Height/2
	pts := make(plotter.XYs, ellipseSegments+1)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := a*math.Cos(phi), b*math.Sin(phi)
		pts[i] = plotter.XY{
			X: e.CX + x*math.Cos(theta) - y*math.Sin(theta),
			Y: e.CY + x*math.Sin(theta) + y*math.Cos(theta),
		}
	}
	return ellipseArtist{
		e:       e,
		outline: pts,
		sty:     draw.LineStyle{Color: e.Color, Width: vg.Points(width)},
	}
}

func (a ellipseArtist) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pts := make([]vg.Point, len(a.outline))
	for i, p := range a.outline {
		pts[i] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}
	if a.e.Fill {
		c.FillPolygon(a.e.Color, c.ClipPolygonXY(pts))
		return
	}
	c.StrokeLines(a.sty, c.ClipLinesXY(pts)...)
}

func (a ellipseArtist) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(a.outline)
}

// imageGrid adapts row-major image data to plotter.GridXYZ. Row r of the
// grid is row r of the data when the origin is at the bottom, and counted
// from the top otherwise.
type imageGrid struct {
	data  [][]float64
	lower bool
}

func (g imageGrid) Dims() (c, r int) { return len(g.data[0]), len(g.data) }

func (g imageGrid) Z(c, r int) float64 {
	if !g.lower {
		r = len(g.data) - 1 - r
	}
	return g.data[r][c]
}

func (g imageGrid) X(c int) float64 { return float64(c) }

func (g imageGrid) Y(r int) float64 { return float64(r) }

// colorMap returns the named colormap spanning [vmin, vmax]: "gray" runs
// from black to white, "bwr" from blue through white to red.
func colorMap(name string, vmin, vmax float64) (plotpalette.ColorMap, error) {
	var cm plotpalette.ColorMap
	switch name {
	case "", "gray":
		lum, err := moreland.NewLuminance([]color.Color{color.Black, color.White})
		if err != nil {
			return nil, err
		}
		cm = lum
	case "bwr":
		cm = moreland.SmoothBlueRed()
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "colormap %q not supported", name)
	}
	cm.SetMin(vmin)
	cm.SetMax(vmax)
	return cm, nil
}
