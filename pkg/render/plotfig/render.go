package plotfig

import (
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// Colorbar strip geometry in points.
const (
	colorbarGap   = 8
	colorbarWidth = 10
)

// Draw renders the figure onto c, filling it with white first.
func (f *Figure) Draw(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())
	for _, p := range f.Panels() {
		p.draw(c)
	}
}

// build returns a fresh plot carrying the panel's axes and artists, ready
// to draw.
func (p *Panel) build() *plot.Plot {
	q := plot.New()
	q.BackgroundColor = nil
	q.Title = p.plot.Title
	q.Legend = p.plot.Legend
	q.TextHandler = p.plot.TextHandler
	q.X = p.owner(surface.X).plot.X
	q.Y = p.plot.Y
	for _, a := range p.sortedArtists() {
		q.Add(a.plotter)
	}
	p.owner(surface.X).configure(&q.X, surface.X, surface.Bottom)
	p.configure(&q.Y, surface.Y, surface.Left)
	return q
}

// configure applies the panel state of axis ax to a.
func (p *Panel) configure(a *plot.Axis, ax surface.Axis, spine surface.Side) {
	s := p.axes[ax]
	a.Min, a.Max = p.Limits(ax)
	if a.Min > a.Max {
		a.Min, a.Max = a.Max, a.Min
	}
	if a.Min == a.Max {
		a.Min--
		a.Max++
	}
	// Log axes with non-positive limits fall back to linear.
	log := s.scale == surface.Log && a.Min > 0
	a.Scale = plot.LinearScale{}
	if log {
		a.Scale = logScale{}
	}
	a.Tick.Marker = s.ticker(log)
	a.Tick.Length = p.labelOffset(ax)
	a.Padding = vg.Points(p.spineOffset[spine])
	if !p.spineVisible[spine] {
		a.LineStyle.Width = 0
		a.LineStyle.Color = color.Transparent
	}
}

// minLogValue replaces values a log axis cannot show.
const minLogValue = 1e-300

// logScale is a log scale that clips values at or below zero to
// minLogValue, which puts them far outside the data area where the
// canvas clips them away.
type logScale struct{}

func (logScale) Normalize(min, max, x float64) float64 {
	if x <= 0 {
		x = minLogValue
	}
	return plot.LogScale{}.Normalize(min, max, x)
}

// labelOffset is the distance from the spine to the tick labels of axis
// ax: the longer tick set plus its padding.
func (p *Panel) labelOffset(ax surface.Axis) vg.Length {
	t, s := p.cfg.Tick(ax.String()), p.state(ax)
	return vg.Points(max(t.MajorSize+s.pad[surface.Major], t.MinorSize+s.pad[surface.Minor]))
}

// tickMark returns the stroke and length of a visible tick on axis ax.
func (p *Panel) tickMark(ax surface.Axis, minor bool) (draw.LineStyle, vg.Length) {
	t := p.cfg.Tick(ax.String())
	if minor {
		return draw.LineStyle{Color: color.Black, Width: vg.Points(t.MinorWidth)}, vg.Points(t.MinorSize)
	}
	return draw.LineStyle{Color: color.Black, Width: vg.Points(t.MajorWidth)}, vg.Points(t.MajorSize)
}

// drawTicks strokes the marks of the bottom or left axis a, pointing out
// from its spine. gonum only reserves the label offset for them.
func (p *Panel) drawTicks(dc draw.Canvas, a plot.Axis, ax surface.Axis) {
	spine := dc.Min.X - a.Padding - a.LineStyle.Width/2
	if ax == surface.X {
		spine = dc.Min.Y - a.Padding - a.LineStyle.Width/2
	}
	for _, t := range a.Tick.Marker.Ticks(a.Min, a.Max) {
		sty, l := p.tickMark(ax, t.IsMinor())
		if ax == surface.X {
			if x := dc.X(a.Norm(t.Value)); dc.ContainsX(x) {
				dc.StrokeLine2(sty, x, spine-l, x, spine)
			}
			continue
		}
		if y := dc.Y(a.Norm(t.Value)); dc.ContainsY(y) {
			dc.StrokeLine2(sty, spine-l, y, spine, y)
		}
	}
}

// dataRect maps the panel box into the canvas rectangle r.
func (p *Panel) dataRect(r vg.Rectangle) vg.Rectangle {
	b := p.Position()
	w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y
	lo := vg.Point{X: r.Min.X + vg.Length(b.X0)*w, Y: r.Min.Y + vg.Length(b.Y0)*h}
	return vg.Rectangle{Min: lo, Max: vg.Point{X: lo.X + vg.Length(b.W)*w, Y: lo.Y + vg.Length(b.H)*h}}
}

// outerRect grows box so that the data area of q drawn into the result
// equals box.
func outerRect(q *plot.Plot, c vg.Canvas, box vg.Rectangle) vg.Rectangle {
	dc := q.DataCanvas(draw.Canvas{Canvas: c, Rectangle: box})
	return vg.Rectangle{
		Min: vg.Point{X: 2*box.Min.X - dc.Min.X, Y: 2*box.Min.Y - dc.Min.Y},
		Max: vg.Point{X: 2*box.Max.X - dc.Max.X, Y: 2*box.Max.Y - dc.Max.Y},
	}
}

func (p *Panel) draw(fc draw.Canvas) {
	q := p.build()
	box := p.dataRect(fc.Rectangle)
	c := draw.Canvas{Canvas: fc.Canvas, Rectangle: outerRect(q, fc.Canvas, box)}
	q.Draw(c)
	dc := q.DataCanvas(c)

	p.drawTicks(dc, q.X, surface.X)
	p.drawTicks(dc, q.Y, surface.Y)
	p.drawFrame(dc)
	shift := vg.Length(0)
	for _, t := range p.twins {
		shift = t.drawTwin(dc, true, shift)
	}
	if p.colorbar != nil {
		p.drawColorbar(dc, shift, true)
	}
	for _, o := range p.overlays(c.Rectangle, dc.Rectangle) {
		c.FillText(o.sty, o.pt, o.txt)
	}
}

// drawFrame draws the top and right spines, which gonum/plot has no axis
// for.
func (p *Panel) drawFrame(dc draw.Canvas) {
	sty := p.plot.Y.LineStyle
	if p.spineVisible[surface.Top] {
		y := dc.Max.Y + vg.Points(p.spineOffset[surface.Top])
		dc.StrokeLine2(sty, dc.Min.X, y, dc.Max.X, y)
	}
	if p.spineVisible[surface.Right] {
		x := dc.Max.X + vg.Points(p.spineOffset[surface.Right])
		dc.StrokeLine2(sty, x, dc.Min.Y, x, dc.Max.Y)
	}
}

// drawTwin draws the twin's artists into the host data area and its y axis
// to the right of it, shift points further out. It returns the width the
// axis occupies. With paint unset nothing is drawn.
func (p *Panel) drawTwin(dc draw.Canvas, paint bool, shift vg.Length) vg.Length {
	q := p.build()
	if paint {
		for _, a := range p.sortedArtists() {
			a.plotter.Plot(dc, q)
		}
		if p.spineVisible[surface.Top] && !p.host.spineVisible[surface.Top] {
			dc.StrokeLine2(p.plot.Y.LineStyle, dc.Min.X, dc.Max.Y, dc.Max.X, dc.Max.Y)
		}
	}
	ya := q.Y
	ya.LineStyle = p.plot.Y.LineStyle
	offset := shift + vg.Points(p.spineOffset[surface.Right])
	return rightAxis(dc, ya, p.tickMark, offset, p.spineVisible[surface.Right], paint)
}

// rightAxis draws a vertical axis along the right edge of c, offset points
// outward, and returns its width including the offset. Tick marks come from
// mark; a.Tick.Length is the label offset.
func rightAxis(c draw.Canvas, a plot.Axis, mark func(surface.Axis, bool) (draw.LineStyle, vg.Length), offset vg.Length, spine, paint bool) vg.Length {
	x := c.Max.X + offset
	if spine && paint {
		c.StrokeLine2(a.LineStyle, x, c.Min.Y, x, c.Max.Y)
	}
	marks := a.Tick.Marker.Ticks(a.Min, a.Max)
	if a.Tick.Length > 0 && len(marks) > 0 {
		for _, t := range marks {
			y := c.Y(a.Norm(t.Value))
			if !c.ContainsY(y) || !paint {
				continue
			}
			sty, l := mark(surface.Y, t.IsMinor())
			c.StrokeLine2(sty, x, y, x+l, y)
		}
		x += a.Tick.Length
	}

	sty := a.Tick.Label
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	var labelW vg.Length
	for _, t := range marks {
		y := c.Y(a.Norm(t.Value))
		if t.IsMinor() || !c.ContainsY(y) {
			continue
		}
		labelW = max(labelW, sty.Width(t.Label))
		if paint {
			c.FillText(sty, vg.Point{X: x + sty.Width(" "), Y: y}, t.Label)
		}
	}
	if labelW > 0 {
		x += sty.Width(" ") + labelW
	}

	if a.Label.Text != "" {
		lsty := a.Label.TextStyle
		lsty.Rotation = math.Pi / 2
		lsty.XAlign, lsty.YAlign = draw.XCenter, draw.YTop
		x += a.Label.Padding
		if paint {
			c.FillText(lsty, vg.Point{X: x, Y: c.Center().Y}, a.Label.Text)
		}
		x += a.Label.TextStyle.Height(a.Label.Text)
	}
	return x - c.Max.X
}

// drawColorbar draws the colormap in a strip right of the data area, shift
// points further out, with its ticks on the right. It returns the total
// width used.
func (p *Panel) drawColorbar(dc draw.Canvas, shift vg.Length, paint bool) vg.Length {
	x0 := dc.Max.X + shift + colorbarGap
	strip := draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: x0, Y: dc.Min.Y},
			Max: vg.Point{X: x0 + colorbarWidth, Y: dc.Max.Y},
		},
	}
	cq := plot.New()
	cq.X.Min, cq.X.Max = 0, 1
	cq.Y = p.plot.Y
	cq.Y.Label.Text = ""
	cq.Y.LineStyle = p.plot.Y.LineStyle
	cq.Y.Min, cq.Y.Max = p.colorbar.Min(), p.colorbar.Max()
	cq.Y.Scale = plot.LinearScale{}
	cq.Y.Tick.Marker = plot.DefaultTicks{}
	cq.Y.Tick.Length = vg.Points(p.cfg.YTick.MajorSize + p.cfg.YTick.Pad)

	if paint {
		cb := &plotter.ColorBar{ColorMap: p.colorbar, Vertical: true}
		cb.Plot(strip, cq)
		r := strip.Rectangle
		strip.StrokeLines(cq.Y.LineStyle, []vg.Point{
			r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}, r.Min,
		})
	}
	return shift + colorbarGap + colorbarWidth + rightAxis(strip, cq.Y, p.tickMark, 0, false, paint)
}

// overlay is text placed relative to the panel rather than the data.
type overlay struct {
	sty text.Style
	pt  vg.Point
	txt string
}

// overlays returns the left title and annotations for a panel whose plot
// occupies outer and whose data area is data.
func (p *Panel) overlays(outer, data vg.Rectangle) []overlay {
	var out []overlay
	if t := p.leftTitle; t != nil {
		sty := p.plot.Title.TextStyle
		sty.Handler = handlerFor(t.Text)
		sty.XAlign, sty.YAlign = xAlign(t.HAlign), yAlign(t.VAlign)
		sty.Font.Weight = xfont.WeightNormal
		if t.Bold {
			sty.Font.Weight = xfont.WeightBold
		}
		y := data.Max.Y
		if t.Y != nil {
			y = data.Min.Y + vg.Length(*t.Y)*(data.Max.Y-data.Min.Y)
		}
		out = append(out, overlay{sty: sty, pt: vg.Point{X: data.Min.X, Y: y + vg.Points(t.Pad)}, txt: t.Text})
	}
	for _, a := range p.annotations {
		sty := p.textStyle(a.Text, a.Size, nil, a.HAlign, a.VAlign)
		pt := vg.Point{
			X: outer.Min.X + vg.Points(a.OffsetX),
			Y: (data.Min.Y+data.Max.Y)/2 + vg.Points(a.OffsetY),
		}
		out = append(out, overlay{sty: sty, pt: pt, txt: a.Text})
	}
	return out
}

// bounds returns the rectangle covered by the overlay text.
func (o overlay) bounds() vg.Rectangle {
	r := o.sty.Rectangle(o.txt)
	return vg.Rectangle{Min: r.Min.Add(o.pt), Max: r.Max.Add(o.pt)}
}
