package plotfig

import (
	"image/color"
	"math"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/palette"
	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// axisState is the per-axis state a panel keeps next to its plot.Axis.
type axisState struct {
	lo, hi    float64 // lo > hi until data or explicit limits arrive
	fixed     bool
	scale     surface.Scale
	formatter surface.TickFormatter
	cleared   bool
	pad       [2]float64 // major, minor tick padding in points
}

// Panel is one plot panel of a [Figure]. It implements [surface.Surface].
type Panel struct {
	fig   *Figure
	cfg   *style.Config
	plot  *plot.Plot
	host  *Panel
	twins []*Panel

	box          surface.Box
	axes         [2]axisState
	spineVisible [4]bool
	spineOffset  [4]float64

	leftTitle   *surface.Title
	annotations []surface.Annotation
	artists     []artist
	colorbar    plotpalette.ColorMap
	nextColor   int
}

var _ surface.Surface = (*Panel)(nil)

func newPanel(f *Figure, box surface.Box) *Panel {
	p := &Panel{fig: f, cfg: f.cfg, plot: newPlot(f.cfg), box: box}
	p.axes[surface.X] = newAxisState(f.cfg.XTick.Pad)
	p.axes[surface.Y] = newAxisState(f.cfg.YTick.Pad)
	for i := range p.spineVisible {
		p.spineVisible[i] = true
	}
	return p
}

func newAxisState(pad float64) axisState {
	return axisState{lo: math.Inf(1), hi: math.Inf(-1), pad: [2]float64{pad, pad}}
}

// baseFont is the configured typeface without a size.
func baseFont(cfg *style.Config) font.Font {
	return font.Font{
		Typeface: font.Typeface(cfg.Font.Typeface),
		Variant:  font.Variant(cfg.Font.Variant),
	}
}

func newPlot(cfg *style.Config) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = nil
	fnt := baseFont(cfg)

	p.Title.TextStyle.Font = font.From(fnt, vg.Points(cfg.Font.TitleSize))
	p.Title.Padding = vg.Points(cfg.Axes.TitlePad)
	p.Legend.TextStyle.Font = font.From(fnt, vg.Points(cfg.Font.LegendSize))
	p.Legend.Top = true
	p.Legend.ThumbnailWidth = vg.Points(2 * cfg.Font.LegendSize)

	styleAxis(&p.X, cfg, cfg.XTick, fnt)
	styleAxis(&p.Y, cfg, cfg.YTick, fnt)
	return p
}

func styleAxis(a *plot.Axis, cfg *style.Config, tick style.TickConfig, fnt font.Font) {
	a.Label.TextStyle.Font = font.From(fnt, vg.Points(cfg.Font.LabelSize))
	a.Label.Padding = vg.Points(cfg.Axes.LabelPad)
	a.Tick.Label.Font = font.From(fnt, vg.Points(cfg.Font.TickSize))
	a.LineStyle.Width = vg.Points(cfg.Axes.LineWidth)
	// gonum's own ticks only reserve room; drawTicks strokes the marks.
	a.Tick.LineStyle.Width = vg.Points(tick.MajorWidth)
	a.Tick.LineStyle.Color = color.Transparent
	a.Tick.Length = vg.Points(tick.MajorSize + tick.Pad)
	a.Padding = 0
}

// owner returns the panel holding the state of axis ax. Twins share the x
// axis of their host.
func (p *Panel) owner(ax surface.Axis) *Panel {
	if ax == surface.X && p.host != nil {
		return p.host
	}
	return p
}

func (p *Panel) plotAxis(ax surface.Axis) *plot.Axis {
	if ax == surface.X {
		return &p.owner(ax).plot.X
	}
	return &p.plot.Y
}

func (p *Panel) state(ax surface.Axis) *axisState {
	return &p.owner(ax).axes[ax]
}

// Limits returns the current axis range, (0, 1) for an empty panel.
func (p *Panel) Limits(ax surface.Axis) (lo, hi float64) {
	s := p.state(ax)
	if s.lo > s.hi {
		return 0, 1
	}
	return s.lo, s.hi
}

// SetLimits fixes the axis range; later artists no longer extend it.
func (p *Panel) SetLimits(ax surface.Axis, lo, hi float64) {
	s := p.state(ax)
	s.lo, s.hi, s.fixed = lo, hi, true
}

func (p *Panel) extend(xmin, xmax, ymin, ymax float64) {
	if s := p.state(surface.X); !s.fixed {
		s.lo, s.hi = math.Min(s.lo, xmin), math.Max(s.hi, xmax)
	}
	if s := p.state(surface.Y); !s.fixed {
		s.lo, s.hi = math.Min(s.lo, ymin), math.Max(s.hi, ymax)
	}
}

func (p *Panel) Scale(ax surface.Axis) surface.Scale { return p.state(ax).scale }

func (p *Panel) SetScale(ax surface.Axis, s surface.Scale) { p.state(ax).scale = s }

func (p *Panel) SetTickFormatter(ax surface.Axis, f surface.TickFormatter) {
	p.state(ax).formatter = f
}

// SetTickPadding sets the gap between one tick set and the tick labels.
// Labels clear whichever set reaches further from the spine.
func (p *Panel) SetTickPadding(ax surface.Axis, which surface.TickSet, pad float64) {
	p.state(ax).pad[which] = pad
}

func (p *Panel) ClearTicks(ax surface.Axis) { p.state(ax).cleared = true }

func (p *Panel) SetLabel(ax surface.Axis, txt string) {
	a := p.plotAxis(ax)
	a.Label.Text = txt
	a.Label.TextStyle.Handler = handlerFor(txt)
}

// LabelPadding returns the gap between an axis label and its tick labels.
func (p *Panel) LabelPadding(ax surface.Axis) float64 {
	return p.plotAxis(ax).Label.Padding.Points()
}

// SetTitle sets the centered title, or the left title when t.Left is set.
func (p *Panel) SetTitle(t surface.Title) {
	if t.Left {
		p.leftTitle = &t
		return
	}
	p.plot.Title.Text = t.Text
	p.plot.Title.TextStyle.Handler = handlerFor(t.Text)
	p.plot.Title.TextStyle.Font.Weight = xfont.WeightNormal
	if t.Bold {
		p.plot.Title.TextStyle.Font.Weight = xfont.WeightBold
	}
	if t.Pad > 0 {
		p.plot.Title.Padding = vg.Points(t.Pad)
	}
}

func (p *Panel) SetSpineVisible(side surface.Side, visible bool) {
	p.spineVisible[side] = visible
}

func (p *Panel) SetSpineOffset(side surface.Side, points float64) {
	p.spineOffset[side] = points
}

// Position returns the data area in figure fractions. Twins report the box
// of their host.
func (p *Panel) Position() surface.Box { return p.owner(surface.X).box }

func (p *Panel) SetPosition(b surface.Box) { p.owner(surface.X).box = b }

// Twin returns a panel sharing this panel's x axis and data area, with its
// y axis drawn on the right.
func (p *Panel) Twin() surface.Surface {
	host := p.owner(surface.X)
	t := &Panel{fig: p.fig, cfg: p.cfg, plot: newPlot(p.cfg), host: host}
	t.axes[surface.X] = newAxisState(p.cfg.XTick.Pad)
	t.axes[surface.Y] = newAxisState(p.cfg.YTick.Pad)
	for i := range t.spineVisible {
		t.spineVisible[i] = true
	}
	host.twins = append(host.twins, t)
	return t
}

func (p *Panel) AddGrid(g surface.GridLines) {
	p.add(g.Z, gridArtist{lines: g})
}

// AddLine adds a polyline. A nil color takes the next color of the style
// palette.
func (p *Panel) AddLine(l surface.Line) error {
	if len(l.X) != len(l.Y) {
		return errors.New(errors.ErrCodeInvalidInput, "x and y must have the same length, got %d and %d", len(l.X), len(l.Y))
	}
	if l.Color == nil {
		c, err := p.cycleColor()
		if err != nil {
			return err
		}
		l.Color = c
	}
	a, err := newLineArtist(l, p.cfg)
	if err != nil {
		return err
	}
	if len(l.X) > 0 {
		p.extend(a.DataRange())
	}
	p.add(l.Z, a)
	return nil
}

func (p *Panel) cycleColor() (color.Color, error) {
	colors, err := palette.Colors(p.cfg.Palette)
	if err != nil {
		return nil, err
	}
	c := colors[p.nextColor%len(colors)]
	p.nextColor++
	return c, nil
}

// AddText places text in data coordinates. Text does not change limits.
func (p *Panel) AddText(t surface.Text) error {
	if err := plotter.CheckFloats(t.X, t.Y); err != nil {
		return err
	}
	p.add(0, textArtist{t: t, sty: p.textStyle(t.Text, t.Size, t.Color, t.HAlign, t.VAlign)})
	return nil
}

func (p *Panel) AddAnnotation(a surface.Annotation) {
	p.annotations = append(p.annotations, a)
}

func (p *Panel) AddEllipse(e surface.Ellipse) error {
	if err := plotter.CheckFloats(e.CX, e.CY, e.Width, e.Height, e.Angle); err != nil {
		return err
	}
	a := newEllipseArtist(e, p.cfg)
	p.extend(plotter.XYRange(a.outline))
	p.add(1, a)
	return nil
}

// AddImage draws img as a heat map with one unit per cell.
func (p *Panel) AddImage(img surface.Image) error {
	if len(img.Data) == 0 || len(img.Data[0]) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "image has no data")
	}
	for i, row := range img.Data {
		if len(row) != len(img.Data[0]) {
			return errors.New(errors.ErrCodeInvalidInput, "image row %d has %d values, want %d", i, len(row), len(img.Data[0]))
		}
	}
	vmin, vmax := img.VMin, img.VMax
	if vmax <= vmin {
		vmax = vmin + 1
	}
	cm, err := colorMap(img.Colormap, vmin, vmax)
	if err != nil {
		return err
	}
	pal := cm.Palette(256)
	colors := pal.Colors()
	h := plotter.NewHeatMap(imageGrid{data: img.Data, lower: img.OriginLower}, pal)
	h.Min, h.Max = vmin, vmax
	h.Underflow, h.Overflow = colors[0], colors[len(colors)-1]
	p.extend(h.DataRange())
	p.add(0, h)
	if img.Colorbar {
		p.colorbar = cm
	}
	return nil
}

// AddLegend appends entries to the panel legend, drawn top right.
func (p *Panel) AddLegend(entries []surface.LegendEntry) {
	for _, e := range entries {
		thumb, err := newHandleArtist(e.Handle, p.cfg)
		if err != nil {
			continue
		}
		p.plot.Legend.Add(e.Label, thumb)
	}
}

func (p *Panel) add(z int, pl plot.Plotter) {
	p.artists = append(p.artists, artist{z: z, plotter: pl})
}

// textStyle derives a text style from the tick label style.
func (p *Panel) textStyle(txt string, size float64, c color.Color, h surface.HAlign, v surface.VAlign) text.Style {
	sty := p.plot.Y.Tick.Label
	if size <= 0 {
		size = p.cfg.Font.Size
	}
	sty.Font = font.From(baseFont(p.cfg), vg.Points(size))
	if c != nil {
		sty.Color = c
	}
	sty.XAlign = xAlign(h)
	sty.YAlign = yAlign(v)
	sty.Handler = handlerFor(txt)
	return sty
}

var latexHandler = text.Latex{Fonts: font.DefaultCache}

// handlerFor renders "$...$" strings as mathtext.
func handlerFor(s string) text.Handler {
	if len(s) > 1 && strings.HasPrefix(s, "$") && strings.HasSuffix(s, "$") {
		return latexHandler
	}
	return plot.DefaultTextHandler
}

func xAlign(h surface.HAlign) text.XAlignment {
	switch h {
	case surface.AlignLeft:
		return text.XLeft
	case surface.AlignRight:
		return text.XRight
	default:
		return text.XCenter
	}
}

func yAlign(v surface.VAlign) text.YAlignment {
	switch v {
	case surface.AlignTop:
		return text.YTop
	case surface.AlignBottom:
		return text.YBottom
	default:
		return text.YCenter
	}
}
