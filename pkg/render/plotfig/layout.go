package plotfig

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// TightOptions controls [TightLayout]. Pads are in units of the base font
// size.
type TightOptions struct {
	// Pad is the space between the figure edge and the outermost
	// decorations. Zero means 2 points.
	Pad float64
	// HPad and WPad are the space between neighbouring panels.
	HPad, WPad float64
	// Rect is the (left, bottom, right, top) region of the figure the
	// panels are fitted into. The zero value means the whole figure.
	Rect [4]float64
}

// DefaultTightOptions returns one font size of padding between panels over
// the whole figure.
func DefaultTightOptions() TightOptions {
	return TightOptions{HPad: 1, WPad: 1, Rect: [4]float64{0, 0, 1, 1}}
}

// margins are the decoration extents around a data area in points.
type margins struct {
	left, right, top, bottom vg.Length
}

// TightLayout repositions all panels so that their decorations fit the
// figure without overlapping. Panels in one column share their x position
// and width, panels in one row their y position and height.
func TightLayout(fig *Figure, opts TightOptions) error {
	fs := vg.Points(fig.cfg.Font.Size)
	pad := vg.Length(opts.Pad) * fs
	if opts.Pad <= 0 {
		pad = 2
	}
	hpad, wpad := vg.Length(opts.HPad)*fs, vg.Length(opts.WPad)*fs
	rect := opts.Rect
	if rect == ([4]float64{}) {
		rect = [4]float64{0, 0, 1, 1}
	}

	w, h := vg.Length(fig.width)*vg.Inch, vg.Length(fig.height)*vg.Inch
	full := vg.Rectangle{Max: vg.Point{X: w, Y: h}}

	left, right := make([]vg.Length, fig.cols), make([]vg.Length, fig.cols)
	top, bottom := make([]vg.Length, fig.rows), make([]vg.Length, fig.rows)
	for i, row := range fig.panels {
		for j, p := range row {
			m := p.margins(full)
			left[j], right[j] = max(left[j], m.left), max(right[j], m.right)
			top[i], bottom[i] = max(top[i], m.top), max(bottom[i], m.bottom)
		}
	}

	availW := vg.Length(rect[2]-rect[0])*w - 2*pad - vg.Length(fig.cols-1)*wpad
	availH := vg.Length(rect[3]-rect[1])*h - 2*pad - vg.Length(fig.rows-1)*hpad
	for j := range fig.cols {
		availW -= left[j] + right[j]
	}
	for i := range fig.rows {
		availH -= top[i] + bottom[i]
	}
	cellW, cellH := availW/vg.Length(fig.cols), availH/vg.Length(fig.rows)
	if cellW <= 0 || cellH <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"figure of %.3g×%.3g in is too small for its decorations", fig.width, fig.height)
	}

	y := vg.Length(rect[3])*h - pad
	for i, row := range fig.panels {
		y -= top[i] + cellH
		x := vg.Length(rect[0])*w + pad
		for j, p := range row {
			x += left[j]
			p.SetPosition(surface.Box{
				X0: float64(x / w), Y0: float64(y / h),
				W: float64(cellW / w), H: float64(cellH / h),
			})
			x += cellW + right[j] + wpad
		}
		y -= bottom[i] + hpad
	}
	return nil
}

// margins measures how far the panel's decorations reach past its data
// area when drawn into a figure of size full.
func (p *Panel) margins(full vg.Rectangle) margins {
	q := p.build()
	box := p.dataRect(full)
	outer := outerRect(q, nil, box)
	m := margins{
		left:   box.Min.X - outer.Min.X,
		right:  outer.Max.X - box.Max.X,
		top:    outer.Max.Y - box.Max.Y,
		bottom: box.Min.Y - outer.Min.Y,
	}

	dc := draw.Canvas{Rectangle: box}
	var shift vg.Length
	for _, t := range p.twins {
		shift = t.drawTwin(dc, false, shift)
	}
	if p.colorbar != nil {
		shift = p.drawColorbar(dc, shift, false)
	}
	m.right = max(m.right, shift)

	for _, o := range p.overlays(outer, box) {
		r := o.bounds()
		m.left = max(m.left, box.Min.X-r.Min.X)
		m.right = max(m.right, r.Max.X-box.Max.X)
		m.top = max(m.top, r.Max.Y-box.Max.Y)
		m.bottom = max(m.bottom, box.Min.Y-r.Min.Y)
	}
	return m
}
