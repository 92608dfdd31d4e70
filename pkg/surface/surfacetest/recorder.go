// Package surfacetest provides a recording [surface.Surface] for tests.
package surfacetest

import (
	"fmt"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// PadKey identifies a tick padding setting.
type PadKey struct {
	Axis  surface.Axis
	Which surface.TickSet
}

// Recorder is an in-memory Surface that stores every mutation it receives.
// Fields are exported so tests can assert on them directly.
type Recorder struct {
	Name string

	Lims         map[surface.Axis][2]float64
	Scales       map[surface.Axis]surface.Scale
	Formatters   map[surface.Axis]surface.TickFormatter
	Pads         map[PadKey]float64
	ClearedTicks map[surface.Axis]bool
	Labels       map[surface.Axis]string
	LabelPads    map[surface.Axis]float64

	Title     surface.Title
	LeftTitle surface.Title

	SpineVisible map[surface.Side]bool
	SpineOffset  map[surface.Side]float64

	Box   surface.Box
	Twins []*Recorder

	Grids       []surface.GridLines
	Lines       []surface.Line
	Texts       []surface.Text
	Annotations []surface.Annotation
	Ellipses    []surface.Ellipse
	Images      []surface.Image
	Legends     [][]surface.LegendEntry

	// Err, when set, is returned by every Add* method that can fail.
	Err error
}

// New returns a recorder with unit limits, linear scales, all spines
// visible and a default 4pt label padding.
func New(name string) *Recorder {
	r := &Recorder{
		Name:         name,
		Lims:         map[surface.Axis][2]float64{surface.X: {0, 1}, surface.Y: {0, 1}},
		Scales:       map[surface.Axis]surface.Scale{},
		Formatters:   map[surface.Axis]surface.TickFormatter{},
		Pads:         map[PadKey]float64{},
		ClearedTicks: map[surface.Axis]bool{},
		Labels:       map[surface.Axis]string{},
		LabelPads:    map[surface.Axis]float64{surface.X: 4, surface.Y: 4},
		SpineVisible: map[surface.Side]bool{},
		SpineOffset:  map[surface.Side]float64{},
		Box:          surface.Box{X0: 0.125, Y0: 0.11, W: 0.775, H: 0.77},
	}
	for _, s := range []surface.Side{surface.Left, surface.Right, surface.Top, surface.Bottom} {
		r.SpineVisible[s] = true
	}
	return r
}

// Grid builds rows×cols recorders named "r<i>c<j>" and returns them both
// as recorders and as a grid collection.
func Grid(rows, cols int) ([][]*Recorder, surface.Collection) {
	recs := make([][]*Recorder, rows)
	surfs := make([][]surface.Surface, rows)
	for i := range rows {
		recs[i] = make([]*Recorder, cols)
		surfs[i] = make([]surface.Surface, cols)
		for j := range cols {
			recs[i][j] = New(fmt.Sprintf("r%dc%d", i, j))
			surfs[i][j] = recs[i][j]
		}
	}
	return recs, surface.Grid(surfs)
}

// Sequence builds n recorders named "s<i>" as a sequence collection.
func Sequence(n int) ([]*Recorder, surface.Collection) {
	recs := make([]*Recorder, n)
	surfs := make([]surface.Surface, n)
	for i := range n {
		recs[i] = New(fmt.Sprintf("s%d", i))
		surfs[i] = recs[i]
	}
	return recs, surface.Sequence(surfs...)
}

func (r *Recorder) Limits(ax surface.Axis) (float64, float64) {
	l := r.Lims[ax]
	return l[0], l[1]
}

func (r *Recorder) SetLimits(ax surface.Axis, lo, hi float64) {
	r.Lims[ax] = [2]float64{lo, hi}
}

func (r *Recorder) Scale(ax surface.Axis) surface.Scale { return r.Scales[ax] }

func (r *Recorder) SetScale(ax surface.Axis, s surface.Scale) { r.Scales[ax] = s }

func (r *Recorder) SetTickFormatter(ax surface.Axis, f surface.TickFormatter) {
	r.Formatters[ax] = f
}

func (r *Recorder) SetTickPadding(ax surface.Axis, which surface.TickSet, pad float64) {
	r.Pads[PadKey{ax, which}] = pad
}

func (r *Recorder) ClearTicks(ax surface.Axis) { r.ClearedTicks[ax] = true }

func (r *Recorder) SetLabel(ax surface.Axis, text string) { r.Labels[ax] = text }

func (r *Recorder) LabelPadding(ax surface.Axis) float64 { return r.LabelPads[ax] }

func (r *Recorder) SetTitle(t surface.Title) {
	if t.Left {
		r.LeftTitle = t
		return
	}
	r.Title = t
}

func (r *Recorder) SetSpineVisible(side surface.Side, visible bool) {
	r.SpineVisible[side] = visible
}

func (r *Recorder) SetSpineOffset(side surface.Side, points float64) {
	r.SpineOffset[side] = points
}

func (r *Recorder) Position() surface.Box { return r.Box }

func (r *Recorder) SetPosition(b surface.Box) { r.Box = b }

// Twin records and returns a new recorder sharing this one's x limits and
// position.
func (r *Recorder) Twin() surface.Surface {
	t := New(r.Name + "-twin")
	t.Lims[surface.X] = r.Lims[surface.X]
	t.Box = r.Box
	r.Twins = append(r.Twins, t)
	return t
}

func (r *Recorder) AddGrid(g surface.GridLines) { r.Grids = append(r.Grids, g) }

func (r *Recorder) AddLine(l surface.Line) error {
	if r.Err != nil {
		return r.Err
	}
	r.Lines = append(r.Lines, l)
	return nil
}

func (r *Recorder) AddText(t surface.Text) error {
	if r.Err != nil {
		return r.Err
	}
	r.Texts = append(r.Texts, t)
	return nil
}

func (r *Recorder) AddAnnotation(a surface.Annotation) {
	r.Annotations = append(r.Annotations, a)
}

func (r *Recorder) AddEllipse(e surface.Ellipse) error {
	if r.Err != nil {
		return r.Err
	}
	r.Ellipses = append(r.Ellipses, e)
	return nil
}

func (r *Recorder) AddImage(img surface.Image) error {
	if r.Err != nil {
		return r.Err
	}
	r.Images = append(r.Images, img)
	return nil
}

func (r *Recorder) AddLegend(entries []surface.LegendEntry) {
	r.Legends = append(r.Legends, entries)
}

var _ surface.Surface = (*Recorder)(nil)
