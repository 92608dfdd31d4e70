package plotfig

import (
	"testing"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/surface"
)

func labelledFigure(t *testing.T, rows, cols int) *Figure {
	t.Helper()
	fig, err := NewFigure(rows, cols, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range fig.Panels() {
		if err := p.AddLine(surface.Line{X: []float64{0, 100}, Y: []float64{0, 1000}}); err != nil {
			t.Fatal(err)
		}
		p.SetLabel(surface.X, "time (s)")
		p.SetLabel(surface.Y, "rate (Hz)")
		p.SetTitle(surface.Title{Text: "A", Left: true, Bold: true})
	}
	return fig
}

func TestTightLayout(t *testing.T) {
	fig := labelledFigure(t, 2, 2)
	if err := TightLayout(fig, DefaultTightOptions()); err != nil {
		t.Fatalf("TightLayout: %v", err)
	}

	for i, p := range fig.Panels() {
		b := p.Position()
		if b.X0 <= 0 || b.Y0 <= 0 || b.X0+b.W >= 1 || b.Y0+b.H >= 1 {
			t.Errorf("panel %d box %+v leaves the figure", i, b)
		}
		if b.W <= 0 || b.H <= 0 {
			t.Errorf("panel %d box %+v is empty", i, b)
		}
	}

	a, b := fig.Panel(0, 0).Position(), fig.Panel(0, 1).Position()
	if a.X0+a.W >= b.X0 {
		t.Errorf("columns overlap: %+v, %+v", a, b)
	}
	if a.W != b.W || a.H != b.H {
		t.Errorf("cells differ in size: %+v, %+v", a, b)
	}
	c := fig.Panel(1, 0).Position()
	if c.Y0+c.H >= a.Y0 {
		t.Errorf("rows overlap: %+v, %+v", a, c)
	}
	if c.X0 != a.X0 {
		t.Errorf("column x differs: %v, %v", a.X0, c.X0)
	}
}

func TestTightLayoutRect(t *testing.T) {
	fig := labelledFigure(t, 1, 1)
	opts := DefaultTightOptions()
	opts.Rect = [4]float64{0, 0, 0.5, 1}
	if err := TightLayout(fig, opts); err != nil {
		t.Fatal(err)
	}
	if b := fig.Panel(0, 0).Position(); b.X0+b.W >= 0.5 {
		t.Errorf("box %+v exceeds rect", b)
	}
}

func TestTightLayoutTooSmall(t *testing.T) {
	fig := labelledFigure(t, 1, 3)
	fig.SetWidth(0.3)
	err := TightLayout(fig, DefaultTightOptions())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("TightLayout error = %v, want INVALID_INPUT", err)
	}
}

func TestMarginsGrowWithTwin(t *testing.T) {
	fig := labelledFigure(t, 1, 1)
	p := fig.Panel(0, 0)
	before := p.margins(figureRect(fig))
	tw := p.Twin()
	if err := tw.AddLine(surface.Line{X: []float64{0, 100}, Y: []float64{0, 5}}); err != nil {
		t.Fatal(err)
	}
	tw.SetLabel(surface.Y, "count")
	after := p.margins(figureRect(fig))
	if after.right <= before.right {
		t.Errorf("right margin %v did not grow past %v with a twin axis", after.right, before.right)
	}
}
