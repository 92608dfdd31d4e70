package plotfig

import (
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/surface"
)

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	fig, err := NewFigure(1, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	return fig.Panel(0, 0)
}

func TestPanelLimits(t *testing.T) {
	p := newTestPanel(t)
	if lo, hi := p.Limits(surface.X); lo != 0 || hi != 1 {
		t.Errorf("empty Limits(X) = %v, %v, want 0, 1", lo, hi)
	}

	if err := p.AddLine(surface.Line{X: []float64{1, 3}, Y: []float64{-2, 5}}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddLine(surface.Line{X: []float64{0, 2}, Y: []float64{0, 1}}); err != nil {
		t.Fatal(err)
	}
	if lo, hi := p.Limits(surface.X); lo != 0 || hi != 3 {
		t.Errorf("Limits(X) = %v, %v, want 0, 3", lo, hi)
	}
	if lo, hi := p.Limits(surface.Y); lo != -2 || hi != 5 {
		t.Errorf("Limits(Y) = %v, %v, want -2, 5", lo, hi)
	}

	p.SetLimits(surface.Y, -1, 1)
	if err := p.AddLine(surface.Line{X: []float64{10}, Y: []float64{10}}); err != nil {
		t.Fatal(err)
	}
	if lo, hi := p.Limits(surface.Y); lo != -1 || hi != 1 {
		t.Errorf("fixed Limits(Y) = %v, %v, want -1, 1", lo, hi)
	}
	if _, hi := p.Limits(surface.X); hi != 10 {
		t.Errorf("Limits(X) upper = %v, want 10", hi)
	}
}

func TestPanelTwin(t *testing.T) {
	p := newTestPanel(t)
	tw := p.Twin()

	tw.SetLimits(surface.X, 2, 4)
	if lo, hi := p.Limits(surface.X); lo != 2 || hi != 4 {
		t.Errorf("host Limits(X) = %v, %v, want shared 2, 4", lo, hi)
	}
	tw.SetLimits(surface.Y, 0, 100)
	if _, hi := p.Limits(surface.Y); hi == 100 {
		t.Error("twin y limits leaked into host")
	}

	b := surface.Box{X0: 0.2, Y0: 0.2, W: 0.5, H: 0.5}
	tw.SetPosition(b)
	if p.Position() != b {
		t.Errorf("host Position() = %+v, want %+v", p.Position(), b)
	}
	if len(p.twins) != 1 {
		t.Errorf("host has %d twins, want 1", len(p.twins))
	}
}

func TestAddLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line surface.Line
		code errors.Code
	}{
		{"length mismatch", surface.Line{X: []float64{1, 2}, Y: []float64{1}}, errors.ErrCodeInvalidInput},
		{"unknown marker", surface.Line{X: []float64{1}, Y: []float64{1}, Marker: "*"}, errors.ErrCodeUnsupported},
		{"unknown line style", surface.Line{X: []float64{1}, Y: []float64{1}, Style: "~"}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestPanel(t).AddLine(tt.line)
			if !errors.Is(err, tt.code) {
				t.Errorf("AddLine error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestAddLineNaN(t *testing.T) {
	err := newTestPanel(t).AddLine(surface.Line{X: []float64{1, math.NaN()}, Y: []float64{1, 2}})
	if err == nil {
		t.Error("AddLine should reject NaN values")
	}
}

func TestAddLineColorCycle(t *testing.T) {
	p := newTestPanel(t)
	for range 2 {
		if err := p.AddLine(surface.Line{X: []float64{0, 1}, Y: []float64{0, 1}}); err != nil {
			t.Fatal(err)
		}
	}
	first := p.artists[0].plotter.(lineArtist).line.LineStyle.Color
	second := p.artists[1].plotter.(lineArtist).line.LineStyle.Color
	if first == second {
		t.Errorf("consecutive lines share color %v", first)
	}
}

func TestSortedArtists(t *testing.T) {
	p := newTestPanel(t)
	p.AddGrid(surface.GridLines{Axis: surface.X, Z: -10000})
	if err := p.AddLine(surface.Line{X: []float64{0}, Y: []float64{0}, Color: color.Black, Z: 100}); err != nil {
		t.Fatal(err)
	}
	p.AddGrid(surface.GridLines{Axis: surface.Y, Which: surface.Minor, Z: -20000})

	arts := p.sortedArtists()
	want := []int{-20000, -10000, 100}
	for i, a := range arts {
		if a.z != want[i] {
			t.Errorf("artist %d z = %d, want %d", i, a.z, want[i])
		}
	}
}

func TestAddImage(t *testing.T) {
	tests := []struct {
		name string
		img  surface.Image
		code errors.Code
	}{
		{"empty", surface.Image{}, errors.ErrCodeInvalidInput},
		{"ragged", surface.Image{Data: [][]float64{{1, 2}, {3}}}, errors.ErrCodeInvalidInput},
		{"unknown colormap", surface.Image{Data: [][]float64{{1}}, Colormap: "viridis"}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestPanel(t).AddImage(tt.img)
			if !errors.Is(err, tt.code) {
				t.Errorf("AddImage error = %v, want %s", err, tt.code)
			}
		})
	}

	p := newTestPanel(t)
	img := surface.Image{
		Data:     [][]float64{{0, 1, 2}, {3, 4, 5}},
		VMin:     0,
		VMax:     5,
		Colormap: "bwr",
		Colorbar: true,
	}
	if err := p.AddImage(img); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if p.colorbar == nil {
		t.Error("colorbar not recorded")
	}
	if lo, hi := p.Limits(surface.X); lo != -0.5 || hi != 2.5 {
		t.Errorf("Limits(X) = %v, %v, want -0.5, 2.5", lo, hi)
	}
}

func TestImageGridOrigin(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	lower := imageGrid{data: data, lower: true}
	upper := imageGrid{data: data}
	if got := lower.Z(0, 0); got != 1 {
		t.Errorf("lower origin Z(0, 0) = %v, want 1", got)
	}
	if got := upper.Z(0, 0); got != 3 {
		t.Errorf("upper origin Z(0, 0) = %v, want 3", got)
	}
}

func TestTicker(t *testing.T) {
	s := newAxisState(0)
	s.formatter = func(v float64) string { return "v" }
	for _, tick := range s.ticker(false).Ticks(0, 10) {
		if !tick.IsMinor() && tick.Label != "v" {
			t.Errorf("major tick %v label = %q, want formatted", tick.Value, tick.Label)
		}
	}

	s.cleared = true
	if ticks := s.ticker(false).Ticks(0, 10); len(ticks) != 0 {
		t.Errorf("cleared ticker returned %d ticks", len(ticks))
	}
}

func TestHandlerFor(t *testing.T) {
	if handlerFor("$\\alpha$") != latexHandler {
		t.Error("dollar-delimited text should use the latex handler")
	}
	if handlerFor("rate ($)") == latexHandler {
		t.Error("plain text should not use the latex handler")
	}
}

func TestSetTitle(t *testing.T) {
	p := newTestPanel(t)
	p.SetTitle(surface.Title{Text: "A  ", Left: true, Bold: true})
	p.SetTitle(surface.Title{Text: "center"})
	if p.leftTitle == nil || p.leftTitle.Text != "A  " {
		t.Errorf("left title = %+v", p.leftTitle)
	}
	if p.plot.Title.Text != "center" {
		t.Errorf("title = %q, want center", p.plot.Title.Text)
	}
}
