package plotfig

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// stroke is one stroked path with the state it was drawn in.
type stroke struct {
	path  vg.Path
	width vg.Length
	color color.Color
}

// strokeCanvas is a vg.Canvas that keeps every stroked path.
type strokeCanvas struct {
	width   vg.Length
	color   color.Color
	strokes []stroke
}

func (c *strokeCanvas) SetLineWidth(w vg.Length) { c.width = w }
func (c *strokeCanvas) SetLineDash([]vg.Length, vg.Length) {}
func (c *strokeCanvas) SetColor(col color.Color) { c.color = col }
func (c *strokeCanvas) Rotate(float64) {}
func (c *strokeCanvas) Translate(vg.Point) {}
func (c *strokeCanvas) Scale(float64, float64) {}
func (c *strokeCanvas) Push() {}
func (c *strokeCanvas) Pop() {}
func (c *strokeCanvas) Fill(vg.Path) {}
func (c *strokeCanvas) FillString(font.Face, vg.Point, string) {}
func (c *strokeCanvas) DrawImage(vg.Rectangle, image.Image) {}

func (c *strokeCanvas) Stroke(p vg.Path) {
	c.strokes = append(c.strokes, stroke{path: p, width: c.width, color: c.color})
}

// visible reports whether s leaves a mark.
func (s stroke) visible() bool {
	if s.width <= 0 {
		return false
	}
	if s.color == nil {
		return true
	}
	_, _, _, a := s.color.RGBA()
	return a > 0
}

// drawStrokes draws fig onto a recording canvas.
func drawStrokes(fig *Figure) []stroke {
	c := &strokeCanvas{}
	fig.Draw(draw.Canvas{Canvas: c, Rectangle: figureRect(fig)})
	return c.strokes
}

// leftTicks returns the lengths of the visible horizontal segments ending
// left of the data area, and the x where each ends.
func leftTicks(strokes []stroke, box vg.Rectangle) (lengths, ends []float64) {
	for _, s := range strokes {
		if !s.visible() || len(s.path) != 2 {
			continue
		}
		a, b := s.path[0].Pos, s.path[1].Pos
		if a.Y != b.Y || max(a.X, b.X) > box.Min.X {
			continue
		}
		lengths = append(lengths, math.Abs(float64(b.X-a.X)))
		ends = append(ends, float64(max(a.X, b.X)))
	}
	return lengths, ends
}

func TestTickLength(t *testing.T) {
	tests := []struct {
		name  string
		major float64
		minor float64
	}{
		{"sheet padding", -1, -1},
		{"tight major padding", 0.5, -1},
		{"wide minor padding", -1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPanel(t)
			if err := p.AddLine(surface.Line{X: []float64{0, 10}, Y: []float64{0, 10}}); err != nil {
				t.Fatal(err)
			}
			if tt.major >= 0 {
				p.SetTickPadding(surface.Y, surface.Major, tt.major)
			}
			if tt.minor >= 0 {
				p.SetTickPadding(surface.Y, surface.Minor, tt.minor)
			}

			cfg := p.cfg.YTick
			box := p.dataRect(figureRect(p.fig))
			lengths, ends := leftTicks(drawStrokes(p.fig), box)
			if len(lengths) == 0 {
				t.Fatal("no tick marks drawn on the left axis")
			}
			spine := float64(box.Min.X - p.plot.Y.LineStyle.Width/2)
			majors := 0
			for i, l := range lengths {
				switch {
				case math.Abs(l-cfg.MajorSize) < 1e-6:
					majors++
				case math.Abs(l-cfg.MinorSize) < 1e-6:
				default:
					t.Errorf("tick length = %.2fpt, want %.2f or %.2f", l, cfg.MajorSize, cfg.MinorSize)
				}
				if math.Abs(ends[i]-spine) > 1e-6 {
					t.Errorf("tick ends at x=%.2f, want spine at %.2f", ends[i], spine)
				}
			}
			if majors == 0 {
				t.Errorf("no major ticks among %v", lengths)
			}
		})
	}
}

func TestLabelOffset(t *testing.T) {
	p := newTestPanel(t)
	cfg := p.cfg.YTick
	if got, want := p.labelOffset(surface.Y), vg.Points(cfg.MajorSize+cfg.Pad); got != want {
		t.Errorf("default offset = %v, want %v", got, want)
	}
	p.SetTickPadding(surface.Y, surface.Major, 1)
	p.SetTickPadding(surface.Y, surface.Minor, 1)
	if got, want := p.labelOffset(surface.Y), vg.Points(cfg.MajorSize+1); got != want {
		t.Errorf("tight padding: offset = %v, want %v", got, want)
	}
	p.SetTickPadding(surface.Y, surface.Minor, 20)
	if got, want := p.labelOffset(surface.Y), vg.Points(cfg.MinorSize+20); got != want {
		t.Errorf("minor padding: offset = %v, want %v", got, want)
	}
}

func TestLogScaleClipsNonPositive(t *testing.T) {
	var s logScale
	if got, want := s.Normalize(1, 100, 10), (plot.LogScale{}).Normalize(1, 100, 10); got != want {
		t.Errorf("Normalize(10) = %v, want %v", got, want)
	}
	for _, x := range []float64{0, -5} {
		got := s.Normalize(1, 100, x)
		if math.IsNaN(got) || math.IsInf(got, 0) || got > -10 {
			t.Errorf("Normalize(%v) = %v, want far below the axis", x, got)
		}
	}
}

func TestLogAxisNonPositiveData(t *testing.T) {
	fig, err := NewFigure(1, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := fig.Panel(0, 0)
	red := color.RGBA{R: 255, A: 255}
	if err := p.AddLine(surface.Line{X: []float64{0, 1, 2}, Y: []float64{0, 10, 100}, Color: red, Marker: surface.Circle}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddText(surface.Text{X: 1, Y: 0, Text: "1 s"}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddEllipse(surface.Ellipse{CX: 1, CY: 0, Width: 1, Height: 4}); err != nil {
		t.Fatal(err)
	}
	p.AddGrid(surface.GridLines{Axis: surface.Y, Which: surface.Minor, Color: color.Gray{Y: 200}, Width: 0.5})
	p.SetScale(surface.Y, surface.Log)
	p.SetLimits(surface.Y, 1, 100)

	strokes := drawStrokes(fig)
	box := p.dataRect(figureRect(fig))
	for _, s := range strokes {
		if s.color != red {
			continue
		}
		for _, c := range s.path {
			if c.Pos.Y < box.Min.Y-1e-6 {
				t.Errorf("line point %v below the data area %v", c.Pos, box)
			}
		}
	}

	for _, format := range []string{FormatSVG, FormatPNG} {
		if _, err := fig.Bytes(format, 30); err != nil {
			t.Errorf("Bytes(%s): %v", format, err)
		}
	}
}

func TestInvertedLimits(t *testing.T) {
	fig, err := NewFigure(1, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := fig.Panel(0, 0)
	p.SetLimits(surface.Y, 100, 1)
	p.SetScale(surface.Y, surface.Log)
	tw := p.Twin()
	tw.SetLimits(surface.Y, 5, -5)
	if _, err := fig.Bytes(FormatSVG, 0); err != nil {
		t.Fatalf("Bytes: %v", err)
	}
}
