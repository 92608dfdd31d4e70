package preview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figstyle/pkg/render/plotfig"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// dotEncoder renders a white image with one black pixel at dot.
type dotEncoder struct {
	size image.Point
	dot  image.Point
	err  error

	format string
	dpi    float64
}

func (e *dotEncoder) Encode(w io.Writer, format string, dpi float64) error {
	e.format, e.dpi = format, dpi
	if e.err != nil {
		return e.err
	}
	img := image.NewRGBA(image.Rectangle{Max: e.size})
	for y := range e.size.Y {
		for x := range e.size.X {
			img.Set(x, y, color.White)
		}
	}
	img.Set(e.dot.X, e.dot.Y, color.Black)
	return png.Encode(w, img)
}

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		dot     image.Point
		clipped bool
	}{
		{"clean", image.Pt(10, 5), false},
		{"left edge", image.Pt(0, 5), true},
		{"right edge", image.Pt(19, 5), true},
		{"top edge", image.Pt(10, 0), true},
		{"bottom edge", image.Pt(10, 9), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			dir := t.TempDir()
			enc := &dotEncoder{size: image.Pt(20, 10), dot: tt.dot}

			res, err := Check(context.Background(), enc, Options{Dir: dir, Logger: testLogger(&buf)})
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if res.Clipped != tt.clipped {
				t.Errorf("Clipped = %v, want %v", res.Clipped, tt.clipped)
			}
			if warned := strings.Contains(buf.String(), "clipped"); warned != tt.clipped {
				t.Errorf("warning logged = %v, want %v", warned, tt.clipped)
			}
			if enc.format != "png" || enc.dpi != DefaultDPI {
				t.Errorf("encoded as %s at %v dpi, want png at %v", enc.format, enc.dpi, DefaultDPI)
			}
			if entries, _ := os.ReadDir(dir); len(entries) != 0 {
				t.Errorf("temporary file survived: %v", entries)
			}
		})
	}
}

func TestCheckEncodeError(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	_, err := Check(context.Background(), &dotEncoder{err: boom}, Options{Dir: dir, Logger: testLogger(&bytes.Buffer{})})
	if !errors.Is(err, boom) {
		t.Errorf("Check error = %v, want wrapped encoder error", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("temporary file survived a failed render: %v", entries)
	}
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	enc := &dotEncoder{size: image.Pt(2, 2)}
	if _, err := Check(ctx, enc, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Check error = %v, want context.Canceled", err)
	}
	if enc.format != "" {
		t.Error("canceled check should not render")
	}
}

func TestCheckFigure(t *testing.T) {
	fig, err := plotfig.NewFigure(1, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := fig.Panel(0, 0)
	if err := p.AddLine(surface.Line{X: []float64{0, 10}, Y: []float64{0, 100}}); err != nil {
		t.Fatal(err)
	}
	p.SetLabel(surface.Y, "rate (Hz)")
	opts := Options{DPI: 50, Dir: t.TempDir(), Logger: testLogger(&bytes.Buffer{})}

	res, err := Check(context.Background(), fig, opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Clipped {
		t.Error("default layout reported as clipped")
	}

	b := p.Position()
	b.X0 = 0
	p.SetPosition(b)
	if res, err = Check(context.Background(), fig, opts); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Clipped {
		t.Error("panel at the figure edge not reported as clipped")
	}
}

func TestBackdrop(t *testing.T) {
	res := &Result{Image: image.NewRGBA(image.Rect(0, 0, 40, 20))}
	var buf bytes.Buffer
	if err := res.Backdrop(&buf); err != nil {
		t.Fatalf("Backdrop: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	side := BackdropInches * BackdropDPI
	if got := img.Bounds(); got.Dx() != side || got.Dy() != side {
		t.Errorf("backdrop size = %v, want %d×%d", got, side, side)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != g || g != b || r == 0xffff || r == 0 {
		t.Errorf("corner pixel = %v, want mid gray", img.At(0, 0))
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		src  image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 200, 100), image.Rect(0, 25, 100, 75)},
		{image.Rect(0, 0, 50, 100), image.Rect(25, 0, 75, 100)},
		{image.Rect(0, 0, 10, 10), image.Rect(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		if got := fitRect(tt.src, 100); got != tt.want {
			t.Errorf("fitRect(%v) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
