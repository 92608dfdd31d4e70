// Package preview checks a rendered figure for content touching its edge.
//
// [Check] renders the figure to a high-resolution PNG in a temporary file,
// reads it back and inspects the outermost rows and columns. A figure with
// ink on its border most likely has tick labels or titles cut off by the
// page. The temporary file is unique per call and removed before Check
// returns, so previews may run concurrently.
//
// [Result.Backdrop] then shows the raster on a gray canvas, which makes the
// white figure margins visible.
package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/figstyle/pkg/observability"
)

// DefaultDPI is the preview resolution.
const DefaultDPI = 600

// Backdrop geometry: a square canvas of BackdropInches at BackdropDPI.
const (
	BackdropInches = 10
	BackdropDPI    = 100
)

// backdropColor is 50% gray at 50% opacity over white.
var backdropColor = color.NRGBA{R: 128, G: 128, B: 128, A: 128}

// Encoder writes a figure in a given format. *plotfig.Figure implements it.
type Encoder interface {
	Encode(w io.Writer, format string, dpi float64) error
}

// Options configure [Check].
type Options struct {
	// DPI is the raster resolution. Zero means DefaultDPI.
	DPI float64
	// Dir holds the temporary file. Empty means os.TempDir.
	Dir string
	// Logger receives the clipping warning. Nil means log.Default.
	Logger *log.Logger
}

// Result is the outcome of a preview.
type Result struct {
	// Clipped reports a non-white pixel on the image border.
	Clipped bool
	// Image is the rendered figure.
	Image image.Image
}

// Check renders fig and reports whether it is probably clipped.
func Check(ctx context.Context, fig Encoder, opts Options) (res *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	start := time.Now()
	observability.Preview().OnPreviewStart(ctx, opts.DPI)
	defer func() {
		clipped := res != nil && res.Clipped
		observability.Preview().OnPreviewComplete(ctx, clipped, time.Since(start), err)
	}()

	img, err := roundTrip(fig, opts)
	if err != nil {
		return nil, err
	}

	res = &Result{Image: img, Clipped: touchesBorder(img)}
	if res.Clipped {
		b := img.Bounds()
		logger.Warn("figure is probably clipped", "width", b.Dx(), "height", b.Dy(), "dpi", opts.DPI)
	}
	return res, nil
}

// roundTrip encodes fig into a temporary PNG and decodes it again.
func roundTrip(fig Encoder, opts Options) (image.Image, error) {
	f, err := os.CreateTemp(opts.Dir, "figstyle-preview-*.png")
	if err != nil {
		return nil, fmt.Errorf("create preview file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := fig.Encode(f, "png", opts.DPI); err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read preview: %w", err)
	}
	return img, nil
}

// touchesBorder reports whether any pixel in the first or last row or
// column is darker than pure white.
func touchesBorder(img image.Image) bool {
	b := img.Bounds()
	if b.Empty() {
		return false
	}
	inked := func(x, y int) bool {
		r, g, bl, _ := img.At(x, y).RGBA()
		return r < 0xffff || g < 0xffff || bl < 0xffff
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		if inked(x, b.Min.Y) || inked(x, b.Max.Y-1) {
			return true
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if inked(b.Min.X, y) || inked(b.Max.X-1, y) {
			return true
		}
	}
	return false
}

// Backdrop writes the preview image centered on a half-gray square canvas
// as PNG, scaled to fit with its aspect ratio kept.
func (r *Result) Backdrop(w io.Writer) error {
	const side = BackdropInches * BackdropDPI
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(backdropColor), image.Point{}, xdraw.Over)

	if r.Image != nil && !r.Image.Bounds().Empty() {
		xdraw.CatmullRom.Scale(canvas, fitRect(r.Image.Bounds(), side), r.Image, r.Image.Bounds(), xdraw.Over, nil)
	}
	return png.Encode(w, canvas)
}

// fitRect returns the largest rectangle with the aspect ratio of src that
// fits centered in a side×side square.
func fitRect(src image.Rectangle, side int) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if w >= h {
		h = h * side / w
		w = side
	} else {
		w = w * side / h
		h = side
	}
	x0, y0 := (side-w)/2, (side-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
