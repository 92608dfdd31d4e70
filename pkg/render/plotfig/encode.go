package plotfig

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/figstyle/pkg/errors"
)

// Output formats accepted by [Figure.Encode].
const (
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
	FormatTIF  = "tif"
	FormatTIFF = "tiff"
)

var validFormats = map[string]bool{
	FormatSVG: true, FormatPDF: true, FormatEPS: true,
	FormatPNG: true, FormatJPG: true, FormatJPEG: true,
	FormatTIF: true, FormatTIFF: true,
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatSVG, FormatPDF, FormatEPS, FormatPNG, FormatJPG, FormatJPEG, FormatTIF, FormatTIFF}
}

// Encode draws the figure and writes it to w in the given format. dpi
// applies to raster formats only.
func (f *Figure) Encode(w io.Writer, format string, dpi float64) error {
	format = strings.ToLower(format)
	if err := errors.ValidateFormat(format, validFormats); err != nil {
		return err
	}
	cw, err := f.canvas(format, dpi)
	if err != nil {
		return err
	}
	f.Draw(draw.New(cw))
	if _, err := cw.WriteTo(w); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Bytes returns the encoded figure.
func (f *Figure) Bytes(format string, dpi float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf, format, dpi); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the figure to path, choosing the format from its extension.
func (f *Figure) Save(path string, dpi float64) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if err := errors.ValidateFormat(strings.ToLower(format), validFormats); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Encode(out, format, dpi)
}

func (f *Figure) canvas(format string, dpi float64) (vg.CanvasWriterTo, error) {
	w, h := vg.Length(f.width)*vg.Inch, vg.Length(f.height)*vg.Inch
	switch format {
	case FormatSVG:
		return vgsvg.New(w, h), nil
	case FormatPDF:
		return vgpdf.New(w, h), nil
	case FormatEPS:
		return vgeps.New(w, h), nil
	}

	if dpi <= 0 {
		dpi = f.cfg.Figure.SaveDPI
	}
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(dpi)))
	switch format {
	case FormatPNG:
		return vgimg.PngCanvas{Canvas: c}, nil
	case FormatJPG, FormatJPEG:
		return vgimg.JpegCanvas{Canvas: c}, nil
	default:
		return vgimg.TiffCanvas{Canvas: c}, nil
	}
}
