package annotate

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// Gaussian fit defaults.
const (
	DefaultNStd       = 2.0
	DefaultMarkerSize = 3.0
)

// meanMarkerZ draws the fitted center above everything else.
const meanMarkerZ = 100

// GaussParams are the parameters of a fitted 2D Gaussian. Theta is the
// rotation in radians.
type GaussParams struct {
	XMean, YMean     float64
	XStddev, YStddev float64
	Theta            float64
}

// GaussOptions configure [GaussFit]. Zero values select the defaults:
// DefaultNStd, black, DefaultMarkerSize.
type GaussOptions struct {
	// SRF is the receptive field drawn as an image, indexed [row][col].
	SRF [][]float64
	// VAbsMax switches the image to a blue-white-red map over ±VAbsMax.
	// Without it the image is gray over the data range.
	VAbsMax *float64
	// Params is the fit drawn as center marker and n-sigma ellipse.
	Params *GaussParams

	NStd       float64
	Color      color.Color
	MarkerSize float64
	Colorbar   bool
}

// GaussFit overlays a receptive field and its Gaussian fit on s. Either
// part is skipped when its option is unset.
func GaussFit(s surface.Surface, opts GaussOptions) error {
	if opts.NStd == 0 {
		opts.NStd = DefaultNStd
	}
	if opts.Color == nil {
		opts.Color = color.Black
	}
	if opts.MarkerSize == 0 {
		opts.MarkerSize = DefaultMarkerSize
	}

	if p := opts.Params; p != nil {
		mean := surface.Line{
			X:          []float64{p.XMean},
			Y:          []float64{p.YMean},
			Color:      opts.Color,
			Style:      surface.NoLine,
			Marker:     surface.Cross,
			MarkerSize: opts.MarkerSize,
			Z:          meanMarkerZ,
		}
		if err := s.AddLine(mean); err != nil {
			return fmt.Errorf("gauss fit mean: %w", err)
		}
		ellipse := surface.Ellipse{
			CX:     p.XMean,
			CY:     p.YMean,
			Width:  2 * opts.NStd * p.XStddev,
			Height: 2 * opts.NStd * p.YStddev,
			Angle:  p.Theta * 180 / math.Pi,
			Color:  opts.Color,
		}
		if err := s.AddEllipse(ellipse); err != nil {
			return fmt.Errorf("gauss fit ellipse: %w", err)
		}
	}

	if opts.SRF == nil {
		return nil
	}
	img := surface.Image{Data: opts.SRF, OriginLower: true, Colorbar: opts.Colorbar}
	if opts.VAbsMax != nil {
		img.VMin, img.VMax, img.Colormap = -*opts.VAbsMax, *opts.VAbsMax, "bwr"
	} else {
		img.VMin, img.VMax = dataRange(opts.SRF)
		img.Colormap = "gray"
	}
	if err := s.AddImage(img); err != nil {
		return fmt.Errorf("gauss fit image: %w", err)
	}
	return nil
}

func dataRange(data [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		lo, hi = min(lo, slices.Min(row)), max(hi, slices.Max(row))
	}
	return lo, hi
}
