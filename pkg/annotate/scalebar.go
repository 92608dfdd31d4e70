// Package annotate draws data annotations onto panels: scale bars and
// Gaussian receptive-field fits.
package annotate

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// ScaleBarOptions customize [ScaleBar]. The zero value labels the bar
// "<size> <unit>" directly at the bar height.
type ScaleBarOptions struct {
	// TextY is the label height in data units; nil uses the bar height.
	TextY *float64
	// Text replaces the generated label when non-empty.
	Text string
}

// ScaleBar draws a black horizontal bar of the given size from (x0, y0)
// with a centered label hanging below its midpoint. opts may be nil.
func ScaleBar(s surface.Surface, x0, y0, size float64, unit string, opts *ScaleBarOptions) error {
	var o ScaleBarOptions
	if opts != nil {
		o = *opts
	}
	ytext := y0
	if o.TextY != nil {
		ytext = *o.TextY
	}
	label := o.Text
	if label == "" {
		label = fmt.Sprintf("%g %s", size, unit)
	}

	bar := surface.Line{
		X:     []float64{x0, x0 + size},
		Y:     []float64{y0, y0},
		Color: color.Black,
		Style: surface.Solid,
	}
	if err := s.AddLine(bar); err != nil {
		return fmt.Errorf("scale bar: %w", err)
	}
	return s.AddText(surface.Text{
		X:      x0 + size/2,
		Y:      ytext,
		Text:   label,
		HAlign: surface.AlignCenter,
		VAlign: surface.AlignTop,
	})
}
