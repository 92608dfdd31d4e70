// Package figsize resolves symbolic figure widths to physical dimensions.
//
// Widths are either a number of inches or one of a closed set of presets
// matching common publication, slide and poster layouts:
//
//	w, err := figsize.Resolve(figsize.Preset("col"))      // 3.37
//	w, h, err := figsize.Size(figsize.Preset("full"), 0.5) // 7, 3.5
//
// Unknown presets, the empty name included, fail with an
// [errors.ErrCodeUnsupported] error. A ratio of zero or less means "no
// ratio": the height is left as it is.
package figsize

import (
	"strconv"
	"strings"

	"github.com/matzehuels/figstyle/pkg/errors"
)

// Preset widths in inches.
const (
	Col       = 3.37  // single column, bioRxiv template
	Full      = 7.0   // full page width, bioRxiv template
	SlideCol  = 5.67  // half of a 16:9 slide
	SlideFull = 11.5  // full 16:9 slide
	Poster    = 14.46 // full poster width
)

var presets = map[string]float64{
	"col":        Col,
	"full":       Full,
	"slide_col":  SlideCol,
	"slide_full": SlideFull,
	"poster":     Poster,
}

// presetOrder is the display order of presets, narrowest first.
var presetOrder = []string{"col", "slide_col", "full", "slide_full", "poster"}

// Width is a figure width: either inches or a named preset.
// The zero value is zero inches.
type Width struct {
	preset string
	named  bool
	inches float64
}

// Inches is a literal width.
func Inches(v float64) Width { return Width{inches: v} }

// Preset is a named width. The name is checked when resolved, not here.
func Preset(name string) Width { return Width{preset: name, named: true} }

// Parse reads a width from text: a number is inches, anything else a preset.
func Parse(s string) Width {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Inches(v)
	}
	return Preset(s)
}

// IsPreset reports whether w names a preset.
func (w Width) IsPreset() bool { return w.named }

func (w Width) String() string {
	if w.named {
		return w.preset
	}
	return strconv.FormatFloat(w.inches, 'g', -1, 64)
}

// Resolve returns the width in inches.
func Resolve(w Width) (float64, error) {
	if !w.named {
		return w.inches, nil
	}
	v, ok := presets[w.preset]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnsupported, "width preset %q not supported", w.preset)
	}
	return v, nil
}

// Size resolves w and, when ratio is positive, computes height = width*ratio.
// A ratio of zero or less leaves the height at zero, meaning "unchanged".
func Size(w Width, ratio float64) (width, height float64, err error) {
	width, err = Resolve(w)
	if err != nil {
		return 0, 0, err
	}
	if ratio > 0 {
		height = width * ratio
	}
	return width, height, nil
}

// Sizer is anything with a physical size in inches.
type Sizer interface {
	SetWidth(inches float64)
	SetHeight(inches float64)
}

// Set resolves w and applies it to fig. The height is only touched when
// ratio is positive.
func Set(fig Sizer, w Width, ratio float64) error {
	width, height, err := Size(w, ratio)
	if err != nil {
		return err
	}
	fig.SetWidth(width)
	if ratio > 0 {
		fig.SetHeight(height)
	}
	return nil
}

// PresetWidth pairs a preset name with its width.
type PresetWidth struct {
	Name   string
	Inches float64
}

// Presets lists all presets, narrowest first.
func Presets() []PresetWidth {
	out := make([]PresetWidth, len(presetOrder))
	for i, name := range presetOrder {
		out[i] = PresetWidth{Name: name, Inches: presets[name]}
	}
	return out
}
