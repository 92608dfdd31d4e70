package axes

import (
	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// DefaultRowTitlePad is the distance, in points, between a row title and
// the y label of its panel.
const DefaultRowTitlePad = 70.0

// RowTitleOptions position a row title. Size 0 means the "large" size of
// the style config.
type RowTitleOptions struct {
	Pad    float64
	Size   float64
	HAlign surface.HAlign
	VAlign surface.VAlign
}

// DefaultRowTitleOptions are left-aligned, vertically centered and
// DefaultRowTitlePad away from the y label.
func DefaultRowTitleOptions() RowTitleOptions {
	return RowTitleOptions{Pad: DefaultRowTitlePad, HAlign: surface.AlignLeft, VAlign: surface.AlignMiddle}
}

// RowTitle annotates s with a title to the left of its y label. opts may be
// nil.
func RowTitle(s surface.Surface, cfg *style.Config, title string, opts *RowTitleOptions) {
	o := DefaultRowTitleOptions()
	if opts != nil {
		o = *opts
	}
	if o.Size == 0 {
		o.Size = cfg.LargeSize()
	}
	s.AddAnnotation(surface.Annotation{
		Text:    title,
		OffsetX: -s.LabelPadding(surface.Y) - o.Pad,
		Size:    o.Size,
		HAlign:  o.HAlign,
		VAlign:  o.VAlign,
	})
}
