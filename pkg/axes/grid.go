package axes

import (
	"image/color"

	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// Grid line colors: black and gray at 30% opacity.
var (
	MajorGridColor = color.NRGBA{A: 77}
	MinorGridColor = color.NRGBA{R: 128, G: 128, B: 128, A: 77}
)

const (
	majorGridZ = -10000
	minorGridZ = -20000
)

// GridOptions select which grid lines [Grid] draws. An empty Axis means
// both axes.
type GridOptions struct {
	Axis  Which
	Major bool
	Minor bool
}

// DefaultGridOptions draw major lines on both axes.
func DefaultGridOptions() GridOptions {
	return GridOptions{Axis: WhichBoth, Major: true}
}

// Grid draws faint grid lines beneath the data of every panel. Line widths
// follow the y tick widths of cfg.
func Grid(axs surface.Collection, cfg *style.Config, opts GridOptions) {
	axis := opts.Axis
	if axis == "" {
		axis = WhichBoth
	}
	var which []surface.Axis
	if axis.x() {
		which = append(which, surface.X)
	}
	if axis.y() {
		which = append(which, surface.Y)
	}
	for _, ax := range axs.Flatten() {
		for _, a := range which {
			if opts.Major {
				ax.AddGrid(surface.GridLines{Axis: a, Which: surface.Major, Color: MajorGridColor, Width: cfg.YTick.MajorWidth, Z: majorGridZ})
			}
			if opts.Minor {
				ax.AddGrid(surface.GridLines{Axis: a, Which: surface.Minor, Color: MinorGridColor, Width: cfg.YTick.MinorWidth, Z: minorGridZ})
			}
		}
	}
}
