package axes

import (
	"math"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// ShareXLims applies one x range to every panel. With lim nil the range
// spans all current limits, mirrored around zero when symmetric is set.
func ShareXLims(axs surface.Collection, symmetric bool, lim *[2]float64) {
	shareLims(axs, surface.X, symmetric, lim)
}

// ShareYLims is [ShareXLims] for the y axis.
func ShareYLims(axs surface.Collection, symmetric bool, lim *[2]float64) {
	shareLims(axs, surface.Y, symmetric, lim)
}

func shareLims(axs surface.Collection, a surface.Axis, symmetric bool, lim *[2]float64) {
	flat := axs.Flatten()
	if len(flat) == 0 {
		return
	}
	var lo, hi float64
	if lim != nil {
		lo, hi = lim[0], lim[1]
	} else {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, ax := range flat {
			l, h := ax.Limits(a)
			lo, hi = math.Min(lo, l), math.Max(hi, h)
		}
		if symmetric {
			m := math.Max(math.Abs(lo), math.Abs(hi))
			lo, hi = -m, m
		}
	}
	for _, ax := range flat {
		ax.SetLimits(a, lo, hi)
	}
}
