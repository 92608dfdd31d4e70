// Package legend builds legend handles and attaches legends to panels.
//
// A handle is a line and marker sample with no data of its own, used when
// the legend should describe something other than the plotted artists:
//
//	hs := legend.Handles(
//	    []surface.Marker{surface.Circle, surface.Cross},
//	    []color.Color{c0, c1},
//	    []surface.LineStyle{surface.NoLine, surface.NoLine},
//	    legend.HandleOptions{MarkerSize: 4},
//	)
//	legend.Add(ax, []string{"model", "data"}, hs)
package legend

import (
	"image/color"

	"github.com/matzehuels/figstyle/pkg/surface"
)

// HandleOptions are shared by every handle [Handles] builds.
type HandleOptions struct {
	Width      float64
	MarkerSize float64
}

// NewHandle returns a handle drawing marker m in color c with line style ls.
func NewHandle(m surface.Marker, c color.Color, ls surface.LineStyle, opts HandleOptions) surface.LegendHandle {
	return surface.LegendHandle{
		Marker:     m,
		Color:      c,
		Style:      ls,
		Width:      opts.Width,
		MarkerSize: opts.MarkerSize,
	}
}

// Handles zips markers, colors and line styles into handles. The result is
// as long as the shortest input.
func Handles(markers []surface.Marker, colors []color.Color, styles []surface.LineStyle, opts HandleOptions) []surface.LegendHandle {
	n := min(len(markers), len(colors), len(styles))
	out := make([]surface.LegendHandle, n)
	for i := range n {
		out[i] = NewHandle(markers[i], colors[i], styles[i], opts)
	}
	return out
}

// Add attaches a legend pairing labels with handles to s. Extra labels or
// handles are dropped.
func Add(s surface.Surface, labels []string, handles []surface.LegendHandle) {
	n := min(len(labels), len(handles))
	entries := make([]surface.LegendEntry, n)
	for i := range n {
		entries[i] = surface.LegendEntry{Label: labels[i], Handle: handles[i]}
	}
	s.AddLegend(entries)
}
