// Package surface defines the drawable-panel abstraction that every figstyle
// helper mutates.
//
// # Overview
//
// A [Surface] is one plot panel: a pair of axes with limits, scales, tick
// formatting, spines, labels and a list of artists (lines, text, ellipses,
// images, legends). Helpers never construct panels themselves; callers obtain
// them from a backend such as [plotfig] and hand them over, usually wrapped
// in a [Collection].
//
// # Collections
//
// Most helpers apply the same mutation to many panels. A [Collection] is a
// tagged variant holding either a single surface, an ordered sequence, or a
// rectangular grid:
//
//	axs := surface.Grid(fig.Rows())  // [][]Surface from a figure
//	for _, s := range axs.Flatten() { // row-major order
//	    s.SetLabel(surface.X, "time (s)")
//	}
//
// Use [Of] at API boundaries where the shape is only known dynamically.
//
// # Testing
//
// The [surfacetest] subpackage provides a recording fake so helpers can be
// tested without a rendering backend.
//
// [plotfig]: github.com/matzehuels/figstyle/pkg/render/plotfig
// [surfacetest]: github.com/matzehuels/figstyle/pkg/surface/surfacetest
package surface
