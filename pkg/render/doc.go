// Package render groups the backends that turn figures into image files.
//
// # Overview
//
// Helpers in figstyle never draw directly. They operate on the
// [surface.Surface] interface, and a backend implements that interface on
// top of a concrete plotting engine. The only backend today is [plotfig],
// which draws with gonum.org/v1/plot.
//
// # plotfig
//
// [plotfig] owns a grid of panels laid out on a single canvas:
//
//	fig, err := plotfig.NewFigure(1, 2, cfg)
//	axs := fig.Axes()
//	axes.SetLabels(axs, axes.Labels{X: axes.All("time (s)")})
//	err = plotfig.TightLayout(fig, plotfig.DefaultTightOptions())
//	err = fig.Save("figure.pdf", cfg.Figure.SaveDPI)
//
// Vector formats (svg, pdf, eps) come from the gonum vg backends. Raster
// formats (png, jpg, tif) are rendered at the requested resolution;
// [plotfig.Formats] lists them all.
//
// [surface.Surface]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/surface#Surface
// [plotfig]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/render/plotfig
// [plotfig.Formats]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/render/plotfig#Formats
package render
