// Package plotfig implements [surface.Surface] on top of gonum.org/v1/plot.
//
// # Overview
//
// A [Figure] is a grid of [Panel] values drawn onto one canvas. Panels are
// positioned by [surface.Box] values in figure fractions, and a box always
// describes the data area of a panel: tick labels, axis labels and titles
// are laid out around it and may reach past the figure edge, which is what
// the clipping preview detects.
//
//	fig, err := plotfig.NewFigure(1, 2, cfg)
//	axs := fig.Axes()
//	axes.SetLabels(axs, axes.Labels{X: axes.All("time (s)")})
//	if err := plotfig.TightLayout(fig, plotfig.DefaultTightOptions()); err != nil { ... }
//	err = fig.Save("figure.pdf", cfg.Figure.SaveDPI)
//
// # Mapping onto gonum/plot
//
// gonum/plot draws a bottom and a left axis only. The remaining spines are
// drawn as frame lines after the plot, twin panels draw their y axis on the
// right of the host data area, and colorbars are placed in a strip to the
// right of the panel. Spine offsets map to [plot.Axis] padding. gonum/plot
// draws tick labels flush with the tick marks, so tick padding is added to
// the tick length.
//
// Artists are drawn in ascending z order; grid lines use negative z and
// therefore sit beneath the data.
//
// # Output Formats
//
// [Figure.Encode] writes svg, pdf, eps, png, jpg and tiff through the
// gonum/plot vector and raster backends. Raster formats honor the DPI
// argument; vector formats ignore it.
package plotfig
