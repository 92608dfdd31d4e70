// Package pkg provides the core libraries for figstyle, a toolkit for
// publication-ready scientific figures.
//
// # Overview
//
// figstyle wraps a plotting engine with the small, repetitive steps every
// journal figure needs: sizing to a column width, loading a consistent style
// sheet, numbering panels, moving spines outward, sharing limits and checking
// that nothing is clipped. The pkg directory is organized into four areas:
//
//  1. [surface] - The drawable-panel abstraction all helpers work on
//  2. Helpers - [axes], [figsize], [annotate], [legend], [mathtext], [palette], [style]
//  3. [render/plotfig] - The gonum-backed figure and its encoders
//  4. [pipeline] and [preview] - Orchestration and clipping checks
//
// # Architecture
//
// The typical data flow through figstyle:
//
//	figure.toml + style sheet
//	         ↓
//	    [pipeline] package (parse, resolve style, build panels)
//	         ↓
//	    helpers over [surface.Collection] (labels, ticks, limits, grid)
//	         ↓
//	    [render/plotfig] package (tight layout + encode)
//	         ↓
//	    SVG/PDF/EPS/PNG/JPG/TIF output
//
// # Quick Start
//
// Build a two-panel figure directly:
//
//	cfg, _ := style.Load("paper")
//	fig, _ := plotfig.NewFigure(1, 2, cfg)
//	_ = figsize.Set(fig, figsize.Preset("full"), 0.4)
//
//	axs := fig.Axes()
//	axes.SetLabels(axs, axes.Labels{
//	    X:         axes.All("time (s)"),
//	    Y:         axes.Each("rate (Hz)", "gain"),
//	    PanelNums: axes.Auto,
//	})
//	axes.MoveXAxisOutward(axs, 5)
//	axes.ShareXLims(axs, false, nil)
//
//	_ = plotfig.TightLayout(fig, plotfig.DefaultTightOptions())
//	_ = fig.Save("figure.pdf", cfg.Figure.SaveDPI)
//
// Or render a description through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.Disabled(), nil, nil)
//	res, err := runner.Execute(ctx, data, pipeline.Options{Formats: []string{"pdf"}})
//
// # Main Packages
//
// [surface] - The [surface.Surface] interface, and [surface.Collection] for
// single panels, sequences and grids. Helpers flatten collections in
// row-major order. [surface/surfacetest] records calls for tests.
//
// [axes] - Panel labelling and numbering, row titles, outward spines, tick
// formatting, shared limits, grids and box geometry.
//
// [figsize] - Width presets (col, full, poster and slide widths) and aspect-ratio sizing.
//
// [style] - Embedded TOML style sheets plus user sheets loaded from disk.
//
// [palette] - Named color cycles and hex parsing.
//
// [mathtext] - Converts plain text to upright mathtext labels.
//
// [annotate] - Scale bars and 2D Gaussian fit ellipses.
//
// [legend] - Legend handles built from marker, color and line style.
//
// [preview] - High-resolution raster checks for clipped figures, with a gray
// backdrop image that shows the canvas extent.
//
// ## Infrastructure
//
// [pipeline] - Description parsing, figure building and rendering, used by
// the CLI. Artifacts are cached by description hash, style and format.
//
// [cache] - Artifact cache backends: FileCache for the CLI, Disabled when
// caching is disabled.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for the pipeline, the cache and previews.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/axes/...   # Specific package
//
// [surface/surfacetest]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/surface/surfacetest
// [render/plotfig]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/render/plotfig
// [surface.Surface]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/surface#Surface
// [surface.Collection]: https://pkg.go.dev/github.com/matzehuels/figstyle/pkg/surface#Collection
package pkg
