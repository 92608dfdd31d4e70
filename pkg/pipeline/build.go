package pipeline

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/matzehuels/figstyle/pkg/annotate"
	"github.com/matzehuels/figstyle/pkg/axes"
	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/figsize"
	"github.com/matzehuels/figstyle/pkg/legend"
	"github.com/matzehuels/figstyle/pkg/mathtext"
	"github.com/matzehuels/figstyle/pkg/observability"
	"github.com/matzehuels/figstyle/pkg/palette"
	"github.com/matzehuels/figstyle/pkg/render/plotfig"
	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// Build turns a description into a figure styled by cfg. Helpers run in a
// fixed order: panel content, labels, ticks, grid, shared limits, layout.
func Build(ctx context.Context, d *Description, cfg *style.Config) (*plotfig.Figure, error) {
	fig, err := plotfig.NewFigure(d.Rows, d.Cols, cfg)
	if err != nil {
		return nil, err
	}
	if d.Width.Set {
		if err := figsize.Set(fig, d.Width.Width, d.HeightRatio); err != nil {
			return nil, err
		}
	}

	axs := fig.Axes()
	panels := axs.Flatten()
	for i, pd := range d.Panels {
		if err := buildPanel(panels[i], pd, cfg); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
	}

	if err := applyLabels(axs, d.Labels); err != nil {
		return nil, err
	}
	if err := applyTicks(axs, d.Ticks); err != nil {
		return nil, err
	}
	if d.Grid != nil {
		which, err := axes.ParseWhich(d.Grid.Axis)
		if err != nil {
			return nil, err
		}
		axes.Grid(axs, cfg, axes.GridOptions{Axis: which, Major: d.Grid.Major, Minor: d.Grid.Minor})
	}
	if d.Limits.ShareX {
		axes.ShareXLims(axs, d.Limits.SymmetricX, nil)
	}
	if d.Limits.ShareY {
		axes.ShareYLims(axs, d.Limits.SymmetricY, nil)
	}

	if d.TightLayout {
		start := time.Now()
		observability.Pipeline().OnLayoutStart(ctx, d.Rows, d.Cols)
		err := plotfig.TightLayout(fig, plotfig.DefaultTightOptions())
		observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), err)
		if err != nil {
			return nil, err
		}
	}
	return fig, nil
}

func buildPanel(s surface.Surface, pd PanelDesc, cfg *style.Config) error {
	for ax, name := range map[surface.Axis]string{surface.X: pd.XScale, surface.Y: pd.YScale} {
		sc, err := parseScale(name)
		if err != nil {
			return err
		}
		s.SetScale(ax, sc)
	}

	if err := addSeries(s, pd.Series, cfg); err != nil {
		return err
	}
	if len(pd.Twin) > 0 {
		twin := axes.LeftToRightTwin(s)
		if pd.TwinLabel != "" {
			twin.SetLabel(surface.Y, pd.TwinLabel)
		}
		if err := addSeries(twin, pd.Twin, cfg); err != nil {
			return err
		}
	}

	for _, sb := range pd.ScaleBars {
		opts := &annotate.ScaleBarOptions{Text: sb.Text, TextY: sb.TextY}
		if err := annotate.ScaleBar(s, sb.X0, sb.Y0, sb.Size, sb.Unit, opts); err != nil {
			return err
		}
	}
	for _, g := range pd.Gauss {
		if err := addGauss(s, g, cfg); err != nil {
			return err
		}
	}

	if pd.XLim != nil {
		s.SetLimits(surface.X, pd.XLim[0], pd.XLim[1])
	}
	if pd.YLim != nil {
		s.SetLimits(surface.Y, pd.YLim[0], pd.YLim[1])
	}
	if pd.RowTitle != "" {
		axes.RowTitle(s, cfg, pd.RowTitle, nil)
	}
	return nil
}

// addSeries draws each series and a legend for the labelled ones. Series
// without a color take the next color of the style palette.
func addSeries(s surface.Surface, series []SeriesDesc, cfg *style.Config) error {
	cycle, err := palette.Colors(cfg.Palette)
	if err != nil {
		return err
	}
	var (
		next    int
		labels  []string
		handles []surface.LegendHandle
	)
	for _, sd := range series {
		c, err := resolveColor(sd.Color, cfg)
		if err != nil {
			return err
		}
		if c == nil {
			c = cycle[next%len(cycle)]
			next++
		}
		line := surface.Line{
			X:          sd.X,
			Y:          sd.Y,
			Color:      c,
			Width:      sd.Width,
			Style:      surface.LineStyle(sd.Line),
			Marker:     surface.Marker(sd.Marker),
			MarkerSize: sd.MarkerSize,
		}
		if err := s.AddLine(line); err != nil {
			return err
		}
		if sd.Label != "" {
			labels = append(labels, sd.Label)
			handles = append(handles, legend.NewHandle(line.Marker, c, line.Style,
				legend.HandleOptions{Width: sd.Width, MarkerSize: sd.MarkerSize}))
		}
	}
	if len(labels) > 0 {
		legend.Add(s, labels, handles)
	}
	return nil
}

func addGauss(s surface.Surface, g GaussDesc, cfg *style.Config) error {
	c, err := resolveColor(g.Color, cfg)
	if err != nil {
		return err
	}
	opts := annotate.GaussOptions{
		SRF:      g.SRF,
		VAbsMax:  g.VAbsMax,
		NStd:     g.NStd,
		Color:    c,
		Colorbar: g.Colorbar,
	}
	if g.XMean != nil {
		opts.Params = &annotate.GaussParams{
			XMean:   *g.XMean,
			YMean:   g.YMean,
			XStddev: g.XStddev,
			YStddev: g.YStddev,
			Theta:   g.Theta,
		}
	}
	return annotate.GaussFit(s, opts)
}

// resolveColor returns nil for an unset color.
func resolveColor(c ColorValue, cfg *style.Config) (color.Color, error) {
	switch {
	case c.Index != nil:
		return palette.IdxToColor(*c.Index, cfg.Palette)
	case c.Hex != "":
		return palette.ParseHex(c.Hex)
	}
	return nil, nil
}

func parseScale(s string) (surface.Scale, error) {
	switch s {
	case "", "linear":
		return surface.Linear, nil
	case "log":
		return surface.Log, nil
	}
	return surface.Linear, errors.New(errors.ErrCodeInvalidInput, "unknown axis scale %q (use linear or log)", s)
}

func applyLabels(axs surface.Collection, ld LabelsDesc) error {
	n := axs.Len()
	conv := func(s string) string { return s }
	labelConv := conv
	if ld.MathText {
		labelConv = mathtext.FromText
	}

	var l axes.Labels
	var err error
	if l.X, err = ld.X.text(n, false, labelConv); err != nil {
		return fmt.Errorf("x labels: %w", err)
	}
	if l.Y, err = ld.Y.text(n, false, labelConv); err != nil {
		return fmt.Errorf("y labels: %w", err)
	}
	if l.Titles, err = ld.Titles.text(n, false, conv); err != nil {
		return fmt.Errorf("titles: %w", err)
	}
	if l.PanelNums, err = ld.PanelNums.text(n, true, conv); err != nil {
		return fmt.Errorf("panel numbers: %w", err)
	}
	if ld.PanelNumSpace > 0 {
		st := axes.DefaultPanelNumStyle()
		st.Space = ld.PanelNumSpace
		l.PanelNum = &st
	}
	axes.SetLabels(axs, l)
	return nil
}

func applyTicks(axs surface.Collection, td TicksDesc) error {
	if td.IntFormat != "" {
		which, err := axes.ParseWhich(td.IntFormat)
		if err != nil {
			return err
		}
		axes.IntFormatTicks(axs, which)
	}
	if td.XScale != 0 {
		axes.ScaleTicks(axs, td.XScale, true, false)
	}
	if td.YScale != 0 {
		axes.ScaleTicks(axs, td.YScale, false, true)
	}
	if td.LogPad > 0 {
		axes.AdjustLogTickPadding(axs, td.LogPad)
	}
	if td.XOutward > 0 {
		axes.MoveXAxisOutward(axs, td.XOutward)
	}
	if td.YOutward > 0 {
		axes.MoveYAxisOutward(axs, td.YOutward)
	}
	return nil
}
