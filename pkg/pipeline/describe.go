package pipeline

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figstyle/pkg/axes"
	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/figsize"
	"github.com/matzehuels/figstyle/pkg/palette"
)

// Description is a figure described in TOML: the panel grid, the series in
// each panel and the cosmetic helpers to apply.
type Description struct {
	Style       string     `toml:"style"`
	Width       WidthValue `toml:"width"`
	HeightRatio float64    `toml:"height_ratio"`
	Rows        int        `toml:"rows"`
	Cols        int        `toml:"cols"`
	TightLayout bool       `toml:"tight_layout"`

	Labels LabelsDesc  `toml:"labels"`
	Ticks  TicksDesc   `toml:"ticks"`
	Grid   *GridDesc   `toml:"grid"`
	Limits LimitsDesc  `toml:"limits"`
	Panels []PanelDesc `toml:"panel"`
}

// LabelsDesc holds the texts for axes.SetLabels. Each entry is either one
// string for all panels or a list with one string per panel.
type LabelsDesc struct {
	X         TextValue `toml:"x"`
	Y         TextValue `toml:"y"`
	Titles    TextValue `toml:"titles"`
	PanelNums TextValue `toml:"panel_nums"`
	// MathText renders x and y labels as upright mathtext.
	MathText bool `toml:"mathtext"`
	// PanelNumSpace is the number of spaces after each panel number.
	PanelNumSpace int `toml:"panel_num_space"`
}

// TicksDesc selects tick helpers. Zero values leave ticks untouched.
type TicksDesc struct {
	IntFormat string  `toml:"int_format"`
	LogPad    float64 `toml:"log_pad"`
	XOutward  float64 `toml:"x_outward"`
	YOutward  float64 `toml:"y_outward"`
	XScale    float64 `toml:"x_scale"`
	YScale    float64 `toml:"y_scale"`
}

// GridDesc mirrors axes.GridOptions.
type GridDesc struct {
	Axis  string `toml:"axis"`
	Major bool   `toml:"major"`
	Minor bool   `toml:"minor"`
}

// LimitsDesc shares axis limits across all panels.
type LimitsDesc struct {
	ShareX     bool `toml:"share_x"`
	ShareY     bool `toml:"share_y"`
	SymmetricX bool `toml:"symmetric_x"`
	SymmetricY bool `toml:"symmetric_y"`
}

// PanelDesc describes one panel, in row-major order.
type PanelDesc struct {
	XScale   string    `toml:"x_scale"`
	YScale   string    `toml:"y_scale"`
	XLim     []float64 `toml:"x_lim"`
	YLim     []float64 `toml:"y_lim"`
	RowTitle string    `toml:"row_title"`
	// TwinLabel labels the right-hand y axis used by Twin series.
	TwinLabel string `toml:"twin_label"`

	Series    []SeriesDesc   `toml:"series"`
	Twin      []SeriesDesc   `toml:"twin"`
	ScaleBars []ScaleBarDesc `toml:"scale_bar"`
	Gauss     []GaussDesc    `toml:"gauss"`
}

// SeriesDesc is one line or marker series. A labelled series adds a legend
// entry.
type SeriesDesc struct {
	X          []float64  `toml:"x"`
	Y          []float64  `toml:"y"`
	Color      ColorValue `toml:"color"`
	Marker     string     `toml:"marker"`
	Line       string     `toml:"line"`
	Width      float64    `toml:"width"`
	MarkerSize float64    `toml:"marker_size"`
	Label      string     `toml:"label"`
}

// ScaleBarDesc mirrors the arguments of annotate.ScaleBar.
type ScaleBarDesc struct {
	X0    float64  `toml:"x0"`
	Y0    float64  `toml:"y0"`
	Size  float64  `toml:"size"`
	Unit  string   `toml:"unit"`
	Text  string   `toml:"text"`
	TextY *float64 `toml:"text_y"`
}

// GaussDesc is a receptive field and its Gaussian fit.
type GaussDesc struct {
	SRF      [][]float64 `toml:"srf"`
	VAbsMax  *float64    `toml:"vabsmax"`
	NStd     float64     `toml:"n_std"`
	Color    ColorValue  `toml:"color"`
	Colorbar bool        `toml:"colorbar"`

	XMean   *float64 `toml:"x_mean"`
	YMean   float64  `toml:"y_mean"`
	XStddev float64  `toml:"x_stddev"`
	YStddev float64  `toml:"y_stddev"`
	Theta   float64  `toml:"theta"`
}

// WidthValue is a figure width given as a preset name or in inches.
type WidthValue struct {
	figsize.Width
	Set bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (w *WidthValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		w.Width = figsize.Parse(v)
	case int64:
		w.Width = figsize.Inches(float64(v))
	case float64:
		w.Width = figsize.Inches(v)
	default:
		return fmt.Errorf("width must be a preset name or a number, got %T", v)
	}
	w.Set = true
	return nil
}

// TextValue is a label given as one string, a list of strings, or "auto"
// for panel numbers.
type TextValue struct {
	Values []string
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *TextValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		t.Values = []string{v}
	case []any:
		t.Values = make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("label %d must be a string, got %T", i, e)
			}
			t.Values[i] = s
		}
	default:
		return fmt.Errorf("labels must be a string or a list of strings, got %T", v)
	}
	return nil
}

// maxAutoPanels is the number of letters available to automatic panel
// numbers.
const maxAutoPanels = 26

// text converts t for a collection of n panels. "auto" is only honored
// when auto is set.
func (t TextValue) text(n int, auto bool, conv func(string) string) (axes.Text, error) {
	switch {
	case len(t.Values) == 0:
		return axes.Text{}, nil
	case auto && len(t.Values) == 1 && t.Values[0] == "auto":
		if n > maxAutoPanels {
			return axes.Text{}, errors.New(errors.ErrCodeInvalidInput,
				"automatic panel numbers support at most %d panels, got %d", maxAutoPanels, n)
		}
		return axes.Auto, nil
	case len(t.Values) == 1:
		return axes.All(conv(t.Values[0])), nil
	case len(t.Values) != n:
		return axes.Text{}, errors.New(errors.ErrCodeInvalidInput,
			"got %d labels for %d panels; give one or one per panel", len(t.Values), n)
	}
	out := make([]string, n)
	for i, s := range t.Values {
		out[i] = conv(s)
	}
	return axes.Each(out...), nil
}

// ColorValue is a palette index (-1 for black) or a "#rrggbb" string. The
// zero value selects the next color of the style palette.
type ColorValue struct {
	Index *int
	Hex   string
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *ColorValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		idx := int(v)
		c.Index = &idx
	case string:
		if _, err := palette.ParseHex(v); err != nil {
			return err
		}
		c.Hex = v
	default:
		return fmt.Errorf("color must be a palette index or a hex string, got %T", v)
	}
	return nil
}

// ParseDescription decodes a TOML figure description.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse figure description")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure description has unknown key %s", undecoded[0])
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDescription reads and decodes a figure description file.
func LoadDescription(path string) (*Description, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "figure description %s", path)
	}
	if err != nil {
		return nil, err
	}
	return ParseDescription(data)
}

func (d *Description) validate() error {
	if d.Rows == 0 {
		d.Rows = 1
	}
	if d.Cols == 0 {
		d.Cols = 1
	}
	if d.Rows < 0 || d.Cols < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rows and cols must be positive")
	}
	if n := d.Rows * d.Cols; len(d.Panels) > n {
		return errors.New(errors.ErrCodeInvalidInput, "%d panels described for a %d×%d grid", len(d.Panels), d.Rows, d.Cols)
	}
	for i, p := range d.Panels {
		for name, lim := range map[string][]float64{"x_lim": p.XLim, "y_lim": p.YLim} {
			if lim != nil && len(lim) != 2 {
				return errors.New(errors.ErrCodeInvalidInput, "panel %d: %s needs two values", i, name)
			}
		}
		for _, s := range slices.Concat(p.Series, p.Twin) {
			if len(s.X) != len(s.Y) {
				return errors.New(errors.ErrCodeInvalidInput, "panel %d: series has %d x and %d y values", i, len(s.X), len(s.Y))
			}
		}
		for _, g := range p.Gauss {
			if g.SRF == nil && g.XMean == nil {
				return errors.New(errors.ErrCodeInvalidInput, "panel %d: gauss needs srf or fit parameters", i)
			}
		}
	}
	return nil
}
