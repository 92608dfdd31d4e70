// Package style loads rendering configuration from style sheets.
//
// A [Config] replaces process-wide rendering parameters: callers load one,
// optionally tweak it, and pass it explicitly to the figure backend and to
// helpers that depend on sizes (grid line widths, layout padding, row
// titles). Nothing in this package keeps global state.
//
// Built-in sheets are embedded TOML files:
//
//	cfg, err := style.Load("paper")
//	cfg, err := style.Load("paper", style.WithNotebookDPI(150))
//
// User sheets are read with [LoadFile]. Sheets are decoded on top of
// [Defaults], so a sheet only needs the keys it changes.
package style

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figstyle/pkg/errors"
)

//go:embed sheets/*.toml
var sheets embed.FS

// DefaultSheet is the sheet used when none is named.
const DefaultSheet = "paper"

// Config is an explicit set of rendering parameters. Sizes are in points.
type Config struct {
	Name    string `toml:"-"`
	Palette string `toml:"palette"`

	Font   FontConfig   `toml:"font"`
	Lines  LineConfig   `toml:"lines"`
	Axes   AxesConfig   `toml:"axes"`
	XTick  TickConfig   `toml:"xtick"`
	YTick  TickConfig   `toml:"ytick"`
	Figure FigureConfig `toml:"figure"`
}

// FontConfig holds typeface and text sizes.
type FontConfig struct {
	Typeface   string  `toml:"typeface"`
	Variant    string  `toml:"variant"`
	Size       float64 `toml:"size"`
	TitleSize  float64 `toml:"title_size"`
	LabelSize  float64 `toml:"label_size"`
	TickSize   float64 `toml:"tick_size"`
	LegendSize float64 `toml:"legend_size"`
}

// LineConfig holds default artist sizes.
type LineConfig struct {
	Width      float64 `toml:"width"`
	MarkerSize float64 `toml:"marker_size"`
}

// AxesConfig holds axis frame parameters.
type AxesConfig struct {
	LineWidth float64 `toml:"line_width"`
	LabelPad  float64 `toml:"label_pad"`
	TitlePad  float64 `toml:"title_pad"`
}

// TickConfig holds tick mark parameters for one axis.
type TickConfig struct {
	MajorWidth float64 `toml:"major_width"`
	MinorWidth float64 `toml:"minor_width"`
	MajorSize  float64 `toml:"major_size"`
	MinorSize  float64 `toml:"minor_size"`
	Pad        float64 `toml:"pad"`
}

// FigureConfig holds resolution parameters.
type FigureConfig struct {
	DPI     float64 `toml:"dpi"`
	SaveDPI float64 `toml:"save_dpi"`
}

// Defaults returns the base parameters every sheet is layered on: the
// "paper" context with ticks enabled.
func Defaults() *Config {
	tick := TickConfig{MajorWidth: 1.0, MinorWidth: 0.8, MajorSize: 4.8, MinorSize: 3.2, Pad: 2.8}
	return &Config{
		Name:    "defaults",
		Palette: "deep",
		Font: FontConfig{
			Typeface:   "Liberation",
			Variant:    "Sans",
			Size:       9.6,
			TitleSize:  9.6,
			LabelSize:  9.6,
			TickSize:   8.8,
			LegendSize: 8.8,
		},
		Lines:  LineConfig{Width: 1.2, MarkerSize: 4.8},
		Axes:   AxesConfig{LineWidth: 1.0, LabelPad: 3.2, TitlePad: 4.8},
		XTick:  tick,
		YTick:  tick,
		Figure: FigureConfig{DPI: 100, SaveDPI: 300},
	}
}

// Option adjusts a loaded Config.
type Option func(*Config)

// WithNotebookDPI overrides the on-screen figure DPI. Non-positive values
// are ignored.
func WithNotebookDPI(dpi float64) Option {
	return func(c *Config) {
		if dpi > 0 {
			c.Figure.DPI = dpi
		}
	}
}

// WithSaveDPI overrides the export DPI. Non-positive values are ignored.
func WithSaveDPI(dpi float64) Option {
	return func(c *Config) {
		if dpi > 0 {
			c.Figure.SaveDPI = dpi
		}
	}
}

// Load decodes the embedded sheet called kind.
func Load(kind string, opts ...Option) (*Config, error) {
	if kind == "" {
		kind = DefaultSheet
	}
	if err := errors.ValidateSheetName(kind); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(sheets, path.Join("sheets", kind+".toml"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style sheet %q (available: %s)", kind, strings.Join(Names(), ", "))
	}
	return decode(kind, string(data), opts)
}

// LoadFile decodes a user sheet from disk.
func LoadFile(file string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "style sheet %s", file)
	}
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return decode(name, string(data), opts)
}

// Parse decodes a sheet held in memory.
func Parse(name, data string, opts ...Option) (*Config, error) {
	return decode(name, data, opts)
}

func decode(name, data string, opts []Option) (*Config, error) {
	cfg := Defaults()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse style sheet %q", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidStyle, "style sheet %q has unknown keys: %s", name, strings.Join(keys, ", "))
	}
	cfg.Name = name
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Names lists the embedded sheets in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(sheets, "sheets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".toml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
		}
	}
	slices.Sort(names)
	return names
}

// Validate checks that sizes are usable.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"font.size", c.Font.Size},
		{"font.title_size", c.Font.TitleSize},
		{"font.label_size", c.Font.LabelSize},
		{"font.tick_size", c.Font.TickSize},
		{"figure.dpi", c.Figure.DPI},
		{"figure.save_dpi", c.Figure.SaveDPI},
	}
	for _, ch := range checks {
		if ch.v <= 0 {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must be positive, got %v", ch.name, ch.v)
		}
	}
	return nil
}

// LargeSize is the "large" relative font size, 1.2× the base size.
func (c *Config) LargeSize() float64 { return 1.2 * c.Font.Size }

// Tick returns the tick configuration for axis "x" or "y".
func (c *Config) Tick(axis string) TickConfig {
	if axis == "y" {
		return c.YTick
	}
	return c.XTick
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%.1fpt, %.0f dpi)", c.Name, c.Font.Size, c.Figure.DPI)
}
