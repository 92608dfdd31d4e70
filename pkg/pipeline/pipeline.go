// Package pipeline turns figure descriptions into rendered artifacts.
//
// A figure description is a small TOML document naming the panel grid,
// the series drawn in each panel and the cosmetic helpers to apply (labels,
// panel numbers, tick formatting, grids, shared limits, scale bars, Gauss
// fits). The pipeline runs in three stages:
//
//  1. Parse: decode and validate the description ([ParseDescription])
//  2. Build: draw it on a [plotfig.Figure] styled by a sheet ([Build])
//  3. Render: encode the figure in each requested format ([Render])
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Style:   "paper",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Rendered artifacts are cached by a hash of the description together with
// format, DPI and style, so rerunning an unchanged description is cheap.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figstyle/pkg/cache"
	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/render/plotfig"
	"github.com/matzehuels/figstyle/pkg/style"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = plotfig.FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool)
	for _, f := range plotfig.Formats() {
		m[f] = true
	}
	return m
}()

// Options configure a pipeline run.
type Options struct {
	// Formats to render. Empty means DefaultFormat.
	Formats []string
	// Style is a sheet name or a path to a .toml sheet. It overrides the
	// style named in the description.
	Style string
	// DPI is the raster resolution. Zero means the sheet's save DPI.
	DPI float64
	// Refresh skips the cache lookup. Fresh artifacts are still stored.
	Refresh bool

	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Description is the parsed figure description.
	Description *Description

	// Hash is the content hash of the raw description.
	Hash string

	// Figure is the built figure. It is nil when every artifact came from
	// the cache.
	Figure *plotfig.Figure

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PanelCount int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	formats := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = strings.ToLower(f)
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.DPI < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must not be negative, got %g", o.DPI)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// style is the resolved sheet name.
func (o *Options) ArtifactKeyOpts(format, style string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		DPI:    o.DPI,
		Style:  style,
	}
}

// LoadStyle resolves the sheet for a description: the options' style wins
// over the description's, and names ending in .toml are read from disk.
func LoadStyle(d *Description, opts Options) (*style.Config, error) {
	name := opts.Style
	if name == "" {
		name = d.Style
	}
	if strings.HasSuffix(name, ".toml") {
		return style.LoadFile(name, style.WithSaveDPI(opts.DPI))
	}
	return style.Load(name, style.WithSaveDPI(opts.DPI))
}
