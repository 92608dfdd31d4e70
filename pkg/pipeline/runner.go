package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figstyle/pkg/cache"
	"github.com/matzehuels/figstyle/pkg/observability"
	"github.com/matzehuels/figstyle/pkg/preview"
	"github.com/matzehuels/figstyle/pkg/render/plotfig"
	"github.com/matzehuels/figstyle/pkg/style"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, caching is [cache.Disabled].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.Disabled()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	d, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg, err := LoadStyle(d, opts)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	result := &Result{
		Description: d,
		Hash:        cache.Hash(data),
		Stats:       Stats{PanelCount: d.Rows * d.Cols},
	}

	keys := r.artifactKeys(result.Hash, cfg, opts)
	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, keys); ok {
			opts.Logger.Info("using cached figure", "formats", opts.Formats)
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			return result, nil
		}
	}

	buildStart := time.Now()
	fig, err := r.BuildFigure(ctx, d, cfg)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Figure = fig
	result.Stats.BuildTime = time.Since(buildStart)
	opts.Logger.Debug("built figure",
		"panels", result.Stats.PanelCount,
		"style", cfg.Name,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(fig, opts.Formats, opts.DPI)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	opts.Logger.Info("rendered figure",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	for format, data := range artifacts {
		if err := r.Cache.Set(ctx, keys[format], data, cache.DefaultArtifactTTL); err != nil {
			opts.Logger.Warn("failed to cache artifact", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keys[format], len(data))
	}
	return result, nil
}

// BuildFigure builds d with the pipeline hooks around it.
func (r *Runner) BuildFigure(ctx context.Context, d *Description, cfg *style.Config) (*plotfig.Figure, error) {
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, cfg.Name)
	fig, err := Build(ctx, d, cfg)
	observability.Pipeline().OnBuildComplete(ctx, cfg.Name, d.Rows*d.Cols, time.Since(start), err)
	return fig, err
}

// Preview builds the description and runs the clipping check on it.
func (r *Runner) Preview(ctx context.Context, data []byte, opts Options, popts preview.Options) (*preview.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	d, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg, err := LoadStyle(d, opts)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	fig, err := r.BuildFigure(ctx, d, cfg)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	if popts.Logger == nil {
		popts.Logger = opts.Logger
	}
	return preview.Check(ctx, fig, popts)
}

// artifactKeys returns the cache key of every requested format.
func (r *Runner) artifactKeys(hash string, cfg *style.Config, opts Options) map[string]string {
	sk := styleKey(cfg)
	keys := make(map[string]string, len(opts.Formats))
	for _, f := range opts.Formats {
		keys[f] = r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(f, sk))
	}
	return keys
}

// cached returns the artifacts only when every format is in the cache.
func (r *Runner) cached(ctx context.Context, keys map[string]string) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(keys))
	for format, key := range keys {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, key)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, key)
		artifacts[format] = data
	}
	return artifacts, true
}

// styleKey identifies every parameter of cfg, so editing a user sheet
// invalidates artifacts rendered with it.
func styleKey(cfg *style.Config) string {
	return cfg.Name + ":" + cache.Hash(fmt.Appendf(nil, "%+v", *cfg))[:16]
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
