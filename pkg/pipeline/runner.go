package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roughdraw/pkg/buildinfo"
	"github.com/matzehuels/roughdraw/pkg/cache"
	"github.com/matzehuels/roughdraw/pkg/fonts"
	"github.com/matzehuels/roughdraw/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, fonts and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Fonts are embedded into SVG and PDF output. FontsDir identifies them
	// in cache keys.
	Fonts    *fonts.Set
	FontsDir string

	// TTL is the lifetime of cached artifacts.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer scoped to the running release is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// LoadFonts loads the font directory embedded into SVG output. An empty dir
// disables embedding.
func (r *Runner) LoadFonts(dir string) error {
	set, err := fonts.Load(dir)
	if err != nil {
		return err
	}
	r.Fonts, r.FontsDir = set, dir
	if set.Len() > 0 {
		r.Logger.Debug("loaded fonts", "dir", dir, "families", set.Len())
	}
	return nil
}

// Execute runs the complete parse → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		DocumentHash: cache.Hash(data),
		Artifacts:    make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	doc, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Document = doc
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ElementCount = len(doc.Elements)

	opts.Logger.Debug("parsed document",
		"elements", len(doc.Elements),
		"duration", result.Stats.ParseTime)

	// Cached artifacts
	missing := r.lookup(ctx, result, opts)
	if len(missing) == 0 {
		result.CacheInfo.RenderHit = true
		opts.Logger.Debug("all artifacts cached", "formats", opts.Formats)
		return result, nil
	}

	// Stage 2: Build
	buildStart := time.Now()
	sc, err := Build(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Scene = sc
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.ItemCount = len(sc.Items)

	opts.Logger.Debug("built scene",
		"items", len(sc.Items),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	rendered, err := renderFormats(ctx, sc, r.Fonts, opts, missing)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	for format, out := range rendered {
		result.Artifacts[format] = out
		r.store(ctx, result.DocumentHash, format, out, opts)
	}

	opts.Logger.Debug("rendered outputs",
		"formats", missing,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ExecuteFile reads path and runs Execute on its contents.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	data, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, data, opts)
}

// lookup fills result with cached artifacts and returns the formats that
// still need rendering.
func (r *Runner) lookup(ctx context.Context, result *Result, opts Options) []string {
	hooks := observability.Cache()
	var missing []string
	seen := make(map[string]bool)
	for _, format := range opts.Formats {
		if seen[format] {
			continue
		}
		seen[format] = true
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(result.DocumentHash, opts.ArtifactKeyOpts(format, r.FontsDir))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, format)
			missing = append(missing, format)
			continue
		}
		hooks.OnCacheHit(ctx, format)
		result.Artifacts[format] = data
		result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
	}
	return missing
}

func (r *Runner) store(ctx context.Context, docHash, format string, data []byte, opts Options) {
	key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format, r.FontsDir))
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
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
