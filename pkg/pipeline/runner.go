package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/arena/pkg/bom"
	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/io"
	"github.com/matzehuels/arena/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
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
	}
}

// cachedCourt is the cache form of the court stage.
type cachedCourt struct {
	Court   io.CourtDoc `json:"court"`
	Applied []bool      `json:"applied,omitempty"`
}

// Execute runs the complete court → BOM → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Court
	courtStart := time.Now()
	c, applied, courtHit, err := r.BuildCourtWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Court = c
	result.Applied = applied
	result.CourtHash = CourtHash(c)
	result.Stats.CourtTime = time.Since(courtStart)
	result.Stats.Sections = countSections(c)
	result.CacheInfo.CourtHit = courtHit

	r.Logger.Info("built court",
		"court", c.String(),
		"sections", result.Stats.Sections,
		"duration", result.Stats.CourtTime)

	// Stage 2: BOM
	bomStart := time.Now()
	items, bomHit, err := r.BOMWithCacheInfo(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("bom: %w", err)
	}
	result.BOM = items
	result.Stats.BOMTime = time.Since(bomStart)
	result.Stats.BOMLines = len(items)
	result.Stats.BOMTotal = bom.Total(items)
	result.CacheInfo.BOMHit = bomHit

	r.Logger.Info("aggregated materials",
		"lines", result.Stats.BOMLines,
		"parts", result.Stats.BOMTotal,
		"duration", result.Stats.BOMTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildCourtWithCacheInfo produces the court for opts and returns cache hit
// info. A court supplied in opts.Court is edited directly and never cached,
// since its key would be the court itself.
func (r *Runner) BuildCourtWithCacheInfo(ctx context.Context, opts Options) (*court.Court, []bool, bool, error) {
	if err := opts.ValidateForCourt(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	if opts.Court != nil {
		if err := opts.Court.Validate(); err != nil {
			return nil, nil, false, err
		}
		c, applied := r.applyOps(ctx, opts.Court, opts.Ops)
		return c, applied, false, nil
	}

	cacheKey := r.Keyer.CourtKey(opts.CourtKeyOpts())

	if !opts.Refresh {
		var cached cachedCourt
		if err := cache.GetJSON(ctx, r.Cache, cacheKey, &cached); err == nil {
			if c, err := cached.Court.Decode(); err == nil {
				observability.Cache().OnCacheHit(ctx, "court")
				return c, cached.Applied, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "court")
	}

	desc := opts.Describe()
	observability.Pipeline().OnGenerateStart(ctx, desc)
	start := time.Now()
	base, err := generate(opts)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, desc, 0, time.Since(start), err)
		return nil, nil, false, err
	}
	observability.Pipeline().OnGenerateComplete(ctx, desc, countSections(base), time.Since(start), nil)

	c, applied := r.applyOps(ctx, base, opts.Ops)

	entry := cachedCourt{Court: io.Encode(c), Applied: applied}
	if err := cache.SetJSON(ctx, r.Cache, cacheKey, entry, cache.TTLCourt); err == nil {
		observability.Cache().OnCacheSet(ctx, "court", 0)
	} else {
		r.Logger.Debug("cache write failed", "stage", "court", "error", err)
	}

	return c, applied, false, nil
}

// BuildCourt is a convenience wrapper that calls BuildCourtWithCacheInfo and discards the cache hit info.
func (r *Runner) BuildCourt(ctx context.Context, opts Options) (*court.Court, []bool, error) {
	c, applied, _, err := r.BuildCourtWithCacheInfo(ctx, opts)
	return c, applied, err
}

func generate(opts Options) (*court.Court, error) {
	if opts.Standalone {
		return court.GenerateStandalone(), nil
	}
	return court.Generate(opts.Width, opts.Length, opts.EndHeight, opts.SideHeight)
}

// applyOps applies ops in order and reports each outcome.
func (r *Runner) applyOps(ctx context.Context, c *court.Court, ops []edit.Op) (*court.Court, []bool) {
	applied := make([]bool, len(ops))
	for i, op := range ops {
		var ok bool
		c, ok = op.Apply(c)
		applied[i] = ok
		observability.Pipeline().OnEdit(ctx, op.String(), ok)
		if !ok {
			r.Logger.Warn("edit rejected", "op", op.String(), "reason", op.Check(c))
		}
	}
	return c, applied
}

// BOMWithCacheInfo computes the bill of materials with caching and returns
// cache hit info.
func (r *Runner) BOMWithCacheInfo(ctx context.Context, c *court.Court) ([]bom.Item, bool, error) {
	cacheKey := r.Keyer.BOMKey(CourtHash(c))

	var items []bom.Item
	if err := cache.GetJSON(ctx, r.Cache, cacheKey, &items); err == nil {
		observability.Cache().OnCacheHit(ctx, "bom")
		return items, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "bom")

	start := time.Now()
	items = bom.Calculate(c)
	observability.Pipeline().OnBOM(ctx, len(items), bom.Total(items), time.Since(start))

	if err := cache.SetJSON(ctx, r.Cache, cacheKey, items, cache.TTLBOM); err == nil {
		observability.Cache().OnCacheSet(ctx, "bom", 0)
	}
	return items, false, nil
}

// BOM is a convenience wrapper that calls BOMWithCacheInfo and discards the cache hit info.
func (r *Runner) BOM(ctx context.Context, c *court.Court) ([]bom.Item, error) {
	items, _, err := r.BOMWithCacheInfo(ctx, c)
	return items, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *court.Court, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	courtHash := CourtHash(c)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(courtHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil || !hit {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, c, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(courtHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, c *court.Court, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, c, opts)
	return artifacts, err
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

// CourtHash returns the content hash of c's compact JSON encoding.
func CourtHash(c *court.Court) string {
	data, err := io.Marshal(c)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func countSections(c *court.Court) int {
	n := 0
	for _, id := range c.WallIDs() {
		n += len(c.Sections(id))
	}
	return n
}
