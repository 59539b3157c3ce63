package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/chart"
	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/observability"
	"github.com/strataviz/strata/pkg/stack"
)

// Runner encapsulates pipeline execution with caching.
// CLI, TUI, and server all use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
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

// Execute runs the complete stack → render pipeline with caching.
// Static demo charts skip the stack stage and go straight to rendering.
func (r *Runner) Execute(ctx context.Context, data []stack.Series[string], opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
		DataHash:  hashDataset(data),
	}
	result.Stats.SeriesCount = len(data)
	if len(data) > 0 {
		result.Stats.SampleCount = len(data[0].Values)
	}

	// Stage 1: Stack
	stackStart := time.Now()
	layout, stackHit, err := r.StackWithCacheInfo(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats.StackTime = time.Since(stackStart)
	result.CacheInfo.StackHit = stackHit

	r.Logger.Info("stacked series",
		"chart", opts.Chart,
		"series", result.Stats.SeriesCount,
		"samples", result.Stats.SampleCount,
		"duration", result.Stats.StackTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// StackWithCacheInfo runs the stack stage with caching and returns cache hit
// info. Static demo charts return a frame-only layout without touching the
// cache.
func (r *Runner) StackWithCacheInfo(ctx context.Context, data []stack.Series[string], opts Options) (Layout, bool, error) {
	if err := opts.ValidateForStack(); err != nil {
		return Layout{}, false, err
	}
	opts.SetRenderDefaults()
	r.applyLogger(&opts)

	if !opts.IsStacked() {
		return Layout{Chart: opts.Chart, Width: opts.Width, Height: opts.Height}, false, nil
	}

	observability.Pipeline().OnStackStart(ctx, opts.Chart, len(data))
	start := time.Now()

	cacheKey := r.Keyer.LayoutKey(hashDataset(data), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			l, err := UnmarshalLayout(cached)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				observability.Pipeline().OnStackComplete(ctx, opts.Chart, time.Since(start), nil)
				return l, true, nil
			}
			// Corrupt cache entry, fall through to recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	l, err := computeLayout(data, opts)
	if err != nil {
		observability.Pipeline().OnStackComplete(ctx, opts.Chart, time.Since(start), err)
		return Layout{}, false, err
	}

	if serialized, err := MarshalLayout(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, serialized, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(serialized))
	}

	observability.Pipeline().OnStackComplete(ctx, opts.Chart, time.Since(start), nil)
	return l, false, nil
}

// Stack is a convenience wrapper that discards the cache hit info.
func (r *Runner) Stack(ctx context.Context, data []stack.Series[string], opts Options) (Layout, error) {
	l, _, err := r.StackWithCacheInfo(ctx, data, opts)
	return l, err
}

// RenderWithCacheInfo runs the render stage with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	opts.SetStackDefaults()
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, layout.Chart, opts.Formats)
	start := time.Now()

	layoutData, err := MarshalLayout(layout)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			observability.Pipeline().OnRenderComplete(ctx, layout.Chart, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := renderFormats(layout, layoutData, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, layout.Chart, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	observability.Pipeline().OnRenderComplete(ctx, layout.Chart, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
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

// computeLayout runs the order/offset pipeline and reduces the result to a
// serializable layout.
func computeLayout(data []stack.Series[string], opts Options) (Layout, error) {
	order, err := OrderByName(opts.Order)
	if err != nil {
		return Layout{}, err
	}
	offset, err := OffsetByName(opts.Offset)
	if err != nil {
		return Layout{}, err
	}

	res, err := stack.Stack(stack.Config[string]{
		Data:   data,
		Order:  order,
		Offset: offset,
	})
	if err != nil {
		return Layout{}, err
	}

	yMin, yMax := stack.Extremes(res.Bands)
	return Layout{
		Chart:  opts.Chart,
		Width:  opts.Width,
		Height: opts.Height,
		Labels: res.Labels,
		Bands:  res.Bands,
		YMin:   yMin,
		YMax:   yMax,
	}, nil
}

// renderFormats draws the layout in every requested format.
// The JSON artifact is the serialized layout itself.
func renderFormats(layout Layout, layoutData []byte, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			out[format] = layoutData
		case FormatSVG:
			svgData, err := renderSVG(layout, opts)
			if err != nil {
				return nil, err
			}
			out[format] = svgData
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return out, nil
}

func renderSVG(layout Layout, opts Options) ([]byte, error) {
	if chart.IsStacked(layout.Chart) {
		return chart.DrawStacked(layout.Chart, layout.Labels, layout.Bands,
			layout.YMin, layout.YMax, opts.renderOptions()...)
	}
	renderer, err := chart.Lookup(layout.Chart)
	if err != nil {
		return nil, err
	}
	return renderer(nil, opts.renderOptions()...)
}

// hashDataset produces a content hash of the input series for cache keys.
func hashDataset(data []stack.Series[string]) string {
	serialized, _ := json.Marshal(data)
	return cache.Hash(serialized)
}
