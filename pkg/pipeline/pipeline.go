// Package pipeline provides the core chart pipeline for strata.
//
// This package implements the stack → render pipeline shared by the CLI, the
// TUI, and the HTTP server. By centralizing this logic, all entry points get
// identical behavior and caching for free.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Stack: Run the order/offset pipeline over the dataset and reduce it to
//     a serializable band layout with its y extent.
//  2. Render: Draw the layout in the requested output formats (SVG, JSON).
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage result is cached under a content-addressed key.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Chart:  "area",
//	    Offset: "stacked",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/chart"
	"github.com/strataviz/strata/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI, and Server
// =============================================================================

const (
	// DefaultChart is the default chart type.
	DefaultChart = "area"

	// DefaultWidth is the default frame width in SVG user units.
	DefaultWidth = 800

	// DefaultHeight is the default frame height in SVG user units.
	DefaultHeight = 400

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultCurve is the default curve interpolation.
	DefaultCurve = "linear"

	// DefaultOffset is the default offset policy.
	DefaultOffset = "stacked"

	// DefaultOrder is the default order policy.
	DefaultOrder = "none"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Stack options
	Chart  string `json:"chart,omitempty"`
	Offset string `json:"offset,omitempty"`
	Order  string `json:"order,omitempty"`

	// Render options
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Style   string   `json:"style,omitempty"`
	Curve   string   `json:"curve,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed band layout (zero-valued for static demos).
	Layout Layout

	// DataHash is the content hash of the input dataset.
	DataHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	SampleCount int
	StackTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	StackHit  bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateChart checks that a chart type is registered in the gallery.
func ValidateChart(name string) error {
	_, err := chart.Lookup(name)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForStack(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetStackDefaults sets default values for the stack stage.
func (o *Options) SetStackDefaults() {
	if o.Chart == "" {
		o.Chart = DefaultChart
	}
	if o.Offset == "" {
		o.Offset = DefaultOffset
	}
	if o.Order == "" {
		o.Order = DefaultOrder
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForStack validates and sets defaults for the stack stage.
func (o *Options) ValidateForStack() error {
	o.SetStackDefaults()
	if err := ValidateChart(o.Chart); err != nil {
		return err
	}
	if _, err := OffsetByName(o.Offset); err != nil {
		return err
	}
	if _, err := OrderByName(o.Order); err != nil {
		return err
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Curve == "" {
		o.Curve = DefaultCurve
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := chart.StyleByName(o.Style); err != nil {
		return err
	}
	if _, err := CurveByName(o.Curve); err != nil {
		return err
	}
	return nil
}

// IsStacked reports whether the configured chart goes through the stack
// stage rather than being a static demo.
func (o *Options) IsStacked() bool {
	return chart.IsStacked(o.Chart)
}

// LayoutKeyOpts returns cache key options for the stack stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Chart:  o.Chart,
		Order:  o.Order,
		Offset: o.Offset,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Curve:  o.Curve,
		Width:  o.Width,
		Height: o.Height,
	}
}

// renderOptions converts the string-keyed options to chart render options.
// Callers must have validated first; unknown names fall back to defaults.
func (o *Options) renderOptions() []chart.Option {
	opts := []chart.Option{chart.WithSize(o.Width, o.Height)}
	if s, err := chart.StyleByName(o.Style); err == nil {
		opts = append(opts, chart.WithStyle(s))
	}
	if c, err := CurveByName(o.Curve); err == nil {
		opts = append(opts, chart.WithCurve(c))
	}
	if offset, err := OffsetByName(o.Offset); err == nil {
		opts = append(opts, chart.WithOffset(offset))
	}
	if order, err := OrderByName(o.Order); err == nil {
		opts = append(opts, chart.WithOrder(order))
	}
	return opts
}
