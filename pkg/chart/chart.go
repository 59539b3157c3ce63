package chart

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// margin is the frame inset in SVG user units shared by all renderers.
const margin = 40.0

// Renderer turns a dataset into a finished SVG document.
// Static demos (arcs, paths) ignore the dataset.
type Renderer func(data []stack.Series[string], opts ...Option) ([]byte, error)

// Option configures a render call.
type Option func(*renderConfig)

type renderConfig struct {
	width, height int
	style         Style
	curve         svg.Curve
	order         stack.OrderFn[string]
	offset        stack.OffsetFn
}

// WithSize sets the document dimensions in SVG user units.
func WithSize(width, height int) Option {
	return func(c *renderConfig) { c.width, c.height = width, height }
}

// WithStyle sets the visual style.
func WithStyle(s Style) Option { return func(c *renderConfig) { c.style = s } }

// WithCurve sets the curve interpolation for boundary drawing.
func WithCurve(cv svg.Curve) Option { return func(c *renderConfig) { c.curve = cv } }

// WithOrder sets the series order policy for stacked charts.
func WithOrder(o stack.OrderFn[string]) Option { return func(c *renderConfig) { c.order = o } }

// WithOffset sets the offset policy for stacked charts.
func WithOffset(o stack.OffsetFn) Option { return func(c *renderConfig) { c.offset = o } }

func newRenderConfig(opts ...Option) renderConfig {
	c := renderConfig{
		width:  800,
		height: 400,
		style:  Simple{},
		curve:  svg.CurveLinear,
		order:  stack.OrderNone[string],
		offset: stack.OffsetStacked,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.width <= 0 {
		c.width = 800
	}
	if c.height <= 0 {
		c.height = 400
	}
	if c.style == nil {
		c.style = Simple{}
	}
	if c.curve == nil {
		c.curve = svg.CurveLinear
	}
	return c
}

// gallery maps chart names to their renderers.
var gallery = map[string]Renderer{
	"area":  StackedArea,
	"bars":  StackedBars,
	"polar": Polar,
	"petal": Petal,
	"arcs":  Arcs,
	"paths": PathDemo,
}

// Names returns the registered chart names in sorted order.
func Names() []string {
	names := make([]string, 0, len(gallery))
	for name := range gallery {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Renderer, error) {
	r, ok := gallery[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeChartNotFound, "unknown chart type: %s", name)
	}
	return r, nil
}

// DrawStacked renders a previously computed stacked layout under the named
// chart type. Only the stacked charts can be drawn from bands; the static
// demos have no layout stage.
func DrawStacked(name string, labels []string, bands [][]stack.Band, yMin, yMax float64, opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	switch name {
	case "area":
		return drawArea(bands, yMin, yMax, cfg), nil
	case "bars":
		return drawBars(bands, yMin, yMax, cfg), nil
	case "polar":
		return drawPolar(bands, yMin, yMax, cfg), nil
	case "petal":
		return drawPetal(labels, bands, yMin, yMax, cfg), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "chart %s has no stacked layout", name)
	}
}

// IsStacked reports whether the named chart goes through the stacking
// pipeline (and so can be layout-cached) rather than being a static demo.
func IsStacked(name string) bool {
	switch name {
	case "area", "bars", "polar", "petal":
		return true
	}
	return false
}

// stackBands runs the order/offset pipeline with the configured policies and
// returns the bands plus the zero-seeded y extent.
func stackBands(data []stack.Series[string], cfg renderConfig) ([][]stack.Band, float64, float64, error) {
	res, err := stack.Stack(stack.Config[string]{
		Data:   data,
		Order:  cfg.order,
		Offset: cfg.offset,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	yMin, yMax := stack.Extremes(res.Bands)
	return res.Bands, yMin, yMax, nil
}

func openDocument(buf *bytes.Buffer, cfg renderConfig) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		cfg.width, cfg.height, cfg.width, cfg.height)
	if bg := cfg.style.Background(); bg != "" {
		fmt.Fprintf(buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", cfg.width, cfg.height, bg)
	}
	cfg.style.RenderDefs(buf)
}

func closeDocument(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}

func writePath(buf *bytes.Buffer, p svg.Path, fill, stroke string) {
	if p.Empty() {
		return
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		p.String(), fill, stroke)
}
