// Package pkg provides the core libraries for the strata chart gallery.
//
// # Overview
//
// Strata renders stacked-series charts as SVG. The heart of the library is a
// small, pure layout engine that turns parallel data series into stacked
// (lower, upper) bands and closed area outlines; everything else is thin
// composition around it.
//
// The typical data flow:
//
//	Series data (JSON)
//	         ↓
//	    [stack] package (order → offset → stacked bands, extremes)
//	         ↓
//	    [scale] package (band coordinates → frame coordinates)
//	         ↓
//	    [svg] package (band outlines → path geometry)
//	         ↓
//	    [chart] package (gallery glue: axes, palettes, document emission)
//	         ↓
//	    SVG/JSON output
//
// # Main Packages
//
// [stack] - The stacked-series layout engine. Pluggable order and offset
// policies, extremes reduction, interval sampling, and area path building.
// Pure, synchronous, safe for concurrent use.
//
// [scale] - Continuous numeric scales (linear) mapping domain intervals onto
// range intervals, plus tick generation for axis glue.
//
// [svg] - Declarative path model (subpaths, drawing commands) and pluggable
// curve interpolation strategies (linear, step, smooth).
//
// [chart] - The gallery: stacked area, stacked bar, polar plot, radial petal
// layout, corner-radius arcs, and a path-drawing demo. Each is a thin
// composition of scale/stack/svg calls.
//
// [pipeline] - Orchestration (load → stack → render) with per-stage caching,
// used by the CLI, the TUI view-switcher, and the HTTP server.
//
// [cache] - Cache backends (file, Redis, MongoDB, null) with typed key
// builders and content hashing.
//
// [io] - Series data import and artifact export.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// # Quick Start
//
// Stack two series and build an area outline:
//
//	import (
//	    "github.com/strataviz/strata/pkg/scale"
//	    "github.com/strataviz/strata/pkg/stack"
//	    "github.com/strataviz/strata/pkg/svg"
//	)
//
//	res, err := stack.Stack(stack.Config[string]{
//	    Data: []stack.Series[string]{
//	        {Label: "a", Values: []float64{1, 2}},
//	        {Label: "b", Values: []float64{3, 4}},
//	    },
//	})
//	if err != nil {
//	    // a supplied policy function violated its contract
//	}
//
//	lo, hi := stack.Extremes(res.Bands)
//	x := scale.NewLinear(0, 1, 0, 800)
//	y := scale.NewLinear(lo, hi, 600, 0)
//	path := stack.ToArea(svg.CurveLinear, x, y, res.Bands[0])
//
// [stack]: https://pkg.go.dev/github.com/strataviz/strata/pkg/stack
// [scale]: https://pkg.go.dev/github.com/strataviz/strata/pkg/scale
// [svg]: https://pkg.go.dev/github.com/strataviz/strata/pkg/svg
// [chart]: https://pkg.go.dev/github.com/strataviz/strata/pkg/chart
// [pipeline]: https://pkg.go.dev/github.com/strataviz/strata/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/strataviz/strata/pkg/cache
// [io]: https://pkg.go.dev/github.com/strataviz/strata/pkg/io
// [errors]: https://pkg.go.dev/github.com/strataviz/strata/pkg/errors
// [observability]: https://pkg.go.dev/github.com/strataviz/strata/pkg/observability
package pkg
