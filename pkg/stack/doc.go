// Package stack implements the stacked-series layout engine.
//
// Given several parallel data series, the engine determines the drawing order
// of series, applies a vertical offset transform, and produces stacked
// (lower, upper) band coordinates per series plus the overall y-extent needed
// for scaling. On request it also builds the closed polygon outline bounding
// a band when rendered as a filled area.
//
// # Pipeline
//
// [Stack] runs a single synchronous pass:
//
//  1. The order policy permutes the (label, values) pairs.
//  2. Each value is tagged with its zero-based sample index.
//  3. The offset policy turns the tagged values into (lower, upper) bands.
//
// Order and offset policies are plain function values ([OrderFn], [OffsetFn])
// with documented contracts; [Stack] validates that they preserved series
// count and per-series length and fails fast with a SHAPE_MISMATCH error when
// they did not. Shapes are never silently repaired.
//
// # Purity
//
// Everything in this package is a pure function over immutable inputs: no
// shared mutable state, no caching, no side effects. Calls are independent
// and safe to run concurrently without coordination. Re-running any function
// with the same inputs yields identical output.
package stack
