// Package chart is the gallery of chart renderers.
//
// Each renderer is a thin composition over the stacking engine and the SVG
// path layer: stacked area and bar charts run the full order/offset pipeline,
// the polar and petal charts reuse the band geometry radially, and the arcs
// and paths entries are static demos of the path primitives.
//
// Renderers share one signature, so the CLI, the TUI, and the HTTP server all
// drive the gallery through the same registry:
//
//	r, err := chart.Lookup("area")
//	svg, err := r(data, chart.WithSize(800, 400), chart.WithStyle(chart.Vivid{}))
//
// Rendering options follow the functional option pattern; unset options fall
// back to sensible defaults (800x400, simple style, linear curve, stacked
// offset, input order).
package chart
