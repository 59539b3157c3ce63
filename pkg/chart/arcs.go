package chart

import (
	"bytes"

	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// Arcs is a static demo of elliptical arc segments: a row of rectangles with
// growing corner radii, from sharp corners to a full capsule.
func Arcs(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)

	var buf bytes.Buffer
	openDocument(&buf, cfg)

	const count = 5
	slot := (float64(cfg.width) - 2*margin) / count
	boxW := slot * 0.8
	boxH := float64(cfg.height) - 2*margin

	for i := 0; i < count; i++ {
		// Radius grows from 0 to half the box height (a capsule).
		r := min(boxH/2*float64(i)/(count-1), boxW/2)
		x0 := margin + float64(i)*slot + (slot-boxW)/2
		p := roundedRect(x0, margin, boxW, boxH, r)
		writePath(&buf, p, cfg.style.Fill(i), cfg.style.Stroke(i))
	}

	closeDocument(&buf)
	return buf.Bytes(), nil
}

// roundedRect builds a closed rectangle outline whose corners are quarter
// arcs of radius r. r of zero degenerates to plain corners.
func roundedRect(x, y, w, h, r float64) svg.Path {
	var p svg.Path
	p.MoveTo(svg.Point{X: x + r, Y: y})
	p.LineTo(svg.Point{X: x + w - r, Y: y})
	if r > 0 {
		p.ArcTo(r, r, false, true, svg.Point{X: x + w, Y: y + r})
	}
	p.LineTo(svg.Point{X: x + w, Y: y + h - r})
	if r > 0 {
		p.ArcTo(r, r, false, true, svg.Point{X: x + w - r, Y: y + h})
	}
	p.LineTo(svg.Point{X: x + r, Y: y + h})
	if r > 0 {
		p.ArcTo(r, r, false, true, svg.Point{X: x, Y: y + h - r})
	}
	p.LineTo(svg.Point{X: x, Y: y + r})
	if r > 0 {
		p.ArcTo(r, r, false, true, svg.Point{X: x + r, Y: y})
	}
	p.Close()
	return p
}
