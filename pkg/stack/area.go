package stack

import (
	"slices"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/svg"
)

// ToArea builds the closed outline of one stacked band as a single subpath:
// the curve runs outward along the lower boundary, a straight connector joins
// the last lower point to the last upper point, the curve runs back along the
// reversed upper boundary, and the subpath closes onto its start.
//
// Band components are min/max-normalized first, since a (lower, upper) pair
// may arrive either way around after offsetting. X positions come from
// sampling the x scale's range evenly; y values go through the y scale.
//
// A nil curve draws straight segments. Empty input yields a path with zero
// subpaths; a single-element band degenerates to the connector segment but is
// still one closed subpath, never a malformed curve invocation.
func ToArea(curve svg.Curve, x, y scale.Continuous, bands []Band) svg.Path {
	var p svg.Path
	if len(bands) == 0 {
		return p
	}
	if curve == nil {
		curve = svg.CurveLinear
	}

	rangeLo, rangeHi := x.Range()
	xs := EvenlySpaced(len(bands)-1, rangeLo, rangeHi)

	low := make([]svg.Point, len(bands))
	high := make([]svg.Point, len(bands))
	for i, b := range bands {
		lo, hi := b.Lower, b.Upper
		if hi < lo {
			lo, hi = hi, lo
		}
		low[i] = svg.Point{X: xs[i], Y: y.Convert(lo)}
		high[i] = svg.Point{X: xs[i], Y: y.Convert(hi)}
	}
	slices.Reverse(high)

	p.MoveTo(low[0])
	curve(&p, low)
	p.LineTo(high[0])
	curve(&p, high)
	p.Close()
	return p
}
