package chart

import (
	"bytes"
	"fmt"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// demoValues is the sawtooth sample set every curve strategy draws, so the
// strategies can be compared on identical geometry.
var demoValues = []float64{2, 6, 3, 8, 4, 7, 1, 5}

// PathDemo is a static demo of the curve interpolation strategies: the same
// point sequence drawn with linear, step, and smooth interpolation.
func PathDemo(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)

	var buf bytes.Buffer
	openDocument(&buf, cfg)

	x := scale.NewLinear(0, 1, margin, float64(cfg.width)-margin)
	y := scale.NewLinear(0, 10, float64(cfg.height)-margin, margin)
	rangeLo, rangeHi := x.Range()
	xs := stack.EvenlySpaced(len(demoValues)-1, rangeLo, rangeHi)

	pts := make([]svg.Point, len(demoValues))
	for i, v := range demoValues {
		pts[i] = svg.Point{X: xs[i], Y: y.Convert(v)}
	}

	curves := []struct {
		name  string
		curve svg.Curve
	}{
		{"linear", svg.CurveLinear},
		{"step", svg.CurveStep},
		{"smooth", svg.CurveSmooth},
	}

	for k, c := range curves {
		var p svg.Path
		p.MoveTo(pts[0])
		c.curve(&p, pts)
		fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
			p.String(), cfg.style.Fill(k))
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="11" fill="%s">%s</text>`+"\n",
			margin, margin-8+float64(k)*14, cfg.style.Fill(k), c.name)
	}

	closeDocument(&buf)
	return buf.Bytes(), nil
}
