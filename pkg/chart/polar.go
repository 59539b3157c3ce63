package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// Polar renders each series as a closed line in polar coordinates: sample
// positions map to angles around the circle, stacked upper bounds map to
// radius. The first sample is repeated at the full angle so the line closes
// back on its starting point.
func Polar(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	bands, yMin, yMax, err := stackBands(data, cfg)
	if err != nil {
		return nil, err
	}
	return drawPolar(bands, yMin, yMax, cfg), nil
}

func drawPolar(bands [][]stack.Band, yMin, yMax float64, cfg renderConfig) []byte {
	var buf bytes.Buffer
	openDocument(&buf, cfg)

	cx := float64(cfg.width) / 2
	cy := float64(cfg.height) / 2
	radius := min(cx, cy) - margin
	r := scale.NewLinear(yMin, yMax, 0, radius)

	// Faint reference rings at the tick radii.
	for _, tick := range r.Ticks(4) {
		fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.2f" fill="none" stroke="%s" stroke-width="0.5"/>`+"\n",
			cx, cy, r.Convert(tick), axisColor)
	}

	for k, row := range bands {
		if len(row) == 0 {
			continue
		}
		ring := stack.RepeatFirst(row)
		angles := stack.EvenlySpaced(len(ring)-1, 0, 2*math.Pi)

		pts := make([]svg.Point, len(ring))
		for i, b := range ring {
			hi := max(b.Lower, b.Upper)
			pts[i] = polarPoint(cx, cy, r.Convert(hi), angles[i])
		}

		var p svg.Path
		p.MoveTo(pts[0])
		cfg.curve(&p, pts)
		p.Close()
		fmt.Fprintf(&buf, `  <path d="%s" fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="1.5"/>`+"\n",
			p.String(), cfg.style.Fill(k), cfg.style.Stroke(k))
	}

	closeDocument(&buf)
	return buf.Bytes()
}

// polarPoint maps (radius, angle) to document coordinates, angle 0 at twelve
// o'clock growing clockwise.
func polarPoint(cx, cy, radius, angle float64) svg.Point {
	return svg.Point{
		X: cx + radius*math.Sin(angle),
		Y: cy - radius*math.Cos(angle),
	}
}
