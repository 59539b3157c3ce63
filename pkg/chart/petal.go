package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// Petal renders the dataset as a radial petal layout: one petal per series,
// evenly spaced around the center, petal length proportional to the series
// peak after stacking. Labels sit past each petal tip.
func Petal(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	res, err := stack.Stack(stack.Config[string]{
		Data:   data,
		Order:  cfg.order,
		Offset: cfg.offset,
	})
	if err != nil {
		return nil, err
	}
	_, yMax := stack.Extremes(res.Bands)
	return drawPetal(res.Labels, res.Bands, 0, yMax, cfg), nil
}

func drawPetal(labels []string, bands [][]stack.Band, yMin, yMax float64, cfg renderConfig) []byte {
	var buf bytes.Buffer
	openDocument(&buf, cfg)

	if len(bands) == 0 {
		closeDocument(&buf)
		return buf.Bytes()
	}

	cx := float64(cfg.width) / 2
	cy := float64(cfg.height) / 2
	radius := min(cx, cy) - margin
	r := scale.NewLinear(yMin, yMax, 0, radius)

	angles := stack.EvenlySpaced(len(bands), 0, 2*math.Pi)
	halfWidth := math.Pi / float64(len(bands)) * 0.6

	for k, row := range bands {
		length := r.Convert(rowPeak(row))
		if length <= 0 {
			continue
		}
		theta := angles[k]

		tip := polarPoint(cx, cy, length, theta)
		left := polarPoint(cx, cy, length*0.55, theta-halfWidth)
		right := polarPoint(cx, cy, length*0.55, theta+halfWidth)

		var p svg.Path
		p.MoveTo(svg.Point{X: cx, Y: cy})
		p.QuadTo(left, tip)
		p.QuadTo(right, svg.Point{X: cx, Y: cy})
		p.Close()
		writePath(&buf, p, cfg.style.Fill(k), cfg.style.Stroke(k))

		if k < len(labels) {
			at := polarPoint(cx, cy, length+12, theta)
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="11" fill="%s" text-anchor="middle">%s</text>`+"\n",
				at.X, at.Y, axisColor, labels[k])
		}
	}

	closeDocument(&buf)
	return buf.Bytes()
}

// rowPeak is the largest band component in a series row.
func rowPeak(row []stack.Band) float64 {
	peak := 0.0
	for _, b := range row {
		peak = max(peak, b.Lower, b.Upper)
	}
	return peak
}
