package chart

import (
	"bytes"
	"fmt"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/stack"
)

// barGap is the horizontal padding between neighboring columns, as a fraction
// of the column slot width.
const barGap = 0.2

// StackedBars renders the dataset as stacked columns: one column per sample
// position, one segment per series.
func StackedBars(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	bands, yMin, yMax, err := stackBands(data, cfg)
	if err != nil {
		return nil, err
	}
	return drawBars(bands, yMin, yMax, cfg), nil
}

func drawBars(bands [][]stack.Band, yMin, yMax float64, cfg renderConfig) []byte {
	var buf bytes.Buffer
	openDocument(&buf, cfg)

	samples := 0
	if len(bands) > 0 {
		samples = len(bands[0])
	}
	if samples == 0 {
		closeDocument(&buf)
		return buf.Bytes()
	}

	y := scale.NewLinear(yMin, yMax, float64(cfg.height)-margin, margin)
	drawYAxis(&buf, y, cfg)

	slot := (float64(cfg.width) - 2*margin) / float64(samples)
	barWidth := slot * (1 - barGap)

	for k, row := range bands {
		for i, b := range row {
			lo, hi := b.Lower, b.Upper
			if hi < lo {
				lo, hi = hi, lo
			}
			top := y.Convert(hi)
			bottom := y.Convert(lo)
			if bottom < top {
				top, bottom = bottom, top
			}
			px := margin + float64(i)*slot + (slot-barWidth)/2
			fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
				px, top, barWidth, bottom-top, cfg.style.Fill(k), cfg.style.Stroke(k))
		}
	}

	closeDocument(&buf)
	return buf.Bytes()
}
