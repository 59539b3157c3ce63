package chart

import (
	"bytes"

	"github.com/strataviz/strata/pkg/scale"
	"github.com/strataviz/strata/pkg/stack"
)

// StackedArea renders the dataset as a stacked area chart: one closed band
// polygon per series, bottom to top in draw order.
func StackedArea(data []stack.Series[string], opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	bands, yMin, yMax, err := stackBands(data, cfg)
	if err != nil {
		return nil, err
	}
	return drawArea(bands, yMin, yMax, cfg), nil
}

func drawArea(bands [][]stack.Band, yMin, yMax float64, cfg renderConfig) []byte {
	var buf bytes.Buffer
	openDocument(&buf, cfg)

	x := scale.NewLinear(0, 1, margin, float64(cfg.width)-margin)
	y := scale.NewLinear(yMin, yMax, float64(cfg.height)-margin, margin)

	drawYAxis(&buf, y, cfg)
	for k, row := range bands {
		p := stack.ToArea(cfg.curve, x, y, row)
		writePath(&buf, p, cfg.style.Fill(k), cfg.style.Stroke(k))
	}

	closeDocument(&buf)
	return buf.Bytes()
}
