package chart

import (
	"bytes"
	"fmt"

	"github.com/strataviz/strata/pkg/scale"
)

// axisColor is shared by tick lines and labels so axes read as one element.
const axisColor = "#9a9aa0"

// drawYAxis writes horizontal grid lines with value labels for the vertical
// scale. Tick positions come from the scale's nice-step algorithm, so the
// labels land on round values regardless of the data extent.
func drawYAxis(buf *bytes.Buffer, y scale.Linear, cfg renderConfig) {
	for _, tick := range y.Ticks(5) {
		py := y.Convert(tick)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			margin, py, float64(cfg.width)-margin, py, axisColor)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="10" fill="%s" text-anchor="end">%g</text>`+"\n",
			margin-6, py+3, axisColor, tick)
	}
}
