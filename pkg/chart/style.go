package chart

import (
	"bytes"

	"github.com/strataviz/strata/pkg/errors"
)

// Style defines the visual appearance of a rendered chart.
// Implementations control colors and any shared SVG defs; geometry is the
// renderers' business.
type Style interface {
	// Name returns the registry name of the style.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// Fill returns the fill color for the i-th series.
	Fill(i int) string
	// Stroke returns the stroke color for the i-th series.
	Stroke(i int) string
	// Background returns the document background, empty for none.
	Background() string
}

// Simple is the default style: muted fills, darker strokes, no defs.
type Simple struct{}

var simpleFills = []string{
	"#8da0cb", "#fc8d62", "#66c2a5", "#e78ac3", "#a6d854", "#ffd92f",
}

var simpleStrokes = []string{
	"#5a6e9e", "#c75f36", "#3d9478", "#b55a94", "#77a32c", "#cca912",
}

// Name returns "simple".
func (Simple) Name() string { return "simple" }

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// Fill returns a muted palette color, cycling past the palette end.
func (Simple) Fill(i int) string { return simpleFills[i%len(simpleFills)] }

// Stroke returns a darker companion of the fill.
func (Simple) Stroke(i int) string { return simpleStrokes[i%len(simpleStrokes)] }

// Background returns a near-white backdrop.
func (Simple) Background() string { return "#fcfcfa" }

// Vivid is a saturated style with a soft shadow filter on shapes.
type Vivid struct{}

var vividFills = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#f0c010",
}

// Name returns "vivid".
func (Vivid) Name() string { return "vivid" }

// RenderDefs writes the shadow filter referenced by Stroke consumers.
func (Vivid) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="soft" x="-20%" y="-20%" width="140%" height="140%">
      <feDropShadow dx="0" dy="1" stdDeviation="1.5" flood-opacity="0.3"/>
    </filter>
  </defs>
`)
}

// Fill returns a saturated palette color, cycling past the palette end.
func (Vivid) Fill(i int) string { return vividFills[i%len(vividFills)] }

// Stroke returns white separators between the saturated fills.
func (Vivid) Stroke(i int) string { return "#ffffff" }

// Background returns a dark backdrop.
func (Vivid) Background() string { return "#1c1c28" }

// StyleByName returns the style registered under name.
func StyleByName(name string) (Style, error) {
	switch name {
	case "simple":
		return Simple{}, nil
	case "vivid":
		return Vivid{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style: %s", name)
}

// StyleNames returns the registered style names in sorted order.
func StyleNames() []string { return []string{"simple", "vivid"} }
