package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/stack"
)

func testData() []stack.Series[string] {
	return []stack.Series[string]{
		{Label: "a", Values: []float64{1, 2}},
		{Label: "b", Values: []float64{3, 4}},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateChart(t *testing.T) {
	tests := []struct {
		chart   string
		wantErr bool
	}{
		{"area", false},
		{"bars", false},
		{"arcs", false},
		{"sunburst", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateChart(tt.chart)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateChart(%q) error = %v, wantErr %v", tt.chart, err, tt.wantErr)
		}
	}
}

func TestPolicyByName(t *testing.T) {
	if _, err := OffsetByName("expand"); err != nil {
		t.Errorf("expand offset should resolve: %v", err)
	}
	if _, err := OffsetByName("wiggle"); !errors.Is(err, errors.ErrCodeInvalidOffset) {
		t.Errorf("unknown offset error = %v, want INVALID_OFFSET", err)
	}

	if _, err := OrderByName("insideout"); err != nil {
		t.Errorf("insideout order should resolve: %v", err)
	}
	if _, err := OrderByName("random"); !errors.Is(err, errors.ErrCodeInvalidOrder) {
		t.Errorf("unknown order error = %v, want INVALID_ORDER", err)
	}

	if _, err := CurveByName("smooth"); err != nil {
		t.Errorf("smooth curve should resolve: %v", err)
	}
	if _, err := CurveByName("bezier"); !errors.Is(err, errors.ErrCodeInvalidCurve) {
		t.Errorf("unknown curve error = %v, want INVALID_CURVE", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Empty options should validate: %v", err)
	}

	if opts.Chart != DefaultChart {
		t.Errorf("Chart should be %s, got %s", DefaultChart, opts.Chart)
	}
	if opts.Offset != DefaultOffset {
		t.Errorf("Offset should be %s, got %s", DefaultOffset, opts.Offset)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("Frame should be %dx%d, got %dx%d", DefaultWidth, DefaultHeight, opts.Width, opts.Height)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Chart: "bars", Style: "vivid"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalChart := opts.Chart
	originalStyle := opts.Style
	originalCurve := opts.Curve

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Chart != originalChart || opts.Style != originalStyle || opts.Curve != originalCurve {
		t.Error("Options changed on second call")
	}
}

func TestOptionsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad chart", Options{Chart: "sunburst"}, errors.ErrCodeChartNotFound},
		{"bad offset", Options{Offset: "wiggle"}, errors.ErrCodeInvalidOffset},
		{"bad order", Options{Order: "shuffled"}, errors.ErrCodeInvalidOrder},
		{"bad style", Options{Style: "neon"}, errors.ErrCodeInvalidStyle},
		{"bad curve", Options{Curve: "bezier"}, errors.ErrCodeInvalidCurve},
		{"bad format", Options{Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	want := Layout{
		Chart:  "area",
		Width:  800,
		Height: 400,
		Labels: []string{"a", "b"},
		Bands: [][]stack.Band{
			{{Lower: 0, Upper: 1}},
			{{Lower: 1, Upper: 4}},
		},
		YMin: 0,
		YMax: 4,
	}

	data, err := MarshalLayout(want)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := (Layout{}).Validate(); err == nil {
		t.Error("missing chart should fail validation")
	}

	bad := Layout{Chart: "area", Labels: []string{"a"}, Bands: nil}
	if err := bad.Validate(); err == nil {
		t.Error("label/band count mismatch should fail validation")
	}

	if _, err := UnmarshalLayout([]byte(`{"chart":`)); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestReadWriteLayout(t *testing.T) {
	l := Layout{Chart: "bars", Labels: []string{"x"}, Bands: [][]stack.Band{{{Upper: 1}}}}

	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	got, err := ReadLayout(&buf)
	if err != nil {
		t.Fatalf("ReadLayout: %v", err)
	}
	if diff := cmp.Diff(l, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, testData(), Options{
		Chart:   "area",
		Formats: []string{"svg", "json"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.DataHash == "" {
		t.Error("DataHash should be set")
	}
	if result.Stats.SeriesCount != 2 || result.Stats.SampleCount != 2 {
		t.Errorf("Stats = %+v, want 2 series x 2 samples", result.Stats)
	}
	if !strings.HasPrefix(string(result.Artifacts["svg"]), "<svg") {
		t.Error("svg artifact should be an SVG document")
	}
	if _, err := UnmarshalLayout(result.Artifacts["json"]); err != nil {
		t.Errorf("json artifact should be a valid layout: %v", err)
	}

	// Stacked layout carries the reference baseline-sum geometry.
	wantBands := [][]stack.Band{
		{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 2}},
		{{Lower: 1, Upper: 4}, {Lower: 2, Upper: 6}},
	}
	if diff := cmp.Diff(wantBands, result.Layout.Bands); diff != "" {
		t.Errorf("layout bands mismatch (-want +got):\n%s", diff)
	}
	if result.Layout.YMin != 0 || result.Layout.YMax != 6 {
		t.Errorf("y extent = (%v, %v), want (0, 6)", result.Layout.YMin, result.Layout.YMax)
	}
}

func TestRunnerExecuteStaticChart(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, nil, Options{Chart: "arcs"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Layout.Bands) != 0 {
		t.Error("static demo should produce no band layout")
	}
	if !strings.HasPrefix(string(result.Artifacts["svg"]), "<svg") {
		t.Error("svg artifact should be an SVG document")
	}
}

func TestRunnerCachesStages(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{Chart: "area"}

	first, err := runner.Execute(ctx, testData(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.StackHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, testData(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.StackHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit both stages, got %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached artifact should match the rendered one")
	}

	// Refresh bypasses the cache.
	refreshOpts := opts
	refreshOpts.Refresh = true
	third, err := runner.Execute(ctx, testData(), refreshOpts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.StackHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run should bypass cache, got %+v", third.CacheInfo)
	}
}

func TestRunnerPropagatesShapeMismatch(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	ragged := []stack.Series[string]{
		{Label: "a", Values: []float64{1, 2}},
		{Label: "b", Values: []float64{3}},
	}
	_, err := runner.Execute(ctx, ragged, Options{Chart: "area"})
	if !errors.Is(err, errors.ErrCodeShapeMismatch) {
		t.Errorf("error = %v, want SHAPE_MISMATCH", err)
	}
}

func TestRunnerDifferentOptionsDifferentKeys(t *testing.T) {
	keyer := cache.NewDefaultKeyer()
	stacked := Options{Chart: "area", Offset: "stacked"}
	expand := Options{Chart: "area", Offset: "expand"}
	stacked.SetStackDefaults()
	expand.SetStackDefaults()

	k1 := keyer.LayoutKey("hash", stacked.LayoutKeyOpts())
	k2 := keyer.LayoutKey("hash", expand.LayoutKeyOpts())
	if k1 == k2 {
		t.Error("different offsets should produce different layout keys")
	}
}
