package pipeline

import (
	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/stack"
	"github.com/strataviz/strata/pkg/svg"
)

// =============================================================================
// Policy Name Resolution
// =============================================================================

// ValidOffsets maps offset policy names to their implementations.
var ValidOffsets = map[string]stack.OffsetFn{
	"none":       stack.OffsetNone,
	"stacked":    stack.OffsetStacked,
	"expand":     stack.OffsetExpand,
	"silhouette": stack.OffsetSilhouette,
}

// ValidOrders maps order policy names to their implementations.
var ValidOrders = map[string]stack.OrderFn[string]{
	"none":       stack.OrderNone[string],
	"ascending":  stack.OrderAscending[string],
	"descending": stack.OrderDescending[string],
	"insideout":  stack.OrderInsideOut[string],
}

// ValidCurves maps curve names to their implementations.
var ValidCurves = map[string]svg.Curve{
	"linear": svg.CurveLinear,
	"step":   svg.CurveStep,
	"smooth": svg.CurveSmooth,
}

// OffsetByName resolves an offset policy name.
func OffsetByName(name string) (stack.OffsetFn, error) {
	fn, ok := ValidOffsets[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOffset,
			"invalid offset: %q (must be one of: none, stacked, expand, silhouette)", name)
	}
	return fn, nil
}

// OrderByName resolves an order policy name.
func OrderByName(name string) (stack.OrderFn[string], error) {
	fn, ok := ValidOrders[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOrder,
			"invalid order: %q (must be one of: none, ascending, descending, insideout)", name)
	}
	return fn, nil
}

// CurveByName resolves a curve name.
func CurveByName(name string) (svg.Curve, error) {
	fn, ok := ValidCurves[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidCurve,
			"invalid curve: %q (must be one of: linear, step, smooth)", name)
	}
	return fn, nil
}
