package stack

import (
	"slices"

	"github.com/strataviz/strata/pkg/errors"
)

// Band is the vertical span of one series at one sample index after
// offsetting. Before the offset policy runs, the components carry the sample
// index (Lower) and the raw value (Upper); offset policies rewrite them into
// the final lower/upper boundaries.
type Band struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Series pairs a label with an ordered sequence of numeric values, one value
// per sample index. Series are caller-owned and read-only to the engine.
//
// The label type is opaque to the engine: it is carried through unchanged and
// never compared or hashed.
type Series[L any] struct {
	Label  L
	Values []float64
}

// OrderFn reorders series before offsetting. It must be a pure permutation:
// no series may be added, removed, or have its values modified. The input
// slice is a private copy, so sorting it in place is allowed.
type OrderFn[L any] func(items []Series[L]) []Series[L]

// OffsetFn rewrites index-tagged value bands into stacked (lower, upper)
// bands. It must preserve the number of series and the number of samples per
// series; only the numeric components may change.
type OffsetFn func(series [][]Band) [][]Band

// Config describes one stacking run.
//
// Precondition: all series in Data have equal-length value sequences. The
// engine asserts this and fails fast rather than silently truncating or
// padding.
type Config[L any] struct {
	Data   []Series[L]
	Offset OffsetFn // nil means OffsetStacked
	Order  OrderFn[L]
}

// Result holds the stacked output. Labels[i] corresponds to Bands[i], in the
// order emitted by the order policy.
type Result[L any] struct {
	Labels []L
	Bands  [][]Band
}

// Stack applies the order and offset policies to cfg.Data and returns the
// stacked bands alongside their labels.
//
// Zero series or zero samples is not an error: the result is simply empty.
// Contract violations by the supplied policy functions (changed series count
// or per-series length) are reported as a SHAPE_MISMATCH error with expected
// and actual shapes.
func Stack[L any](cfg Config[L]) (Result[L], error) {
	if len(cfg.Data) == 0 {
		return Result[L]{}, nil
	}

	samples := len(cfg.Data[0].Values)
	for i, s := range cfg.Data {
		if len(s.Values) != samples {
			return Result[L]{}, errors.New(errors.ErrCodeShapeMismatch,
				"series %d has %d samples, expected %d", i, len(s.Values), samples)
		}
	}

	order := cfg.Order
	if order == nil {
		order = OrderNone[L]
	}
	ordered := order(slices.Clone(cfg.Data))
	if len(ordered) != len(cfg.Data) {
		return Result[L]{}, errors.New(errors.ErrCodeShapeMismatch,
			"order policy changed series count: expected %d, got %d", len(cfg.Data), len(ordered))
	}

	labels := make([]L, len(ordered))
	tagged := make([][]Band, len(ordered))
	for k, s := range ordered {
		if len(s.Values) != samples {
			return Result[L]{}, errors.New(errors.ErrCodeShapeMismatch,
				"order policy changed series %d length: expected %d, got %d", k, samples, len(s.Values))
		}
		labels[k] = s.Label
		row := make([]Band, samples)
		for i, v := range s.Values {
			row[i] = Band{Lower: float64(i), Upper: v}
		}
		tagged[k] = row
	}

	offset := cfg.Offset
	if offset == nil {
		offset = OffsetStacked
	}
	stacked := offset(tagged)
	if len(stacked) != len(tagged) {
		return Result[L]{}, errors.New(errors.ErrCodeShapeMismatch,
			"offset policy changed series count: expected %d, got %d", len(tagged), len(stacked))
	}
	for k, row := range stacked {
		if len(row) != samples {
			return Result[L]{}, errors.New(errors.ErrCodeShapeMismatch,
				"offset policy changed series %d length: expected %d, got %d", k, samples, len(row))
		}
	}

	return Result[L]{Labels: labels, Bands: stacked}, nil
}

// RepeatFirst returns xs with its first element duplicated, closing a cyclic
// domain (e.g. a full-circle polar stack). Empty input is returned unchanged.
func RepeatFirst[T any](xs []T) []T {
	if len(xs) == 0 {
		return xs
	}
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[0])
	return append(out, xs...)
}
