// Package scale provides continuous numeric scales for chart layout.
//
// A scale maps values from a domain interval onto a range interval. The
// stacking engine consumes scales only through the [Continuous] interface, so
// any invertible numeric mapping can be plugged in; [Linear] is the one the
// gallery uses.
package scale

// Continuous is an invertible mapping from a numeric domain onto a numeric
// range. Implementations must be pure: Convert and Invert may not mutate
// state, and Range must be constant for the lifetime of the scale.
type Continuous interface {
	// Convert maps a domain value onto the range.
	Convert(v float64) float64
	// Invert maps a range value back onto the domain.
	Invert(v float64) float64
	// Range returns the lower and upper bounds of the output interval.
	Range() (lo, hi float64)
}

// Linear maps [DomainLo, DomainHi] onto [RangeLo, RangeHi] with a straight
// line. Values outside the domain extrapolate linearly; clamping is left to
// callers that want it.
type Linear struct {
	DomainLo, DomainHi float64
	RangeLo, RangeHi   float64
}

// NewLinear creates a linear scale from the given domain onto the given range.
func NewLinear(domainLo, domainHi, rangeLo, rangeHi float64) Linear {
	return Linear{
		DomainLo: domainLo, DomainHi: domainHi,
		RangeLo: rangeLo, RangeHi: rangeHi,
	}
}

// Convert maps a domain value onto the range.
// A degenerate domain (lo == hi) maps everything to the range start.
func (s Linear) Convert(v float64) float64 {
	if s.DomainHi == s.DomainLo {
		return s.RangeLo
	}
	t := (v - s.DomainLo) / (s.DomainHi - s.DomainLo)
	return s.RangeLo + t*(s.RangeHi-s.RangeLo)
}

// Invert maps a range value back onto the domain.
// A degenerate range (lo == hi) maps everything to the domain start.
func (s Linear) Invert(v float64) float64 {
	if s.RangeHi == s.RangeLo {
		return s.DomainLo
	}
	t := (v - s.RangeLo) / (s.RangeHi - s.RangeLo)
	return s.DomainLo + t*(s.DomainHi-s.DomainLo)
}

// Range returns the output interval bounds.
func (s Linear) Range() (lo, hi float64) {
	return s.RangeLo, s.RangeHi
}

// Ensure Linear implements Continuous.
var _ Continuous = Linear{}
