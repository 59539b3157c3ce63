package scale

import "math"

// Ticks returns roughly count human-friendly tick values covering the domain
// of s. Tick steps are powers of ten times 1, 2, or 5. The returned values
// are in ascending order and lie within the domain interval.
//
// This is axis glue for the gallery, not part of the stacking engine.
func (s Linear) Ticks(count int) []float64 {
	if count < 1 {
		count = 1
	}
	lo, hi := s.DomainLo, s.DomainHi
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	step := tickStep(lo, hi, count)
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for v := start; v <= hi+step/1e6; v += step {
		// Snap tiny float drift back onto the step grid.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// tickStep picks a step of the form 10^k * {1, 2, 5} so that the interval
// holds about count ticks.
func tickStep(lo, hi float64, count int) float64 {
	raw := (hi - lo) / float64(count)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
