package stack

// EvenlySpaced returns n+1 evenly spaced samples across [lo, hi], or exactly
// [lo, hi] when n <= 1. The first and last elements equal the interval bounds
// exactly, not approximately, so boundary geometry aligns with axis extents.
// Interior samples come from a linear mapping of the integer positions 1..n-1
// onto the interval.
func EvenlySpaced(n int, lo, hi float64) []float64 {
	if n <= 1 {
		return []float64{lo, hi}
	}
	out := make([]float64, n+1)
	out[0] = lo
	for i := 1; i < n; i++ {
		out[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	out[n] = hi
	return out
}
