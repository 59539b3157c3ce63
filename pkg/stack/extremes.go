package stack

import "math"

// Extremes folds all band boundaries into a single (min, max) pair, used to
// size the output scale.
//
// The fold is seeded with (0, 0) so that an all-positive or all-negative
// dataset still extends the range to include zero: stacked charts anchor at
// the baseline. An empty input therefore returns (0, 0).
func Extremes(bands [][]Band) (min, max float64) {
	for _, row := range bands {
		for _, b := range row {
			min = math.Min(min, math.Min(b.Lower, b.Upper))
			max = math.Max(max, math.Max(b.Lower, b.Upper))
		}
	}
	return min, max
}
