package stack

import (
	"cmp"
	"slices"
)

// Order policies. Each is a permutation of the input series; values are never
// modified. Stack hands them a private copy, so in-place sorting is safe.

// OrderNone keeps the caller-supplied series order.
func OrderNone[L any](items []Series[L]) []Series[L] {
	return items
}

// OrderAscending sorts series by their value sum, smallest first.
// The sort is stable, so equal sums keep their input order.
func OrderAscending[L any](items []Series[L]) []Series[L] {
	slices.SortStableFunc(items, func(a, b Series[L]) int {
		return cmp.Compare(seriesSum(a), seriesSum(b))
	})
	return items
}

// OrderDescending sorts series by their value sum, largest first.
func OrderDescending[L any](items []Series[L]) []Series[L] {
	slices.SortStableFunc(items, func(a, b Series[L]) int {
		return cmp.Compare(seriesSum(b), seriesSum(a))
	})
	return items
}

// OrderInsideOut places the largest series in the middle of the stack and
// alternates the rest outward, which keeps streamgraph silhouettes balanced.
func OrderInsideOut[L any](items []Series[L]) []Series[L] {
	sorted := OrderDescending(slices.Clone(items))

	var left, right []Series[L]
	for i, s := range sorted {
		if i%2 == 0 {
			right = append(right, s)
		} else {
			left = append(left, s)
		}
	}
	slices.Reverse(left)
	return append(left, right...)
}

func seriesSum[L any](s Series[L]) float64 {
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return sum
}
