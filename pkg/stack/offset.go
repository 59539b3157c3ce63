package stack

// Offset policies. Each receives index-tagged bands (Lower = sample index,
// Upper = raw value) and returns fresh stacked bands of the same shape. None
// of them mutate their input.

// OffsetNone leaves the tagged bands unchanged. Consumers see (index, value)
// pairs, which the area builder normalizes into a band between the two
// components.
func OffsetNone(series [][]Band) [][]Band {
	return series
}

// OffsetStacked is the baseline-zero reference policy: for series k at sample
// i, lower is the sum of the values of series 0..k-1 at sample i, and upper
// is lower plus the value of series k.
func OffsetStacked(series [][]Band) [][]Band {
	if len(series) == 0 {
		return nil
	}
	out := make([][]Band, len(series))
	sums := make([]float64, len(series[0]))
	for k, row := range series {
		stacked := make([]Band, len(row))
		for i, b := range row {
			stacked[i] = Band{Lower: sums[i], Upper: sums[i] + b.Upper}
			sums[i] += b.Upper
		}
		out[k] = stacked
	}
	return out
}

// OffsetExpand stacks like OffsetStacked and then normalizes each sample
// column to span [0, 1]. Columns whose values sum to zero collapse to the
// zero band.
func OffsetExpand(series [][]Band) [][]Band {
	out := OffsetStacked(series)
	if len(out) == 0 {
		return out
	}
	for i := range out[0] {
		total := out[len(out)-1][i].Upper
		if total == 0 {
			for k := range out {
				out[k][i] = Band{}
			}
			continue
		}
		for k := range out {
			out[k][i].Lower /= total
			out[k][i].Upper /= total
		}
	}
	return out
}

// OffsetSilhouette stacks like OffsetStacked and then centers each sample
// column around zero, producing the classic streamgraph silhouette.
func OffsetSilhouette(series [][]Band) [][]Band {
	out := OffsetStacked(series)
	if len(out) == 0 {
		return out
	}
	for i := range out[0] {
		shift := out[len(out)-1][i].Upper / 2
		for k := range out {
			out[k][i].Lower -= shift
			out[k][i].Upper -= shift
		}
	}
	return out
}
