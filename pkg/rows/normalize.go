package rows

import (
	"cmp"
	"sort"

	"golang.org/x/exp/slices"

	"gridmesh/pkg/geometry"
)

// Normalize returns rs in reading order: every row sorted left to right by
// Before.X, and the rows sorted top to bottom by the median Before.Y of
// their pairs. Both sorts are stable. rs itself is not modified.
func Normalize(rs RowSet) RowSet {
	type ranked struct {
		row    Row
		median float64
	}

	ordered := make([]ranked, len(rs))
	for i, row := range rs {
		sorted := slices.Clone(row)
		slices.SortStableFunc(sorted, func(a, b geometry.Pair) int {
			return cmp.Compare(a.Before.X, b.Before.X)
		})

		ys := make([]float64, len(sorted))
		for j, p := range sorted {
			ys[j] = p.Before.Y
		}
		ordered[i] = ranked{row: sorted, median: median(ys)}
	}

	slices.SortStableFunc(ordered, func(a, b ranked) int {
		return cmp.Compare(a.median, b.median)
	})

	out := make(RowSet, len(ordered))
	for i, r := range ordered {
		out[i] = r.row
	}
	return out
}

// median averages the two middle values of an even-length input. values is
// reordered.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
