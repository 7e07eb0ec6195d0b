package rows_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridmesh/pkg/geometry"
	"gridmesh/pkg/rows"
)

func beforeRows(rs rows.RowSet) [][]geometry.Point {
	out := make([][]geometry.Point, len(rs))
	for i, row := range rs {
		out[i] = geometry.Befores(row)
	}
	return out
}

func TestNormalize(t *testing.T) {
	in := rows.RowSet{
		rows.Row(pairsAt(geometry.Point{X: 100, Y: 100}, geometry.Point{X: 0, Y: 102}, geometry.Point{X: 50, Y: 98})),
		rows.Row(pairsAt(geometry.Point{X: 50, Y: 1}, geometry.Point{X: 100, Y: 0}, geometry.Point{X: 0, Y: -1})),
		rows.Row(pairsAt(geometry.Point{X: 0, Y: 50}, geometry.Point{X: 100, Y: 50}, geometry.Point{X: 50, Y: 50})),
	}
	before := beforeRows(in)

	got := rows.Normalize(in)
	want := [][]geometry.Point{
		{{X: 0, Y: -1}, {X: 50, Y: 1}, {X: 100, Y: 0}},
		{{X: 0, Y: 50}, {X: 50, Y: 50}, {X: 100, Y: 50}},
		{{X: 0, Y: 102}, {X: 50, Y: 98}, {X: 100, Y: 100}},
	}
	if diff := cmp.Diff(want, beforeRows(got)); diff != "" {
		t.Errorf("incorrect order: %s", diff)
	}
	if diff := cmp.Diff(before, beforeRows(in)); diff != "" {
		t.Errorf("input was modified: %s", diff)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	pairs := shuffled(grid(5, 4, 30, func(r, c int) float64 { return float64((r + c) % 3) }), 17)
	rs := rows.Segment(pairs, rows.Direct, defaultTuning()).Rows

	once := rows.Normalize(rs)
	twice := rows.Normalize(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Normalize changed the result: %s", diff)
	}
}

func TestNormalizeUsesMedian(t *testing.T) {
	// Row a has mean Y 40 but median 50; row b has mean 45 and median 45.
	a := rows.Row(pairsAt(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 50}, geometry.Point{X: 2, Y: 70}))
	b := rows.Row(pairsAt(geometry.Point{X: 0, Y: 40}, geometry.Point{X: 1, Y: 45}, geometry.Point{X: 2, Y: 50}))
	// Even width: median is the mean of the middle two, 47.5.
	c := rows.Row(pairsAt(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 45}, geometry.Point{X: 2, Y: 50}, geometry.Point{X: 3, Y: 90}))

	got := rows.Normalize(rows.RowSet{a, b, c})
	want := rows.RowSet{b, c, a}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect row order: %s", diff)
	}
}

func TestNormalizeStableForEqualX(t *testing.T) {
	row := rows.Row{
		{Before: geometry.Point{X: 5, Y: 0}, After: geometry.Point{X: 1}},
		{Before: geometry.Point{X: 5, Y: 0}, After: geometry.Point{X: 2}},
		{Before: geometry.Point{X: 1, Y: 0}, After: geometry.Point{X: 3}},
	}
	got := rows.Normalize(rows.RowSet{row})
	want := rows.RowSet{{row[2], row[0], row[1]}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("equal keys were reordered: %s", diff)
	}
}
