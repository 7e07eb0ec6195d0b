package rows_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridmesh/pkg/cfg"
	"gridmesh/pkg/geometry"
	"gridmesh/pkg/rows"
)

func rowSetOfWidths(widths ...int) rows.RowSet {
	rs := make(rows.RowSet, len(widths))
	for i, w := range widths {
		rs[i] = make(rows.Row, w)
	}
	return rs
}

func TestScore(t *testing.T) {
	tests := []struct {
		rows      int
		suggested int
		want      float64
	}{
		{4, 4, 1},
		{8, 4, 2},
		{2, 4, 2},
		{3, 6, 2},
		{5, 4, 1.25},
	}
	for _, test := range tests {
		widths := make([]int, test.rows)
		for i := range widths {
			widths[i] = 1
		}
		r := rows.Result{Rows: rowSetOfWidths(widths...), SuggestedRows: test.suggested}
		if got := rows.Score(r); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Score(%d rows / %d suggested) = %g, want %g", test.rows, test.suggested, got, test.want)
		}
	}

	if got := rows.Score(rows.Result{}); !math.IsInf(got, 1) {
		t.Errorf("Score of empty result = %g, want +Inf", got)
	}
}

func TestSelectPicksDirectForShuffledGrid(t *testing.T) {
	pairs := shuffled(grid(5, 5, 100, nil), 5)

	res := rows.Select(pairs, cfg.Default())
	if res.Orientation != rows.Direct {
		t.Errorf("selected %v, want direct", res.Orientation)
	}
	if diff := cmp.Diff([]int{5, 5, 5, 5, 5}, res.Rows.Widths()); diff != "" {
		t.Errorf("incorrect row widths: %s", diff)
	}
}

func TestSelectPicksNoneForFallingRows(t *testing.T) {
	// Each row drops by slope per column, given in row-major order. The
	// input order keeps every row contiguous, while a y sort spreads the
	// keys evenly and finds no boundary at all.
	tests := []struct {
		rows, cols int
		slope      float64
	}{
		{4, 4, -20},
		{3, 5, -30},
	}
	for _, test := range tests {
		var pairs []geometry.Pair
		for r := 0; r < test.rows; r++ {
			for c := 0; c < test.cols; c++ {
				pairs = append(pairs, pairsAt(geometry.Point{
					X: float64(c) * 100,
					Y: float64(r)*100 + float64(c)*test.slope,
				})...)
			}
		}

		want := make([]int, test.rows)
		for i := range want {
			want[i] = test.cols
		}

		direct := rows.Segment(pairs, rows.Direct, cfg.Default())
		if diff := cmp.Diff([]int{test.rows * test.cols}, direct.Rows.Widths()); diff != "" {
			t.Fatalf("%dx%d: direct row widths: %s", test.rows, test.cols, diff)
		}

		res := rows.Select(pairs, cfg.Default())
		if res.Orientation != rows.None {
			t.Errorf("%dx%d: selected %v, want none", test.rows, test.cols, res.Orientation)
		}
		if diff := cmp.Diff(want, res.Rows.Widths()); diff != "" {
			t.Errorf("%dx%d: incorrect row widths: %s", test.rows, test.cols, diff)
		}
		if rows.Score(res) >= rows.Score(direct) {
			t.Errorf("%dx%d: none score %g not below direct score %g", test.rows, test.cols, rows.Score(res), rows.Score(direct))
		}
	}
}

func TestSelectTieGoesToDirect(t *testing.T) {
	// Ordered input: none and direct produce identical rows.
	res := rows.Select(grid(4, 4, 100, nil), cfg.Default())
	if res.Orientation != rows.Direct {
		t.Errorf("selected %v on a tie, want direct", res.Orientation)
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	pairs := shuffled(grid(6, 7, 80, func(r, c int) float64 { return float64(c % 3) }), 99)

	first := rows.Select(pairs, cfg.Default())
	for i := 0; i < 5; i++ {
		again := rows.Select(pairs, cfg.Default())
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs: %s", i, diff)
		}
	}
}

func TestChunk(t *testing.T) {
	pairs := shuffled(grid(3, 3, 50, nil), 1)

	if diff := cmp.Diff(rows.Select(pairs, cfg.Default()), rows.Chunk(pairs, rows.Auto, cfg.Default())); diff != "" {
		t.Errorf("Chunk(Auto) differs from Select: %s", diff)
	}
	if diff := cmp.Diff(rows.Select(pairs, cfg.Default()), rows.Segment(pairs, rows.Auto, cfg.Default())); diff != "" {
		t.Errorf("Segment(Auto) differs from Select: %s", diff)
	}

	res := rows.Chunk(pairs, rows.Rot30, cfg.Default())
	if res.Orientation != rows.Rot30 {
		t.Errorf("Chunk(Rot30) returned orientation %v", res.Orientation)
	}
}

func TestSelectNeverRotates(t *testing.T) {
	// Diagonal rows that only a 45 degree projection separates.
	var points []geometry.Point
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			points = append(points, geometry.Point{X: float64(c) * 50, Y: float64(c)*50 + float64(r)*100})
		}
	}
	res := rows.Select(pairsAt(points...), cfg.Default())
	if res.Orientation != rows.Direct && res.Orientation != rows.None {
		t.Errorf("Select chose %v", res.Orientation)
	}
}
