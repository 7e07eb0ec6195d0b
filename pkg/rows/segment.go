package rows

import (
	"cmp"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"gridmesh/pkg/cfg"
	"gridmesh/pkg/geometry"
)

// Row is a run of pairs judged to lie on one physical grid line.
type Row []geometry.Pair

// RowSet is an ordered partition of the input pairs into rows.
type RowSet []Row

// Widths returns the number of pairs in each row.
func (rs RowSet) Widths() []int {
	widths := make([]int, len(rs))
	for i, row := range rs {
		widths[i] = len(row)
	}
	return widths
}

// Len returns the total number of pairs across all rows.
func (rs RowSet) Len() int {
	n := 0
	for _, row := range rs {
		n += len(row)
	}
	return n
}

// Result is the outcome of segmenting one point set under one orientation.
type Result struct {
	Orientation Orientation
	Rows        RowSet

	// Keys holds the projection keys in the order the rows were cut from,
	// so Keys[i] belongs to the i-th pair of the concatenated rows.
	Keys []float64

	// SuggestedRows is the square-root estimate the row count is judged by.
	SuggestedRows int
	// LowConfidence is set when there were too few points for the
	// statistics to mean much.
	LowConfidence bool
}

// SuggestedRows estimates the row count of an n-point grid with the given
// rows:columns aspect ratio.
func SuggestedRows(n int, rowColRatio float64) int {
	return int(math.Ceil(math.Sqrt(float64(n) / rowColRatio)))
}

type keyed struct {
	key  float64
	pair geometry.Pair
}

// sortByKey projects the pairs and, unless o is None, stable-sorts them by
// key. The caller's slice is left untouched.
func sortByKey(pairs []geometry.Pair, o Orientation) ([]geometry.Pair, []float64) {
	entries := make([]keyed, len(pairs))
	for i, p := range pairs {
		entries[i] = keyed{key: o.Key(p), pair: p}
	}
	if o != None {
		slices.SortStableFunc(entries, func(a, b keyed) int {
			return cmp.Compare(a.key, b.key)
		})
	}

	sorted := make([]geometry.Pair, len(entries))
	keys := make([]float64, len(entries))
	for i, e := range entries {
		sorted[i] = e.pair
		keys[i] = e.key
	}
	return sorted, keys
}

// scan is the state carried from one window position to the next.
type scan struct {
	lastStdev float64
	window    int
	// cuts holds the index of the first pair of every row after the first.
	cuts []int
}

// step examines the window of keys ending just before end and returns the
// state for end+1.
func (s scan) step(keys []float64, end, maxWindow int, t cfg.Tuning) scan {
	start := end - s.window
	stdev := stat.StdDev(keys[start:end], nil)
	Logf("rows: start %d end %d stdev %g", start, end, stdev)

	if stdev > s.lastStdev*t.JumpMultiplier {
		// The last key in the window opens a new row.
		s.cuts = append(s.cuts, end-1)
		s.window = t.MinWindow
	} else {
		s.window = min(s.window+1, maxWindow)
	}
	s.lastStdev = math.Max(t.MinStdev, stdev)
	return s
}

// Segment splits pairs into rows under a single orientation. Auto is
// handed to Select, which picks the orientation.
//
// Rows are cut where the sample standard deviation of a window of sorted
// keys exceeds the previous window's by more than t.JumpMultiplier. The
// final run of pairs always becomes the last row, so every pair lands in
// exactly one row. An empty input yields no rows.
func Segment(pairs []geometry.Pair, o Orientation, t cfg.Tuning) Result {
	if o == Auto {
		return Select(pairs, t)
	}
	n := len(pairs)
	res := Result{
		Orientation:   o,
		SuggestedRows: SuggestedRows(n, t.RowColRatio),
		LowConfidence: n < t.LowConfidenceCount,
	}
	Logf("rows: %d elements, orientation %v", n, o)
	if res.LowConfidence {
		Logf("rows: total elements < %d, detection will likely be problematic", t.LowConfidenceCount)
	}

	sorted, keys := sortByKey(pairs, o)
	res.Keys = keys
	if n == 0 {
		return res
	}

	maxWindow := max(t.MinWindow, min(t.MaxWindow, res.SuggestedRows))
	Logf("rows: comparison window between %d-%d", t.MinWindow, maxWindow)

	s := scan{lastStdev: t.InitialStdev, window: t.MinWindow}
	for end := t.MinWindow; end < n; end++ {
		s = s.step(keys, end, maxWindow, t)
	}

	res.Rows = make(RowSet, 0, len(s.cuts)+1)
	from := 0
	for _, cut := range s.cuts {
		res.Rows = append(res.Rows, Row(sorted[from:cut:cut]))
		from = cut
	}
	res.Rows = append(res.Rows, Row(sorted[from:]))

	Logf("rows: orientation %v produced %d rows", o, len(res.Rows))
	return res
}
