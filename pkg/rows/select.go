package rows

import (
	"math"
	"sync"

	"gridmesh/pkg/cfg"
	"gridmesh/pkg/geometry"
)

// candidates are the orientations Select tries, in priority order. The
// rotations are only used when asked for explicitly.
var candidates = []Orientation{Direct, None}

// Score measures how far a result's row count is from its estimate, as a
// factor >= 1 that is symmetric in over- and under-counting. Lower is better.
func Score(r Result) float64 {
	if r.SuggestedRows == 0 || len(r.Rows) == 0 {
		return math.Inf(1)
	}
	ratio := float64(len(r.Rows)) / float64(r.SuggestedRows)
	if ratio > 1 {
		return ratio
	}
	return 1 / ratio
}

// Select segments pairs under every candidate orientation and returns the
// result with the lowest Score. Ties go to the earlier candidate.
func Select(pairs []geometry.Pair, t cfg.Tuning) Result {
	results := make([]Result, len(candidates))

	var wg sync.WaitGroup
	for i, o := range candidates {
		wg.Add(1)
		go func(i int, o Orientation) {
			defer wg.Done()
			results[i] = Segment(pairs, o, t)
		}(i, o)
	}
	wg.Wait()

	best := 0
	bestScore := Score(results[0])
	for i := 1; i < len(results); i++ {
		if score := Score(results[i]); score < bestScore {
			best, bestScore = i, score
		}
	}

	Logf("rows: orientation selected: %v length: %d", results[best].Orientation, len(results[best].Rows))
	return results[best]
}

// Chunk segments pairs under o, or picks an orientation with Select when o
// is Auto.
func Chunk(pairs []geometry.Pair, o Orientation, t cfg.Tuning) Result {
	if o == Auto {
		return Select(pairs, t)
	}
	return Segment(pairs, o, t)
}
