package rows_test

import (
	"math/rand"

	"gridmesh/pkg/geometry"
)

// grid returns a rows×cols lattice with the given spacing in row-major
// order. noise, if not nil, offsets each Before.Y.
func grid(rows, cols int, spacing float64, noise func(r, c int) float64) []geometry.Pair {
	var pairs []geometry.Pair
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			before := geometry.Point{X: float64(c) * spacing, Y: float64(r) * spacing}
			if noise != nil {
				before.Y += noise(r, c)
			}
			pairs = append(pairs, geometry.Pair{
				Before:   before,
				After:    geometry.Point{X: before.X + 3, Y: before.Y - 2},
				HasAfter: true,
			})
		}
	}
	return pairs
}

func shuffled(pairs []geometry.Pair, seed int64) []geometry.Pair {
	out := append([]geometry.Pair(nil), pairs...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func pairsAt(points ...geometry.Point) []geometry.Pair {
	pairs := make([]geometry.Pair, len(points))
	for i, p := range points {
		pairs[i] = geometry.Pair{Before: p, After: p, HasAfter: true}
	}
	return pairs
}

// counts tallies pairs by value, for partition checks.
func counts(pairs []geometry.Pair) map[geometry.Pair]int {
	m := map[geometry.Pair]int{}
	for _, p := range pairs {
		m[p]++
	}
	return m
}
