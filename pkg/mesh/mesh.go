package mesh

import (
	"errors"
	"fmt"

	"gridmesh/pkg/geometry"
	"gridmesh/pkg/rows"
)

// Triangle holds three indices into Mesh.Pairs. The same indices address
// both the before and the after view of the mesh.
type Triangle [3]int

// Mesh is a flattened, row-major point list plus the triangles joining it.
type Mesh struct {
	Pairs     []geometry.Pair
	Triangles []Triangle
}

// Before returns the before coordinates in mesh index order.
func (m Mesh) Before() []geometry.Point {
	return geometry.Befores(m.Pairs)
}

// After returns the after coordinates in mesh index order.
func (m Mesh) After() []geometry.Point {
	points := make([]geometry.Point, len(m.Pairs))
	for i, p := range m.Pairs {
		points[i] = p.After
	}
	return points
}

func flatten(rs rows.RowSet) []geometry.Pair {
	pairs := make([]geometry.Pair, 0, rs.Len())
	for _, row := range rs {
		pairs = append(pairs, row...)
	}
	return pairs
}

// quads appends the two triangles of each of the width-1 cells between the
// row starting at index start and the row of equal width right after it.
func quads(triangles []Triangle, start, width int) []Triangle {
	for j := 0; j < width-1; j++ {
		a := start + j
		triangles = append(triangles,
			Triangle{a, a + 1, a + width},
			Triangle{a + 1, a + 1 + width, a + width},
		)
	}
	return triangles
}

// Build flattens rs and triangulates it. Only neighbouring rows of the same
// width are joined; wherever the width changes the mesh is left open.
func Build(rs rows.RowSet) Mesh {
	var triangles []Triangle
	lastWidth := 0
	counter := 0
	for _, row := range rs {
		width := len(row)
		if width == lastWidth {
			// Start from the first point of the previous row.
			triangles = quads(triangles, counter-width, width)
		}
		counter += width
		lastWidth = width
	}
	return Mesh{Pairs: flatten(rs), Triangles: triangles}
}

// ErrRaggedRows is returned by BuildBlind when the rows are not all the same width.
var ErrRaggedRows = errors.New("rows differ in width")

// BuildBlind triangulates rs as a complete lattice of len(rs) rows by
// len(rs[0]) columns, without looking at individual row widths beyond
// checking they agree. On a rectangular RowSet it yields the same triangles
// as Build.
func BuildBlind(rs rows.RowSet) (Mesh, error) {
	if len(rs) == 0 {
		return Mesh{}, nil
	}
	cols := len(rs[0])
	for i, row := range rs {
		if len(row) != cols {
			return Mesh{}, fmt.Errorf("row %d has %d points, row 0 has %d: %w", i, len(row), cols, ErrRaggedRows)
		}
	}

	var triangles []Triangle
	for i := 0; i < len(rs)-1; i++ {
		triangles = quads(triangles, i*cols, cols)
	}
	return Mesh{Pairs: flatten(rs), Triangles: triangles}, nil
}

// Seams counts the row boundaries left open because the width changed.
func Seams(rs rows.RowSet) int {
	n := 0
	for i := 1; i < len(rs); i++ {
		if len(rs[i]) != len(rs[i-1]) {
			n++
		}
	}
	return n
}

// Validate checks that every triangle references three distinct points
// that exist.
func (m Mesh) Validate() error {
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(m.Pairs) {
				return fmt.Errorf("triangle %d: index %d out of range [0, %d)", i, idx, len(m.Pairs))
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return fmt.Errorf("triangle %d: repeated index in %v", i, t)
		}
	}
	return nil
}
