package geometry

import (
	"sort"

	"github.com/asim/quadtree"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// pointTree indexes points by their exact coordinates. Each quadtree point
// carries the list of input indices found at that location.
type pointTree struct {
	quadTree *quadtree.QuadTree
	aabb     *quadtree.AABB
}

func newPointTree(bounds Rectangle) *pointTree {
	midX := (bounds.Max.X + bounds.Min.X) / 2
	midY := (bounds.Max.Y + bounds.Min.Y) / 2
	halfWidth := bounds.Max.X - midX
	halfHeight := bounds.Max.Y - midY

	// Add a small margin to avoid dropping objects at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &pointTree{
		quadTree: quadtree.New(aabb, 0, nil),
		aabb:     aabb,
	}
}

func (t *pointTree) add(p Point, index int) {
	point := quadtree.NewPoint(p.X, p.Y, nil)
	points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
	if len(points) > 0 {
		pointX, pointY := points[0].Coordinates()
		if pointX == p.X && pointY == p.Y {
			indices := points[0].Data().(*[]int)
			*indices = append(*indices, index)
			return
		}
	}
	indices := &[]int{index}
	t.quadTree.Insert(quadtree.NewPoint(p.X, p.Y, indices))
}

// Coincident returns groups of indices into points that share identical
// coordinates. Only groups with two or more members are returned, ordered
// by their first index.
func Coincident(points []Point) [][]int {
	if len(points) < 2 {
		return nil
	}
	tree := newPointTree(Bounds(points))
	for i, p := range points {
		tree.add(p, i)
	}

	var groups [][]int
	for _, point := range tree.quadTree.Search(tree.aabb) {
		indices := *point.Data().(*[]int)
		if len(indices) > 1 {
			groups = append(groups, indices)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
