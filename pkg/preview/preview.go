// Package preview draws meshes and projection keys so a segmentation can be
// checked by eye.
package preview

import (
	"math"

	"gridmesh/pkg/color"
	"gridmesh/pkg/geometry"
	"gridmesh/pkg/mesh"
	"gridmesh/pkg/svgpath"
)

// View selects which coordinates of a mesh are drawn.
type View int

const (
	Before View = iota
	After
)

func (v View) String() string {
	if v == After {
		return "after"
	}
	return "before"
}

// Options controls the size and decoration of a mesh drawing.
type Options struct {
	// Size is the length in pixels of the longer side of the drawing.
	Size int
	// Margin is the blank border around the points, in pixels.
	Margin float64
	// LineWidth of the wireframe, in pixels.
	LineWidth float64
	// Labels draws the mesh index next to every point.
	Labels bool
	// Widths are the row widths the mesh was built from. When set, points
	// are colored by row.
	Widths []int
}

func DefaultOptions() Options {
	return Options{Size: 1024, Margin: 24, LineWidth: 1}
}

// points returns the coordinates drawn for view and whether each one is
// known. Before points are always known.
func points(m mesh.Mesh, v View) ([]geometry.Point, []bool) {
	pts := make([]geometry.Point, len(m.Pairs))
	known := make([]bool, len(m.Pairs))
	for i, p := range m.Pairs {
		if v == After {
			pts[i], known[i] = p.After, p.HasAfter
		} else {
			pts[i], known[i] = p.Before, true
		}
	}
	return pts, known
}

func visible(pts []geometry.Point, known []bool) []geometry.Point {
	var out []geometry.Point
	for i, p := range pts {
		if known[i] {
			out = append(out, p)
		}
	}
	return out
}

// drawable reports whether every vertex of t is known.
func drawable(t mesh.Triangle, known []bool) bool {
	return known[t[0]] && known[t[1]] && known[t[2]]
}

// rowColors maps every mesh index to the color of its row.
func rowColors(n int, widths []int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = color.Black
	}
	idx := 0
	for r, w := range widths {
		for j := 0; j < w && idx < n; j++ {
			colors[idx] = color.ForRow(r)
			idx++
		}
	}
	return colors
}

// frame maps point coordinates onto a canvas, keeping the aspect ratio.
type frame struct {
	m      svgpath.Matrix
	width  int
	height int
}

func newFrame(pts []geometry.Point, opts Options) frame {
	b := geometry.Bounds(pts)
	span := math.Max(b.Width(), b.Height())
	if span == 0 {
		span = 1
	}
	scale := (float64(opts.Size) - 2*opts.Margin) / span
	if scale <= 0 {
		scale = 1
	}
	m := svgpath.Translate(opts.Margin, opts.Margin).
		Multiply(svgpath.Scale(scale, scale)).
		Multiply(svgpath.Translate(-b.Min.X, -b.Min.Y))
	return frame{
		m:      m,
		width:  max(1, int(math.Ceil(b.Width()*scale+2*opts.Margin))),
		height: max(1, int(math.Ceil(b.Height()*scale+2*opts.Margin))),
	}
}

func (f frame) apply(p geometry.Point) (float64, float64) {
	return f.m.TransformPoint(p.X, p.Y)
}
