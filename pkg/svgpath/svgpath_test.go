package svgpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridmesh/pkg/svgpath"
)

func TestPolygon(t *testing.T) {
	got := svgpath.Polygon(0, 0, 10, 0, 0, 10)
	expected := &svgpath.SubPath{X: 0, Y: 0, DrawTo: []*svgpath.DrawTo{
		{Command: svgpath.LineTo, X: 10, Y: 0},
		{Command: svgpath.LineTo, X: 0, Y: 10},
		{Command: svgpath.ClosePath, X: 0, Y: 0},
	}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}

	if p := svgpath.Polygon(1, 2); p != nil {
		t.Errorf("Polygon of one point = %v, want nil", p)
	}
}

func TestToString(t *testing.T) {
	paths := []*svgpath.SubPath{
		svgpath.Polygon(0, 0, 10.5, 0, 0, 10),
		svgpath.Polygon(1, 1, 2, 2),
	}
	want := "M 0 0 L 10.5 0 L 0 10 Z M 1 1 L 2 2 Z"
	if got := svgpath.ToString(paths); got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestMatrix(t *testing.T) {
	// Scale first, then translate.
	m := svgpath.Translate(10, 20).Multiply(svgpath.Scale(2, 3))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("TransformPoint(1, 1) = %g, %g, want 12, 23", x, y)
	}

	if diff := cmp.Diff(m, svgpath.Identity().Multiply(m)); diff != "" {
		t.Errorf("identity changed the matrix: %s", diff)
	}

	paths := []*svgpath.SubPath{svgpath.Polygon(0, 0, 1, 0, 0, 1)}
	m.TransformPath(paths)
	if got, want := svgpath.ToString(paths), "M 10 20 L 12 20 L 10 23 Z"; got != want {
		t.Errorf("transformed path = %q, want %q", got, want)
	}
}
