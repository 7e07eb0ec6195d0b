// Package meshjson reads and writes the mesh document consumed by the
// image warping tools:
//
//	{"images":[{"points":[{"x":1,"y":2},...]},{"points":[...]}],"triangles":[[0,1,3],...]}
//
// The first image holds the before points and the second the after points,
// both indexed by the triangles. Coordinates are whole pixels.
package meshjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gridmesh/pkg/geometry"
	"gridmesh/pkg/mesh"
)

var ErrShape = errors.New("mesh document must hold two images with the same number of points")

// point is empty ({}) when the coordinate is unknown.
type point struct {
	X *int `json:"x,omitempty"`
	Y *int `json:"y,omitempty"`
}

type image struct {
	Points []point `json:"points"`
}

type document struct {
	Images    []image         `json:"images"`
	Triangles []mesh.Triangle `json:"triangles"`
}

func round(v float64) *int {
	i := int(math.Round(v))
	return &i
}

func toPoint(p geometry.Point) point {
	return point{X: round(p.X), Y: round(p.Y)}
}

func (p point) known() bool {
	return p.X != nil && p.Y != nil
}

func (p point) toGeometry() geometry.Point {
	return geometry.Point{X: float64(*p.X), Y: float64(*p.Y)}
}

func toDocument(m mesh.Mesh) document {
	before := make([]point, len(m.Pairs))
	after := make([]point, len(m.Pairs))
	for i, p := range m.Pairs {
		before[i] = toPoint(p.Before)
		if p.HasAfter {
			after[i] = toPoint(p.After)
		}
	}
	triangles := m.Triangles
	if triangles == nil {
		triangles = []mesh.Triangle{}
	}
	return document{
		Images:    []image{{Points: before}, {Points: after}},
		Triangles: triangles,
	}
}

// Marshal returns the JSON document for m.
func Marshal(m mesh.Mesh) ([]byte, error) {
	return json.Marshal(toDocument(m))
}

// Encode writes the JSON document for m to w.
func Encode(w io.Writer, m mesh.Mesh) error {
	return json.NewEncoder(w).Encode(toDocument(m))
}

// Decode reads a mesh document. Empty after points come back with HasAfter
// false; an empty before point is an error.
func Decode(r io.Reader) (mesh.Mesh, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return mesh.Mesh{}, err
	}
	if len(doc.Images) != 2 || len(doc.Images[0].Points) != len(doc.Images[1].Points) {
		return mesh.Mesh{}, ErrShape
	}

	pairs := make([]geometry.Pair, len(doc.Images[0].Points))
	for i, b := range doc.Images[0].Points {
		if !b.known() {
			return mesh.Mesh{}, fmt.Errorf("before point %d has no coordinates: %w", i, ErrShape)
		}
		pairs[i].Before = b.toGeometry()
		if a := doc.Images[1].Points[i]; a.known() {
			pairs[i].After = a.toGeometry()
			pairs[i].HasAfter = true
		}
	}

	m := mesh.Mesh{Pairs: pairs, Triangles: doc.Triangles}
	if err := m.Validate(); err != nil {
		return mesh.Mesh{}, err
	}
	return m, nil
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte) (mesh.Mesh, error) {
	return Decode(bytes.NewReader(data))
}
