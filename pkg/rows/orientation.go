package rows

import (
	"fmt"
	"strings"

	"gridmesh/pkg/geometry"
)

// Orientation selects the axis points are projected onto before sorting.
// The numeric values are the ones written in logs and accepted on the
// command line.
type Orientation int

const (
	// None projects onto Y but skips sorting, trusting the input order.
	None Orientation = -1
	// Direct projects onto Y.
	Direct Orientation = 0
	// Rot30, Rot45 and Rot60 project onto the Y axis of the point set
	// rotated counter-clockwise by that many degrees.
	Rot30 Orientation = 30
	Rot45 Orientation = 45
	Rot60 Orientation = 60
	// Auto is not a projection: it asks Chunk to pick one with Select.
	Auto Orientation = 99
)

// sin and cos of the supported rotations, to the precision the grid scans
// were originally tuned with.
var rotations = map[Orientation][2]float64{
	Rot30: {0.5, 0.866},
	Rot45: {0.7071, 0.7071},
	Rot60: {0.866, 0.5},
}

var names = map[Orientation]string{
	None:   "none",
	Direct: "direct",
	Rot30:  "rot30",
	Rot45:  "rot45",
	Rot60:  "rot60",
	Auto:   "auto",
}

func (o Orientation) String() string {
	if name, ok := names[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation accepts either a name ("rot45") or the numeric value ("45").
func ParseOrientation(s string) (Orientation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, name := range names {
		if s == name || s == fmt.Sprint(int(o)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Key returns the projection key of a pair under o. Only Before is read.
// Key panics for Auto, which does not name a projection.
func (o Orientation) Key(p geometry.Pair) float64 {
	switch o {
	case None, Direct:
		return p.Before.Y
	case Rot30, Rot45, Rot60:
		// y' = -sin(θ)·x + cos(θ)·y
		r := rotations[o]
		return -r[0]*p.Before.X + r[1]*p.Before.Y
	}
	panic(fmt.Sprintf("rows: no projection for orientation %v", o))
}

// Project returns the key of every pair, in input order.
func Project(pairs []geometry.Pair, o Orientation) []float64 {
	keys := make([]float64, len(pairs))
	for i, p := range pairs {
		keys[i] = o.Key(p)
	}
	return keys
}
