// Package svgpath builds SVG path data for straight-edged outlines.
package svgpath

import (
	"strconv"
	"strings"
)

type SubPath struct {
	X, Y   float64
	DrawTo []*DrawTo
}

type Command string

const (
	ClosePath = "Z"
	LineTo    = "L"
)

type DrawTo struct {
	Command Command
	X, Y    float64
}

// Polygon returns a closed sub-path through xy, given as x0, y0, x1, y1...
// It returns nil for fewer than two points.
func Polygon(xy ...float64) *SubPath {
	if len(xy) < 4 {
		return nil
	}
	path := &SubPath{X: xy[0], Y: xy[1]}
	for i := 2; i+1 < len(xy); i += 2 {
		path.DrawTo = append(path.DrawTo, &DrawTo{Command: LineTo, X: xy[i], Y: xy[i+1]})
	}
	path.DrawTo = append(path.DrawTo, &DrawTo{Command: ClosePath, X: path.X, Y: path.Y})
	return path
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToString serializes groups without trying to shorten the path.
func ToString(groups []*SubPath) string {
	var buf strings.Builder
	for i, group := range groups {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("M " + formatNumber(group.X) + " " + formatNumber(group.Y))
		for _, drawTo := range group.DrawTo {
			switch drawTo.Command {
			case LineTo:
				buf.WriteString(" L " + formatNumber(drawTo.X) + " " + formatNumber(drawTo.Y))
			case ClosePath:
				buf.WriteString(" Z")
			}
		}
	}
	return buf.String()
}
