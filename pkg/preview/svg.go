package preview

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"gridmesh/pkg/color"
	"gridmesh/pkg/geometry"
	"gridmesh/pkg/mesh"
	"gridmesh/pkg/svgpath"
)

// svgNode is a generic SVG element, enough for paths, circles and text.
type svgNode struct {
	XMLName xml.Name
	Xmlns   string     `xml:"xmlns,attr,omitempty"`
	Width   string     `xml:"width,attr,omitempty"`
	Height  string     `xml:"height,attr,omitempty"`
	ViewBox string     `xml:"viewBox,attr,omitempty"`
	Version string     `xml:"version,attr,omitempty"`
	ID      string     `xml:"id,attr,omitempty"`
	Styles  string     `xml:"style,attr,omitempty"`
	D       string     `xml:"d,attr,omitempty"`
	Fill    string     `xml:"fill,attr,omitempty"`
	Text    string     `xml:",chardata"`
	Kids    []*svgNode `xml:",any"`

	// circle and text placement
	CX     string `xml:"cx,attr,omitempty"`
	CY     string `xml:"cy,attr,omitempty"`
	Radius string `xml:"r,attr,omitempty"`
	X      string `xml:"x,attr,omitempty"`
	Y      string `xml:"y,attr,omitempty"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func element(name string) *svgNode {
	return &svgNode{XMLName: xml.Name{Local: name}}
}

// trianglePath outlines t in canvas coordinates.
func trianglePath(f frame, pts []geometry.Point, t mesh.Triangle) string {
	path := svgpath.Polygon(
		pts[t[0]].X, pts[t[0]].Y,
		pts[t[1]].X, pts[t[1]].Y,
		pts[t[2]].X, pts[t[2]].Y,
	)
	paths := []*svgpath.SubPath{path}
	f.m.TransformPath(paths)
	return svgpath.ToString(paths)
}

func buildSVG(m mesh.Mesh, v View, opts Options) *svgNode {
	pts, known := points(m, v)
	f := newFrame(visible(pts, known), opts)

	root := element("svg")
	root.Xmlns = "http://www.w3.org/2000/svg"
	root.Version = "1.1"
	root.Width = strconv.Itoa(f.width)
	root.Height = strconv.Itoa(f.height)
	root.ViewBox = fmt.Sprintf("0 0 %d %d", f.width, f.height)

	wire := element("g")
	wire.ID = "triangles"
	wire.Styles = fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", color.Black.Hex(), formatNumber(opts.LineWidth))
	for _, t := range m.Triangles {
		if !drawable(t, known) {
			continue
		}
		path := element("path")
		path.D = trianglePath(f, pts, t)
		wire.Kids = append(wire.Kids, path)
	}

	dots := element("g")
	dots.ID = "points"
	colors := rowColors(len(pts), opts.Widths)
	for i, p := range pts {
		if !known[i] {
			continue
		}
		x, y := f.apply(p)
		c := element("circle")
		c.CX, c.CY = formatNumber(x), formatNumber(y)
		c.Radius = strconv.Itoa(pointRadius)
		c.Fill = colors[i].Hex()
		dots.Kids = append(dots.Kids, c)
	}
	root.Kids = append(root.Kids, wire, dots)

	if opts.Labels {
		labels := element("g")
		labels.ID = "labels"
		labels.Styles = fmt.Sprintf("font-family:monospace;font-size:11px;fill:%s", color.Gray.Hex())
		for i, p := range pts {
			if !known[i] {
				continue
			}
			x, y := f.apply(p)
			t := element("text")
			t.X = formatNumber(x + pointRadius + 1)
			t.Y = formatNumber(y - pointRadius - 1)
			t.Text = strconv.Itoa(i)
			labels.Kids = append(labels.Kids, t)
		}
		root.Kids = append(root.Kids, labels)
	}
	return root
}

// EncodeSVG writes view of m to w as an SVG document.
func EncodeSVG(w io.Writer, m mesh.Mesh, v View, opts Options) error {
	data, err := xml.MarshalIndent(buildSVG(m, v, opts), "", "  ")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// SaveSVG writes view of m into the SVG file at path.
func SaveSVG(path string, m mesh.Mesh, v View, opts Options) error {
	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeSVG(fq, m, v, opts); err != nil {
		fq.Close()
		return err
	}
	return fq.Close()
}
