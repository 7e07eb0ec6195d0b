package preview

import (
	"image"
	"image/png"
	"io"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"gridmesh/pkg/color"
	"gridmesh/pkg/mesh"
)

const pointRadius = 3

// Draw renders view of m as a wireframe with its points on top.
func Draw(m mesh.Mesh, v View, opts Options) image.Image {
	pts, known := points(m, v)
	f := newFrame(visible(pts, known), opts)

	ctx := gg.NewContext(f.width, f.height)
	ctx.SetColor(color.ColorToImageColor(color.White))
	ctx.Clear()

	ctx.SetColor(color.ColorToImageColor(color.Black))
	ctx.SetLineWidth(opts.LineWidth)
	for _, t := range m.Triangles {
		if !drawable(t, known) {
			continue
		}
		ctx.Push()
		ctx.MoveTo(f.apply(pts[t[0]]))
		ctx.LineTo(f.apply(pts[t[1]]))
		ctx.LineTo(f.apply(pts[t[2]]))
		ctx.ClosePath()
		ctx.Stroke()
		ctx.Pop()
	}

	colors := rowColors(len(pts), opts.Widths)
	for i, p := range pts {
		if !known[i] {
			continue
		}
		x, y := f.apply(p)
		ctx.SetColor(color.ColorToImageColor(colors[i]))
		ctx.DrawCircle(x, y, pointRadius)
		ctx.Fill()
	}

	if opts.Labels {
		ctx.SetFontFace(basicfont.Face7x13)
		ctx.SetColor(color.ColorToImageColor(color.Gray))
		for i, p := range pts {
			if !known[i] {
				continue
			}
			x, y := f.apply(p)
			ctx.DrawString(strconv.Itoa(i), x+pointRadius+1, y-pointRadius-1)
		}
	}
	return ctx.Image()
}

// EncodePNG draws view of m and writes it to w as a PNG.
func EncodePNG(w io.Writer, m mesh.Mesh, v View, opts Options) error {
	return png.Encode(w, Draw(m, v, opts))
}

// SavePNG draws view of m into the PNG file at path.
func SavePNG(path string, m mesh.Mesh, v View, opts Options) error {
	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(fq, m, v, opts); err != nil {
		fq.Close()
		return err
	}
	return fq.Close()
}
