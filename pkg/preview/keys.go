package preview

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gridmesh/pkg/color"
	"gridmesh/pkg/rows"
)

// maxLegendRows caps the legend; beyond it the colors speak for themselves.
const maxLegendRows = 12

// KeyPlot charts the sorted projection keys of res against their position,
// one scatter series per row. Row cuts show up as steps between series.
func KeyPlot(res rows.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%v keys - %d points, %d rows (suggested %d)",
		res.Orientation, len(res.Keys), len(res.Rows), res.SuggestedRows)
	p.X.Label.Text = "Sorted index"
	p.Y.Label.Text = "Key"

	idx := 0
	for r, row := range res.Rows {
		pts := make(plotter.XYs, 0, len(row))
		for range row {
			if idx < len(res.Keys) {
				pts = append(pts, plotter.XY{X: float64(idx), Y: res.Keys[idx]})
			}
			idx++
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		scatter.GlyphStyle.Color = color.ColorToImageColor(color.ForRow(r))
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		if len(res.Rows) <= maxLegendRows {
			p.Legend.Add(fmt.Sprintf("row %d (%d)", r, len(row)), scatter)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = 10
	p.Legend.YOffs = -10
	p.Add(plotter.NewGrid())
	return p, nil
}

// EncodeKeys writes the key chart of res to w in format ("png", "svg", "pdf").
func EncodeKeys(w io.Writer, res rows.Result, format string) error {
	p, err := KeyPlot(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveKeys writes the key chart of res to path; the extension picks the format.
func SaveKeys(path string, res rows.Result) error {
	p, err := KeyPlot(res)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save key plot: %w", err)
	}
	return nil
}
