package rows

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WidthStats summarizes the row widths of a RowSet.
type WidthStats struct {
	Rows   int
	Points int
	Max    int
	Median float64
	Mode   int
	Mean   float64
}

// Stats computes width statistics for rs. The zero WidthStats is returned
// for an empty RowSet.
func Stats(rs RowSet) WidthStats {
	if len(rs) == 0 {
		return WidthStats{}
	}
	widths := make([]float64, len(rs))
	for i, row := range rs {
		widths[i] = float64(len(row))
	}

	mode, _ := stat.Mode(widths, nil)
	ws := WidthStats{
		Rows:   len(rs),
		Points: int(floats.Sum(widths)),
		Max:    int(floats.Max(widths)),
		Mode:   int(mode),
		Mean:   stat.Mean(widths, nil),
	}
	ws.Median = median(widths)
	return ws
}
