package cfg

import (
	"errors"
	"fmt"
)

// Tuning holds the thresholds used when splitting projected points into rows.
// The defaults were picked against scans of a roughly square calibration
// sheet; they are not derived from first principles.
type Tuning struct {
	// MinWindow is the smallest number of consecutive keys compared at once,
	// and the size the window resets to after a row boundary. Must be >= 2.
	MinWindow int `json:"min_window"`
	// MaxWindow caps how far the window may grow while points keep landing
	// in the same row. The effective cap is also limited by the expected
	// row count.
	MaxWindow int `json:"max_window"`

	// InitialStdev seeds the comparison so that the very first window can
	// never be mistaken for a jump.
	InitialStdev float64 `json:"initial_stdev"`
	// MinStdev floors the remembered deviation, so a perfectly flat row does
	// not turn every bit of noise into a boundary.
	MinStdev float64 `json:"min_stdev"`
	// JumpMultiplier is how much larger a window's deviation must be than
	// the previous one to start a new row.
	JumpMultiplier float64 `json:"jump_multiplier"`

	// RowColRatio is the expected rows:columns aspect ratio of the grid.
	RowColRatio float64 `json:"row_col_ratio"`
	// LowConfidenceCount is the point count below which detection is
	// reported as unreliable.
	LowConfidenceCount int `json:"low_confidence_count"`
}

// Default returns the thresholds used when no config file is given.
func Default() Tuning {
	return Tuning{
		MinWindow:          2,
		MaxWindow:          5,
		InitialStdev:       1000,
		MinStdev:           3,
		JumpMultiplier:     2.5,
		RowColRatio:        1,
		LowConfidenceCount: 25,
	}
}

// ErrInvalidTuning is returned, wrapped, by Validate and Load.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate reports the first field holding a value the segmenter cannot use.
func (t Tuning) Validate() error {
	switch {
	case t.MinWindow < 2:
		return fmt.Errorf("%w: min_window must be at least 2, got %d", ErrInvalidTuning, t.MinWindow)
	case t.MaxWindow < t.MinWindow:
		return fmt.Errorf("%w: max_window (%d) is below min_window (%d)", ErrInvalidTuning, t.MaxWindow, t.MinWindow)
	case t.InitialStdev <= 0:
		return fmt.Errorf("%w: initial_stdev must be positive, got %g", ErrInvalidTuning, t.InitialStdev)
	case t.MinStdev <= 0:
		return fmt.Errorf("%w: min_stdev must be positive, got %g", ErrInvalidTuning, t.MinStdev)
	case t.JumpMultiplier <= 1:
		return fmt.Errorf("%w: jump_multiplier must be greater than 1, got %g", ErrInvalidTuning, t.JumpMultiplier)
	case t.RowColRatio <= 0:
		return fmt.Errorf("%w: row_col_ratio must be positive, got %g", ErrInvalidTuning, t.RowColRatio)
	case t.LowConfidenceCount < 0:
		return fmt.Errorf("%w: low_confidence_count must not be negative, got %d", ErrInvalidTuning, t.LowConfidenceCount)
	}
	return nil
}
