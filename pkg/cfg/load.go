package cfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// tuningFile mirrors Tuning with pointer fields, so a partial file only
// overrides the values it names.
type tuningFile struct {
	MinWindow          *int     `json:"min_window,omitempty"`
	MaxWindow          *int     `json:"max_window,omitempty"`
	InitialStdev       *float64 `json:"initial_stdev,omitempty"`
	MinStdev           *float64 `json:"min_stdev,omitempty"`
	JumpMultiplier     *float64 `json:"jump_multiplier,omitempty"`
	RowColRatio        *float64 `json:"row_col_ratio,omitempty"`
	LowConfidenceCount *int     `json:"low_confidence_count,omitempty"`
}

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads a JSON tuning file on top of Default and validates the result.
func Load(path string) (Tuning, error) {
	t := Default()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return t, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return t, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return t, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return t, fmt.Errorf("failed to read config file: %w", err)
	}

	var f tuningFile
	if err := json.Unmarshal(data, &f); err != nil {
		return t, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	f.applyTo(&t)

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("config file %s: %w", cleanPath, err)
	}
	return t, nil
}

func (f *tuningFile) applyTo(t *Tuning) {
	if f.MinWindow != nil {
		t.MinWindow = *f.MinWindow
	}
	if f.MaxWindow != nil {
		t.MaxWindow = *f.MaxWindow
	}
	if f.InitialStdev != nil {
		t.InitialStdev = *f.InitialStdev
	}
	if f.MinStdev != nil {
		t.MinStdev = *f.MinStdev
	}
	if f.JumpMultiplier != nil {
		t.JumpMultiplier = *f.JumpMultiplier
	}
	if f.RowColRatio != nil {
		t.RowColRatio = *f.RowColRatio
	}
	if f.LowConfidenceCount != nil {
		t.LowConfidenceCount = *f.LowConfidenceCount
	}
}
