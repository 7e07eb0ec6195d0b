package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 2, d.MinWindow)
	assert.Equal(t, 5, d.MaxWindow)
	assert.Equal(t, 1000.0, d.InitialStdev)
	assert.Equal(t, 3.0, d.MinStdev)
	assert.Equal(t, 2.5, d.JumpMultiplier)
	assert.Equal(t, 1.0, d.RowColRatio)
	assert.Equal(t, 25, d.LowConfidenceCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Tuning)
	}{
		{"min window", func(t *Tuning) { t.MinWindow = 1 }},
		{"max below min", func(t *Tuning) { t.MaxWindow = 1 }},
		{"initial stdev", func(t *Tuning) { t.InitialStdev = 0 }},
		{"min stdev", func(t *Tuning) { t.MinStdev = -1 }},
		{"multiplier", func(t *Tuning) { t.JumpMultiplier = 1 }},
		{"ratio", func(t *Tuning) { t.RowColRatio = 0 }},
		{"low confidence", func(t *Tuning) { t.LowConfidenceCount = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Default()
			tt.modify(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeFile(t, "tuning.json", `{"jump_multiplier": 3.5, "max_window": 4}`)

	tuning, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.JumpMultiplier = 3.5
	want.MaxWindow = 4
	assert.Equal(t, want, tuning)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "tuning.json", `{"min_window": 6}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "tuning.yaml", `{}`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.json", `{"min_window": `))
	assert.Error(t, err)
}
