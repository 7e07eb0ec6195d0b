package main

import (
	"flag"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmesh/pkg/logger"
)

func TestCountFlag(t *testing.T) {
	tests := []struct {
		args    []string
		want    countFlag
		wantErr bool
	}{
		{nil, 0, false},
		{[]string{"-v"}, 1, false},
		{[]string{"-v", "-v"}, 2, false},
		{[]string{"-v", "-v", "-v"}, 3, false},
		{[]string{"-v=3"}, 3, false},
		{[]string{"-v=2", "-v"}, 3, false},
		{[]string{"-v=x"}, 0, true},
	}
	for _, test := range tests {
		var v countFlag
		fs := flag.NewFlagSet("gridmesh", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.Var(&v, "v", "verbosity")

		err := fs.Parse(test.args)
		if test.wantErr {
			assert.Error(t, err, "args %v", test.args)
			continue
		}
		require.NoError(t, err, "args %v", test.args)
		assert.Equal(t, test.want, v, "args %v", test.args)
		assert.Equal(t, fmt.Sprint(int(test.want)), v.String())
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in      string
		want    logger.Verbosity
		wantErr bool
	}{
		{"", logger.Info, false},
		{"0", logger.Normal, false},
		{"3", logger.Debug, false},
		{"loud", 0, true},
		{"7", 0, true},
		{"-1", 0, true},
	}
	for _, test := range tests {
		got, err := parseVerbosity(test.in)
		if test.wantErr {
			assert.Error(t, err, "LOG_VERBOSITY=%q", test.in)
			continue
		}
		require.NoError(t, err, "LOG_VERBOSITY=%q", test.in)
		assert.Equal(t, test.want, got, "LOG_VERBOSITY=%q", test.in)
	}
}
