// Package fudata reads digitized point exports: a block of "x,y" before
// points, an empty line, then a block of "x,y" after points listed in the
// same order. Files are GB2312 encoded and may carry header lines.
package fudata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"gridmesh/pkg/geometry"
)

var (
	ErrMalformedLine   = errors.New("malformed point line")
	ErrTooManySections = errors.New("more than two sections delimited by empty lines")
	ErrUnmatchedAfter  = errors.New("after point without a matching before point")
)

// maxLineLength bounds a single input line. Real exports hold a short
// "x,y" pair per line.
const maxLineLength = 1024 * 1024

type section int

const (
	sectionBefore section = iota
	sectionAfter
	sectionBeyond
)

func isData(line string) bool {
	c := line[0]
	return (c >= '0' && c <= '9') || c == ','
}

func parsePoint(line string) (geometry.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return geometry.Point{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	return geometry.Point{X: float64(x), Y: float64(y)}, nil
}

// Parse reads already-decoded text. Pairs are returned in file order; a
// pair whose after line is missing has HasAfter false.
func Parse(r io.Reader) ([]geometry.Pair, error) {
	var pairs []geometry.Pair
	sec := sectionBefore
	afters := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			// Section break, or padding at the end of the file.
			if sec == sectionBefore {
				sec = sectionAfter
			} else if afters > 0 {
				sec = sectionBeyond
			}
			continue
		}
		if !isData(line) {
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		switch sec {
		case sectionBefore:
			pairs = append(pairs, geometry.Pair{Before: p})
		case sectionAfter:
			if afters >= len(pairs) {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrUnmatchedAfter)
			}
			pairs[afters].After = p
			pairs[afters].HasAfter = true
			afters++
		default:
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrTooManySections)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return pairs, nil
}

// ParseGB2312 decodes r as GB2312 before parsing it.
func ParseGB2312(r io.Reader) ([]geometry.Pair, error) {
	return Parse(transform.NewReader(r, simplifiedchinese.GBK.NewDecoder()))
}

// ReadFile opens and parses a GB2312 export.
func ReadFile(path string) ([]geometry.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := ParseGB2312(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}
