package color

import (
	"fmt"
	"image/color"
)

// Color is a small, canonical palette for mesh previews. Rows are drawn in
// the saturated colors, cycling when there are more rows than colors, so
// neighbouring rows never share a color. White, Black and Gray are
// reserved for the background, the wireframe and point labels.
type Color byte

const (
	White Color = iota
	Black
	Gray
	Red
	Green
	Blue
	Magenta
	Cyan
	Orange
)

var Palette = color.Palette{
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // Black
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // Gray
	color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // Red
	color.RGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}, // Green
	color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // Blue
	color.RGBA{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // Magenta
	color.RGBA{R: 0x00, G: 0xbb, B: 0xdd, A: 0xff}, // Cyan
	color.RGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}, // Orange
}

var rowColors = []Color{Red, Green, Blue, Magenta, Cyan, Orange}

// ForRow returns the color row i is drawn in.
func ForRow(i int) Color {
	if i < 0 {
		i = -i
	}
	return rowColors[i%len(rowColors)]
}

func ColorToImageColor(c Color) color.Color {
	if int(c) >= len(Palette) {
		return Palette[White]
	}
	return Palette[c]
}

// Hex formats c as an SVG/CSS "#rrggbb" color.
func (c Color) Hex() string {
	r, g, b, _ := ColorToImageColor(c).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
