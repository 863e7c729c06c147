// Package ansi turns card images into terminal art.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws an SVG document onto a width x height RGBA image.
// Elements the rasterizer does not support, such as text, are skipped.
func Rasterize(r io.Reader, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return img, nil
}

// FromImage converts an image to half-block ANSI art, width x height
// character cells. Without trueColor the blocks are left uncolored.
func FromImage(img image.Image, width, height int, trueColor bool) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(colorAt(resized, x, y))
			col2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := toRGBA(average(col1, col2))
			bg := toRGBA(average(col3, col4))

			buffer.WriteString(cell('▀', fg, bg, trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// Width returns the visible width of a line, ignoring escape sequences
func Width(line string) int {
	return len([]rune(Strip(line)))
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// colorAt returns black outside the image bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func cell(char rune, fg, bg color.RGBA, trueColor bool) string {
	if !trueColor {
		return string(char)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}
