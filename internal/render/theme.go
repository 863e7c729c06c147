package render

import (
	"fmt"

	"github.com/arcanaland/cardface/internal/card"
)

// Theme holds the presentation attributes inlined by WithTheme
type Theme struct {
	Background string
	Border     string
	Red        string
	Black      string
	Back       string
	FontFamily string
}

// DefaultTheme is a white card with red and black suits and a blue back
var DefaultTheme = Theme{
	Background: "#ffffff",
	Border:     "#9e9e9e",
	Red:        "#c62828",
	Black:      "#212121",
	Back:       "#1e3a8a",
	FontFamily: "serif",
}

// Placement of the rank label and glyphs on a themed face
const (
	rankX        = 100
	rankY        = 330
	rankFontSize = 280
	pipScale     = 0.6
	pipX         = 110
	pipY         = 400
	centerScale  = 3
)

func (t Theme) ink(s card.Suit) string {
	if s.Red() {
		return t.Red
	}
	return t.Black
}

func (t Theme) frame(r *Rect, fill string) {
	r.Fill = fill
	r.Stroke = t.Border
	r.StrokeWidth = "8"
}

func (t Theme) applyFace(svg *SVG, s card.Suit) {
	ink := t.ink(s)

	t.frame(&svg.Groups[0].Rects[0], t.Background)

	text := svg.Groups[1].Text
	text.X = Length(rankX).String()
	text.Y = Length(rankY).String()
	text.FontSize = Length(rankFontSize).String()
	text.FontFamily = t.FontFamily
	text.Fill = ink

	pip := svg.Groups[2].Path
	pip.Fill = ink
	pip.Transform = transform(pipX, pipY, pipScale)

	center := svg.Groups[3].Path
	center.Fill = ink
	center.Transform = transform(
		(CardWidth-glyphWidth*centerScale)/2,
		(CardHeight-glyphHeight*centerScale)/2,
		centerScale,
	)
}

func (t Theme) applyBack(svg *SVG) {
	t.frame(&svg.Groups[0].Rects[0], t.Background)
	svg.Groups[1].Rects[0].Fill = t.Back
}

// transform places a glyph. Both scale factors are written: oksvg reads a
// lone scale argument as a zero y scale.
func transform(x, y, scale float64) string {
	return fmt.Sprintf("translate(%s %s) scale(%s %s)", Length(x), Length(y), Length(scale), Length(scale))
}
