// Package render draws playing cards as SVG documents.
//
// Output without a theme carries class names only and is meant to be
// styled by a stylesheet: the card face uses the suit code as class, and
// the rank groups add "x<rank>". A Theme inlines fills and positions so
// the document can be rasterized on its own.
package render

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardface/internal/card"
)

// Card dimensions in SVG user units
const (
	CardWidth    = 1800
	AspectRatio  = 1.453
	CardHeight   = CardWidth * AspectRatio
	CornerRadius = 100
)

// glyph bounding box, shared by the four suit paths
const (
	glyphWidth  = 350
	glyphHeight = 410
)

type options struct {
	theme *Theme
}

// Option configures rendering
type Option func(*options)

// WithTheme inlines the theme's presentation attributes
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = &t
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Face renders the face of a card. The rank is written verbatim and the
// suit glyph appears twice: once next to the rank, once in the center.
func Face(c card.Card, opts ...Option) *SVG {
	o := buildOptions(opts)

	suit := c.Suit.Code()
	rankClass := strings.TrimSpace(fmt.Sprintf("%s x%s", suit, c.Rank))
	glyph := c.Suit.Glyph()

	svg := &SVG{
		Xmlns:   svgNamespace,
		Class:   "card",
		ViewBox: viewBox(CardWidth, CardHeight),
		Groups: []Group{
			{Rects: []Rect{background()}},
			{Class: rankClass, Text: &Text{Value: string(c.Rank)}},
			{Class: rankClass, Path: &Path{D: glyph}},
			{Class: suit, Path: &Path{D: glyph}},
		},
	}

	if o.theme != nil {
		o.theme.applyFace(svg, c.Suit)
	}

	return svg
}

// Back renders a face-down card
func Back(opts ...Option) *SVG {
	o := buildOptions(opts)

	svg := &SVG{
		Xmlns:   svgNamespace,
		Class:   "card back",
		ViewBox: viewBox(CardWidth, CardHeight),
		Groups: []Group{
			{Rects: []Rect{background()}},
			{Class: "back", Rects: []Rect{backFrame()}},
		},
	}

	if o.theme != nil {
		o.theme.applyBack(svg)
	}

	return svg
}

func background() Rect {
	return Rect{
		X:      0,
		Y:      0,
		RX:     CornerRadius,
		RY:     CornerRadius,
		Width:  CardWidth,
		Height: CardHeight,
	}
}

const backInset = 120

func backFrame() Rect {
	return Rect{
		X:      backInset,
		Y:      backInset,
		RX:     CornerRadius / 2,
		RY:     CornerRadius / 2,
		Width:  CardWidth - 2*backInset,
		Height: CardHeight - 2*backInset,
	}
}
