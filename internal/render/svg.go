package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG is the root of a rendered card
type SVG struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Class   string   `xml:"class,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Groups  []Group  `xml:"g"`
}

// Group is a <g> element. Only one kind of child is set per group.
type Group struct {
	Class string `xml:"class,attr,omitempty"`
	Rects []Rect `xml:"rect"`
	Text  *Text  `xml:"text"`
	Path  *Path  `xml:"path"`
}

// Rect is a rounded rectangle
type Rect struct {
	X           Length `xml:"x,attr"`
	Y           Length `xml:"y,attr"`
	RX          Length `xml:"rx,attr"`
	RY          Length `xml:"ry,attr"`
	Width       Length `xml:"width,attr"`
	Height      Length `xml:"height,attr"`
	Fill        string `xml:"fill,attr,omitempty"`
	Stroke      string `xml:"stroke,attr,omitempty"`
	StrokeWidth string `xml:"stroke-width,attr,omitempty"`
}

// Text holds the rank label
type Text struct {
	X          string `xml:"x,attr,omitempty"`
	Y          string `xml:"y,attr,omitempty"`
	FontSize   string `xml:"font-size,attr,omitempty"`
	FontFamily string `xml:"font-family,attr,omitempty"`
	Fill       string `xml:"fill,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Path is a suit glyph. D is empty when the suit has no glyph.
type Path struct {
	D         string `xml:"d,attr,omitempty"`
	Fill      string `xml:"fill,attr,omitempty"`
	Transform string `xml:"transform,attr,omitempty"`
}

// Length is an SVG user-space length, written without exponent or
// trailing zeros.
type Length float64

func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

// MarshalXMLAttr implements xml.MarshalerAttr
func (l Length) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: l.String()}, nil
}

// Width returns the width component of the view box
func (s *SVG) Width() float64 {
	var x, y, w, h float64
	fmt.Sscanf(s.ViewBox, "%g %g %g %g", &x, &y, &w, &h)
	return w
}

// Height returns the height component of the view box
func (s *SVG) Height() float64 {
	var x, y, w, h float64
	fmt.Sscanf(s.ViewBox, "%g %g %g %g", &x, &y, &w, &h)
	return h
}

// Encode writes the SVG document, prefixed with an XML declaration
func (s *SVG) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding svg: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func (s *SVG) String() string {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func viewBox(width, height float64) string {
	return fmt.Sprintf("0 0 %s %s", Length(width), Length(height))
}
