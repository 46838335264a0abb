// Package scene turns a document into a flat list of typed draw items.
//
// A [Scene] is format independent: every rough pass, hachure line and
// arrowhead is already resolved to geometry and paint, so the SVG and raster
// sinks only translate items into their own drawing calls. Items keep
// document order; within one element fills come before strokes and shaft
// passes before arrowheads.
package scene

import (
	"image/color"
	"math"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/geom"
)

// Cap is the stroke line cap.
type Cap int

const (
	CapButt Cap = iota
	CapRound
)

// Join is the stroke line join.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
)

// Paint describes how an item is filled and stroked. A zero alpha on Fill or
// Stroke means that part is not drawn.
type Paint struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	Opacity     float64 // 0..1, applied to the whole item
	Dash        []float64
	Cap         Cap
	Join        Join
}

// HasFill reports whether the item is filled.
func (p Paint) HasFill() bool { return p.Fill.A > 0 }

// HasStroke reports whether the item is stroked.
func (p Paint) HasStroke() bool { return p.Stroke.A > 0 && p.StrokeWidth > 0 }

// Visible reports whether drawing the item could change any pixel.
func (p Paint) Visible() bool { return p.Opacity > 0 && (p.HasFill() || p.HasStroke()) }

// Rotation turns an item by Angle degrees clockwise about Center.
type Rotation struct {
	Angle  float64
	Center geom.Point
}

// IsZero reports whether the rotation leaves points unchanged.
func (r Rotation) IsZero() bool { return r.Angle == 0 }

// Apply rotates p.
func (r Rotation) Apply(p geom.Point) geom.Point {
	if r.IsZero() {
		return p
	}
	rad := r.Angle * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	d := p.Sub(r.Center)
	return geom.Pt(r.Center.X+d.X*c-d.Y*s, r.Center.Y+d.X*s+d.Y*c)
}

// Attrs are the attributes shared by every item.
type Attrs struct {
	Paint    Paint
	Rotation Rotation
}

func (a Attrs) attrs() Attrs { return a }

// Item is one of Rect, Ellipse, Polygon, Path, Circle, Line or Text.
type Item interface {
	attrs() Attrs
}

// AttrsOf returns the shared attributes of any item.
func AttrsOf(it Item) Attrs { return it.attrs() }

// Rect is an axis-aligned rectangle with square corners.
type Rect struct {
	Attrs
	X, Y, W, H float64
}

// Ellipse is an exact ellipse.
type Ellipse struct {
	Attrs
	Center geom.Point
	RX, RY float64
}

// Polygon is a closed straight-edged shape.
type Polygon struct {
	Attrs
	Points []geom.Point
}

// Path is an arbitrary path of line and cubic segments.
type Path struct {
	Attrs
	Path geom.Path
}

// Circle is used for dot and circle arrowheads.
type Circle struct {
	Attrs
	Center geom.Point
	R      float64
}

// Line is a single straight stroke.
type Line struct {
	Attrs
	A, B geom.Point
}

// TextLine is one line of a text block with its baseline y.
type TextLine struct {
	Y    float64
	Text string
}

// Text is a block of lines sharing one anchor x. Paint.Fill is the glyph
// color.
type Text struct {
	Attrs
	X        float64
	Lines    []TextLine
	FontSize float64
	FontID   int    // Excalidraw fontFamily id
	Anchor   string // start, middle or end
}

// Scene is the drawable form of a document.
type Scene struct {
	ViewBox document.ViewBox
	Items   []Item
}

// FontIDs returns the distinct font ids used by text items in first-use
// order.
func (s *Scene) FontIDs() []int {
	var ids []int
	seen := make(map[int]bool)
	for _, it := range s.Items {
		if t, ok := it.(Text); ok && !seen[t.FontID] {
			seen[t.FontID] = true
			ids = append(ids, t.FontID)
		}
	}
	return ids
}
