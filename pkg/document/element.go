package document

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/matzehuels/roughdraw/pkg/arrowhead"
	"github.com/matzehuels/roughdraw/pkg/corner"
	"github.com/matzehuels/roughdraw/pkg/geom"
)

// Type is the closed set of element kinds the renderer draws.
type Type int

const (
	// TypeUnknown covers images, frames, freedraw and anything newer. Such
	// elements are skipped.
	TypeUnknown Type = iota
	TypeRectangle
	TypeEllipse
	TypeDiamond
	TypeLine
	TypeArrow
	TypeText
)

var typeNames = map[string]Type{
	"rectangle": TypeRectangle,
	"ellipse":   TypeEllipse,
	"diamond":   TypeDiamond,
	"line":      TypeLine,
	"arrow":     TypeArrow,
	"text":      TypeText,
}

// ParseType maps an element "type" tag.
func ParseType(s string) Type {
	return typeNames[s]
}

func (t Type) String() string {
	for name, v := range typeNames {
		if v == t {
			return name
		}
	}
	return "unknown"
}

// Linear reports whether elements of this type are drawn through points.
func (t Type) Linear() bool { return t == TypeLine || t == TypeArrow }

// Roundness is the corner rounding descriptor of an element.
type Roundness struct {
	Type  int      `json:"type"`
	Value *float64 `json:"value,omitempty"`
}

// Element is one drawable item of a document.
type Element struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Angle   float64 `json:"angle"` // radians, clockwise about the center
	Seed    int32   `json:"seed"`
	Deleted bool    `json:"isDeleted"`

	StrokeColor     string     `json:"strokeColor"`
	BackgroundColor string     `json:"backgroundColor"`
	FillStyle       string     `json:"fillStyle"`
	StrokeWidth     float64    `json:"strokeWidth"`
	StrokeStyle     string     `json:"strokeStyle"`
	Roughness       float64    `json:"roughness"`
	Opacity         float64    `json:"opacity"` // 0..100
	Roundness       *Roundness `json:"roundness"`

	// Linear elements. Points are relative to (X, Y).
	Points         []geom.Point `json:"-"`
	Elbowed        bool         `json:"elbowed"`
	StartArrowhead *string      `json:"startArrowhead"`
	EndArrowhead   *string      `json:"endArrowhead"`
	StartArrowType *string      `json:"startArrowType"`
	EndArrowType   *string      `json:"endArrowType"`

	// Text elements.
	Text          string  `json:"text"`
	FontSize      float64 `json:"fontSize"`
	FontFamily    int     `json:"fontFamily"`
	TextAlign     string  `json:"textAlign"`
	VerticalAlign string  `json:"verticalAlign"`
	LineHeight    float64 `json:"lineHeight"`
	ContainerID   *string `json:"containerId"`
}

// defaultOpacity applies when a document omits the opacity key.
const defaultOpacity = 100

// UnmarshalJSON decodes the [x, y] point pairs and applies defaults for
// missing keys.
func (e *Element) UnmarshalJSON(b []byte) error {
	type plain Element
	aux := struct {
		*plain
		Opacity *float64    `json:"opacity"`
		Points  [][]float64 `json:"points"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	e.Opacity = defaultOpacity
	if aux.Opacity != nil {
		e.Opacity = *aux.Opacity
	}

	e.Points = nil
	if aux.Points != nil {
		e.Points = make([]geom.Point, len(aux.Points))
		for i, p := range aux.Points {
			if len(p) < 2 {
				return fmt.Errorf("element %s: point %d has %d coordinates, want 2", e.ID, i, len(p))
			}
			e.Points[i] = geom.Pt(p[0], p[1])
		}
	}
	return nil
}

// MarshalJSON writes points back as [x, y] pairs.
func (e Element) MarshalJSON() ([]byte, error) {
	type plain Element
	var pts [][2]float64
	if e.Points != nil {
		pts = make([][2]float64, len(e.Points))
		for i, p := range e.Points {
			pts[i] = [2]float64{p.X, p.Y}
		}
	}
	return json.Marshal(struct {
		plain
		Points [][2]float64 `json:"points,omitempty"`
	}{plain(e), pts})
}

// Kind returns the element type.
func (e *Element) Kind() Type { return ParseType(e.Type) }

// Bounds returns the element box.
func (e *Element) Bounds() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Center returns the rotation origin.
func (e *Element) Center() geom.Point { return e.Bounds().Center() }

// AngleDegrees converts the Excalidraw rotation, stored in radians, to degrees.
func (e *Element) AngleDegrees() float64 { return e.Angle * 180 / math.Pi }

// Alpha returns the element opacity as a fraction clamped to [0, 1].
func (e *Element) Alpha() float64 {
	return math.Min(math.Max(e.Opacity/100, 0), 1)
}

// AbsPoints returns Points translated to canvas coordinates.
func (e *Element) AbsPoints() []geom.Point {
	return geom.Translate(e.Points, geom.Pt(e.X, e.Y))
}

// CornerRadius returns the rounding radius for rectangles, or zero when the
// element has square corners.
func (e *Element) CornerRadius() float64 {
	if e.Roundness == nil {
		return 0
	}
	r := corner.Roundness{Kind: corner.Kind(e.Roundness.Type)}
	if e.Roundness.Value != nil {
		r.Value = *e.Roundness.Value
	}
	return corner.Radius(math.Min(e.Width, e.Height), &r)
}

// Arrowhead returns the cap at the given end. ok is false when the element
// declares no cap there. A declared but unrecognized tag yields
// arrowhead.KindUnknown with ok true, which draws nothing.
func (e *Element) Arrowhead(end arrowhead.End) (kind arrowhead.Kind, ok bool) {
	tag, legacy := e.EndArrowhead, e.EndArrowType
	if end == arrowhead.AtStart {
		tag, legacy = e.StartArrowhead, e.StartArrowType
	}
	if tag == nil {
		tag = legacy
	}
	if tag == nil {
		return arrowhead.KindUnknown, false
	}
	return arrowhead.ParseKind(*tag), true
}
