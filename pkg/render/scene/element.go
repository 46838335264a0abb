package scene

import (
	"image/color"
	"math"
	"strings"

	"github.com/matzehuels/roughdraw/pkg/arrowhead"
	"github.com/matzehuels/roughdraw/pkg/corner"
	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/hachure"
	"github.com/matzehuels/roughdraw/pkg/rough"
	"github.com/matzehuels/roughdraw/pkg/style"
)

// Opacity factor of the jittered second rendition of an arrowhead.
const roughCapOpacity = 0.9

// White fills the inside of outline arrowheads.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// element carries the decoded paint of one document element while its items
// are built.
type element struct {
	el       *document.Element
	stroke   color.NRGBA
	fill     color.NRGBA
	hasFill  bool
	hasLine  bool
	opacity  float64
	rotation Rotation
	dash     []float64
}

func newElement(el *document.Element) *element {
	e := &element{
		el:       el,
		hasLine:  style.HasStroke(el.StrokeColor, el.StrokeWidth),
		hasFill:  style.HasFill(el.BackgroundColor),
		opacity:  el.Alpha(),
		rotation: Rotation{Angle: el.AngleDegrees(), Center: el.Center()},
		dash:     style.DashArray(style.ParseStrokeStyle(el.StrokeStyle), el.StrokeWidth),
	}
	if e.hasLine {
		e.stroke = style.ParseColor(el.StrokeColor)
	}
	if e.hasFill {
		e.fill = style.ParseColor(el.BackgroundColor)
	}
	return e
}

// Element returns the draw items for a single document element. Deleted and
// unknown elements yield nothing.
func Element(el *document.Element) []Item {
	if el.Deleted {
		return nil
	}
	e := newElement(el)
	var items []Item
	switch el.Kind() {
	case document.TypeRectangle:
		items = e.rectangle()
	case document.TypeDiamond:
		items = e.diamond()
	case document.TypeEllipse:
		items = e.ellipse()
	case document.TypeLine, document.TypeArrow:
		items = e.linear()
	case document.TypeText:
		items = e.text()
	}
	return visible(items)
}

func visible(items []Item) []Item {
	out := items[:0]
	for _, it := range items {
		if it.attrs().Paint.Visible() {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (e *element) attrs(p Paint) Attrs { return Attrs{Paint: p, Rotation: e.rotation} }

// fillPaint paints the background without an outline.
func (e *element) fillPaint() Paint {
	return Paint{Fill: e.fill, Opacity: e.opacity}
}

// strokePaint paints one outline pass. passOpacity scales the element
// opacity, capped at 1.
func (e *element) strokePaint(passOpacity float64) Paint {
	return Paint{
		Stroke:      e.stroke,
		StrokeWidth: e.el.StrokeWidth,
		Opacity:     math.Min(e.opacity*passOpacity, 1),
		Dash:        e.dash,
		Cap:         CapRound,
		Join:        JoinRound,
	}
}

// solidPaint fills and strokes in one go, used for exact shapes.
func (e *element) solidPaint() Paint {
	p := e.strokePaint(1)
	p.Fill = e.fill
	return p
}

func (e *element) passes(ps []rough.Pass) []Item {
	if !e.hasLine {
		return nil
	}
	items := make([]Item, 0, len(ps))
	for _, p := range ps {
		items = append(items, Path{Attrs: e.attrs(e.strokePaint(p.Opacity)), Path: p.Path})
	}
	return items
}

func (e *element) rectangle() []Item {
	el := e.el
	radius := el.CornerRadius()
	fs := style.ParseFillStyle(el.FillStyle)

	// patterned fills keep an exact border whatever the roughness
	if e.hasFill && fs.Patterned() {
		items := []Item{e.hatch(fs)}
		if !e.hasLine {
			return items
		}
		if radius > 0 {
			return append(items, Path{Attrs: e.attrs(e.strokePaint(1)), Path: corner.RoundedRectPath(el.X, el.Y, el.Width, el.Height, radius)})
		}
		return append(items, Rect{Attrs: e.attrs(e.strokePaint(1)), X: el.X, Y: el.Y, W: el.Width, H: el.Height})
	}

	if el.Roughness <= 0 {
		if radius > 0 {
			return []Item{Path{Attrs: e.attrs(e.solidPaint()), Path: corner.RoundedRectPath(el.X, el.Y, el.Width, el.Height, radius)}}
		}
		return []Item{Rect{Attrs: e.attrs(e.solidPaint()), X: el.X, Y: el.Y, W: el.Width, H: el.Height}}
	}

	var items []Item
	if e.hasFill {
		items = append(items, Path{Attrs: e.attrs(e.fillPaint()), Path: corner.RoundedRectPath(el.X, el.Y, el.Width, el.Height, radius)})
	}
	return append(items, e.passes(rough.Rectangle(el.X, el.Y, el.Width, el.Height, radius, el.Roughness, el.Seed))...)
}

// hatch draws the fill pattern with the background color. The lines are laid
// out unrotated; the item rotation turns them with the element.
func (e *element) hatch(fs style.FillStyle) Item {
	r := e.el.Bounds()
	var lines []geom.Line
	if fs == style.FillCrossHatch {
		lines = hachure.CrossHatch(r, 0, hachure.DefaultGap)
	} else {
		lines = hachure.Lines(r, 0, hachure.DefaultGap)
	}
	var p geom.Path
	for _, l := range lines {
		p.MoveTo(l.A)
		p.LineTo(l.B)
	}
	paint := Paint{Stroke: e.fill, StrokeWidth: 1, Opacity: e.opacity}
	return Path{Attrs: e.attrs(paint), Path: p}
}

func (e *element) diamond() []Item {
	el := e.el
	c := el.Center()
	pts := []geom.Point{
		geom.Pt(c.X, el.Y),
		geom.Pt(el.X+el.Width, c.Y),
		geom.Pt(c.X, el.Y+el.Height),
		geom.Pt(el.X, c.Y),
	}
	if el.Roughness <= 0 {
		return []Item{Polygon{Attrs: e.attrs(e.solidPaint()), Points: pts}}
	}
	var items []Item
	if e.hasFill {
		items = append(items, Polygon{Attrs: e.attrs(e.fillPaint()), Points: pts})
	}
	return append(items, e.passes(rough.Polygon(pts, el.Roughness, el.Seed))...)
}

func (e *element) ellipse() []Item {
	el := e.el
	c := el.Center()
	rx, ry := el.Width/2, el.Height/2
	if el.Roughness <= 0 {
		return []Item{Ellipse{Attrs: e.attrs(e.solidPaint()), Center: c, RX: rx, RY: ry}}
	}
	var items []Item
	if e.hasFill {
		items = append(items, Ellipse{Attrs: e.attrs(e.fillPaint()), Center: c, RX: rx, RY: ry})
	}
	return append(items, e.passes(rough.Ellipse(c, rx, ry, el.Roughness, el.Seed))...)
}

func (e *element) linear() []Item {
	el := e.el
	if len(el.Points) == 0 || !e.hasLine {
		return nil
	}
	pts := el.AbsPoints()
	shaft := rough.ShaftCurved
	if el.Elbowed {
		shaft = rough.ShaftElbow
	}
	items := e.passes(rough.Shaft(pts, el.Roughness, el.StrokeWidth, el.Seed, shaft))

	for _, end := range []arrowhead.End{arrowhead.AtEnd, arrowhead.AtStart} {
		kind, ok := el.Arrowhead(end)
		if !ok {
			continue
		}
		tail, tip, segLen, ok := arrowhead.Direction(pts, end, !el.Elbowed)
		if !ok {
			continue
		}
		g := arrowhead.Compute(tail, tip, kind, el.StrokeWidth, segLen)
		items = append(items, e.cap(g, kind, 1)...)

		rg := arrowhead.Rough(tail, tip, kind, el.StrokeWidth, segLen, el.Roughness, el.Seed, end)
		items = append(items, e.cap(rg, kind, roughCapOpacity)...)
	}
	return items
}

// cap converts arrowhead geometry into items. Dotted arrows draw their caps
// with a tighter dot pattern; dashed arrows draw solid caps.
func (e *element) cap(g arrowhead.Geometry, kind arrowhead.Kind, passOpacity float64) []Item {
	if g == nil {
		return nil
	}
	p := e.strokePaint(passOpacity)
	p.Dash = nil
	if style.ParseStrokeStyle(e.el.StrokeStyle) == style.StrokeDotted {
		p.Dash = style.CapDashArray(e.el.StrokeWidth)
	}
	filled := p
	filled.Fill = e.stroke
	if kind.Outline() {
		filled.Fill = White
	}
	line := func(a, b geom.Point) Item { return Line{Attrs: e.attrs(p), A: a, B: b} }

	switch g := g.(type) {
	case arrowhead.Circle:
		return []Item{Circle{Attrs: e.attrs(filled), Center: g.Center, R: g.Diameter / 2}}
	case arrowhead.Bar:
		return []Item{line(g.A, g.B)}
	case arrowhead.Chevron:
		if kind == arrowhead.KindArrow {
			return []Item{line(g.Left, g.Tip), line(g.Right, g.Tip)}
		}
		return []Item{Polygon{Attrs: e.attrs(filled), Points: g.Points()}}
	case arrowhead.Diamond:
		return []Item{Polygon{Attrs: e.attrs(filled), Points: g.Points()}}
	case arrowhead.Crowfoot:
		if kind == arrowhead.KindCrowfootOne {
			return []Item{line(g.Left, g.Right)}
		}
		items := []Item{line(g.Left, g.Base), line(g.Right, g.Base)}
		if kind == arrowhead.KindCrowfootOneOrMany {
			items = append(items, line(g.Left, g.Right))
		}
		return items
	}
	return nil
}

// text lays out one <tspan> per line. Glyph color is the stroke color; text
// stays visible at stroke width zero.
func (e *element) text() []Item {
	el := e.el
	if el.Text == "" || style.IsTransparent(el.StrokeColor) {
		return nil
	}
	size := style.FontSize(el.FontSize)
	advance := style.LineAdvance(el.LineHeight, size)
	offset := style.BaselineOffset(el.VerticalAlign, size)

	raw := strings.Split(strings.ReplaceAll(el.Text, "\r\n", "\n"), "\n")
	lines := make([]TextLine, len(raw))
	for i, s := range raw {
		lines[i] = TextLine{Y: el.Y + float64(i)*advance + offset, Text: s}
	}
	return []Item{Text{
		Attrs:    e.attrs(Paint{Fill: style.ParseColor(el.StrokeColor), Opacity: e.opacity}),
		X:        style.TextX(el.X, el.Width, el.TextAlign),
		Lines:    lines,
		FontSize: size,
		FontID:   el.FontFamily,
		Anchor:   style.TextAnchor(el.TextAlign),
	}}
}
