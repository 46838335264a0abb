// Package arrowhead computes the geometry of line and arrow end caps.
//
// [Compute] takes the last shaft segment (tail to tip), a [Kind] and the
// stroke width, and returns a [Geometry] holding exactly the points needed to
// draw that cap. The result is independent of the output format; sinks
// decide how each variant is painted.
//
// Caps grow with stroke width and shrink on short shafts so they never
// overrun the line:
//
//	length = min(baseSize·(1 + (strokeWidth-1)·0.3), segmentLength·f)
//
// where f is 0.25 for diamonds and 0.5 for everything else.
package arrowhead

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/geom"
)

// Geometry is one of Circle, Bar, Chevron, Diamond or Crowfoot. A nil
// Geometry means there is nothing to draw.
type Geometry interface {
	// Points lists the defining points in drawing order.
	Points() []geom.Point
	geometry()
}

// Circle is a dot or circle cap centered on the tip.
type Circle struct {
	Center   geom.Point
	Diameter float64
}

// Bar is a single stroke across the shaft.
type Bar struct {
	A, B geom.Point
}

// Chevron is the cap of the arrow and triangle kinds. Arrows stroke the two
// flanks towards the tip; triangles close and fill the shape.
type Chevron struct {
	Tip, Left, Right geom.Point
}

// Diamond is a four-sided cap whose rear vertex lies two cap lengths back
// from the tip.
type Diamond struct {
	Tip, Left, Rear, Right geom.Point
}

// Crowfoot is the cap of the crowfoot kinds. Left and Right are the tip
// rotated about Base, so the feet spread out at the tip end.
type Crowfoot struct {
	Base, Left, Right geom.Point
}

func (c Circle) Points() []geom.Point   { return []geom.Point{c.Center} }
func (b Bar) Points() []geom.Point      { return []geom.Point{b.A, b.B} }
func (c Chevron) Points() []geom.Point  { return []geom.Point{c.Tip, c.Left, c.Right} }
func (d Diamond) Points() []geom.Point  { return []geom.Point{d.Tip, d.Left, d.Rear, d.Right} }
func (c Crowfoot) Points() []geom.Point { return []geom.Point{c.Base, c.Left, c.Right} }

func (Circle) geometry()   {}
func (Bar) geometry()      {}
func (Chevron) geometry()  {}
func (Diamond) geometry()  {}
func (Crowfoot) geometry() {}

// Length returns the cap length for kind k.
func Length(k Kind, strokeWidth, segmentLength float64) float64 {
	mult := 1 + (strokeWidth-1)*0.3
	frac := 0.5
	if k.isDiamond() {
		frac = 0.25
	}
	return math.Min(k.baseSize()*mult, segmentLength*frac)
}

// Compute returns the cap geometry for a shaft ending at tip and arriving from
// tail. It returns nil when tail and tip coincide or the kind is KindUnknown.
func Compute(tail, tip geom.Point, k Kind, strokeWidth, segmentLength float64) Geometry {
	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || math.IsNaN(dist) {
		return nil
	}
	nx, ny := dx/dist, dy/dist

	size := Length(k, strokeWidth, segmentLength)
	base := geom.Pt(tip.X-nx*size, tip.Y-ny*size)

	rad := k.angle() * math.Pi / 180
	// arrow and bar flanks: the base point swung about the tip
	left, right := rotate(base, tip, -rad), rotate(base, tip, rad)

	switch k {
	case KindDot, KindCircle, KindCircleOutline:
		return Circle{Center: tip, Diameter: base.Dist(tip) + strokeWidth - 2}

	case KindBar:
		return Bar{A: left, B: right}

	case KindArrow:
		return Chevron{Tip: tip, Left: left, Right: right}

	case KindTriangle, KindTriangleOutline:
		left, right = baseFlanks(base, nx, ny, size, rad)
		return Chevron{Tip: tip, Left: left, Right: right}

	case KindDiamond, KindDiamondOutline:
		left, right = baseFlanks(base, nx, ny, size, rad)
		rear := geom.Pt(tip.X-nx*size*2, tip.Y-ny*size*2)
		return Diamond{Tip: tip, Left: left, Rear: rear, Right: right}

	case KindCrowfootOne, KindCrowfootMany, KindCrowfootOneOrMany:
		// the other way round: the tip swung about the base
		return Crowfoot{Base: base, Left: rotate(tip, base, -rad), Right: rotate(tip, base, rad)}

	default:
		return nil
	}
}

// baseFlanks places the triangle and diamond flanks at base plus the shaft
// normal (-ny, nx) turned by ∓angle, scaled to size. Both flanks land on
// the normal's side of the shaft, so these caps lean to one side.
func baseFlanks(base geom.Point, nx, ny, size, angle float64) (left, right geom.Point) {
	ca, sa := math.Cos(angle), math.Sin(angle)
	left = geom.Pt(base.X+(-ny*ca-nx*sa)*size, base.Y+(nx*ca-ny*sa)*size)
	right = geom.Pt(base.X+(-ny*ca+nx*sa)*size, base.Y+(nx*ca+ny*sa)*size)
	return left, right
}

// rotate turns p about c by angle radians.
func rotate(p, c geom.Point, angle float64) geom.Point {
	dx, dy := p.X-c.X, p.Y-c.Y
	ca, sa := math.Cos(angle), math.Sin(angle)
	return geom.Pt(c.X+dx*ca-dy*sa, c.Y+dx*sa+dy*ca)
}
