// Package corner implements corner rounding: the Excalidraw corner-radius
// policy, rounded rectangle outlines and rounded elbow-arrow polylines.
//
// All curved corners are emitted as cubic segments. Quadratic corners are
// elevated exactly with [geom.ElevateQuad].
package corner

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/geom"
)

// Kind is the roundness type stored in a document.
type Kind int

const (
	KindNone         Kind = 0
	KindLegacy       Kind = 1
	KindProportional Kind = 2
	KindAdaptive     Kind = 3
)

const (
	// ProportionalRadius is the radius as a fraction of the shorter side.
	ProportionalRadius = 0.25

	// AdaptiveRadius is the fixed radius used by adaptive roundness when the
	// document does not give one.
	AdaptiveRadius = 32.0

	// CornerSteps is the number of arc subdivisions per corner in
	// [RoundedRectPoints].
	CornerSteps = 8
)

// Roundness describes how a shape's corners are rounded. Value is the fixed
// radius for adaptive roundness; zero means the default.
type Roundness struct {
	Kind  Kind
	Value float64
}

// Radius returns the corner radius for a shape whose shorter side is x.
//
// Legacy and proportional roundness scale with the shape. Adaptive roundness
// uses a fixed radius, unless the shape is smaller than that radius would
// allow, in which case it falls back to the proportional rule. A nil
// descriptor or an unknown kind means square corners.
func Radius(x float64, r *Roundness) float64 {
	if r == nil {
		return 0
	}
	switch r.Kind {
	case KindLegacy, KindProportional:
		return x * ProportionalRadius
	case KindAdaptive:
		fixed := r.Value
		if fixed <= 0 {
			fixed = AdaptiveRadius
		}
		if x <= fixed/ProportionalRadius {
			return x * ProportionalRadius
		}
		return fixed
	default:
		return 0
	}
}

func clampRadius(radius, w, h float64) float64 {
	return math.Min(math.Min(radius, w/2), h/2)
}

// RoundedRectPath returns the closed outline of a rectangle with quarter-round
// corners of the given radius, starting at the top edge and running
// clockwise. The radius is clamped to half of either side; a non-positive
// radius produces a plain rectangle.
func RoundedRectPath(x, y, w, h, radius float64) geom.Path {
	r := clampRadius(radius, w, h)
	var p geom.Path
	if r <= 0 {
		p.MoveTo(geom.Pt(x, y))
		p.LineTo(geom.Pt(x+w, y))
		p.LineTo(geom.Pt(x+w, y+h))
		p.LineTo(geom.Pt(x, y+h))
		p.Close()
		return p
	}

	p.MoveTo(geom.Pt(x+r, y))
	p.LineTo(geom.Pt(x+w-r, y))
	p.QuadTo(geom.Pt(x+w, y), geom.Pt(x+w, y+r))
	p.LineTo(geom.Pt(x+w, y+h-r))
	p.QuadTo(geom.Pt(x+w, y+h), geom.Pt(x+w-r, y+h))
	p.LineTo(geom.Pt(x+r, y+h))
	p.QuadTo(geom.Pt(x, y+h), geom.Pt(x, y+h-r))
	p.LineTo(geom.Pt(x, y+r))
	p.QuadTo(geom.Pt(x, y), geom.Pt(x+r, y))
	p.Close()
	return p
}

// RoundedRectPoints samples the perimeter of a rounded rectangle as a closed
// ring: each corner arc contributes CornerSteps+1 points, and the edge
// endpoints between arcs are included explicitly. The rough rectangle
// generator jitters this ring edge by edge.
func RoundedRectPoints(x, y, w, h, radius float64) []geom.Point {
	r := clampRadius(radius, w, h)
	pts := make([]geom.Point, 0, 4*(CornerSteps+2))

	arc := func(cx, cy, from float64) {
		for i := 0; i <= CornerSteps; i++ {
			a := from + float64(i)/CornerSteps*math.Pi/2
			pts = append(pts, geom.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
		}
	}

	pts = append(pts, geom.Pt(x+r, y))
	arc(x+w-r, y+r, -math.Pi/2)
	pts = append(pts, geom.Pt(x+w, y+h-r))
	arc(x+w-r, y+h-r, 0)
	pts = append(pts, geom.Pt(x+r, y+h))
	arc(x+r, y+h-r, math.Pi/2)
	pts = append(pts, geom.Pt(x, y+r))
	arc(x+r, y+r, math.Pi)
	return pts
}

// ElbowPath rounds every interior vertex of an orthogonal polyline. Each
// corner radius is min(maxCorner, half the shorter adjacent segment). The
// tangent points are found by treating each adjacent segment as horizontal
// when |dx| >= |dy| and vertical otherwise. Two points give a straight line
// and fewer give an empty path.
func ElbowPath(points []geom.Point, maxCorner float64) geom.Path {
	n := len(points)
	if n < 3 {
		return geom.Polyline(points)
	}

	p := make(geom.Path, 0, 2*n)
	p.MoveTo(points[0])
	for i := 1; i < n-1; i++ {
		prev, v, next := points[i-1], points[i], points[i+1]
		r := math.Min(maxCorner, math.Min(prev.Dist(v), v.Dist(next))/2)
		if r <= 0 {
			p.LineTo(v)
			continue
		}
		p.LineTo(towards(v, prev, r))
		p.QuadTo(v, towards(v, next, r))
	}
	p.LineTo(points[n-1])
	return p
}

// towards steps distance r from v along the dominant axis of the segment
// v-other.
func towards(v, other geom.Point, r float64) geom.Point {
	d := other.Sub(v)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return geom.Pt(v.X+math.Copysign(r, d.X), v.Y)
	}
	return geom.Pt(v.X, v.Y+math.Copysign(r, d.Y))
}
