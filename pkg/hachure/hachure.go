// Package hachure generates the parallel-line fill pattern used for
// non-solid fills.
//
// Lines are laid out across the rectangle's diagonal, rotated by the element
// angle plus a fixed -45° offset, and clipped to the rectangle bounds with
// [ClipLine].
package hachure

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/geom"
)

const (
	// DefaultGap is the spacing between adjacent hachure lines.
	DefaultGap = 4.0

	angleOffset = -45.0
)

// Lines returns the clipped hachure lines covering rect. angleDeg is the
// element rotation in degrees. A rectangle without area, a non-positive gap
// or non-finite input yields nil.
func Lines(rect geom.Rect, angleDeg, gap float64) []geom.Line {
	if rect.Empty() || gap <= 0 || !finite(rect.X, rect.Y, rect.W, rect.H, angleDeg, gap) {
		return nil
	}

	rad := (angleDeg + angleOffset) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	diag := math.Hypot(rect.W, rect.H)
	n := int(math.Ceil(diag / gap))

	c := rect.Center()
	along := geom.Pt(cos*diag, sin*diag)

	var lines []geom.Line
	for i := -n; i <= n; i++ {
		off := float64(i) * gap
		mid := c.Add(geom.Pt(-sin*off, cos*off))
		if l, ok := ClipLine(geom.Line{A: mid.Sub(along), B: mid.Add(along)}, rect); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// CrossHatch returns the hachure lines at angleDeg followed by a second set
// perpendicular to the first.
func CrossHatch(rect geom.Rect, angleDeg, gap float64) []geom.Line {
	first := Lines(rect, angleDeg, gap)
	if first == nil {
		return nil
	}
	return append(first, Lines(rect, angleDeg+90, gap)...)
}

// Outcodes of the Cohen–Sutherland algorithm.
const (
	inside = 0
	left   = 1
	right  = 2
	bottom = 4
	top    = 8
)

func outcode(p geom.Point, r geom.Rect) int {
	code := inside
	if p.X < r.X {
		code |= left
	} else if p.X > r.X+r.W {
		code |= right
	}
	if p.Y < r.Y {
		code |= top
	} else if p.Y > r.Y+r.H {
		code |= bottom
	}
	return code
}

// ClipLine clips l to r. ok is false when no part of the line lies within r.
func ClipLine(l geom.Line, r geom.Rect) (geom.Line, bool) {
	a, b := l.A, l.B
	ca, cb := outcode(a, r), outcode(b, r)

	// each round moves one endpoint onto a boundary, so four rounds per
	// endpoint are enough
	for range 8 {
		if ca|cb == 0 {
			return geom.Line{A: a, B: b}, true
		}
		if ca&cb != 0 {
			return geom.Line{}, false
		}

		out := ca
		if out == 0 {
			out = cb
		}

		var p geom.Point
		switch {
		case out&top != 0:
			p = geom.Pt(a.X+(b.X-a.X)*(r.Y-a.Y)/(b.Y-a.Y), r.Y)
		case out&bottom != 0:
			p = geom.Pt(a.X+(b.X-a.X)*(r.Y+r.H-a.Y)/(b.Y-a.Y), r.Y+r.H)
		case out&right != 0:
			p = geom.Pt(r.X+r.W, a.Y+(b.Y-a.Y)*(r.X+r.W-a.X)/(b.X-a.X))
		default:
			p = geom.Pt(r.X, a.Y+(b.Y-a.Y)*(r.X-a.X)/(b.X-a.X))
		}

		if out == ca {
			a, ca = p, outcode(p, r)
		} else {
			b, cb = p, outcode(p, r)
		}
	}
	return geom.Line{}, false
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
