// Package geom holds the value types shared by the geometry engine: points,
// lines, rectangles, cubic segments and path command lists.
//
// Everything here is a plain value. Functions return fresh slices and never
// retain caller memory, so results can be handed across goroutines freely.
package geom

import "math"

// Point is an (x, y) pair. Whether it is element-relative or canvas-absolute
// is decided by the function consuming it.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Len() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64  { return p.Sub(q).Len() }

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Translate offsets every point by d and returns a new slice.
func Translate(points []Point, d Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(d)
	}
	return out
}

// Line is a straight segment from A to B.
type Line struct {
	A, B Point
}

// Len returns the segment length.
func (l Line) Len() float64 { return l.A.Dist(l.B) }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle midpoint.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside or on the border of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
