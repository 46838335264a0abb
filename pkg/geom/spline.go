package geom

// DefaultTension is the Catmull-Rom tension used for every smooth shaft.
const DefaultTension = 0.5

// CubicSegment is one Bézier piece of a spline.
type CubicSegment struct {
	P0, C1, C2, P3 Point
}

// At evaluates the segment at parameter t in [0, 1].
func (s CubicSegment) At(t float64) Point { return CubicPoint(s.P0, s.C1, s.C2, s.P3, t) }

// CatmullRom converts an ordered point list into cubic segments, one per
// consecutive pair. The virtual neighbours before the first and after the
// last point are clamped to the endpoints, so the curve never loops back.
//
// Two points produce a single straight segment whose controls coincide with
// the endpoints. Fewer than two points produce nil.
func CatmullRom(points []Point, tension float64) []CubicSegment {
	n := len(points)
	switch {
	case n < 2:
		return nil
	case n == 2:
		return []CubicSegment{{points[0], points[0], points[1], points[1]}}
	}

	segs := make([]CubicSegment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, n-1)]

		t1 := p2.Sub(p0).Scale(tension)
		t2 := p3.Sub(p1).Scale(tension)
		c1 := Point{p1.X + t1.X/3, p1.Y + t1.Y/3}
		c2 := Point{p2.X - t2.X/3, p2.Y - t2.Y/3}
		segs = append(segs, CubicSegment{p1, c1, c2, p2})
	}
	return segs
}

// CubicPoint evaluates the cubic Bernstein blend of p0, c1, c2, p3 at t.
func CubicPoint(p0, c1, c2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// SplinePath builds a smooth path through points. Lists of two or fewer points
// degrade to a polyline.
func SplinePath(points []Point, tension float64) Path {
	if len(points) <= 2 {
		return Polyline(points)
	}
	segs := CatmullRom(points, tension)
	p := make(Path, 0, len(segs)+1)
	p.MoveTo(segs[0].P0)
	for _, s := range segs {
		p.CubeTo(s.C1, s.C2, s.P3)
	}
	return p
}
