package geom

import (
	"strconv"
	"strings"
)

// Op identifies a path command.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	CubeTo
	Close
)

// Command is one path instruction. MoveTo and LineTo use Pts[0]; CubeTo uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Command struct {
	Op  Op
	Pts [3]Point
}

// Path is an ordered list of absolute move/line/cubic/close commands, the
// minimal primitive set every sink understands.
type Path []Command

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) { *p = append(*p, Command{Op: MoveTo, Pts: [3]Point{pt}}) }

// LineTo appends a straight segment.
func (p *Path) LineTo(pt Point) { *p = append(*p, Command{Op: LineTo, Pts: [3]Point{pt}}) }

// CubeTo appends a cubic Bézier segment.
func (p *Path) CubeTo(c1, c2, end Point) {
	*p = append(*p, Command{Op: CubeTo, Pts: [3]Point{c1, c2, end}})
}

// QuadTo appends a quadratic segment, elevated to an equivalent cubic so that
// sinks never need quadratic support.
func (p *Path) QuadTo(ctrl, end Point) {
	c1, c2 := ElevateQuad(p.Current(), ctrl, end)
	p.CubeTo(c1, c2, end)
}

// Close ends the current subpath.
func (p *Path) Close() { *p = append(*p, Command{Op: Close}) }

// Current returns the pen position after the last command.
func (p Path) Current() Point {
	for i := len(p) - 1; i >= 0; i-- {
		switch p[i].Op {
		case MoveTo, LineTo:
			return p[i].Pts[0]
		case CubeTo:
			return p[i].Pts[2]
		case Close:
			// back to the start of this subpath
			for j := i - 1; j >= 0; j-- {
				if p[j].Op == MoveTo {
					return p[j].Pts[0]
				}
			}
			return Point{}
		}
	}
	return Point{}
}

// Closed reports whether the path ends with a Close command.
func (p Path) Closed() bool { return len(p) > 0 && p[len(p)-1].Op == Close }

// ElevateQuad returns the cubic control points equivalent to the quadratic
// curve start-ctrl-end.
func ElevateQuad(start, ctrl, end Point) (c1, c2 Point) {
	c1 = start.Add(ctrl.Sub(start).Scale(2.0 / 3.0))
	c2 = end.Add(ctrl.Sub(end).Scale(2.0 / 3.0))
	return c1, c2
}

// Format renders the path as SVG path data with coordinates rounded to prec
// decimals. A negative prec uses the shortest exact representation.
// Trailing zeros are trimmed, so whole numbers print without a fraction.
func (p Path) Format(prec int) string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			b.WriteString("M ")
			writePoint(&b, c.Pts[0], prec)
		case LineTo:
			b.WriteString("L ")
			writePoint(&b, c.Pts[0], prec)
		case CubeTo:
			b.WriteString("C ")
			writePoint(&b, c.Pts[0], prec)
			b.WriteByte(' ')
			writePoint(&b, c.Pts[1], prec)
			b.WriteByte(' ')
			writePoint(&b, c.Pts[2], prec)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// String formats the path at full precision.
func (p Path) String() string { return p.Format(-1) }

func writePoint(b *strings.Builder, pt Point, prec int) {
	b.WriteString(FormatFloat(pt.X, prec))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(pt.Y, prec))
}

// FormatFloat formats v with at most prec decimals, dropping trailing zeros
// and normalizing negative zero.
func FormatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Polyline joins points with straight segments. Fewer than two points yield
// an empty path.
func Polyline(points []Point) Path {
	if len(points) < 2 {
		return nil
	}
	p := make(Path, 0, len(points))
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	return p
}

// Polygon is a closed Polyline.
func Polygon(points []Point) Path {
	p := Polyline(points)
	if p != nil {
		p.Close()
	}
	return p
}
