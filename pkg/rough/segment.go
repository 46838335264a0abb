package rough

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/corner"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

// SegmentOptions control how a single straight edge is roughened.
type SegmentOptions struct {
	// Roughness scales every random offset.
	Roughness float64
	// Bowing scales the perpendicular bulge of the edge.
	Bowing float64
	// MaxOffset is the largest endpoint and control-point displacement
	// before roughness and length gain are applied.
	MaxOffset float64
	// PreserveVertices pins both endpoints exactly.
	PreserveVertices bool
	// Overlay halves every offset. Overlay passes never pin vertices.
	Overlay bool
}

// LengthGain damps jitter on long edges: 1 below 200 units, a linear taper
// down to 0.4 at 500 units, and 0.4 beyond.
func LengthGain(length float64) float64 {
	switch {
	case length < 200:
		return 1
	case length > 500:
		return 0.4
	default:
		return -0.0016668*length + 1.233334
	}
}

// Segment draws the straight edge a-b as a single wobbly cubic. The curve
// bows perpendicular to the edge and its control points sit roughly one and
// two fifths of the way along it. Each call advances r by eleven draws, or
// seven when vertices are preserved.
func Segment(a, b geom.Point, r *rng.LCG, o SegmentOptions) geom.Path {
	lengthSq := (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
	length := math.Sqrt(lengthSq)
	gain := LengthGain(length)

	offset := o.MaxOffset
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}
	half := offset / 2
	if o.Overlay {
		offset = half
	}
	k := o.Roughness * gain
	jitter := func(m float64) float64 { return r.Range(-m, m) * k }

	diverge := 0.2 + r.Float64()*0.2

	midX := o.Bowing * o.MaxOffset * (b.Y - a.Y) / 200
	midY := o.Bowing * o.MaxOffset * (a.X - b.X) / 200
	midX = jitter(midX)
	midY = jitter(midY)

	preserve := o.PreserveVertices && !o.Overlay
	start, end := a, b
	if !preserve {
		start = geom.Pt(a.X+jitter(offset), a.Y+jitter(offset))
		end = geom.Pt(b.X+jitter(offset), b.Y+jitter(offset))
	}

	c1 := geom.Pt(
		midX+a.X+(b.X-a.X)*diverge+jitter(offset),
		midY+a.Y+(b.Y-a.Y)*diverge+jitter(offset),
	)
	c2 := geom.Pt(
		midX+a.X+2*(b.X-a.X)*diverge+jitter(offset),
		midY+a.Y+2*(b.Y-a.Y)*diverge+jitter(offset),
	)

	var p geom.Path
	p.MoveTo(start)
	p.CubeTo(c1, c2, end)
	return p
}

// Ring draws every edge of a closed point ring with one shared generator,
// including the closing edge from the last point back to the first. The
// result is a sequence of open subpaths, one per edge.
func Ring(points []geom.Point, r *rng.LCG, o SegmentOptions) geom.Path {
	n := len(points)
	p := make(geom.Path, 0, 2*n)
	for i := range points {
		p = append(p, Segment(points[i], points[(i+1)%n], r, o)...)
	}
	return p
}

// Rectangle returns the passes for a rectangle outline with optional rounded
// corners. Each pass draws the ring of corner points (or the sampled rounded
// outline) edge by edge with [Segment]. The first pass may pin vertices when
// roughness is low; later passes are overlays.
func Rectangle(x, y, w, h, radius, roughness float64, seed int32) []Pass {
	if w <= 0 || h <= 0 || !finite(x, y, w, h, radius, roughness) {
		return nil
	}
	if roughness <= 0 {
		return exact(corner.RoundedRectPath(x, y, w, h, radius))
	}

	var ring []geom.Point
	if radius > 0 {
		ring = corner.RoundedRectPoints(x, y, w, h, radius)
	} else {
		ring = []geom.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	}

	base := SegmentOptions{
		Roughness:        roughness,
		Bowing:           1,
		MaxOffset:        2 * math.Sqrt(roughness),
		PreserveVertices: roughness < 1.5,
	}
	overlay := base
	overlay.PreserveVertices = false
	overlay.Overlay = true

	passes := make([]Pass, 0, 3)

	r1 := rng.New(seed)
	passes = append(passes, Pass{Path: Ring(ring, &r1, base), Opacity: PrimaryOpacity})

	r2 := rng.New(rng.Offset(seed, 1))
	passes = append(passes, Pass{Path: Ring(ring, &r2, overlay), Opacity: SecondaryOpacity})

	if roughness > 1 {
		r3 := rng.New(rng.Offset(seed, 2))
		passes = append(passes, Pass{Path: Ring(ring, &r3, overlay), Opacity: TertiaryOpacity})
	}
	return passes
}
