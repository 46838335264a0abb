// Package rough generates the multi-pass "sketched" outlines that give every
// shape its hand-drawn look.
//
// Each generator returns one to three [Pass] values: overlapping, slightly
// different renditions of the same outline drawn at decreasing opacity. A
// roughness of zero (or less) always yields exactly one exact pass.
//
// Generators are pure functions of their arguments. Every pass gets its own
// generator seeded from the element seed (seed, seed+1, seed+2), so the same
// element always renders byte-for-byte identically and elements can be built
// concurrently.
//
// # Pass schedule
//
//	pass  seed    amplitude  opacity
//	1     seed    A          1.0
//	2     seed+1  ~0.5A      0.85
//	3     seed+2  ~0.3A      0.7   (only when roughness > 1)
package rough

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

// Opacity multipliers of the three passes.
const (
	PrimaryOpacity   = 1.0
	SecondaryOpacity = 0.85
	TertiaryOpacity  = 0.7
)

// tangentShare is the tangential jitter as a fraction of the normal jitter.
const tangentShare = 0.3

// Pass is one rendition of an outline. Opacity multiplies the element
// opacity.
type Pass struct {
	Path    geom.Path
	Opacity float64
}

func exact(p geom.Path) []Pass {
	if len(p) == 0 {
		return nil
	}
	return []Pass{{Path: p, Opacity: PrimaryOpacity}}
}

// JitterPolyline displaces every point along the local normal by up to
// ±amplitude and along the local tangent by up to ±0.3·amplitude. The local
// direction is a forward difference at the first point, a backward difference
// at the last and a central difference elsewhere. Lists with fewer than two
// points are returned unchanged.
func JitterPolyline(points []geom.Point, r *rng.LCG, amplitude float64) []geom.Point {
	n := len(points)
	out := make([]geom.Point, n)
	if n < 2 {
		copy(out, points)
		return out
	}
	for i, p := range points {
		var d geom.Point
		switch i {
		case 0:
			d = points[1].Sub(p)
		case n - 1:
			d = p.Sub(points[i-1])
		default:
			d = points[i+1].Sub(points[i-1])
		}
		l := math.Max(d.Len(), 1e-6)
		tx, ty := d.X/l, d.Y/l
		px, py := -ty, tx

		perp := r.Range(-amplitude, amplitude)
		tang := r.Range(-amplitude*tangentShare, amplitude*tangentShare)
		out[i] = geom.Pt(p.X+px*perp+tx*tang, p.Y+py*perp+ty*tang)
	}
	return out
}

// Polygon returns the passes for a closed polygon outline. Vertices are
// jittered with amplitude 1.2·roughness on the first pass, half of that on
// the second and 0.3× on the third.
func Polygon(points []geom.Point, roughness float64, seed int32) []Pass {
	if roughness <= 0 || len(points) < 3 {
		return exact(geom.Polygon(points))
	}

	amp := 1.2 * roughness
	schedule := []struct {
		delta   int32
		scale   float64
		opacity float64
	}{
		{0, 1, PrimaryOpacity},
		{1, 0.5, SecondaryOpacity},
		{2, 0.3, TertiaryOpacity},
	}

	passes := make([]Pass, 0, 3)
	for _, s := range schedule {
		if s.delta == 2 && roughness <= 1 {
			break
		}
		r := rng.New(rng.Offset(seed, s.delta))
		jittered := JitterPolyline(points, &r, amp*s.scale)
		passes = append(passes, Pass{Path: geom.Polygon(jittered), Opacity: s.opacity})
	}
	return passes
}
