package arrowhead

import (
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

// End selects which end of a shaft carries the cap.
type End int

const (
	AtEnd End = iota
	AtStart
)

// Spline parameters at which curved shafts are sampled for the cap
// direction.
const (
	endSample   = 0.7
	startSample = 0.3
)

// startSeedMix is xor-ed into the element seed for the start cap's rough pass.
const startSeedMix = 0xABCDEF

// Direction returns the tail and tip of the shaft segment that a cap at the
// given end should follow, together with the length of the adjacent shaft
// segment. For curved shafts with three or more points the tail is sampled
// from the end spline segment, so the cap follows the curve's tangent rather
// than the chord. ok is false when the shaft has fewer than two points.
func Direction(points []geom.Point, end End, curved bool) (tail, tip geom.Point, segmentLength float64, ok bool) {
	n := len(points)
	if n < 2 {
		return geom.Point{}, geom.Point{}, 0, false
	}

	var adjacent geom.Point
	if end == AtEnd {
		tip, adjacent = points[n-1], points[n-2]
	} else {
		tip, adjacent = points[0], points[1]
	}
	tail = adjacent
	segmentLength = tip.Dist(adjacent)

	if curved && n >= 3 {
		segs := geom.CatmullRom(points, geom.DefaultTension)
		var sample geom.Point
		if end == AtEnd {
			sample = segs[len(segs)-1].At(endSample)
		} else {
			sample = segs[0].At(startSample)
		}
		if sample != tip {
			tail = sample
		}
	}
	return tail, tip, segmentLength, true
}

// Rough returns the jittered second rendition of a cap that gives arrowheads
// the same sketched double stroke as their shafts. The whole segment is
// shifted by a random offset of up to (0.6 + 0.2·strokeWidth)·roughness and
// the stroke width is varied by ±5%. It returns nil when roughness is zero or
// the kind is KindDot. The end cap draws from the element seed and the start
// cap from the seed xor 0xABCDEF.
func Rough(tail, tip geom.Point, k Kind, strokeWidth, segmentLength, roughness float64, seed int32, end End) Geometry {
	if roughness <= 0 || k == KindDot {
		return nil
	}
	if end == AtStart {
		seed ^= startSeedMix
	}
	r := rng.New(seed)
	j := (0.6 + 0.2*strokeWidth) * roughness
	d := geom.Pt(r.Range(-j, j), r.Range(-j, j))
	width := strokeWidth * r.Range(0.95, 1.05)
	return Compute(tail.Add(d), tip.Add(d), k, width, segmentLength)
}
