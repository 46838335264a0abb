package rough

import (
	"github.com/matzehuels/roughdraw/pkg/corner"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

// ShaftStyle selects how a line or arrow body connects its points.
type ShaftStyle int

const (
	// ShaftCurved passes a Catmull-Rom spline through the points.
	ShaftCurved ShaftStyle = iota
	// ShaftElbow draws an orthogonal polyline with rounded interior corners.
	ShaftElbow
)

// ElbowCorner is the largest corner radius of an elbow shaft, in document
// units.
const ElbowCorner = 16.0

// tertiaryShaftSeed is added to the element seed for the third shaft pass.
const tertiaryShaftSeed = 0x55555555

// ShaftPath returns the exact path through absolute points.
func ShaftPath(points []geom.Point, s ShaftStyle) geom.Path {
	if s == ShaftElbow {
		return corner.ElbowPath(points, ElbowCorner)
	}
	return geom.SplinePath(points, geom.DefaultTension)
}

// Shaft returns the passes for a line or arrow body. The first pass is always
// the exact path. With roughness the points are jittered with amplitude
// (1.2 + 0.3·strokeWidth)·roughness for a second pass, and with 0.6× that
// amplitude for a third when roughness > 1. Jittered elbow passes are drawn
// as plain polylines.
func Shaft(points []geom.Point, roughness, strokeWidth float64, seed int32, s ShaftStyle) []Pass {
	base := ShaftPath(points, s)
	if len(base) == 0 {
		return nil
	}
	passes := []Pass{{Path: base, Opacity: PrimaryOpacity}}
	if roughness <= 0 {
		return passes
	}

	jittered := func(pts []geom.Point) geom.Path {
		if s == ShaftElbow {
			return geom.Polyline(pts)
		}
		return geom.SplinePath(pts, geom.DefaultTension)
	}

	amp := (1.2 + 0.3*strokeWidth) * roughness
	r := rng.New(seed)
	passes = append(passes, Pass{
		Path:    jittered(JitterPolyline(points, &r, amp)),
		Opacity: SecondaryOpacity,
	})

	if roughness > 1 {
		r3 := rng.New(rng.Offset(seed, tertiaryShaftSeed))
		passes = append(passes, Pass{
			Path:    jittered(JitterPolyline(points, &r3, amp*0.6)),
			Opacity: TertiaryOpacity,
		})
	}
	return passes
}
