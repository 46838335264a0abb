package rough

import (
	"math"

	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

const (
	// curveStepCount is the minimum number of perimeter samples.
	curveStepCount = 9.0

	// maxEllipseSteps bounds sampling for absurdly large ellipses.
	maxEllipseSteps = 4096

	// kappa places cubic control points so four arcs approximate a circle.
	kappa = 0.5522847498
)

// Ellipse returns the passes for an ellipse outline centered at c.
//
// With roughness the perimeter is sampled, each sample is offset randomly and
// the samples are joined by a Catmull-Rom spline. A few extra samples before
// the start and past the end make the stroke overlap itself where it closes,
// the way a pen would.
func Ellipse(c geom.Point, rx, ry, roughness float64, seed int32) []Pass {
	if rx <= 0 || ry <= 0 || !finite(c.X, c.Y, rx, ry, roughness) {
		return nil
	}
	if roughness <= 0 {
		return exact(ExactEllipse(c, rx, ry))
	}

	passes := make([]Pass, 0, 3)

	r1 := rng.New(seed)
	passes = append(passes, Pass{
		Path:    geom.SplinePath(ellipsePoints(c, rx, ry, 1.0, &r1, roughness), geom.DefaultTension),
		Opacity: PrimaryOpacity,
	})

	r2 := rng.New(rng.Offset(seed, 1))
	passes = append(passes, Pass{
		Path:    geom.SplinePath(ellipsePoints(c, rx, ry, 1.5, &r2, roughness), geom.DefaultTension),
		Opacity: SecondaryOpacity,
	})

	if roughness > 1 {
		r3 := rng.New(rng.Offset(seed, 2))
		passes = append(passes, Pass{
			Path:    geom.SplinePath(ellipsePoints(c, rx, ry, 1.2, &r3, roughness*0.7), geom.DefaultTension),
			Opacity: TertiaryOpacity,
		})
	}
	return passes
}

// ExactEllipse approximates the ellipse with four cubic arcs, starting at the
// rightmost point and running clockwise in screen coordinates.
func ExactEllipse(c geom.Point, rx, ry float64) geom.Path {
	kx, ky := rx*kappa, ry*kappa
	var p geom.Path
	p.MoveTo(geom.Pt(c.X+rx, c.Y))
	p.CubeTo(geom.Pt(c.X+rx, c.Y+ky), geom.Pt(c.X+kx, c.Y+ry), geom.Pt(c.X, c.Y+ry))
	p.CubeTo(geom.Pt(c.X-kx, c.Y+ry), geom.Pt(c.X-rx, c.Y+ky), geom.Pt(c.X-rx, c.Y))
	p.CubeTo(geom.Pt(c.X-rx, c.Y-ky), geom.Pt(c.X-kx, c.Y-ry), geom.Pt(c.X, c.Y-ry))
	p.CubeTo(geom.Pt(c.X+kx, c.Y-ry), geom.Pt(c.X+rx, c.Y-ky), geom.Pt(c.X+rx, c.Y))
	p.Close()
	return p
}

// EllipseSteps returns the number of perimeter samples for radii rx, ry.
func EllipseSteps(rx, ry float64) int {
	psq := math.Sqrt(2 * math.Pi * math.Sqrt((rx*rx+ry*ry)/2))
	steps := math.Ceil(math.Max(curveStepCount, curveStepCount/math.Sqrt(200)*psq))
	return int(math.Min(steps, maxEllipseSteps))
}

func ellipsePoints(c geom.Point, rx, ry, offset float64, r *rng.LCG, roughness float64) []geom.Point {
	steps := EllipseSteps(rx, ry)
	inc := 2 * math.Pi / float64(steps)
	radOffset := r.Range(-0.5, 0.5) - math.Pi/2
	overlap := inc * 0.5

	pts := make([]geom.Point, 0, steps+5)
	at := func(scale, angle float64) {
		x := c.X + scale*rx*math.Cos(angle) + r.Range(-offset, offset)*roughness
		y := c.Y + scale*ry*math.Sin(angle) + r.Range(-offset, offset)*roughness
		pts = append(pts, geom.Pt(x, y))
	}

	at(0.9, radOffset-inc)
	end := 2*math.Pi + radOffset - 0.01
	for a := radOffset; a < end; a += inc {
		at(1, a)
	}
	at(1, radOffset+2*math.Pi+overlap*0.5)
	at(0.98, radOffset+overlap)
	at(0.9, radOffset+overlap*0.5)
	return pts
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
