package rough

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/roughdraw/pkg/corner"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/rng"
)

var triangle = []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 80}}

func passStrings(passes []Pass) []string {
	out := make([]string, len(passes))
	for i, p := range passes {
		out[i] = p.Path.String()
	}
	return out
}

func opacities(passes []Pass) []float64 {
	out := make([]float64, len(passes))
	for i, p := range passes {
		out[i] = p.Opacity
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeterminism(t *testing.T) {
	gens := map[string]func(seed int32, roughness float64) []Pass{
		"polygon": func(seed int32, r float64) []Pass { return Polygon(triangle, r, seed) },
		"ellipse": func(seed int32, r float64) []Pass { return Ellipse(geom.Pt(50, 40), 50, 40, r, seed) },
		"rect":    func(seed int32, r float64) []Pass { return Rectangle(10, 10, 120, 80, 0, r, seed) },
		"rounded": func(seed int32, r float64) []Pass { return Rectangle(10, 10, 120, 80, 20, r, seed) },
		"shaft": func(seed int32, r float64) []Pass {
			return Shaft([]geom.Point{{X: 0, Y: 0}, {X: 60, Y: 30}, {X: 120, Y: 0}}, r, 2, seed, ShaftCurved)
		},
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			for _, roughness := range []float64{0, 0.5, 1, 2, 3.5} {
				for _, seed := range []int32{0, 1, -7, 42, math.MaxInt32} {
					a := passStrings(gen(seed, roughness))
					b := passStrings(gen(seed, roughness))
					if !equalStrings(a, b) {
						t.Fatalf("seed %d roughness %v: output differs between calls", seed, roughness)
					}
				}
			}
		})
	}
}

func TestSeedChangesOutput(t *testing.T) {
	a := passStrings(Rectangle(0, 0, 100, 50, 0, 1, 1))
	b := passStrings(Rectangle(0, 0, 100, 50, 0, 1, 2))
	if equalStrings(a, b) {
		t.Error("different seeds should produce different outlines")
	}
}

func TestPassSchedule(t *testing.T) {
	tests := []struct {
		name      string
		passes    []Pass
		wantCount int
	}{
		{"polygon r0", Polygon(triangle, 0, 1), 1},
		{"polygon r1", Polygon(triangle, 1, 1), 2},
		{"polygon r2", Polygon(triangle, 2, 1), 3},
		{"ellipse r0", Ellipse(geom.Pt(0, 0), 10, 20, 0, 1), 1},
		{"ellipse r1", Ellipse(geom.Pt(0, 0), 10, 20, 1, 1), 2},
		{"ellipse r2", Ellipse(geom.Pt(0, 0), 10, 20, 2, 1), 3},
		{"rect r0", Rectangle(0, 0, 10, 20, 0, 0, 1), 1},
		{"rect r1", Rectangle(0, 0, 10, 20, 0, 1, 1), 2},
		{"rect r2", Rectangle(0, 0, 10, 20, 4, 2, 1), 3},
		{"shaft r0", Shaft([]geom.Point{{X: 0, Y: 0}, {X: 9, Y: 9}}, 0, 1, 1, ShaftCurved), 1},
		{"shaft r1", Shaft([]geom.Point{{X: 0, Y: 0}, {X: 9, Y: 9}}, 1, 1, 1, ShaftCurved), 2},
		{"shaft r2", Shaft([]geom.Point{{X: 0, Y: 0}, {X: 9, Y: 9}}, 2, 1, 1, ShaftElbow), 3},
	}
	want := []float64{PrimaryOpacity, SecondaryOpacity, TertiaryOpacity}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.passes) != tt.wantCount {
				t.Fatalf("got %d passes, want %d", len(tt.passes), tt.wantCount)
			}
			got := opacities(tt.passes)
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("pass %d opacity = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestRoughnessZeroIsExact(t *testing.T) {
	t.Run("rectangle", func(t *testing.T) {
		got := Rectangle(0, 0, 100, 100, 25, 0, 42)
		want := corner.RoundedRectPath(0, 0, 100, 100, 25).String()
		if len(got) != 1 || got[0].Path.String() != want {
			t.Errorf("Rectangle(r=0) = %v, want %s", passStrings(got), want)
		}
		if !strings.HasPrefix(got[0].Path.Format(2), "M 25 0") {
			t.Errorf("rounded rectangle should start at M 25 0, got %s", got[0].Path.Format(2))
		}
	})
	t.Run("polygon", func(t *testing.T) {
		got := Polygon(triangle, 0, 42)
		if want := "M 0 0 L 100 0 L 50 80 Z"; len(got) != 1 || got[0].Path.Format(2) != want {
			t.Errorf("Polygon(r=0) = %v, want %s", passStrings(got), want)
		}
	})
	t.Run("ellipse", func(t *testing.T) {
		got := Ellipse(geom.Pt(50, 50), 50, 25, 0, 42)
		if len(got) != 1 {
			t.Fatalf("got %d passes", len(got))
		}
		p := got[0].Path
		extremes := []geom.Point{{X: 100, Y: 50}, {X: 50, Y: 75}, {X: 0, Y: 50}, {X: 50, Y: 25}}
		if p[0].Pts[0] != extremes[0] {
			t.Errorf("ellipse starts at %v", p[0].Pts[0])
		}
		for i, e := range extremes[1:] {
			if got := p[i+1].Pts[2]; got != e {
				t.Errorf("arc %d ends at %v, want %v", i, got, e)
			}
		}
	})
	t.Run("shaft", func(t *testing.T) {
		got := Shaft([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, 0, 1, 42, ShaftCurved)
		if len(got) != 1 || got[0].Path.Format(2) != "M 0 0 L 100 0" {
			t.Errorf("Shaft(r=0) = %v", passStrings(got))
		}
	})
}

func TestDegenerateInput(t *testing.T) {
	if got := Polygon(nil, 1, 1); got != nil {
		t.Errorf("Polygon(nil) = %v, want nil", got)
	}
	if got := Shaft([]geom.Point{{X: 1, Y: 1}}, 1, 1, 1, ShaftCurved); got != nil {
		t.Errorf("single-point shaft = %v, want nil", got)
	}

	ellipses := []struct {
		name   string
		rx, ry float64
	}{
		{"zero", 0, 0},
		{"zero rx", 0, 25},
		{"zero ry", 25, 0},
		{"negative rx", -3, 25},
		{"infinite", math.Inf(1), 5},
	}
	for _, tt := range ellipses {
		for _, r := range []float64{0, 1} {
			if got := Ellipse(geom.Pt(0, 0), tt.rx, tt.ry, r, 42); got != nil {
				t.Errorf("%s ellipse (roughness %v) = %d passes, want nil", tt.name, r, len(got))
			}
		}
	}

	rects := []struct {
		name       string
		x, y, w, h float64
	}{
		{"zero", 5, 5, 0, 0},
		{"zero width", 0, 0, 0, 50},
		{"zero height", 0, 0, 50, 0},
		{"negative width", 0, 0, -10, 50},
		{"nan origin", math.NaN(), 0, 10, 10},
	}
	for _, tt := range rects {
		for _, r := range []float64{0, 1} {
			if got := Rectangle(tt.x, tt.y, tt.w, tt.h, 0, r, 42); got != nil {
				t.Errorf("%s rectangle (roughness %v) = %d passes, want nil", tt.name, r, len(got))
			}
		}
	}
}

func TestJitterPolyline(t *testing.T) {
	r := rng.New(3)
	if got := JitterPolyline([]geom.Point{{X: 4, Y: 4}}, &r, 10); len(got) != 1 || got[0] != geom.Pt(4, 4) {
		t.Errorf("single point should be unchanged, got %v", got)
	}

	r = rng.New(3)
	if got := JitterPolyline(triangle, &r, 0); !equalPoints(got, triangle) {
		t.Errorf("zero amplitude should be identity, got %v", got)
	}

	r = rng.New(3)
	got := JitterPolyline(triangle, &r, 2)
	for i := range got {
		// normal ±A and tangent ±0.3A bound the displacement
		if d := got[i].Dist(triangle[i]); d > math.Hypot(2, 0.6)+1e-9 {
			t.Errorf("point %d moved %v, more than the amplitude allows", i, d)
		}
	}
}

func equalPoints(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLengthGain(t *testing.T) {
	tests := []struct {
		length, want float64
	}{
		{0, 1},
		{199.9, 1},
		{200, -0.0016668*200 + 1.233334},
		{350, -0.0016668*350 + 1.233334},
		{500, -0.0016668*500 + 1.233334},
		{500.1, 0.4},
		{1e6, 0.4},
	}
	for _, tt := range tests {
		if got := LengthGain(tt.length); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LengthGain(%v) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(100, 0)
	opts := SegmentOptions{Roughness: 1, Bowing: 1, MaxOffset: 2}

	t.Run("preserve vertices", func(t *testing.T) {
		o := opts
		o.PreserveVertices = true
		r := rng.New(9)
		p := Segment(a, b, &r, o)
		if p[0].Pts[0] != a || p[1].Pts[2] != b {
			t.Errorf("endpoints moved: %s", p)
		}
	})

	t.Run("overlay ignores preserve", func(t *testing.T) {
		o := opts
		o.PreserveVertices = true
		o.Overlay = true
		r := rng.New(9)
		p := Segment(a, b, &r, o)
		if p[0].Pts[0] == a && p[1].Pts[2] == b {
			t.Errorf("overlay should move endpoints: %s", p)
		}
	})

	t.Run("zero roughness is straight", func(t *testing.T) {
		o := opts
		o.Roughness = 0
		r := rng.New(9)
		p := Segment(a, b, &r, o)
		for _, pt := range []geom.Point{p[0].Pts[0], p[1].Pts[0], p[1].Pts[1], p[1].Pts[2]} {
			if pt.Y != 0 {
				t.Errorf("point %v off the line", pt)
			}
		}
	})

	t.Run("shape", func(t *testing.T) {
		r := rng.New(9)
		p := Segment(a, b, &r, opts)
		if len(p) != 2 || p[0].Op != geom.MoveTo || p[1].Op != geom.CubeTo {
			t.Errorf("Segment ops = %s, want M C", p)
		}
	})
}

func TestRectangleRingEdges(t *testing.T) {
	passes := Rectangle(0, 0, 100, 50, 0, 1, 5)
	// four edges, each an M plus a C
	for i, p := range passes {
		if len(p.Path) != 8 {
			t.Errorf("pass %d has %d commands, want 8", i, len(p.Path))
		}
	}

	rounded := Rectangle(0, 0, 100, 50, 10, 1, 5)
	n := len(corner.RoundedRectPoints(0, 0, 100, 50, 10))
	if got := len(rounded[0].Path); got != 2*n {
		t.Errorf("rounded pass has %d commands, want %d", got, 2*n)
	}
}

func TestEllipseSteps(t *testing.T) {
	tests := []struct {
		rx, ry float64
		want   int
	}{
		{0, 0, 9},
		{5, 5, 9},
		{100, 100, 16},
	}
	for _, tt := range tests {
		if got := EllipseSteps(tt.rx, tt.ry); got != tt.want {
			t.Errorf("EllipseSteps(%v, %v) = %d, want %d", tt.rx, tt.ry, got, tt.want)
		}
	}
}

func TestRoughEllipseIsSpline(t *testing.T) {
	passes := Ellipse(geom.Pt(0, 0), 100, 100, 1, 11)
	for i, p := range passes {
		if p.Path[0].Op != geom.MoveTo {
			t.Errorf("pass %d does not start with a move", i)
		}
		for _, c := range p.Path[1:] {
			if c.Op != geom.CubeTo {
				t.Errorf("pass %d contains %v, want only cubic segments", i, c.Op)
				break
			}
		}
		// 16 main samples plus four overlap samples give 19 cubic segments.
		if got := len(p.Path) - 1; got != 19 {
			t.Errorf("pass %d has %d segments, want 19", i, got)
		}
	}
}
