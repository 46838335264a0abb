package arrowhead

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/roughdraw/pkg/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

var allKinds = []Kind{
	KindArrow, KindBar, KindDot, KindCircle, KindCircleOutline, KindTriangle,
	KindTriangleOutline, KindDiamond, KindDiamondOutline, KindCrowfootOne,
	KindCrowfootMany, KindCrowfootOneOrMany,
}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		if got := ParseKind(k.String()); got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got := ParseKind("harpoon"); got != KindUnknown {
		t.Errorf("ParseKind(harpoon) = %v, want KindUnknown", got)
	}
}

func TestComputeDegenerateShaft(t *testing.T) {
	p := geom.Pt(12.5, -3)
	for _, k := range append(allKinds, KindUnknown) {
		if g := Compute(p, p, k, 2, 10); g != nil {
			t.Errorf("Compute(tail == tip, %v) = %v, want nil", k, g)
		}
	}
}

func TestComputeUnknownKind(t *testing.T) {
	if g := Compute(geom.Pt(0, 0), geom.Pt(10, 0), KindUnknown, 1, 10); g != nil {
		t.Errorf("Compute(unknown) = %v, want nil", g)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		strokeWidth float64
		segLen      float64
		want        float64
	}{
		{"triangle default", KindTriangle, 1, 100, 15},
		{"arrow", KindArrow, 1, 100, 25},
		{"arrow wide stroke", KindArrow, 3, 100, 40},
		{"arrow short shaft", KindArrow, 1, 20, 10},
		{"diamond", KindDiamond, 1, 100, 12},
		{"diamond short shaft", KindDiamondOutline, 1, 20, 5},
		{"crowfoot", KindCrowfootMany, 1, 100, 20},
		{"dot", KindDot, 1, 100, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.kind, tt.strokeWidth, tt.segLen); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleOnStraightArrow(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	tail, tip, segLen, ok := Direction(points, AtEnd, true)
	if !ok {
		t.Fatal("Direction failed")
	}
	if tip != geom.Pt(100, 0) || segLen != 100 {
		t.Fatalf("Direction = tip %v, segLen %v", tip, segLen)
	}

	g := Compute(tail, tip, KindTriangle, 1, segLen)
	c, isChevron := g.(Chevron)
	if !isChevron {
		t.Fatalf("Compute(triangle) = %T, want Chevron", g)
	}
	if n := len(c.Points()); n != 3 {
		t.Errorf("got %d points, want 3", n)
	}
	if c.Tip != geom.Pt(100, 0) {
		t.Errorf("tip = %v, want (100,0)", c.Tip)
	}

	// flanks hang off the base point (85,0) along the shaft normal turned
	// by ∓25°, so both sit on the +y side
	s25, c25 := math.Sin(25*math.Pi/180), math.Cos(25*math.Pi/180)
	diff(t, geom.Pt(85-15*s25, 15*c25), c.Left)
	diff(t, geom.Pt(85+15*s25, 15*c25), c.Right)
	diff(t, geom.Pt(78.66, 13.59), geom.Pt(round2(c.Left.X), round2(c.Left.Y)))
	for _, f := range []geom.Point{c.Left, c.Right} {
		if d := f.Dist(geom.Pt(85, 0)); math.Abs(d-15) > 1e-9 {
			t.Errorf("flank %v is %v from the base, want 15", f, d)
		}
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func TestTriangleOutlineMatchesTriangle(t *testing.T) {
	tail, tip := geom.Pt(10, 10), geom.Pt(40, 50)
	diff(t, Compute(tail, tip, KindTriangle, 2, 50), Compute(tail, tip, KindTriangleOutline, 2, 50))
}

func TestArrow(t *testing.T) {
	g := Compute(geom.Pt(0, 0), geom.Pt(100, 0), KindArrow, 1, 100)
	c := g.(Chevron)
	s20, c20 := math.Sin(20*math.Pi/180), math.Cos(20*math.Pi/180)
	diff(t, Chevron{
		Tip:   geom.Pt(100, 0),
		Left:  geom.Pt(100-25*c20, 25*s20),
		Right: geom.Pt(100-25*c20, -25*s20),
	}, c)
}

func TestBarIsPerpendicularAtTip(t *testing.T) {
	g := Compute(geom.Pt(0, 0), geom.Pt(100, 0), KindBar, 1, 100)
	b, ok := g.(Bar)
	if !ok {
		t.Fatalf("Compute(bar) = %T", g)
	}
	diff(t, Bar{A: geom.Pt(100, 15), B: geom.Pt(100, -15)}, b)

	// a vertical shaft gets a horizontal bar
	b = Compute(geom.Pt(0, 0), geom.Pt(0, 100), KindBar, 1, 100).(Bar)
	diff(t, Bar{A: geom.Pt(-15, 100), B: geom.Pt(15, 100)}, b)
}

func TestCircle(t *testing.T) {
	tests := []struct {
		kind        Kind
		strokeWidth float64
		want        Circle
	}{
		{KindDot, 1, Circle{Center: geom.Pt(50, 50), Diameter: 14}},
		{KindCircle, 2, Circle{Center: geom.Pt(50, 50), Diameter: 19.5}},
		{KindCircleOutline, 1, Circle{Center: geom.Pt(50, 50), Diameter: 14}},
	}
	for _, tt := range tests {
		g := Compute(geom.Pt(0, 50), geom.Pt(50, 50), tt.kind, tt.strokeWidth, 50)
		diff(t, tt.want, g)
	}
}

func TestDiamond(t *testing.T) {
	s25, c25 := math.Sin(25*math.Pi/180), math.Cos(25*math.Pi/180)
	tests := []struct {
		name      string
		tail, tip geom.Point
		want      Diamond
	}{
		{
			name: "rightwards",
			tail: geom.Pt(0, 0), tip: geom.Pt(100, 0),
			want: Diamond{
				Tip:   geom.Pt(100, 0),
				Left:  geom.Pt(88-12*s25, 12*c25),
				Rear:  geom.Pt(76, 0),
				Right: geom.Pt(88+12*s25, 12*c25),
			},
		},
		{
			name: "downwards",
			tail: geom.Pt(0, 0), tip: geom.Pt(0, 100),
			want: Diamond{
				Tip:   geom.Pt(0, 100),
				Left:  geom.Pt(-12*c25, 88-12*s25),
				Rear:  geom.Pt(0, 76),
				Right: geom.Pt(-12*c25, 88+12*s25),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.tail, tt.tip, KindDiamond, 1, 100)
			d, ok := g.(Diamond)
			if !ok {
				t.Fatalf("Compute(diamond) = %T", g)
			}
			diff(t, tt.want, d)
			if n := len(d.Points()); n != 4 {
				t.Errorf("got %d points, want 4", n)
			}
		})
	}

	d := Compute(geom.Pt(0, 0), geom.Pt(100, 0), KindDiamondOutline, 1, 100).(Diamond)
	diff(t, geom.Pt(82.93, 10.88), geom.Pt(round2(d.Left.X), round2(d.Left.Y)))
}

func TestCrowfootRotatesTipAboutBase(t *testing.T) {
	tip, tail := geom.Pt(100, 0), geom.Pt(0, 0)
	for _, k := range []Kind{KindCrowfootOne, KindCrowfootMany, KindCrowfootOneOrMany} {
		t.Run(k.String(), func(t *testing.T) {
			g := Compute(tail, tip, k, 1, 100)
			c, ok := g.(Crowfoot)
			if !ok {
				t.Fatalf("Compute(%v) = %T, want Crowfoot", k, g)
			}
			diff(t, geom.Pt(80, 0), c.Base)

			// The feet are the tip swung ±25° about the base, so they stay
			// one cap length from the base and spread out near the tip.
			s25, c25 := math.Sin(25*math.Pi/180), math.Cos(25*math.Pi/180)
			diff(t, geom.Pt(80+20*c25, -20*s25), c.Left)
			diff(t, geom.Pt(80+20*c25, 20*s25), c.Right)
			if c.Left.Dist(tip) >= c.Left.Dist(c.Base) {
				t.Errorf("feet should be closer to the tip than to the base")
			}
		})
	}
}

func TestDirection(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		if _, _, _, ok := Direction([]geom.Point{{X: 1, Y: 1}}, AtEnd, false); ok {
			t.Error("single point should not yield a direction")
		}
	})

	curve := []geom.Point{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}}

	t.Run("straight end", func(t *testing.T) {
		tail, tip, segLen, _ := Direction(curve, AtEnd, false)
		diff(t, geom.Pt(50, 50), tail)
		diff(t, geom.Pt(100, 0), tip)
		diff(t, math.Hypot(50, 50), segLen)
	})

	t.Run("straight start", func(t *testing.T) {
		tail, tip, _, _ := Direction(curve, AtStart, false)
		diff(t, geom.Pt(50, 50), tail)
		diff(t, geom.Pt(0, 0), tip)
	})

	t.Run("curved end follows spline", func(t *testing.T) {
		tail, tip, segLen, _ := Direction(curve, AtEnd, true)
		segs := geom.CatmullRom(curve, geom.DefaultTension)
		diff(t, segs[1].At(0.7), tail)
		diff(t, geom.Pt(100, 0), tip)
		diff(t, math.Hypot(50, 50), segLen)
	})

	t.Run("curved start follows spline", func(t *testing.T) {
		tail, _, _, _ := Direction(curve, AtStart, true)
		segs := geom.CatmullRom(curve, geom.DefaultTension)
		diff(t, segs[0].At(0.3), tail)
	})
}

func TestRough(t *testing.T) {
	tail, tip := geom.Pt(0, 0), geom.Pt(100, 0)

	if g := Rough(tail, tip, KindTriangle, 1, 100, 0, 7, AtEnd); g != nil {
		t.Errorf("roughness 0 should skip the second pass, got %v", g)
	}
	if g := Rough(tail, tip, KindDot, 1, 100, 1, 7, AtEnd); g != nil {
		t.Errorf("dots should skip the second pass, got %v", g)
	}

	a := Rough(tail, tip, KindTriangle, 2, 100, 1, 7, AtEnd)
	b := Rough(tail, tip, KindTriangle, 2, 100, 1, 7, AtEnd)
	if !cmp.Equal(a, b) {
		t.Error("rough pass is not deterministic")
	}
	s := Rough(tail, tip, KindTriangle, 2, 100, 1, 7, AtStart)
	if cmp.Equal(a, s) {
		t.Error("start and end caps should use different seeds")
	}

	// the tip moves by at most the jitter on each axis
	j := 0.6 + 0.2*2
	c := a.(Chevron)
	if math.Abs(c.Tip.X-100) > j || math.Abs(c.Tip.Y) > j {
		t.Errorf("tip moved to %v, beyond jitter %v", c.Tip, j)
	}
}
