package scene

import (
	"context"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/geom"
)

func ptr(s string) *string { return &s }

func rect(roughness float64, fill, fillStyle string) document.Element {
	return document.Element{
		ID: "r", Type: "rectangle",
		X: 10, Y: 20, Width: 100, Height: 60,
		StrokeColor: "#1e1e1e", BackgroundColor: fill, FillStyle: fillStyle,
		StrokeWidth: 2, Roughness: roughness, Opacity: 100, Seed: 42,
	}
}

func arrow(end string, roughness float64) document.Element {
	return document.Element{
		ID: "a", Type: "arrow",
		X: 0, Y: 0, Width: 100, Height: 0,
		StrokeColor: "#e03131", BackgroundColor: "transparent",
		StrokeWidth: 1, Roughness: roughness, Opacity: 100, Seed: 7,
		Points:       []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		EndArrowhead: ptr(end),
	}
}

func rounded(el document.Element) document.Element {
	el.Roundness = &document.Roundness{Type: 2}
	return el
}

func noStroke(el document.Element) document.Element {
	el.StrokeColor = "transparent"
	return el
}

func kinds(items []Item) []string {
	var out []string
	for _, it := range items {
		switch it.(type) {
		case Rect:
			out = append(out, "rect")
		case Ellipse:
			out = append(out, "ellipse")
		case Polygon:
			out = append(out, "polygon")
		case Path:
			out = append(out, "path")
		case Circle:
			out = append(out, "circle")
		case Line:
			out = append(out, "line")
		case Text:
			out = append(out, "text")
		}
	}
	return out
}

func TestElementKinds(t *testing.T) {
	tests := []struct {
		name string
		el   document.Element
		want []string
	}{
		{"exact square rectangle", rect(0, "#a5d8ff", "solid"), []string{"rect"}},
		{"rough rectangle", rect(1, "#a5d8ff", "solid"), []string{"path", "path", "path"}},
		{"rough rectangle no fill", rect(1, "transparent", "solid"), []string{"path", "path"}},
		{"very rough rectangle", rect(2, "transparent", "solid"), []string{"path", "path", "path"}},
		{"hachure rectangle", rect(1, "#a5d8ff", "hachure"), []string{"path", "rect"}},
		{"cross-hatch rectangle", rect(2, "#a5d8ff", "cross-hatch"), []string{"path", "rect"}},
		{"rounded hachure rectangle", rounded(rect(1, "#a5d8ff", "hachure")), []string{"path", "path"}},
		{"hachure rectangle no stroke", noStroke(rect(1, "#a5d8ff", "hachure")), []string{"path"}},
		{"arrow cap", arrow("arrow", 1), []string{"path", "path", "line", "line", "line", "line"}},
		{"triangle cap", arrow("triangle", 1), []string{"path", "path", "polygon", "polygon"}},
		{"dot cap skips rough pass", arrow("dot", 1), []string{"path", "path", "circle"}},
		{"bar cap exact", arrow("bar", 0), []string{"path", "line"}},
		{"crowfoot one", arrow("crowfoot_one", 0), []string{"path", "line"}},
		{"crowfoot many", arrow("crowfoot_many", 0), []string{"path", "line", "line"}},
		{"crowfoot one or many", arrow("crowfoot_one_or_many", 0), []string{"path", "line", "line", "line"}},
		{"unknown cap", arrow("harpoon", 0), []string{"path"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Element(&tt.el))
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("items mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestRoughRectanglePaint(t *testing.T) {
	el := rect(1, "#a5d8ff", "solid")
	el.Opacity = 50
	items := Element(&el)

	fill := AttrsOf(items[0]).Paint
	if !fill.HasFill() || fill.HasStroke() {
		t.Errorf("first item should be fill only, got %+v", fill)
	}
	if fill.Fill != (color.NRGBA{R: 0xa5, G: 0xd8, B: 0xff, A: 0xff}) {
		t.Errorf("fill = %v", fill.Fill)
	}

	wantOpacity := []float64{0.5, 0.5, 0.5 * 0.85}
	for i, it := range items {
		if got := AttrsOf(it).Paint.Opacity; math.Abs(got-wantOpacity[i]) > 1e-12 {
			t.Errorf("item %d opacity = %v, want %v", i, got, wantOpacity[i])
		}
	}
	stroke := AttrsOf(items[1]).Paint
	if stroke.HasFill() || stroke.StrokeWidth != 2 || stroke.Cap != CapRound {
		t.Errorf("stroke pass paint = %+v", stroke)
	}
}

func TestHachureUsesBackground(t *testing.T) {
	el := rect(0, "#ffc9c9", "cross-hatch")
	items := Element(&el)
	h, ok := items[0].(Path)
	if !ok {
		t.Fatalf("first item = %T, want Path", items[0])
	}
	if h.Paint.Stroke != (color.NRGBA{R: 0xff, G: 0xc9, B: 0xc9, A: 0xff}) || h.Paint.StrokeWidth != 1 || h.Paint.HasFill() {
		t.Errorf("hachure paint = %+v", h.Paint)
	}
	for _, c := range h.Path {
		for _, p := range c.Pts[:1] {
			if p.X < 10-1e-9 || p.X > 110+1e-9 || p.Y < 20-1e-9 || p.Y > 80+1e-9 {
				t.Fatalf("hachure point %v escapes the rectangle", p)
			}
		}
	}
}

func TestHachureBorderIsExact(t *testing.T) {
	el := rect(1.5, "#ffc9c9", "hachure")
	items := Element(&el)
	if len(items) != 2 {
		t.Fatalf("got %d items, want hachure and border", len(items))
	}
	b, ok := items[1].(Rect)
	if !ok {
		t.Fatalf("border = %T, want Rect", items[1])
	}
	want := Rect{X: 10, Y: 20, W: 100, H: 60}
	if b.X != want.X || b.Y != want.Y || b.W != want.W || b.H != want.H {
		t.Errorf("border = %v,%v %vx%v, want 10,20 100x60", b.X, b.Y, b.W, b.H)
	}
	if b.Paint.HasFill() || b.Paint.StrokeWidth != 2 || b.Paint.Opacity != 1 {
		t.Errorf("border paint = %+v", b.Paint)
	}
}

func TestCapPaint(t *testing.T) {
	t.Run("rough pass opacity", func(t *testing.T) {
		el := arrow("triangle", 1)
		items := Element(&el)
		if got := AttrsOf(items[3]).Paint.Opacity; math.Abs(got-0.9) > 1e-12 {
			t.Errorf("rough cap opacity = %v, want 0.9", got)
		}
		if got := AttrsOf(items[2]).Paint.Fill; got != (color.NRGBA{R: 0xe0, G: 0x31, B: 0x31, A: 0xff}) {
			t.Errorf("triangle fill = %v, want stroke color", got)
		}
	})

	t.Run("outline fills white", func(t *testing.T) {
		el := arrow("circle_outline", 0)
		items := Element(&el)
		c := items[1].(Circle)
		if c.Paint.Fill != White {
			t.Errorf("fill = %v, want white", c.Paint.Fill)
		}
		if c.Center != geom.Pt(100, 0) {
			t.Errorf("center = %v", c.Center)
		}
	})

	t.Run("dotted caps use the tighter pattern", func(t *testing.T) {
		el := arrow("bar", 0)
		el.StrokeStyle = "dotted"
		el.StrokeWidth = 3
		items := Element(&el)
		if d := cmp.Diff([]float64{1.5, 9}, AttrsOf(items[0]).Paint.Dash); d != "" {
			t.Errorf("shaft dash mismatch (-want +got):\n%s", d)
		}
		if d := cmp.Diff([]float64{1.5, 8}, AttrsOf(items[1]).Paint.Dash); d != "" {
			t.Errorf("cap dash mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("dashed caps are solid", func(t *testing.T) {
		el := arrow("bar", 0)
		el.StrokeStyle = "dashed"
		items := Element(&el)
		if AttrsOf(items[1]).Paint.Dash != nil {
			t.Error("cap should not be dashed")
		}
	})
}

func TestStartArrowhead(t *testing.T) {
	el := arrow("bar", 0)
	el.StartArrowType = ptr("bar")
	items := Element(&el)
	if d := cmp.Diff([]string{"path", "line", "line"}, kinds(items)); d != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", d)
	}
	start := items[2].(Line)
	if math.Abs(start.A.X) > 1e-9 || math.Abs(start.B.X) > 1e-9 {
		t.Errorf("start bar = %v-%v, want at x=0", start.A, start.B)
	}
}

func TestNothingToDraw(t *testing.T) {
	noStroke := arrow("arrow", 1)
	noStroke.StrokeColor = "transparent"

	deleted := rect(1, "#ffffff", "solid")
	deleted.Deleted = true

	invisible := rect(0, "transparent", "solid")
	invisible.StrokeWidth = 0

	noPoints := arrow("arrow", 1)
	noPoints.Points = nil

	tests := map[string]document.Element{
		"no stroke":  noStroke,
		"deleted":    deleted,
		"invisible":  invisible,
		"no points":  noPoints,
		"unknown":    {Type: "freedraw", StrokeColor: "#000000", StrokeWidth: 1, Opacity: 100},
		"empty text": {Type: "text", StrokeColor: "#000000", Opacity: 100},
	}
	for name, el := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Element(&el); got != nil {
				t.Errorf("Element() = %v, want nil", kinds(got))
			}
		})
	}
}

func TestText(t *testing.T) {
	el := document.Element{
		Type: "text", X: 10, Y: 100, Width: 80, Height: 50,
		StrokeColor: "#1971c2", Opacity: 100,
		Text: "one\r\ntwo", FontSize: 20, FontFamily: 2,
		TextAlign: "center", LineHeight: 1.5,
	}
	items := Element(&el)
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	txt := items[0].(Text)
	want := []TextLine{{Y: 115, Text: "one"}, {Y: 145, Text: "two"}}
	if d := cmp.Diff(want, txt.Lines, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", d)
	}
	if txt.X != 50 || txt.Anchor != "middle" || txt.FontID != 2 || txt.FontSize != 20 {
		t.Errorf("text = %+v", txt)
	}
	if txt.Paint.Fill != (color.NRGBA{R: 0x19, G: 0x71, B: 0xc2, A: 0xff}) {
		t.Errorf("text color = %v", txt.Paint.Fill)
	}
}

func TestRotation(t *testing.T) {
	el := rect(0, "transparent", "solid")
	el.Angle = math.Pi / 2
	items := Element(&el)
	r := AttrsOf(items[0]).Rotation
	if math.Abs(r.Angle-90) > 1e-9 || r.Center != geom.Pt(60, 50) {
		t.Errorf("rotation = %+v", r)
	}

	got := Rotation{Angle: 90}.Apply(geom.Pt(10, 0))
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Errorf("Apply() = %v, want (0,10)", got)
	}
	if p := (Rotation{}).Apply(geom.Pt(3, 4)); p != geom.Pt(3, 4) {
		t.Errorf("zero rotation moved the point to %v", p)
	}
}

func testDocument() *document.Document {
	d := &document.Document{Type: "excalidraw"}
	for i := range 40 {
		var el document.Element
		switch i % 4 {
		case 0:
			el = rect(1.5, "#a5d8ff", "hachure")
		case 1:
			el = arrow("triangle", 2)
		case 2:
			el = document.Element{Type: "ellipse", Width: 80, Height: 40, StrokeColor: "#000000", StrokeWidth: 1, Roughness: 2, Opacity: 100}
		default:
			el = document.Element{Type: "text", Text: "label", StrokeColor: "#000000", Opacity: 100}
		}
		el.Seed = int32(i * 7919)
		el.X += float64(i * 10)
		d.Elements = append(d.Elements, el)
	}
	return d
}

func TestBuildIsOrderedAndDeterministic(t *testing.T) {
	d := testDocument()
	serial, err := Build(context.Background(), d, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	parallel, err := Build(context.Background(), d, Options{Workers: 8})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d := cmp.Diff(serial, parallel); d != "" {
		t.Errorf("worker count changed the scene (-serial +parallel):\n%s", d)
	}

	var want []Item
	for i := range d.Elements {
		want = append(want, Element(&d.Elements[i])...)
	}
	if d := cmp.Diff(want, serial.Items); d != "" {
		t.Errorf("scene is not in document order (-want +got):\n%s", d)
	}
	if serial.ViewBox != d.ViewBox() {
		t.Errorf("ViewBox = %+v, want %+v", serial.ViewBox, d.ViewBox())
	}
	if got := serial.FontIDs(); len(got) != 1 || got[0] != 0 {
		t.Errorf("FontIDs() = %v, want [0]", got)
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, testDocument(), Options{}); err == nil {
		t.Error("Build with canceled context should fail")
	}
}
