package sink

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
)

func squareScene() *scene.Scene {
	return &scene.Scene{
		ViewBox: document.ViewBox{Width: 20, Height: 20},
		Items: []scene.Item{
			scene.Rect{Attrs: scene.Attrs{Paint: scene.Paint{Fill: red, Opacity: 1}}, X: 5, Y: 5, W: 10, H: 10},
		},
	}
}

func TestRenderImageFill(t *testing.T) {
	img, err := RenderImage(context.Background(), squareScene(), WithScale(2))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("bounds = %v, want 40x40", b)
	}
	if got := img.RGBAAt(20, 20); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(4, 4); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("corner = %v, want white background", got)
	}
}

func TestRenderImageBackground(t *testing.T) {
	img, err := RenderImage(context.Background(), squareScene(), WithPNGBackground(color.NRGBA{}))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestRenderImageViewBoxOffset(t *testing.T) {
	s := squareScene()
	s.ViewBox = document.ViewBox{MinX: 5, MinY: 5, Width: 10, Height: 10}
	img, err := RenderImage(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("origin = %v, want red", got)
	}
}

func TestRenderImageStroke(t *testing.T) {
	s := &scene.Scene{
		ViewBox: document.ViewBox{Width: 20, Height: 20},
		Items: []scene.Item{
			scene.Line{
				Attrs: scene.Attrs{Paint: scene.Paint{Stroke: black, StrokeWidth: 2, Opacity: 1, Cap: scene.CapRound}},
				A:     geom.Pt(0, 10), B: geom.Pt(20, 10),
			},
		},
	}
	img, err := RenderImage(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(10, 10); got.R > 10 || got.A != 0xff {
		t.Errorf("on the line = %v, want black", got)
	}
	if got := img.RGBAAt(10, 2); got.R != 0xff {
		t.Errorf("off the line = %v, want white", got)
	}
}

func TestRenderImageOpacity(t *testing.T) {
	s := squareScene()
	s.Items[0] = scene.Rect{Attrs: scene.Attrs{Paint: scene.Paint{Fill: black, Opacity: 0.5}}, X: 0, Y: 0, W: 20, H: 20}
	img, err := RenderImage(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(10, 10); got.R < 0x70 || got.R > 0x90 {
		t.Errorf("half black over white = %v, want mid gray", got)
	}
}

func TestRenderImageSkipsText(t *testing.T) {
	s := &scene.Scene{
		ViewBox: document.ViewBox{Width: 10, Height: 10},
		Items: []scene.Item{
			scene.Text{Attrs: scene.Attrs{Paint: scene.Paint{Fill: black, Opacity: 1}}, Lines: []scene.TextLine{{Y: 5, Text: "x"}}, FontSize: 20},
		},
	}
	img, err := RenderImage(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := img.RGBAAt(x, y); got.R != 0xff {
				t.Fatalf("pixel (%d,%d) = %v, want untouched background", x, y, got)
			}
		}
	}
}

func TestRenderImageTooLarge(t *testing.T) {
	tests := []struct {
		name string
		vb   document.ViewBox
	}{
		{"area", document.ViewBox{Width: 1e6, Height: 1e6}},
		{"area wraps int", document.ViewBox{Width: 1 << 32, Height: 1 << 32}},
		{"beyond int range", document.ViewBox{Width: 1e300, Height: 1e300}},
		{"one long side", document.ViewBox{Width: 1e300, Height: 1}},
		{"infinite", document.ViewBox{Width: math.Inf(1), Height: 10}},
		{"nan", document.ViewBox{Width: math.NaN(), Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := RenderImage(context.Background(), &scene.Scene{ViewBox: tt.vb})
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("RenderImage() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if img != nil {
				t.Errorf("RenderImage() returned a %v image", img.Bounds())
			}
		})
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		vb    document.ViewBox
		scale float64
		w, h  int
	}{
		{document.ViewBox{Width: 20, Height: 10}, 1, 20, 10},
		{document.ViewBox{Width: 20.2, Height: 10}, 2, 41, 20},
		{document.ViewBox{Width: 0, Height: -5}, 1, 1, 1},
		{document.ViewBox{Width: 1 << 13, Height: 1 << 14}, 1, 1 << 13, 1 << 14},
	}
	for _, tt := range tests {
		w, h, err := pixelSize(tt.vb, tt.scale)
		if err != nil || w != tt.w || h != tt.h {
			t.Errorf("pixelSize(%v, %v) = %d, %d, %v; want %d, %d", tt.vb, tt.scale, w, h, err, tt.w, tt.h)
		}
	}
}

func TestRenderImageCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderImage(ctx, squareScene()); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRenderPNG(t *testing.T) {
	for _, q := range []int{0, 50, 100} {
		data, err := RenderPNG(context.Background(), squareScene(), WithQuality(q), WithScale(3))
		if err != nil {
			t.Fatalf("quality %d: %v", q, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("quality %d: decode: %v", q, err)
		}
		if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
			t.Errorf("quality %d: bounds = %v, want 60x60", q, b)
		}
	}
}

func TestCompressionLevel(t *testing.T) {
	tests := []struct {
		quality int
		want    png.CompressionLevel
	}{
		{0, png.BestSpeed},
		{25, png.BestSpeed},
		{26, png.DefaultCompression},
		{75, png.DefaultCompression},
		{76, png.BestCompression},
		{100, png.BestCompression},
	}
	for _, tt := range tests {
		if got := compressionLevel(tt.quality); got != tt.want {
			t.Errorf("compressionLevel(%d) = %v, want %v", tt.quality, got, tt.want)
		}
	}
}

func TestDashes(t *testing.T) {
	r := &rasterRenderer{scale: 2}
	if d := cmp.Diff([]float64{3, 18}, r.dashes([]float64{1.5, 9})); d != "" {
		t.Errorf("dashes mismatch (-want +got):\n%s", d)
	}
	if got := r.dashes(nil); got != nil {
		t.Errorf("dashes(nil) = %v, want nil", got)
	}
	r.scale = 0.5
	if got := r.dashes([]float64{1.5, 9}); got != nil {
		t.Errorf("sub-pixel dash = %v, want solid", got)
	}
}
