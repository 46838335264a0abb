package sink

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
	"github.com/matzehuels/roughdraw/pkg/rough"
)

// MaxPixels bounds the size of a rasterized image.
const MaxPixels = 1 << 27

// DefaultQuality maps to the default zlib compression level.
const DefaultQuality = 75

// miterLimit matches the SVG default.
const miterLimit = 4

// PNGOption configures native PNG rendering.
type PNGOption func(*rasterRenderer)

type rasterRenderer struct {
	scale      float64
	quality    int
	background *color.NRGBA
	logger     *log.Logger

	img    *image.RGBA
	minX   float64
	minY   float64
	filler *vector.Rasterizer
	dasher *rasterx.Dasher
}

// WithScale sets the number of pixels per document unit. Non-positive values
// are ignored.
func WithScale(s float64) PNGOption {
	return func(r *rasterRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithQuality picks the PNG compression level: up to 25 is fastest, up to 75
// the default and anything above the best compression.
func WithQuality(q int) PNGOption { return func(r *rasterRenderer) { r.quality = q } }

// WithPNGBackground fills the image with c. Without it the image is white;
// a fully transparent c leaves it transparent.
func WithPNGBackground(c color.NRGBA) PNGOption {
	return func(r *rasterRenderer) { r.background = &c }
}

// WithPNGLogger sets the logger used for skipped items.
func WithPNGLogger(l *log.Logger) PNGOption {
	return func(r *rasterRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// RenderPNG rasterizes the scene and encodes it as PNG. Text items are
// skipped.
func RenderPNG(ctx context.Context, s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := newRasterRenderer(opts)
	img, err := r.render(ctx, s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: compressionLevel(r.quality)}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderImage rasterizes the scene without encoding it.
func RenderImage(ctx context.Context, s *scene.Scene, opts ...PNGOption) (*image.RGBA, error) {
	return newRasterRenderer(opts).render(ctx, s)
}

func newRasterRenderer(opts []PNGOption) *rasterRenderer {
	r := &rasterRenderer{
		scale:   1,
		quality: DefaultQuality,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func compressionLevel(quality int) png.CompressionLevel {
	switch {
	case quality <= 25:
		return png.BestSpeed
	case quality <= 75:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// pixelSize returns the image dimensions for vb at scale. The checks run on
// floats so huge or non-finite view boxes fail instead of wrapping.
func pixelSize(vb document.ViewBox, scale float64) (w, h int, err error) {
	fw := math.Max(1, math.Ceil(vb.Width*scale))
	fh := math.Max(1, math.Ceil(vb.Height*scale))
	if !(fw <= MaxPixels && fh <= MaxPixels && fw*fh <= MaxPixels) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"view box %gx%g at scale %g exceeds %d pixels", vb.Width, vb.Height, scale, MaxPixels)
	}
	return int(fw), int(fh), nil
}

func (r *rasterRenderer) render(ctx context.Context, s *scene.Scene) (*image.RGBA, error) {
	vb := s.ViewBox
	w, h, err := pixelSize(vb, r.scale)
	if err != nil {
		return nil, err
	}

	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.minX, r.minY = vb.MinX, vb.MinY
	r.filler = vector.NewRasterizer(w, h)
	r.dasher = rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, r.img, r.img.Bounds()))

	bg := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if r.background != nil {
		bg = *r.background
	}
	if bg.A > 0 {
		draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	skipped := 0
	for _, it := range s.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := it.(scene.Text); ok {
			skipped++
			continue
		}
		r.renderItem(it)
	}
	if skipped > 0 {
		r.logger.Debug("text is not rasterized", "items", skipped)
	}
	return r.img, nil
}

func (r *rasterRenderer) renderItem(it scene.Item) {
	a := scene.AttrsOf(it)
	var p geom.Path
	switch it := it.(type) {
	case scene.Rect:
		p = geom.Polygon([]geom.Point{
			geom.Pt(it.X, it.Y), geom.Pt(it.X+it.W, it.Y),
			geom.Pt(it.X+it.W, it.Y+it.H), geom.Pt(it.X, it.Y+it.H),
		})
	case scene.Ellipse:
		p = rough.ExactEllipse(it.Center, it.RX, it.RY)
	case scene.Circle:
		p = rough.ExactEllipse(it.Center, it.R, it.R)
	case scene.Polygon:
		p = geom.Polygon(it.Points)
	case scene.Path:
		p = it.Path
	case scene.Line:
		p = geom.Polyline([]geom.Point{it.A, it.B})
	default:
		return
	}
	if len(p) == 0 {
		return
	}

	if a.Paint.HasFill() {
		r.fill(p, a)
	}
	if a.Paint.HasStroke() {
		r.stroke(p, a)
	}
}

// pixel maps a document point into image space.
func (r *rasterRenderer) pixel(rot scene.Rotation, p geom.Point) (float64, float64) {
	p = rot.Apply(p)
	return (p.X - r.minX) * r.scale, (p.Y - r.minY) * r.scale
}

func (r *rasterRenderer) fill(p geom.Path, a scene.Attrs) {
	z := r.filler
	z.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	z.DrawOp = draw.Over

	open := false
	for _, c := range p {
		switch c.Op {
		case geom.MoveTo:
			if open {
				z.ClosePath()
			}
			x, y := r.pixel(a.Rotation, c.Pts[0])
			z.MoveTo(float32(x), float32(y))
			open = true
		case geom.LineTo:
			x, y := r.pixel(a.Rotation, c.Pts[0])
			z.LineTo(float32(x), float32(y))
		case geom.CubeTo:
			x1, y1 := r.pixel(a.Rotation, c.Pts[0])
			x2, y2 := r.pixel(a.Rotation, c.Pts[1])
			x3, y3 := r.pixel(a.Rotation, c.Pts[2])
			z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case geom.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(withOpacity(a.Paint.Fill, a.Paint.Opacity)), image.Point{})
}

func (r *rasterRenderer) stroke(p geom.Path, a scene.Attrs) {
	d := r.dasher
	d.Clear()

	capFn, gapFn, join := rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter
	if a.Paint.Cap == scene.CapRound {
		capFn = rasterx.RoundCap
	}
	if a.Paint.Join == scene.JoinRound {
		gapFn, join = rasterx.RoundGap, rasterx.Round
	}
	d.SetStroke(fixedScalar(a.Paint.StrokeWidth*r.scale), fixedScalar(miterLimit),
		capFn, capFn, gapFn, join, r.dashes(a.Paint.Dash), 0)
	d.SetColor(withOpacity(a.Paint.Stroke, a.Paint.Opacity))

	open := false
	for _, c := range p {
		switch c.Op {
		case geom.MoveTo:
			if open {
				d.Stop(false)
			}
			d.Start(r.fixedPoint(a.Rotation, c.Pts[0]))
			open = true
		case geom.LineTo:
			d.Line(r.fixedPoint(a.Rotation, c.Pts[0]))
		case geom.CubeTo:
			d.CubeBezier(r.fixedPoint(a.Rotation, c.Pts[0]), r.fixedPoint(a.Rotation, c.Pts[1]), r.fixedPoint(a.Rotation, c.Pts[2]))
		case geom.Close:
			d.Stop(true)
			open = false
		}
	}
	if open {
		d.Stop(false)
	}
	d.Draw()
}

// dashes scales a dash pattern to pixels. Patterns with a sub-pixel entry
// are dropped and the stroke is drawn solid.
func (r *rasterRenderer) dashes(pattern []float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	out := make([]float64, len(pattern))
	for i, v := range pattern {
		out[i] = v * r.scale
		if out[i] < 1 {
			return nil
		}
	}
	return out
}

func (r *rasterRenderer) fixedPoint(rot scene.Rotation, p geom.Point) fixed.Point26_6 {
	x, y := r.pixel(rot, p)
	return rasterx.ToFixedP(x, y)
}

func fixedScalar(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}
