package sink

import (
	"context"

	"github.com/matzehuels/roughdraw/pkg/render"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s *scene.Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(s, r.svgOpts...)
	return render.ToPDF(ctx, svg)
}

// RenderPNGLegacy renders the scene as PNG by converting its SVG with
// rsvg-convert. Unlike [RenderPNG] it draws text.
func RenderPNGLegacy(ctx context.Context, s *scene.Scene, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	svg := RenderSVG(s, opts...)
	return render.ToPNG(ctx, svg, scale)
}
