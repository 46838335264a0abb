package pipeline

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/matzehuels/roughdraw/pkg/fonts"
	"github.com/matzehuels/roughdraw/pkg/observability"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
	"github.com/matzehuels/roughdraw/pkg/render/sink"
	"github.com/matzehuels/roughdraw/pkg/style"
)

// Render encodes the scene in every requested format. fontSet may be nil.
func Render(ctx context.Context, sc *scene.Scene, fontSet *fonts.Set, opts Options) (map[string][]byte, error) {
	return renderFormats(ctx, sc, fontSet, opts, opts.Formats)
}

func renderFormats(ctx context.Context, sc *scene.Scene, fontSet *fonts.Set, opts Options, formats []string) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := renderFormat(ctx, sc, fontSet, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, sc *scene.Scene, fontSet *fonts.Set, opts Options, format string) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnEncodeStart(ctx, format)
	start := time.Now()

	var data []byte
	var err error
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(sc, buildSVGOptions(fontSet, opts)...)
	case FormatPNG:
		if opts.Legacy {
			data, err = sink.RenderPNGLegacy(ctx, sc, opts.Scale(), buildSVGOptions(fontSet, opts)...)
		} else {
			data, err = sink.RenderPNG(ctx, sc, buildPNGOptions(opts)...)
		}
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, sc, sink.WithPDFSVGOptions(buildSVGOptions(fontSet, opts)...))
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}

	hooks.OnEncodeComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}

func buildSVGOptions(fontSet *fonts.Set, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithPrecision(*opts.Precision)}
	if bg, ok := background(opts.Background); ok {
		svgOpts = append(svgOpts, sink.WithBackground(bg))
	}
	if fontSet.Len() > 0 {
		svgOpts = append(svgOpts, sink.WithFonts(fontSet))
	}
	return svgOpts
}

func buildPNGOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{
		sink.WithScale(opts.Scale()),
		sink.WithQuality(opts.Quality),
		sink.WithPNGLogger(opts.Logger),
	}
	if bg, ok := background(opts.Background); ok {
		pngOpts = append(pngOpts, sink.WithPNGBackground(bg))
	}
	return pngOpts
}

// background parses the requested canvas color. ok is false when none was
// requested; "transparent" yields a zero color with ok true.
func background(s string) (color.NRGBA, bool) {
	if strings.TrimSpace(s) == "" {
		return color.NRGBA{}, false
	}
	return style.ParseColor(s), true
}
