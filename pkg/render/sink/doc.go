// Package sink writes a [scene.Scene] in the supported output formats.
//
// # SVG
//
// [RenderSVG] emits one SVG element per scene item, so a rough rectangle
// becomes a fill path followed by two or three stroke paths. Coordinates
// are written with a fixed number of decimals (see [WithPrecision]); text is
// emitted as <text> with one <tspan> per line and can carry its fonts as
// base64 @font-face rules (see [WithFonts]).
//
// # PNG
//
// [RenderPNG] rasterizes the scene natively: fills go through
// golang.org/x/image/vector and strokes, including dash patterns, through
// rasterx. Text is not rasterized. [RenderPNGLegacy] instead renders the SVG
// and converts it with rsvg-convert, which does draw text.
//
// # PDF
//
// [RenderPDF] converts the SVG with rsvg-convert.
//
// All renderers take functional options:
//
//	svg := sink.RenderSVG(sc, sink.WithPrecision(2), sink.WithBackground(bg))
//	png, err := sink.RenderPNG(ctx, sc, sink.WithScale(2), sink.WithQuality(90))
package sink
