// Package render turns Excalidraw documents into images.
//
// # Overview
//
// Rendering happens in two steps. The [scene] subpackage resolves every
// element into format independent draw items: rough passes, hachure lines,
// arrowheads and text lines, each with its own paint. The [sink] subpackage
// then writes a scene as SVG, PNG or PDF.
//
//	sc, err := scene.Build(ctx, doc, scene.Options{})
//	svg := sink.RenderSVG(sc, sink.WithPrecision(2))
//	png, err := sink.RenderPNG(ctx, sc, sink.WithScale(2))
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). PDF output always goes
// through it; PNG output only does when the legacy raster path is selected.
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
package render
