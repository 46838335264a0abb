// Package pkg provides the core libraries for roughdraw, a renderer that
// turns Excalidraw drawings into hand-drawn looking SVG, PNG and PDF files
// without a browser.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Geometry - the sketch engine that turns elements into strokes and fills
//  2. Rendering - scene assembly and output sinks
//  3. Infrastructure - pipeline orchestration, caching, configuration
//
// # Architecture
//
// The typical data flow through roughdraw:
//
//	Excalidraw JSON
//	       ↓
//	  [document] package (decode elements)
//	       ↓
//	  [render/scene] package (geometry per element, in parallel)
//	       ↓
//	  [render/sink] package (SVG, PNG, PDF)
//
// # Quick Start
//
//	doc, _ := document.Parse(data)
//	sc, _ := scene.Build(ctx, doc, scene.Options{})
//	svg := sink.RenderSVG(sc, sink.WithPrecision(2))
//
// Most callers go through [pipeline] instead, which adds validation and the
// artifact cache.
//
// # Main Packages
//
// ## Geometry
//
// [geom] - Points, segments, cubic curves, paths and affine transforms.
//
// [rng] - The seeded generator behind every jittered coordinate. Equal seeds
// give equal drawings.
//
// [rough] - Sketched outlines: doubled, jittered strokes for lines, curves,
// rectangles, ellipses and polygons.
//
// [hachure] - Hachure, cross-hatch and zigzag fills, clipped to the shape.
//
// [corner] - Rounded corners for rectangles, diamonds and elbow arrows.
//
// [arrowhead] - End caps for lines and arrows.
//
// [style] - Colors, stroke dash patterns and fill styles.
//
// [fonts] - Excalidraw font ids and embeddable font files.
//
// ## Rendering
//
// [render/scene] - Builds the draw list for a document.
//
// [render/sink] - Writes a scene as SVG, PNG (native rasterizer) or PDF.
//
// [render] - Format conversion through rsvg-convert.
//
// ## Infrastructure
//
// [pipeline] - Parse → build → render, shared by the CLI and HTTP server.
//
// [cache] - File, Redis and null artifact caches.
//
// [config] - TOML configuration file.
//
// [observability] - Hooks for logging and metrics.
//
// [errors] - Error codes shared across packages.
//
// [document]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/document
// [render/scene]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/render/scene
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/render/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/render
// [geom]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/geom
// [rng]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/rng
// [rough]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/rough
// [hachure]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/hachure
// [corner]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/corner
// [arrowhead]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/arrowhead
// [style]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/style
// [fonts]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/roughdraw/pkg/errors
package pkg
