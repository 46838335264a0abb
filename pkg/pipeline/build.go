package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/observability"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
)

// Build resolves a document into a scene.
func Build(ctx context.Context, doc *document.Document, opts Options) (*scene.Scene, error) {
	opts.SetRenderDefaults()

	hooks := observability.Render()
	hooks.OnBuildStart(ctx, len(doc.Elements))
	start := time.Now()

	sc, err := scene.Build(ctx, doc, scene.Options{Workers: opts.Workers, Logger: opts.Logger})
	n := 0
	if sc != nil {
		n = len(sc.Items)
	}
	hooks.OnBuildComplete(ctx, n, time.Since(start), err)
	return sc, err
}
