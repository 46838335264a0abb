package scene

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/roughdraw/pkg/document"
)

// Options configures Build.
type Options struct {
	// Workers bounds the number of elements built concurrently.
	// Zero means GOMAXPROCS.
	Workers int

	Logger *log.Logger
}

// Build converts every visible element of d into draw items. Elements are
// built concurrently, each with its own seeded generator, and the results
// are concatenated in document order, so the output does not depend on the
// worker count.
func Build(ctx context.Context, d *document.Document, opts Options) (*Scene, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slots := make([][]Item, len(d.Elements))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range d.Elements {
		el := &d.Elements[i]
		if el.Deleted {
			continue
		}
		if el.Kind() == document.TypeUnknown {
			logger.Debug("skipping element", "id", el.ID, "type", el.Type)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = Element(el)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, s := range slots {
		n += len(s)
	}
	s := &Scene{ViewBox: d.ViewBox(), Items: make([]Item, 0, n)}
	for _, items := range slots {
		s.Items = append(s.Items, items...)
	}
	logger.Debug("scene built", "elements", len(d.Elements), "items", n, "workers", workers)
	return s, nil
}
