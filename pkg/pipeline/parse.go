package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/observability"
)

// Parse decodes an Excalidraw document.
func Parse(ctx context.Context, data []byte) (*document.Document, error) {
	hooks := observability.Render()
	hooks.OnDecodeStart(ctx, len(data))
	start := time.Now()

	doc, err := document.Parse(data)
	n := 0
	if doc != nil {
		n = len(doc.Elements)
	}
	hooks.OnDecodeComplete(ctx, n, time.Since(start), err)
	return doc, err
}

// ReadInput reads a document file, mapping a missing file to FILE_NOT_FOUND.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read %s", path)
	}
	return data, nil
}
