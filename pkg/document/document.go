package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/roughdraw/pkg/errors"
)

// Document is a decoded Excalidraw file.
type Document struct {
	Type     string                     `json:"type"`
	Version  int                        `json:"version"`
	Source   string                     `json:"source,omitempty"`
	Elements []Element                  `json:"elements"`
	AppState map[string]any             `json:"appState,omitempty"`
	Files    map[string]json.RawMessage `json:"files,omitempty"`
}

// Visible returns the elements that are not deleted, in document order.
func (d *Document) Visible() []Element {
	out := make([]Element, 0, len(d.Elements))
	for _, el := range d.Elements {
		if !el.Deleted {
			out = append(out, el)
		}
	}
	return out
}

// ViewBackground returns the canvas color saved with the drawing, or "" when
// the document has none.
func (d *Document) ViewBackground() string {
	s, _ := d.AppState["viewBackgroundColor"].(string)
	return s
}

// ReadJSON decodes a document from r.
//
// The input must be a JSON object with an "elements" array. A missing array
// is an error; an empty one is not. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode")
	}
	if d.Elements == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "missing \"elements\" array")
	}
	return &d, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads the document file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	d, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read %s", path)
	}
	return d, nil
}

// WriteJSON encodes d as indented JSON.
func WriteJSON(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return nil
}
