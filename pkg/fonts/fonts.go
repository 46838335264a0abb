// Package fonts maps Excalidraw font ids to CSS families and loads font files
// for embedding into SVG output.
//
// Glyphs are never rasterized here. SVG output references families by name
// and can optionally carry the font data as base64 @font-face rules, so the
// drawing looks the same on machines without the fonts installed.
package fonts

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Families used by Excalidraw.
const (
	Excalifont     = "Excalifont"
	LiberationSans = "Liberation Sans"
	CascadiaCode   = "Cascadia Code"
)

// Family returns the CSS family for an Excalidraw fontFamily id. Id 1 is the
// normal sans font, 2 the code font, and everything else the hand-drawn
// default.
func Family(id int) string {
	switch id {
	case 1:
		return LiberationSans
	case 2:
		return CascadiaCode
	default:
		return Excalifont
	}
}

// Stack returns a font-family attribute value with generic fallbacks.
func Stack(id int) string {
	switch id {
	case 1:
		return `'Liberation Sans', Helvetica, Arial, sans-serif`
	case 2:
		return `'Cascadia Code', Menlo, Consolas, monospace`
	default:
		return `Excalifont, 'Comic Sans MS', 'Segoe Print', cursive`
	}
}

// Face is one font file.
type Face struct {
	Family string
	Format string // CSS format() hint: truetype, opentype, woff, woff2
	Data   []byte

	once sync.Once
	b64  string
}

// Base64 returns Data encoded as standard base64. The result is cached after
// first computation.
func (f *Face) Base64() string {
	f.once.Do(func() {
		f.b64 = base64.StdEncoding.EncodeToString(f.Data)
	})
	return f.b64
}

// FontFace returns the CSS @font-face rule embedding the face.
func (f *Face) FontFace() string {
	return fmt.Sprintf("@font-face { font-family: '%s'; src: url(data:%s;base64,%s) format('%s'); }",
		f.Family, mimeTypes[f.Format], f.Base64(), f.Format)
}

var formats = map[string]string{
	".ttf":   "truetype",
	".otf":   "opentype",
	".woff":  "woff",
	".woff2": "woff2",
}

var mimeTypes = map[string]string{
	"truetype": "font/ttf",
	"opentype": "font/otf",
	"woff":     "font/woff",
	"woff2":    "font/woff2",
}

// knownFiles maps lower-cased file name prefixes to the family they provide.
var knownFiles = []struct{ prefix, family string }{
	{"excalifont", Excalifont},
	{"liberationsans", LiberationSans},
	{"liberation-sans", LiberationSans},
	{"cascadiacode", CascadiaCode},
	{"cascadia-code", CascadiaCode},
}

// familyFor derives the family from a file name. Known Excalidraw fonts map
// to their canonical family; other files use their stem without style
// suffixes such as "-Regular".
func familyFor(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	lower := strings.ToLower(stem)
	for _, k := range knownFiles {
		if strings.HasPrefix(lower, k.prefix) {
			return k.family
		}
	}
	if i := strings.LastIndexByte(stem, '-'); i > 0 {
		stem = stem[:i]
	}
	return stem
}

// Set is the collection of faces loaded from a directory, keyed by family.
// Only the first file found for a family is kept.
type Set struct {
	faces map[string]*Face
}

// Load reads every font file directly inside dir. An empty dir yields an
// empty set. Files with unknown extensions are skipped.
func Load(dir string) (*Set, error) {
	s := &Set{faces: make(map[string]*Face)}
	if dir == "" {
		return s, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fonts dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format, ok := formats[strings.ToLower(filepath.Ext(e.Name()))]
		if !ok {
			continue
		}
		family := familyFor(e.Name())
		if _, dup := s.faces[family]; dup {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", e.Name(), err)
		}
		s.faces[family] = &Face{Family: family, Format: format, Data: data}
	}
	return s, nil
}

// Len returns the number of loaded families.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.faces)
}

// Lookup returns the face for family.
func (s *Set) Lookup(family string) (*Face, bool) {
	if s == nil {
		return nil, false
	}
	f, ok := s.faces[family]
	return f, ok
}

// Faces returns the faces for the requested families, sorted by family name.
// Families without a loaded face are skipped.
func (s *Set) Faces(families ...string) []*Face {
	var out []*Face
	seen := make(map[string]bool)
	for _, fam := range families {
		if seen[fam] {
			continue
		}
		seen[fam] = true
		if f, ok := s.Lookup(fam); ok {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Family < out[j].Family })
	return out
}
