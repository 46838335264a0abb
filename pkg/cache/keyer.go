package cache

// ArtifactKeyOpts lists every option that changes rendered bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Background string  `json:"background,omitempty"`
	Quality    int     `json:"quality,omitempty"`
	DPI        float64 `json:"dpi,omitempty"`
	Legacy     bool    `json:"legacy,omitempty"`
	Precision  int     `json:"precision"`
	FontsDir   string  `json:"fonts_dir,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an output rendered from the document
	// whose [Hash] is docHash.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the document digest with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:" followed by a SHA-256 over the inputs.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer. Runners scope keys by
// release so geometry changes never serve artifacts rendered by an older
// build.
type ScopedKeyer struct {
	Inner  Keyer
	Prefix string
}

// NewScopedKeyer falls back to DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return ScopedKeyer{Inner: inner, Prefix: prefix}
}

func (k ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.Prefix + k.Inner.ArtifactKey(docHash, opts)
}
