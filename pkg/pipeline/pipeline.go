// Package pipeline provides the rendering pipeline for roughdraw.
//
// This package implements the complete decode → build → encode pipeline used
// by the CLI and the HTTP service, so that both produce identical bytes for
// the same input and options.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode the Excalidraw JSON into a [document.Document]
//  2. Build: Resolve every element into scene items (rough passes, hachure,
//     arrowheads, text lines) using a bounded worker pool
//  3. Render: Encode the scene in each requested format (SVG, PNG, PDF)
//
// Rendered artifacts are cached by document hash and output options. When
// every requested format is cached, the build stage is skipped.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    DPI:     192,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roughdraw/pkg/cache"
	"github.com/matzehuels/roughdraw/pkg/document"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultQuality is the PNG quality when none is given.
	DefaultQuality = 75

	// DefaultDPI renders one pixel per document unit.
	DefaultDPI = 96.0

	// DefaultPrecision is the number of decimals in SVG coordinates.
	DefaultPrecision = 2
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

// ContentTypes maps formats to their MIME types.
var ContentTypes = map[string]string{
	FormatSVG: "image/svg+xml",
	FormatPNG: "image/png",
	FormatPDF: "application/pdf",
}

// FormatFromPath infers the output format from a file extension. It returns
// "" for unknown extensions.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := ContentTypes[ext]; ok {
		return ext
	}
	return ""
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats    []string `json:"formats,omitempty"`
	Background string   `json:"background,omitempty"` // "#rrggbb[aa]", "transparent" or empty
	Quality    int      `json:"quality,omitempty"`    // PNG compression, 0-100
	DPI        float64  `json:"dpi,omitempty"`        // PNG scale is DPI/96
	Legacy     bool     `json:"legacy,omitempty"`     // PNG through rsvg-convert
	Precision  *int     `json:"precision,omitempty"`  // SVG decimals
	Workers    int      `json:"workers,omitempty"`    // 0 = GOMAXPROCS
	Refresh    bool     `json:"refresh,omitempty"`    // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the decoded input.
	Document *document.Document

	// DocumentHash is the SHA-256 of the input bytes.
	DocumentHash string

	// Scene is nil when every artifact came from the cache.
	Scene *scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	ItemCount    int
	ParseTime    time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateColor(o.Background); err != nil {
		return err
	}
	if err := errors.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}
	if p := *o.Precision; p < 0 || p > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "precision must be between 0 and 8, got %d", p)
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative")
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Precision == nil {
		p := DefaultPrecision
		o.Precision = &p
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Scale returns the raster scale factor.
func (o *Options) Scale() float64 {
	if o.DPI <= 0 {
		return 1
	}
	return o.DPI / DefaultDPI
}

// ArtifactKeyOpts returns cache key options for one format. Options that do
// not affect a format are left out so that, for example, SVG output is
// shared across PNG quality settings.
func (o *Options) ArtifactKeyOpts(format, fontsDir string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Background: strings.ToLower(o.Background),
		Precision:  *o.Precision,
		FontsDir:   fontsDir,
	}
	if format == FormatPNG {
		k.Quality = o.Quality
		k.DPI = o.DPI
		k.Legacy = o.Legacy
	}
	return k
}
