package errors

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/matzehuels/roughdraw/pkg/style"
)

// Formats lists the output formats the renderer can produce.
var Formats = []string{"svg", "png", "pdf"}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// ValidateQuality checks that q is a PNG quality in 0..100.
func ValidateQuality(q int) error {
	if q < 0 || q > 100 {
		return New(ErrCodeInvalidQuality, "quality must be between 0 and 100, got %d", q)
	}
	return nil
}

// ValidateDPI checks that dpi is within the range the rasterizer accepts.
// Very large values would allocate images of several gigabytes.
func ValidateDPI(dpi float64) error {
	const maxDPI = 1200
	if !(dpi > 0) || dpi > maxDPI {
		return New(ErrCodeInvalidDPI, "dpi must be in (0, %d], got %v", maxDPI, dpi)
	}
	return nil
}

// ValidateColor checks that s is transparent or a #RRGGBB / #RRGGBBAA hex
// color. An empty string is accepted and means no color.
func ValidateColor(s string) error {
	if s == "" || style.IsTransparent(s) {
		return nil
	}
	if _, err := style.ParseColorStrict(s); err != nil {
		return Wrap(ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return nil
}

// ValidateOutputPath checks an output file path for obvious mistakes:
//   - Path cannot be empty or a directory name
//   - No null bytes or control characters
//   - Extension, if present, must name a known format
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext != "" {
		if err := ValidateFormat(ext); err != nil {
			return Wrap(ErrCodeInvalidPath, err, "output path %q", path)
		}
	}
	return nil
}
