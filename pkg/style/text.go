package style

// Text defaults.
const (
	DefaultFontSize   = 16.0
	DefaultLineHeight = 1.25
)

// TextAnchor maps textAlign to the SVG text-anchor value.
func TextAnchor(textAlign string) string {
	switch textAlign {
	case "center":
		return "middle"
	case "right":
		return "end"
	default:
		return "start"
	}
}

// TextX returns the anchor x coordinate for a text box.
func TextX(x, width float64, textAlign string) float64 {
	switch textAlign {
	case "center":
		return x + width/2
	case "right":
		return x + width
	default:
		return x
	}
}

// BaselineOffset is the distance from the top of a line box to its baseline.
func BaselineOffset(verticalAlign string, fontSize float64) float64 {
	switch verticalAlign {
	case "middle":
		return fontSize * 0.35
	case "bottom":
		return fontSize * 0.9
	default:
		return fontSize * 0.75
	}
}

// LineAdvance returns the vertical distance between consecutive text lines.
// A zero lineHeight means the default.
func LineAdvance(lineHeight, fontSize float64) float64 {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	return lineHeight * fontSize
}

// FontSize returns size or the default when unset.
func FontSize(size float64) float64 {
	if size <= 0 {
		return DefaultFontSize
	}
	return size
}
