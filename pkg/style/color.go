// Package style decodes the paint attributes of a diagram element: colors,
// fill and stroke kinds, dash patterns and text placement.
//
// Decoding is forgiving. Unknown tags fall back to a documented default and
// unparseable colors become opaque black, so a render never fails on style.
// [ParseColorStrict] exists for user-supplied values (CLI flags, HTTP query
// parameters) where a typo should be reported instead.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Transparent is the keyword Excalidraw uses for "no paint".
const Transparent = "transparent"

var (
	black = color.NRGBA{A: 0xff}
	none  = color.NRGBA{}
)

// IsTransparent reports whether s names no paint: empty or the transparent
// keyword in any case.
func IsTransparent(s string) bool {
	return s == "" || strings.EqualFold(s, Transparent)
}

// ParseColor decodes #RRGGBB, #RRGGBBAA or the same without the hash.
// Transparent values decode to the zero color and anything else that does not
// parse decodes to opaque black.
func ParseColor(s string) color.NRGBA {
	if IsTransparent(s) {
		return none
	}
	c, err := parseHex(s)
	if err != nil {
		return black
	}
	return c
}

// ParseColorStrict is ParseColor with errors. The transparent keyword is
// accepted; an empty string is not.
func ParseColorStrict(s string) (color.NRGBA, error) {
	if strings.EqualFold(s, Transparent) {
		return none, nil
	}
	return parseHex(s)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if n := len(hex); n != 6 && n != 8 {
		return black, fmt.Errorf("expected 6 or 8 hex digits (RRGGBB or RRGGBBAA), got %d", n)
	}

	var comp [4]uint8
	comp[3] = 0xff
	for i, name := range []string{"R", "G", "B", "A"}[:len(hex)/2] {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return black, fmt.Errorf("invalid hex digit in %s component", name)
		}
		comp[i] = uint8(v)
	}
	return color.NRGBA{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}, nil
}

// Hex formats c as #rrggbb, dropping alpha. Sinks carry alpha separately as
// an opacity attribute.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Alpha returns the alpha channel as a fraction in [0, 1].
func Alpha(c color.NRGBA) float64 { return float64(c.A) / 255 }

// HasStroke reports whether an element with this stroke color and width draws
// an outline at all.
func HasStroke(strokeColor string, strokeWidth float64) bool {
	return !IsTransparent(strokeColor) && strokeWidth > 0
}

// HasFill reports whether an element with this background color is filled.
func HasFill(backgroundColor string) bool {
	return !IsTransparent(backgroundColor)
}
