package arrowhead

// Kind is the closed set of arrowhead styles.
type Kind int

const (
	// KindUnknown is any tag the renderer does not recognize. It draws nothing.
	KindUnknown Kind = iota
	KindArrow
	KindBar
	KindDot
	KindCircle
	KindCircleOutline
	KindTriangle
	KindTriangleOutline
	KindDiamond
	KindDiamondOutline
	KindCrowfootOne
	KindCrowfootMany
	KindCrowfootOneOrMany
)

var kindNames = map[string]Kind{
	"arrow":                KindArrow,
	"bar":                  KindBar,
	"dot":                  KindDot,
	"circle":               KindCircle,
	"circle_outline":       KindCircleOutline,
	"triangle":             KindTriangle,
	"triangle_outline":     KindTriangleOutline,
	"diamond":              KindDiamond,
	"diamond_outline":      KindDiamondOutline,
	"crowfoot_one":         KindCrowfootOne,
	"crowfoot_many":        KindCrowfootMany,
	"crowfoot_one_or_many": KindCrowfootOneOrMany,
}

// ParseKind maps an Excalidraw arrowhead tag to a Kind.
func ParseKind(s string) Kind {
	if k, ok := kindNames[s]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Outline reports whether the cap is filled with the background instead of
// the stroke color.
func (k Kind) Outline() bool {
	return k == KindCircleOutline || k == KindTriangleOutline || k == KindDiamondOutline
}

func (k Kind) isDiamond() bool  { return k == KindDiamond || k == KindDiamondOutline }
func (k Kind) isCrowfoot() bool { return k == KindCrowfootOne || k == KindCrowfootMany || k == KindCrowfootOneOrMany }

// baseSize is the cap length in document units at stroke width 1.
func (k Kind) baseSize() float64 {
	switch {
	case k == KindArrow:
		return 25
	case k.isDiamond():
		return 12
	case k.isCrowfoot():
		return 20
	default:
		return 15
	}
}

// angle is the flank angle in degrees.
func (k Kind) angle() float64 {
	switch k {
	case KindBar:
		return 90
	case KindArrow:
		return 20
	default:
		return 25
	}
}
