package style

// FillStyle is the closed set of fill patterns.
type FillStyle int

const (
	FillSolid FillStyle = iota
	FillHachure
	FillCrossHatch
	// FillUnknown is any tag the renderer does not recognize. It draws as
	// hachure.
	FillUnknown
)

// ParseFillStyle maps an Excalidraw fillStyle tag. Empty means solid.
func ParseFillStyle(s string) FillStyle {
	switch s {
	case "", "solid":
		return FillSolid
	case "hachure":
		return FillHachure
	case "cross-hatch":
		return FillCrossHatch
	default:
		return FillUnknown
	}
}

// Patterned reports whether the fill is drawn with hatching lines.
func (f FillStyle) Patterned() bool { return f != FillSolid }

func (f FillStyle) String() string {
	switch f {
	case FillSolid:
		return "solid"
	case FillHachure:
		return "hachure"
	case FillCrossHatch:
		return "cross-hatch"
	default:
		return "unknown"
	}
}

// StrokeStyle is the closed set of stroke patterns. Unknown tags are solid.
type StrokeStyle int

const (
	StrokeSolid StrokeStyle = iota
	StrokeDashed
	StrokeDotted
)

// ParseStrokeStyle maps an Excalidraw strokeStyle tag.
func ParseStrokeStyle(s string) StrokeStyle {
	switch s {
	case "dashed":
		return StrokeDashed
	case "dotted":
		return StrokeDotted
	default:
		return StrokeSolid
	}
}

func (s StrokeStyle) String() string {
	switch s {
	case StrokeDashed:
		return "dashed"
	case StrokeDotted:
		return "dotted"
	default:
		return "solid"
	}
}

// DashArray returns the dash pattern for a stroke, or nil for solid strokes.
func DashArray(s StrokeStyle, strokeWidth float64) []float64 {
	w := max(strokeWidth, 0)
	switch s {
	case StrokeDashed:
		return []float64{8, 8 + w}
	case StrokeDotted:
		return []float64{1.5, 6 + w}
	default:
		return nil
	}
}

// CapDashArray is the pattern used on arrowheads of dotted arrows. It is a
// little tighter than the shaft pattern so short caps still show dots.
func CapDashArray(strokeWidth float64) []float64 {
	return []float64{1.5, 6 + max(strokeWidth-1, 0)}
}
