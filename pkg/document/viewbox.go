package document

import "math"

// Padding is the margin added around the drawing on every side.
const Padding = 40.0

// Canvas size used for documents without visible elements.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// ViewBox is the canvas rectangle in document coordinates.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// ViewBox returns the padded bounding box of all visible elements. Element
// rotation is not taken into account.
func (d *Document) ViewBox() ViewBox {
	return CalculateViewBox(d.Elements)
}

// CalculateViewBox computes the view box for elements. Deleted elements are
// ignored; when nothing remains the default 800×600 canvas at the origin is
// returned.
func CalculateViewBox(elements []Element) ViewBox {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	for i := range elements {
		el := &elements[i]
		if el.Deleted {
			continue
		}
		seen = true
		minX = math.Min(minX, el.X)
		minY = math.Min(minY, el.Y)
		maxX = math.Max(maxX, el.X+el.Width)
		maxY = math.Max(maxY, el.Y+el.Height)
	}
	if !seen {
		return ViewBox{Width: DefaultWidth, Height: DefaultHeight}
	}
	return ViewBox{
		MinX:   minX - Padding,
		MinY:   minY - Padding,
		Width:  maxX - minX + 2*Padding,
		Height: maxY - minY + 2*Padding,
	}
}
