package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/roughdraw/pkg/fonts"
	"github.com/matzehuels/roughdraw/pkg/geom"
	"github.com/matzehuels/roughdraw/pkg/render/scene"
	"github.com/matzehuels/roughdraw/pkg/style"
)

// DefaultPrecision is the number of decimals written for coordinates.
const DefaultPrecision = 2

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	precision  int
	background *color.NRGBA
	fonts      *fonts.Set
}

// WithPrecision sets the number of decimals for coordinates. A negative value
// writes the shortest exact representation.
func WithPrecision(p int) SVGOption { return func(r *svgRenderer) { r.precision = p } }

// WithBackground fills the view box with c before any item is drawn. A fully
// transparent color draws nothing.
func WithBackground(c color.NRGBA) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithFonts embeds the faces of every family the scene's text uses.
func WithFonts(s *fonts.Set) SVGOption { return func(r *svgRenderer) { r.fonts = s } }

// RenderSVG writes the scene as a standalone SVG document.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&r)
	}

	vb := s.ViewBox
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		r.num(vb.MinX), r.num(vb.MinY), r.num(vb.Width), r.num(vb.Height), r.num(vb.Width), r.num(vb.Height))

	r.renderDefs(&buf, s)

	if bg := r.background; bg != nil && bg.A > 0 {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			r.num(vb.MinX), r.num(vb.MinY), r.num(vb.Width), r.num(vb.Height), style.Hex(*bg), geom.FormatFloat(style.Alpha(*bg), 4))
	}

	for _, it := range s.Items {
		r.renderItem(&buf, it)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) num(v float64) string { return geom.FormatFloat(v, r.precision) }

func (r *svgRenderer) renderDefs(buf *bytes.Buffer, s *scene.Scene) {
	if r.fonts.Len() == 0 {
		return
	}
	var families []string
	for _, id := range s.FontIDs() {
		families = append(families, fonts.Family(id))
	}
	faces := r.fonts.Faces(families...)
	if len(faces) == 0 {
		return
	}
	buf.WriteString("  <defs>\n    <style>\n")
	for _, f := range faces {
		fmt.Fprintf(buf, "      %s\n", f.FontFace())
	}
	buf.WriteString("    </style>\n  </defs>\n")
}

func (r *svgRenderer) renderItem(buf *bytes.Buffer, it scene.Item) {
	a := scene.AttrsOf(it)
	switch it := it.(type) {
	case scene.Rect:
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s"`, r.num(it.X), r.num(it.Y), r.num(it.W), r.num(it.H))
	case scene.Ellipse:
		fmt.Fprintf(buf, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s"`, r.num(it.Center.X), r.num(it.Center.Y), r.num(it.RX), r.num(it.RY))
	case scene.Circle:
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s"`, r.num(it.Center.X), r.num(it.Center.Y), r.num(it.R))
	case scene.Polygon:
		fmt.Fprintf(buf, `  <polygon points="%s"`, r.points(it.Points))
	case scene.Path:
		fmt.Fprintf(buf, `  <path d="%s"`, it.Path.Format(r.precision))
	case scene.Line:
		fmt.Fprintf(buf, `  <path d="%s"`, geom.Polyline([]geom.Point{it.A, it.B}).Format(r.precision))
	case scene.Text:
		r.renderText(buf, it)
		return
	default:
		return
	}
	r.paintAttrs(buf, a)
	buf.WriteString("/>\n")
}

func (r *svgRenderer) points(pts []geom.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.num(p.X))
		b.WriteByte(',')
		b.WriteString(r.num(p.Y))
	}
	return b.String()
}

func (r *svgRenderer) paintAttrs(buf *bytes.Buffer, a scene.Attrs) {
	p := a.Paint
	if p.HasFill() {
		fmt.Fprintf(buf, ` fill="%s"`, style.Hex(p.Fill))
		if p.Fill.A < 0xff {
			fmt.Fprintf(buf, ` fill-opacity="%s"`, geom.FormatFloat(style.Alpha(p.Fill), 4))
		}
	} else {
		buf.WriteString(` fill="none"`)
	}

	if p.HasStroke() {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%s"`, style.Hex(p.Stroke), r.num(p.StrokeWidth))
		if p.Stroke.A < 0xff {
			fmt.Fprintf(buf, ` stroke-opacity="%s"`, geom.FormatFloat(style.Alpha(p.Stroke), 4))
		}
		if p.Cap == scene.CapRound {
			buf.WriteString(` stroke-linecap="round"`)
		}
		if p.Join == scene.JoinRound {
			buf.WriteString(` stroke-linejoin="round"`)
		}
		if len(p.Dash) > 0 {
			fmt.Fprintf(buf, ` stroke-dasharray="%s"`, r.dash(p.Dash))
		}
	} else {
		buf.WriteString(` stroke="none"`)
	}

	fmt.Fprintf(buf, ` opacity="%s"`, geom.FormatFloat(p.Opacity, 4))
	r.transform(buf, a.Rotation)
}

func (r *svgRenderer) dash(d []float64) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = r.num(v)
	}
	return strings.Join(parts, " ")
}

func (r *svgRenderer) transform(buf *bytes.Buffer, rot scene.Rotation) {
	if rot.IsZero() {
		return
	}
	fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, r.num(rot.Angle), r.num(rot.Center.X), r.num(rot.Center.Y))
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, t scene.Text) {
	fmt.Fprintf(buf, `  <text font-size="%s" font-family="%s" fill="%s" opacity="%s" text-anchor="%s" dominant-baseline="alphabetic"`,
		r.num(t.FontSize), escapeXML(fonts.Stack(t.FontID)), style.Hex(t.Paint.Fill), geom.FormatFloat(t.Paint.Opacity, 4), t.Anchor)
	r.transform(buf, t.Rotation)
	buf.WriteString(">")
	for _, l := range t.Lines {
		fmt.Fprintf(buf, `<tspan x="%s" y="%s" style="white-space: pre;">%s</tspan>`, r.num(t.X), r.num(l.Y), escapeXML(l.Text))
	}
	buf.WriteString("</text>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
