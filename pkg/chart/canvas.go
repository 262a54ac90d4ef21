package chart

import (
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/seasonviz/pkg/fonts"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// Anchor is the horizontal alignment of text relative to its x coordinate.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

func (a Anchor) css() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

// VAlign is the vertical alignment of text relative to its y coordinate.
type VAlign int

const (
	VAlignBaseline VAlign = iota
	VAlignMiddle          // y is the visual centre of the glyphs
	VAlignBottom          // text sits on top of y
	VAlignTop             // text hangs below y
)

// baselineShift returns the offset from the requested y to the baseline.
func (v VAlign) baselineShift(size float64) float64 {
	switch v {
	case VAlignMiddle:
		return 0.35 * size
	case VAlignBottom:
		return -0.22 * size
	case VAlignTop:
		return 0.8 * size
	default:
		return 0
	}
}

// TextStyle describes how a piece of text is drawn.
type TextStyle struct {
	Size   float64 // font size in pixels; 0 means 12
	Bold   bool
	Color  string // empty means the theme text colour
	Anchor Anchor
	VAlign VAlign
	Rotate float64 // degrees counter-clockwise, as in tick label rotation
}

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return 12
	}
	return s.Size
}

// Canvas is the drawing surface handed to panels.
type Canvas struct {
	svg   *svg.SVG
	theme theme.Theme
}

func newCanvas(s *svg.SVG, th theme.Theme) *Canvas {
	return &Canvas{svg: s, theme: th}
}

// Theme returns the theme the canvas draws with.
func (c *Canvas) Theme() theme.Theme { return c.theme }

// Rect fills r with colour fill. Bars and cells have no outline.
func (c *Canvas) Rect(r Rect, fill string) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.svg.Rect(px(r.X), px(r.Y), max(1, px(r.W)), max(1, px(r.H)), fmt.Sprintf("fill:%s;stroke:none", fill))
}

// Line draws a straight stroke.
func (c *Canvas) Line(x1, y1, x2, y2 float64, color string, width float64) {
	c.svg.Line(px(x1), px(y1), px(x2), px(y2), fmt.Sprintf("stroke:%s;stroke-width:%.2g", color, width))
}

// Polyline draws connected line segments through the given points.
func (c *Canvas) Polyline(xs, ys []float64, color string, width float64) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return
	}
	ix := make([]int, len(xs))
	iy := make([]int, len(ys))
	for i := range xs {
		ix[i], iy[i] = px(xs[i]), px(ys[i])
	}
	c.svg.Polyline(ix, iy, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2g;stroke-linejoin:round;stroke-linecap:round", color, width))
}

// Circle draws a filled marker.
func (c *Canvas) Circle(x, y, r float64, fill string) {
	c.svg.Circle(px(x), px(y), max(1, px(r)), fmt.Sprintf("fill:%s;stroke:none", fill))
}

// Text draws s at (x, y) using st.
func (c *Canvas) Text(x, y float64, s string, st TextStyle) {
	if s == "" {
		return
	}
	size := st.size()
	color := st.Color
	if color == "" {
		color = c.theme.Text
	}
	style := fmt.Sprintf("font-family:%s;font-size:%.1fpx;fill:%s;text-anchor:%s",
		c.theme.FontFamily, size, color, st.Anchor.css())
	if st.Bold {
		style += ";font-weight:bold"
	}
	dy := st.VAlign.baselineShift(size)

	if st.Rotate != 0 {
		c.svg.TranslateRotate(px(x), px(y), -st.Rotate)
		c.svg.Text(0, px(dy), s, style)
		c.svg.Gend()
		return
	}
	c.svg.Text(px(x), px(y+dy), s, style)
}

// TextWidth measures s in pixels for the given style.
func TextWidth(s string, st TextStyle) float64 {
	return fonts.Width(s, st.size(), st.Bold)
}

// FitStyle shrinks st so that s is at most width pixels wide.
func FitStyle(s string, st TextStyle, width float64) TextStyle {
	w := TextWidth(s, st)
	if width <= 0 || w <= width {
		return st
	}
	st.Size = st.size() * width / w
	return st
}

// rotatedExtent returns the vertical space taken by text of width w and
// font size size rotated by deg degrees.
func rotatedExtent(w, size, deg float64) float64 {
	rad := math.Abs(deg) * math.Pi / 180
	return w*math.Sin(rad) + size*math.Cos(rad)
}

// raw writes markup that the svgo helpers do not cover.
func (c *Canvas) raw(format string, args ...any) {
	fmt.Fprintf(c.svg.Writer, format, args...)
}

// escape makes s safe inside SVG text content.
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
