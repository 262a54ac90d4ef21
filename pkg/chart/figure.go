package chart

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/seasonviz/pkg/fonts"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// Panel is one subplot of a figure.
type Panel interface {
	// Draw renders the panel inside area.
	Draw(c *Canvas, area Rect)
}

// Figure is a fixed-size canvas holding one row of panels.
type Figure struct {
	Width, Height int

	// Name is written to the SVG <title> element.
	Name string

	// Ratios sets the relative width of each panel. Nil means equal widths.
	Ratios []float64

	// Gap is the horizontal space between panels in pixels.
	Gap float64

	// Padding is the margin around all panels in pixels.
	Padding float64

	Panels []Panel
}

// NewFigure creates a figure of the given pixel size with default spacing.
func NewFigure(width, height int, panels ...Panel) *Figure {
	return &Figure{
		Width:   width,
		Height:  height,
		Gap:     40,
		Padding: 20,
		Panels:  panels,
	}
}

// WithRatios sets the panel width ratios and returns f.
func (f *Figure) WithRatios(ratios ...float64) *Figure {
	f.Ratios = ratios
	return f
}

// WithName sets the SVG title and returns f.
func (f *Figure) WithName(name string) *Figure {
	f.Name = name
	return f
}

// Option configures SVG output.
type Option func(*svgOptions)

type svgOptions struct {
	embedFonts bool
	theme      *theme.Theme
}

// WithEmbeddedFonts declares the Go fonts inside the SVG so that viewers and
// rasterisers use the same metrics the layout was computed with.
func WithEmbeddedFonts() Option {
	return func(o *svgOptions) { o.embedFonts = true }
}

// WithTheme renders with th instead of [theme.Current].
func WithTheme(th theme.Theme) Option {
	return func(o *svgOptions) { o.theme = &th }
}

// SVG renders the figure.
func (f *Figure) SVG(opts ...Option) []byte {
	var o svgOptions
	for _, opt := range opts {
		opt(&o)
	}
	th := theme.Current()
	if o.theme != nil {
		th = *o.theme
	}

	var buf bytes.Buffer
	s := svg.New(&buf)
	s.Start(f.Width, f.Height)
	c := newCanvas(s, th)

	if f.Name != "" {
		c.raw("<title>%s</title>\n", escape(f.Name))
	}
	if o.embedFonts {
		c.raw("<style type=\"text/css\"><![CDATA[\n%s\n]]></style>\n", fonts.FontFaceCSS())
	}

	c.Rect(Rect{W: float64(f.Width), H: float64(f.Height)}, th.Background)

	area := Rect{W: float64(f.Width), H: float64(f.Height)}.Inset(f.Padding, f.Padding, f.Padding, f.Padding)
	for i, r := range area.SplitColumns(len(f.Panels), f.Ratios, f.Gap) {
		if f.Panels[i] == nil {
			continue
		}
		f.Panels[i].Draw(c, r)
	}

	s.End()
	return buf.Bytes()
}
