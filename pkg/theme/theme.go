// Package theme defines the house style shared by every seasonviz chart.
//
// The palette reproduces the league's season report: warm light-brown
// backgrounds, dark-brown text, and one header colour pair per statistic
// (points, goals, assists). The active theme is set once at start-up, usually
// from configuration, and read by all renderers afterwards.
package theme

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// Header is the fill/text colour pair used for a table header row.
type Header struct {
	Fill string
	Text string
}

// Theme holds every colour and font choice a renderer needs.
type Theme struct {
	Background string // figure and axes background
	Text       string // labels, tick labels, titles

	NumericPalette []string
	ClusterPalette []string

	// LineCycle colours multi-series line charts in order.
	LineCycle []string

	Points  Header
	Goals   Header
	Assists Header

	RowColors [2]string // alternating table body rows
	Highlight string    // row marking the chosen player

	FontFamily string // CSS font-family for SVG text
}

// lineCycle is the default colour cycle of the report's plotting style,
// used for series that are not given explicit colours.
var lineCycle = []string{
	"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3",
	"#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD",
}

// Default returns the league report palette.
func Default() Theme {
	return Theme{
		Background:     "#EBCFA7",
		Text:           "#41210A",
		NumericPalette: []string{"blue", "#41210A", "#8A55A2", "#5854A3", "#2D5653"},
		ClusterPalette: []string{"blue", "#8A55A2", "#2D5653", "#41210A", "#5854A3"},
		LineCycle:      slices.Clone(lineCycle),
		Points:         Header{Fill: "#41210A", Text: "#FBB03B"},
		Goals:          Header{Fill: "#567D6B", Text: "white"},
		Assists:        Header{Fill: "#9F6923", Text: "white"},
		RowColors:      [2]string{"#DDB06D", "#EBCFA7"},
		Highlight:      "lightgreen",
		FontFamily:     "'Go', 'Arial', 'Helvetica', sans-serif",
	}
}

// RowColor returns the body fill for the i-th data row (0-based).
func (t Theme) RowColor(i int) string {
	return t.RowColors[i%2]
}

var active atomic.Pointer[Theme]

func init() {
	d := Default()
	active.Store(&d)
}

// Current returns the active theme.
func Current() Theme {
	return *active.Load()
}

// Set replaces the active theme. It is meant to be called once during
// start-up, before any chart is rendered.
func Set(t Theme) {
	active.Store(&t)
}

// Option adjusts a theme derived from [Default].
type Option func(*Theme)

// WithBackground overrides the figure background colour.
func WithBackground(c string) Option { return func(t *Theme) { t.Background = c } }

// WithText overrides the label and title colour.
func WithText(c string) Option { return func(t *Theme) { t.Text = c } }

// New builds a theme from [Default] with the given overrides applied.
// Empty override values are ignored.
func New(opts ...Option) Theme {
	t := Default()
	for _, opt := range opts {
		before := t
		opt(&t)
		if t.Background == "" {
			t.Background = before.Background
		}
		if t.Text == "" {
			t.Text = before.Text
		}
	}
	return t
}

// namedColors covers the CSS names used by the report.
var namedColors = map[string]string{
	"black":      "#000000",
	"white":      "#ffffff",
	"blue":       "#0000ff",
	"yellow":     "#ffff00",
	"lightgreen": "#90ee90",
}

// Parse converts a hex string ("#RRGGBB", "#RGB") or one of the CSS names
// used by the report into a colour.
func Parse(s string) (colorful.Color, error) {
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	return colorful.Hex(s)
}

// Valid reports whether s is a colour [Parse] understands.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
