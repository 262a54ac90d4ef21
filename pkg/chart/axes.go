package chart

import (
	"math"
)

// Spines selects which frame lines around the plot area are drawn.
type Spines struct {
	Left, Right, Top, Bottom bool
}

// BottomOnly is the frame most report charts use: a single baseline.
var BottomOnly = Spines{Bottom: true}

// ValueLabels annotates every bar with its value.
type ValueLabels struct {
	Style TextStyle

	// Offset is added to the bar top, in data units, before placing the label.
	Offset float64

	// Format prints the value. Nil means [FormatValue].
	Format func(float64) string

	// SkipZero omits labels for zero-height bars.
	SkipZero bool
}

// Bars is one series of vertical bars, one per category.
type Bars struct {
	Values []float64

	// Colors are applied per bar, cycling when shorter than Values.
	Colors []string

	// Width is the bar width as a fraction of one category slot (0 means 0.8).
	Width float64

	// Offset shifts every bar from its category centre, in category units.
	Offset float64

	// Bottom holds the base of each bar for stacked series.
	Bottom []float64

	Label       string
	ValueLabels *ValueLabels
}

func (b Bars) width() float64 {
	if b.Width <= 0 {
		return 0.8
	}
	return b.Width
}

func (b Bars) color(i int) string {
	if len(b.Colors) == 0 {
		return "#41210A"
	}
	return b.Colors[i%len(b.Colors)]
}

func (b Bars) base(i int) float64 {
	if i < len(b.Bottom) {
		return b.Bottom[i]
	}
	return 0
}

// Line is a series of points joined by a line, one per category.
type Line struct {
	Values []float64
	Color  string
	Width  float64
	Marker bool
	Label  string
}

// Note is free text placed in data coordinates.
type Note struct {
	X, Y  float64 // X is a category position, Y a data value
	Text  string
	Style TextStyle
}

// TickStyle controls the category labels under the x axis.
type TickStyle struct {
	Size   float64
	Bold   bool
	Rotate float64

	// Every keeps only every n-th label when categories are dense.
	Every int

	Hide bool
}

// LegendPos places the legend.
type LegendPos int

const (
	LegendNone LegendPos = iota
	LegendUpperRight
	LegendUpperLeft
	LegendOutsideRight
)

// Axes is a categorical plot holding bars, lines and notes.
type Axes struct {
	Title      string
	TitleStyle TextStyle // zero value means 20px bold

	// TitleOverflow lets the title extend past the panel instead of
	// shrinking to fit, for narrow panels between wider neighbours.
	TitleOverflow bool

	XLabel, YLabel string

	Categories []string
	XTicks     TickStyle
	ShowYTicks bool

	// YMin and YMax fix the value range. When YMax <= YMin the range is
	// derived from the data. A fixed range lower than the data is raised so
	// bars are never clipped.
	YMin, YMax float64

	Spines  Spines
	InvertX bool

	Bars  []Bars
	Lines []Line
	Notes []Note

	Legend LegendPos
}

func (a *Axes) titleStyle() TextStyle {
	st := a.TitleStyle
	if st.Size == 0 {
		st.Size = 20
		st.Bold = true
	}
	st.Anchor = AnchorMiddle
	return st
}

func (a *Axes) tickStyle() TextStyle {
	st := TextStyle{Size: a.XTicks.Size, Bold: a.XTicks.Bold, Rotate: a.XTicks.Rotate}
	if st.Size == 0 {
		st.Size = 12
	}
	if st.Rotate != 0 {
		st.Anchor = AnchorEnd
		st.VAlign = VAlignMiddle
	} else {
		st.VAlign = VAlignTop
	}
	return st
}

func (a *Axes) showTick(i int) bool {
	return a.XTicks.Every <= 1 || i%a.XTicks.Every == 0
}

func (a *Axes) tickSpace(st TextStyle) float64 {
	if a.XTicks.Hide || len(a.Categories) == 0 {
		return 8
	}
	if st.Rotate == 0 {
		return st.size()*1.4 + 10
	}
	var widest float64
	for i, cat := range a.Categories {
		if a.showTick(i) {
			widest = math.Max(widest, TextWidth(cat, st))
		}
	}
	return rotatedExtent(widest, st.size(), st.Rotate) + 12
}

// DataMax returns the highest value drawn by bars (including stacking) and
// lines.
func (a *Axes) DataMax() float64 {
	var m float64
	for _, b := range a.Bars {
		for i, v := range b.Values {
			m = math.Max(m, b.base(i)+v)
		}
	}
	for _, l := range a.Lines {
		for _, v := range l.Values {
			m = math.Max(m, v)
		}
	}
	return m
}

// YRange returns the value range the axes will draw.
func (a *Axes) YRange() (float64, float64) {
	top := a.DataMax()
	if a.YMax > a.YMin {
		y1 := a.YMax
		if top > y1 {
			y1 = top * 1.05
		}
		return a.YMin, y1
	}
	if top <= 0 {
		return 0, 1
	}
	return 0, top * 1.1
}

func (a *Axes) legendEntries() []legendEntry {
	var out []legendEntry
	for _, b := range a.Bars {
		if b.Label != "" {
			out = append(out, legendEntry{label: b.Label, color: b.color(0)})
		}
	}
	for _, l := range a.Lines {
		if l.Label != "" {
			out = append(out, legendEntry{label: l.Label, color: l.Color, line: true})
		}
	}
	return out
}

// Draw implements [Panel].
func (a *Axes) Draw(c *Canvas, area Rect) {
	th := c.Theme()
	ts := a.titleStyle()
	tick := a.tickStyle()

	top := 10.0
	if a.Title != "" {
		top = ts.size() * 2
	}
	bottom := a.tickSpace(tick)
	if a.XLabel != "" {
		bottom += 24
	}
	left := 12.0
	if a.ShowYTicks {
		left = 48
	}
	if a.YLabel != "" {
		left += 24
	}
	right := 12.0

	entries := a.legendEntries()
	if a.Legend == LegendOutsideRight && len(entries) > 0 {
		right += legendWidth(entries) + 16
	}

	plot := area.Inset(left, top, right, bottom)
	n := len(a.Categories)
	xs := scale{d0: -0.5, d1: float64(n) - 0.5, p0: plot.X, p1: plot.Right()}
	if a.InvertX {
		xs.p0, xs.p1 = xs.p1, xs.p0
	}
	y0, y1 := a.YRange()
	ys := scale{d0: y0, d1: y1, p0: plot.Bottom(), p1: plot.Y}

	if a.Title != "" {
		if !a.TitleOverflow {
			ts = FitStyle(a.Title, ts, area.W)
		}
		c.Text(plot.CenterX(), area.Y+ts.size()*1.1, a.Title, ts)
	}

	for _, b := range a.Bars {
		a.drawBars(c, b, xs, ys, y0)
	}
	for _, l := range a.Lines {
		a.drawLine(c, l, xs, ys)
	}

	a.drawSpines(c, plot, th.Text)
	a.drawTicks(c, plot, xs, ys, tick)

	for _, nt := range a.Notes {
		c.Text(xs.at(nt.X), ys.at(nt.Y), nt.Text, nt.Style)
	}

	if a.XLabel != "" {
		c.Text(plot.CenterX(), area.Bottom()-6, a.XLabel, TextStyle{Size: 13})
	}
	if a.YLabel != "" {
		c.Text(area.X+12, plot.Y+plot.H/2, a.YLabel, TextStyle{Size: 13, Rotate: 90, VAlign: VAlignMiddle})
	}

	if a.Legend != LegendNone && len(entries) > 0 {
		drawLegend(c, a.Legend, plot, entries)
	}
}

func (a *Axes) drawBars(c *Canvas, b Bars, xs, ys scale, y0 float64) {
	half := xs.length(b.width()) / 2
	for i, v := range b.Values {
		if i >= len(a.Categories) {
			break
		}
		cx := xs.at(float64(i) + b.Offset)
		base := b.base(i)
		lo, hi := base, base+v
		if hi < lo {
			lo, hi = hi, lo
		}
		lo = math.Max(lo, y0)
		if hi > lo {
			yTop, yBase := ys.at(hi), ys.at(lo)
			c.Rect(Rect{X: cx - half, Y: yTop, W: 2 * half, H: yBase - yTop}, b.color(i))
		}

		if vl := b.ValueLabels; vl != nil {
			if vl.SkipZero && v == 0 {
				continue
			}
			format := vl.Format
			if format == nil {
				format = FormatValue
			}
			st := vl.Style
			st.Anchor = AnchorMiddle
			st.VAlign = VAlignBottom
			c.Text(cx, ys.at(base+v+vl.Offset), format(v), st)
		}
	}
}

func (a *Axes) drawLine(c *Canvas, l Line, xs, ys scale) {
	width := l.Width
	if width <= 0 {
		width = 1.5
	}
	n := min(len(l.Values), len(a.Categories))
	px := make([]float64, n)
	py := make([]float64, n)
	for i := 0; i < n; i++ {
		px[i] = xs.at(float64(i))
		py[i] = ys.at(l.Values[i])
	}
	c.Polyline(px, py, l.Color, width)
	if l.Marker {
		for i := range px {
			c.Circle(px[i], py[i], width+2.5, l.Color)
		}
	}
}

func (a *Axes) drawSpines(c *Canvas, plot Rect, color string) {
	if a.Spines.Bottom {
		c.Line(plot.X, plot.Bottom(), plot.Right(), plot.Bottom(), color, 1)
	}
	if a.Spines.Top {
		c.Line(plot.X, plot.Y, plot.Right(), plot.Y, color, 1)
	}
	if a.Spines.Left {
		c.Line(plot.X, plot.Y, plot.X, plot.Bottom(), color, 1)
	}
	if a.Spines.Right {
		c.Line(plot.Right(), plot.Y, plot.Right(), plot.Bottom(), color, 1)
	}
}

func (a *Axes) drawTicks(c *Canvas, plot Rect, xs, ys scale, st TextStyle) {
	if !a.XTicks.Hide {
		for i, cat := range a.Categories {
			if !a.showTick(i) {
				continue
			}
			c.Text(xs.at(float64(i)), plot.Bottom()+8, cat, st)
		}
	}

	if !a.ShowYTicks {
		return
	}
	for _, v := range niceTicks(ys.d0, ys.d1, 5) {
		y := ys.at(v)
		c.Text(plot.X-8, y, FormatValue(v), TextStyle{Size: 11, Anchor: AnchorEnd, VAlign: VAlignMiddle})
	}
}

// niceTicks returns round tick values covering [lo, hi] with roughly n steps.
func niceTicks(lo, hi float64, n int) []float64 {
	if hi <= lo || n <= 0 {
		return nil
	}
	raw := (hi - lo) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		out = append(out, math.Round(v/step)*step)
	}
	return out
}
