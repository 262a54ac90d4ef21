package chart

import "math"

// HBarAxes is a horizontal bar chart with categories listed top to bottom.
// Only the left spine is drawn and the value axis carries no ticks; each
// bar is labelled with its value instead.
type HBarAxes struct {
	Title      string
	TitleStyle TextStyle

	Categories []string
	Values     []float64

	// Colors are applied per bar, cycling when shorter than Values.
	Colors []string

	LabelStyle TextStyle // category labels; zero means 10px
	ValueStyle TextStyle // value labels; zero means 11px bold
}

// Draw implements [Panel].
func (h *HBarAxes) Draw(c *Canvas, area Rect) {
	th := c.Theme()

	ts := h.TitleStyle
	if ts.Size == 0 {
		ts = TextStyle{Size: 16, Bold: true}
	}
	ts.Anchor = AnchorMiddle

	ls := h.LabelStyle
	if ls.Size == 0 {
		ls.Size = 10
	}
	ls.Anchor = AnchorEnd
	ls.VAlign = VAlignMiddle

	vs := h.ValueStyle
	if vs.Size == 0 {
		vs = TextStyle{Size: 11, Bold: true}
	}
	vs.Anchor = AnchorStart
	vs.VAlign = VAlignMiddle

	var labelW, valueW, top float64
	for i, cat := range h.Categories {
		labelW = math.Max(labelW, TextWidth(cat, ls))
		if i < len(h.Values) {
			valueW = math.Max(valueW, TextWidth(FormatValue(h.Values[i]), vs))
		}
		top = math.Max(top, h.value(i))
	}
	if top <= 0 {
		top = 1
	}

	titleH := 10.0
	if h.Title != "" {
		titleH = ts.size() * 2
	}
	plot := area.Inset(labelW+12, titleH, valueW+12, 10)

	if h.Title != "" {
		ts = FitStyle(h.Title, ts, area.W)
		c.Text(area.CenterX(), area.Y+ts.size()*1.1, h.Title, ts)
	}

	n := len(h.Categories)
	ys := scale{d0: -0.5, d1: float64(n) - 0.5, p0: plot.Y, p1: plot.Bottom()}
	xs := scale{d0: 0, d1: top, p0: plot.X, p1: plot.Right()}
	half := ys.length(0.8) / 2

	for i, cat := range h.Categories {
		cy := ys.at(float64(i))
		v := h.value(i)
		color := th.Text
		if len(h.Colors) > 0 {
			color = h.Colors[i%len(h.Colors)]
		}
		c.Rect(Rect{X: plot.X, Y: cy - half, W: xs.at(v) - plot.X, H: 2 * half}, color)
		c.Text(plot.X-6, cy, cat, ls)
		if i < len(h.Values) {
			c.Text(xs.at(v)+4, cy, FormatValue(v), vs)
		}
	}
	c.Line(plot.X, plot.Y, plot.X, plot.Bottom(), th.Text, 1)
}

func (h *HBarAxes) value(i int) float64 {
	if i < len(h.Values) {
		return h.Values[i]
	}
	return 0
}
