package chart

import "math"

type legendEntry struct {
	label string
	color string
	line  bool
}

const (
	legendFont   = 13.0
	legendRow    = 22.0
	legendSwatch = 16.0
	legendPad    = 8.0
)

func legendWidth(entries []legendEntry) float64 {
	var widest float64
	st := TextStyle{Size: legendFont}
	for _, e := range entries {
		widest = math.Max(widest, TextWidth(e.label, st))
	}
	return legendPad*3 + legendSwatch + widest
}

func drawLegend(c *Canvas, pos LegendPos, plot Rect, entries []legendEntry) {
	w := legendWidth(entries)
	h := legendPad*2 + legendRow*float64(len(entries))

	var box Rect
	switch pos {
	case LegendUpperLeft:
		box = Rect{X: plot.X + legendPad, Y: plot.Y + legendPad, W: w, H: h}
	case LegendOutsideRight:
		box = Rect{X: plot.Right() + 16, Y: plot.Y + (plot.H-h)/2, W: w, H: h}
	default:
		box = Rect{X: plot.Right() - w - legendPad, Y: plot.Y + legendPad, W: w, H: h}
	}

	c.Rect(box, c.Theme().RowColors[0])
	for i, e := range entries {
		cy := box.Y + legendPad + legendRow*(float64(i)+0.5)
		sx := box.X + legendPad
		if e.line {
			c.Line(sx, cy, sx+legendSwatch, cy, e.color, 3)
		} else {
			c.Rect(Rect{X: sx, Y: cy - legendSwatch/2 + 2, W: legendSwatch, H: legendSwatch - 4}, e.color)
		}
		c.Text(sx+legendSwatch+legendPad, cy, e.label, TextStyle{Size: legendFont, Anchor: AnchorStart, VAlign: VAlignMiddle})
	}
}
