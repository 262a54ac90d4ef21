package chart

import (
	"math"
	"slices"

	"github.com/matzehuels/seasonviz/pkg/theme"
)

// Placement positions a table vertically inside its panel.
type Placement int

const (
	PlaceCenter Placement = iota
	PlaceTop
)

// Table draws a header row followed by body rows with alternating fills.
type Table struct {
	Title      string
	TitleStyle TextStyle // empty colour means the header fill

	Columns []string
	Rows    [][]string

	FontSize float64 // 0 means 10

	// Header colours the first row. Zero value means the theme's points header.
	Header     theme.Header
	HeaderBold bool

	// BoldColumns lists body columns drawn in bold.
	BoldColumns []int

	// Highlight lists body rows filled with the theme highlight colour.
	Highlight []int

	// RowScale is the row height as a multiple of the font size (0 means 2).
	RowScale float64

	// WidthScale stretches the computed column widths (0 means 1).
	WidthScale float64

	Placement Placement
}

const cellPad = 0.8 // horizontal padding per side, in font sizes

// Draw implements [Panel].
func (t *Table) Draw(c *Canvas, area Rect) {
	th := c.Theme()
	header := t.Header
	if header.Fill == "" {
		header = th.Points
	}

	ts := t.TitleStyle
	if ts.Size == 0 {
		ts = TextStyle{Size: 14, Bold: true}
	}
	if ts.Color == "" {
		ts.Color = header.Fill
	}
	ts.Anchor = AnchorMiddle

	size := t.FontSize
	if size <= 0 {
		size = 10
	}
	rowScale := t.RowScale
	if rowScale <= 0 {
		rowScale = 2
	}

	top := area.Y
	if t.Title != "" {
		top += ts.size() * 2
		ts = FitStyle(t.Title, ts, area.W)
		c.Text(area.CenterX(), area.Y+ts.size(), t.Title, ts)
	}
	avail := Rect{X: area.X, Y: top, W: area.W, H: area.Bottom() - top}

	widths := t.columnWidths(size)
	total := sum(widths)
	if total > avail.W && total > 0 {
		shrink := avail.W / total
		size *= shrink
		for i := range widths {
			widths[i] *= shrink
		}
		total = avail.W
	}

	nrows := len(t.Rows) + 1
	rowH := size * rowScale
	if h := rowH * float64(nrows); h > avail.H && h > 0 {
		rowH = avail.H / float64(nrows)
		size = math.Min(size, rowH/1.3)
	}
	tableH := rowH * float64(nrows)

	x0 := avail.CenterX() - total/2
	y0 := avail.Y
	if t.Placement == PlaceCenter {
		y0 = avail.Y + (avail.H-tableH)/2
	}

	t.drawRow(c, x0, y0, rowH, widths, t.Columns, header.Fill, TextStyle{
		Size: size, Bold: t.HeaderBold, Color: header.Text, VAlign: VAlignMiddle,
	}, nil)

	for i, row := range t.Rows {
		fill := th.RowColor(i)
		if slices.Contains(t.Highlight, i) {
			fill = th.Highlight
		}
		t.drawRow(c, x0, y0+rowH*float64(i+1), rowH, widths, row, fill, TextStyle{
			Size: size, VAlign: VAlignMiddle,
		}, t.BoldColumns)
	}
}

func (t *Table) drawRow(c *Canvas, x, y, h float64, widths []float64, cells []string, fill string, st TextStyle, bold []int) {
	for j, w := range widths {
		c.Rect(Rect{X: x, Y: y, W: w, H: h}, fill)
		if j < len(cells) {
			cs := st
			if slices.Contains(bold, j) {
				cs.Bold = true
			}
			c.Text(x+w/2, y+h/2, cells[j], cs)
		}
		x += w
	}
}

// columnWidths sizes each column to its widest cell.
func (t *Table) columnWidths(size float64) []float64 {
	n := len(t.Columns)
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	scale := t.WidthScale
	if scale <= 0 {
		scale = 1
	}

	widths := make([]float64, n)
	measure := func(j int, s string, bold bool) {
		w := TextWidth(s, TextStyle{Size: size, Bold: bold}) + 2*cellPad*size
		widths[j] = math.Max(widths[j], w*scale)
	}
	for j, col := range t.Columns {
		measure(j, col, true)
	}
	for _, row := range t.Rows {
		for j, cell := range row {
			measure(j, cell, slices.Contains(t.BoldColumns, j))
		}
	}
	return widths
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
