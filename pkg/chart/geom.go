package chart

import "math"

// Rect is an axis-aligned rectangle in pixel coordinates, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Inset shrinks r by the given margins. Width and height never go negative.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: math.Max(0, r.W-left-right),
		H: math.Max(0, r.H-top-bottom),
	}
}

// SplitColumns divides r into len(ratios) columns separated by gap pixels.
// Column widths are proportional to ratios. Nil or all-zero ratios are
// replaced by n equal columns.
func (r Rect) SplitColumns(n int, ratios []float64, gap float64) []Rect {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	var total float64
	for i := range w {
		w[i] = 1
		if i < len(ratios) && ratios[i] > 0 {
			w[i] = ratios[i]
		}
		total += w[i]
	}

	avail := math.Max(0, r.W-gap*float64(n-1))
	out := make([]Rect, n)
	x := r.X
	for i := range out {
		cw := avail * w[i] / total
		out[i] = Rect{X: x, Y: r.Y, W: cw, H: r.H}
		x += cw + gap
	}
	return out
}

// scale maps a data interval onto a pixel interval.
type scale struct {
	d0, d1 float64
	p0, p1 float64
}

func (s scale) at(v float64) float64 {
	if s.d1 == s.d0 {
		return s.p0
	}
	return s.p0 + (v-s.d0)/(s.d1-s.d0)*(s.p1-s.p0)
}

// length converts a data span into a pixel span (always non-negative).
func (s scale) length(d float64) float64 {
	if s.d1 == s.d0 {
		return 0
	}
	return math.Abs(d / (s.d1 - s.d0) * (s.p1 - s.p0))
}

func px(v float64) int { return int(math.Round(v)) }
