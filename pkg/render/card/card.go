// Package card draws the fixed-size player summary card.
//
// The card is a 800x300 image on a light-brown background with the player
// name on the left and six lines of season figures on the right. It is
// produced natively as PNG with gg, or as SVG for the vector pipeline; both
// share one layout computed from the embedded bold font's metrics.
package card

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"

	"github.com/matzehuels/seasonviz/pkg/fonts"
)

const (
	Width      = 800
	Height     = 300
	Background = "#DDB06D"

	baseSize = 22.0 // size every line is measured with
)

// Stats are the season figures printed on the card.
type Stats struct {
	Player         string
	Games          int
	Wins           int
	Draws          int
	Losses         int
	Points         int
	Efficiency     string // preformatted, e.g. "63.33%"
	Participations int
	Goals          int
	Assists        int
}

// line is one piece of text placed with its top-left corner at (x, y).
type line struct {
	text  string
	x, y  float64
	size  float64
	color string
}

func width(s string, size float64) float64 { return fonts.Width(s, size, true) }

// textHeight approximates the ink height of a single line.
func textHeight(size float64) float64 { return math.Round(size * 0.75) }

func layout(s Stats) []line {
	column := float64(Width / 2)

	name := s.Player
	h := textHeight(baseSize)
	xName := (column - width(name, baseSize)) / 5
	yName := (Height - h) / 2

	x := column - 51
	y := yName - yName/1.4

	games := fmt.Sprintf("%d Games", s.Games)
	results := fmt.Sprintf("Wins: %d | Draws: %d | Losses: %d", s.Wins, s.Draws, s.Losses)
	points := fmt.Sprintf("%d Points", s.Points)
	efficiency := fmt.Sprintf("%s Efficiency", s.Efficiency)
	participations := fmt.Sprintf("%d Goal Participations", s.Participations)
	goalsAssists := fmt.Sprintf("Goals: %d | Assists: %d", s.Goals, s.Assists)

	out := []line{{text: name, x: xName, y: yName, size: 30, color: "#41210A"}}
	out = append(out, line{text: games, x: x + (column-width(games, baseSize))/2.7, y: y, size: 30, color: "#41210A"})
	y += h + 17
	out = append(out, line{text: results, x: x, y: y, size: baseSize, color: "#613A13"})
	y += h + 30
	out = append(out, line{text: points, x: x + (column-width(points, 30))/2.3, y: y, size: 30, color: "#00361e"})
	y += h + 17
	out = append(out, line{text: efficiency, x: x + (column-width(efficiency, baseSize))/2.7, y: y, size: baseSize, color: "#1a915d"})
	y += h + 30
	out = append(out, line{text: participations, x: x + (column-width(participations, baseSize))/5, y: y, size: 27, color: "#740013"})
	y += h + 17
	out = append(out, line{text: goalsAssists, x: x + (column-width(goalsAssists, baseSize))/2.7, y: y, size: baseSize, color: "#fe2713"})
	return out
}

// ascent returns the distance from the top of a line to its baseline.
func ascent(size float64) float64 {
	face, err := fonts.Face(size, true)
	if err != nil {
		return size * 0.9
	}
	defer face.Close()
	return float64(face.Metrics().Ascent) / 64
}

// PNG renders the card as a PNG image.
func PNG(s Stats) ([]byte, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetHexColor(Background)
	dc.Clear()

	for _, l := range layout(s) {
		face, err := fonts.Face(l.size, true)
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		dc.SetFontFace(face)
		dc.SetHexColor(l.color)
		dc.DrawString(l.text, l.x, l.y+ascent(l.size))
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG renders the card as an SVG document with the font embedded.
func SVG(s Stats) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(Width, Height)
	fmt.Fprintf(canvas.Writer, "<style type=\"text/css\"><![CDATA[\n%s\n]]></style>\n", fonts.FontFaceCSS())
	canvas.Rect(0, 0, Width, Height, "fill:"+Background)
	for _, l := range layout(s) {
		style := fmt.Sprintf("font-family:%s;font-weight:bold;font-size:%.0fpx;fill:%s", fonts.FallbackFontFamily, l.size, l.color)
		canvas.Text(int(math.Round(l.x)), int(math.Round(l.y+ascent(l.size))), l.text, style)
	}
	canvas.End()
	return buf.Bytes()
}
