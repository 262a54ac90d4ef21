package plots

import (
	"github.com/matzehuels/seasonviz/pkg/chart"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// dpi converts the report's inch-based figure sizes to pixels.
const dpi = 100

// pt converts a font size in points to pixels at dpi.
func pt(v float64) float64 { return v * dpi / 72 }

// inches returns a figure of w x h inches.
func inches(w, h float64, panels ...chart.Panel) *chart.Figure {
	return chart.NewFigure(int(w*dpi), int(h*dpi), panels...)
}

func title(size float64) chart.TextStyle {
	return chart.TextStyle{Size: pt(size), Bold: true}
}

func boldLabels(size float64) *chart.ValueLabels {
	return &chart.ValueLabels{Style: chart.TextStyle{Size: pt(size), Bold: true, Color: "black"}}
}

// Bar colours of the report that are not part of the theme.
var (
	venueColors      = [3]string{"#BD812B", "#64946E", "#80511B"}
	monthGameColor   = "#BD812B"
	monthGoalColor   = "#9B735A"
	goalTypeColors   = []string{"#41210A", "#613A13", "#80511B", "#9F6923", "#BD812B"}
	goalTimeColors   = []string{"#FBB03B", "#BD812B", "#80511B"}
	scorerGradient   = [2]string{"#567D6B", "#9CBAAC"}
	assistGradient   = [2]string{"#9F6923", "#E0B172"}
	lossColor        = "#C00000"
	drawColor        = "#7F7F7F"
	winColor         = "#548235"
	efficiencyColor  = "#100A49"
	drawLabelColor   = "yellow"
	segmentTextColor = "white"
)

func current() theme.Theme { return theme.Current() }
