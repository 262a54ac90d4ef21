package plots

import (
	"context"

	"github.com/matzehuels/seasonviz/pkg/chart"
	"github.com/matzehuels/seasonviz/pkg/render"
	"github.com/matzehuels/seasonviz/pkg/render/card"
	"github.com/matzehuels/seasonviz/pkg/render/network"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// Drawing is a built chart that can be encoded into any output format.
type Drawing interface {
	// Encode renders the chart as f. Scale only applies to PNG output.
	Encode(ctx context.Context, f render.Format, scale float64) ([]byte, error)
}

// FigureDrawing wraps a figure drawn with th.
func FigureDrawing(fig *chart.Figure, th theme.Theme) Drawing {
	return figureDrawing{fig: fig, theme: th}
}

type figureDrawing struct {
	fig   *chart.Figure
	theme theme.Theme
}

func (d figureDrawing) Encode(ctx context.Context, f render.Format, scale float64) ([]byte, error) {
	svg := d.fig.SVG(chart.WithEmbeddedFonts(), chart.WithTheme(d.theme))
	return render.Encode(ctx, svg, f, scale)
}

// CardDrawing wraps a player summary card.
func CardDrawing(s card.Stats) Drawing { return cardDrawing{stats: s} }

type cardDrawing struct{ stats card.Stats }

// Encode draws PNG natively at scale 1 and goes through SVG otherwise.
func (d cardDrawing) Encode(ctx context.Context, f render.Format, scale float64) ([]byte, error) {
	if f == render.FormatPNG && scale <= 1 {
		return card.PNG(d.stats)
	}
	return render.Encode(ctx, card.SVG(d.stats), f, scale)
}

// GraphDrawing wraps Graphviz DOT source.
func GraphDrawing(dot string) Drawing { return graphDrawing{dot: dot} }

type graphDrawing struct{ dot string }

func (d graphDrawing) Encode(ctx context.Context, f render.Format, scale float64) ([]byte, error) {
	svg, err := network.RenderSVG(ctx, d.dot)
	if err != nil {
		return nil, err
	}
	return render.Encode(ctx, svg, f, scale)
}
