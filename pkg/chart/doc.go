// Package chart draws the building blocks of seasonviz figures as SVG.
//
// # Overview
//
// A [Figure] is a fixed-size canvas split into side-by-side panels, the way a
// one-row grid of subplots is. Each panel implements [Panel]:
//
//   - [Axes]: categorical bar and line plots with value labels, stacked and
//     grouped bars, spines, rotated tick labels and a legend
//   - [HBarAxes]: horizontal ranking bars (top scorers, top assistants)
//   - [Table]: a coloured header row over alternating body rows, with bold
//     columns and a highlighted row
//
// Panels read colours and fonts from [theme.Current] at draw time. Text is
// measured with the embedded Go fonts from [fonts], which can also be declared
// inside the SVG so that rasterisation uses the same metrics.
//
// # Usage
//
//	ax := &chart.Axes{
//	    Title:      "Distribution of Goal Types",
//	    Categories: []string{"Left", "Right", "Header"},
//	    Bars: []chart.Bars{{Values: []float64{210, 190, 40}, Colors: []string{"#41210A"}}},
//	}
//	fig := chart.NewFigure(1200, 600, ax)
//	svg := fig.SVG()
//
// The SVG can be converted to PNG or PDF with the render package.
package chart
