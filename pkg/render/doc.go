// Package render encodes chart SVG into the output formats seasonviz writes.
//
// # Format Conversion
//
// Charts are always drawn as SVG first. [Encode] passes SVG through and
// converts to PNG or PDF using the external rsvg-convert tool (from librsvg):
//
//	svg := fig.SVG(chart.WithEmbeddedFonts())
//	png, err := render.Encode(ctx, svg, render.FormatPNG, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// # Subpackages
//
//   - [card]: the player summary card, drawn natively as PNG or SVG
//   - [network]: teammate networks laid out by Graphviz
//
// [card]: github.com/matzehuels/seasonviz/pkg/render/card
// [network]: github.com/matzehuels/seasonviz/pkg/render/network
package render
