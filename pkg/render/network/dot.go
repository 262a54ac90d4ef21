package network

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/seasonviz/pkg/theme"
)

// Link is an undirected edge weighted by the number of shared matches.
type Link struct {
	A, B    string
	Matches int
}

// Options configures network rendering.
type Options struct {
	// Title is drawn above the graph. Empty means no title.
	Title string

	// Focus is drawn with the points header colours.
	Focus string

	Theme theme.Theme
}

const (
	minPen = 1.0
	maxPen = 8.0
)

// ToDOT converts teammate links to Graphviz DOT. Edge thickness scales with
// the number of shared matches and every edge is labelled with it.
func ToDOT(links []Link, opts Options) string {
	th := opts.Theme
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", th.Background)
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q; labelloc=t; fontsize=24; fontname=\"Helvetica-Bold\"; fontcolor=%q;\n", opts.Title, th.Text)
	}
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=%q, color=%q, fontcolor=%q, fontsize=16, margin=\"0.2,0.1\"];\n",
		th.RowColors[0], th.Text, th.Text)
	fmt.Fprintf(&buf, "  edge [color=%q, fontcolor=%q, fontsize=12];\n", th.Text, th.Text)
	buf.WriteString("\n")

	if opts.Focus != "" {
		fmt.Fprintf(&buf, "  %q [fillcolor=%q, fontcolor=%q, fontsize=20];\n", opts.Focus, th.Points.Fill, th.Points.Text)
	}

	top := 0
	for _, l := range links {
		top = max(top, l.Matches)
	}

	sorted := slices.Clone(links)
	slices.SortStableFunc(sorted, func(a, b Link) int { return cmp.Compare(b.Matches, a.Matches) })
	for _, l := range sorted {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q, penwidth=%.2f];\n", l.A, l.B, strconv.Itoa(l.Matches), penWidth(l.Matches, top))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func penWidth(n, top int) float64 {
	if top <= 0 {
		return minPen
	}
	return minPen + (maxPen-minPen)*float64(n)/float64(top)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// render.Encode.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.\-]+)\s+([0-9.\-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a pixel
// sized one so the output scales like the other charts.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
