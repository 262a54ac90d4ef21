package render

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/seasonviz/pkg/errors"
)

// Format is an output encoding for a rendered chart.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Formats lists every supported output format.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF}

// ParseFormat normalises s and checks it against [Formats].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be svg, png, or pdf)", s)
	}
	return f, nil
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

// Encode converts an SVG document into f. SVG input is returned unchanged.
func Encode(ctx context.Context, svg []byte, f Format, scale float64) ([]byte, error) {
	switch f {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return ToPNG(ctx, svg, scale)
	case FormatPDF:
		return ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}
}
