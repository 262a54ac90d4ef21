package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/seasonviz/pkg/errors"
)

const tinySVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="#EBCFA7"/></svg>`

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{" PNG ", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"jpeg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	if FormatPNG.Ext() != ".png" {
		t.Errorf("Ext() = %q, want .png", FormatPNG.Ext())
	}
	if FormatSVG.ContentType() != "image/svg+xml" {
		t.Errorf("ContentType() = %q", FormatSVG.ContentType())
	}
	if FormatPDF.ContentType() != "application/pdf" {
		t.Errorf("ContentType() = %q", FormatPDF.ContentType())
	}
}

func TestEncodeSVGPassthrough(t *testing.T) {
	out, err := Encode(context.Background(), []byte(tinySVG), FormatSVG, 1)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if string(out) != tinySVG {
		t.Error("Encode(svg) modified the document")
	}
}

func TestEncodeRaster(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx := context.Background()

	png, err := Encode(ctx, []byte(tinySVG), FormatPNG, 2)
	if err != nil {
		t.Fatalf("Encode(png) error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("PNG output missing signature")
	}

	pdf, err := Encode(ctx, []byte(tinySVG), FormatPDF, 1)
	if err != nil {
		t.Fatalf("Encode(pdf) error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("PDF output missing header")
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(context.Background(), []byte(tinySVG), Format("gif"), 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Encode(gif) error = %v, want UNSUPPORTED", err)
	}
}
