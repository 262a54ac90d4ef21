package network

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/seasonviz/pkg/theme"
)

var links = []Link{
	{A: "Ana", B: "Bruno", Matches: 4},
	{A: "Ana", B: "Carla", Matches: 12},
	{A: "Ana", B: "Duda", Matches: 8},
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(links, Options{Title: "Teammates of Ana", Focus: "Ana", Theme: theme.Default()})

	for _, want := range []string{
		"graph G {",
		`"Ana" -- "Carla"`,
		`label="12"`,
		`label="Teammates of Ana"`,
		`bgcolor="#EBCFA7"`,
		`fillcolor="#41210A"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}

	// Heaviest edge first.
	if strings.Index(dot, `"Carla"`) > strings.Index(dot, `"Bruno"`) {
		t.Error("edges not ordered by shared matches")
	}
}

func TestPenWidth(t *testing.T) {
	tests := []struct {
		n, top int
		want   float64
	}{
		{12, 12, maxPen},
		{0, 12, minPen},
		{5, 0, minPen},
	}
	for _, tt := range tests {
		if got := penWidth(tt.n, tt.top); got != tt.want {
			t.Errorf("penWidth(%d, %d) = %v, want %v", tt.n, tt.top, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if same := normalizeViewBox([]byte("<svg></svg>")); string(same) != "<svg></svg>" {
		t.Error("input without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(links, Options{Focus: "Ana", Theme: theme.Default()})
	out, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "Carla") {
		t.Error("RenderSVG() output missing svg root or node label")
	}
}
