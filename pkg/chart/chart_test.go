package chart

import (
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/seasonviz/pkg/theme"
)

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		_, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			t.Fatalf("SVG is not well-formed XML: %v", err)
		}
	}
}

func TestSplitColumns(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 320, H: 100}

	cols := r.SplitColumns(3, []float64{1, 0.5, 1}, 20)
	if len(cols) != 3 {
		t.Fatalf("len = %d, want 3", len(cols))
	}
	if got := cols[0].W; math.Abs(got-112) > 1e-9 {
		t.Errorf("cols[0].W = %v, want 112", got)
	}
	if got := cols[1].W; math.Abs(got-56) > 1e-9 {
		t.Errorf("cols[1].W = %v, want 56", got)
	}
	if got := cols[2].Right(); math.Abs(got-320) > 1e-9 {
		t.Errorf("cols[2].Right() = %v, want 320", got)
	}

	equal := r.SplitColumns(2, nil, 0)
	if equal[0].W != 160 || equal[1].X != 160 {
		t.Errorf("equal split = %+v, want two 160px columns", equal)
	}

	if got := r.SplitColumns(0, nil, 0); got != nil {
		t.Errorf("SplitColumns(0) = %v, want nil", got)
	}
}

func TestInsetNeverNegative(t *testing.T) {
	r := Rect{W: 10, H: 10}.Inset(8, 8, 8, 8)
	if r.W != 0 || r.H != 0 {
		t.Errorf("Inset = %+v, want zero size", r)
	}
}

func TestScale(t *testing.T) {
	s := scale{d0: 0, d1: 10, p0: 100, p1: 0}
	if got := s.at(5); got != 50 {
		t.Errorf("at(5) = %v, want 50", got)
	}
	if got := s.length(2); got != 20 {
		t.Errorf("length(2) = %v, want 20", got)
	}
	flat := scale{d0: 1, d1: 1, p0: 7, p1: 9}
	if got := flat.at(3); got != 7 {
		t.Errorf("degenerate at() = %v, want 7", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{3.5, "3.5"},
		{3.456, "3.46"},
		{27.10, "27.1"},
		{math.NaN(), ""},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatFixed2(31); got != "31.00" {
		t.Errorf("FormatFixed2(31) = %q, want 31.00", got)
	}
	if got := FormatInt(7.9); got != "7" {
		t.Errorf("FormatInt(7.9) = %q, want 7", got)
	}
}

func TestNiceTicks(t *testing.T) {
	got := niceTicks(0, 100, 5)
	want := []float64{0, 20, 40, 60, 80, 100}
	if len(got) != len(want) {
		t.Fatalf("niceTicks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("niceTicks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if niceTicks(5, 5, 5) != nil {
		t.Error("niceTicks on an empty range should be nil")
	}
}

func TestYRange(t *testing.T) {
	tests := []struct {
		name   string
		axes   Axes
		lo, hi float64
	}{
		{
			name: "fixed limit above data",
			axes: Axes{YMax: 30, Bars: []Bars{{Values: []float64{10, 20}}}},
			lo:   0, hi: 30,
		},
		{
			name: "fixed limit raised to fit data",
			axes: Axes{YMax: 30, Bars: []Bars{{Values: []float64{40}}}},
			lo:   0, hi: 42,
		},
		{
			name: "auto from stacked bars",
			axes: Axes{Bars: []Bars{
				{Values: []float64{5}},
				{Values: []float64{5}, Bottom: []float64{5}},
			}},
			lo: 0, hi: 11,
		},
		{
			name: "line with fixed window",
			axes: Axes{YMin: 15, YMax: 45, Lines: []Line{{Values: []float64{20, 31}}}},
			lo:   15, hi: 45,
		},
		{
			name: "empty",
			axes: Axes{},
			lo:   0, hi: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.axes.YRange()
			if lo != tt.lo || math.Abs(hi-tt.hi) > 1e-9 {
				t.Errorf("YRange() = (%v, %v), want (%v, %v)", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestFigureSVG(t *testing.T) {
	ax := &Axes{
		Title:      "Number of Games per Month",
		Categories: []string{"Jan", "Feb", "Mar"},
		Spines:     BottomOnly,
		Bars: []Bars{{
			Values:      []float64{4, 5, 3},
			Colors:      []string{"#BD812B"},
			Label:       "Games",
			ValueLabels: &ValueLabels{Style: TextStyle{Size: 12, Bold: true}},
		}},
		Lines:  []Line{{Values: []float64{1, 2, 3}, Color: "#41210A", Marker: true, Label: "Trend"}},
		Legend: LegendUpperRight,
	}
	tbl := &Table{
		Title:       "Scorers & <Assists>",
		Columns:     []string{"Pos", "Player", "Goals"},
		Rows:        [][]string{{"1", "Ana", "12"}, {"2", "Bruno", "9"}},
		BoldColumns: []int{2},
		Highlight:   []int{1},
	}
	hb := &HBarAxes{
		Title:      "Goals",
		Categories: []string{"Ana", "Bruno"},
		Values:     []float64{12, 9},
		Colors:     []string{"#567D6B", "#9CBAAC"},
	}

	out := NewFigure(1200, 400, ax, tbl, hb).WithName("test").WithRatios(2, 1, 1).SVG()
	wellFormed(t, out)

	s := string(out)
	for _, want := range []string{
		`width="1200"`,
		"Number of Games per Month",
		"#BD812B",
		"Scorers &amp; &lt;Assists&gt;",
		"lightgreen",
		"<title>test</title>",
		"Trend",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestFigureOptions(t *testing.T) {
	th := theme.New(theme.WithBackground("#FFFFFF"))
	out := NewFigure(200, 100).SVG(WithTheme(th), WithEmbeddedFonts())
	wellFormed(t, out)

	s := string(out)
	if !strings.Contains(s, "fill:#FFFFFF") {
		t.Error("custom background not applied")
	}
	if !strings.Contains(s, "@font-face") {
		t.Error("embedded fonts missing")
	}
}

func TestTableShrinksToFit(t *testing.T) {
	tbl := &Table{
		Columns:  []string{"A very long column header", "Another very long header"},
		Rows:     [][]string{{"x", "y"}},
		FontSize: 20,
	}
	widths := tbl.columnWidths(20)
	if sum(widths) <= 100 {
		t.Fatalf("test needs a table wider than the panel, got %v", sum(widths))
	}
	out := NewFigure(140, 300, tbl).SVG()
	wellFormed(t, out)
}

func TestRotatedExtent(t *testing.T) {
	if got := rotatedExtent(100, 10, 0); got != 10 {
		t.Errorf("rotatedExtent(0deg) = %v, want 10", got)
	}
	if got := rotatedExtent(100, 10, 90); math.Abs(got-100) > 1e-9 {
		t.Errorf("rotatedExtent(90deg) = %v, want 100", got)
	}
}
