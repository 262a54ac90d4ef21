package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

func newTestCLI(t *testing.T) (*CLI, context.Context) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	c.Config.Store.Dir = t.TempDir()
	return c, withLogger(context.Background(), c.Logger)
}

func sampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.json")
	if err := os.WriteFile(path, dataset.SampleJSON(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestRunRender(t *testing.T) {
	c, ctx := newTestCLI(t)
	data := sampleFile(t)

	tests := []struct {
		name  string
		chart string
		opts  renderOpts
		file  string
	}{
		{"season chart", "goal-type", renderOpts{}, "goal-type.svg"},
		{"player chart", "player-stats", renderOpts{player: "Ana"}, "player-stats-ana.svg"},
		{"monthly chart", "monthly-tables", renderOpts{month: 3}, "monthly-tables-03.svg"},
		{"points subset", "points-evolution", renderOpts{players: []string{"Ana", "Bruno"}}, "points-evolution.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			tt.opts.output = out
			tt.opts.scale = 1
			if err := c.runRender(ctx, tt.chart, data, tt.opts); err != nil {
				t.Fatalf("runRender() error: %v", err)
			}
			assertFile(t, filepath.Join(out, tt.file))
		})
	}
}

func TestRunRenderNoDataIsNotAFailure(t *testing.T) {
	c, ctx := newTestCLI(t)
	out := t.TempDir()

	err := c.runRender(ctx, "player-involvement", sampleFile(t), renderOpts{output: out, player: "Hugo", scale: 1})
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("no file should be written, got %d", len(entries))
	}
}

func TestRunRenderErrors(t *testing.T) {
	c, ctx := newTestCLI(t)
	data := sampleFile(t)

	tests := []struct {
		name  string
		chart string
		path  string
		opts  renderOpts
		want  errors.Code
	}{
		{"unknown chart", "pie", data, renderOpts{output: t.TempDir()}, errors.ErrCodeInvalidChart},
		{"missing dataset", "goal-type", filepath.Join(t.TempDir(), "none.json"), renderOpts{output: t.TempDir()}, errors.ErrCodeFileNotFound},
		{"traversal", "goal-type", data, renderOpts{output: "../out"}, errors.ErrCodeInvalidPath},
		{"missing player", "player-stats", data, renderOpts{output: t.TempDir()}, errors.ErrCodeInvalidInput},
		{"bad format", "goal-type", data, renderOpts{output: t.TempDir(), formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.scale = 1
			err := c.runRender(ctx, tt.chart, tt.path, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestRunRenderAll(t *testing.T) {
	c, ctx := newTestCLI(t)
	out := t.TempDir()

	err := c.runRender(ctx, "", sampleFile(t), renderOpts{output: out, player: "Ana", month: 3, scale: 1, all: true})
	if err != nil {
		t.Fatalf("runRender(all) error: %v", err)
	}
	for _, f := range []string{"season-standings.svg", "player-stats-ana.svg", "monthly-tables-03.svg", "teammate-network-ana.svg"} {
		assertFile(t, filepath.Join(out, f))
	}
}

func TestRunRenderKeep(t *testing.T) {
	c, ctx := newTestCLI(t)

	err := c.runRender(ctx, "goal-time", sampleFile(t), renderOpts{output: t.TempDir(), scale: 1, keep: true, noCache: true})
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	st, err := storage.NewFileStore(c.Config.Store.Dir)
	if err != nil {
		t.Fatal(err)
	}
	list, err := st.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Chart != "goal-time" {
		t.Errorf("kept artifacts = %+v", list)
	}
}

func TestOutputName(t *testing.T) {
	lookup := func(name string) plots.Chart {
		ch, err := plots.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		return ch
	}

	tests := []struct {
		chart  string
		player string
		month  int
		want   string
	}{
		{"goal-type", "Ana", 3, "goal-type"},
		{"player-stats", "Ana", 3, "player-stats-ana"},
		{"player-stats", "", 0, "player-stats"},
		{"monthly-tables", "Ana", 11, "monthly-tables-11"},
		{"frequent-teammates", "José María", 0, "frequent-teammates-josé-maría"},
	}
	for _, tt := range tests {
		if got := outputName(lookup(tt.chart), tt.player, tt.month); got != tt.want {
			t.Errorf("outputName(%s, %q, %d) = %q, want %q", tt.chart, tt.player, tt.month, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ana", "ana"},
		{"Ana Paula", "ana-paula"},
		{"  O'Neil  ", "o-neil"},
		{"a--b", "a-b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" svg, png ,,pdf")
	want := []string{"svg", "png", "pdf"}
	if len(got) != len(want) {
		t.Fatalf("splitList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if splitList("") != nil {
		t.Error("splitList(\"\") should be nil")
	}
}
