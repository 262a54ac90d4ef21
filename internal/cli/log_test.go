package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seasonviz/pkg/observability"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("dataset loaded")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).Match(buf.Bytes()) {
		t.Errorf("log line %q should start with a 15:04:05.00 timestamp", buf.String())
	}
}

func TestRegisterLogHooks(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		want    bool
		wantLog bool
	}{
		{"verbose", LogDebug, true, true},
		{"default", LogInfo, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observability.Reset()
			t.Cleanup(observability.Reset)

			var buf bytes.Buffer
			if got := registerLogHooks(newLogger(&buf, tt.level)); got != tt.want {
				t.Fatalf("registerLogHooks() = %v, want %v", got, tt.want)
			}

			observability.Render().OnBuildStart(context.Background(), "goal-type")
			observability.Cache().OnCacheHit(context.Background(), "goal-type")

			out := buf.String()
			for _, want := range []string{"build start", "cache hit", "goal-type"} {
				if strings.Contains(out, want) != tt.wantLog {
					t.Errorf("log contains %q = %v, want %v\n%s", want, !tt.wantLog, tt.wantLog, out)
				}
			}
		})
	}
}

func TestProgressCharts(t *testing.T) {
	tests := []struct {
		rendered, skipped int
		want              string
	}{
		{12, 0, "Rendered 12 charts ("},
		{1, 0, "Rendered 1 chart ("},
		{0, 0, "Rendered 0 charts ("},
		{3, 2, "Rendered 3 charts, skipped 2 ("},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			newProgress(newLogger(&buf, log.InfoLevel)).charts(tt.rendered, tt.skipped)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderAllLogsSummary(t *testing.T) {
	c, _ := newTestCLI(t)
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	// No player or month: player and monthly charts are skipped.
	if err := c.runRender(ctx, "", sampleFile(t), renderOpts{output: t.TempDir(), scale: 1, all: true}); err != nil {
		t.Fatalf("runRender(all): %v", err)
	}
	if !regexp.MustCompile(`Rendered \d+ charts, skipped \d+ \(`).MatchString(buf.String()) {
		t.Errorf("summary line missing:\n%s", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
