// Package cli implements the seasonviz command-line interface.
//
// This package provides commands for rendering league season charts,
// previewing dataset tables in the terminal, serving the render API and
// managing the artifact cache. The CLI is built using cobra, reads its
// configuration through viper and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PDF, or PNG charts from a season file
//   - charts: List the available charts and the data they need
//   - pick: Choose a chart interactively
//   - preview: Print dataset tables in the report colours
//   - serve: Run the HTTP render API
//   - cache: Manage the artifact cache
//
// # Configuration
//
// Settings are read from seasonviz.toml in the current directory or
// $XDG_CONFIG_HOME/seasonviz, or from the file named by --config.
// SEASONVIZ_* environment variables override the file; flags override both.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports render and cache events. Loggers are passed through
// context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seasonviz/pkg/observability"
)

// newLogger returns a logger writing to w at level, with timestamps as
// "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// registerLogHooks routes render, cache and server events to l when l logs
// at debug level. It reports whether the hooks were installed.
func registerLogHooks(l *log.Logger) bool {
	if l.GetLevel() > log.DebugLevel {
		return false
	}
	hooks := observability.NewLogHooks(l)
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetServerHooks(hooks)
	return true
}

// progress times a render run.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed is rounded to the millisecond.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg with the elapsed time, e.g. "Rendered 12 charts (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

// charts logs the summary of a render --all run.
func (p *progress) charts(rendered, skipped int) {
	msg := fmt.Sprintf("Rendered %d %s", rendered, plural(rendered, "chart"))
	if skipped > 0 {
		msg += fmt.Sprintf(", skipped %d", skipped)
	}
	p.done(msg)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the command being run.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
