package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event as a debug line. It implements all hook
// interfaces and is registered by the CLI in verbose mode.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnBuildStart(_ context.Context, chart string) {
	h.logger.Debug("build start", "chart", chart)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, chart string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "chart", chart, "duration", d, "err", err)
		return
	}
	h.logger.Debug("build done", "chart", chart, "duration", d)
}

func (h *LogHooks) OnEncode(_ context.Context, chart, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "chart", chart, "format", format, "err", err)
		return
	}
	h.logger.Debug("encoded", "chart", chart, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, chart string) {
	h.logger.Debug("cache hit", "chart", chart)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, chart string) {
	h.logger.Debug("cache miss", "chart", chart)
}

func (h *LogHooks) OnCacheSet(_ context.Context, chart string, size int) {
	h.logger.Debug("cache set", "chart", chart, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("request", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
