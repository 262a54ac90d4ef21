// Package server exposes the render pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz           liveness and version
//	GET  /charts            registered charts and their requirements
//	POST /render/{chart}    render a chart from the season in the body
//	GET  /artifacts         list kept artifacts (newest first)
//	GET  /artifacts/{id}    fetch a kept artifact
//
// The render body is a season dataset in JSON, or TOML when the request
// Content-Type is application/toml. Query parameters select the output:
// format, player, month, players (comma separated), scale, refresh and keep.
// One format is rendered per request.
//
// Errors are returned as JSON {"code": ..., "message": ...}. A chart with
// nothing to draw answers 422 with code NO_DATA and the fallback message.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/seasonviz/pkg/buildinfo"
	"github.com/matzehuels/seasonviz/pkg/observability"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// DefaultMaxBody bounds the size of a dataset upload.
	DefaultMaxBody = 10 << 20

	// DefaultRenderTimeout bounds a single render request.
	DefaultRenderTimeout = 60 * time.Second
)

// Config configures a [Server].
type Config struct {
	MaxBody       int64
	RenderTimeout time.Duration
}

// Server serves the render API.
type Server struct {
	runner *pipeline.Runner
	store  storage.Store
	logger *log.Logger
	cfg    Config
	router chi.Router
}

// New creates a server rendering through runner. Artifacts are kept in
// runner.Store when a request asks for it.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.MaxBody <= 0 {
		cfg.MaxBody = DefaultMaxBody
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = DefaultRenderTimeout
	}
	s := &Server{
		runner: runner,
		store:  runner.Store,
		logger: logger,
		cfg:    cfg,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Get("/charts", s.handleCharts)
	r.With(middleware.Timeout(s.cfg.RenderTimeout)).Post("/render/{chart}", s.handleRender)
	r.Route("/artifacts", func(r chi.Router) {
		r.Get("/", s.handleListArtifacts)
		r.Get("/{id}", s.handleGetArtifact)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs each request and reports it to the server hooks under
// its route pattern.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.Server().OnRequest(r.Context(), r.Method, route, status, d)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r)
	})
}
