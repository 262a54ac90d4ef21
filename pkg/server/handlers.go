package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/seasonviz/pkg/buildinfo"
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/render"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type chartInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Sections    []dataset.Section `json:"sections"`
	NeedsPlayer bool              `json:"needs_player,omitempty"`
	NeedsMonth  bool              `json:"needs_month,omitempty"`
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	charts := plots.Charts()
	out := make([]chartInfo, len(charts))
	for i, c := range charts {
		out[i] = chartInfo{
			Name:        c.Name,
			Description: c.Description,
			Sections:    c.Sections,
			NeedsPlayer: c.NeedsPlayer,
			NeedsMonth:  c.NeedsMonth,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBody))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read dataset"))
		return
	}
	in, err := pipeline.ParseInput(body, bodyFormat(r))
	if err != nil {
		writeError(w, err)
		return
	}

	opts.Logger = s.logger
	res, err := s.runner.Execute(r.Context(), in, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	f := render.Format(opts.Formats[0])
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("X-Dataset-Hash", res.DatasetHash)
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	if a := res.Stored[f]; a != nil {
		w.Header().Set("X-Artifact-ID", a.ID)
		w.Header().Set("Location", "/artifacts/"+a.ID)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[f])
}

// renderOptions reads the chart and query parameters of a render request.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Chart:  chi.URLParam(r, "chart"),
		Player: q.Get("player"),
	}

	format := q.Get("format")
	if format == "" {
		format = string(render.FormatSVG)
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return opts, err
	}
	opts.Formats = []string{string(f)}

	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "month must be a number (got %q)", v)
		}
		opts.Month = m
	}
	if v := q.Get("players"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				opts.Players = append(opts.Players, p)
			}
		}
	}
	if v := q.Get("scale"); v != "" {
		sc, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number (got %q)", v)
		}
		opts.Scale = sc
	}
	opts.Refresh = flag(q.Get("refresh"))
	opts.Keep = flag(q.Get("keep"))

	return opts, opts.ValidateAndSetDefaults()
}

func flag(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func bodyFormat(r *http.Request) dataset.Format {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/toml", "text/toml":
		return dataset.FormatTOML
	}
	return dataset.FormatJSON
}

func (s *Server) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "no artifact store configured"))
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative number (got %q)", v))
			return
		}
		limit = n
	}
	list, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*storage.Artifact{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "no artifact store configured"))
		return
	}
	a, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(a.Data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps an error code to an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDataset,
		errors.ErrCodeInvalidPlayer, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidChart, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNoData:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
