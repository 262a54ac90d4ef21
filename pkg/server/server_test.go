package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seasonviz/pkg/cache"
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

func newTestServer(t *testing.T, withStore bool) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, "api:"), logger)
	if withStore {
		store, err := storage.NewFileStore(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		runner.Store = store
	}
	ts := httptest.NewServer(New(runner, logger, Config{}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, false)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Server"), "seasonviz/") {
		t.Errorf("Server header = %q", resp.Header.Get("Server"))
	}
}

func TestCharts(t *testing.T) {
	ts := newTestServer(t, false)
	resp, err := http.Get(ts.URL + "/charts")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var charts []chartInfo
	if err := json.NewDecoder(resp.Body).Decode(&charts); err != nil {
		t.Fatal(err)
	}
	if len(charts) != len(plots.Names()) {
		t.Errorf("got %d charts, want %d", len(charts), len(plots.Names()))
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer(t, false)
	url := ts.URL + "/render/goal-type?format=svg"

	for _, want := range []string{"MISS", "HIT"} {
		resp, err := http.Post(url, "application/json", bytes.NewReader(dataset.SampleJSON()))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d: %s", resp.StatusCode, body)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("Content-Type = %q", ct)
		}
		if got := resp.Header.Get("X-Cache"); got != want {
			t.Errorf("X-Cache = %q, want %q", got, want)
		}
		if !bytes.Contains(body, []byte("<svg")) {
			t.Error("body is not SVG")
		}
	}
}

func TestRenderFormatNormalised(t *testing.T) {
	ts := newTestServer(t, false)

	for _, format := range []string{"%20svg", "SVG", "%20SVG%20"} {
		t.Run(format, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/render/goal-type?format="+format, "application/json", bytes.NewReader(dataset.SampleJSON()))
			if err != nil {
				t.Fatal(err)
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, body)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
				t.Errorf("Content-Type = %q", ct)
			}
			if !bytes.Contains(body, []byte("<svg")) {
				t.Errorf("body is not SVG (%d bytes)", len(body))
			}
		})
	}
}

func TestRenderTOMLBody(t *testing.T) {
	ts := newTestServer(t, false)
	s, err := dataset.Sample()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dataset.Encode(&buf, s, dataset.FormatTOML); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(ts.URL+"/render/player-stats?player=Ana", "application/toml", &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t, false)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   errors.Code
	}{
		{"unknown chart", "/render/pie", "", http.StatusNotFound, errors.ErrCodeInvalidChart},
		{"bad format", "/render/goal-type?format=gif", "", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad month", "/render/monthly-tables?month=x", "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad dataset", "/render/goal-type", "{", http.StatusBadRequest, errors.ErrCodeInvalidDataset},
		{"no data", "/render/player-involvement?player=Hugo", string(dataset.SampleJSON()), http.StatusUnprocessableEntity, errors.ErrCodeNoData},
		{"keep without store", "/render/goal-type?keep=true", string(dataset.SampleJSON()), http.StatusNotImplemented, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+tt.path, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if got := decodeError(t, resp); got.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", got.Code, tt.code, got.Message)
			}
		})
	}
}

func TestNoDataMessage(t *testing.T) {
	ts := newTestServer(t, false)
	resp, err := http.Post(ts.URL+"/render/player-assists-teammates?player=Hugo", "application/json",
		bytes.NewReader(dataset.SampleJSON()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := decodeError(t, resp).Message; got != "No charts to plot" {
		t.Errorf("message = %q", got)
	}
}

func TestKeepAndFetchArtifact(t *testing.T) {
	ts := newTestServer(t, true)

	resp, err := http.Post(ts.URL+"/render/goal-time?keep=true", "application/json",
		bytes.NewReader(dataset.SampleJSON()))
	if err != nil {
		t.Fatal(err)
	}
	rendered, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	id := resp.Header.Get("X-Artifact-ID")
	if id == "" {
		t.Fatal("missing X-Artifact-ID")
	}

	resp, err = http.Get(ts.URL + "/artifacts/" + id)
	if err != nil {
		t.Fatal(err)
	}
	fetched, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.Equal(fetched, rendered) {
		t.Errorf("fetched artifact differs (status %d)", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/artifacts")
	if err != nil {
		t.Fatal(err)
	}
	var list []storage.Artifact
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(list) != 1 || list[0].ID != id {
		t.Errorf("list = %+v", list)
	}

	resp, err = http.Get(ts.URL + "/artifacts/" + storage.NewID())
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing artifact status = %d, want 404", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidInput, http.StatusBadRequest},
		{errors.ErrCodeInvalidChart, http.StatusNotFound},
		{errors.ErrCodeNoData, http.StatusUnprocessableEntity},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
