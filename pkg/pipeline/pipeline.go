// Package pipeline provides the load → build → encode pipeline shared by the
// CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode and validate a season dataset ([Input])
//  2. Build: draw one chart from the season ([plots.Chart.Build])
//  3. Encode: produce SVG, PNG or PDF bytes for each requested format
//
// Encoded artifacts are cached by dataset hash, chart, parameters, format
// and theme, and can optionally be kept in an artifact store.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	in, err := pipeline.LoadInput("season.json")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, in, pipeline.Options{
//	    Chart:   "goal-scorers",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts[render.FormatSVG]
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seasonviz/pkg/cache"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/render"
	"github.com/matzehuels/seasonviz/pkg/storage"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 1.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 8.0
)

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{string(render.FormatSVG)}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one chart render.
// This struct supports JSON serialization for API requests.
type Options struct {
	Chart   string   `json:"chart"`
	Formats []string `json:"formats,omitempty"`

	Player  string   `json:"player,omitempty"`
	Month   int      `json:"month,omitempty"`
	Players []string `json:"players,omitempty"`

	// Scale multiplies PNG output size.
	Scale float64 `json:"scale,omitempty"`

	// Refresh skips cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Keep stores the artifacts in the runner's store.
	Keep bool `json:"keep,omitempty"`

	Logger *log.Logger `json:"-"`

	formats   []render.Format
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Chart string

	// DatasetHash identifies the input season.
	DatasetHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	// Stored lists the kept artifacts keyed by format (only with Keep).
	Stored map[render.Format]*storage.Artifact

	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BuildTime  time.Duration
	EncodeTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Chart == "" {
		return errors.New(errors.ErrCodeInvalidInput, "chart is required")
	}
	if _, err := plots.Lookup(o.Chart); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	o.formats = make([]render.Format, 0, len(o.Formats))
	for _, s := range o.Formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return err
		}
		o.formats = append(o.formats, f)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 0 and %g (got %g)", MaxScale, o.Scale)
	}
	if o.Player != "" {
		if err := errors.ValidatePlayerName(o.Player); err != nil {
			return err
		}
	}
	if o.Month != 0 {
		if err := errors.ValidateMonth(o.Month); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Params returns the chart parameters.
func (o *Options) Params() plots.Params {
	return plots.Params{Player: o.Player, Month: o.Month, Players: o.Players}
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(f render.Format) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Chart:   o.Chart,
		Format:  string(f),
		Player:  o.Player,
		Month:   o.Month,
		Players: o.Players,
		Theme:   themeFingerprint(),
	}
	if f == render.FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func themeFingerprint() string {
	data, _ := json.Marshal(theme.Current())
	return cache.Hash(data)[:16]
}
