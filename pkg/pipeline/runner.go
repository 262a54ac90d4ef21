package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seasonviz/pkg/cache"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/observability"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/render"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its backends. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  storage.Store // nil disables Options.Keep
	TTL    time.Duration
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		TTL:    cache.DefaultTTL,
		Logger: logger,
	}
}

// Execute builds and encodes one chart, serving from the cache when every
// requested format is cached.
func (r *Runner) Execute(ctx context.Context, in *Input, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Chart: opts.Chart, DatasetHash: in.Hash}

	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, in, opts); ok {
			result.Artifacts = artifacts
			result.CacheHit = true
			opts.Logger.Debug("served from cache", "chart", opts.Chart)
			return r.keep(ctx, result, opts)
		}
	}

	start := time.Now()
	d, err := Build(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(start)

	start = time.Now()
	artifacts, err := Encode(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(start)

	for f, data := range artifacts {
		key := r.Keyer.ArtifactKey(in.Hash, opts.ArtifactKeyOpts(f))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Warn("cache write failed", "chart", opts.Chart, "format", f, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, opts.Chart, len(data))
	}

	opts.Logger.Info("rendered chart",
		"chart", opts.Chart,
		"formats", opts.Formats,
		"duration", result.Stats.BuildTime+result.Stats.EncodeTime)

	return r.keep(ctx, result, opts)
}

// cached returns the artifacts for every requested format, or false when
// any of them is missing.
func (r *Runner) cached(ctx context.Context, in *Input, opts Options) (map[render.Format][]byte, bool) {
	artifacts := make(map[render.Format][]byte, len(opts.formats))
	for _, f := range opts.formats {
		key := r.Keyer.ArtifactKey(in.Hash, opts.ArtifactKeyOpts(f))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "chart", opts.Chart, "err", err)
		}
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, opts.Chart)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, opts.Chart)
		artifacts[f] = data
	}
	return artifacts, true
}

func (r *Runner) keep(ctx context.Context, result *Result, opts Options) (*Result, error) {
	if !opts.Keep {
		return result, nil
	}
	if r.Store == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "no artifact store configured")
	}
	result.Stored = make(map[render.Format]*storage.Artifact, len(result.Artifacts))
	for _, f := range opts.formats {
		a := storage.NewArtifact(opts.Chart, f, result.Artifacts[f])
		a.Player = opts.Player
		a.Month = opts.Month
		a.DatasetHash = result.DatasetHash
		if err := r.Store.Put(ctx, a); err != nil {
			return nil, fmt.Errorf("store %s: %w", f, err)
		}
		result.Stored[f] = a
	}
	return result, nil
}

// Skipped records a chart that ExecuteAll did not render.
type Skipped struct {
	Chart  string
	Reason string
}

// ExecuteAll renders every chart that applies to in. Player charts need
// opts.Player and monthly charts need opts.Month; charts whose sections are
// missing or that have nothing to draw are reported as skipped. Other
// errors abort the run.
func (r *Runner) ExecuteAll(ctx context.Context, in *Input, opts Options) ([]*Result, []Skipped, error) {
	var results []*Result
	var skipped []Skipped

	for _, c := range plots.Charts() {
		switch {
		case c.NeedsPlayer && opts.Player == "":
			skipped = append(skipped, Skipped{c.Name, "no player selected"})
			continue
		case c.NeedsMonth && opts.Month == 0:
			skipped = append(skipped, Skipped{c.Name, "no month selected"})
			continue
		case in.Season.Require(c.Sections...) != nil:
			skipped = append(skipped, Skipped{c.Name, "dataset section missing"})
			continue
		}

		o := opts
		o.Chart = c.Name
		o.validated = false
		o.formats = nil
		res, err := r.Execute(ctx, in, o)
		if errors.Is(err, errors.ErrCodeNoData) {
			skipped = append(skipped, Skipped{c.Name, errors.UserMessage(err)})
			continue
		}
		if err != nil {
			return results, skipped, fmt.Errorf("%s: %w", c.Name, err)
		}
		results = append(results, res)
	}
	return results, skipped, nil
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	var err error
	if r.Cache != nil {
		err = r.Cache.Close()
	}
	if r.Store != nil {
		if serr := r.Store.Close(); err == nil {
			err = serr
		}
	}
	return err
}
