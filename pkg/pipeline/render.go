package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/seasonviz/pkg/observability"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/render"
)

// Build draws the chart named in opts from in.
func Build(ctx context.Context, in *Input, opts Options) (plots.Drawing, error) {
	c, err := plots.Lookup(opts.Chart)
	if err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnBuildStart(ctx, c.Name)
	start := time.Now()
	d, err := c.Build(in.Season, opts.Params())
	hooks.OnBuildComplete(ctx, c.Name, time.Since(start), err)
	return d, err
}

// Encode renders d in every requested format.
func Encode(ctx context.Context, d plots.Drawing, opts Options) (map[render.Format][]byte, error) {
	artifacts := make(map[render.Format][]byte, len(opts.formats))
	for _, f := range opts.formats {
		start := time.Now()
		data, err := d.Encode(ctx, f, opts.Scale)
		observability.Render().OnEncode(ctx, opts.Chart, string(f), len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	return artifacts, nil
}
