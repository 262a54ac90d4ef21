// Package pkg provides the libraries behind seasonviz, the league season
// chart renderer.
//
// # Overview
//
// Seasonviz turns the pre-aggregated tables of a futsal league season into
// presentation charts with a fixed house style. The pkg directory is
// organized into four areas:
//
//  1. Input: [dataset] season files (JSON or TOML) and their sections
//  2. Drawing: [plots] chart registry, built on [chart], [theme] and [fonts]
//  3. Output: [render] SVG, PNG and PDF encoding, plus the raster player
//     card and the teammate network
//  4. Delivery: [pipeline] load → build → encode with [cache] and [storage],
//     exposed over HTTP by [server]
//
// # Architecture
//
//	season.json / season.toml
//	         ↓
//	    [dataset] package (decode + validate)
//	         ↓
//	    [plots] package (one chart per registered name)
//	         ↓
//	    [render] package (SVG, PNG, PDF)
//	         ↓
//	    [cache] / [storage] / files / HTTP response
//
// # Quick Start
//
//	in, err := pipeline.LoadInput("season.json")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, in, pipeline.Options{
//	    Chart:  "player-stats",
//	    Player: "Ana",
//	})
//	svg := res.Artifacts[render.FormatSVG]
//
// # Errors
//
// Every package reports failures through [errors], whose codes map onto CLI
// messages and HTTP statuses. A chart with nothing to draw fails with
// NO_DATA and carries the text shown in its place.
//
// # Observability
//
// [observability] hooks receive build, encode, cache and request events.
// They are no-ops until a consumer registers an implementation.
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/dataset
// [plots]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/plots
// [chart]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/chart
// [theme]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/theme
// [fonts]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/fonts
// [render]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/cache
// [storage]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/storage
// [server]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/seasonviz/pkg/observability
package pkg
