package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/plots"
	"github.com/matzehuels/seasonviz/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output directory
	formats []string // output formats: "svg", "png", "pdf"
	player  string   // player for drill-down charts
	month   int      // month for monthly tables (1-12)
	players []string // series shown by points-evolution
	scale   float64  // PNG scale factor
	refresh bool     // bypass cache reads
	noCache bool     // disable the cache entirely
	keep    bool     // keep artifacts in the store
	all     bool     // render every applicable chart
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr, playersStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <chart> <dataset>",
		Short: "Render a chart from a season file",
		Long: `Render a chart from a season file (JSON or TOML).

One file is written per format, named after the chart and, for player and
monthly charts, the player and month. Use --all to render every chart the
dataset supports; player charts need --player and monthly tables --month.`,
		Example: `  seasonviz render goal-scorers season.json
  seasonviz render player-stats season.json --player Ana -f svg,png
  seasonviz render --all season.toml --player Ana --month 3 -o out/`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return plots.Names(), cobra.ShellCompDirectiveNoFileComp
			}
			return []string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var chart, path string
			switch {
			case opts.all && len(args) == 1:
				path = args[0]
			case opts.all:
				return errors.New(errors.ErrCodeInvalidInput, "--all takes only the dataset argument")
			case len(args) == 2:
				chart, path = args[0], args[1]
			default:
				return errors.New(errors.ErrCodeInvalidInput, "render needs a chart and a dataset (see 'seasonviz charts')")
			}

			cfg := c.Config.Output
			opts.formats = cfg.Formats
			if cmd.Flags().Changed("format") {
				opts.formats = splitList(formatsStr)
			}
			if !cmd.Flags().Changed("scale") {
				opts.scale = cfg.Scale
			}
			if opts.output == "" {
				opts.output = cfg.Dir
			}
			opts.players = splitList(playersStr)

			return c.runRender(cmd.Context(), chart, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.player, "player", "p", "", "player for drill-down charts")
	cmd.Flags().IntVarP(&opts.month, "month", "m", 0, "month for monthly tables (1-12)")
	cmd.Flags().StringVar(&playersStr, "players", "", "players shown by points-evolution (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "keep rendered artifacts in the store")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every chart the dataset supports")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"svg", "png", "pdf"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender renders one chart, or every chart with opts.all, into opts.output.
func (c *CLI) runRender(ctx context.Context, chart, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if len(opts.formats) == 0 {
		opts.formats = pipeline.DefaultFormats
	}

	prog := newProgress(logger)
	in, err := pipeline.LoadInput(path)
	if err != nil {
		return err
	}
	logger.Debug("dataset loaded", "path", path, "hash", in.Hash[:12])

	runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache, store: opts.keep})
	if err != nil {
		return err
	}
	defer runner.Close()

	po := pipeline.Options{
		Chart:   chart,
		Formats: opts.formats,
		Player:  opts.player,
		Month:   opts.month,
		Players: opts.players,
		Scale:   opts.scale,
		Refresh: opts.refresh,
		Keep:    opts.keep,
		Logger:  logger,
	}

	if opts.all {
		results, skipped, err := runner.ExecuteAll(ctx, in, po)
		for _, res := range results {
			if werr := writeResult(opts.output, res, po); werr != nil {
				return werr
			}
		}
		if err != nil {
			return err
		}
		for _, s := range skipped {
			printWarning("%s skipped: %s", s.Chart, s.Reason)
		}
		prog.charts(len(results), len(skipped))
		return nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+chart+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, in, po)
	spinner.Stop()
	if errors.Is(err, errors.ErrCodeNoData) {
		printWarning("%s: %s", chart, errors.UserMessage(err))
		return nil
	}
	if err != nil {
		return err
	}
	return writeResult(opts.output, res, po)
}

// writeResult writes each artifact of res into dir and reports the files.
func writeResult(dir string, res *pipeline.Result, po pipeline.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	c, err := plots.Lookup(res.Chart)
	if err != nil {
		return err
	}
	base := outputName(c, po.Player, po.Month)

	var paths []string
	for _, s := range po.Formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return err
		}
		data, ok := res.Artifacts[f]
		if !ok {
			continue
		}
		p := filepath.Join(dir, base+f.Ext())
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}

	printSuccess("Rendered %s", res.Chart)
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(paths), res.Stats.BuildTime+res.Stats.EncodeTime, res.CacheHit)
	for f, a := range res.Stored {
		printDetail("kept %s as %s", f, a.ID)
	}
	return nil
}

// outputName is the file name of a chart without extension: the chart name,
// then the player and month when the chart uses them.
func outputName(c plots.Chart, player string, month int) string {
	name := c.Name
	if c.NeedsPlayer && player != "" {
		name += "-" + slug(player)
	}
	if c.NeedsMonth && month != 0 {
		name += fmt.Sprintf("-%02d", month)
	}
	return name
}

// slug lowercases s and replaces runs of anything but letters and digits
// with a single dash.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
