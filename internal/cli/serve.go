package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/server"
)

// serveCommand runs the HTTP render API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

  GET  /healthz           liveness and version
  GET  /charts            registered charts
  POST /render/{chart}    render a chart from the season in the body
  GET  /artifacts         kept artifacts
  GET  /artifacts/{id}    one kept artifact

Rendered charts are cached, and kept when the request sets keep=true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, runnerOpts{noCache: noCache, store: true})
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Config{MaxBody: maxBody})
			printInfo("Serving on %s", StyleLink.Render("http://"+displayAddr(addr)))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "maximum dataset upload size in bytes")
	return cmd
}

// displayAddr turns a listen address like ":8080" into a browsable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
