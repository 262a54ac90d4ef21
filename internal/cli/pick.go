package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/plots"
)

// pickCommand chooses a chart, and a player when the chart needs one,
// interactively and renders it.
func (c *CLI) pickCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick <dataset>",
		Short: "Choose a chart interactively and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			chart, err := runModel(NewChartListModel(plots.Charts(), s))
			if err != nil {
				return err
			}
			if chart.Selected == nil {
				printInfo("No chart selected")
				return nil
			}
			ch := *chart.Selected

			if ch.NeedsPlayer && opts.player == "" {
				players, err := runModel(NewPlayerListModel(s.PlayerNames()))
				if err != nil {
					return err
				}
				if players.Selected == "" {
					printInfo("No player selected")
					return nil
				}
				opts.player = players.Selected
			}
			if ch.NeedsMonth && opts.month == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s needs --month", ch.Name)
			}

			cfg := c.Config.Output
			opts.formats = cfg.Formats
			if cmd.Flags().Changed("format") {
				opts.formats = splitList(formatsStr)
			}
			opts.scale = cfg.Scale
			if opts.output == "" {
				opts.output = cfg.Dir
			}
			return c.runRender(cmd.Context(), ch.Name, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.player, "player", "p", "", "player for drill-down charts (asked when missing)")
	cmd.Flags().IntVarP(&opts.month, "month", "m", 0, "month for monthly tables (1-12)")

	return cmd
}

// runModel runs m as a full-screen program and returns its final state.
func runModel[M tea.Model](m M) (M, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		var zero M
		return zero, fmt.Errorf("interactive picker: %w", err)
	}
	return final.(M), nil
}
