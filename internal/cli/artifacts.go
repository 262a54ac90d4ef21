package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

// artifactsCommand manages artifacts kept with render --keep.
func (c *CLI) artifactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Manage kept artifacts",
	}

	cmd.AddCommand(c.artifactsListCommand())
	cmd.AddCommand(c.artifactsGetCommand())
	cmd.AddCommand(c.artifactsDeleteCommand())

	return cmd
}

func (c *CLI) artifactsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kept artifacts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := st.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No artifacts kept")
				return nil
			}
			fmt.Println(artifactsTable(list))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of artifacts (0 for all)")
	return cmd
}

func (c *CLI) artifactsGetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a kept artifact to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			a, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = a.Chart + "-" + a.ID[:8] + "." + a.Format
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, a.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote %s", a.Chart)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <chart>-<id>.<format>)")
	return cmd
}

func (c *CLI) artifactsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a kept artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

func artifactsTable(list []*storage.Artifact) string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		month := ""
		if a.Month != 0 {
			month = strconv.Itoa(a.Month)
		}
		rows = append(rows, []string{
			a.ID,
			a.Chart,
			a.Format,
			a.Player,
			month,
			strconv.Itoa(a.Size),
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Chart", "Format", "Player", "Month", "Bytes", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return StyleDim
			case col == 1:
				return StyleHighlight
			case col == 5:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}
