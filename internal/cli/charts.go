package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/plots"
)

// chartsCommand lists every registered chart.
func (c *CLI) chartsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "List the available charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				for _, name := range plots.Names() {
					fmt.Println(name)
				}
				return nil
			}
			fmt.Println(chartsTable(plots.Charts()))
			printNewline()
			printNextStep("Render one", "seasonviz render <chart> <dataset>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print names only")
	return cmd
}

// chartsTable renders charts as a bordered table.
func chartsTable(charts []plots.Chart) string {
	rows := make([][]string, 0, len(charts))
	for _, ch := range charts {
		rows = append(rows, []string{ch.Name, chartNeeds(ch), sectionList(ch), ch.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Chart", "Needs", "Sections", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 1:
				return StyleNumber
			case col == 2:
				return StyleDim
			}
			return StyleValue
		})
	return t.Render()
}

func chartNeeds(ch plots.Chart) string {
	var needs []string
	if ch.NeedsPlayer {
		needs = append(needs, "--player")
	}
	if ch.NeedsMonth {
		needs = append(needs, "--month")
	}
	return strings.Join(needs, " ")
}

func sectionList(ch plots.Chart) string {
	names := make([]string, len(ch.Sections))
	for i, s := range ch.Sections {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
