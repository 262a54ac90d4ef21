package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// previewTable is one table of a season with the header colours it is
// drawn with in the report.
type previewTable struct {
	title  string
	table  dataset.Table
	header theme.Header
}

// previewCommand prints the table sections of a season in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var player string
	var month int

	cmd := &cobra.Command{
		Use:   "preview <dataset>",
		Short: "Print the dataset tables in the report colours",
		Long: `Print the table sections of a season file in the terminal, using the
header and alternating row colours of the charts. With --month the three
monthly ranking tables are shown instead; --player highlights a row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if player != "" {
				if err := errors.ValidatePlayerName(player); err != nil {
					return err
				}
			}
			tables, err := previewTables(s, month, theme.Current())
			if err != nil {
				return err
			}
			if len(tables) == 0 {
				printWarning("No tables in %s", args[0])
				return nil
			}
			for _, t := range tables {
				fmt.Println(StyleTitle.Render(t.title))
				fmt.Println(renderPreview(t, player, theme.Current()))
				printNewline()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&player, "player", "p", "", "highlight this player's rows")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "show the ranking tables of this month (1-12)")
	return cmd
}

// previewTables selects the non-empty tables to show.
func previewTables(s *dataset.Season, month int, th theme.Theme) ([]previewTable, error) {
	var all []previewTable
	if month != 0 {
		m, err := s.Month(month)
		if err != nil {
			return nil, err
		}
		name := m.MonthName()
		all = []previewTable{
			{name + " points", m.Points, th.Points},
			{name + " goals", m.Goals, th.Goals},
			{name + " assists", m.Assists, th.Assists},
		}
	} else {
		all = []previewTable{
			{"Standings", s.Standings, th.Points},
			{"Scorers", s.ScorersTable, th.Goals},
			{"Assistants", s.AssistantsTable, th.Assists},
			{"Top scorer performances", s.TopScorers, th.Goals},
			{"Top assist performances", s.TopAssistants, th.Assists},
		}
	}

	out := all[:0]
	for _, t := range all {
		if !t.table.Empty() {
			out = append(out, t)
		}
	}
	return out, nil
}

// renderPreview draws t with its header colours and alternating body rows.
// Rows containing player are drawn in the highlight colour.
func renderPreview(t previewTable, player string, th theme.Theme) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Background(termColor(t.header.Fill)).
		Foreground(termColor(t.header.Text))
	text := termColor(th.Text)

	highlighted := make(map[int]bool)
	for i, row := range t.table.Rows {
		for _, cell := range row {
			if player != "" && cell == player {
				highlighted[i] = true
			}
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(termColor(th.Text))).
		Headers(t.table.Columns...).
		Rows(t.table.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			bg := th.RowColor(row)
			if highlighted[row] {
				bg = th.Highlight
			}
			return lipgloss.NewStyle().Padding(0, 1).
				Background(termColor(bg)).
				Foreground(text)
		})
	return tbl.Render()
}

// termColor converts a theme colour (hex or CSS name) into a terminal
// colour. Unknown values fall back to the terminal default.
func termColor(s string) lipgloss.TerminalColor {
	c, err := theme.Parse(s)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}
