package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/plots"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// ChartListModel is the bubbletea model for interactive chart selection.
// Charts whose sections are missing from the season are listed dimmed and
// cannot be selected.
type ChartListModel struct {
	Charts   []plots.Chart
	Season   *dataset.Season
	Cursor   int
	Selected *plots.Chart
	Height   int
	Offset   int
}

// NewChartListModel creates a new chart list model.
func NewChartListModel(charts []plots.Chart, s *dataset.Season) ChartListModel {
	return ChartListModel{
		Charts: charts,
		Season: s,
		Height: 15,
	}
}

// available reports whether the season has every section of chart i.
func (m ChartListModel) available(i int) bool {
	return m.Season == nil || m.Season.Require(m.Charts[i].Sections...) == nil
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Charts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Charts) == 0 || !m.available(m.Cursor) {
				return m, nil
			}
			ch := m.Charts[m.Cursor]
			m.Selected = &ch
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Charts))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ch := m.Charts[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, ch.Name, chartNeeds(ch), ch.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Chart", "Needs", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Charts) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorGray)
			}
			switch {
			case !m.available(idx):
				return base.Foreground(colorDim)
			case idx == m.Cursor:
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Charts))))

	return b.String()
}

// =============================================================================
// PlayerListModel - Interactive player selection
// =============================================================================

// PlayerListModel is the bubbletea model for interactive player selection.
type PlayerListModel struct {
	Players  []string
	Cursor   int
	Selected string
}

// NewPlayerListModel creates a new player list model.
func NewPlayerListModel(players []string) PlayerListModel {
	return PlayerListModel{Players: players}
}

func (m PlayerListModel) Init() tea.Cmd {
	return nil
}

func (m PlayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Players)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Players) > 0 {
				m.Selected = m.Players[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PlayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Player"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, p := range m.Players {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> " + p))
		} else {
			b.WriteString(listNormalStyle.Render("  " + p))
		}
		b.WriteString("\n")
	}
	return b.String()
}
