package plots

import (
	"fmt"

	"github.com/matzehuels/seasonviz/pkg/chart"
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/render/card"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// PlayerStats returns the summary card of a player.
func PlayerStats(player string, s dataset.Summary) card.Stats {
	return card.Stats{
		Player:         player,
		Games:          s.Games,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		Points:         s.Points,
		Efficiency:     s.Efficiency,
		Participations: s.Participations,
		Goals:          s.Goals,
		Assists:        s.Assists,
	}
}

// playerRows returns the rows of t whose "Player" cell is player. Only the
// first match is highlighted.
func playerRows(t dataset.Table, player string) []int {
	rows := t.RowsWhere("Player", player)
	if len(rows) > 1 {
		rows = rows[:1]
	}
	return rows
}

// PlayerClassification renders the standings around player with the
// player's row highlighted.
func PlayerClassification(t dataset.Table, player string) (*chart.Figure, error) {
	if err := requireTable("classification", t); err != nil {
		return nil, err
	}
	th := current()
	tbl := &chart.Table{
		Columns:     t.Columns,
		Rows:        t.Rows,
		FontSize:    pt(20),
		Header:      th.Points,
		BoldColumns: []int{6},
		Highlight:   playerRows(t, player),
		RowScale:    1.8,
		Placement:   chart.PlaceTop,
	}
	fig := chart.NewFigure(1600, tableHeight(len(t.Rows), 20, 1.8, 50), tbl)
	return fig.WithName("Classification - " + player), nil
}

// PlayerGoalsAssistsClassification renders the goal and assist rankings
// around player, highlighting the player's row in both.
func PlayerGoalsAssistsClassification(scorers, assists dataset.Table, player string) (*chart.Figure, error) {
	if scorers.Empty() && assists.Empty() {
		return nil, errors.NoData("The player %s does not appear in the scorer or assist rankings.", player)
	}
	th := current()
	mk := func(name string, t dataset.Table, h theme.Header) *chart.Table {
		return &chart.Table{
			Title:       name,
			TitleStyle:  chart.TextStyle{Size: pt(16), Bold: true, Color: th.Text},
			Columns:     t.Columns,
			Rows:        t.Rows,
			FontSize:    pt(15),
			Header:      h,
			BoldColumns: []int{3},
			Highlight:   playerRows(t, player),
			RowScale:    1.8,
			Placement:   chart.PlaceTop,
		}
	}
	fig := inches(15, 5,
		mk("Scorers Around Player", scorers, th.Goals),
		mk("Assists Around Player", assists, th.Assists),
	)
	fig.Gap = 80
	return fig.WithName("Rankings Around " + player), nil
}

// PlayerBestPerformance renders the player's best scoring and assisting
// matches. Which tables are drawn depends on hasGoals and hasAssists; with
// neither it returns a NO_DATA error.
func PlayerBestPerformance(topScorerGames, topAssistGames dataset.Table, player string, hasGoals, hasAssists bool) (*chart.Figure, error) {
	th := current()
	goals := func(fontPt float64) *chart.Table {
		return performanceTable("Top Number of Goals in a Match", topScorerGames, th.Goals, fontPt)
	}
	assists := func(fontPt float64) *chart.Table {
		return performanceTable("Top Number of Assists in a Match", topAssistGames, th.Assists, fontPt)
	}

	var fig *chart.Figure
	switch {
	case hasGoals && hasAssists:
		fig = inches(15, 4.3, goals(15), assists(15))
	case hasGoals:
		fig = inches(15, 5, goals(15))
	case hasAssists:
		fig = inches(15, 5, assists(25))
	default:
		return nil, errors.NoData("The player %s did not score any goals or assists.", player)
	}
	return fig.WithName("Best Performances - " + player), nil
}

// FrequentTeammates draws the number of matches played alongside each
// teammate. maxValue scales the axis and label offsets.
func FrequentTeammates(counts dataset.Counts, player string, maxValue float64) (*chart.Figure, error) {
	if len(counts) == 0 {
		return nil, errors.NoData("The player %s has no recorded teammates.", player)
	}
	if maxValue <= 0 {
		maxValue = counts.Max()
	}
	th := current()
	labels := boldLabels(10)
	labels.Offset = maxValue / 90
	labels.Format = chart.FormatInt

	ax := &chart.Axes{
		Title:      "Most Frequent Teammates of " + player,
		TitleStyle: title(20),
		YLabel:     "Number of Matches",
		Categories: counts.Labels(),
		XTicks:     chart.TickStyle{Size: pt(10), Rotate: 90},
		YMax:       maxValue * 1.1,
		Spines:     chart.BottomOnly,
		Bars: []chart.Bars{{
			Values:      counts.Values(),
			Colors:      []string{th.Points.Fill},
			Width:       0.5,
			ValueLabels: labels,
		}},
	}
	return inches(12, 6, ax).WithName("Frequent Teammates - " + player), nil
}

// WinLoseTeammate draws stacked losses, draws and wins per teammate with
// the games total and efficiency above each stack.
func WinLoseTeammate(records []dataset.TeammateStats, maxGames float64, player string) (*chart.Figure, error) {
	if len(records) == 0 {
		return nil, errors.NoData("The player %s has no teammate records.", player)
	}
	n := len(records)
	names := make([]string, n)
	losses := make([]float64, n)
	draws := make([]float64, n)
	wins := make([]float64, n)
	lossDraw := make([]float64, n)
	for i, r := range records {
		names[i] = r.Teammate
		losses[i] = float64(r.Losses)
		draws[i] = float64(r.Draws)
		wins[i] = float64(r.Wins)
		lossDraw[i] = losses[i] + draws[i]
		maxGames = max(maxGames, float64(r.Games()))
	}

	segment := chart.TextStyle{Size: pt(13), Bold: true, VAlign: chart.VAlignMiddle}
	var notes []chart.Note
	add := func(x, y float64, text string, st chart.TextStyle) {
		notes = append(notes, chart.Note{X: x, Y: y, Text: text, Style: st})
	}
	for i, r := range records {
		x := float64(i)
		if r.Losses != 0 {
			st := segment
			st.Color = segmentTextColor
			add(x, losses[i]/2, fmt.Sprint(r.Losses), st)
		}
		if r.Draws != 0 {
			st := segment
			st.Color = drawLabelColor
			add(x, losses[i]+draws[i]/2, fmt.Sprint(r.Draws), st)
		}
		if r.Wins != 0 {
			st := segment
			st.Color = segmentTextColor
			add(x, lossDraw[i]+wins[i]/2, fmt.Sprint(r.Wins), st)
		}
		total := float64(r.Games())
		games := segment
		games.Color = "black"
		add(x, total+maxGames/60, fmt.Sprint(r.Games()), games)
		add(x, total+maxGames/25, r.Efficiency, chart.TextStyle{
			Size: pt(10), Bold: true, Color: efficiencyColor, VAlign: chart.VAlignMiddle,
		})
	}

	ax := &chart.Axes{
		Title:      "Sum of Wins, Losses, Draws, and Efficiency by Teammate - " + player,
		TitleStyle: title(24),
		Categories: names,
		XTicks:     chart.TickStyle{Size: pt(10), Bold: true, Rotate: 60},
		YMax:       maxGames * 1.1,
		Spines:     chart.BottomOnly,
		Bars: []chart.Bars{
			{Values: losses, Colors: []string{lossColor}, Width: 0.87, Label: "Losses"},
			{Values: draws, Colors: []string{drawColor}, Width: 0.87, Bottom: losses, Label: "Draws"},
			{Values: wins, Colors: []string{winColor}, Width: 0.87, Bottom: lossDraw, Label: "Wins"},
		},
		Notes:  notes,
		Legend: chart.LegendUpperRight,
	}
	return inches(25, 12, ax).WithName("Teammate Results - " + player), nil
}

// PlayerInvolvement draws goals and assists stacked in one bar with their
// share of the player's direct involvement.
func PlayerInvolvement(inv dataset.Involvement, player string) (*chart.Figure, error) {
	total := inv.Total()
	if total == 0 {
		return nil, errors.NoData("The player %s did not score any goals or assists.", player)
	}
	th := current()
	goals, assists := float64(inv.Goals), float64(inv.Assists)
	label := chart.TextStyle{Size: pt(12), Bold: true, Color: "black", VAlign: chart.VAlignBottom}

	var notes []chart.Note
	if inv.Assists != 0 {
		notes = append(notes, chart.Note{
			Y:     float64(total) - assists/2,
			Text:  fmt.Sprintf("%d Assists (%.2f%%)", inv.Assists, inv.AssistShare()),
			Style: label,
		})
	}
	if inv.Goals != 0 {
		notes = append(notes, chart.Note{
			Y:     goals / 2,
			Text:  fmt.Sprintf("%d Goals (%.2f%%)", inv.Goals, inv.GoalShare()),
			Style: label,
		})
	}
	notes = append(notes, chart.Note{
		Y:     float64(total),
		Text:  fmt.Sprintf("Total: %d Direct Involvement", total),
		Style: label,
	})

	ax := &chart.Axes{
		Title:      "Direct Involvement in Goals (Goals + Assists) - " + player,
		TitleStyle: title(16),
		Categories: []string{"Direct Involvement"},
		XTicks:     chart.TickStyle{Size: pt(10)},
		YMax:       float64(total) * 1.15,
		Spines:     chart.BottomOnly,
		Bars: []chart.Bars{
			{Values: []float64{goals}, Colors: []string{th.Goals.Fill}, Width: 0.9, Label: "Goals"},
			{Values: []float64{assists}, Colors: []string{th.Assists.Fill}, Width: 0.9, Bottom: []float64{goals}, Label: "Assists"},
		},
		Notes:  notes,
		Legend: chart.LegendUpperRight,
	}
	return inches(6, 10, ax).WithName("Direct Involvement - " + player), nil
}

// PlayerInvolvementPeriod draws involvement, goals and assists per game
// period as grouped bars.
func PlayerInvolvementPeriod(g dataset.Grouped, player string) (*chart.Figure, error) {
	return grouped(g, "Involvement according to game period - "+player, player)
}

// PlayerInvolvementType draws involvement, goals and assists per goal type
// as grouped bars.
func PlayerInvolvementType(g dataset.Grouped, player string) (*chart.Figure, error) {
	return grouped(g, "Involvement in Goal Types - "+player, player)
}

func grouped(g dataset.Grouped, name, player string) (*chart.Figure, error) {
	if g.Empty() {
		return nil, errors.NoData("The player %s did not score any goals or assists.", player)
	}
	th := current()
	series := func(values []float64, color string, offset float64, label string) chart.Bars {
		vl := boldLabels(15)
		vl.Offset = 0.1
		return chart.Bars{
			Values:      values,
			Colors:      []string{color},
			Width:       0.2,
			Offset:      offset,
			Label:       label,
			ValueLabels: vl,
		}
	}
	ax := &chart.Axes{
		Title:      name,
		TitleStyle: title(20),
		Categories: g.Labels,
		XTicks:     chart.TickStyle{Size: pt(15), Bold: true},
		Spines:     chart.BottomOnly,
		Bars: []chart.Bars{
			series(g.Total, th.Points.Fill, -0.2, "Involvement"),
			series(g.Goals, th.Goals.Fill, 0, "Goals"),
			series(g.Assists, th.Assists.Fill, 0.2, "Assists"),
		},
		Legend: chart.LegendUpperRight,
	}
	return inches(12, 6, ax).WithName(name), nil
}

// middleWidth returns the relative width of the "No Assistance" panel for
// the larger of the two side panels' bar counts.
func middleWidth(bars int) float64 {
	switch {
	case bars > 19:
		return 0.04
	case bars > 12:
		return 0.05
	case bars > 8:
		return 0.1
	case bars > 4:
		return 0.2
	case bars > 2:
		return 0.25
	default:
		return 0.3
	}
}

// PlayerAssistsTeammates draws who assisted the player, the unassisted
// goals and whom the player assisted. Only non-empty panels are drawn;
// when all three are empty it returns a NO_DATA error. The unassisted panel
// shows the first entry of unassisted as a single bar.
func PlayerAssistsTeammates(received, unassisted, granted dataset.Counts, player string) (*chart.Figure, error) {
	if len(received) == 0 && len(unassisted) == 0 && len(granted) == 0 {
		return nil, errors.NoData("No charts to plot")
	}
	th := current()
	if len(unassisted) > 1 {
		unassisted = unassisted[:1]
	}
	ymax := max(received.Max(), unassisted.Max(), granted.Max()) + 1.5

	panel := func(name string, counts dataset.Counts, color string, titlePt, width float64) *chart.Axes {
		labels := boldLabels(10)
		labels.Offset = 0.05
		labels.Format = chart.FormatInt
		return &chart.Axes{
			Title:      name,
			TitleStyle: chart.TextStyle{Size: pt(titlePt), Bold: true, Color: color},
			Categories: counts.Labels(),
			XTicks:     chart.TickStyle{Size: pt(10), Rotate: 90},
			YMax:       ymax,
			Spines:     chart.BottomOnly,
			Bars: []chart.Bars{{
				Values:      counts.Values(),
				Colors:      []string{color},
				Width:       width,
				ValueLabels: labels,
			}},
		}
	}

	var panels []chart.Panel
	var ratios []float64
	if len(received) > 0 {
		ax := panel("Received Assists", received, th.Goals.Fill, 16, 0.5)
		ax.InvertX = true
		panels = append(panels, ax)
		ratios = append(ratios, 1)
	}
	if len(unassisted) > 0 {
		ax := panel("Player: "+player, unassisted, th.Points.Fill, 18, 0.7)
		ax.Categories = []string{"No Assistance"}
		ax.TitleOverflow = true
		panels = append(panels, ax)
		ratios = append(ratios, middleWidth(max(len(received), len(granted))))
	}
	if len(granted) > 0 {
		panels = append(panels, panel("Granted Assists", granted, th.Assists.Fill, 16, 0.5))
		ratios = append(ratios, 1)
	}

	fig := inches(15, 6, panels...)
	if len(panels) == 1 {
		fig = inches(10, 6, panels...)
		ratios = nil
	}
	return fig.WithRatios(ratios...).WithName("Assists With Teammates - " + player), nil
}
