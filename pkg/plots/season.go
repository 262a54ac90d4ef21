package plots

import (
	"cmp"
	"slices"

	"github.com/matzehuels/seasonviz/pkg/chart"
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// goalThreshold is the minimum count (exclusive) for the leader charts.
const goalThreshold = 10

func requireTable(name string, t dataset.Table) error {
	if t.Empty() {
		return errors.New(errors.ErrCodeInvalidDataset, "%s table is empty", name)
	}
	return nil
}

// tableHeight returns a figure height fitting rows at the given font size.
func tableHeight(rows int, fontPt, rowScale, extra float64) int {
	return int(float64(rows+1)*pt(fontPt)*rowScale + extra)
}

// SeasonStandingsTable renders the season standings. The points column
// (index 6) is bold.
func SeasonStandingsTable(t dataset.Table) (*chart.Figure, error) {
	if err := requireTable("standings", t); err != nil {
		return nil, err
	}
	th := current()
	tbl := &chart.Table{
		Columns:     t.Columns,
		Rows:        t.Rows,
		FontSize:    pt(10),
		Header:      th.Points,
		HeaderBold:  true,
		BoldColumns: []int{6},
		RowScale:    1.9,
		WidthScale:  1.25,
	}
	fig := chart.NewFigure(1100, tableHeight(len(t.Rows), 10, 1.9, 60), tbl)
	return fig.WithName("Season Standings"), nil
}

// PointsEvolution draws one cumulative points line per player. A nil
// players list draws every series, ordered by final points.
func PointsEvolution(series dataset.PointsSeries, players []string) (*chart.Figure, error) {
	if series.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "points series has no dates")
	}
	if len(players) == 0 {
		players = rankByFinal(series)
	}

	th := current()
	colors := theme.Cycle(th.LineCycle, len(players))
	lines := make([]chart.Line, 0, len(players))
	for i, p := range players {
		v, ok := series.Values[p]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "no points series for player %q", p)
		}
		lines = append(lines, chart.Line{Values: v, Color: colors[i], Width: 5, Label: p})
	}

	ax := &chart.Axes{
		Title:      "Score Evolution Throughout the Year",
		TitleStyle: title(20),
		XLabel:     "Date",
		YLabel:     "Score",
		Categories: series.Dates,
		XTicks:     chart.TickStyle{Size: pt(10), Rotate: 45},
		ShowYTicks: true,
		Lines:      lines,
		Legend:     chart.LegendOutsideRight,
	}
	return inches(20, 10, ax).WithName("Score Evolution"), nil
}

// rankByFinal orders series names by their last value, highest first, then
// by name.
func rankByFinal(series dataset.PointsSeries) []string {
	names := make([]string, 0, len(series.Values))
	for name := range series.Values {
		names = append(names, name)
	}
	last := func(n string) float64 {
		v := series.Values[n]
		if len(v) == 0 {
			return 0
		}
		return v[len(v)-1]
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(last(b), last(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names
}

// GoalScorersFromRecords counts raw scorer records (one entry per goal) and
// draws [GoalScorers].
func GoalScorersFromRecords(scorers []string) (*chart.Figure, error) {
	return GoalScorers(dataset.CountValues(scorers))
}

// GoalScorers draws players with more than 10 goals as horizontal bars on
// a green gradient.
func GoalScorers(counts dataset.Counts) (*chart.Figure, error) {
	return leaders(counts, scorerGradient, "Number of Goals per Player (Above 10 Goals)", "goals")
}

// AssistLeaders draws players with more than 10 assists as horizontal bars
// on a brown gradient.
func AssistLeaders(counts dataset.Counts) (*chart.Figure, error) {
	return leaders(counts, assistGradient, "Number of Assists per Player (More than 10 Assists)", "assists")
}

func leaders(counts dataset.Counts, gradient [2]string, name, what string) (*chart.Figure, error) {
	top := counts.Above(goalThreshold)
	if len(top) == 0 {
		return nil, errors.NoData("No player has more than %d %s.", goalThreshold, what)
	}
	colors, err := theme.Gradient(gradient[0], gradient[1], len(top))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build palette")
	}
	hb := &chart.HBarAxes{
		Title:      name,
		TitleStyle: title(16),
		Categories: top.Labels(),
		Values:     top.Values(),
		Colors:     colors,
		LabelStyle: chart.TextStyle{Size: pt(10)},
		ValueStyle: chart.TextStyle{Size: pt(11), Bold: true, Color: "black"},
	}
	return inches(12, 7, hb).WithName(name), nil
}

// AssistantsScorersTables renders the assists and goals rankings side by
// side. The fourth column of each is bold.
func AssistantsScorersTables(assistants, scorers dataset.Table) (*chart.Figure, error) {
	if err := requireTable("assistants", assistants); err != nil {
		return nil, err
	}
	if err := requireTable("scorers", scorers); err != nil {
		return nil, err
	}
	th := current()
	mk := func(name string, t dataset.Table, h theme.Header) *chart.Table {
		return &chart.Table{
			Title:       name,
			TitleStyle:  title(14),
			Columns:     t.Columns,
			Rows:        t.Rows,
			FontSize:    pt(10),
			Header:      h,
			HeaderBold:  true,
			BoldColumns: []int{3},
			RowScale:    1.9,
			WidthScale:  1.3,
			Placement:   chart.PlaceTop,
		}
	}
	rows := max(len(assistants.Rows), len(scorers.Rows))
	fig := chart.NewFigure(1100, tableHeight(rows, 10, 1.9, 100),
		mk("Assistants Table", assistants, th.Assists),
		mk("Scorer Table", scorers, th.Goals),
	)
	fig.Gap = 120
	return fig.WithName("Assistants and Scorers"), nil
}

// GoalsPerLocation draws matches, goals and average goals per venue.
func GoalsPerLocation(venues []dataset.Venue) (*chart.Figure, error) {
	if len(venues) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no venues")
	}
	locations := make([]string, len(venues))
	var matches, goals, average []float64
	for i, v := range venues {
		locations[i] = v.Location
		matches = append(matches, v.Matches)
		goals = append(goals, v.Goals)
		average = append(average, v.Average)
	}

	panel := func(name string, values []float64, color string, ymax float64) *chart.Axes {
		return &chart.Axes{
			Title:      name,
			TitleStyle: title(20),
			Categories: locations,
			XTicks:     chart.TickStyle{Size: pt(10), Bold: true},
			YMax:       ymax,
			Spines:     chart.BottomOnly,
			Bars: []chart.Bars{{
				Values:      values,
				Colors:      []string{color},
				Width:       0.5,
				ValueLabels: boldLabels(14),
			}},
		}
	}
	fig := inches(20, 6,
		panel("Number of Matches per Location", matches, venueColors[0], 30),
		panel("Number of Goals per Location", goals, venueColors[1], 750),
		panel("Average Goals per Location", average, venueColors[2], 35),
	)
	return fig.WithName("Goals per Location"), nil
}

// MonthlyTables renders the points, goals and assists rankings of one
// month.
func MonthlyTables(points, goals, assists dataset.Table, month string) (*chart.Figure, error) {
	th := current()
	mk := func(kind string, t dataset.Table, h theme.Header) *chart.Table {
		return &chart.Table{
			Title:      kind + " Table - " + month,
			TitleStyle: title(14),
			Columns:    t.Columns,
			Rows:       t.Rows,
			FontSize:   pt(13),
			Header:     h,
			RowScale:   1.9,
		}
	}
	if points.Empty() && goals.Empty() && assists.Empty() {
		return nil, errors.NoData("No tables for %s.", month)
	}
	fig := inches(15, 5,
		mk("Points", points, th.Points),
		mk("Goals", goals, th.Goals),
		mk("Assists", assists, th.Assists),
	)
	return fig.WithName("Monthly Tables - " + month), nil
}

// GamesGoalsMonth draws games and goals per month.
func GamesGoalsMonth(months []dataset.MonthStats) (*chart.Figure, error) {
	if len(months) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no months")
	}
	names := make([]string, len(months))
	var games, goals []float64
	for i, m := range months {
		names[i] = m.Name
		games = append(games, m.Games)
		goals = append(goals, m.Goals)
	}

	panel := func(name string, values []float64, color string, labelPt, ymax float64) *chart.Axes {
		return &chart.Axes{
			Title:      name,
			TitleStyle: title(20),
			Categories: names,
			XTicks:     chart.TickStyle{Size: pt(14), Bold: true},
			YMax:       ymax,
			Spines:     chart.BottomOnly,
			Bars: []chart.Bars{{
				Values:      values,
				Colors:      []string{color},
				Width:       0.7,
				ValueLabels: boldLabels(labelPt),
			}},
		}
	}
	fig := inches(15, 5,
		panel("Number of Games per Month", games, monthGameColor, 12, 6),
		panel("Number of Goals per Month", goals, monthGoalColor, 10, 185),
	)
	return fig.WithName("Games and Goals per Month"), nil
}

// AverageGoalsMonth draws the average goals per game of each month as a
// line with markers, labelled with two decimals.
func AverageGoalsMonth(months []dataset.MonthStats) (*chart.Figure, error) {
	if len(months) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no months")
	}
	th := current()
	names := make([]string, len(months))
	values := make([]float64, len(months))
	notes := make([]chart.Note, len(months))
	for i, m := range months {
		names[i] = m.Name
		values[i] = m.Average
		notes[i] = chart.Note{
			X:     float64(i),
			Y:     m.Average - 2,
			Text:  chart.FormatFixed2(m.Average),
			Style: chart.TextStyle{Size: pt(10), Bold: true, VAlign: chart.VAlignBottom},
		}
	}
	ax := &chart.Axes{
		Title:      "Average Goals per Month",
		TitleStyle: title(20),
		Categories: names,
		XTicks:     chart.TickStyle{Size: pt(10), Bold: true},
		YMin:       15,
		YMax:       45,
		Spines:     chart.BottomOnly,
		Lines:      []chart.Line{{Values: values, Color: th.Text, Width: 2.5, Marker: true}},
		Notes:      notes,
	}
	return inches(12, 6, ax).WithName("Average Goals per Month"), nil
}

// GoalType draws the distribution of goal types.
func GoalType(counts dataset.Counts) (*chart.Figure, error) {
	return distribution(counts, "Distribution of Goal Types", goalTypeColors, 0.8, 14, 520)
}

// GoalTime draws the distribution of goals by match segment.
func GoalTime(counts dataset.Counts) (*chart.Figure, error) {
	return distribution(counts, "Distribution of Goals by Match Segment", goalTimeColors, 0.5, 15, 450)
}

func distribution(counts dataset.Counts, name string, colors []string, width, tickPt, ymax float64) (*chart.Figure, error) {
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "%s: no counts", name)
	}
	labels := boldLabels(15)
	labels.Offset = 0.1
	ax := &chart.Axes{
		Title:      name,
		TitleStyle: title(20),
		Categories: counts.Labels(),
		XTicks:     chart.TickStyle{Size: pt(tickPt), Bold: true},
		YMax:       ymax,
		Spines:     chart.BottomOnly,
		Bars: []chart.Bars{{
			Values:      counts.Values(),
			Colors:      colors,
			Width:       width,
			ValueLabels: labels,
		}},
	}
	return inches(12, 6, ax).WithName(name), nil
}

// performanceTable is the style of the "top number of ... in a match"
// tables.
func performanceTable(name string, t dataset.Table, h theme.Header, fontPt float64) *chart.Table {
	return &chart.Table{
		Title:      name,
		TitleStyle: title(20),
		Columns:    t.Columns,
		Rows:       t.Rows,
		FontSize:   pt(fontPt),
		Header:     h,
		RowScale:   2.2,
		WidthScale: 1.6,
	}
}

// TopPerformances renders the best single-match goal and assist tallies.
func TopPerformances(topScorers, topAssistants dataset.Table) (*chart.Figure, error) {
	if err := requireTable("top scorers", topScorers); err != nil {
		return nil, err
	}
	if err := requireTable("top assistants", topAssistants); err != nil {
		return nil, err
	}
	th := current()
	rows := max(len(topScorers.Rows), len(topAssistants.Rows))
	fig := chart.NewFigure(1500, max(500, tableHeight(rows, 15, 2.2, 120)),
		performanceTable("Top Number of Goals in a Match", topScorers, th.Goals, 15),
		performanceTable("Top Number of Assists in a Match", topAssistants, th.Assists, 15),
	)
	return fig.WithName("Top Performances"), nil
}
