package plots

import (
	"slices"
	"strings"

	"github.com/matzehuels/seasonviz/pkg/chart"
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
)

// Params selects what a chart is drawn for.
type Params struct {
	// Player is required by player charts.
	Player string

	// Month (1-12) is required by monthly charts.
	Month int

	// Players limits the points evolution chart. Nil draws every series.
	Players []string
}

// Chart describes a chart that can be built from a whole season.
type Chart struct {
	Name        string
	Description string

	// Sections lists the dataset sections the chart reads.
	Sections []dataset.Section

	NeedsPlayer bool
	NeedsMonth  bool

	build func(s *dataset.Season, p Params) (Drawing, error)
}

// Build checks the chart's requirements and draws it from s.
func (c Chart) Build(s *dataset.Season, p Params) (Drawing, error) {
	if c.NeedsPlayer {
		if strings.TrimSpace(p.Player) == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chart %s requires a player", c.Name)
		}
		if err := errors.ValidatePlayerName(p.Player); err != nil {
			return nil, err
		}
	}
	if c.NeedsMonth {
		if err := errors.ValidateMonth(p.Month); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "chart %s requires a month", c.Name)
		}
	}
	if err := s.Require(c.Sections...); err != nil {
		return nil, err
	}
	return c.build(s, p)
}

func figure(fig *chart.Figure, err error) (Drawing, error) {
	if err != nil {
		return nil, err
	}
	return FigureDrawing(fig, current()), nil
}

func withPlayer(fn func(pl *dataset.Player) (*chart.Figure, error)) func(*dataset.Season, Params) (Drawing, error) {
	return func(s *dataset.Season, p Params) (Drawing, error) {
		pl, err := s.Player(p.Player)
		if err != nil {
			return nil, err
		}
		return figure(fn(pl))
	}
}

var charts = []Chart{
	{
		Name:        "season-standings",
		Description: "Season standings table",
		Sections:    []dataset.Section{dataset.SectionStandings},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(SeasonStandingsTable(s.Standings))
		},
	},
	{
		Name:        "points-evolution",
		Description: "Cumulative points per player over the season",
		Sections:    []dataset.Section{dataset.SectionPoints},
		build: func(s *dataset.Season, p Params) (Drawing, error) {
			return figure(PointsEvolution(s.Points, p.Players))
		},
	},
	{
		Name:        "goal-scorers",
		Description: "Players with more than 10 goals",
		Sections:    []dataset.Section{dataset.SectionGoals},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(GoalScorers(s.GoalCounts()))
		},
	},
	{
		Name:        "assist-leaders",
		Description: "Players with more than 10 assists",
		Sections:    []dataset.Section{dataset.SectionAssists},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(AssistLeaders(s.Assists))
		},
	},
	{
		Name:        "assistants-scorers-tables",
		Description: "Assists and goals ranking tables",
		Sections:    []dataset.Section{dataset.SectionAssistantsTable, dataset.SectionScorersTable},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(AssistantsScorersTables(s.AssistantsTable, s.ScorersTable))
		},
	},
	{
		Name:        "goals-per-location",
		Description: "Matches, goals and average goals per venue",
		Sections:    []dataset.Section{dataset.SectionVenues},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(GoalsPerLocation(s.Venues))
		},
	},
	{
		Name:        "monthly-tables",
		Description: "Points, goals and assists tables of one month",
		Sections:    []dataset.Section{dataset.SectionMonthTables},
		NeedsMonth:  true,
		build: func(s *dataset.Season, p Params) (Drawing, error) {
			m, err := s.Month(p.Month)
			if err != nil {
				return nil, err
			}
			return figure(MonthlyTables(m.Points, m.Goals, m.Assists, m.MonthName()))
		},
	},
	{
		Name:        "games-goals-month",
		Description: "Games and goals per month",
		Sections:    []dataset.Section{dataset.SectionMonths},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(GamesGoalsMonth(s.Months))
		},
	},
	{
		Name:        "average-goals-month",
		Description: "Average goals per game by month",
		Sections:    []dataset.Section{dataset.SectionMonths},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(AverageGoalsMonth(s.Months))
		},
	},
	{
		Name:        "goal-type",
		Description: "Distribution of goal types",
		Sections:    []dataset.Section{dataset.SectionGoalTypes},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(GoalType(s.GoalTypes))
		},
	},
	{
		Name:        "goal-time",
		Description: "Distribution of goals by match segment",
		Sections:    []dataset.Section{dataset.SectionGoalTimes},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(GoalTime(s.GoalTimes))
		},
	},
	{
		Name:        "top-performances",
		Description: "Most goals and assists in a single match",
		Sections:    []dataset.Section{dataset.SectionTopScorers, dataset.SectionTopAssistants},
		build: func(s *dataset.Season, _ Params) (Drawing, error) {
			return figure(TopPerformances(s.TopScorers, s.TopAssistants))
		},
	},
	{
		Name:        "player-stats",
		Description: "Player summary card",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: func(s *dataset.Season, p Params) (Drawing, error) {
			pl, err := s.Player(p.Player)
			if err != nil {
				return nil, err
			}
			return CardDrawing(PlayerStats(pl.Name, pl.Summary)), nil
		},
	},
	{
		Name:        "player-classification",
		Description: "Standings around a player",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerClassification(pl.Classification, pl.Name)
		}),
	},
	{
		Name:        "player-goals-assists-classification",
		Description: "Goal and assist rankings around a player",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerGoalsAssistsClassification(pl.ScorersAround, pl.AssistsAround, pl.Name)
		}),
	},
	{
		Name:        "player-best-performance",
		Description: "A player's best scoring and assisting matches",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerBestPerformance(pl.TopScorerGames, pl.TopAssistGames, pl.Name, pl.HasGoals(), pl.HasAssists())
		}),
	},
	{
		Name:        "frequent-teammates",
		Description: "Matches played alongside each teammate",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return FrequentTeammates(pl.Teammates, pl.Name, pl.MaxTeammateMatches())
		}),
	},
	{
		Name:        "win-lose-teammate",
		Description: "Wins, draws, losses and efficiency alongside each teammate",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			var top float64
			for _, r := range pl.TeammateRecord {
				top = max(top, float64(r.Games()))
			}
			return WinLoseTeammate(pl.TeammateRecord, top, pl.Name)
		}),
	},
	{
		Name:        "player-involvement",
		Description: "A player's goals and assists as one stacked bar",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerInvolvement(pl.Involvement, pl.Name)
		}),
	},
	{
		Name:        "player-involvement-period",
		Description: "A player's involvement by game period",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerInvolvementPeriod(pl.ByPeriod, pl.Name)
		}),
	},
	{
		Name:        "player-involvement-type",
		Description: "A player's involvement by goal type",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerInvolvementType(pl.ByGoalType, pl.Name)
		}),
	},
	{
		Name:        "player-assists-teammates",
		Description: "Assists received from and granted to teammates",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: withPlayer(func(pl *dataset.Player) (*chart.Figure, error) {
			return PlayerAssistsTeammates(pl.ReceivedAssists, pl.Unassisted, pl.GrantedAssists, pl.Name)
		}),
	},
	{
		Name:        "teammate-network",
		Description: "Shared-match network around a player",
		Sections:    []dataset.Section{dataset.SectionPlayers},
		NeedsPlayer: true,
		build: func(s *dataset.Season, p Params) (Drawing, error) {
			links, err := s.Links(p.Player)
			if err != nil {
				return nil, err
			}
			dot, err := TeammateNetwork(links, p.Player)
			if err != nil {
				return nil, err
			}
			return GraphDrawing(dot), nil
		},
	},
}

// Charts returns every registered chart in report order.
func Charts() []Chart {
	return slices.Clone(charts)
}

// Names returns the names of all registered charts.
func Names() []string {
	out := make([]string, len(charts))
	for i, c := range charts {
		out[i] = c.Name
	}
	return out
}

// Lookup returns the chart registered under name.
func Lookup(name string) (Chart, error) {
	for _, c := range charts {
		if c.Name == name {
			return c, nil
		}
	}
	return Chart{}, errors.New(errors.ErrCodeInvalidChart, "unknown chart %q (see 'seasonviz charts')", name)
}
