package dataset

import (
	"fmt"
	"time"
)

// Season is the full input of the league report.
type Season struct {
	Name string `json:"name" toml:"name"`

	// Standings is the per-player season table (position, name, games,
	// wins, draws, losses, points, efficiency, goals, assists).
	Standings Table `json:"standings" toml:"standings"`

	Points PointsSeries `json:"points" toml:"points"`

	// Scorers holds one entry per goal, naming the scorer. When present it
	// takes precedence over Goals and is counted on demand.
	Scorers []string `json:"scorers,omitempty" toml:"scorers,omitempty"`
	Goals   Counts   `json:"goals,omitempty" toml:"goals,omitempty"`
	Assists Counts   `json:"assists,omitempty" toml:"assists,omitempty"`

	AssistantsTable Table `json:"assistants_table" toml:"assistants_table"`
	ScorersTable    Table `json:"scorers_table" toml:"scorers_table"`

	Venues []Venue      `json:"venues,omitempty" toml:"venues,omitempty"`
	Months []MonthStats `json:"months,omitempty" toml:"months,omitempty"`

	MonthTables []MonthTables `json:"month_tables,omitempty" toml:"month_tables,omitempty"`

	GoalTypes Counts `json:"goal_types,omitempty" toml:"goal_types,omitempty"`
	GoalTimes Counts `json:"goal_times,omitempty" toml:"goal_times,omitempty"`

	TopScorers    Table `json:"top_scorers" toml:"top_scorers"`
	TopAssistants Table `json:"top_assistants" toml:"top_assistants"`

	Players []Player `json:"players,omitempty" toml:"players,omitempty"`

	// Pairings lists shared-match counts between any two players. It
	// complements each player's own teammate counts in network charts.
	Pairings []Pairing `json:"pairings,omitempty" toml:"pairings,omitempty"`
}

// PointsSeries is the cumulative points of each player on each match date.
type PointsSeries struct {
	Dates  []string             `json:"dates" toml:"dates"`
	Values map[string][]float64 `json:"values" toml:"values"`
}

// Empty reports whether the series has no dates.
func (p PointsSeries) Empty() bool { return len(p.Dates) == 0 }

// Venue is the per-location match aggregate.
type Venue struct {
	Location string  `json:"location" toml:"location"`
	Matches  float64 `json:"matches" toml:"matches"`
	Goals    float64 `json:"goals" toml:"goals"`
	Average  float64 `json:"average" toml:"average"`
}

// MonthStats is the per-month match aggregate.
type MonthStats struct {
	Name    string  `json:"name" toml:"name"`
	Games   float64 `json:"games" toml:"games"`
	Goals   float64 `json:"goals" toml:"goals"`
	Average float64 `json:"average" toml:"average"`
}

// MonthTables are the three ranking tables of one month.
type MonthTables struct {
	Month   int    `json:"month" toml:"month"` // 1-12
	Name    string `json:"name,omitempty" toml:"name,omitempty"`
	Points  Table  `json:"points" toml:"points"`
	Goals   Table  `json:"goals" toml:"goals"`
	Assists Table  `json:"assists" toml:"assists"`
}

// MonthName returns the display name, defaulting to the English month name.
func (m MonthTables) MonthName() string {
	if m.Name != "" {
		return m.Name
	}
	if m.Month >= 1 && m.Month <= 12 {
		return time.Month(m.Month).String()
	}
	return fmt.Sprintf("Month %d", m.Month)
}

// Pairing is the number of matches two players played on the same team.
type Pairing struct {
	A       string `json:"a" toml:"a"`
	B       string `json:"b" toml:"b"`
	Matches int    `json:"matches" toml:"matches"`
}

// Player is the drill-down data of one player.
type Player struct {
	Name    string  `json:"name" toml:"name"`
	Summary Summary `json:"summary" toml:"summary"`

	// Classification is the standings excerpt around the player.
	Classification Table `json:"classification" toml:"classification"`
	ScorersAround  Table `json:"scorers_around" toml:"scorers_around"`
	AssistsAround  Table `json:"assists_around" toml:"assists_around"`

	TopScorerGames Table `json:"top_scorer_games" toml:"top_scorer_games"`
	TopAssistGames Table `json:"top_assist_games" toml:"top_assist_games"`

	Teammates      Counts          `json:"teammates,omitempty" toml:"teammates,omitempty"`
	TeammateMax    float64         `json:"teammate_max,omitempty" toml:"teammate_max,omitempty"`
	TeammateRecord []TeammateStats `json:"teammate_record,omitempty" toml:"teammate_record,omitempty"`

	Involvement Involvement `json:"involvement" toml:"involvement"`
	ByPeriod    Grouped     `json:"by_period" toml:"by_period"`
	ByGoalType  Grouped     `json:"by_goal_type" toml:"by_goal_type"`

	ReceivedAssists Counts `json:"received_assists,omitempty" toml:"received_assists,omitempty"`
	Unassisted      Counts `json:"unassisted,omitempty" toml:"unassisted,omitempty"`
	GrantedAssists  Counts `json:"granted_assists,omitempty" toml:"granted_assists,omitempty"`
}

// HasGoals reports whether the player has any top scoring games.
func (p *Player) HasGoals() bool { return !p.TopScorerGames.Empty() }

// HasAssists reports whether the player has any top assisting games.
func (p *Player) HasAssists() bool { return !p.TopAssistGames.Empty() }

// MaxTeammateMatches returns TeammateMax, or the largest teammate count when
// it is unset.
func (p *Player) MaxTeammateMatches() float64 {
	if p.TeammateMax > 0 {
		return p.TeammateMax
	}
	return p.Teammates.Max()
}

// Summary are the scalar aggregates printed on the player card.
type Summary struct {
	Games          int    `json:"games" toml:"games"`
	Wins           int    `json:"wins" toml:"wins"`
	Draws          int    `json:"draws" toml:"draws"`
	Losses         int    `json:"losses" toml:"losses"`
	Points         int    `json:"points" toml:"points"`
	Efficiency     string `json:"efficiency" toml:"efficiency"`
	Participations int    `json:"participations" toml:"participations"`
	Goals          int    `json:"goals" toml:"goals"`
	Assists        int    `json:"assists" toml:"assists"`
}

// TeammateStats is the result record of the chosen player alongside one
// teammate.
type TeammateStats struct {
	Teammate   string `json:"teammate" toml:"teammate"`
	Wins       int    `json:"wins" toml:"wins"`
	Draws      int    `json:"draws" toml:"draws"`
	Losses     int    `json:"losses" toml:"losses"`
	Efficiency string `json:"efficiency" toml:"efficiency"`
}

// Games returns wins + draws + losses.
func (t TeammateStats) Games() int { return t.Wins + t.Draws + t.Losses }

// Involvement is the split of a player's direct goal involvement.
type Involvement struct {
	Goals   int `json:"goals" toml:"goals"`
	Assists int `json:"assists" toml:"assists"`
}

// Total returns goals + assists.
func (i Involvement) Total() int { return i.Goals + i.Assists }

// GoalShare returns the percentage of involvement that are goals.
func (i Involvement) GoalShare() float64 { return i.share(i.Goals) }

// AssistShare returns the percentage of involvement that are assists.
func (i Involvement) AssistShare() float64 { return i.share(i.Assists) }

func (i Involvement) share(n int) float64 {
	if i.Total() == 0 {
		return 0
	}
	return float64(n) / float64(i.Total()) * 100
}

// Grouped holds three aligned series over the same labels: total
// involvement, goals and assists.
type Grouped struct {
	Labels  []string  `json:"labels" toml:"labels"`
	Total   []float64 `json:"total" toml:"total"`
	Goals   []float64 `json:"goals" toml:"goals"`
	Assists []float64 `json:"assists" toml:"assists"`
}

// Empty reports whether there are no labels.
func (g Grouped) Empty() bool { return len(g.Labels) == 0 }
