package dataset

import (
	"github.com/matzehuels/seasonviz/pkg/errors"
)

// Section names a top-level part of a season file.
type Section string

const (
	SectionStandings       Section = "standings"
	SectionPoints          Section = "points"
	SectionGoals           Section = "goals"
	SectionAssists         Section = "assists"
	SectionAssistantsTable Section = "assistants_table"
	SectionScorersTable    Section = "scorers_table"
	SectionVenues          Section = "venues"
	SectionMonths          Section = "months"
	SectionMonthTables     Section = "month_tables"
	SectionGoalTypes       Section = "goal_types"
	SectionGoalTimes       Section = "goal_times"
	SectionTopScorers      Section = "top_scorers"
	SectionTopAssistants   Section = "top_assistants"
	SectionPlayers         Section = "players"
	SectionPairings        Section = "pairings"
)

// Has reports whether the section carries data.
func (s *Season) Has(sec Section) bool {
	switch sec {
	case SectionStandings:
		return !s.Standings.Empty()
	case SectionPoints:
		return !s.Points.Empty()
	case SectionGoals:
		return len(s.Scorers) > 0 || len(s.Goals) > 0
	case SectionAssists:
		return len(s.Assists) > 0
	case SectionAssistantsTable:
		return !s.AssistantsTable.Empty()
	case SectionScorersTable:
		return !s.ScorersTable.Empty()
	case SectionVenues:
		return len(s.Venues) > 0
	case SectionMonths:
		return len(s.Months) > 0
	case SectionMonthTables:
		return len(s.MonthTables) > 0
	case SectionGoalTypes:
		return len(s.GoalTypes) > 0
	case SectionGoalTimes:
		return len(s.GoalTimes) > 0
	case SectionTopScorers:
		return !s.TopScorers.Empty()
	case SectionTopAssistants:
		return !s.TopAssistants.Empty()
	case SectionPlayers:
		return len(s.Players) > 0
	case SectionPairings:
		return len(s.Pairings) > 0
	}
	return false
}

// Require returns an INVALID_DATASET error naming the first missing section.
func (s *Season) Require(secs ...Section) error {
	for _, sec := range secs {
		if !s.Has(sec) {
			return errors.New(errors.ErrCodeInvalidDataset, "dataset has no %q section", sec)
		}
	}
	return nil
}

// GoalCounts returns goals per player. Raw scorer records are counted when
// present, otherwise the precomputed counts are returned.
func (s *Season) GoalCounts() Counts {
	if len(s.Scorers) > 0 {
		return CountValues(s.Scorers)
	}
	return s.Goals
}

// Player returns the drill-down data of the named player.
func (s *Season) Player(name string) (*Player, error) {
	if err := errors.ValidatePlayerName(name); err != nil {
		return nil, err
	}
	for i := range s.Players {
		if s.Players[i].Name == name {
			return &s.Players[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidDataset, "unknown player %q", name)
}

// PlayerNames returns the names of all players with drill-down data.
func (s *Season) PlayerNames() []string {
	out := make([]string, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Name
	}
	return out
}

// Month returns the ranking tables of month (1-12).
func (s *Season) Month(month int) (*MonthTables, error) {
	if err := errors.ValidateMonth(month); err != nil {
		return nil, err
	}
	for i := range s.MonthTables {
		if s.MonthTables[i].Month == month {
			return &s.MonthTables[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidDataset, "no tables for month %d", month)
}

// Links returns the shared-match counts around player: the player's own
// teammate counts plus any pairings among those teammates.
func (s *Season) Links(player string) ([]Pairing, error) {
	p, err := s.Player(player)
	if err != nil {
		return nil, err
	}
	circle := make(map[string]bool, len(p.Teammates))
	var out []Pairing
	for _, t := range p.Teammates {
		circle[t.Label] = true
		out = append(out, Pairing{A: player, B: t.Label, Matches: int(t.Value)})
	}
	for _, pr := range s.Pairings {
		if circle[pr.A] && circle[pr.B] {
			out = append(out, pr)
		}
	}
	return out, nil
}
