package dataset

import (
	"github.com/matzehuels/seasonviz/pkg/errors"
)

// Validate checks the structural well-formedness of every present section.
func (s *Season) Validate() error {
	tables := []struct {
		name string
		t    Table
	}{
		{"standings", s.Standings},
		{"assistants_table", s.AssistantsTable},
		{"scorers_table", s.ScorersTable},
		{"top_scorers", s.TopScorers},
		{"top_assistants", s.TopAssistants},
	}
	for _, tt := range tables {
		if err := tt.t.Validate(tt.name); err != nil {
			return err
		}
	}

	if err := s.Points.validate(); err != nil {
		return err
	}

	seenMonth := make(map[int]bool)
	for _, m := range s.MonthTables {
		if err := errors.ValidateMonth(m.Month); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "month_tables")
		}
		if seenMonth[m.Month] {
			return errors.New(errors.ErrCodeInvalidDataset, "month_tables: duplicate month %d", m.Month)
		}
		seenMonth[m.Month] = true
		for _, t := range []struct {
			name string
			t    Table
		}{{"points", m.Points}, {"goals", m.Goals}, {"assists", m.Assists}} {
			if err := t.t.Validate("month_tables." + m.MonthName() + "." + t.name); err != nil {
				return err
			}
		}
	}

	seenPlayer := make(map[string]bool)
	for i := range s.Players {
		p := &s.Players[i]
		if err := errors.ValidatePlayerName(p.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "players[%d]", i)
		}
		if seenPlayer[p.Name] {
			return errors.New(errors.ErrCodeInvalidDataset, "players: duplicate player %q", p.Name)
		}
		seenPlayer[p.Name] = true
		if err := p.validate(); err != nil {
			return err
		}
	}

	for i, pr := range s.Pairings {
		if pr.A == "" || pr.B == "" {
			return errors.New(errors.ErrCodeInvalidDataset, "pairings[%d]: both players are required", i)
		}
		if pr.Matches < 0 {
			return errors.New(errors.ErrCodeInvalidDataset, "pairings[%d]: negative match count", i)
		}
	}
	return nil
}

func (p PointsSeries) validate() error {
	for name, v := range p.Values {
		if len(v) != len(p.Dates) {
			return errors.New(errors.ErrCodeInvalidDataset,
				"points: series %q has %d values for %d dates", name, len(v), len(p.Dates))
		}
	}
	return nil
}

func (p *Player) validate() error {
	prefix := "players." + p.Name + "."
	tables := []struct {
		name string
		t    Table
	}{
		{"classification", p.Classification},
		{"scorers_around", p.ScorersAround},
		{"assists_around", p.AssistsAround},
		{"top_scorer_games", p.TopScorerGames},
		{"top_assist_games", p.TopAssistGames},
	}
	for _, tt := range tables {
		if err := tt.t.Validate(prefix + tt.name); err != nil {
			return err
		}
	}
	for _, g := range []struct {
		name string
		g    Grouped
	}{{"by_period", p.ByPeriod}, {"by_goal_type", p.ByGoalType}} {
		if err := g.g.validate(prefix + g.name); err != nil {
			return err
		}
	}
	if p.Involvement.Goals < 0 || p.Involvement.Assists < 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "%sinvolvement: negative count", prefix)
	}
	return nil
}

func (g Grouped) validate(name string) error {
	n := len(g.Labels)
	for _, s := range []struct {
		name string
		v    []float64
	}{{"total", g.Total}, {"goals", g.Goals}, {"assists", g.Assists}} {
		if len(s.v) != n {
			return errors.New(errors.ErrCodeInvalidDataset,
				"%s: %s has %d values for %d labels", name, s.name, len(s.v), n)
		}
	}
	return nil
}
