package leaguestanding

import (
	"sort"
	"strings"
)

const (
	pointsWin  = 3
	pointsDraw = 1
	formLength = 5
)

// Table accumulates standings for one replay. It is not safe for concurrent use.
type Table struct {
	rows map[string]*Standing
	form map[string][]byte
}

// NewTable returns a zeroed table for the given teams.
func NewTable(teams []string) *Table {
	t := &Table{
		rows: make(map[string]*Standing, len(teams)),
		form: make(map[string][]byte, len(teams)),
	}
	for _, team := range teams {
		t.ensure(team)
	}
	return t
}

// Apply records one result. Teams unknown to the table are added.
func (t *Table) Apply(r Result) {
	home := t.ensure(r.Home)
	away := t.ensure(r.Away)

	home.Played++
	away.Played++
	home.GoalsFor += r.HomeGoals
	home.GoalsAgainst += r.AwayGoals
	away.GoalsFor += r.AwayGoals
	away.GoalsAgainst += r.HomeGoals
	home.GoalDifference = home.GoalsFor - home.GoalsAgainst
	away.GoalDifference = away.GoalsFor - away.GoalsAgainst

	switch {
	case r.HomeGoals > r.AwayGoals:
		home.Won++
		home.Points += pointsWin
		away.Lost++
		t.pushForm(r.Home, 'W')
		t.pushForm(r.Away, 'L')
	case r.HomeGoals < r.AwayGoals:
		away.Won++
		away.Points += pointsWin
		home.Lost++
		t.pushForm(r.Home, 'L')
		t.pushForm(r.Away, 'W')
	default:
		home.Drawn++
		away.Drawn++
		home.Points += pointsDraw
		away.Points += pointsDraw
		t.pushForm(r.Home, 'D')
		t.pushForm(r.Away, 'D')
	}
}

// Ranked returns the table ordered by points, goal difference and goals for,
// with team name as the final tie-break. Positions are 1-based.
func (t *Table) Ranked() []Standing {
	out := make([]Standing, 0, len(t.rows))
	for team, row := range t.rows {
		s := *row
		s.Form = string(t.form[team])
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return strings.Compare(a.Team, b.Team) < 0
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func (t *Table) ensure(team string) *Standing {
	if row, ok := t.rows[team]; ok {
		return row
	}
	row := &Standing{Team: team}
	t.rows[team] = row
	return row
}

func (t *Table) pushForm(team string, result byte) {
	form := append(t.form[team], result)
	if len(form) > formLength {
		form = form[len(form)-formLength:]
	}
	t.form[team] = form
}
