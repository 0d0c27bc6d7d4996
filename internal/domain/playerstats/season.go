package playerstats

import (
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

var ErrUnknownAggregation = crerr.New("unknown evolution aggregation")

// seasonMonths is the league calendar order. June and July are off-season.
var seasonMonths = []time.Month{
	time.August, time.September, time.October, time.November, time.December,
	time.January, time.February, time.March, time.April, time.May,
}

// TeamSeason folds every match the team played. A match whose ID names two
// other teams is skipped; otherwise it counts when the team has rows in it.
// The outcome comes from the team's own Result column.
func TeamSeason(matches []MatchPlayers, team string) TeamSeasonStats {
	out := TeamSeasonStats{Team: team}
	scorers := make(map[string]*SeasonTotals)

	for _, m := range matches {
		if !playedIn(m, team) {
			continue
		}

		rows := make([]match.PlayerRecord, 0)
		for _, p := range m.Players {
			if p.Team == team {
				rows = append(rows, p)
			}
		}
		if len(rows) == 0 {
			continue
		}

		out.Matches++
		home := m.HasIdentity && m.Identity.Home == team
		switch rows[0].Result {
		case match.ResultWin:
			out.Wins++
			if home {
				out.HomeWins++
			}
		case match.ResultDraw:
			out.Draws++
			if home {
				out.HomeDraws++
			}
		case match.ResultLoss:
			out.Losses++
			if home {
				out.HomeLosses++
			}
		}

		for _, p := range rows {
			s, ok := scorers[p.Name]
			if !ok {
				s = &SeasonTotals{Player: p.Name}
				scorers[p.Name] = s
			}
			s.Goals += p.Goals
			s.XG += p.XG
			s.Minutes += p.Minutes
			if p.Minutes > 0 {
				s.Appearances++
			}
			out.TotalXG += p.XG
		}
	}

	out.Scorers = make([]SeasonTotals, 0, len(scorers))
	for _, s := range scorers {
		out.Scorers = append(out.Scorers, *s)
	}
	sortScorers(out.Scorers, false)
	rankTotals(out.Scorers)
	return out
}

// playedIn is false only when the match ID names two other teams.
func playedIn(m MatchPlayers, team string) bool {
	return !m.HasIdentity || m.Identity.Home == team || m.Identity.Away == team
}

// Evolution builds a player's per-match or per-month series for one team,
// using the same match membership rule as TeamSeason.
// Match rows are chronological with undated matches last; month rows follow
// the August to May season order and skip months without a match.
func Evolution(matches []MatchPlayers, player, team string, aggregation Aggregation) ([]EvolutionRow, error) {
	if aggregation != AggregateMatch && aggregation != AggregateMonth {
		return nil, crerr.Wrapf(ErrUnknownAggregation, "aggregation %q", aggregation)
	}

	type dated struct {
		row       EvolutionRow
		scheduled bool
	}
	rows := make([]dated, 0)
	for _, m := range matches {
		if !playedIn(m, team) {
			continue
		}
		for _, p := range m.Players {
			if p.Name != player || p.Team != team {
				continue
			}
			d := dated{
				row: EvolutionRow{
					Period:  m.MatchID,
					Goals:   p.Goals,
					XG:      p.XG,
					Minutes: p.Minutes,
				},
				scheduled: m.HasIdentity && m.Identity.Scheduled,
			}
			if d.scheduled {
				d.row.Date = m.Identity.Date
			}
			rows = append(rows, d)
			break
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].scheduled != rows[j].scheduled {
			return rows[i].scheduled
		}
		return rows[i].row.Date.Before(rows[j].row.Date)
	})

	if aggregation == AggregateMatch {
		out := make([]EvolutionRow, 0, len(rows))
		for _, d := range rows {
			out = append(out, d.row)
		}
		return out, nil
	}

	byMonth := make(map[time.Month]*EvolutionRow)
	for _, d := range rows {
		if !d.scheduled {
			continue
		}
		month := d.row.Date.Month()
		agg, ok := byMonth[month]
		if !ok {
			agg = &EvolutionRow{Period: month.String()}
			byMonth[month] = agg
		}
		agg.Goals += d.row.Goals
		agg.XG += d.row.XG
		agg.Minutes += d.row.Minutes
	}

	out := make([]EvolutionRow, 0, len(byMonth))
	for _, month := range seasonMonths {
		if agg, ok := byMonth[month]; ok {
			out = append(out, *agg)
		}
	}
	return out, nil
}
