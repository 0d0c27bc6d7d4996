package playerstats

import (
	"sort"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

type accumulator struct {
	totals      SeasonTotals
	counters    match.Counters
	goalkeeping match.GoalkeeperActions
}

// foldPlayers sums every record per exact player name.
func foldPlayers(matches []MatchPlayers, keep func(match.PlayerRecord) bool) map[string]*accumulator {
	acc := make(map[string]*accumulator)
	for _, m := range matches {
		for _, p := range m.Players {
			if keep != nil && !keep(p) {
				continue
			}
			a, ok := acc[p.Name]
			if !ok {
				a = &accumulator{totals: SeasonTotals{Player: p.Name}}
				acc[p.Name] = a
			}
			a.totals.Goals += p.Goals
			a.totals.XG += p.XG
			a.totals.Minutes += p.Minutes
			if p.Minutes > 0 {
				a.totals.Appearances++
			}
			a.counters = a.counters.Add(p.Counters)
			a.goalkeeping = a.goalkeeping.Add(p.Goalkeeping)
		}
	}
	return acc
}

// TopScorers ranks players by season goals, then xG, then name. n <= 0 yields
// an empty table.
func TopScorers(matches []MatchPlayers, n int) []SeasonTotals {
	acc := foldPlayers(matches, nil)
	out := make([]SeasonTotals, 0, len(acc))
	for _, a := range acc {
		out = append(out, a.totals)
	}
	sortScorers(out, true)
	return rankTotals(truncate(out, n))
}

// TopPerformers builds the goals, passes, shots and interceptions-per-appearance
// leaderboards.
func TopPerformers(matches []MatchPlayers, n int) Performers {
	acc := foldPlayers(matches, nil)

	scorers := make([]PerformerRow, 0, len(acc))
	passers := make([]PerformerRow, 0, len(acc))
	shooters := make([]PerformerRow, 0, len(acc))
	defenders := make([]PerformerRow, 0, len(acc))
	for name, a := range acc {
		apps := a.totals.Appearances
		scorers = append(scorers, PerformerRow{Player: name, Value: float64(a.totals.Goals), Appearances: apps})
		passers = append(passers, PerformerRow{Player: name, Value: float64(a.counters.Pass), Appearances: apps})
		shooters = append(shooters, PerformerRow{Player: name, Value: float64(a.counters.Shot), Appearances: apps})

		var perMatch float64
		if apps > 0 {
			perMatch = float64(a.counters.Interception) / float64(apps)
		}
		defenders = append(defenders, PerformerRow{Player: name, Value: perMatch, Appearances: apps})
	}

	return Performers{
		Scorers:   rankPerformers(scorers, n),
		Passers:   rankPerformers(passers, n),
		Shooters:  rankPerformers(shooters, n),
		Defenders: rankPerformers(defenders, n),
	}
}

// PlayerNames lists the distinct players seen for team, sorted.
func PlayerNames(matches []MatchPlayers, team string) []string {
	return distinctNames(matches, func(p match.PlayerRecord) bool { return p.Team == team })
}

// AllPlayerNames lists every distinct player of the season, sorted.
func AllPlayerNames(matches []MatchPlayers) []string {
	return distinctNames(matches, nil)
}

// PlayerProfile sums a player's records for team over the season. An empty
// team matches every team. found is false when the player has no record.
func PlayerProfile(matches []MatchPlayers, player, team string) (Profile, bool) {
	profile := Profile{Player: player, Team: team}
	for _, m := range matches {
		for _, p := range m.Players {
			if p.Name != player || (team != "" && p.Team != team) {
				continue
			}
			profile.Matches++
			profile.Minutes += p.Minutes
			profile.Goals += p.Goals
			profile.YellowCards += p.YellowCards
			profile.RedCards += p.RedCards
			profile.Counters = profile.Counters.Add(p.Counters)
		}
	}
	return profile, profile.Matches > 0
}

// GoalkeeperTotals sums a player's goalkeeper counters over the season. found
// is false when the player never recorded a goalkeeper action.
func GoalkeeperTotals(matches []MatchPlayers, player string) (match.GoalkeeperActions, bool) {
	var total match.GoalkeeperActions
	for _, m := range matches {
		for _, p := range m.Players {
			if p.Name == player {
				total = total.Add(p.Goalkeeping)
			}
		}
	}
	return total, total.Any()
}

// GoalkeeperNames lists players with at least one goalkeeper action, sorted.
func GoalkeeperNames(matches []MatchPlayers) []string {
	acc := foldPlayers(matches, nil)
	out := make([]string, 0)
	for name, a := range acc {
		if a.goalkeeping.Any() {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// TopGoalkeepers ranks goalkeepers by goals conceded per match, fewest first.
// A goalkeeper's match is one where their row has any goalkeeper action; the
// goals conceded are the opponents' summed goals in that match.
func TopGoalkeepers(matches []MatchPlayers, n int) []GoalkeeperRank {
	ranks := make(map[string]*GoalkeeperRank)
	for _, m := range matches {
		goalsByTeam := make(map[string]int)
		total := 0
		for _, p := range m.Players {
			goalsByTeam[p.Team] += p.Goals
			total += p.Goals
		}
		for _, p := range m.Players {
			if !p.Goalkeeping.Any() {
				continue
			}
			r, ok := ranks[p.Name]
			if !ok {
				r = &GoalkeeperRank{Player: p.Name}
				ranks[p.Name] = r
			}
			r.Matches++
			r.GoalsConceded += total - goalsByTeam[p.Team]
			r.Saves += p.Goalkeeping.Save
		}
	}

	out := make([]GoalkeeperRank, 0, len(ranks))
	for _, r := range ranks {
		r.ConcededPerMatch = float64(r.GoalsConceded) / float64(r.Matches)
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ConcededPerMatch != b.ConcededPerMatch {
			return a.ConcededPerMatch < b.ConcededPerMatch
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return a.Player < b.Player
	})
	out = truncate(out, n)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func distinctNames(matches []MatchPlayers, keep func(match.PlayerRecord) bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range matches {
		for _, p := range m.Players {
			if keep != nil && !keep(p) {
				continue
			}
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}

// sortScorers orders by goals desc, then xG desc when withXG, then name.
func sortScorers(rows []SeasonTotals, withXG bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if withXG && a.XG != b.XG {
			return a.XG > b.XG
		}
		return a.Player < b.Player
	})
}

func rankTotals(rows []SeasonTotals) []SeasonTotals {
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func rankPerformers(rows []PerformerRow, n int) []PerformerRow {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Player < rows[j].Player
	})
	rows = truncate(rows, n)
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func truncate[T any](rows []T, n int) []T {
	if n <= 0 {
		return rows[:0]
	}
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
