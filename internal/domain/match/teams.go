package match

import crerr "github.com/cockroachdb/errors"

// TeamsOf returns the first two distinct team names in event order. The table
// must carry exactly two teams; anything else is ErrTeamCount.
func TeamsOf(events []Event) (string, string, error) {
	teams := make([]string, 0, 2)
	seen := make(map[string]struct{}, 2)
	for _, ev := range events {
		if ev.Team == "" {
			continue
		}
		if _, ok := seen[ev.Team]; ok {
			continue
		}
		seen[ev.Team] = struct{}{}
		teams = append(teams, ev.Team)
	}

	if len(teams) != 2 {
		return "", "", crerr.Wrapf(ErrTeamCount, "found %d teams %q", len(teams), teams)
	}
	return teams[0], teams[1], nil
}
