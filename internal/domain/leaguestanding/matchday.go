package leaguestanding

import (
	"sort"
	"time"
)

// GroupByMatchday clusters fixtures into exactly total matchdays. Fixtures are
// ordered by date; a new matchday starts when a fixture is more than windowDays
// after the first fixture of the current one. Surplus clusters are folded by
// merging the smallest one into its successor, and missing ones are padded
// with empty matchdays. total < 1 yields no matchdays.
func GroupByMatchday(fixtures []Fixture, total, windowDays int) []Matchday {
	if total < 1 {
		return []Matchday{}
	}

	ordered := make([]Fixture, len(fixtures))
	copy(ordered, fixtures)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	clusters := make([][]Fixture, 0, total)
	var (
		current   []Fixture
		reference time.Time
	)
	for _, f := range ordered {
		if current == nil || daysBetween(reference, f.Date) > windowDays {
			if current != nil {
				clusters = append(clusters, current)
			}
			current = []Fixture{f}
			reference = f.Date
			continue
		}
		current = append(current, f)
	}
	if current != nil {
		clusters = append(clusters, current)
	}

	for len(clusters) > total {
		smallest := 0
		for i := 1; i < len(clusters)-1; i++ {
			if len(clusters[i]) < len(clusters[smallest]) {
				smallest = i
			}
		}
		clusters[smallest] = append(clusters[smallest], clusters[smallest+1]...)
		clusters = append(clusters[:smallest+1], clusters[smallest+2:]...)
	}

	out := make([]Matchday, total)
	for i := range out {
		out[i] = Matchday{Number: i + 1, Fixtures: []Fixture{}}
		if i < len(clusters) {
			out[i].Fixtures = clusters[i]
		}
	}
	return out
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
