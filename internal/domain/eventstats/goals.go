package eventstats

import (
	"sort"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

const halfLengthMinutes = 45.0

// GoalMinute converts an event time to a match minute. Second-half goals are
// offset by 45 minutes.
func GoalMinute(ev match.Event) float64 {
	minute := ev.Time / 60
	if ev.Half == match.HalfSecond {
		minute += halfLengthMinutes
	}
	return minute
}

// GoalScorers pairs the team's scoring players with their goal minutes, ordered
// by first goal. Players listed with goals but without matching goal events are
// left out, so no entry has an empty minute list.
func GoalScorers(players []match.PlayerRecord, events []match.Event, team string) []GoalScorer {
	candidates := make(map[string]struct{})
	for _, p := range players {
		if p.Team == team && p.Goals > 0 {
			candidates[p.Name] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return []GoalScorer{}
	}

	minutes := make(map[string][]float64, len(candidates))
	for _, ev := range events {
		if ev.Team != team || !GoalTypes.Has(ev.Name) {
			continue
		}
		if _, ok := candidates[ev.Player]; !ok {
			continue
		}
		minutes[ev.Player] = append(minutes[ev.Player], GoalMinute(ev))
	}

	out := make([]GoalScorer, 0, len(minutes))
	for player, list := range minutes {
		sort.Float64s(list)
		out = append(out, GoalScorer{Player: player, Minutes: list})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minutes[0] != out[j].Minutes[0] {
			return out[i].Minutes[0] < out[j].Minutes[0]
		}
		return out[i].Player < out[j].Player
	})
	return out
}
