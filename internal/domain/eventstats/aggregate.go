package eventstats

import (
	"math"
	"sort"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

// TeamStats counts shots, passes, saves and goals for each team. Possession
// loss only applies to pass-family events.
func TeamStats(events []match.Event, teams []string) map[string]TeamMatchStats {
	out := make(map[string]TeamMatchStats, len(teams))
	for _, team := range teams {
		out[team] = TeamMatchStats{Team: team}
	}

	for _, ev := range events {
		stats, ok := out[ev.Team]
		if !ok {
			continue
		}
		switch {
		case ShotTypes.Has(ev.Name):
			stats.Shots++
		case PassTypes.Has(ev.Name):
			stats.Passes++
			if ev.PossessionLoss {
				stats.PossessionLoss++
			} else {
				stats.SuccessfulPasses++
			}
		case SaveTypes.Has(ev.Name):
			stats.Saves++
		case GoalTypes.Has(ev.Name):
			stats.FinalScore++
		}
		out[ev.Team] = stats
	}

	for team, stats := range out {
		if stats.Passes > 0 {
			stats.SuccessfulPassRate = float64(stats.SuccessfulPasses) / float64(stats.Passes) * 100
		}
		out[team] = stats
	}
	return out
}

// MaxMinute is the last played minute of a half: floor(max time / 60) + 1.
// A half without events yields 0.
func MaxMinute(events []match.Event, half int) int {
	last, ok := maxTime(events, half)
	if !ok {
		return 0
	}
	return toMinute(last)
}

// MaxMinuteCombined adds both halves' last event times before converting to
// minutes. An empty half contributes 0 seconds.
func MaxMinuteCombined(events []match.Event) int {
	first, okFirst := maxTime(events, match.HalfFirst)
	second, okSecond := maxTime(events, match.HalfSecond)
	if !okFirst && !okSecond {
		return 0
	}
	return toMinute(first + second)
}

// EventsInWindow selects one team's events of the given types in one half up to
// minuteCutoff. Each selected event ends where the next event in the whole
// match, ordered by (half, time), starts. The last event ends on itself.
func EventsInWindow(events []match.Event, team string, types EventSet, minuteCutoff, half int) []WindowedEvent {
	ordered := make([]match.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Half != ordered[j].Half {
			return ordered[i].Half < ordered[j].Half
		}
		return ordered[i].Time < ordered[j].Time
	})

	cutoff := float64(minuteCutoff) * 60
	out := make([]WindowedEvent, 0)
	for i, ev := range ordered {
		if ev.Team != team || ev.Half != half || ev.Time > cutoff || !types.matches(ev.Name) {
			continue
		}
		out = append(out, windowed(ordered, i, ev.Time))
	}
	return out
}

// EventsInWindowByPlayers is the whole-match variant: second-half times are
// shifted by the last first-half time into one continuous clock, then the
// players' events of the given types are selected up to minuteCutoff.
func EventsInWindowByPlayers(events []match.Event, players []string, types EventSet, minuteCutoff int) []WindowedEvent {
	firstHalfEnd, _ := maxTime(events, match.HalfFirst)

	type clocked struct {
		ev    match.Event
		clock float64
	}
	ordered := make([]clocked, len(events))
	for i, ev := range events {
		clock := ev.Time
		if ev.Half == match.HalfSecond {
			clock += firstHalfEnd
		}
		ordered[i] = clocked{ev: ev, clock: clock}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].clock != ordered[j].clock {
			return ordered[i].clock < ordered[j].clock
		}
		return ordered[i].ev.Half < ordered[j].ev.Half
	})

	wanted := make(map[string]struct{}, len(players))
	for _, p := range players {
		wanted[p] = struct{}{}
	}

	flat := make([]match.Event, len(ordered))
	for i := range ordered {
		flat[i] = ordered[i].ev
	}

	cutoff := float64(minuteCutoff) * 60
	out := make([]WindowedEvent, 0)
	for i, item := range ordered {
		if _, ok := wanted[item.ev.Player]; !ok {
			continue
		}
		if item.clock > cutoff || !types.matches(item.ev.Name) {
			continue
		}
		out = append(out, windowed(flat, i, item.clock))
	}
	return out
}

// PlayerEventLocations returns the pitch points of one player's events. An
// empty type set selects every event (touches).
func PlayerEventLocations(events []match.Event, player string, types EventSet) []PitchPoint {
	out := make([]PitchPoint, 0)
	for _, ev := range events {
		if ev.Player != player || !types.matches(ev.Name) {
			continue
		}
		out = append(out, Normalize(ev.X, ev.Y, ev.Half))
	}
	return out
}

func windowed(ordered []match.Event, i int, clock float64) WindowedEvent {
	ev := ordered[i]
	endX, endY := ev.X, ev.Y
	if i+1 < len(ordered) {
		endX, endY = ordered[i+1].X, ordered[i+1].Y
	}
	return WindowedEvent{
		Event: ev,
		EndX:  endX,
		EndY:  endY,
		Clock: clock,
		Start: Normalize(ev.X, ev.Y, ev.Half),
		End:   Normalize(endX, endY, ev.Half),
	}
}

func maxTime(events []match.Event, half int) (float64, bool) {
	var (
		last  float64
		found bool
	)
	for _, ev := range events {
		if ev.Half != half {
			continue
		}
		if !found || ev.Time > last {
			last = ev.Time
			found = true
		}
	}
	return last, found
}

func toMinute(seconds float64) int {
	return int(math.Floor(seconds/60)) + 1
}
