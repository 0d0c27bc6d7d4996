package eventstats

import "github.com/riskibarqy/match-analytics/internal/domain/match"

// EventSet is an immutable set of event names.
type EventSet struct {
	names map[string]struct{}
}

func NewEventSet(names ...string) EventSet {
	set := EventSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.names[name] = struct{}{}
	}
	return set
}

func (s EventSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Empty reports whether the set matches nothing. An empty set passed as a
// filter means "every event".
func (s EventSet) Empty() bool {
	return len(s.names) == 0
}

func (s EventSet) matches(name string) bool {
	return s.Empty() || s.Has(name)
}

var (
	ShotTypes = NewEventSet("Shot", "Direct Free Kick Cross", "Header shot")
	PassTypes = NewEventSet(
		"Pass", "Cross", "Corner Pass", "Clearance",
		"Direct Free Kick Pass", "Goal Kick",
		"GoalKeeper kick", "Indirect Free Kick Pass",
	)
	SaveTypes = NewEventSet("Goalkeeper Save", "Goalkeeper Save Catch")
	GoalTypes = NewEventSet(match.EventGoal)
)

// TeamMatchStats are one team's counts for a single match.
type TeamMatchStats struct {
	Team               string
	Shots              int
	Passes             int
	SuccessfulPasses   int
	PossessionLoss     int
	Saves              int
	FinalScore         int
	SuccessfulPassRate float64
}

// PitchPoint is a location in the renderer's 0..100 pitch space.
type PitchPoint struct {
	X float64
	Y float64
}

// WindowedEvent is an event selected by a time window, with the trajectory
// endpoint taken from the event that follows it in time.
type WindowedEvent struct {
	match.Event
	EndX  float64
	EndY  float64
	Clock float64
	Start PitchPoint
	End   PitchPoint
}

// GoalScorer lists one player's goal minutes in ascending order.
type GoalScorer struct {
	Player  string
	Minutes []float64
}
