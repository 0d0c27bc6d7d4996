package leaguestanding

import "time"

// Standing represents a league table row for one team.
type Standing struct {
	Team           string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Fixture is a scheduled match taken from its ID.
type Fixture struct {
	MatchID string
	Home    string
	Away    string
	Date    time.Time
}

// Result is a played fixture with its final score.
type Result struct {
	Fixture
	HomeGoals int
	AwayGoals int
}

// Matchday is one round of the league calendar. Number is 1-based.
type Matchday struct {
	Number   int
	Fixtures []Fixture
}
