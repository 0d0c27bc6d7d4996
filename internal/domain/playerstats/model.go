package playerstats

import (
	"time"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

// MatchPlayers is one match's player table together with its ID metadata.
// HasIdentity is false when the ID does not follow the "<date> <home> v <away>" form.
type MatchPlayers struct {
	MatchID     string
	Identity    match.Identity
	HasIdentity bool
	Players     []match.PlayerRecord
}

// SeasonTotals are one player's sums across the matches folded.
type SeasonTotals struct {
	Rank        int
	Player      string
	Goals       int
	XG          float64
	Minutes     int
	Appearances int
}

// TeamSeasonStats summarises one team's season from its player tables.
type TeamSeasonStats struct {
	Team       string
	Scorers    []SeasonTotals
	Matches    int
	Wins       int
	Draws      int
	Losses     int
	HomeWins   int
	HomeDraws  int
	HomeLosses int
	TotalXG    float64
}

// PerformerRow is one line of a season leaderboard.
type PerformerRow struct {
	Rank        int
	Player      string
	Value       float64
	Appearances int
}

// Performers are four independently ranked season leaderboards.
type Performers struct {
	Scorers   []PerformerRow
	Passers   []PerformerRow
	Shooters  []PerformerRow
	Defenders []PerformerRow
}

type Aggregation string

const (
	AggregateMatch Aggregation = "match"
	AggregateMonth Aggregation = "month"
)

// EvolutionRow is one period of a player's season. For match rows Period is
// the match ID; for month rows it is the English month name.
type EvolutionRow struct {
	Period  string
	Date    time.Time
	Goals   int
	XG      float64
	Minutes int
}

// GoalkeeperRank ranks a goalkeeper by goals conceded per match played.
type GoalkeeperRank struct {
	Rank             int
	Player           string
	Matches          int
	GoalsConceded    int
	ConcededPerMatch float64
	Saves            int
}

// Profile is one player's season for a team: discipline plus the
// counters drawn on the performance radar.
type Profile struct {
	Player      string
	Team        string
	Matches     int
	Minutes     int
	Goals       int
	YellowCards int
	RedCards    int
	Counters    match.Counters
}
