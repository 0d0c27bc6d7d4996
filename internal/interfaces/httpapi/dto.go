package httpapi

import (
	"time"

	"github.com/riskibarqy/match-analytics/internal/domain/eventstats"
	"github.com/riskibarqy/match-analytics/internal/domain/leaguestanding"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/match-analytics/internal/usecase"
)

const dateLayout = "2006-01-02"

type matchSummaryDTO struct {
	ID     string `json:"id"`
	Home   string `json:"home,omitempty"`
	Away   string `json:"away,omitempty"`
	Date   string `json:"date,omitempty"`
	Parsed bool   `json:"parsed"`
}

type teamStatsDTO struct {
	Team               string  `json:"team"`
	Shots              int     `json:"shots"`
	Passes             int     `json:"passes"`
	SuccessfulPasses   int     `json:"successful_passes"`
	SuccessfulPassRate float64 `json:"successful_pass_rate"`
	PossessionLoss     int     `json:"possession_loss"`
	Saves              int     `json:"saves"`
	FinalScore         int     `json:"final_score"`
}

type goalScorerDTO struct {
	Player  string    `json:"player"`
	Minutes []float64 `json:"minutes"`
}

type teamGoalsDTO struct {
	Team    string          `json:"team"`
	Scorers []goalScorerDTO `json:"scorers"`
}

type maxMinuteDTO struct {
	FirstHalf  int `json:"first_half"`
	SecondHalf int `json:"second_half"`
	Total      int `json:"total"`
}

type matchOverviewDTO struct {
	ID        string         `json:"id"`
	Home      string         `json:"home"`
	Away      string         `json:"away"`
	Date      string         `json:"date,omitempty"`
	TeamStats []teamStatsDTO `json:"team_stats"`
	Goals     []teamGoalsDTO `json:"goals"`
	MaxMinute maxMinuteDTO   `json:"max_minute"`
}

type pitchPointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type windowedEventDTO struct {
	Event          string        `json:"event"`
	Half           int           `json:"half"`
	Time           float64       `json:"time"`
	Clock          float64       `json:"clock"`
	Player         string        `json:"player"`
	Team           string        `json:"team"`
	X              float64       `json:"x"`
	Y              float64       `json:"y"`
	EndX           float64       `json:"end_x"`
	EndY           float64       `json:"end_y"`
	PossessionLoss bool          `json:"possession_loss"`
	Start          pitchPointDTO `json:"start"`
	End            pitchPointDTO `json:"end"`
}

type fixtureDTO struct {
	MatchID string `json:"match_id"`
	Home    string `json:"home"`
	Away    string `json:"away"`
	Date    string `json:"date"`
}

type matchdayDTO struct {
	Number   int          `json:"number"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type resultDTO struct {
	fixtureDTO
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

type seasonTotalsDTO struct {
	Rank        int     `json:"rank,omitempty"`
	Player      string  `json:"player"`
	Goals       int     `json:"goals"`
	XG          float64 `json:"xg"`
	Minutes     int     `json:"minutes"`
	Appearances int     `json:"appearances"`
}

type teamSeasonDTO struct {
	Team       string            `json:"team"`
	Matches    int               `json:"matches"`
	Wins       int               `json:"wins"`
	Draws      int               `json:"draws"`
	Losses     int               `json:"losses"`
	HomeWins   int               `json:"home_wins"`
	HomeDraws  int               `json:"home_draws"`
	HomeLosses int               `json:"home_losses"`
	TotalXG    float64           `json:"total_xg"`
	Scorers    []seasonTotalsDTO `json:"scorers"`
}

type performerDTO struct {
	Rank        int     `json:"rank"`
	Player      string  `json:"player"`
	Value       float64 `json:"value"`
	Appearances int     `json:"appearances"`
}

type performersDTO struct {
	Scorers   []performerDTO `json:"scorers"`
	Passers   []performerDTO `json:"passers"`
	Shooters  []performerDTO `json:"shooters"`
	Defenders []performerDTO `json:"defenders"`
}

type evolutionRowDTO struct {
	Period  string  `json:"period"`
	Date    string  `json:"date,omitempty"`
	Goals   int     `json:"goals"`
	XG      float64 `json:"xg"`
	Minutes int     `json:"minutes"`
}

type goalkeeperActionsDTO struct {
	Player    string `json:"player"`
	Save      int    `json:"save"`
	Catch     int    `json:"catch"`
	Punch     int    `json:"punch"`
	DropCatch int    `json:"drop_catch"`
	PickUp    int    `json:"pick_up"`
	Kick      int    `json:"kick"`
	Throw     int    `json:"throw"`
	GoalKick  int    `json:"goal_kick"`
}

type playerProfileDTO struct {
	Player      string `json:"player"`
	Team        string `json:"team"`
	Matches     int    `json:"matches"`
	Minutes     int    `json:"minutes"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Goals       int    `json:"goals"`
	Shot        int    `json:"shot"`
	Pass        int    `json:"pass"`
	Dribble     int    `json:"dribble"`
	Block       int    `json:"block"`
	Foul        int    `json:"foul"`
	Tackle      int    `json:"tackle"`
	Clearance   int    `json:"clearance"`
	Cross       int    `json:"cross"`
	Touch       int    `json:"touch"`
}

type goalkeeperRankDTO struct {
	Rank             int     `json:"rank"`
	Player           string  `json:"player"`
	Matches          int     `json:"matches"`
	GoalsConceded    int     `json:"goals_conceded"`
	ConcededPerMatch float64 `json:"conceded_per_match"`
	Saves            int     `json:"saves"`
}

type playerMatchDTO struct {
	Player   string `json:"player"`
	Distance int    `json:"distance"`
}

func formatDate(t time.Time, scheduled bool) string {
	if !scheduled {
		return ""
	}
	return t.Format(dateLayout)
}

func matchSummaryToDTO(m usecase.MatchSummary) matchSummaryDTO {
	out := matchSummaryDTO{ID: m.ID, Parsed: m.HasIdentity}
	if m.HasIdentity {
		out.Home = m.Identity.Home
		out.Away = m.Identity.Away
		out.Date = formatDate(m.Identity.Date, m.Identity.Scheduled)
	}
	return out
}

func teamStatsToDTO(s eventstats.TeamMatchStats) teamStatsDTO {
	return teamStatsDTO{
		Team:               s.Team,
		Shots:              s.Shots,
		Passes:             s.Passes,
		SuccessfulPasses:   s.SuccessfulPasses,
		SuccessfulPassRate: s.SuccessfulPassRate,
		PossessionLoss:     s.PossessionLoss,
		Saves:              s.Saves,
		FinalScore:         s.FinalScore,
	}
}

func matchOverviewToDTO(m usecase.MatchOverview) matchOverviewDTO {
	out := matchOverviewDTO{
		ID:        m.ID,
		Home:      m.Home,
		Away:      m.Away,
		TeamStats: make([]teamStatsDTO, 0, len(m.TeamStats)),
		Goals:     make([]teamGoalsDTO, 0, len(m.Goals)),
		MaxMinute: maxMinuteDTO{
			FirstHalf:  m.MaxMinuteFirst,
			SecondHalf: m.MaxMinuteSecond,
			Total:      m.MaxMinuteCombined,
		},
	}
	if m.HasIdentity {
		out.Date = formatDate(m.Identity.Date, m.Identity.Scheduled)
	}
	for _, s := range m.TeamStats {
		out.TeamStats = append(out.TeamStats, teamStatsToDTO(s))
	}
	for _, g := range m.Goals {
		scorers := make([]goalScorerDTO, 0, len(g.Scorers))
		for _, s := range g.Scorers {
			scorers = append(scorers, goalScorerDTO{Player: s.Player, Minutes: s.Minutes})
		}
		out.Goals = append(out.Goals, teamGoalsDTO{Team: g.Team, Scorers: scorers})
	}
	return out
}

func pitchPointsToDTO(points []eventstats.PitchPoint) []pitchPointDTO {
	out := make([]pitchPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, pitchPointDTO{X: p.X, Y: p.Y})
	}
	return out
}

func windowedEventsToDTO(events []eventstats.WindowedEvent) []windowedEventDTO {
	out := make([]windowedEventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, windowedEventDTO{
			Event:          ev.Name,
			Half:           ev.Half,
			Time:           ev.Time,
			Clock:          ev.Clock,
			Player:         ev.Player,
			Team:           ev.Team,
			X:              ev.X,
			Y:              ev.Y,
			EndX:           ev.EndX,
			EndY:           ev.EndY,
			PossessionLoss: ev.PossessionLoss,
			Start:          pitchPointDTO{X: ev.Start.X, Y: ev.Start.Y},
			End:            pitchPointDTO{X: ev.End.X, Y: ev.End.Y},
		})
	}
	return out
}

func fixtureToDTO(f leaguestanding.Fixture) fixtureDTO {
	return fixtureDTO{
		MatchID: f.MatchID,
		Home:    f.Home,
		Away:    f.Away,
		Date:    f.Date.Format(dateLayout),
	}
}

func matchdaysToDTO(matchdays []leaguestanding.Matchday) []matchdayDTO {
	out := make([]matchdayDTO, 0, len(matchdays))
	for _, md := range matchdays {
		fixtures := make([]fixtureDTO, 0, len(md.Fixtures))
		for _, f := range md.Fixtures {
			fixtures = append(fixtures, fixtureToDTO(f))
		}
		out = append(out, matchdayDTO{Number: md.Number, Fixtures: fixtures})
	}
	return out
}

func resultsToDTO(results []leaguestanding.Result) []resultDTO {
	out := make([]resultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, resultDTO{
			fixtureDTO: fixtureToDTO(r.Fixture),
			HomeGoals:  r.HomeGoals,
			AwayGoals:  r.AwayGoals,
		})
	}
	return out
}

func standingsToDTO(rows []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, standingDTO{
			Position:       s.Position,
			Team:           s.Team,
			Played:         s.Played,
			Won:            s.Won,
			Drawn:          s.Drawn,
			Lost:           s.Lost,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference,
			Points:         s.Points,
			Form:           s.Form,
		})
	}
	return out
}

func seasonTotalsToDTO(rows []playerstats.SeasonTotals) []seasonTotalsDTO {
	out := make([]seasonTotalsDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, seasonTotalsDTO{
			Rank:        r.Rank,
			Player:      r.Player,
			Goals:       r.Goals,
			XG:          r.XG,
			Minutes:     r.Minutes,
			Appearances: r.Appearances,
		})
	}
	return out
}

func teamSeasonToDTO(s playerstats.TeamSeasonStats) teamSeasonDTO {
	return teamSeasonDTO{
		Team:       s.Team,
		Matches:    s.Matches,
		Wins:       s.Wins,
		Draws:      s.Draws,
		Losses:     s.Losses,
		HomeWins:   s.HomeWins,
		HomeDraws:  s.HomeDraws,
		HomeLosses: s.HomeLosses,
		TotalXG:    s.TotalXG,
		Scorers:    seasonTotalsToDTO(s.Scorers),
	}
}

func performerRowsToDTO(rows []playerstats.PerformerRow) []performerDTO {
	out := make([]performerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, performerDTO{Rank: r.Rank, Player: r.Player, Value: r.Value, Appearances: r.Appearances})
	}
	return out
}

func performersToDTO(p playerstats.Performers) performersDTO {
	return performersDTO{
		Scorers:   performerRowsToDTO(p.Scorers),
		Passers:   performerRowsToDTO(p.Passers),
		Shooters:  performerRowsToDTO(p.Shooters),
		Defenders: performerRowsToDTO(p.Defenders),
	}
}

func evolutionToDTO(rows []playerstats.EvolutionRow, aggregation string) []evolutionRowDTO {
	out := make([]evolutionRowDTO, 0, len(rows))
	for _, r := range rows {
		row := evolutionRowDTO{Period: r.Period, Goals: r.Goals, XG: r.XG, Minutes: r.Minutes}
		if aggregation == string(playerstats.AggregateMatch) {
			row.Date = formatDate(r.Date, !r.Date.IsZero())
		}
		out = append(out, row)
	}
	return out
}

func goalkeeperActionsToDTO(player string, g match.GoalkeeperActions) goalkeeperActionsDTO {
	return goalkeeperActionsDTO{
		Player:    player,
		Save:      g.Save,
		Catch:     g.Catch,
		Punch:     g.Punch,
		DropCatch: g.DropCatch,
		PickUp:    g.PickUp,
		Kick:      g.Kick,
		Throw:     g.Throw,
		GoalKick:  g.GoalKick,
	}
}

func playerProfileToDTO(p playerstats.Profile) playerProfileDTO {
	return playerProfileDTO{
		Player:      p.Player,
		Team:        p.Team,
		Matches:     p.Matches,
		Minutes:     p.Minutes,
		YellowCards: p.YellowCards,
		RedCards:    p.RedCards,
		Goals:       p.Goals,
		Shot:        p.Counters.Shot,
		Pass:        p.Counters.Pass,
		Dribble:     p.Counters.Dribble,
		Block:       p.Counters.Block,
		Foul:        p.Counters.Foul,
		Tackle:      p.Counters.Tackle,
		Clearance:   p.Counters.Clearance,
		Cross:       p.Counters.Cross,
		Touch:       p.Counters.Touch,
	}
}

func goalkeeperRanksToDTO(rows []playerstats.GoalkeeperRank) []goalkeeperRankDTO {
	out := make([]goalkeeperRankDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, goalkeeperRankDTO{
			Rank:             r.Rank,
			Player:           r.Player,
			Matches:          r.Matches,
			GoalsConceded:    r.GoalsConceded,
			ConcededPerMatch: r.ConcededPerMatch,
			Saves:            r.Saves,
		})
	}
	return out
}

func playerMatchesToDTO(rows []usecase.PlayerMatch) []playerMatchDTO {
	out := make([]playerMatchDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, playerMatchDTO{Player: r.Player, Distance: r.Distance})
	}
	return out
}
