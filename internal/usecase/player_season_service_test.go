package usecase

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	matchmock "github.com/riskibarqy/match-analytics/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func TestPlayerSeasonService_TopScorersYearly(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	got, err := svc.TopScorersYearly(context.Background(), 2)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(got))
	}
	if got[0].Player != "RVP" || got[0].Goals != 3 || got[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[1].Player != "Suarez" {
		t.Fatalf("expected xG to break the one-goal tie, got %s", got[1].Player)
	}

	if _, err := svc.TopScorersYearly(context.Background(), 0); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerSeasonService_StatsPerTeam(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	got, err := svc.StatsPerTeam(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("stats per team: %v", err)
	}
	if got.Matches != 3 || got.Wins != 2 || got.Draws != 1 || got.Losses != 0 {
		t.Fatalf("unexpected record: matches=%d w=%d d=%d l=%d", got.Matches, got.Wins, got.Draws, got.Losses)
	}
	if got.HomeWins != 1 {
		t.Fatalf("unexpected home wins: got=%d want=1", got.HomeWins)
	}
	if got.Scorers[0].Player != "RVP" || got.Scorers[0].Goals != 3 {
		t.Fatalf("unexpected top scorer: %+v", got.Scorers[0])
	}

	if _, err := svc.StatsPerTeam(context.Background(), "Everton"); !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerSeasonService_StatsPerTeamSkipsOtherFixturesUsingMockery(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	other := "01.09.11 Chelsea v Liverpool"
	own := "08.09.11 Arsenal v Tottenham"

	repo.On("ListMatches", mock.Anything).Return([]string{other, own}, nil).Once()
	repo.On("LoadPlayers", mock.Anything, own).Return([]match.PlayerRecord{
		{Name: "RVP", Team: "Arsenal", Result: match.ResultWin, Goals: 1, Minutes: 90},
	}, nil).Once()

	svc := NewPlayerSeasonService(repo, 2, nil)
	got, err := svc.StatsPerTeam(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("stats per team: %v", err)
	}
	if got.Matches != 1 || got.HomeWins != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	repo.AssertNotCalled(t, "LoadPlayers", mock.Anything, other)
}

func TestPlayerSeasonService_LoadFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	id := "01.09.11 Arsenal v Chelsea"

	repo.On("ListMatches", mock.Anything).Return([]string{id}, nil).Once()
	repo.On("LoadPlayers", mock.Anything, id).Return(nil, crerr.Mark(crerr.New("file gone"), match.ErrIO)).Once()

	svc := NewPlayerSeasonService(repo, 2, nil)
	if _, err := svc.TopScorersYearly(context.Background(), 5); !crerr.Is(err, match.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestPlayerSeasonService_TopPerformers(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	got, err := svc.TopPerformers(context.Background(), 1)
	if err != nil {
		t.Fatalf("top performers: %v", err)
	}
	if got.Passers[0].Player != "Arteta" || got.Passers[0].Value != 60 {
		t.Fatalf("unexpected top passer: %+v", got.Passers[0])
	}
	if got.Shooters[0].Player != "RVP" || got.Shooters[0].Value != 5 {
		t.Fatalf("unexpected top shooter: %+v", got.Shooters[0])
	}
	if got.Defenders[0].Player != "Arteta" || got.Defenders[0].Value != 3 {
		t.Fatalf("unexpected top defender: %+v", got.Defenders[0])
	}
}

func TestPlayerSeasonService_EvolutionByMonthMatch(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	ctx := context.Background()

	byMatch, err := svc.EvolutionByMonthMatch(ctx, "RVP", "Arsenal", "match")
	if err != nil {
		t.Fatalf("evolution by match: %v", err)
	}
	wantPeriods := []string{matchArsenalChelsea, matchLiverpoolArsenal, matchOpenDay}
	if len(byMatch) != len(wantPeriods) {
		t.Fatalf("unexpected row count: got=%d want=%d", len(byMatch), len(wantPeriods))
	}
	for i, row := range byMatch {
		if row.Period != wantPeriods[i] {
			t.Fatalf("unexpected period %d: got=%s want=%s", i, row.Period, wantPeriods[i])
		}
	}

	byMonth, err := svc.EvolutionByMonthMatch(ctx, "RVP", "Arsenal", "Month")
	if err != nil {
		t.Fatalf("evolution by month: %v", err)
	}
	if len(byMonth) != 1 || byMonth[0].Period != "August" || byMonth[0].Goals != 2 || byMonth[0].Minutes != 180 {
		t.Fatalf("unexpected month rows: %+v", byMonth)
	}

	if _, err := svc.EvolutionByMonthMatch(ctx, "RVP", "Arsenal", "week"); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerSeasonService_Goalkeepers(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	ctx := context.Background()

	totals, found, err := svc.GoalkeeperPerformance(ctx, "Cech")
	if err != nil {
		t.Fatalf("goalkeeper performance: %v", err)
	}
	if !found || totals.Save != 5 {
		t.Fatalf("unexpected goalkeeper totals: found=%v saves=%d", found, totals.Save)
	}
	if _, found, _ := svc.GoalkeeperPerformance(ctx, "RVP"); found {
		t.Fatalf("expected outfield player to have no goalkeeper actions")
	}

	names, err := svc.GoalkeeperNames(ctx)
	if err != nil {
		t.Fatalf("goalkeeper names: %v", err)
	}
	if len(names) != 1 || names[0] != "Cech" {
		t.Fatalf("unexpected goalkeeper names: %v", names)
	}

	ranked, err := svc.TopGoalkeepers(ctx, 5)
	if err != nil {
		t.Fatalf("top goalkeepers: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Matches != 2 || ranked[0].GoalsConceded != 3 || ranked[0].ConcededPerMatch != 1.5 {
		t.Fatalf("unexpected goalkeeper ranking: %+v", ranked)
	}
}

func TestPlayerSeasonService_PlayerProfile(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	ctx := context.Background()

	profile, err := svc.PlayerProfile(ctx, "RVP", "Arsenal")
	if err != nil {
		t.Fatalf("player profile: %v", err)
	}
	if profile.Matches != 3 || profile.Goals != 3 || profile.Minutes != 210 {
		t.Fatalf("unexpected profile totals: %+v", profile)
	}
	if profile.YellowCards != 1 || profile.RedCards != 0 {
		t.Fatalf("unexpected cards: yellow=%d red=%d", profile.YellowCards, profile.RedCards)
	}
	if profile.Counters.Shot != 5 || profile.Counters.Pass != 20 {
		t.Fatalf("unexpected counters: %+v", profile.Counters)
	}

	if _, err := svc.PlayerProfile(ctx, "RVP", "Chelsea"); !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for player outside team, got %v", err)
	}
	if _, err := svc.PlayerProfile(ctx, "RVP", " "); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without team, got %v", err)
	}
}

func TestPlayerSeasonService_PlayerNamesAndSearch(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSeasonService(seasonRepository(), 2, nil)
	ctx := context.Background()

	names, err := svc.PlayerNames(ctx, "Arsenal")
	if err != nil {
		t.Fatalf("player names: %v", err)
	}
	if len(names) != 2 || names[0] != "Arteta" || names[1] != "RVP" {
		t.Fatalf("unexpected names: %v", names)
	}

	hits, err := svc.SearchPlayers(ctx, "suar", 0)
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	if len(hits) == 0 || hits[0].Player != "Suarez" {
		t.Fatalf("unexpected search hits: %+v", hits)
	}

	if _, err := svc.SearchPlayers(ctx, " ", 5); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
