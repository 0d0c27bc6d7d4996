package usecase

import (
	"context"
	"fmt"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-analytics/internal/domain/eventstats"
	"github.com/riskibarqy/match-analytics/internal/domain/leaguestanding"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

type StandingsConfig struct {
	TotalMatchdays int
	WindowDays     int
	Workers        int
}

type StandingsService struct {
	repo   match.Repository
	cfg    StandingsConfig
	logger *logging.Logger
}

func NewStandingsService(repo match.Repository, cfg StandingsConfig, logger *logging.Logger) *StandingsService {
	if cfg.TotalMatchdays < 1 {
		cfg.TotalMatchdays = 38
	}
	if cfg.WindowDays < 0 {
		cfg.WindowDays = 3
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultSeasonWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		repo:   repo,
		cfg:    cfg,
		logger: logger.Named("standings"),
	}
}

// Matchdays groups every dated match into the configured number of rounds.
func (s *StandingsService) Matchdays(ctx context.Context) ([]leaguestanding.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Matchdays")
	defer span.End()

	matchdays, _, err := s.schedule(ctx)
	if err != nil {
		return nil, err
	}
	return matchdays, nil
}

// StandingsAfter replays matchdays 1..k and ranks the table. k=0 gives every
// known team on zero.
func (s *StandingsService) StandingsAfter(ctx context.Context, k int) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.StandingsAfter", attribute.Int("season.matchday", k))
	defer span.End()

	if k < 0 || k > s.cfg.TotalMatchdays {
		return nil, fmt.Errorf("%w: matchday must be between 0 and %d", ErrInvalidInput, s.cfg.TotalMatchdays)
	}

	matchdays, teams, err := s.schedule(ctx)
	if err != nil {
		return nil, err
	}

	fixtures := make([]leaguestanding.Fixture, 0)
	for _, md := range matchdays[:k] {
		fixtures = append(fixtures, md.Fixtures...)
	}
	results, err := s.replay(ctx, fixtures)
	if err != nil {
		return nil, err
	}

	table := leaguestanding.NewTable(teams)
	for _, r := range results {
		table.Apply(r)
	}
	return table.Ranked(), nil
}

// MatchdayResults returns the fixtures of matchday k with their scores.
func (s *StandingsService) MatchdayResults(ctx context.Context, k int) ([]leaguestanding.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.MatchdayResults", attribute.Int("season.matchday", k))
	defer span.End()

	if k < 1 || k > s.cfg.TotalMatchdays {
		return nil, fmt.Errorf("%w: matchday must be between 1 and %d", ErrInvalidInput, s.cfg.TotalMatchdays)
	}

	matchdays, _, err := s.schedule(ctx)
	if err != nil {
		return nil, err
	}
	return s.replay(ctx, matchdays[k-1].Fixtures)
}

// schedule reads the fixtures from the match IDs. IDs without teams or a date
// are skipped.
func (s *StandingsService) schedule(ctx context.Context) ([]leaguestanding.Matchday, []string, error) {
	ids, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list matches: %w", err)
	}

	fixtures := make([]leaguestanding.Fixture, 0, len(ids))
	seen := make(map[string]struct{})
	for _, id := range ids {
		identity, ok := match.ParseIdentity(id)
		if !ok {
			s.logger.DebugContext(ctx, "skip match without teams", "match_id", id)
			continue
		}
		if !identity.Scheduled {
			s.logger.DebugContext(ctx, "skip match without date", "match_id", id)
			continue
		}
		fixtures = append(fixtures, leaguestanding.Fixture{
			MatchID: id,
			Home:    identity.Home,
			Away:    identity.Away,
			Date:    identity.Date,
		})
		seen[identity.Home] = struct{}{}
		seen[identity.Away] = struct{}{}
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	return leaguestanding.GroupByMatchday(fixtures, s.cfg.TotalMatchdays, s.cfg.WindowDays), teams, nil
}

// replay scores the fixtures from their event tables. The results keep the
// order of fixtures.
func (s *StandingsService) replay(ctx context.Context, fixtures []leaguestanding.Fixture) ([]leaguestanding.Result, error) {
	mapper := iter.Mapper[leaguestanding.Fixture, leaguestanding.Result]{MaxGoroutines: s.cfg.Workers}
	results, err := mapper.MapErr(fixtures, func(f *leaguestanding.Fixture) (leaguestanding.Result, error) {
		return s.score(ctx, *f)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *StandingsService) score(ctx context.Context, f leaguestanding.Fixture) (leaguestanding.Result, error) {
	events, err := s.repo.LoadEvents(ctx, f.MatchID)
	if err != nil {
		return leaguestanding.Result{}, fmt.Errorf("load events for match %q: %w", f.MatchID, err)
	}

	first, second, err := match.TeamsOf(events)
	if err != nil {
		return leaguestanding.Result{}, fmt.Errorf("teams of match %q: %w", f.MatchID, err)
	}
	sameOrder := first == f.Home && second == f.Away
	swapped := first == f.Away && second == f.Home
	if !sameOrder && !swapped {
		return leaguestanding.Result{}, crerr.Mark(
			crerr.Newf("match %q: events carry teams %q and %q, id names %q and %q", f.MatchID, first, second, f.Home, f.Away),
			match.ErrParse,
		)
	}

	stats := eventstats.TeamStats(events, []string{f.Home, f.Away})
	return leaguestanding.Result{
		Fixture:   f,
		HomeGoals: stats[f.Home].FinalScore,
		AwayGoals: stats[f.Away].FinalScore,
	}, nil
}
