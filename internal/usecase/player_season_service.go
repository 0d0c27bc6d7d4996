package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultSearchLimit = 10

// PlayerMatch is one fuzzy search hit. Lower distance is closer.
type PlayerMatch struct {
	Player   string
	Distance int
}

type PlayerSeasonService struct {
	loader seasonLoader
}

func NewPlayerSeasonService(repo match.Repository, workers int, logger *logging.Logger) *PlayerSeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerSeasonService{
		loader: seasonLoader{
			repo:    repo,
			workers: workers,
			logger:  logger.Named("player_season"),
		},
	}
}

func (s *PlayerSeasonService) TopScorersYearly(ctx context.Context, n int) ([]playerstats.SeasonTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.TopScorersYearly")
	defer span.End()

	if n <= 0 {
		return nil, fmt.Errorf("%w: limit must be > 0", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return nil, err
	}
	return playerstats.TopScorers(matches, n), nil
}

func (s *PlayerSeasonService) StatsPerTeam(ctx context.Context, team string) (playerstats.TeamSeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.StatsPerTeam", attribute.String("match.team", team))
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return playerstats.TeamSeasonStats{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, involving(team))
	if err != nil {
		return playerstats.TeamSeasonStats{}, err
	}
	stats := playerstats.TeamSeason(matches, team)
	if stats.Matches == 0 {
		return playerstats.TeamSeasonStats{}, fmt.Errorf("%w: team=%s", ErrNotFound, team)
	}
	return stats, nil
}

func (s *PlayerSeasonService) TopPerformers(ctx context.Context, n int) (playerstats.Performers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.TopPerformers")
	defer span.End()

	if n <= 0 {
		return playerstats.Performers{}, fmt.Errorf("%w: limit must be > 0", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return playerstats.Performers{}, err
	}
	return playerstats.TopPerformers(matches, n), nil
}

func (s *PlayerSeasonService) EvolutionByMonthMatch(ctx context.Context, player, team, aggregation string) ([]playerstats.EvolutionRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.EvolutionByMonthMatch")
	defer span.End()

	player = strings.TrimSpace(player)
	team = strings.TrimSpace(team)
	if player == "" || team == "" {
		return nil, fmt.Errorf("%w: player and team are required", ErrInvalidInput)
	}
	agg := playerstats.Aggregation(strings.ToLower(strings.TrimSpace(aggregation)))
	if agg != playerstats.AggregateMatch && agg != playerstats.AggregateMonth {
		return nil, fmt.Errorf("%w: aggregation must be %s or %s", ErrInvalidInput, playerstats.AggregateMatch, playerstats.AggregateMonth)
	}

	matches, err := s.loader.players(ctx, involving(team))
	if err != nil {
		return nil, err
	}
	rows, err := playerstats.Evolution(matches, player, team, agg)
	if err != nil {
		if crerr.Is(err, playerstats.ErrUnknownAggregation) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}
	return rows, nil
}

// PlayerProfile sums a player's cards and action counters for team over the
// season.
func (s *PlayerSeasonService) PlayerProfile(ctx context.Context, player, team string) (playerstats.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.PlayerProfile", attribute.String("player.name", player))
	defer span.End()

	player = strings.TrimSpace(player)
	team = strings.TrimSpace(team)
	if player == "" || team == "" {
		return playerstats.Profile{}, fmt.Errorf("%w: player and team are required", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, involving(team))
	if err != nil {
		return playerstats.Profile{}, err
	}
	profile, found := playerstats.PlayerProfile(matches, player, team)
	if !found {
		return playerstats.Profile{}, fmt.Errorf("%w: no records for player=%s team=%s", ErrNotFound, player, team)
	}
	return profile, nil
}

// GoalkeeperPerformance sums a player's goalkeeper actions over the season.
// found is false when the player never made one.
func (s *PlayerSeasonService) GoalkeeperPerformance(ctx context.Context, player string) (match.GoalkeeperActions, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.GoalkeeperPerformance")
	defer span.End()

	player = strings.TrimSpace(player)
	if player == "" {
		return match.GoalkeeperActions{}, false, fmt.Errorf("%w: player is required", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return match.GoalkeeperActions{}, false, err
	}
	totals, found := playerstats.GoalkeeperTotals(matches, player)
	return totals, found, nil
}

func (s *PlayerSeasonService) GoalkeeperNames(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.GoalkeeperNames")
	defer span.End()

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return nil, err
	}
	return playerstats.GoalkeeperNames(matches), nil
}

func (s *PlayerSeasonService) TopGoalkeepers(ctx context.Context, n int) ([]playerstats.GoalkeeperRank, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.TopGoalkeepers")
	defer span.End()

	if n <= 0 {
		return nil, fmt.Errorf("%w: limit must be > 0", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return nil, err
	}
	return playerstats.TopGoalkeepers(matches, n), nil
}

func (s *PlayerSeasonService) PlayerNames(ctx context.Context, team string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.PlayerNames")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	matches, err := s.loader.players(ctx, involving(team))
	if err != nil {
		return nil, err
	}
	return playerstats.PlayerNames(matches, team), nil
}

// SearchPlayers matches query against every player name of the season,
// ignoring case and accents. Closest names come first.
func (s *PlayerSeasonService) SearchPlayers(ctx context.Context, query string, limit int) ([]PlayerMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSeasonService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}

	matches, err := s.loader.players(ctx, nil)
	if err != nil {
		return nil, err
	}

	ranks := fuzzy.RankFindNormalizedFold(query, playerstats.AllPlayerNames(matches))
	// Names arrive sorted, so equal distances stay alphabetical.
	sort.Stable(ranks)

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]PlayerMatch, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, PlayerMatch{Player: r.Target, Distance: r.Distance})
	}
	return out, nil
}

// involving keeps matches whose ID names the team, and those whose ID cannot
// tell.
func involving(team string) func(string, match.Identity, bool) bool {
	return func(_ string, identity match.Identity, ok bool) bool {
		return !ok || identity.Home == team || identity.Away == team
	}
}
