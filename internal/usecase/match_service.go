package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/match-analytics/internal/domain/eventstats"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	EventKindShots   = "shots"
	EventKindPasses  = "passes"
	EventKindSaves   = "saves"
	EventKindGoals   = "goals"
	EventKindTouches = "touches"
)

// MatchSummary is one entry of the match list.
type MatchSummary struct {
	ID          string
	Identity    match.Identity
	HasIdentity bool
}

// TeamGoals lists the scorers of one side of a match.
type TeamGoals struct {
	Team    string
	Scorers []eventstats.GoalScorer
}

// MatchOverview is everything the single-match dashboard shows before any
// time window is applied.
type MatchOverview struct {
	ID                string
	Identity          match.Identity
	HasIdentity       bool
	Home              string
	Away              string
	TeamStats         []eventstats.TeamMatchStats
	Goals             []TeamGoals
	MaxMinuteFirst    int
	MaxMinuteSecond   int
	MaxMinuteCombined int
}

type EventWindowInput struct {
	MatchID string
	Team    string
	Kind    string
	Minute  int
	Half    int
}

type PlayerWindowInput struct {
	MatchID string
	Players []string
	Kind    string
	Minute  int
}

type PlayerLocationsInput struct {
	Player  string
	Kind    string
	MatchID string
}

type MatchService struct {
	repo    match.Repository
	workers int
	logger  *logging.Logger
}

func NewMatchService(repo match.Repository, workers int, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		repo:    repo,
		workers: workers,
		logger:  logger.Named("match"),
	}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	ids, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]MatchSummary, 0, len(ids))
	for _, id := range ids {
		identity, ok := match.ParseIdentity(id)
		out = append(out, MatchSummary{ID: id, Identity: identity, HasIdentity: ok})
	}
	return out, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (MatchOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch", attribute.String("match.id", matchID))
	defer span.End()

	if err := s.ensureMatch(ctx, matchID); err != nil {
		return MatchOverview{}, err
	}

	events, err := s.repo.LoadEvents(ctx, matchID)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("load events for match %q: %w", matchID, err)
	}
	players, err := s.repo.LoadPlayers(ctx, matchID)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("load players for match %q: %w", matchID, err)
	}

	home, away, err := match.TeamsOf(events)
	if err != nil {
		return MatchOverview{}, fmt.Errorf("teams of match %q: %w", matchID, err)
	}
	identity, ok := match.ParseIdentity(matchID)
	if ok {
		// The filename order is the home/away order when it names the same teams.
		if identity.Home == away && identity.Away == home {
			home, away = away, home
		}
	}

	stats := eventstats.TeamStats(events, []string{home, away})
	return MatchOverview{
		ID:          matchID,
		Identity:    identity,
		HasIdentity: ok,
		Home:        home,
		Away:        away,
		TeamStats:   []eventstats.TeamMatchStats{stats[home], stats[away]},
		Goals: []TeamGoals{
			{Team: home, Scorers: eventstats.GoalScorers(players, events, home)},
			{Team: away, Scorers: eventstats.GoalScorers(players, events, away)},
		},
		MaxMinuteFirst:    eventstats.MaxMinute(events, match.HalfFirst),
		MaxMinuteSecond:   eventstats.MaxMinute(events, match.HalfSecond),
		MaxMinuteCombined: eventstats.MaxMinuteCombined(events),
	}, nil
}

// EventsInWindow returns one team's events of a kind in one half. A zero
// minute means the whole half.
func (s *MatchService) EventsInWindow(ctx context.Context, input EventWindowInput) ([]eventstats.WindowedEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.EventsInWindow",
		attribute.String("match.id", input.MatchID),
		attribute.String("match.team", input.Team),
	)
	defer span.End()

	types, err := windowEventTypes(input.Kind)
	if err != nil {
		return nil, err
	}
	if input.Half != match.HalfFirst && input.Half != match.HalfSecond {
		return nil, fmt.Errorf("%w: half must be %d or %d", ErrInvalidInput, match.HalfFirst, match.HalfSecond)
	}
	if input.Minute < 0 {
		return nil, fmt.Errorf("%w: minute must be >= 0", ErrInvalidInput)
	}
	team := strings.TrimSpace(input.Team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	events, err := s.matchEvents(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	home, away, err := match.TeamsOf(events)
	if err != nil {
		return nil, fmt.Errorf("teams of match %q: %w", input.MatchID, err)
	}
	if team != home && team != away {
		return nil, fmt.Errorf("%w: team=%s did not play match=%s", ErrNotFound, team, input.MatchID)
	}

	minute := input.Minute
	if minute == 0 {
		minute = eventstats.MaxMinute(events, input.Half)
	}
	return eventstats.EventsInWindow(events, team, types, minute, input.Half), nil
}

// EventsByPlayers is the whole-match window for a set of players. A zero
// minute means the whole match.
func (s *MatchService) EventsByPlayers(ctx context.Context, input PlayerWindowInput) ([]eventstats.WindowedEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.EventsByPlayers", attribute.String("match.id", input.MatchID))
	defer span.End()

	types, err := windowEventTypes(input.Kind)
	if err != nil {
		return nil, err
	}
	if input.Minute < 0 {
		return nil, fmt.Errorf("%w: minute must be >= 0", ErrInvalidInput)
	}
	players := make([]string, 0, len(input.Players))
	for _, p := range input.Players {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}

	events, err := s.matchEvents(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	minute := input.Minute
	if minute == 0 {
		minute = eventstats.MaxMinuteCombined(events)
	}
	return eventstats.EventsInWindowByPlayers(events, players, types, minute), nil
}

// TeamLogo returns the JPEG logo of a team.
func (s *MatchService) TeamLogo(ctx context.Context, team string) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.TeamLogo")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	data, exists, err := s.repo.LoadLogo(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("load logo for team %q: %w", team, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: logo for team=%s", ErrNotFound, team)
	}
	return data, nil
}

// PlayerLocations returns the pitch points of a player's shots or touches, in
// one match or across the season when no match is given.
func (s *MatchService) PlayerLocations(ctx context.Context, input PlayerLocationsInput) ([]eventstats.PitchPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PlayerLocations", attribute.String("player.name", input.Player))
	defer span.End()

	player := strings.TrimSpace(input.Player)
	if player == "" {
		return nil, fmt.Errorf("%w: player is required", ErrInvalidInput)
	}
	var types eventstats.EventSet
	switch input.Kind {
	case EventKindShots:
		types = eventstats.ShotTypes
	case EventKindTouches:
		types = eventstats.NewEventSet()
	default:
		return nil, fmt.Errorf("%w: kind must be %s or %s", ErrInvalidInput, EventKindShots, EventKindTouches)
	}

	if input.MatchID != "" {
		events, err := s.matchEvents(ctx, input.MatchID)
		if err != nil {
			return nil, err
		}
		return eventstats.PlayerEventLocations(events, player, types), nil
	}

	ids, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	loader := seasonLoader{repo: s.repo, workers: s.workers, logger: s.logger}
	tables, err := loader.events(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]eventstats.PitchPoint, 0)
	for _, id := range ids {
		out = append(out, eventstats.PlayerEventLocations(tables[id], player, types)...)
	}
	return out, nil
}

func (s *MatchService) matchEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	if err := s.ensureMatch(ctx, matchID); err != nil {
		return nil, err
	}
	events, err := s.repo.LoadEvents(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load events for match %q: %w", matchID, err)
	}
	return events, nil
}

func (s *MatchService) ensureMatch(ctx context.Context, matchID string) error {
	if strings.TrimSpace(matchID) == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	ids, err := s.repo.ListMatches(ctx)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if !slices.Contains(ids, matchID) {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}

func windowEventTypes(kind string) (eventstats.EventSet, error) {
	switch kind {
	case EventKindShots:
		return eventstats.ShotTypes, nil
	case EventKindPasses:
		return eventstats.PassTypes, nil
	case EventKindSaves:
		return eventstats.SaveTypes, nil
	case EventKindGoals:
		return eventstats.GoalTypes, nil
	default:
		return eventstats.EventSet{}, fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, kind)
	}
}
