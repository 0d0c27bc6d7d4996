package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
	basecache "github.com/riskibarqy/match-analytics/internal/platform/cache"
)

// MatchRepository is a read-through cache in front of another match.Repository.
// Concurrent misses for the same key load once; callers always get copies.
type MatchRepository struct {
	next    match.Repository
	list    *basecache.Store[[]string]
	events  *basecache.Store[[]match.Event]
	players *basecache.Store[[]match.PlayerRecord]
	logos   *basecache.Store[cachedLogo]
}

type cachedLogo struct {
	data   []byte
	exists bool
}

var _ match.Repository = (*MatchRepository)(nil)

func NewMatchRepository(next match.Repository, ttl time.Duration) *MatchRepository {
	return &MatchRepository{
		next:    next,
		list:    basecache.NewStore[[]string](ttl),
		events:  basecache.NewStore[[]match.Event](ttl),
		players: basecache.NewStore[[]match.PlayerRecord](ttl),
		logos:   basecache.NewStore[cachedLogo](ttl),
	}
}

func (r *MatchRepository) ListMatches(ctx context.Context) ([]string, error) {
	items, err := r.list.GetOrLoad(ctx, "match:list", r.next.ListMatches)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), items...), nil
}

func (r *MatchRepository) LoadEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	items, err := r.events.GetOrLoad(ctx, "match:events:"+matchID, func(ctx context.Context) ([]match.Event, error) {
		return r.next.LoadEvents(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Event(nil), items...), nil
}

func (r *MatchRepository) LoadPlayers(ctx context.Context, matchID string) ([]match.PlayerRecord, error) {
	items, err := r.players.GetOrLoad(ctx, "match:players:"+matchID, func(ctx context.Context) ([]match.PlayerRecord, error) {
		return r.next.LoadPlayers(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}
	return append([]match.PlayerRecord(nil), items...), nil
}

func (r *MatchRepository) LoadLogo(ctx context.Context, team string) ([]byte, bool, error) {
	cached, err := r.logos.GetOrLoad(ctx, "team:logo:"+team, func(ctx context.Context) (cachedLogo, error) {
		data, exists, err := r.next.LoadLogo(ctx, team)
		if err != nil {
			return cachedLogo{}, err
		}
		return cachedLogo{data: data, exists: exists}, nil
	})
	if err != nil {
		return nil, false, err
	}
	if !cached.exists {
		return nil, false, nil
	}
	return append([]byte(nil), cached.data...), true, nil
}
