package memory

import (
	"context"
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

// MatchData is one match's pair of raw tables.
type MatchData struct {
	Events  []match.Event
	Players []match.PlayerRecord
}

// MatchRepository serves match tables from memory. Unknown matches behave like
// missing files.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]MatchData
	logos   map[string][]byte
}

var _ match.Repository = (*MatchRepository)(nil)

func NewMatchRepository(matches map[string]MatchData, logos map[string][]byte) *MatchRepository {
	r := &MatchRepository{
		matches: make(map[string]MatchData, len(matches)),
		logos:   make(map[string][]byte, len(logos)),
	}
	for id, data := range matches {
		r.matches[id] = cloneMatch(data)
	}
	for team, img := range logos {
		r.logos[team] = append([]byte(nil), img...)
	}
	return r
}

// Put adds or replaces one match.
func (r *MatchRepository) Put(matchID string, data MatchData) {
	r.mu.Lock()
	r.matches[matchID] = cloneMatch(data)
	r.mu.Unlock()
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.matches))
	for id := range r.matches {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MatchRepository) LoadEvents(_ context.Context, matchID string) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.matches[matchID]
	if !ok {
		return nil, crerr.Wrapf(match.ErrIO, "events for %q", matchID)
	}
	return append([]match.Event(nil), data.Events...), nil
}

func (r *MatchRepository) LoadPlayers(_ context.Context, matchID string) ([]match.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.matches[matchID]
	if !ok {
		return nil, crerr.Wrapf(match.ErrIO, "players for %q", matchID)
	}
	return append([]match.PlayerRecord(nil), data.Players...), nil
}

func (r *MatchRepository) LoadLogo(_ context.Context, team string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.logos[team]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), img...), true, nil
}

func cloneMatch(data MatchData) MatchData {
	return MatchData{
		Events:  append([]match.Event(nil), data.Events...),
		Players: append([]match.PlayerRecord(nil), data.Players...),
	}
}
