package usecase

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
)

const defaultSeasonWorkers = 8

// loadParallel runs load for every id on a bounded worker pool. Results keep
// the order of ids; the first failure by position is returned.
func loadParallel[T any](ctx context.Context, workerCount int, ids []string, load func(context.Context, string) (T, error)) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	if workerCount <= 0 {
		workerCount = defaultSeasonWorkers
	}
	if workerCount > len(ids) {
		workerCount = len(ids)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]T, len(ids))
	errs := make([]error, len(ids))

	var workers sync.WaitGroup
	for i, id := range ids {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			out, err := load(ctx, id)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			results[i] = out
		}); err != nil {
			workers.Done()
			cancel()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()

	// A load that failed on its own wins over the cancellations it caused.
	var canceled error
	for _, err := range errs {
		switch {
		case err == nil:
		case crerr.Is(err, context.Canceled):
			if canceled == nil {
				canceled = err
			}
		default:
			return nil, err
		}
	}
	if canceled != nil {
		return nil, canceled
	}
	return results, nil
}

// seasonLoader reads the player tables of every match for the season folds.
type seasonLoader struct {
	repo    match.Repository
	workers int
	logger  *logging.Logger
}

// players loads the player tables of the listed matches. keep, when set,
// filters on the match ID identity before anything is read.
func (l seasonLoader) players(ctx context.Context, keep func(id string, identity match.Identity, ok bool) bool) ([]playerstats.MatchPlayers, error) {
	ids, err := l.repo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	selected := make([]string, 0, len(ids))
	for _, id := range ids {
		identity, ok := match.ParseIdentity(id)
		if !ok {
			l.logger.DebugContext(ctx, "match id has no team separator", "match_id", id)
		}
		if keep != nil && !keep(id, identity, ok) {
			continue
		}
		selected = append(selected, id)
	}

	return loadParallel(ctx, l.workers, selected, func(ctx context.Context, id string) (playerstats.MatchPlayers, error) {
		players, err := l.repo.LoadPlayers(ctx, id)
		if err != nil {
			return playerstats.MatchPlayers{}, fmt.Errorf("load players for match %q: %w", id, err)
		}
		identity, ok := match.ParseIdentity(id)
		return playerstats.MatchPlayers{
			MatchID:     id,
			Identity:    identity,
			HasIdentity: ok,
			Players:     players,
		}, nil
	})
}

// events loads the event tables of the given matches, keyed by match ID.
func (l seasonLoader) events(ctx context.Context, ids []string) (map[string][]match.Event, error) {
	tables, err := loadParallel(ctx, l.workers, ids, func(ctx context.Context, id string) ([]match.Event, error) {
		events, err := l.repo.LoadEvents(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load events for match %q: %w", id, err)
		}
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string][]match.Event, len(ids))
	for i, id := range ids {
		out[id] = tables[i]
	}
	return out, nil
}
