package match

import "context"

// Repository lists matches and loads their raw tables. Implementations do no
// aggregation and return fresh slices on every call.
type Repository interface {
	ListMatches(ctx context.Context) ([]string, error)
	LoadEvents(ctx context.Context, matchID string) ([]Event, error)
	LoadPlayers(ctx context.Context, matchID string) ([]PlayerRecord, error)
	LoadLogo(ctx context.Context, team string) ([]byte, bool, error)
}
