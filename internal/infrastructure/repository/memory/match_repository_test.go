package memory

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

func TestMatchRepository(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(map[string]MatchData{
		"20.08.11 B v C": {Events: []match.Event{{Name: "Pass", Team: "B"}}},
		"13.08.11 A v B": {Players: []match.PlayerRecord{{Name: "P", Team: "A", Result: match.ResultWin}}},
	}, map[string][]byte{"A": []byte("img")})
	ctx := context.Background()

	ids, err := repo.ListMatches(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "13.08.11 A v B" {
		t.Fatalf("unexpected ids: %q", ids)
	}

	events, err := repo.LoadEvents(ctx, "20.08.11 B v C")
	if err != nil || len(events) != 1 {
		t.Fatalf("unexpected events: len=%d err=%v", len(events), err)
	}
	events[0].Team = "mutated"
	again, _ := repo.LoadEvents(ctx, "20.08.11 B v C")
	if again[0].Team != "B" {
		t.Fatalf("repository returned shared slice")
	}

	if _, err := repo.LoadPlayers(ctx, "missing"); !crerr.Is(err, match.ErrIO) {
		t.Fatalf("unexpected error: got=%v want=%v", err, match.ErrIO)
	}

	if _, ok, err := repo.LoadLogo(ctx, "Z"); ok || err != nil {
		t.Fatalf("unexpected logo lookup: ok=%v err=%v", ok, err)
	}
}
