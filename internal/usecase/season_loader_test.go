package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
)

func TestLoadParallel_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	ids := []string{"c", "a", "d", "b", "e"}
	var inFlight, peak atomic.Int32

	got, err := loadParallel(context.Background(), 2, ids, func(_ context.Context, id string) (string, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return strings.ToUpper(id), nil
	})
	if err != nil {
		t.Fatalf("load parallel: %v", err)
	}
	for i, id := range ids {
		if got[i] != strings.ToUpper(id) {
			t.Fatalf("unexpected result at %d: got=%s want=%s", i, got[i], strings.ToUpper(id))
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("unexpected concurrency: got=%d want<=2", peak.Load())
	}
}

func TestLoadParallel_ReturnsLoadFailure(t *testing.T) {
	t.Parallel()

	errBroken := crerr.New("broken table")
	_, err := loadParallel(context.Background(), 3, []string{"a", "b", "c", "d"}, func(ctx context.Context, id string) (int, error) {
		if id == "b" {
			return 0, errBroken
		}
		return len(id), nil
	})
	if !crerr.Is(err, errBroken) {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestLoadParallel_Empty(t *testing.T) {
	t.Parallel()

	got, err := loadParallel(context.Background(), 4, nil, func(context.Context, string) (int, error) {
		t.Fatalf("load must not run")
		return 0, nil
	})
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected result: got=%v err=%v", got, err)
	}
}
