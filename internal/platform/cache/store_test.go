package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	loadErr := errors.New("missing file")

	loader := func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, loadErr
		}
		return 42, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("unexpected first error: got=%v want=%v", err, loadErr)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != 42 {
		t.Fatalf("unexpected value: got=%d want=42", v)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_GetExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry to be readable")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if got := store.Len(); got != 0 {
		t.Fatalf("unexpected entry count: got=%d want=0", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "events:a", 1)
	store.Set(ctx, "events:b", 2)
	store.Set(ctx, "players:a", 3)

	store.DeletePrefix(ctx, "events:")
	if got := store.Len(); got != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", got)
	}
	if _, ok := store.Get(ctx, "players:a"); !ok {
		t.Fatalf("expected players entry to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
