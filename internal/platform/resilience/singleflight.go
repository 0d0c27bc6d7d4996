package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type SingleFlight[V any] struct {
	mu    sync.Mutex
	calls map[string]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
	dups int
}

// Do runs fn once per key at a time. Callers that arrive while fn is running
// wait for it and receive the same result with shared=true.
func (g *SingleFlight[V]) Do(key string, fn func() (V, error)) (V, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[V])
	}

	if f, ok := g.calls[key]; ok {
		f.dups++
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight[V]{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()

	g.mu.Lock()
	shared := f.dups > 0
	if g.calls[key] == f {
		delete(g.calls, key)
	}
	g.mu.Unlock()

	return f.val, f.err, shared
}

// Forget drops an in-flight key so the next Do starts a fresh call.
func (g *SingleFlight[V]) Forget(key string) {
	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
}
