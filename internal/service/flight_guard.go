package service

import (
	"sync"

	"token-mint-engine/internal/metrics"
)

// flightGuard enforces at-most-one concurrent execution per correlation key.
// It is the only process-wide shared mutable state of the engine; everything
// else is row-scoped in the store.
type flightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newFlightGuard() *flightGuard {
	return &flightGuard{active: make(map[string]struct{})}
}

// tryAcquire reserves the key. A false return means another execution holds
// it; the caller must return without doing work and without releasing.
func (g *flightGuard) tryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.active[key]; ok {
		return false
	}
	g.active[key] = struct{}{}
	metrics.ActiveRequests.Inc()
	return true
}

// release frees the key. Paired with tryAcquire via defer so the key is freed
// on every exit path, including panics unwinding through the coordinator.
func (g *flightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.active[key]; ok {
		delete(g.active, key)
		metrics.ActiveRequests.Dec()
	}
}
