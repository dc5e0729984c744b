package resilience

import (
	"fmt"
	"sync"
)

// SingleFlight coalesces concurrent calls sharing a key into one execution.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flight
}

type flight struct {
	done chan struct{}
	val  any
	err  error
	dups int
}

// Do runs fn for key unless a call is already in flight, in which case it waits
// for that result. shared reports whether the result went to more than one caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight)
	}
	if f, ok := g.calls[key]; ok {
		f.dups++
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	func() {
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("singleflight %q panicked: %v", key, r)
			}
		}()
		f.val, f.err = fn()
	}()

	g.mu.Lock()
	delete(g.calls, key)
	shared = f.dups > 0
	g.mu.Unlock()
	close(f.done)

	return f.val, f.err, shared
}

// InFlight reports the number of keys currently executing.
func (g *SingleFlight) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
