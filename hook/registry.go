package hook

import (
	"sync"

	"hookwire/event"
)

// HookID identifies one registered observer. IDs are 128 bits drawn from
// a monotonic counter, so within any realistic process lifetime an ID is
// never reused even across register/unregister churn.
type HookID struct {
	hi, lo uint64
}

func (id HookID) next() HookID {
	id.lo++
	if id.lo == 0 {
		id.hi++
	}
	return id
}

// registry is the concurrent observer table. Fan-out snapshots the
// callbacks and invokes them outside the lock, so an observer may
// register or unregister from inside its own callback.
type registry struct {
	mu   sync.RWMutex
	last HookID
	m    map[HookID]func(*event.Event)
}

func newRegistry() *registry {
	return &registry{m: make(map[HookID]func(*event.Event))}
}

func (r *registry) register(fn func(*event.Event)) HookID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = r.last.next()
	r.m[r.last] = fn
	return r.last
}

func (r *registry) unregister(id HookID) (func(*event.Event), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.m[id]
	if ok {
		delete(r.m, id)
	}
	return fn, ok
}

func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.m)
}

func (r *registry) dispatch(ev *event.Event) {
	r.mu.RLock()
	fns := make([]func(*event.Event), 0, len(r.m))
	for _, fn := range r.m {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Register adds an observer invoked for every dispatched event,
// including the Enabled and Disabled control events. Observers run
// sequentially on the control goroutine in unspecified order; a stalled
// observer stalls delivery to everyone.
func Register(fn func(*event.Event)) HookID {
	return ctx.registry.register(fn)
}

// Unregister removes an observer and returns its callback. The second
// return is false when the ID was not registered. Events already drained
// to the control goroutine may still reach the callback once.
func Unregister(id HookID) (func(*event.Event), bool) {
	return ctx.registry.unregister(id)
}

// UnregisterAll removes every observer, including filtered ones.
func UnregisterAll() {
	ctx.registry.clear()
}
