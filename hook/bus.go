package hook

import (
	"sync"

	"hookwire/event"
)

// bus is the unbounded queue between the engine's dispatch callback and
// the control goroutine. Sends never block, which keeps the dispatch
// callback fast regardless of how far the control goroutine has fallen
// behind, and delivery preserves send order.
type bus struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    []event.Event
}

func newBus() *bus {
	b := &bus{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *bus) send(ev event.Event) {
	b.mu.Lock()
	b.q = append(b.q, ev)
	b.mu.Unlock()
	b.cond.Signal()
}

// recv blocks until an event is available.
func (b *bus) recv() event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.q) == 0 {
		b.cond.Wait()
	}
	ev := b.q[0]
	b.q = b.q[1:]
	if len(b.q) == 0 {
		b.q = nil
	}
	return ev
}

// reset discards anything left over from a previous run.
func (b *bus) reset() {
	b.mu.Lock()
	b.q = nil
	b.mu.Unlock()
}
