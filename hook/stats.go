package hook

import "sync/atomic"

type statCounters struct {
	dispatched atomic.Uint64
	posted     atomic.Uint64
	reserved   atomic.Uint64
	synthetic  atomic.Uint64
}

// Stats is a snapshot of the pipeline's lifetime counters. Counters
// accumulate across start/stop cycles.
type Stats struct {
	// Dispatched counts events intercepted by the engine, control events
	// included.
	Dispatched uint64
	// Posted counts events injected through the posting API.
	Posted uint64
	// Reserved counts events the reservation filter withheld.
	Reserved uint64
	// Synthetic counts intercepted events attributed to the posting API.
	Synthetic uint64
}

// CurrentStats returns a snapshot of the pipeline counters.
func CurrentStats() Stats {
	return Stats{
		Dispatched: ctx.stats.dispatched.Load(),
		Posted:     ctx.stats.posted.Load(),
		Reserved:   ctx.stats.reserved.Load(),
		Synthetic:  ctx.stats.synthetic.Load(),
	}
}
