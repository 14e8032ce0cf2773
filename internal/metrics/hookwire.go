package metrics

import "hookwire/hook"

// Pipeline bundles the standard metrics for one hookwire process.
type Pipeline struct {
	Registry *Registry

	Dispatched *Counter
	Posted     *Counter
	Reserved   *Counter
	Synthetic  *Counter

	Observers *Gauge
	Recorded  *Gauge
}

// NewPipeline creates the standard metric set, registered.
func NewPipeline() *Pipeline {
	p := &Pipeline{
		Registry: NewRegistry(),
		Dispatched: NewCounter("hookwire_events_dispatched_total",
			"Events intercepted by the native engine.", nil),
		Posted: NewCounter("hookwire_events_posted_total",
			"Synthetic events injected through the posting API.", nil),
		Reserved: NewCounter("hookwire_events_reserved_total",
			"Events withheld from the OS by the reservation filter.", nil),
		Synthetic: NewCounter("hookwire_events_synthetic_total",
			"Intercepted events attributed to the posting API.", nil),
		Observers: NewGauge("hookwire_observers",
			"Currently registered observers.", nil),
		Recorded: NewGauge("hookwire_recorded_events",
			"Events persisted in the recorder database.", nil),
	}
	p.Registry.Register(p.Dispatched)
	p.Registry.Register(p.Posted)
	p.Registry.Register(p.Reserved)
	p.Registry.Register(p.Synthetic)
	p.Registry.Register(p.Observers)
	p.Registry.Register(p.Recorded)
	return p
}

// Sync mirrors the pipeline's lifetime counters into the registry.
func (p *Pipeline) Sync() {
	s := hook.CurrentStats()
	p.Dispatched.Set(s.Dispatched)
	p.Posted.Set(s.Posted)
	p.Reserved.Set(s.Reserved)
	p.Synthetic.Set(s.Synthetic)
}
