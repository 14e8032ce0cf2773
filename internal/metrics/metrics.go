// Package metrics provides Prometheus-compatible counters and gauges
// for the hookwire tools.
//
// Features:
//   - Counters for dispatched, posted, reserved and synthetic events
//   - Gauges for observer count and recorder backlog
//   - Text exposition rendering for a status endpoint or dump
//   - Thread-safe operations
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// MetricType represents the type of metric.
type MetricType int

const (
	// TypeCounter is a monotonically increasing counter.
	TypeCounter MetricType = iota
	// TypeGauge is a value that can go up and down.
	TypeGauge
)

// String returns the string representation of the metric type.
func (t MetricType) String() string {
	switch t {
	case TypeCounter:
		return "counter"
	case TypeGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Labels represents metric labels.
type Labels map[string]string

// String returns the exposition form of the labels.
func (l Labels) String() string {
	if len(l) == 0 {
		return ""
	}
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(l))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, k, l[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Metric is the common surface of counters and gauges.
type Metric interface {
	Name() string
	Help() string
	Type() MetricType
	render(w io.Writer)
}

// Counter is a monotonically increasing counter.
type Counter struct {
	name   string
	help   string
	labels Labels
	value  atomic.Uint64
}

// NewCounter creates a new Counter.
func NewCounter(name, help string, labels Labels) *Counter {
	return &Counter{name: name, help: help, labels: labels}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Add adds the given value to the counter.
func (c *Counter) Add(v uint64) {
	c.value.Add(v)
}

// Set overwrites the counter. Used when mirroring a counter maintained
// elsewhere; the source must itself be monotonic.
func (c *Counter) Set(v uint64) {
	c.value.Store(v)
}

// Value returns the current value.
func (c *Counter) Value() uint64 {
	return c.value.Load()
}

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Help returns the help text.
func (c *Counter) Help() string { return c.help }

// Type returns the metric type.
func (c *Counter) Type() MetricType { return TypeCounter }

func (c *Counter) render(w io.Writer) {
	fmt.Fprintf(w, "%s%s %d\n", c.name, c.labels, c.Value())
}

// Gauge is a value that can go up and down.
type Gauge struct {
	name   string
	help   string
	labels Labels
	value  atomic.Int64
}

// NewGauge creates a new Gauge.
func NewGauge(name, help string, labels Labels) *Gauge {
	return &Gauge{name: name, help: help, labels: labels}
}

// Set sets the gauge to the given value.
func (g *Gauge) Set(v int64) {
	g.value.Store(v)
}

// Inc increments the gauge by 1.
func (g *Gauge) Inc() {
	g.value.Add(1)
}

// Dec decrements the gauge by 1.
func (g *Gauge) Dec() {
	g.value.Add(-1)
}

// Value returns the current value.
func (g *Gauge) Value() int64 {
	return g.value.Load()
}

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// Help returns the help text.
func (g *Gauge) Help() string { return g.help }

// Type returns the metric type.
func (g *Gauge) Type() MetricType { return TypeGauge }

func (g *Gauge) render(w io.Writer) {
	fmt.Fprintf(w, "%s%s %d\n", g.name, g.labels, g.Value())
}

// Registry holds a set of metrics and renders them in Prometheus text
// exposition format.
type Registry struct {
	mu      sync.RWMutex
	metrics []Metric
	byName  map[string]Metric
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Metric)}
}

// Register adds a metric. Re-registering a name replaces the previous
// metric.
func (r *Registry) Register(m Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[m.Name()]; exists {
		for i, old := range r.metrics {
			if old.Name() == m.Name() {
				r.metrics[i] = m
				break
			}
		}
	} else {
		r.metrics = append(r.metrics, m)
	}
	r.byName[m.Name()] = m
}

// Get returns a registered metric by name.
func (r *Registry) Get(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	return m, ok
}

// Write renders every metric in exposition format.
func (r *Registry) Write(w io.Writer) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.metrics {
		if m.Help() != "" {
			fmt.Fprintf(w, "# HELP %s %s\n", m.Name(), m.Help())
		}
		fmt.Fprintf(w, "# TYPE %s %s\n", m.Name(), m.Type())
		m.render(w)
	}
}

// String renders the registry to a string.
func (r *Registry) String() string {
	var sb strings.Builder
	r.Write(&sb)
	return sb.String()
}
