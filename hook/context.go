// Package hook connects the native engine to registered observers and
// exposes the posting API for synthetic events.
//
// The package manages one process-wide pipeline. Start spawns a hook
// goroutine that blocks inside the engine's run loop and a control
// goroutine that drains intercepted events to every registered observer.
// The pipeline is restartable: after Stop (or an engine failure) a new
// Start brings it back up against the same registry.
package hook

import (
	"errors"
	"sync"
	"sync/atomic"

	"hookwire/event"
	"hookwire/native"
)

// ErrRunning is returned by SetEngine while the pipeline is live.
var ErrRunning = errors.New("hook: cannot swap engine while running")

// dispatchContext is the process-wide pipeline state. One instance per
// process, shared by every Start/Stop cycle.
type dispatchContext struct {
	running atomic.Bool

	// enabled gates Start until the engine reports the hook live. live is
	// set by the control goroutine on the Enabled event and cleared when
	// the control loop exits, which also broadcasts so a Start waiting on
	// a failed engine run is released.
	enabledMu sync.Mutex
	enabled   *sync.Cond
	live      bool

	bus      *bus
	registry *registry

	engineMu sync.Mutex
	engine   native.Engine

	// postMu serializes every post so records reach the engine in call
	// order and the synthetic cell is stored in the same order.
	postMu sync.Mutex

	// synthetic is the single-slot correlation cell. Post stores the
	// native type it is about to inject; the dispatch callback consumes a
	// matching type with a compare-and-swap. One slot only, so concurrent
	// posts or an identically typed hardware event in the window can steal
	// or drop the tag.
	synthetic atomic.Uint32

	reserveMu sync.Mutex
	reserve   func(*event.Event) bool

	// base is the cached difference between wall-clock milliseconds and
	// the engine's uptime timestamp, fixed at the first intercepted event.
	baseOnce sync.Once
	base     uint64

	stats statCounters
}

var ctx = newDispatchContext()

func newDispatchContext() *dispatchContext {
	c := &dispatchContext{
		bus:      newBus(),
		registry: newRegistry(),
	}
	c.enabled = sync.NewCond(&c.enabledMu)
	return c
}

// bindEngine returns the configured engine, binding the platform default
// on first use.
func (c *dispatchContext) bindEngine() native.Engine {
	c.engineMu.Lock()
	defer c.engineMu.Unlock()
	if c.engine == nil {
		c.engine = native.Default()
	}
	return c.engine
}

// SetEngine replaces the engine driving the pipeline. It fails while the
// pipeline is running; stop first.
func SetEngine(e native.Engine) error {
	if ctx.running.Load() {
		return ErrRunning
	}
	ctx.engineMu.Lock()
	ctx.engine = e
	ctx.engineMu.Unlock()
	return nil
}

// CurrentEngine returns the engine the pipeline is bound to, binding the
// platform default if none was set.
func CurrentEngine() native.Engine {
	return ctx.bindEngine()
}

// Reserve installs filter as the reservation filter, replacing any
// previous one. The filter runs inside the engine's dispatch callback
// for every intercepted event, control events included; returning true
// withholds the event from the rest of the OS UI stack, on engines that
// support reservation. Reserve(nil) removes the filter.
//
// The filter must return quickly; platforms discard events or disable
// the hook when the dispatch callback stalls.
func Reserve(filter func(*event.Event) bool) {
	ctx.reserveMu.Lock()
	ctx.reserve = filter
	ctx.reserveMu.Unlock()
}
