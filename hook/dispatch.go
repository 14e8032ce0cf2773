package hook

import (
	"sync"
	"time"

	"hookwire/event"
	"hookwire/native"
)

// Handle joins the goroutines behind one pipeline run.
type Handle struct {
	done chan struct{}

	mu        sync.Mutex
	runErr    error
	hookPanic any
	ctrlPanic any
}

// Start brings the pipeline up and returns once the engine reports the
// hook live. When the pipeline is already running Start does nothing and
// returns no handle; the existing run keeps its own.
//
// If the engine fails to install, Start still returns a handle; Wait on
// it surfaces the installation error.
func Start() (*Handle, bool) {
	if !ctx.running.CompareAndSwap(false, true) {
		return nil, false
	}
	h := newHandle()
	eng := prepare()
	go h.control(eng)

	ctx.enabledMu.Lock()
	for !ctx.live && ctx.running.Load() {
		ctx.enabled.Wait()
	}
	ctx.enabledMu.Unlock()
	return h, true
}

// StartBlocking runs the pipeline with the caller as the control
// goroutine. It returns after Stop (or an engine failure) with whatever
// Wait would have reported. When the pipeline is already live it returns
// nil immediately, mirroring Start's idempotence.
func StartBlocking() error {
	if !ctx.running.CompareAndSwap(false, true) {
		return nil
	}
	h := newHandle()
	eng := prepare()
	h.control(eng)
	return h.Wait()
}

// Stop asks the engine to wind the hook down. The control goroutine
// exits when the resulting Disabled event comes through; use Handle.Wait
// to block until then.
func Stop() error {
	return ctx.bindEngine().Stop()
}

// Wait blocks until the control goroutine exits and returns the run's
// terminal error: the engine's installation error, a captured panic from
// either goroutine wrapped as a native error, or nil after a clean stop.
func (h *Handle) Wait() error {
	<-h.done
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hookPanic != nil {
		return native.PanicError(h.hookPanic)
	}
	if h.ctrlPanic != nil {
		return native.PanicError(h.ctrlPanic)
	}
	return h.runErr
}

// Stop winds the pipeline down and waits for it.
func (h *Handle) Stop() error {
	if err := Stop(); err != nil {
		return err
	}
	return h.Wait()
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// prepare readies the shared context for a run. Only reached behind a
// successful CAS on the running flag.
func prepare() native.Engine {
	eng := ctx.bindEngine()
	ctx.bus.reset()
	eng.SetDispatch(ctx.onNative)
	return eng
}

// control owns the run: it spawns the hook goroutine around Engine.Run,
// drains the bus to the registry until the Disabled event, then joins
// the hook goroutine. The deferred block clears the running flag and
// releases any Start stuck waiting for a hook that never came up.
func (h *Handle) control(eng native.Engine) {
	defer close(h.done)
	defer func() {
		if p := recover(); p != nil {
			h.mu.Lock()
			h.ctrlPanic = p
			h.mu.Unlock()
		}
		ctx.enabledMu.Lock()
		ctx.live = false
		ctx.running.Store(false)
		ctx.enabled.Broadcast()
		ctx.enabledMu.Unlock()
	}()

	hookDone := make(chan struct{})
	go func() {
		defer close(hookDone)
		defer func() {
			if p := recover(); p != nil {
				h.mu.Lock()
				h.hookPanic = p
				h.mu.Unlock()
				ctx.bus.send(disabledEvent())
			}
		}()
		if err := eng.Run(); err != nil {
			h.mu.Lock()
			h.runErr = err
			h.mu.Unlock()
			// The engine never emitted Disabled; synthesize one so the
			// drain loop below cannot block forever.
			ctx.bus.send(disabledEvent())
		}
	}()

	for {
		ev := ctx.bus.recv()
		if ev.Kind == event.KindEnabled {
			ctx.enabledMu.Lock()
			ctx.live = true
			ctx.enabled.Broadcast()
			ctx.enabledMu.Unlock()
		}
		ctx.registry.dispatch(&ev)
		if ev.Kind == event.KindDisabled {
			break
		}
	}
	<-hookDone
}

func disabledEvent() event.Event {
	return event.Event{
		Metadata: event.Metadata{Time: uint64(time.Now().UnixMilli())},
		Kind:     event.KindDisabled,
	}
}
