package hook

import (
	"sync"

	"hookwire/event"
)

// Filtered is an observer wrapped in a predicate. Constructors register
// it immediately; keep the returned value and Close it when the observer
// should stop, or use Unregister/Register to pause and resume it under
// the same predicate (the registry ID changes on every re-register).
type Filtered struct {
	mu         sync.Mutex
	registered bool
	id         HookID
	entry      func(*event.Event)
}

func newFiltered(pred func(*event.Event) bool, fn func(*event.Event)) *Filtered {
	f := &Filtered{}
	f.entry = func(ev *event.Event) {
		if pred(ev) {
			fn(ev)
		}
	}
	f.Register()
	return f
}

// Register adds the observer back to the registry. No-op while
// registered.
func (f *Filtered) Register() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.registered {
		f.id = ctx.registry.register(f.entry)
		f.registered = true
	}
}

// Unregister removes the observer from the registry. No-op while not
// registered.
func (f *Filtered) Unregister() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registered {
		ctx.registry.unregister(f.id)
		f.registered = false
	}
}

// Close unregisters the observer. It implements io.Closer and never
// fails; closing twice is harmless.
func (f *Filtered) Close() error {
	f.Unregister()
	return nil
}

// OnAll observes every dispatched event, control events included.
func OnAll(fn func(*event.Event)) *Filtered {
	return newFiltered(func(*event.Event) bool { return true }, fn)
}

// OnKeyboard observes all key events.
func OnKeyboard(fn func(*event.Event)) *Filtered {
	return newFiltered(func(ev *event.Event) bool {
		return ev.Class() == event.ClassKeyboard
	}, fn)
}

// OnKeys observes key events affecting one of the given keys.
func OnKeys(keys []event.Key, fn func(*event.Event)) *Filtered {
	set := keySet(keys)
	return newFiltered(func(ev *event.Event) bool {
		kb, ok := ev.AsKeyboard()
		return ok && set[kb.Key]
	}, fn)
}

// NotKeys observes key events affecting none of the given keys.
func NotKeys(keys []event.Key, fn func(*event.Event)) *Filtered {
	set := keySet(keys)
	return newFiltered(func(ev *event.Event) bool {
		kb, ok := ev.AsKeyboard()
		return ok && !set[kb.Key]
	}, fn)
}

// OnMouse observes all mouse events, motion included.
func OnMouse(fn func(*event.Event)) *Filtered {
	return newFiltered(func(ev *event.Event) bool {
		return ev.Class() == event.ClassMouse
	}, fn)
}

// OnButtons observes mouse button events (clicked, pressed, released)
// for one of the given buttons.
func OnButtons(buttons []event.Button, fn func(*event.Event)) *Filtered {
	set := buttonSet(buttons)
	return newFiltered(func(ev *event.Event) bool {
		m, ok := ev.AsMouseButton()
		return ok && set[m.Button]
	}, fn)
}

// NotButtons observes mouse button events for none of the given buttons.
func NotButtons(buttons []event.Button, fn func(*event.Event)) *Filtered {
	set := buttonSet(buttons)
	return newFiltered(func(ev *event.Event) bool {
		m, ok := ev.AsMouseButton()
		return ok && !set[m.Button]
	}, fn)
}

// OnMouseMove observes pointer motion without a held button.
func OnMouseMove(fn func(*event.Event)) *Filtered {
	return newFiltered(func(ev *event.Event) bool {
		return ev.Kind == event.KindMouseMoved
	}, fn)
}

// OnMouseDrag observes pointer motion with a held button.
func OnMouseDrag(fn func(*event.Event)) *Filtered {
	return newFiltered(func(ev *event.Event) bool {
		return ev.Kind == event.KindMouseDragged
	}, fn)
}

// OnWheel observes scroll events.
func OnWheel(fn func(*event.Event)) *Filtered {
	return newFiltered(func(ev *event.Event) bool {
		return ev.Kind == event.KindWheel
	}, fn)
}

func keySet(keys []event.Key) map[event.Key]bool {
	set := make(map[event.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func buttonSet(buttons []event.Button) map[event.Button]bool {
	set := make(map[event.Button]bool, len(buttons))
	for _, b := range buttons {
		set[b] = true
	}
	return set
}
