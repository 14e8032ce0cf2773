//go:build !windows

package hook

import "hookwire/event"

// OnDragButtons observes drags performed with one of the given buttons.
// Not available on Windows: the OS reports drags without a reliable
// button attribution there, so a button-scoped drag filter would be a
// lie.
func OnDragButtons(buttons []event.Button, fn func(*event.Event)) *Filtered {
	set := buttonSet(buttons)
	return newFiltered(func(ev *event.Event) bool {
		return ev.Kind == event.KindMouseDragged && set[ev.Mouse.Button]
	}, fn)
}
